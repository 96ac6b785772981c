// Package panel is a small parameter GUI: titled folders of sliders, color
// pickers and checkboxes bound to Go values.
package panel

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/simukka/sonosphere/common"
)

var (
	// ErrUnknownControl is returned by Set for an id that was never added.
	ErrUnknownControl = errors.New("unknown control")

	// ErrInvalidValue is returned when raw input cannot be parsed.
	ErrInvalidValue = errors.New("invalid control value")
)

// Kind is the widget type of a control.
type Kind int

const (
	Slider Kind = iota
	ColorPicker
	Checkbox
)

// InputType is the HTML input type of k.
func (k Kind) InputType() string {
	switch k {
	case ColorPicker:
		return "color"
	case Checkbox:
		return "checkbox"
	}
	return "range"
}

// Control is one widget bound to a value.
type Control struct {
	ID    string
	Label string
	Kind  Kind

	Min, Max, Step float64

	num      *float64
	text     *string
	flag     *bool
	onChange func()
}

// OnChange registers fn to run after every accepted change.
func (c *Control) OnChange(fn func()) *Control {
	c.onChange = fn
	return c
}

// Set parses raw input, clamps and snaps it and stores it in the bound
// value. Invalid input leaves the value untouched.
func (c *Control) Set(raw string) error {
	raw = strings.TrimSpace(raw)
	switch c.Kind {
	case Slider:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, c.ID, raw)
		}
		*c.num = c.snap(v)
	case ColorPicker:
		col, err := common.ParseHex(raw)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidValue, c.ID, err)
		}
		*c.text = col.Hex()
	case Checkbox:
		on, err := parseBool(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, c.ID, raw)
		}
		*c.flag = on
	}
	if c.onChange != nil {
		c.onChange()
	}
	return nil
}

// snap clamps v to the range and rounds it to the nearest step.
func (c *Control) snap(v float64) float64 {
	v = common.Clamp(v, c.Min, c.Max)
	if c.Step <= 0 {
		return v
	}
	v = c.Min + math.Round((v-c.Min)/c.Step)*c.Step
	v = common.Clamp(v, c.Min, c.Max)
	s := strconv.FormatFloat(v, 'f', stepDecimals(c.Step), 64)
	out, _ := strconv.ParseFloat(s, 64)
	return out
}

func stepDecimals(step float64) int {
	s := strconv.FormatFloat(step, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "on":
		return true, nil
	case "off", "":
		return false, nil
	}
	return strconv.ParseBool(raw)
}

// Value formats the bound value the way the HTML input expects it.
func (c *Control) Value() string {
	switch c.Kind {
	case ColorPicker:
		return *c.text
	case Checkbox:
		return strconv.FormatBool(*c.flag)
	}
	return strconv.FormatFloat(*c.num, 'f', -1, 64)
}

// Display formats the bound value for the label next to the input.
func (c *Control) Display() string {
	if c.Kind == Slider {
		return strconv.FormatFloat(*c.num, 'f', stepDecimals(c.Step), 64)
	}
	return c.Value()
}

// Checked reports a checkbox's state.
func (c *Control) Checked() bool {
	return c.Kind == Checkbox && *c.flag
}

// InputType is the HTML input type.
func (c *Control) InputType() string {
	return c.Kind.InputType()
}

// Folder groups controls under a heading.
type Folder struct {
	Name     string
	Open     bool
	Controls []*Control

	panel *Panel
}

// SetOpen expands or collapses the folder.
func (f *Folder) SetOpen(open bool) *Folder {
	f.Open = open
	return f
}

// AddSlider binds v to a range input.
func (f *Folder) AddSlider(id, label string, v *float64, lo, hi, step float64) *Control {
	return f.add(&Control{ID: id, Label: label, Kind: Slider, Min: lo, Max: hi, Step: step, num: v})
}

// AddColor binds a hex color string to a color picker.
func (f *Folder) AddColor(id, label string, v *string) *Control {
	return f.add(&Control{ID: id, Label: label, Kind: ColorPicker, text: v})
}

// AddCheckbox binds v to a checkbox.
func (f *Folder) AddCheckbox(id, label string, v *bool) *Control {
	return f.add(&Control{ID: id, Label: label, Kind: Checkbox, flag: v})
}

func (f *Folder) add(c *Control) *Control {
	if _, dup := f.panel.byID[c.ID]; dup {
		panic("panel: duplicate control id " + c.ID)
	}
	f.Controls = append(f.Controls, c)
	f.panel.byID[c.ID] = c
	f.panel.order = append(f.panel.order, c)
	return c
}

// Panel is the root of the GUI.
type Panel struct {
	Title   string
	Folders []*Folder

	byID  map[string]*Control
	order []*Control
}

// New creates an empty panel.
func New(title string) *Panel {
	return &Panel{Title: title, byID: make(map[string]*Control)}
}

// AddFolder appends a folder. Folders start expanded.
func (p *Panel) AddFolder(name string) *Folder {
	f := &Folder{Name: name, Open: true, panel: p}
	p.Folders = append(p.Folders, f)
	return f
}

// Control looks up a control by id.
func (p *Panel) Control(id string) (*Control, bool) {
	c, ok := p.byID[id]
	return c, ok
}

// Controls returns every control in insertion order.
func (p *Panel) Controls() []*Control {
	return append([]*Control(nil), p.order...)
}

// Set applies raw input to the control with id.
func (p *Panel) Set(id, raw string) error {
	c, ok := p.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownControl, id)
	}
	return c.Set(raw)
}
