//go:build js
// +build js

package panel

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/sonosphere/common"
)

// DOM is a panel mounted in the page.
type DOM struct {
	El    *js.Object
	panel *Panel
}

// Mount renders p into a fixed container appended to the body and wires
// every input to its control.
func Mount(p *Panel) *DOM {
	doc := js.Global.Get("document")

	el := doc.Call("createElement", "div")
	el.Set("id", "gui-panel")
	el.Get("style").Set("cssText", `
		position: fixed;
		top: 12px;
		right: 12px;
		background: rgba(2, 16, 19, 0.85);
		border: 1px solid #3ce0b8;
		border-radius: 6px;
		padding: 10px 12px;
		color: #c8fff0;
		font-family: 'Courier New', monospace;
		font-size: 12px;
		z-index: 1000;
		min-width: 240px;
	`)

	markup, err := p.HTML()
	if err != nil {
		markup = "<div style='color:red'>Template error: " + err.Error() + "</div>"
	}
	el.Set("innerHTML", markup)
	doc.Get("body").Call("appendChild", el)

	d := &DOM{El: el, panel: p}
	d.attachHandlers()
	return d
}

// attachHandlers connects every input to Panel.Set.
func (d *DOM) attachHandlers() {
	doc := js.Global.Get("document")

	for _, c := range d.panel.Controls() {
		c := c
		input := doc.Call("getElementById", c.ID)
		if input == nil || input == js.Undefined {
			continue
		}
		event := "input"
		if c.Kind == Checkbox {
			event = "change"
		}
		input.Call("addEventListener", event, func(e *js.Object) {
			target := e.Get("target")
			raw := target.Get("value").String()
			if c.Kind == Checkbox {
				raw = strconv.FormatBool(target.Get("checked").Bool())
			}
			if err := c.Set(raw); err != nil {
				common.DebugWarn(err.Error())
			}
			// show the clamped, snapped value
			refresh(c)
		})
	}
}

// Set applies a value as if typed into the input and refreshes the input.
func (d *DOM) Set(id, raw string) error {
	if err := d.panel.Set(id, raw); err != nil {
		return err
	}
	c, _ := d.panel.Control(id)
	refresh(c)
	return nil
}

// refresh writes the control's value back into its input and label.
func refresh(c *Control) {
	doc := js.Global.Get("document")
	if input := doc.Call("getElementById", c.ID); input != nil && input != js.Undefined {
		if c.Kind == Checkbox {
			input.Set("checked", c.Checked())
		} else {
			input.Set("value", c.Value())
		}
	}
	if span := doc.Call("getElementById", c.ID+"-val"); span != nil && span != js.Undefined {
		span.Set("textContent", c.Display())
	}
}

// Toggle shows or hides the panel.
func (d *DOM) Toggle() {
	style := d.El.Get("style")
	if style.Get("display").String() == "none" {
		style.Set("display", "block")
	} else {
		style.Set("display", "none")
	}
}
