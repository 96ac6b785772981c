package panel

import (
	"bytes"
	_ "embed"
	"text/template"
)

//go:embed panel.gohtml
var panelHTML string

var panelTemplate = template.Must(template.New("panel").Parse(panelHTML))

// HTML renders the panel markup. Input ids are the control ids; the value
// label of each control has the id suffixed with "-val".
func (p *Panel) HTML() (string, error) {
	var buf bytes.Buffer
	if err := panelTemplate.Execute(&buf, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}
