package app

import (
	"github.com/simukka/sonosphere/common"
	"github.com/simukka/sonosphere/panel"
)

// Control ids.
const (
	CtrlColor          = "ctrl-color"
	CtrlEmissive       = "ctrl-emissive"
	CtrlWireframe      = "ctrl-wireframe"
	CtrlBloomStrength  = "ctrl-bloom-strength"
	CtrlBloomRadius    = "ctrl-bloom-radius"
	CtrlBloomThreshold = "ctrl-bloom-threshold"
	CtrlDistortion     = "ctrl-distortion"
	CtrlNoiseFloor     = "ctrl-noise-floor"
	CtrlRotationSpeed  = "ctrl-rotation-speed"
)

// ControlPanel binds the visualizer's parameters to a panel. Color,
// emissive and wireframe also update the material immediately; the rest are
// read by Tick.
func (v *Visualizer) ControlPanel() *panel.Panel {
	p := v.Params
	m := v.Material
	gui := panel.New("Controles")

	colors := gui.AddFolder("Cores")
	colors.AddColor(CtrlColor, "Base", &p.Color).OnChange(func() {
		if err := m.SetColor(p.Color); err != nil {
			common.DebugWarn(err.Error())
		}
	})
	colors.AddColor(CtrlEmissive, "Emissivo", &p.Emissive).OnChange(func() {
		if err := m.SetEmissive(p.Emissive); err != nil {
			common.DebugWarn(err.Error())
		}
	})
	colors.AddCheckbox(CtrlWireframe, "Wireframe", &p.Wireframe).OnChange(func() {
		m.SetWireframe(p.Wireframe)
	})

	glow := gui.AddFolder("Glow")
	glow.AddSlider(CtrlBloomStrength, "Intensidade", &p.BloomStrength, 0, 4, 0.05)
	glow.AddSlider(CtrlBloomRadius, "Raio", &p.BloomRadius, 0, 2, 0.01)
	glow.AddSlider(CtrlBloomThreshold, "Limite", &p.BloomThreshold, 0, 1, 0.01)

	motion := gui.AddFolder("Dinâmica")
	motion.AddSlider(CtrlDistortion, "Amplitude", &p.Distortion, 0, 6, 0.05)
	motion.AddSlider(CtrlNoiseFloor, "Sensibilidade", &p.NoiseFloor, 0, 0.5, 0.01)
	motion.AddSlider(CtrlRotationSpeed, "Rotação", &p.RotationSpeed, 0, 0.4, 0.01)

	return gui
}
