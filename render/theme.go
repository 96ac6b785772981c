package render

// Theme holds the scene look: lights, fog, clear color and the overlay
// styling.
var Theme = struct {
	// Page behind the canvas
	PageBackground string

	// Clear color, composited over the page every frame
	ClearColor string
	ClearAlpha float64

	// Exponential squared fog
	FogColor   string
	FogDensity float64

	// Ambient light
	AmbientColor     string
	AmbientIntensity float64

	// Point light
	PointColor     string
	PointIntensity float64
	PointX         float64
	PointY         float64
	PointZ         float64
	PointDistance  float64
	PointDecay     float64

	// Wireframe stroke width in CSS pixels
	LineWidth float64

	// Bloom blur at radius 0 and 1, for a 720 pixel tall viewport
	BloomBaseSpread  float64
	BloomRadiusScale float64

	// Device pixel ratio cap
	MaxPixelRatio float64

	// Stats overlay
	OverlayBackground string
	OverlayBorder     string
	OverlayTitle      string
	OverlayLabel      string
	OverlayFont       string
	OverlayTitleFont  string
}{
	PageBackground: "#000",

	ClearColor: "#010203",
	ClearAlpha: 0.12,

	FogColor:   "#021013",
	FogDensity: 0.04,

	AmbientColor:     "#73ffe0",
	AmbientIntensity: 0.6,

	PointColor:     "#8ef7ff",
	PointIntensity: 2.2,
	PointX:         5,
	PointY:         8,
	PointZ:         12,
	PointDistance:  60,
	PointDecay:     2,

	LineWidth: 1,

	BloomBaseSpread:  2,
	BloomRadiusScale: 8,

	MaxPixelRatio: 2,

	OverlayBackground: "rgba(0, 0, 0, 0.75)",
	OverlayBorder:     "#3ce0b8",
	OverlayTitle:      "#7fffd4",
	OverlayLabel:      "#aaaaaa",
	OverlayFont:       "12px monospace",
	OverlayTitleFont:  "bold 14px monospace",
}
