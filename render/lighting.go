package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/simukka/sonosphere/common"
	"github.com/simukka/sonosphere/scene"
)

// Lights is one ambient and one point light.
type Lights struct {
	Ambient          common.Color
	AmbientIntensity float64

	Point          common.Color
	PointIntensity float64
	PointPosition  mgl64.Vec3
	PointDistance  float64 // cutoff, 0 means unlimited
	PointDecay     float64
}

// DefaultLights builds the lights from Theme.
func DefaultLights() Lights {
	return Lights{
		Ambient:          common.MustParseHex(Theme.AmbientColor),
		AmbientIntensity: Theme.AmbientIntensity,
		Point:            common.MustParseHex(Theme.PointColor),
		PointIntensity:   Theme.PointIntensity,
		PointPosition:    mgl64.Vec3{Theme.PointX, Theme.PointY, Theme.PointZ},
		PointDistance:    Theme.PointDistance,
		PointDecay:       Theme.PointDecay,
	}
}

// Attenuation is the point light falloff at distance d: inverse power of
// the decay, windowed smoothly to zero at the cutoff distance.
func (l Lights) Attenuation(d float64) float64 {
	falloff := 1 / math.Max(math.Pow(d, l.PointDecay), 0.01)
	if l.PointDistance > 0 {
		w := common.Clamp01(1 - math.Pow(d/l.PointDistance, 4))
		falloff *= w * w
	}
	return falloff
}

// Shade computes the diffuse + emissive color of a surface point in world
// space.
func (l Lights) Shade(mat *scene.Material, pos, normal mgl64.Vec3) common.Color {
	irradiance := l.Ambient.Scale(l.AmbientIntensity)

	toLight := l.PointPosition.Sub(pos)
	if d := toLight.Len(); d > 0 {
		ndl := normal.Dot(toLight.Mul(1 / d))
		if ndl > 0 {
			irradiance = irradiance.Add(l.Point.Scale(l.PointIntensity * ndl * l.Attenuation(d)))
		}
	}

	emissive := mat.Emissive.Scale(mat.EmissiveIntensity)
	return mat.Color.Mul(irradiance).Add(emissive).Clamp()
}

// Fog is exponential squared fog.
type Fog struct {
	Color   common.Color
	Density float64
}

// DefaultFog builds the fog from Theme.
func DefaultFog() Fog {
	return Fog{
		Color:   common.MustParseHex(Theme.FogColor),
		Density: Theme.FogDensity,
	}
}

// Factor returns how much of the fog color shows at view depth.
func (f Fog) Factor(depth float64) float64 {
	return common.Clamp01(1 - math.Exp(-f.Density*f.Density*depth*depth))
}

// Apply blends c towards the fog color for a surface at view depth.
func (f Fog) Apply(c common.Color, depth float64) common.Color {
	return c.Lerp(f.Color, f.Factor(depth))
}
