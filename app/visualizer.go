// Package app drives the sphere: it samples the audio level, deforms the
// mesh, advances rotation and camera and renders one frame per tick.
package app

import (
	"context"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/simukka/sonosphere/audio"
	"github.com/simukka/sonosphere/common"
	"github.com/simukka/sonosphere/render"
	"github.com/simukka/sonosphere/scene"
)

// State is the orchestrator state.
type State int

const (
	Idle State = iota
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "idle"
}

// Visualizer owns the scene and the render pipeline.
type Visualizer struct {
	Params   *scene.Params
	Material *scene.Material
	Base     *scene.BaseShape
	Mesh     *scene.MeshState
	Camera   *scene.Camera
	Orbit    *scene.OrbitControls
	Rotation mgl64.Vec3 // Euler angles, radians

	analyser *audio.Analyser
	loader   *audio.Loader
	audioCfg audio.Config

	projector *render.Projector
	composer  *render.Composer
	bloom     *render.BloomPass
	frame     render.Frame

	clock  common.Clock
	state  State
	width  int
	height int
}

// New builds the scene at its defaults and a render pass + bloom pass
// pipeline on canvas. analyser and loader may be nil.
func New(canvas render.Canvas, analyser *audio.Analyser, loader *audio.Loader, width, height int) *Visualizer {
	params := scene.DefaultParams()
	base := scene.NewIcosphere(scene.SphereRadius, scene.SphereDetail)

	cam := scene.NewCamera(1)
	v := &Visualizer{
		Params:    &params,
		Material:  scene.NewMaterial(params),
		Base:      base,
		Mesh:      scene.NewMeshState(base),
		Camera:    cam,
		Orbit:     scene.NewOrbitControls(cam),
		analyser:  analyser,
		loader:    loader,
		audioCfg:  audio.DefaultConfig(),
		projector: render.NewProjector(),
		composer:  render.NewComposer(canvas),
		bloom:     render.NewBloomPass(width, height, params.BloomStrength, params.BloomRadius, params.BloomThreshold),
		frame: render.Frame{
			Clear:      common.MustParseHex(render.Theme.ClearColor),
			ClearAlpha: render.Theme.ClearAlpha,
		},
	}
	if analyser != nil {
		v.audioCfg = analyser.Config()
	}

	v.composer.AddPass(render.RenderPass{})
	v.composer.AddPass(v.bloom)
	v.Resize(width, height)
	return v
}

// State returns Idle or Playing.
func (v *Visualizer) State() State {
	return v.state
}

// Size returns the viewport size.
func (v *Visualizer) Size() (width, height int) {
	return v.width, v.height
}

// Bloom returns the bloom pass.
func (v *Visualizer) Bloom() *render.BloomPass {
	return v.bloom
}

// Loader returns the audio loader, if any.
func (v *Visualizer) Loader() *audio.Loader {
	return v.loader
}

// Analyser returns the audio analyser, if any.
func (v *Visualizer) Analyser() *audio.Analyser {
	return v.analyser
}

// Resize updates the camera aspect and every pipeline buffer. Non-positive
// sizes are ignored.
func (v *Visualizer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.width, v.height = width, height
	v.Camera.SetAspect(float64(width) / float64(height))
	v.composer.SetSize(width, height)
}

// Tick runs one frame at host time now, in seconds.
func (v *Visualizer) Tick(now float64) {
	delta := v.clock.Tick(now)
	elapsed := v.clock.Elapsed()
	p := v.Params

	p.AudioLevel = v.level(delta)

	scene.Deform(v.Mesh, v.Base, p.AudioLevel, p, elapsed)

	v.Rotation[1] += p.RotationSpeed * delta
	v.Rotation[0] += (p.RotationSpeed*0.5 + p.AudioLevel*0.1) * delta
	v.Orbit.Update()

	v.bloom.Strength = p.BloomStrength
	v.bloom.Radius = p.BloomRadius
	v.bloom.Threshold = p.BloomThreshold

	v.frame.Wireframe = v.Material.Wireframe
	v.frame.Triangles = v.projector.Project(v.Mesh, v.Material, render.ModelMatrix(v.Rotation), v.Camera, v.width, v.height)
	v.composer.Render(&v.frame)
}

// level samples the analyser while playing and decays the last level
// otherwise.
func (v *Visualizer) level(delta float64) float64 {
	if v.state == Playing && v.analyser != nil {
		if level, ok := v.analyser.Sample(); ok {
			return level
		}
	}
	return audio.Decay(v.audioCfg, v.Params.AudioLevel, delta)
}

// LoadFile hands f to the loader and follows its playing state. It blocks
// until the host accepts or rejects playback.
func (v *Visualizer) LoadFile(ctx context.Context, f audio.File) error {
	if v.loader == nil {
		return audio.ErrAudioUnavailable
	}
	_, err := v.loader.Load(ctx, f)
	v.sync()
	return err
}

// HandlePlay, HandlePause and HandleEnded forward media element events.
func (v *Visualizer) HandlePlay() {
	if v.loader != nil {
		v.loader.HandlePlay()
	}
	v.sync()
}

func (v *Visualizer) HandlePause() {
	if v.loader != nil {
		v.loader.HandlePause()
	}
	v.sync()
}

func (v *Visualizer) HandleEnded() {
	if v.loader != nil {
		v.loader.HandleEnded()
	}
	v.sync()
}

// Resume wakes a suspended audio graph after a user gesture.
func (v *Visualizer) Resume() {
	if v.analyser != nil {
		v.analyser.Resume()
	}
}

func (v *Visualizer) sync() {
	if v.loader != nil && v.loader.Playing() {
		v.state = Playing
		return
	}
	v.state = Idle
}
