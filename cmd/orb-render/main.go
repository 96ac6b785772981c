// Command orb-render renders the audio-reactive sphere for a WAV or MP3 file
// (or a synthesized demo track) into numbered PNG frames.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/simukka/sonosphere/app"
	"github.com/simukka/sonosphere/audio"
	"github.com/simukka/sonosphere/common"
	"github.com/simukka/sonosphere/cmd/orb-render/analysis"
	"github.com/simukka/sonosphere/cmd/orb-render/pcm"
	"github.com/simukka/sonosphere/cmd/orb-render/raster"
)

// options are the command line settings.
type options struct {
	In          string
	Demo        bool
	DemoSeconds float64
	Seed        uint
	Out         string
	FPS         float64
	Width       int
	Height      int
	Workers     int
	MaxFrames   int
	Settings    settings
}

// settings collects repeated -set id=value flags.
type settings []string

func (s *settings) String() string { return strings.Join(*s, ",") }

func (s *settings) Set(v string) error {
	if !strings.Contains(v, "=") {
		return fmt.Errorf("expected id=value, got %q", v)
	}
	*s = append(*s, v)
	return nil
}

type frameJob struct {
	index int
	img   image.Image
}

func main() {
	var opts options
	flag.StringVar(&opts.In, "in", "", "WAV or MP3 file to render")
	flag.BoolVar(&opts.Demo, "demo", false, "render a synthesized demo track instead of -in")
	flag.Float64Var(&opts.DemoSeconds, "demo-seconds", 8, "length of the demo track")
	flag.UintVar(&opts.Seed, "seed", 1, "demo track seed")
	flag.StringVar(&opts.Out, "out", "frames", "directory for frame PNGs")
	flag.Float64Var(&opts.FPS, "fps", 30, "frames per second")
	flag.IntVar(&opts.Width, "width", 1280, "frame width")
	flag.IntVar(&opts.Height, "height", 720, "frame height")
	flag.IntVar(&opts.Workers, "workers", 8, "concurrent PNG encoders")
	flag.IntVar(&opts.MaxFrames, "max-frames", 0, "stop after this many frames (0 renders the whole track)")
	flag.Var(&opts.Settings, "set", "control override id=value, e.g. ctrl-color=#ff00aa (repeatable)")
	flag.BoolVar(&common.EnableDebug, "debug", false, "verbose logging")
	flag.Parse()

	n, err := run(context.Background(), opts)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d frames to %s", n, opts.Out)
}

// run decodes the input, simulates playback frame by frame and writes the
// frames. Simulation is sequential; PNG encoding runs on a worker pool.
func run(ctx context.Context, opts options) (int, error) {
	if opts.FPS <= 0 {
		return 0, errors.New("fps must be positive")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return 0, errors.New("width and height must be positive")
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	clip, file, err := loadClip(opts)
	if err != nil {
		return 0, err
	}
	log.Printf("%s: %.2fs at %d Hz", file.FileName, clip.Duration(), clip.SampleRate)

	if err := os.MkdirAll(opts.Out, 0o755); err != nil {
		return 0, err
	}

	tape := analysis.NewTape(clip.Samples, clip.SampleRate)
	analyser := audio.NewAnalyser(audio.DefaultConfig(), tape)
	loader := audio.NewLoader(audio.NewMemoryURLs(), tape, analyser, func(s string) {
		log.Print(s)
	})
	canvas := raster.NewRaster(opts.Width, opts.Height)
	vis := app.New(canvas, analyser, loader, opts.Width, opts.Height)
	tape.OnPause(vis.HandlePause)
	tape.OnEnded(vis.HandleEnded)

	gui := vis.ControlPanel()
	for _, kv := range opts.Settings {
		parts := strings.SplitN(kv, "=", 2)
		if err := gui.Set(parts[0], parts[1]); err != nil {
			return 0, err
		}
	}

	if err := vis.LoadFile(ctx, file); err != nil {
		return 0, err
	}

	frames := int(math.Ceil(clip.Duration() * opts.FPS))
	if opts.MaxFrames > 0 && frames > opts.MaxFrames {
		frames = opts.MaxFrames
	}

	jobs := make(chan frameJob, opts.Workers*2)
	errs := make(chan error, opts.Workers)
	var wg sync.WaitGroup

	// Start worker goroutines
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				path := filepath.Join(opts.Out, fmt.Sprintf("frame%05d.png", job.index))
				if err := gg.SavePNG(path, job.img); err != nil {
					select {
					case errs <- fmt.Errorf("frame %d: %w", job.index, err):
					default:
					}
				}
			}
		}()
	}

	dt := 1 / opts.FPS
	written := 0
	var runErr error
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		if i > 0 {
			tape.Advance(dt)
		}
		vis.Tick(float64(i) * dt)
		jobs <- frameJob{index: i, img: canvas.Snapshot()}
		written++
		common.Debugf("frame %d level %.3f state %s", i, vis.Params.AudioLevel, vis.State())
	}
	close(jobs)
	wg.Wait()

	select {
	case err := <-errs:
		return written, err
	default:
	}
	return written, runErr
}

// loadClip decodes -in or synthesizes the demo track.
func loadClip(opts options) (*pcm.Clip, audio.LocalFile, error) {
	if opts.Demo {
		clip := pcm.Demo(opts.DemoSeconds, 44100, uint32(opts.Seed))
		return clip, audio.LocalFile{FileName: "demo.wav", MediaType: "audio/wav"}, nil
	}
	if opts.In == "" {
		return nil, audio.LocalFile{}, errors.New("no input: pass -in FILE or -demo")
	}
	file := audio.LocalFile{FileName: filepath.Base(opts.In), MediaType: pcm.MediaType(opts.In)}
	if !audio.IsAudio(file.MediaType) {
		return nil, file, fmt.Errorf("%w: %s", audio.ErrInvalidFileType, file.FileName)
	}
	clip, err := pcm.DecodeFile(opts.In)
	if err != nil {
		return nil, file, err
	}
	return clip, file, nil
}
