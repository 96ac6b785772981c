// Package pcm decodes audio files into mono float samples for offline
// analysis.
package pcm

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// ErrUnsupported is returned for files that are neither WAV nor MP3.
var ErrUnsupported = errors.New("unsupported audio format")

// Clip is decoded mono audio.
type Clip struct {
	Samples    []float64 // [-1, 1]
	SampleRate int
}

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.SampleRate)
}

var knownTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".wave": "audio/wav",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".m4a":  "audio/mp4",
}

// MediaType guesses the declared media type of a file from its extension,
// the way a browser file picker reports it.
func MediaType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := knownTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		if i := strings.IndexByte(t, ';'); i >= 0 {
			t = t[:i]
		}
		return t
	}
	return "application/octet-stream"
}

// DecodeFile decodes a WAV or MP3 file chosen by extension.
func DecodeFile(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch MediaType(path) {
	case "audio/wav":
		return DecodeWAV(f)
	case "audio/mpeg":
		return DecodeMP3(f)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Base(path))
}

// DecodeWAV reads a PCM WAV stream and mixes it down to mono.
func DecodeWAV(r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: invalid wav file", ErrUnsupported)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, errors.New("decode wav: missing format")
	}

	depth := int(dec.BitDepth)
	if depth <= 0 {
		depth = 16
	}
	scale := 1 / float64(int64(1)<<uint(depth-1))
	// 8-bit WAV samples are unsigned around 128.
	offset := 0.0
	if depth == 8 {
		offset = 128
	}

	ch := buf.Format.NumChannels
	frames := len(buf.Data) / ch
	out := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for c := 0; c < ch; c++ {
			sum += float64(buf.Data[i*ch+c]) - offset
		}
		out[i] = sum / float64(ch) * scale
	}
	return &Clip{Samples: out, SampleRate: buf.Format.SampleRate}, nil
}

// DecodeMP3 reads an MP3 stream. The decoder always yields 16-bit
// little-endian stereo.
func DecodeMP3(r io.Reader) (*Clip, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}

	var out []float64
	buf := make([]byte, 4096)
	var carry []byte
	for {
		n, err := dec.Read(buf)
		if n > 0 {
			chunk := append(carry, buf[:n]...)
			whole := len(chunk) / 4 * 4
			for i := 0; i < whole; i += 4 {
				l := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
				r := int16(uint16(chunk[i+2]) | uint16(chunk[i+3])<<8)
				out = append(out, (float64(l)+float64(r))/2/32768)
			}
			carry = append(carry[:0], chunk[whole:]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode mp3: %w", err)
		}
	}
	return &Clip{Samples: out, SampleRate: dec.SampleRate()}, nil
}
