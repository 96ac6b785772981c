package audio

import (
	"context"
	"fmt"
	"strings"

	"github.com/simukka/sonosphere/common"
)

// Status messages shown to the user.
const (
	StatusInvalidFile = "Por favor, selecione um arquivo de áudio válido."
	StatusPaused      = "Música pausada"
	StatusEnded       = "Reprodução finalizada"
)

// StatusPlaying is shown while name plays.
func StatusPlaying(name string) string {
	return "Tocando: " + name
}

// StatusPlaybackFailed is shown when the host refuses to start name.
func StatusPlaybackFailed(name string) string {
	return "Não foi possível reproduzir: " + name
}

// File is a user-selected file.
type File interface {
	Name() string
	Type() string // declared media type, e.g. "audio/mpeg"
}

// URLStore creates and releases resource handles bound to file bytes.
type URLStore interface {
	Create(f File) (string, error)
	Revoke(url string)
}

// Player is the playback element.
type Player interface {
	SetSource(url string)
	// Play starts playback and blocks until the host accepts or rejects it.
	Play(ctx context.Context) error
	Pause()
}

// Session is the currently selected audio file.
type Session struct {
	URL      string
	FileName string
	Playing  bool
}

// Loader owns the single live audio session. It is driven from the host's
// event loop and is not safe for concurrent use.
type Loader struct {
	urls     URLStore
	player   Player
	analyser *Analyser
	status   func(string)

	session *Session
	playing bool
	text    string
}

// NewLoader creates a loader. status receives every user-visible message;
// it may be nil.
func NewLoader(urls URLStore, player Player, analyser *Analyser, status func(string)) *Loader {
	return &Loader{
		urls:     urls,
		player:   player,
		analyser: analyser,
		status:   status,
	}
}

// IsAudio reports whether a declared media type is audio.
func IsAudio(mediaType string) bool {
	return strings.Contains(mediaType, "audio")
}

// Load replaces the current session with f and starts playback.
//
// A non-audio file is rejected with ErrInvalidFileType and leaves every
// piece of state untouched. A rejected play request returns
// ErrPlaybackStart; the new session stays selected but not playing. If
// another Load replaces this one while it waits, ErrSuperseded is returned
// and the newer session is left alone.
func (l *Loader) Load(ctx context.Context, f File) (*Session, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: no file", ErrInvalidFileType)
	}
	if !IsAudio(f.Type()) {
		l.setStatus(StatusInvalidFile)
		return nil, fmt.Errorf("%w: %q is %q", ErrInvalidFileType, f.Name(), f.Type())
	}

	if l.analyser != nil {
		if err := l.analyser.Ensure(); err != nil {
			// playback still works without analysis; the sphere idles
			common.DebugWarn("analyser unavailable:", err.Error())
		}
	}

	l.release()

	url, err := l.urls.Create(f)
	if err != nil {
		return nil, fmt.Errorf("create url for %q: %w", f.Name(), err)
	}
	s := &Session{URL: url, FileName: f.Name()}
	l.session = s
	l.playing = false

	l.player.SetSource(url)
	if err := l.player.Play(ctx); err != nil {
		if l.session != s {
			return nil, ErrSuperseded
		}
		l.setStatus(StatusPlaybackFailed(s.FileName))
		return s, fmt.Errorf("%w: %q: %w", ErrPlaybackStart, s.FileName, err)
	}
	if l.session != s {
		return nil, ErrSuperseded
	}

	l.markPlaying()
	return s, nil
}

// HandlePlay records that the element started or resumed playback.
func (l *Loader) HandlePlay() {
	if l.analyser != nil {
		if err := l.analyser.Ensure(); err != nil {
			common.DebugWarn("analyser unavailable:", err.Error())
		}
	}
	l.markPlaying()
}

// HandlePause records that the element paused.
func (l *Loader) HandlePause() {
	l.setPlaying(false)
	l.setStatus(StatusPaused)
}

// HandleEnded records the end of playback and releases the handle.
func (l *Loader) HandleEnded() {
	l.setPlaying(false)
	l.setStatus(StatusEnded)
	l.release()
}

// Session returns a copy of the live session.
func (l *Loader) Session() (Session, bool) {
	if l.session == nil {
		return Session{}, false
	}
	return *l.session, true
}

// Playing reports whether audio is currently playing.
func (l *Loader) Playing() bool {
	return l.playing
}

// Status returns the last user-visible message.
func (l *Loader) Status() string {
	return l.text
}

func (l *Loader) markPlaying() {
	l.setPlaying(true)
	if l.session != nil && l.session.FileName != "" {
		l.setStatus(StatusPlaying(l.session.FileName))
	}
}

func (l *Loader) setPlaying(on bool) {
	l.playing = on
	if l.session != nil {
		l.session.Playing = on
	}
}

// release revokes the live handle, if any. Calling it twice is harmless.
func (l *Loader) release() {
	if l.session == nil {
		return
	}
	l.setPlaying(false)
	l.urls.Revoke(l.session.URL)
	l.session = nil
}

func (l *Loader) setStatus(text string) {
	l.text = text
	if l.status != nil {
		l.status(text)
	}
}
