package audio

import "errors"

var (
	// ErrInvalidFileType is returned when the selected file is not audio.
	ErrInvalidFileType = errors.New("invalid file type")

	// ErrPlaybackStart is returned when the host rejects the play request.
	ErrPlaybackStart = errors.New("playback start failed")

	// ErrSuperseded is returned by a load that was replaced by a newer load
	// while it waited for playback to start.
	ErrSuperseded = errors.New("load superseded")

	// ErrAudioUnavailable is returned when the host has no audio graph.
	ErrAudioUnavailable = errors.New("audio context unavailable")
)
