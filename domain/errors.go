package domain

import "errors"

var (
	ErrEmptyScript          = errors.New("narration script is empty")
	ErrNoBeats              = errors.New("no narrative beats")
	ErrInvalidBeatWeight    = errors.New("beat weight must be positive")
	ErrInvalidAudioDuration = errors.New("audio duration must be positive")
	ErrFootageUnavailable   = errors.New("stock footage unavailable")
	ErrNoFootageCandidate   = errors.New("no stock footage candidate")
	ErrDownloadFailed       = errors.New("clip download failed")
	ErrNoSegments           = errors.New("no visual segments")
)
