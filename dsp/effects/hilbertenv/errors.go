package hilbertenv

import "errors"

var (
	// ErrNotPrepared is returned by Process before a successful Prepare or
	// after Release.
	ErrNotPrepared = errors.New("hilbertenv: processor not prepared")
	// ErrTooManyChannels is returned when a block has more channels than
	// the processor was configured for.
	ErrTooManyChannels = errors.New("hilbertenv: too many channels")
	// ErrShortBuffer is returned when a channel slice holds fewer samples
	// than requested or the sample count is negative.
	ErrShortBuffer = errors.New("hilbertenv: channel buffer shorter than sample count")
)
