package builder

import "errors"

// ErrTooFewStations indicates a size parameter below the constructor minimum.
var ErrTooFewStations = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates p outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a failed edge insertion.
var ErrConstructFailed = errors.New("builder: construction failed")
