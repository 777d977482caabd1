package config

import "errors"

// Sentinel errors returned by Validate. Callers branch with errors.Is.
var (
	// ErrBadSteps indicates a negative walk length or a non-positive estimate budget.
	ErrBadSteps = errors.New("config: steps out of range")
	// ErrBadTrials indicates a non-positive trial count.
	ErrBadTrials = errors.New("config: trials must be positive")
	// ErrBadStrength indicates a negative or non-finite reinforcement strength.
	ErrBadStrength = errors.New("config: strength must be finite and non-negative")
	// ErrBadDelay indicates a negative activation delay.
	ErrBadDelay = errors.New("config: delay must be non-negative")
	// ErrBadMemory indicates a negative memory window.
	ErrBadMemory = errors.New("config: memory must be non-negative")
	// ErrUnknownKind indicates a walk kind other than simple or reinforced.
	ErrUnknownKind = errors.New("config: unknown walk kind")
	// ErrBadLogLevel indicates an unsupported logging level.
	ErrBadLogLevel = errors.New("config: unknown log level")
)
