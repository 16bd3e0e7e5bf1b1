package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Prm groups Logger's parameters.
type Prm struct {
	// support runtime rereading
	level zapcore.Level

	// do not support runtime rereading
	encoding string
}

const (
	// EncodingConsole is a human-readable log format.
	EncodingConsole = "console"
	// EncodingJSON is a machine-readable log format.
	EncodingJSON = "json"
)

// SetLevelString sets the minimum logging level. Default is "info".
//
// Returns an error if s is not a string representation of a
// supporting logging level.
//
// Supports runtime rereading.
func (p *Prm) SetLevelString(s string) error {
	return p.level.UnmarshalText([]byte(s))
}

// SetEncoding sets records encoding, console and json are supported.
// Default is console.
func (p *Prm) SetEncoding(s string) error {
	switch s {
	case "", EncodingConsole, EncodingJSON:
		p.encoding = s
		return nil
	default:
		return fmt.Errorf("unsupported log encoding %q", s)
	}
}

// NewLogger constructs a new zap logger instance. Constructing with nil
// parameters is safe: default values will be used then.
//
// Logger prioritizes all messages into different severity levels. Each log
// record contains timestamp, level, message and optional structured context.
// Console output is designed for human - rather than machine - consumption:
// it serializes the core log entry data (timestamp, level, etc.) in a
// plain-text format and leaves the structured context as JSON.
//
// Logs are written to stderr, so they never mix with command output.
func NewLogger(prm *Prm) (*zap.Logger, error) {
	if prm == nil {
		prm = new(Prm)
	}

	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(prm.level)
	c.Encoding = EncodingConsole
	if prm.encoding != "" {
		c.Encoding = prm.encoding
	}
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	c.Sampling = nil

	l, err := c.Build(
		zap.AddStacktrace(zap.NewAtomicLevelAt(zap.FatalLevel)),
	)
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return l, nil
}
