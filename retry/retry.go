// Package retry retries operations whose failures were classified as
// transient at the point of occurrence. Callers at the external boundary
// wrap errors with Transient or Permanent; Do never inspects error text.
package retry

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// Class partitions faults into retriable and non-retriable.
type Class int

const (
	// ClassPermanent faults are returned immediately.
	ClassPermanent Class = iota
	// ClassTransient faults (connection resets, flaky session setup) are
	// worth another attempt.
	ClassTransient
)

type classified struct {
	class Class
	err   error
}

func (e *classified) Error() string { return e.err.Error() }
func (e *classified) Unwrap() error { return e.err }

// Transient marks err as retriable.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &classified{class: ClassTransient, err: err}
}

// Permanent marks err as non-retriable.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &classified{class: ClassPermanent, err: err}
}

// ClassOf reports the classification of err. Unclassified errors are
// permanent: only faults explicitly marked at the boundary are retried.
func ClassOf(err error) Class {
	var c *classified
	if errors.As(err, &c) {
		return c.class
	}
	return ClassPermanent
}

// Do runs fn up to attempts times, sleeping delay between attempts, and
// retries only transient faults. The last error is returned with its
// classification marker intact (errors.Is/As see through it).
func Do(logger zerolog.Logger, attempts int, delay time.Duration, fn func() error) error {
	var last error
	for attempt := 1; attempt <= attempts; attempt++ {
		last = fn()
		if last == nil {
			return nil
		}
		if ClassOf(last) != ClassTransient {
			return last
		}
		if attempt < attempts {
			logger.Warn().
				Err(last).
				Int("attempt", attempt).
				Dur("delay", delay).
				Msg("Transient fault, retrying")
			time.Sleep(delay)
		}
	}
	return last
}
