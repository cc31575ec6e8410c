package dicts

import (
	"fmt"
	"sync"
)

// LoadError reports a failed dictionary-source operation: an unreadable
// lexicon file, a corrupt snapshot, and the like. Individual malformed
// lexicon lines are never a LoadError; they are skipped with a trace
// diagnostic.
type LoadError struct {
	Op   string // "read", "parse", "decode", "write"
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("dicts: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// --- Last-error slot --------------------------------------------------

// The process-wide last-error slot is a diagnostic side channel for
// callers that cannot thread an error value everywhere (FFI-style
// consumers in particular). It is written only at error sites and is
// never the primary error path: every API here also returns a typed
// error.
var lastError struct {
	sync.Mutex
	msg string
}

// SetLastError records msg as the most recent failure.
func SetLastError(msg string) {
	lastError.Lock()
	lastError.msg = msg
	lastError.Unlock()
}

// LastError returns the most recently recorded failure, or "" if none.
func LastError() string {
	lastError.Lock()
	defer lastError.Unlock()
	return lastError.msg
}

// ClearLastError resets the slot.
func ClearLastError() {
	SetLastError("")
}

// recordError stores err in the last-error slot and returns it
// unchanged, so error sites can wrap and record in one expression.
func recordError(err error) error {
	if err != nil {
		SetLastError(err.Error())
	}
	return err
}
