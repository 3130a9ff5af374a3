package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/papapumpkin/astrolabe/internal/natal"
)

// Record is one JSON line of batch output. Exactly one of Chart and Error
// is set.
type Record struct {
	Timestamp time.Time    `json:"ts"`
	RunID     string       `json:"run"`
	Index     int          `json:"index"`
	Name      string       `json:"name"`
	Chart     *natal.Chart `json:"chart,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// Emitter writes records as JSON lines. It is safe for concurrent use by
// multiple goroutines. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	w   io.Writer
	enc *json.Encoder
	mu  sync.Mutex
}

// NewEmitter creates an Emitter writing to w.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w, enc: json.NewEncoder(w)}
}

// OpenEmitter creates an Emitter that appends to the file at path,
// creating it if needed.
func OpenEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("batch: open %s: %w", path, err)
	}
	return NewEmitter(f), nil
}

// Emit writes a single record. Calling Emit on a nil Emitter is a no-op.
func (e *Emitter) Emit(rec Record) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.enc.Encode(rec); err != nil {
		return fmt.Errorf("batch: encode record: %w", err)
	}
	return nil
}

// Close closes the underlying writer when it is closable. Calling Close on
// a nil Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	c, ok := e.w.(io.Closer)
	if !ok || e.w == os.Stdout {
		return nil
	}
	if err := c.Close(); err != nil {
		return fmt.Errorf("batch: close: %w", err)
	}
	return nil
}
