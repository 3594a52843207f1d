package formats

import (
	"context"
	"errors"
	"fmt"
)

// Outcome records whether a document yielded text.
type Outcome string

const (
	OutcomeExtracted     Outcome = "extracted"
	OutcomeUnextractable Outcome = "unextractable"
)

// ErrUnextractable classifies every extraction failure. Callers match it
// with errors.Is; the underlying cause stays wrapped alongside it.
var ErrUnextractable = errors.New("document is unextractable")

// Result is the outcome of one extraction. Text is empty unless Outcome is
// OutcomeExtracted.
type Result struct {
	Format  Format
	Text    string
	Outcome Outcome
	Err     error
}

func (r Result) OK() bool { return r.Outcome == OutcomeExtracted }

// Extract detects the format of path and runs the registered extractor.
// It never returns a Go error: failures come back as an unextractable
// Result and the caller decides whether to carry on with empty text.
func Extract(ctx context.Context, path string) Result {
	f := Detect(path)
	ex, ok := Lookup(f)
	if !ok {
		return unextractable(f, fmt.Errorf("no extractor registered for %s", f))
	}
	if err := ctx.Err(); err != nil {
		return unextractable(f, err)
	}
	text, err := ex.Extract(ctx, path)
	if err != nil {
		return unextractable(f, err)
	}
	return Result{Format: f, Text: text, Outcome: OutcomeExtracted}
}

func unextractable(f Format, cause error) Result {
	return Result{
		Format:  f,
		Outcome: OutcomeUnextractable,
		Err:     fmt.Errorf("%w: %w", ErrUnextractable, cause),
	}
}
