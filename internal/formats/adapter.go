package formats

import "context"

// Extractor turns one document format into flat text.
type Extractor interface {
	// Extract reads the file at path and returns its text content.
	Extract(ctx context.Context, path string) (string, error)
}

// ExtractorFunc adapts a plain function to an Extractor.
type ExtractorFunc func(ctx context.Context, path string) (string, error)

func (f ExtractorFunc) Extract(ctx context.Context, path string) (string, error) {
	return f(ctx, path)
}

// Registry of extractors by format. Subpackages register themselves in init().
var registry = map[Format]Extractor{}

// Register an extractor for a format. Call from init() in subpackages.
func Register(f Format, e Extractor) { registry[f] = e }

// Lookup returns the registered extractor for a format.
func Lookup(f Format) (Extractor, bool) { e, ok := registry[f]; return e, ok }
