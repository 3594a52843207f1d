// Package runs records one metadata row per generated paper.
package runs

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("run not found")

type Run struct {
	ID         string `json:"id"`
	SourceName string `json:"source_name"`
	PaperType  string `json:"paper_type"` // as submitted
	Blueprint  string `json:"blueprint"`  // quota table actually used
	Format     string `json:"format"`
	Outcome    string `json:"outcome"`
	TopicCount int    `json:"topic_count"`
	OutputKey  string `json:"output_key"`
	CreatedAt  int64  `json:"created_at"`
}

type Store interface {
	PutRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, error)
	// ListRuns returns runs newest first.
	ListRuns(ctx context.Context, limit, offset int) ([]Run, error)
}
