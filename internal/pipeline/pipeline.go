// Package pipeline runs one syllabus upload through extraction, topic
// cleanup, template pooling, selection and rendering.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/mind-engage/papergen/internal/exam"
	"github.com/mind-engage/papergen/internal/formats"
	"github.com/mind-engage/papergen/internal/paper"
	"github.com/mind-engage/papergen/internal/runs"
	"github.com/mind-engage/papergen/internal/storage"
	"github.com/mind-engage/papergen/internal/syllabus"

	// extractors register themselves with formats
	_ "github.com/mind-engage/papergen/internal/formats/docx"
	_ "github.com/mind-engage/papergen/internal/formats/pdf"
	_ "github.com/mind-engage/papergen/internal/formats/plaintext"
)

// Generator holds the collaborators of a paper run. Runs is optional.
type Generator struct {
	Outputs storage.BlobStore
	Runs    runs.Store
	NewRand func() *rand.Rand
	Now     func() time.Time
}

func New(outputs storage.BlobStore, rs runs.Store) *Generator {
	return &Generator{Outputs: outputs, Runs: rs, NewRand: exam.NewRand, Now: time.Now}
}

type Result struct {
	RunID      string          `json:"run_id"`
	OutputKey  string          `json:"output_key"`
	OutputPath string          `json:"output_path"`
	Format     formats.Format  `json:"format"`
	Outcome    formats.Outcome `json:"outcome"`
	TopicCount int             `json:"topic_count"`
	Blueprint  exam.Blueprint  `json:"blueprint"`
}

// Process turns the document at path into a saved question paper. Every
// degenerate input still produces a paper; the only error is failing to
// write the output.
func (g *Generator) Process(ctx context.Context, path, sourceName, paperType string) (Result, error) {
	rng := g.newRand()

	ext := formats.Extract(ctx, path)
	if !ext.OK() {
		log.Printf("pipeline: %s (%s) unextractable, continuing with empty text: %v", sourceName, ext.Format, ext.Err)
	}

	topics := syllabus.TopicLines(ext.Text)
	bp := exam.BlueprintFor(paperType)
	sel := exam.Select(rng, exam.BuildPools(topics), bp)

	key, err := paper.Save(g.Outputs, paper.Layout(sel, paperType), paperType, rng)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: %w", err)
	}
	outPath, err := g.Outputs.Path(key)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: %w", err)
	}

	res := Result{
		RunID:      uuid.NewString(),
		OutputKey:  key,
		OutputPath: outPath,
		Format:     ext.Format,
		Outcome:    ext.Outcome,
		TopicCount: len(topics),
		Blueprint:  bp,
	}
	log.Printf("pipeline: run=%s source=%s type=%q blueprint=%s topics=%d output=%s",
		res.RunID, sourceName, paperType, bp.PaperType, res.TopicCount, key)

	if g.Runs != nil {
		err := g.Runs.PutRun(ctx, runs.Run{
			ID:         res.RunID,
			SourceName: sourceName,
			PaperType:  paperType,
			Blueprint:  bp.PaperType,
			Format:     string(res.Format),
			Outcome:    string(res.Outcome),
			TopicCount: res.TopicCount,
			OutputKey:  key,
			CreatedAt:  g.now().Unix(),
		})
		if err != nil {
			log.Printf("pipeline: run log write failed for %s: %v", res.RunID, err)
		}
	}
	return res, nil
}

func (g *Generator) newRand() *rand.Rand {
	if g.NewRand != nil {
		return g.NewRand()
	}
	return exam.NewRand()
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}
