package runs_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/mind-engage/papergen/internal/db"
	"github.com/mind-engage/papergen/internal/runs"
)

func sqliteStore(t *testing.T) runs.Store {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	dsn := "file:" + filepath.Join(t.TempDir(), "runs.db") + "?_pragma=busy_timeout(5000)"
	dbh, err := db.Open(ctx, db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { dbh.Close() })
	return runs.NewSQLStore(dbh)
}

func stores(t *testing.T) map[string]runs.Store {
	return map[string]runs.Store{
		"memory": runs.NewInMemoryStore(),
		"sqlite": sqliteStore(t),
	}
}

func sampleRun(i int) runs.Run {
	return runs.Run{
		ID:         fmt.Sprintf("run-%d", i),
		SourceName: "syllabus.pdf",
		PaperType:  "50",
		Blueprint:  "50",
		Format:     "pdf",
		Outcome:    "extracted",
		TopicCount: 10 + i,
		OutputKey:  fmt.Sprintf("question_paper_50_%d.docx", 1000+i),
		CreatedAt:  int64(1700000000 + i),
	}
}

func TestStore_PutGet(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			want := sampleRun(1)
			if err := s.PutRun(ctx, want); err != nil {
				t.Fatalf("PutRun: %v", err)
			}
			got, err := s.GetRun(ctx, want.ID)
			if err != nil {
				t.Fatalf("GetRun: %v", err)
			}
			if got != want {
				t.Errorf("got %+v, want %+v", got, want)
			}

			if _, err := s.GetRun(ctx, "missing"); !errors.Is(err, runs.ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestStore_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 5; i++ {
				if err := s.PutRun(ctx, sampleRun(i)); err != nil {
					t.Fatalf("PutRun: %v", err)
				}
			}

			all, err := s.ListRuns(ctx, 0, 0)
			if err != nil {
				t.Fatalf("ListRuns: %v", err)
			}
			if len(all) != 5 {
				t.Fatalf("expected 5 runs, got %d", len(all))
			}
			if all[0].ID != "run-4" || all[4].ID != "run-0" {
				t.Errorf("unexpected order: %s .. %s", all[0].ID, all[4].ID)
			}

			pageTwo, err := s.ListRuns(ctx, 2, 2)
			if err != nil {
				t.Fatalf("ListRuns: %v", err)
			}
			if len(pageTwo) != 2 || pageTwo[0].ID != "run-2" || pageTwo[1].ID != "run-1" {
				t.Errorf("unexpected page: %+v", pageTwo)
			}

			empty, err := s.ListRuns(ctx, 10, 50)
			if err != nil {
				t.Fatalf("ListRuns: %v", err)
			}
			if len(empty) != 0 {
				t.Errorf("expected empty page, got %d", len(empty))
			}
		})
	}
}

func TestStore_PutIsUpsert(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			r := sampleRun(7)
			if err := s.PutRun(ctx, r); err != nil {
				t.Fatal(err)
			}
			r.OutputKey = "question_paper_50_9999.docx"
			if err := s.PutRun(ctx, r); err != nil {
				t.Fatalf("second PutRun: %v", err)
			}
			got, err := s.GetRun(ctx, r.ID)
			if err != nil {
				t.Fatal(err)
			}
			if got.OutputKey != r.OutputKey {
				t.Errorf("output key = %q", got.OutputKey)
			}
		})
	}
}
