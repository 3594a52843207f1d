package runs

import (
	"context"
	"database/sql"
	"errors"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) PutRun(ctx context.Context, r Run) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO paper_runs
		(id,source_name,paper_type,blueprint,format,outcome,topic_count,output_key,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET output_key=EXCLUDED.output_key, topic_count=EXCLUDED.topic_count, outcome=EXCLUDED.outcome`,
		r.ID, r.SourceName, r.PaperType, r.Blueprint, r.Format, r.Outcome, r.TopicCount, r.OutputKey, r.CreatedAt)
	return err
}

func (s *SQLStore) GetRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,source_name,paper_type,blueprint,format,outcome,topic_count,output_key,created_at
		FROM paper_runs WHERE id=$1`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNotFound
	}
	return r, err
}

func (s *SQLStore) ListRuns(ctx context.Context, limit, offset int) ([]Run, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id,source_name,paper_type,blueprint,format,outcome,topic_count,output_key,created_at
		FROM paper_runs ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Run{}
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	err := sc.Scan(&r.ID, &r.SourceName, &r.PaperType, &r.Blueprint, &r.Format, &r.Outcome, &r.TopicCount, &r.OutputKey, &r.CreatedAt)
	return r, err
}
