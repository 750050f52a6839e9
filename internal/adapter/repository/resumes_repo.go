package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resume-builder/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// ErrResumeNotFound is returned for lookups and deletes of ids the store
// does not hold.
var ErrResumeNotFound = errors.New("resume not found")

// ResumesRepo stores whole-document snapshots in the resumes table: the
// document as jsonb plus denormalized name/email columns for the listing
// query.
type ResumesRepo struct {
	pool *pgxpool.Pool
}

func NewResumesRepo(pool *pgxpool.Pool) *ResumesRepo {
	return &ResumesRepo{pool: pool}
}

// Save persists the document and returns the stored snapshot. A document
// without an id is created and assigned one; a document with an id replaces
// the stored row. Timestamps are set here, not by the caller.
func (r *ResumesRepo) Save(ctx context.Context, doc model.Resume) (model.Resume, error) {
	if r.pool == nil {
		return model.Resume{}, errors.New("resumes store unavailable")
	}

	now := time.Now().UTC()
	creating := doc.ID == ""
	if creating {
		doc.ID = uuid.NewString()
		doc.CreatedAt = &now
	} else {
		if _, err := uuid.Parse(doc.ID); err != nil {
			return model.Resume{}, fmt.Errorf("invalid resume id %q: %w", doc.ID, err)
		}
		if doc.CreatedAt == nil {
			doc.CreatedAt = &now
		}
	}
	doc.UpdatedAt = &now

	data, err := json.Marshal(doc)
	if err != nil {
		return model.Resume{}, fmt.Errorf("marshal resume: %w", err)
	}

	if creating {
		_, err = r.pool.Exec(ctx, `INSERT INTO resumes (id, full_name, email, data, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			doc.ID, doc.PersonalInfo.FullName, doc.PersonalInfo.Email, data, *doc.CreatedAt, *doc.UpdatedAt)
		if err != nil {
			return model.Resume{}, fmt.Errorf("insert resume: %w", err)
		}
		return doc, nil
	}

	tag, err := r.pool.Exec(ctx, `UPDATE resumes
		SET full_name = $2, email = $3, data = $4, updated_at = $5
		WHERE id = $1`,
		doc.ID, doc.PersonalInfo.FullName, doc.PersonalInfo.Email, data, *doc.UpdatedAt)
	if err != nil {
		return model.Resume{}, fmt.Errorf("update resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.Resume{}, ErrResumeNotFound
	}
	return doc, nil
}

// GetByID fetches one document. The jsonb payload is authoritative for the
// content; identity and timestamps come from the columns.
func (r *ResumesRepo) GetByID(ctx context.Context, id string) (model.Resume, error) {
	if r.pool == nil {
		return model.Resume{}, errors.New("resumes store unavailable")
	}

	var (
		raw                  []byte
		createdAt, updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, `SELECT data, created_at, updated_at FROM resumes WHERE id = $1`, id).
		Scan(&raw, &createdAt, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Resume{}, ErrResumeNotFound
	}
	if err != nil {
		return model.Resume{}, fmt.Errorf("fetch resume %s: %w", id, err)
	}

	var doc model.Resume
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.Resume{}, fmt.Errorf("decode resume %s: %w", id, err)
	}
	doc.ID = id
	doc.CreatedAt = &createdAt
	doc.UpdatedAt = &updatedAt
	return model.Normalize(doc), nil
}

// ListSummaries returns the listing projection for every stored resume,
// newest-updated first.
func (r *ResumesRepo) ListSummaries(ctx context.Context) ([]model.Summary, error) {
	if r.pool == nil {
		return nil, errors.New("resumes store unavailable")
	}

	rows, err := r.pool.Query(ctx, `SELECT id, full_name, email, created_at, updated_at
		FROM resumes ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	defer rows.Close()

	out := []model.Summary{}
	for rows.Next() {
		var (
			s                    model.Summary
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(&s.ID, &s.FullName, &s.Email, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan resume summary: %w", err)
		}
		s.CreatedAt = &createdAt
		s.UpdatedAt = &updatedAt
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete removes one document; deleting an unknown id reports NotFound.
func (r *ResumesRepo) Delete(ctx context.Context, id string) error {
	if r.pool == nil {
		return errors.New("resumes store unavailable")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete resume %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrResumeNotFound
	}
	return nil
}
