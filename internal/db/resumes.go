package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-builder/internal/types"
)

func encodeDocument(doc *types.Document) ([]byte, error) {
	stored := doc.Clone()
	stored.ID = ""
	data, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return data, nil
}

func scanResume(row pgx.Row) (*Resume, error) {
	var r Resume
	var raw []byte
	if err := row.Scan(&r.ID, &r.UserID, &r.Title, &raw, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	var doc types.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document %s: %w", r.ID, err)
	}
	doc.ID = r.ID.String()
	r.Document = &doc
	return &r, nil
}

// CreateResume stores a new résumé for the user
func (db *DB) CreateResume(ctx context.Context, userID uuid.UUID, doc *types.Document) (*Resume, error) {
	data, err := encodeDocument(doc)
	if err != nil {
		return nil, err
	}
	r, err := scanResume(db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, title, document)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, title, document, created_at, updated_at`,
		userID, doc.Title, data,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return r, nil
}

// GetResume retrieves a résumé owned by the user. Returns nil, nil when not found.
func (db *DB) GetResume(ctx context.Context, id, userID uuid.UUID) (*Resume, error) {
	r, err := scanResume(db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, document, created_at, updated_at
		 FROM resumes WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return r, nil
}

// UpdateResume replaces the whole stored document. Returns nil, nil when not found.
func (db *DB) UpdateResume(ctx context.Context, id, userID uuid.UUID, doc *types.Document) (*Resume, error) {
	data, err := encodeDocument(doc)
	if err != nil {
		return nil, err
	}
	r, err := scanResume(db.pool.QueryRow(ctx,
		`UPDATE resumes SET title = $1, document = $2, updated_at = NOW()
		 WHERE id = $3 AND user_id = $4
		 RETURNING id, user_id, title, document, created_at, updated_at`,
		doc.Title, data, id, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}
	return r, nil
}

// DeleteResume removes a résumé. Reports whether a row was deleted.
func (db *DB) DeleteResume(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListResumes returns the user's résumés, most recently edited first
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID) ([]types.ResumeSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, created_at, updated_at
		 FROM resumes WHERE user_id = $1
		 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var result []types.ResumeSummary
	for rows.Next() {
		var id uuid.UUID
		var s types.ResumeSummary
		if err := rows.Scan(&id, &s.Title, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		s.ID = id.String()
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resumes: %w", err)
	}
	return result, nil
}

// ResumeStats returns the résumé count and the latest edit time for a user
func (db *DB) ResumeStats(ctx context.Context, userID uuid.UUID) (int, *time.Time, error) {
	var count int
	var last *time.Time
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*), MAX(updated_at) FROM resumes WHERE user_id = $1`, userID,
	).Scan(&count, &last)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to get resume stats: %w", err)
	}
	return count, last, nil
}
