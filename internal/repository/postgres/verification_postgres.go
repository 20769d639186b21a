package postgres

import (
	"context"
	"database/sql"

	"matchapi/internal/model"
	"matchapi/internal/repository"
)

// VerificationPostgres is a PostgreSQL implementation of repository.VerificationRepository.
type VerificationPostgres struct {
	db *sql.DB
}

func NewVerificationPostgres(db *sql.DB) *VerificationPostgres {
	return &VerificationPostgres{db: db}
}

var _ repository.VerificationRepository = (*VerificationPostgres)(nil)

// Create inserts a new verification document row and returns the stored record.
func (r *VerificationPostgres) Create(ctx context.Context, doc *model.VerificationDocument) (*model.VerificationDocument, error) {
	const q = `
		INSERT INTO verification_documents (id, user_id, category, storage_path, download_url, size, content_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, user_id, category, storage_path, download_url, size, content_type, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.UserID,
		doc.Category,
		doc.StoragePath,
		doc.DownloadURL,
		doc.Size,
		doc.ContentType,
		doc.CreatedAt,
	)
	var out model.VerificationDocument
	if err := row.Scan(
		&out.ID,
		&out.UserID,
		&out.Category,
		&out.StoragePath,
		&out.DownloadURL,
		&out.Size,
		&out.ContentType,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByUser returns a user's verification documents, newest first.
func (r *VerificationPostgres) ListByUser(ctx context.Context, userID string) ([]model.VerificationDocument, error) {
	const q = `
		SELECT id, user_id, category, storage_path, download_url, size, content_type, created_at
		FROM verification_documents
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.VerificationDocument, 0)
	for rows.Next() {
		var d model.VerificationDocument
		if err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.Category,
			&d.StoragePath,
			&d.DownloadURL,
			&d.Size,
			&d.ContentType,
			&d.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
