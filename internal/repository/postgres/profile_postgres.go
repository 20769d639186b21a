package postgres

import (
	"context"
	"database/sql"

	"matchapi/internal/model"
	"matchapi/internal/repository"
)

// ProfilePostgres is a PostgreSQL implementation of repository.ProfileRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ProfilePostgres struct {
	db *sql.DB
}

func NewProfilePostgres(db *sql.DB) *ProfilePostgres {
	return &ProfilePostgres{db: db}
}

var _ repository.ProfileRepository = (*ProfilePostgres)(nil)

const profileColumns = `user_id, name, age, gender, prefecture, city, disability, bio, photo_url, updated_at`

// Upsert inserts or replaces the profile row keyed by user_id.
func (r *ProfilePostgres) Upsert(ctx context.Context, p *model.UserProfile) (*model.UserProfile, error) {
	const q = `
		INSERT INTO profiles (user_id, name, age, gender, prefecture, city, disability, bio, photo_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			age = EXCLUDED.age,
			gender = EXCLUDED.gender,
			prefecture = EXCLUDED.prefecture,
			city = EXCLUDED.city,
			disability = EXCLUDED.disability,
			bio = EXCLUDED.bio,
			photo_url = EXCLUDED.photo_url,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + profileColumns + `
	`
	row := r.db.QueryRowContext(ctx, q,
		p.UserID,
		p.Name,
		p.Age,
		p.Gender,
		p.Prefecture,
		p.City,
		p.Disability,
		p.Bio,
		p.PhotoURL,
		p.UpdatedAt,
	)
	return scanProfile(row)
}

// FindByUserID fetches a single profile by its owner's id.
func (r *ProfilePostgres) FindByUserID(ctx context.Context, userID string) (*model.UserProfile, error) {
	const q = `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE user_id = $1
	`
	return scanProfile(r.db.QueryRowContext(ctx, q, userID))
}

// ListAll returns every profile, most recently updated first.
func (r *ProfilePostgres) ListAll(ctx context.Context) ([]model.UserProfile, error) {
	const q = `
		SELECT ` + profileColumns + `
		FROM profiles
		ORDER BY updated_at DESC, user_id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.UserProfile, 0)
	for rows.Next() {
		var p model.UserProfile
		if err := rows.Scan(
			&p.UserID,
			&p.Name,
			&p.Age,
			&p.Gender,
			&p.Prefecture,
			&p.City,
			&p.Disability,
			&p.Bio,
			&p.PhotoURL,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanProfile(row *sql.Row) (*model.UserProfile, error) {
	var p model.UserProfile
	if err := row.Scan(
		&p.UserID,
		&p.Name,
		&p.Age,
		&p.Gender,
		&p.Prefecture,
		&p.City,
		&p.Disability,
		&p.Bio,
		&p.PhotoURL,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
