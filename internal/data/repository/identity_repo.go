package repository

import (
	"context"
	"fmt"

	"storefront/internal/data/entity"
	"storefront/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type IdentityRepository interface {
	Create(ctx context.Context, identity *entity.Identity) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)
	FindByEmail(ctx context.Context, email string) (*entity.Identity, error)
}

type identityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewIdentityRepository(db database.PgxIface, log *zap.Logger) IdentityRepository {
	return &identityRepository{
		db:  db,
		log: log.With(zap.String("repository", "identity")),
	}
}

func (r *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	query := `
		INSERT INTO identities (id, email, password, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		identity.ID,
		identity.Email,
		identity.PasswordHash,
		identity.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create identity",
			zap.Error(err),
			zap.String("email", identity.Email),
		)
		return fmt.Errorf("create identity %s: %w", identity.Email, err)
	}

	return nil
}

func (r *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	query := `
		SELECT id, email, password, created_at
		FROM identities
		WHERE id = $1
	`

	var identity entity.Identity
	err := r.db.QueryRow(ctx, query, id).Scan(
		&identity.ID,
		&identity.Email,
		&identity.PasswordHash,
		&identity.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find identity by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find identity by ID %s: %w", id.String(), err)
	}

	return &identity, nil
}

func (r *identityRepository) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	query := `
		SELECT id, email, password, created_at
		FROM identities
		WHERE email = $1
	`

	var identity entity.Identity
	err := r.db.QueryRow(ctx, query, email).Scan(
		&identity.ID,
		&identity.Email,
		&identity.PasswordHash,
		&identity.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find identity by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find identity by email %s: %w", email, err)
	}

	return &identity, nil
}
