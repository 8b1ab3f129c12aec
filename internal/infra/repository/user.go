package repository

import (
	"context"

	"party-rental/internal/domain/user"
	"party-rental/internal/infra"
	"party-rental/internal/infra/sqlstore"
	"party-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	UpdateUserLastLogin(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) error
	CreateUser(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CreateUserParams) (uuid.UUID, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlstore.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlstore.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	err := r.queries.UpdateUserLastLogin(ctx, r.db, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	params := sqlstore.CreateUserParams{
		Email:        u.Email().Value(),
		Name:         u.Name().String(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
	}

	id, err := r.queries.CreateUser(ctx, r.db, params)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("user email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}
