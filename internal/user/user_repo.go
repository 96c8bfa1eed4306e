package user

import (
	"context"
	"database/sql"

	"go-retail-pos/internal/shared/database/dbgen"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user_repo.go -destination=../mock/user/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx dbgen.DBTX) Repository

	Create(ctx context.Context, arg dbgen.CreateUserParams) (dbgen.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (dbgen.User, error)
	List(ctx context.Context, arg dbgen.ListUsersParams) ([]dbgen.ListUsersRow, error)
	Count(ctx context.Context, search sql.NullString) (int64, error)
	Update(ctx context.Context, arg dbgen.UpdateUserParams) (dbgen.User, error)
	UpdatePassword(ctx context.Context, arg dbgen.UpdateUserPasswordParams) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type repository struct {
	queries *dbgen.Queries
}

func NewRepository(q *dbgen.Queries) Repository {
	return &repository{queries: q}
}

func (r *repository) WithTx(tx dbgen.DBTX) Repository {
	if sqlTx, ok := tx.(*sql.Tx); ok {
		return &repository{
			queries: r.queries.WithTx(sqlTx),
		}
	}
	return r
}

func (r *repository) Create(ctx context.Context, arg dbgen.CreateUserParams) (dbgen.User, error) {
	return r.queries.CreateUser(ctx, arg)
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (dbgen.User, error) {
	return r.queries.GetUserByID(ctx, id)
}

func (r *repository) List(ctx context.Context, arg dbgen.ListUsersParams) ([]dbgen.ListUsersRow, error) {
	return r.queries.ListUsers(ctx, arg)
}

func (r *repository) Count(ctx context.Context, search sql.NullString) (int64, error) {
	return r.queries.CountUsers(ctx, search)
}

func (r *repository) Update(ctx context.Context, arg dbgen.UpdateUserParams) (dbgen.User, error) {
	return r.queries.UpdateUser(ctx, arg)
}

func (r *repository) UpdatePassword(ctx context.Context, arg dbgen.UpdateUserPasswordParams) error {
	return r.queries.UpdateUserPassword(ctx, arg)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.queries.DeleteUser(ctx, id)
}
