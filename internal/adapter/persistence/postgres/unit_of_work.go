package postgres

import (
	"context"
	"database/sql"

	"cartas_marketplace/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// UnitOfWork runs each call in its own read-committed transaction. Lost updates
// are prevented by the version checks in the repositories, not by isolation.
type UnitOfWork struct {
	db *gorm.DB
}

var _ interfaces.IUnitOfWork = (*UnitOfWork)(nil)

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos interfaces.Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, NewRepositories(tx))
	}, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
}
