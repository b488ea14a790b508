package persistence

import (
	"context"
	"database/sql"

	"github.com/paulossjunior/dynamic-forms/internal/domain/ports"
	"github.com/paulossjunior/dynamic-forms/internal/infrastructure/database"
)

// Store binds the SQL repositories to an explicit session.
// It implements ports.UnitOfWork.
type Store struct {
	conn      *database.Connection
	txManager *TransactionManager
}

// Ensure Store implements ports.UnitOfWork at compile time
var _ ports.UnitOfWork = (*Store)(nil)

// NewStore creates a Store over an open connection
func NewStore(conn *database.Connection) *Store {
	return &Store{
		conn:      conn,
		txManager: NewTransactionManager(conn),
	}
}

// Repositories returns repositories bound to the connection pool
func (s *Store) Repositories() ports.Repositories {
	return bind(s.conn.DB())
}

// WithinTransaction runs fn with repositories bound to one transaction
func (s *Store) WithinTransaction(ctx context.Context, fn func(repos ports.Repositories) error) error {
	return s.txManager.WithTransaction(ctx, func(tx *sql.Tx) error {
		return fn(bind(tx))
	})
}

func bind(exec Executor) ports.Repositories {
	return ports.Repositories{
		Forms:        NewFormRepository(exec),
		Sections:     NewSectionRepository(exec),
		Associations: NewFieldAssociationRepository(exec),
		Fields:       NewFieldDefinitionRepository(exec),
		People:       NewPersonRepository(exec),
	}
}
