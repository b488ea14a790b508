package ports

import "context"

// Repositories is the set of repositories bound to one session
// (a pooled connection or a transaction).
type Repositories struct {
	Forms        FormRepository
	Sections     SectionRepository
	Associations FieldAssociationRepository
	Fields       FieldDefinitionRepository
	People       PersonRepository
}

// UnitOfWork hands out repositories bound to an explicit session.
type UnitOfWork interface {
	// Repositories returns repositories bound to the connection pool.
	Repositories() Repositories

	// WithinTransaction runs fn with repositories bound to a single transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	WithinTransaction(ctx context.Context, fn func(repos Repositories) error) error
}
