package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/paulossjunior/dynamic-forms/internal/domain/models"
	"github.com/paulossjunior/dynamic-forms/internal/domain/ports"
	"github.com/paulossjunior/dynamic-forms/pkg/constants"
	apperrors "github.com/paulossjunior/dynamic-forms/pkg/errors"
)

// PersonRepository is the SQL adapter for ports.PersonRepository.
// custom_data is stored as JSON text.
type PersonRepository struct {
	db Executor
}

var _ ports.PersonRepository = (*PersonRepository)(nil)

// NewPersonRepository binds a person repository to a session
func NewPersonRepository(db Executor) *PersonRepository {
	return &PersonRepository{db: db}
}

var (
	insertPersonQuery = fmt.Sprintf("INSERT INTO %s (%s, %s, %s) VALUES (?, ?, ?)",
		constants.TablePerson, constants.FieldName, constants.FieldEmail, constants.FieldCustomData)
	selectPersonByIDQuery = fmt.Sprintf("SELECT %s, %s, %s, %s FROM %s WHERE %s = ?",
		constants.FieldID, constants.FieldName, constants.FieldEmail, constants.FieldCustomData, constants.TablePerson, constants.FieldID)
	selectPeopleQuery = fmt.Sprintf("SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC",
		constants.FieldID, constants.FieldName, constants.FieldEmail, constants.FieldCustomData, constants.TablePerson, constants.FieldID)
)

// Create inserts a person. A taken email is a ConflictError.
func (r *PersonRepository) Create(ctx context.Context, person *models.Person) (*models.Person, error) {
	created := *person
	if created.CustomData == nil {
		created.CustomData = map[string]any{}
	}

	data, err := encodeJSON(created.CustomData)
	if err != nil {
		return nil, apperrors.NewPersistenceError("create person", err)
	}

	res, err := r.db.ExecContext(ctx, insertPersonQuery, created.Name, created.Email, data)
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("person", constants.FieldEmail, created.Email)
		}
		return nil, apperrors.NewPersistenceError("create person", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, apperrors.NewPersistenceError("create person", err)
	}
	created.ID = id
	return &created, nil
}

// GetByID returns nil, nil when the person does not exist
func (r *PersonRepository) GetByID(ctx context.Context, id int64) (*models.Person, error) {
	person, err := scanPerson(r.db.QueryRowContext(ctx, selectPersonByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewPersistenceError("get person", err)
	}
	return person, nil
}

// List returns every person ordered by id
func (r *PersonRepository) List(ctx context.Context) ([]*models.Person, error) {
	rows, err := r.db.QueryContext(ctx, selectPeopleQuery)
	if err != nil {
		return nil, apperrors.NewPersistenceError("list people", err)
	}
	defer rows.Close()

	people := make([]*models.Person, 0)
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, apperrors.NewPersistenceError("list people", err)
		}
		people = append(people, person)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("list people", err)
	}
	return people, nil
}

func scanPerson(row rowScanner) (*models.Person, error) {
	var (
		p   models.Person
		raw []byte
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Email, &raw); err != nil {
		return nil, err
	}
	if err := decodeJSON(raw, &p.CustomData); err != nil {
		return nil, err
	}
	if p.CustomData == nil {
		p.CustomData = map[string]any{}
	}
	return &p, nil
}
