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

// FormRepository is the SQL adapter for ports.FormRepository.
// It only reads and writes the form header row.
type FormRepository struct {
	db Executor
}

var _ ports.FormRepository = (*FormRepository)(nil)

// NewFormRepository binds a form repository to a session
func NewFormRepository(db Executor) *FormRepository {
	return &FormRepository{db: db}
}

var (
	insertFormQuery = fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES (?, ?)",
		constants.TableForm, constants.FieldName, constants.FieldDescription)
	selectFormByIDQuery = fmt.Sprintf("SELECT %s, %s, %s FROM %s WHERE %s = ?",
		constants.FieldID, constants.FieldName, constants.FieldDescription, constants.TableForm, constants.FieldID)
	selectFormByNameQuery = fmt.Sprintf("SELECT %s, %s, %s FROM %s WHERE %s = ?",
		constants.FieldID, constants.FieldName, constants.FieldDescription, constants.TableForm, constants.FieldName)
	selectFormsQuery = fmt.Sprintf("SELECT %s, %s, %s FROM %s ORDER BY %s ASC",
		constants.FieldID, constants.FieldName, constants.FieldDescription, constants.TableForm, constants.FieldID)
	deleteFormFieldsByFormQuery = fmt.Sprintf("DELETE FROM %s WHERE %s = ?", constants.TableFormField, constants.FieldFormID)
	deleteSectionsByFormQuery   = fmt.Sprintf("DELETE FROM %s WHERE %s = ?", constants.TableSection, constants.FieldFormID)
	deleteFormQuery             = fmt.Sprintf("DELETE FROM %s WHERE %s = ?", constants.TableForm, constants.FieldID)
)

// Create inserts the form header. A duplicate name is a ConflictError.
func (r *FormRepository) Create(ctx context.Context, form *models.Form) (*models.Form, error) {
	res, err := r.db.ExecContext(ctx, insertFormQuery, form.Name, nullString(form.Description))
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("form", constants.FieldName, form.Name)
		}
		return nil, apperrors.NewPersistenceError("create form", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, apperrors.NewPersistenceError("create form", err)
	}

	return &models.Form{
		ID:          id,
		Name:        form.Name,
		Description: form.Description,
		Sections:    []*models.Section{},
		Fields:      []*models.FieldAssociation{},
	}, nil
}

// GetByID returns nil, nil when the form does not exist
func (r *FormRepository) GetByID(ctx context.Context, id int64) (*models.Form, error) {
	return r.getOne(ctx, "get form", selectFormByIDQuery, id)
}

// GetByName returns nil, nil when no form has the name
func (r *FormRepository) GetByName(ctx context.Context, name string) (*models.Form, error) {
	return r.getOne(ctx, "get form by name", selectFormByNameQuery, name)
}

func (r *FormRepository) getOne(ctx context.Context, op, query string, arg interface{}) (*models.Form, error) {
	form, err := scanForm(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewPersistenceError(op, err)
	}
	return form, nil
}

// List returns form headers ordered by id
func (r *FormRepository) List(ctx context.Context) ([]*models.Form, error) {
	rows, err := r.db.QueryContext(ctx, selectFormsQuery)
	if err != nil {
		return nil, apperrors.NewPersistenceError("list forms", err)
	}
	defer rows.Close()

	forms := make([]*models.Form, 0)
	for rows.Next() {
		form, err := scanForm(rows)
		if err != nil {
			return nil, apperrors.NewPersistenceError("list forms", err)
		}
		forms = append(forms, form)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("list forms", err)
	}
	return forms, nil
}

// Delete removes the form along with its associations and sections.
// Children are deleted explicitly so the result does not depend on the
// engine enforcing ON DELETE CASCADE.
func (r *FormRepository) Delete(ctx context.Context, id int64) (bool, error) {
	for _, query := range []string{deleteFormFieldsByFormQuery, deleteSectionsByFormQuery} {
		if _, err := r.db.ExecContext(ctx, query, id); err != nil {
			return false, apperrors.NewPersistenceError("delete form", err)
		}
	}

	res, err := r.db.ExecContext(ctx, deleteFormQuery, id)
	if err != nil {
		return false, apperrors.NewPersistenceError("delete form", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperrors.NewPersistenceError("delete form", err)
	}
	return affected > 0, nil
}

func scanForm(row rowScanner) (*models.Form, error) {
	var (
		f           models.Form
		description sql.NullString
	)
	if err := row.Scan(&f.ID, &f.Name, &description); err != nil {
		return nil, err
	}
	if description.Valid {
		f.Description = &description.String
	}
	f.Sections = []*models.Section{}
	f.Fields = []*models.FieldAssociation{}
	return &f, nil
}
