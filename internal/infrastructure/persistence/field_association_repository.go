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
	"github.com/paulossjunior/dynamic-forms/pkg/utils"
)

// FieldAssociationRepository is the SQL adapter for ports.FieldAssociationRepository
type FieldAssociationRepository struct {
	db Executor
}

var _ ports.FieldAssociationRepository = (*FieldAssociationRepository)(nil)

// NewFieldAssociationRepository binds an association repository to a session
func NewFieldAssociationRepository(db Executor) *FieldAssociationRepository {
	return &FieldAssociationRepository{db: db}
}

var (
	insertAssociationQuery = fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s, %s) VALUES (?, ?, ?, ?, ?)",
		constants.TableFormField, constants.FieldFormID, constants.FieldFieldID, constants.FieldSectionID,
		constants.FieldOrder, constants.FieldIsRequired)
	selectAssociationQuery = fmt.Sprintf("SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = ? AND %s = ?",
		constants.FieldFormID, constants.FieldFieldID, constants.FieldSectionID, constants.FieldOrder, constants.FieldIsRequired,
		constants.TableFormField, constants.FieldFormID, constants.FieldFieldID)
	selectAssociationsByFormQuery = fmt.Sprintf(`SELECT ff.%s, ff.%s, ff.%s, ff.%s, ff.%s, d.%s, d.%s, d.%s, d.%s, d.%s, d.%s, d.%s, d.%s
		FROM %s ff JOIN %s d ON d.%s = ff.%s
		WHERE ff.%s = ? ORDER BY ff.%s ASC, ff.%s ASC`,
		constants.FieldFormID, constants.FieldFieldID, constants.FieldSectionID, constants.FieldOrder, constants.FieldIsRequired,
		constants.FieldID, constants.FieldEntityType, constants.FieldKeyName, constants.FieldLabel, constants.FieldFieldType,
		constants.FieldOptions, constants.FieldValidationRules, constants.FieldIsActive,
		constants.TableFormField, constants.TableFieldDefinition, constants.FieldID, constants.FieldFieldID,
		constants.FieldFormID, constants.FieldOrder, constants.FieldFieldID)
	updateAssociationSectionQuery = fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s = ? AND %s = ?",
		constants.TableFormField, constants.FieldSectionID, constants.FieldFormID, constants.FieldFieldID)
	existsFieldDefinitionQuery = fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = ?)",
		constants.TableFieldDefinition, constants.FieldID)
	existsSectionQuery = fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = ?)",
		constants.TableSection, constants.FieldID)
)

// Create links a field definition to a form
func (r *FieldAssociationRepository) Create(ctx context.Context, assoc *models.FieldAssociation) (*models.FieldAssociation, error) {
	_, err := r.db.ExecContext(ctx, insertAssociationQuery,
		assoc.FormID, assoc.FieldID, nullInt64(assoc.SectionID), assoc.Order, assoc.IsRequired)
	if err != nil {
		switch {
		case IsUniqueViolation(err):
			return nil, apperrors.NewConflictError("form field", constants.FieldFieldID, utils.FormatID(assoc.FieldID))
		case IsForeignKeyViolation(err):
			return nil, r.missingReference(ctx, assoc)
		}
		return nil, apperrors.NewPersistenceError("create form field", err)
	}

	created := *assoc
	return &created, nil
}

// missingReference works out which referenced row an FK violation was about
func (r *FieldAssociationRepository) missingReference(ctx context.Context, assoc *models.FieldAssociation) error {
	var exists bool
	if err := r.db.QueryRowContext(ctx, existsFieldDefinitionQuery, assoc.FieldID).Scan(&exists); err == nil && !exists {
		return apperrors.NewNotFoundError("field definition", utils.FormatID(assoc.FieldID))
	}
	if assoc.SectionID != nil {
		if err := r.db.QueryRowContext(ctx, existsSectionQuery, *assoc.SectionID).Scan(&exists); err == nil && !exists {
			return apperrors.NewNotFoundError("Section", utils.FormatID(*assoc.SectionID))
		}
	}
	return apperrors.NewNotFoundError("form", utils.FormatID(assoc.FormID))
}

// Get returns nil, nil when the form does not contain the field
func (r *FieldAssociationRepository) Get(ctx context.Context, formID, fieldID int64) (*models.FieldAssociation, error) {
	var (
		a         models.FieldAssociation
		sectionID sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, selectAssociationQuery, formID, fieldID).
		Scan(&a.FormID, &a.FieldID, &sectionID, &a.Order, &a.IsRequired)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewPersistenceError("get form field", err)
	}
	if sectionID.Valid {
		a.SectionID = &sectionID.Int64
	}
	return &a, nil
}

// ListByForm returns the associations of a form ordered by position, each with its definition
func (r *FieldAssociationRepository) ListByForm(ctx context.Context, formID int64) ([]*models.FieldAssociation, error) {
	rows, err := r.db.QueryContext(ctx, selectAssociationsByFormQuery, formID)
	if err != nil {
		return nil, apperrors.NewPersistenceError("list form fields", err)
	}
	defer rows.Close()

	assocs := make([]*models.FieldAssociation, 0)
	for rows.Next() {
		var (
			a          models.FieldAssociation
			f          models.FieldDefinition
			sectionID  sql.NullInt64
			optionsRaw []byte
			rulesRaw   []byte
		)
		if err := rows.Scan(&a.FormID, &a.FieldID, &sectionID, &a.Order, &a.IsRequired,
			&f.ID, &f.EntityType, &f.KeyName, &f.Label, &f.FieldType, &optionsRaw, &rulesRaw, &f.IsActive); err != nil {
			return nil, apperrors.NewPersistenceError("list form fields", err)
		}
		if sectionID.Valid {
			a.SectionID = &sectionID.Int64
		}
		if err := decodeJSON(optionsRaw, &f.Options); err != nil {
			return nil, apperrors.NewPersistenceError("list form fields", err)
		}
		if err := decodeJSON(rulesRaw, &f.ValidationRules); err != nil {
			return nil, apperrors.NewPersistenceError("list form fields", err)
		}
		f.Normalize()
		a.Field = &f
		assocs = append(assocs, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("list form fields", err)
	}
	return assocs, nil
}

// SetSection moves an association to a section, or out of any section when sectionID is nil
func (r *FieldAssociationRepository) SetSection(ctx context.Context, formID, fieldID int64, sectionID *int64) error {
	res, err := r.db.ExecContext(ctx, updateAssociationSectionQuery, nullInt64(sectionID), formID, fieldID)
	if err != nil {
		if IsForeignKeyViolation(err) && sectionID != nil {
			return apperrors.NewNotFoundError("Section", utils.FormatID(*sectionID))
		}
		return apperrors.NewPersistenceError("update form field", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.NewPersistenceError("update form field", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError("form field",
			fmt.Sprintf("%d/%d", formID, fieldID))
	}
	return nil
}
