package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/paulossjunior/dynamic-forms/internal/domain/models"
	"github.com/paulossjunior/dynamic-forms/internal/domain/ports"
	"github.com/paulossjunior/dynamic-forms/pkg/constants"
	apperrors "github.com/paulossjunior/dynamic-forms/pkg/errors"
)

// FieldDefinitionRepository is the SQL adapter for ports.FieldDefinitionRepository.
// Options and validation rules are stored as JSON text.
type FieldDefinitionRepository struct {
	db Executor
}

var _ ports.FieldDefinitionRepository = (*FieldDefinitionRepository)(nil)

// NewFieldDefinitionRepository binds a field definition repository to a session
func NewFieldDefinitionRepository(db Executor) *FieldDefinitionRepository {
	return &FieldDefinitionRepository{db: db}
}

var fieldDefinitionColumns = []string{
	constants.FieldID,
	constants.FieldEntityType,
	constants.FieldKeyName,
	constants.FieldLabel,
	constants.FieldFieldType,
	constants.FieldOptions,
	constants.FieldValidationRules,
	constants.FieldIsActive,
}

var (
	insertFieldDefinitionQuery = fmt.Sprintf("INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?, ?)",
		constants.TableFieldDefinition, strings.Join(fieldDefinitionColumns[1:], ", "))
	selectFieldDefinitionByKeyQuery = fmt.Sprintf("SELECT %s FROM %s WHERE %s = ? AND %s = ?",
		strings.Join(fieldDefinitionColumns, ", "), constants.TableFieldDefinition, constants.FieldEntityType, constants.FieldKeyName)
	selectActiveFieldDefinitionsQuery = fmt.Sprintf("SELECT %s FROM %s WHERE %s = ? AND %s = ? ORDER BY %s ASC",
		strings.Join(fieldDefinitionColumns, ", "), constants.TableFieldDefinition, constants.FieldEntityType, constants.FieldIsActive, constants.FieldID)
	selectAllActiveFieldDefinitionsQuery = fmt.Sprintf("SELECT %s FROM %s WHERE %s = ? ORDER BY %s ASC, %s ASC",
		strings.Join(fieldDefinitionColumns, ", "), constants.TableFieldDefinition, constants.FieldIsActive, constants.FieldEntityType, constants.FieldID)
	updateFieldDefinitionActiveQuery = fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s = ? AND %s = ?",
		constants.TableFieldDefinition, constants.FieldIsActive, constants.FieldEntityType, constants.FieldKeyName)
)

// Create inserts a definition. A taken (entity_type, key_name) is a ConflictError.
func (r *FieldDefinitionRepository) Create(ctx context.Context, field *models.FieldDefinition) (*models.FieldDefinition, error) {
	created := *field
	created.Normalize()

	options, err := encodeJSON(created.Options)
	if err != nil {
		return nil, apperrors.NewPersistenceError("create field definition", err)
	}
	rules, err := encodeJSON(created.ValidationRules)
	if err != nil {
		return nil, apperrors.NewPersistenceError("create field definition", err)
	}

	res, err := r.db.ExecContext(ctx, insertFieldDefinitionQuery,
		created.EntityType, created.KeyName, created.Label, created.FieldType, options, rules, created.IsActive)
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("field definition", "key_name",
				fmt.Sprintf("%s.%s", created.EntityType, created.KeyName))
		}
		return nil, apperrors.NewPersistenceError("create field definition", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, apperrors.NewPersistenceError("create field definition", err)
	}
	created.ID = id
	return &created, nil
}

// GetByKey returns nil, nil when no definition matches
func (r *FieldDefinitionRepository) GetByKey(ctx context.Context, entityType, keyName string) (*models.FieldDefinition, error) {
	field, err := scanFieldDefinition(r.db.QueryRowContext(ctx, selectFieldDefinitionByKeyQuery, entityType, keyName))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewPersistenceError("get field definition", err)
	}
	return field, nil
}

// ListActive returns the active definitions of one entity type
func (r *FieldDefinitionRepository) ListActive(ctx context.Context, entityType string) ([]*models.FieldDefinition, error) {
	return r.list(ctx, selectActiveFieldDefinitionsQuery, entityType, true)
}

// ListAllActive returns every active definition across entity types
func (r *FieldDefinitionRepository) ListAllActive(ctx context.Context) ([]*models.FieldDefinition, error) {
	return r.list(ctx, selectAllActiveFieldDefinitionsQuery, true)
}

func (r *FieldDefinitionRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.FieldDefinition, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewPersistenceError("list field definitions", err)
	}
	defer rows.Close()

	fields := make([]*models.FieldDefinition, 0)
	for rows.Next() {
		field, err := scanFieldDefinition(rows)
		if err != nil {
			return nil, apperrors.NewPersistenceError("list field definitions", err)
		}
		fields = append(fields, field)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("list field definitions", err)
	}
	return fields, nil
}

// SetActive toggles is_active. It reports false when no definition matched.
func (r *FieldDefinitionRepository) SetActive(ctx context.Context, entityType, keyName string, active bool) (bool, error) {
	res, err := r.db.ExecContext(ctx, updateFieldDefinitionActiveQuery, active, entityType, keyName)
	if err != nil {
		return false, apperrors.NewPersistenceError("update field definition", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperrors.NewPersistenceError("update field definition", err)
	}
	return affected > 0, nil
}

func scanFieldDefinition(row rowScanner) (*models.FieldDefinition, error) {
	var (
		f          models.FieldDefinition
		optionsRaw []byte
		rulesRaw   []byte
	)
	if err := row.Scan(&f.ID, &f.EntityType, &f.KeyName, &f.Label, &f.FieldType, &optionsRaw, &rulesRaw, &f.IsActive); err != nil {
		return nil, err
	}
	if err := decodeJSON(optionsRaw, &f.Options); err != nil {
		return nil, err
	}
	if err := decodeJSON(rulesRaw, &f.ValidationRules); err != nil {
		return nil, err
	}
	f.Normalize()
	return &f, nil
}
