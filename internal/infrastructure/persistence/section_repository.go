package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/paulossjunior/dynamic-forms/internal/domain/models"
	"github.com/paulossjunior/dynamic-forms/internal/domain/ports"
	apperrors "github.com/paulossjunior/dynamic-forms/pkg/errors"
	"github.com/paulossjunior/dynamic-forms/pkg/constants"
	"github.com/paulossjunior/dynamic-forms/pkg/utils"
)

// SectionRepository is the SQL adapter for ports.SectionRepository
type SectionRepository struct {
	db Executor
}

var _ ports.SectionRepository = (*SectionRepository)(nil)

// NewSectionRepository binds a section repository to a session
func NewSectionRepository(db Executor) *SectionRepository {
	return &SectionRepository{db: db}
}

var sectionColumns = []string{
	constants.FieldID,
	constants.FieldFormID,
	constants.FieldName,
	constants.FieldDescription,
	constants.FieldOrderIndex,
}

var (
	insertSectionQuery = fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s) VALUES (?, ?, ?, ?)",
		constants.TableSection, constants.FieldFormID, constants.FieldName, constants.FieldDescription, constants.FieldOrderIndex)
	selectSectionByIDQuery = fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?",
		strings.Join(sectionColumns, ", "), constants.TableSection, constants.FieldID)
	selectSectionsByFormQuery = fmt.Sprintf("SELECT %s FROM %s WHERE %s = ? ORDER BY %s ASC, %s ASC",
		strings.Join(sectionColumns, ", "), constants.TableSection, constants.FieldFormID, constants.FieldOrderIndex, constants.FieldID)
	updateSectionQuery = fmt.Sprintf("UPDATE %s SET %s = ?, %s = ?, %s = ? WHERE %s = ?",
		constants.TableSection, constants.FieldName, constants.FieldDescription, constants.FieldOrderIndex, constants.FieldID)
	deleteSectionQuery = fmt.Sprintf("DELETE FROM %s WHERE %s = ?", constants.TableSection, constants.FieldID)
)

// Create inserts a section and returns it with its generated id
func (r *SectionRepository) Create(ctx context.Context, section *models.Section) (*models.Section, error) {
	res, err := r.db.ExecContext(ctx, insertSectionQuery,
		section.FormID, section.Name, nullString(section.Description), section.Order)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, apperrors.NewNotFoundError("form", utils.FormatID(section.FormID))
		}
		return nil, apperrors.NewPersistenceError("create section", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, apperrors.NewPersistenceError("create section", err)
	}

	created := *section
	created.ID = &id
	return &created, nil
}

// GetByID returns nil, nil when the section does not exist
func (r *SectionRepository) GetByID(ctx context.Context, id int64) (*models.Section, error) {
	section, err := scanSection(r.db.QueryRowContext(ctx, selectSectionByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewPersistenceError("get section", err)
	}
	return section, nil
}

// ListByForm returns the sections of a form ordered by order_index then id
func (r *SectionRepository) ListByForm(ctx context.Context, formID int64) ([]*models.Section, error) {
	rows, err := r.db.QueryContext(ctx, selectSectionsByFormQuery, formID)
	if err != nil {
		return nil, apperrors.NewPersistenceError("list sections", err)
	}
	defer rows.Close()

	sections := make([]*models.Section, 0)
	for rows.Next() {
		section, err := scanSection(rows)
		if err != nil {
			return nil, apperrors.NewPersistenceError("list sections", err)
		}
		sections = append(sections, section)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("list sections", err)
	}
	return sections, nil
}

// Update overwrites name, description and order of an existing section
func (r *SectionRepository) Update(ctx context.Context, section *models.Section) (*models.Section, error) {
	if section.ID == nil {
		return nil, apperrors.NewNotFoundError("Section", "")
	}

	res, err := r.db.ExecContext(ctx, updateSectionQuery,
		section.Name, nullString(section.Description), section.Order, *section.ID)
	if err != nil {
		return nil, apperrors.NewPersistenceError("update section", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, apperrors.NewPersistenceError("update section", err)
	}
	if affected == 0 {
		return nil, apperrors.NewNotFoundError("Section", utils.FormatID(*section.ID))
	}

	updated := *section
	return &updated, nil
}

// Delete removes a section; associations pointing at it lose their section
func (r *SectionRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, deleteSectionQuery, id); err != nil {
		return apperrors.NewPersistenceError("delete section", err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSection(row rowScanner) (*models.Section, error) {
	var (
		s           models.Section
		id          int64
		description sql.NullString
	)
	if err := row.Scan(&id, &s.FormID, &s.Name, &description, &s.Order); err != nil {
		return nil, err
	}
	s.ID = &id
	if description.Valid {
		s.Description = &description.String
	}
	return &s, nil
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
