package persistence

import (
	"context"
	"fmt"
	"log"

	"github.com/paulossjunior/dynamic-forms/pkg/constants"
)

// TableDefinition holds the DDL needed to create one table in each dialect
type TableDefinition struct {
	Name   string
	MySQL  []string
	SQLite []string
}

// SchemaRepository handles direct database schema operations (DDL)
type SchemaRepository struct {
	db      Executor
	dialect string
}

// NewSchemaRepository creates a new SchemaRepository
func NewSchemaRepository(db Executor, dialect string) *SchemaRepository {
	return &SchemaRepository{db: db, dialect: dialect}
}

// Tables returns the table definitions in dependency order
func Tables() []TableDefinition {
	return []TableDefinition{
		{
			Name: constants.TableFieldDefinition,
			MySQL: []string{`CREATE TABLE IF NOT EXISTS custom_field_definitions (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				entity_type VARCHAR(100) NOT NULL,
				key_name VARCHAR(255) NOT NULL,
				label VARCHAR(255) NOT NULL,
				field_type VARCHAR(50) NOT NULL,
				options TEXT NOT NULL,
				validation_rules TEXT NOT NULL,
				is_active BOOLEAN NOT NULL DEFAULT TRUE,
				UNIQUE KEY uix_field_definitions_entity_key (entity_type, key_name),
				KEY idx_field_definitions_active (entity_type, is_active)
			) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
			SQLite: []string{
				`CREATE TABLE IF NOT EXISTS custom_field_definitions (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				entity_type TEXT NOT NULL,
				key_name TEXT NOT NULL,
				label TEXT NOT NULL,
				field_type TEXT NOT NULL,
				options TEXT NOT NULL DEFAULT '[]',
				validation_rules TEXT NOT NULL DEFAULT '{}',
				is_active BOOLEAN NOT NULL DEFAULT 1
			)`,
				`CREATE UNIQUE INDEX IF NOT EXISTS uix_field_definitions_entity_key ON custom_field_definitions (entity_type, key_name)`,
			},
		},
		{
			Name: constants.TableForm,
			MySQL: []string{`CREATE TABLE IF NOT EXISTS forms (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				description TEXT NULL,
				UNIQUE KEY uix_forms_name (name)
			) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
			SQLite: []string{
				`CREATE TABLE IF NOT EXISTS forms (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				description TEXT NULL
			)`,
				`CREATE UNIQUE INDEX IF NOT EXISTS uix_forms_name ON forms (name)`,
			},
		},
		{
			Name: constants.TableSection,
			MySQL: []string{`CREATE TABLE IF NOT EXISTS sections (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				form_id BIGINT NOT NULL,
				name VARCHAR(100) NOT NULL,
				description VARCHAR(500) NULL,
				order_index INT NOT NULL DEFAULT 0,
				KEY idx_sections_form_order (form_id, order_index),
				CONSTRAINT fk_sections_form FOREIGN KEY (form_id) REFERENCES forms(id) ON DELETE CASCADE
			) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
			SQLite: []string{
				`CREATE TABLE IF NOT EXISTS sections (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				form_id INTEGER NOT NULL REFERENCES forms(id) ON DELETE CASCADE,
				name TEXT NOT NULL,
				description TEXT NULL,
				order_index INTEGER NOT NULL DEFAULT 0
			)`,
				`CREATE INDEX IF NOT EXISTS idx_sections_form_order ON sections (form_id, order_index)`,
			},
		},
		{
			Name: constants.TableFormField,
			MySQL: []string{"CREATE TABLE IF NOT EXISTS form_fields (" + `
				form_id BIGINT NOT NULL,
				field_id BIGINT NOT NULL,
				section_id BIGINT NULL,
				` + "`order`" + ` INT NOT NULL DEFAULT 0,
				is_required BOOLEAN NOT NULL DEFAULT FALSE,
				PRIMARY KEY (form_id, field_id),
				CONSTRAINT fk_form_fields_form FOREIGN KEY (form_id) REFERENCES forms(id) ON DELETE CASCADE,
				CONSTRAINT fk_form_fields_field FOREIGN KEY (field_id) REFERENCES custom_field_definitions(id),
				CONSTRAINT fk_form_fields_section FOREIGN KEY (section_id) REFERENCES sections(id) ON DELETE SET NULL
			) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
			SQLite: []string{"CREATE TABLE IF NOT EXISTS form_fields (" + `
				form_id INTEGER NOT NULL REFERENCES forms(id) ON DELETE CASCADE,
				field_id INTEGER NOT NULL REFERENCES custom_field_definitions(id),
				section_id INTEGER NULL REFERENCES sections(id) ON DELETE SET NULL,
				` + "`order`" + ` INTEGER NOT NULL DEFAULT 0,
				is_required BOOLEAN NOT NULL DEFAULT 0,
				PRIMARY KEY (form_id, field_id)
			)`},
		},
		{
			Name: constants.TablePerson,
			MySQL: []string{`CREATE TABLE IF NOT EXISTS people (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				email VARCHAR(255) NOT NULL,
				custom_data LONGTEXT NOT NULL,
				UNIQUE KEY uix_people_email (email),
				KEY idx_people_name (name)
			) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
			SQLite: []string{
				`CREATE TABLE IF NOT EXISTS people (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				email TEXT NOT NULL,
				custom_data TEXT NOT NULL DEFAULT '{}'
			)`,
				`CREATE UNIQUE INDEX IF NOT EXISTS uix_people_email ON people (email)`,
			},
		},
	}
}

// CreateTables creates every table that does not exist yet
func (r *SchemaRepository) CreateTables(ctx context.Context) error {
	for _, table := range Tables() {
		statements, err := r.statementsFor(table)
		if err != nil {
			return err
		}
		for _, stmt := range statements {
			if _, err := r.db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to create table %s: %w", table.Name, err)
			}
		}
		log.Printf("   ✓ %s", table.Name)
	}
	return nil
}

// DropTables drops every table in reverse dependency order
func (r *SchemaRepository) DropTables(ctx context.Context) error {
	tables := Tables()
	for i := len(tables) - 1; i >= 0; i-- {
		if _, err := r.db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", tables[i].Name)); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", tables[i].Name, err)
		}
		log.Printf("   ✗ %s", tables[i].Name)
	}
	return nil
}

func (r *SchemaRepository) statementsFor(table TableDefinition) ([]string, error) {
	switch r.dialect {
	case constants.DriverMySQL:
		return table.MySQL, nil
	case constants.DriverSQLite:
		return table.SQLite, nil
	default:
		return nil, fmt.Errorf("unsupported dialect %q", r.dialect)
	}
}
