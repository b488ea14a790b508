package bootstrap

import (
	"context"
	"log"

	"github.com/paulossjunior/dynamic-forms/internal/infrastructure/database"
	"github.com/paulossjunior/dynamic-forms/internal/infrastructure/persistence"
)

// InitializeSchema creates the tables that do not exist yet
func InitializeSchema(ctx context.Context, conn *database.Connection) error {
	log.Printf("🔧 Initializing schema (%s)...", conn.Dialect())
	repo := persistence.NewSchemaRepository(conn.DB(), conn.Dialect())
	if err := repo.CreateTables(ctx); err != nil {
		return err
	}
	log.Println("✅ Schema ready")
	return nil
}

// DropSchema removes every table, children first
func DropSchema(ctx context.Context, conn *database.Connection) error {
	log.Printf("🧹 Dropping schema (%s)...", conn.Dialect())
	return persistence.NewSchemaRepository(conn.DB(), conn.Dialect()).DropTables(ctx)
}
