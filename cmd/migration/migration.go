package migration

import (
	"database/sql"
	"log"
	"path/filepath"

	migrate "github.com/rubenv/sql-migrate"
)

// Run applies the posting-schema migrations shipped under
// internal/migration. Paths resolve relative to the working directory,
// so the binary runs from the repository root.
func Run(db *sql.DB) {
	source := &migrate.FileMigrationSource{
		Dir: filepath.Join("internal", "migration"),
	}

	applied, err := migrate.Exec(db, "postgres", source, migrate.Up)
	if err != nil {
		log.Fatalf("Error applying posting-schema migrations: %v", err)
	}

	log.Printf("Applied %d posting-schema migrations", applied)
}
