// Package migrations holds the schema as goose Go migrations compiled into the binary.
package migrations

import (
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

// Up applies every registered migration. The directory argument only has to
// exist; with no migration files on disk goose runs the registered ones.
func Up(dsn string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	return goose.Up(db, ".")
}
