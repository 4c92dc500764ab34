package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upIndexPublishedAt, downIndexPublishedAt)
}

func upIndexPublishedAt(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
		CREATE INDEX publications_published_at_idx ON publications (published_at DESC);
	`)
	return err
}

func downIndexPublishedAt(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP INDEX publications_published_at_idx;`)
	return err
}
