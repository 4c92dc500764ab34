package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreatePublications, downCreatePublications)
}

func upCreatePublications(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE publications (
		id UUID PRIMARY KEY,
		platform VARCHAR(32) NOT NULL,
		external_id VARCHAR NOT NULL,
		url VARCHAR NOT NULL,
		title VARCHAR NOT NULL,
		username VARCHAR NOT NULL DEFAULT '',
		published_at TIMESTAMP WITH TIME ZONE NOT NULL,
		UNIQUE (platform, external_id)
	);
	`)
	return err
}

func downCreatePublications(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE publications;`)
	return err
}
