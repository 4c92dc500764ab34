package publication

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/internal/repositories"
	"github.com/orgball2608/motivate-ai/pkg/logger"
)

const table = "publications"

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("PublicationRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

func (p *Pgx) Create(ctx context.Context, pub domain.Publication) error {
	publishedAt := pub.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = time.Now().UTC()
	}

	query, args, err := repositories.SqBuilder.
		Insert(table).
		Columns("id", "platform", "external_id", "url", "title", "username", "published_at").
		Values(pub.ID, string(pub.Platform), pub.ExternalID, pub.URL, pub.Title, pub.Username, publishedAt).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	_, err = p.pg.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (p *Pgx) GetRecent(ctx context.Context, limit int) ([]*domain.Publication, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "platform", "external_id", "url", "title", "username", "published_at").
		From(table).
		OrderBy("published_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pubs []*domain.Publication
	for rows.Next() {
		var (
			pub      domain.Publication
			platform string
		)
		if err := rows.Scan(&pub.ID, &platform, &pub.ExternalID, &pub.URL, &pub.Title, &pub.Username, &pub.PublishedAt); err != nil {
			return nil, err
		}
		pub.Platform = domain.Platform(platform)
		pubs = append(pubs, &pub)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return pubs, nil
}

func (p *Pgx) CountByPlatform(ctx context.Context) (map[domain.Platform]int, error) {
	query, args, err := repositories.SqBuilder.
		Select("platform", "COUNT(*)").
		From(table).
		GroupBy("platform").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.Platform]int)
	for rows.Next() {
		var (
			platform string
			n        int
		)
		if err := rows.Scan(&platform, &n); err != nil {
			return nil, err
		}
		counts[domain.Platform(platform)] = n
	}

	return counts, rows.Err()
}

func (p *Pgx) CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)

	query, args, err := repositories.SqBuilder.
		Delete(table).
		Where(sq.Lt{"published_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	p.logger.Debug("Old publications removed", "cutoff", cutoff, "rows", result.RowsAffected())
	return result.RowsAffected(), nil
}
