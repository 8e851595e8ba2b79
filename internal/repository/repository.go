package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/ipsqr/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) CreateSlip(ctx context.Context, slip entity.SharedSlip) error {
	const q = `
	INSERT INTO shared_slips (
		id,
		data,
		qr_string,
		created_at,
		expires_at
	)
	VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, q, slip.ID, slip.Data, slip.QRString, slip.CreatedAt, slip.ExpiresAt)
	if err != nil {
		return err
	}

	return nil
}

// Slip returns a slip that is still active at now.
func (r *Repository) Slip(ctx context.Context, id uuid.UUID, now time.Time) (entity.SharedSlip, error) {
	q := selectSlip + " WHERE id = $1 AND expires_at >= $2"
	return scanSlip(r.db.QueryRow(ctx, q, id, now))
}

func (r *Repository) Slips(ctx context.Context, now time.Time, f entity.SlipFilter) ([]entity.SharedSlip, int, error) {
	stmt := sq.Select(append(slipColumns, "COUNT(*) OVER() AS total_count")...).
		From("shared_slips").
		Where(sq.GtOrEq{"expires_at": now}).
		PlaceholderFormat(sq.Dollar).
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit).
		OrderBy(fmt.Sprintf("created_at %s", f.OrderBy))

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	slips := make([]entity.SharedSlip, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var slip entity.SharedSlip

		var count int

		err = rows.Scan(
			&slip.ID,
			&slip.Data,
			&slip.QRString,
			&slip.CreatedAt,
			&slip.ExpiresAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		slips = append(slips, slip)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return slips, totalCount, nil
}

func (r *Repository) DeleteExpiredSlips(ctx context.Context, now time.Time) (int64, error) {
	const q = `DELETE FROM shared_slips WHERE expires_at < $1`

	result, err := r.db.Exec(ctx, q, now)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func scanSlip(row pgx.Row) (slip entity.SharedSlip, err error) {
	err = row.Scan(
		&slip.ID,
		&slip.Data,
		&slip.QRString,
		&slip.CreatedAt,
		&slip.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.SharedSlip{}, entity.ErrNotFound
		}

		return entity.SharedSlip{}, err
	}

	return slip, nil
}
