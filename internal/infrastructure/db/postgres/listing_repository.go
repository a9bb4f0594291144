package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neplink/classifieds-api/internal/core/domain"
)

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// TableSpec binds one listing type to its table: column layout, the
// visibility flag column, and scan/value adapters. All CRUD SQL is derived
// from it, so the query-building logic exists exactly once.
type TableSpec[T domain.Listing[T]] struct {
	Table         string
	VisibilityCol string
	// Columns are the non-id columns, in the order Values emits them.
	Columns []string
	Values  func(item T) []any
	// Scan reads a full row: id first, then Columns in order.
	Scan func(row rowScanner) (T, error)
}

// ListingRepository is the durable listing store, generic over the listing
// type and driven by its TableSpec.
type ListingRepository[T domain.Listing[T]] struct {
	pool *pgxpool.Pool
	spec TableSpec[T]

	selectCols string
	insertSQL  string
	updateSQL  string
}

func NewListingRepository[T domain.Listing[T]](pool *pgxpool.Pool, spec TableSpec[T]) *ListingRepository[T] {
	r := &ListingRepository[T]{pool: pool, spec: spec}
	r.selectCols = "id, " + strings.Join(spec.Columns, ", ")
	r.insertSQL = buildInsert(spec.Table, spec.Columns)
	r.updateSQL = buildUpdate(spec.Table, spec.Columns)
	return r
}

func buildInsert(table string, cols []string) string {
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
}

func buildUpdate(table string, cols []string) string {
	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		table, strings.Join(sets, ", "), len(cols)+1)
}

func (r *ListingRepository[T]) Create(ctx context.Context, item T) error {
	var id int64
	if err := r.pool.QueryRow(ctx, r.insertSQL, r.spec.Values(item)...).Scan(&id); err != nil {
		return fmt.Errorf("insert %s: %w", r.spec.Table, err)
	}
	item.SetID(id)
	return nil
}

func (r *ListingRepository[T]) List(ctx context.Context, onlyVisible bool) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", r.selectCols, r.spec.Table)
	if onlyVisible {
		query += " WHERE " + r.spec.VisibilityCol
	}
	query += " ORDER BY id"

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.spec.Table, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := r.spec.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.spec.Table, err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *ListingRepository[T]) GetByID(ctx context.Context, id int64) (T, error) {
	var zero T
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", r.selectCols, r.spec.Table)
	item, err := r.spec.Scan(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, domain.ErrListingNotFound
		}
		return zero, fmt.Errorf("get %s: %w", r.spec.Table, err)
	}
	return item, nil
}

func (r *ListingRepository[T]) Update(ctx context.Context, item T) error {
	args := append(r.spec.Values(item), item.GetID())
	res, err := r.pool.Exec(ctx, r.updateSQL, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.spec.Table, err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository[T]) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.spec.Table), id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.spec.Table, err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", r.spec.Table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", r.spec.Table, err)
	}
	return n, nil
}
