// Package store is the row-oriented storage collaborator used by the
// services. Each Table wraps one gorm model and exposes the operations the
// content layer depends on: select all, select by filter, select by unique
// key, upsert by key and delete by key.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when no row matches a key.
var ErrNotFound = errors.New("record not found")

// Table provides keyed access to rows of type R.
type Table[R any] struct {
	db    *gorm.DB
	key   string
	order string
}

// Option configures a Table.
type Option func(*tableOptions)

type tableOptions struct {
	order string
}

// OrderBy sets the ordering used by All and Find.
func OrderBy(order string) Option {
	return func(o *tableOptions) {
		o.order = order
	}
}

// NewTable returns a Table whose rows are identified by the key column.
func NewTable[R any](gdb *gorm.DB, key string, opts ...Option) *Table[R] {
	var o tableOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Table[R]{db: gdb, key: key, order: o.order}
}

func (t *Table[R]) query(ctx context.Context) *gorm.DB {
	q := t.db.WithContext(ctx).Model(new(R))
	if t.order != "" {
		q = q.Order(t.order)
	}
	return q
}

// All returns every row.
func (t *Table[R]) All(ctx context.Context) ([]R, error) {
	var rows []R
	if err := t.query(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("select all: %w", err)
	}
	return rows, nil
}

// Find returns the rows matching a gorm where clause.
func (t *Table[R]) Find(ctx context.Context, where string, args ...interface{}) ([]R, error) {
	var rows []R
	if err := t.query(ctx).Where(where, args...).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("select by filter: %w", err)
	}
	return rows, nil
}

// Get returns the row whose key column equals key.
func (t *Table[R]) Get(ctx context.Context, key interface{}) (*R, error) {
	return t.GetBy(ctx, t.key, key)
}

// GetBy returns the row whose unique column equals value.
func (t *Table[R]) GetBy(ctx context.Context, column string, value interface{}) (*R, error) {
	var row R
	err := t.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select by %s: %w", column, err)
	}
	return &row, nil
}

// Count returns the number of rows.
func (t *Table[R]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := t.db.WithContext(ctx).Model(new(R)).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// Insert adds a new row. It fails if the key already exists.
func (t *Table[R]) Insert(ctx context.Context, row *R) error {
	if err := t.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}

// InsertAll adds rows in one statement; either all of them land or none.
func (t *Table[R]) InsertAll(ctx context.Context, rows []R) error {
	if len(rows) == 0 {
		return nil
	}
	if err := t.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("insert all: %w", err)
	}
	return nil
}

// Upsert inserts row or, when its key already exists, overwrites every
// column except the key and the creation time. It is a single statement.
func (t *Table[R]) Upsert(ctx context.Context, row *R) error {
	err := t.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: t.key}},
		UpdateAll: true,
	}).Create(row).Error
	if err != nil {
		return fmt.Errorf("upsert: %w", err)
	}
	return nil
}

// Delete removes the row with the given key. Deleting a missing key is not
// an error.
func (t *Table[R]) Delete(ctx context.Context, key interface{}) error {
	err := t.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: t.key}, Value: key}).
		Delete(new(R)).Error
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}
