package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/hints"
)

// Direction is a sort direction for List and FindWhere
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Order sorts by one column
type Order struct {
	Column    string
	Direction Direction
}

// Asc orders by column ascending
func Asc(column string) Order {
	return Order{Column: column, Direction: Ascending}
}

// Desc orders by column descending
func Desc(column string) Order {
	return Order{Column: column, Direction: Descending}
}

// Table stores records of one kind. Column names passed to its methods are
// quoted by GORM and must be real column names of T.
type Table[T any] struct {
	db   *gorm.DB
	name string
}

// NewTable binds a table of T to db. name tags the queries it issues.
func NewTable[T any](db *gorm.DB, name string) *Table[T] {
	return &Table[T]{db: db, name: name}
}

func (t *Table[T]) query(ctx context.Context, op string) *gorm.DB {
	return t.db.WithContext(ctx).Clauses(hints.CommentBefore("SELECT", fmt.Sprintf("nickstore:%s:%s", t.name, op)))
}

// Insert creates the record and fills in its generated id.
// A unique index collision returns ErrUniqueViolation.
func (t *Table[T]) Insert(ctx context.Context, record *T) error {
	return translateError(t.db.WithContext(ctx).Create(record).Error)
}

// Get loads one record by primary key
func (t *Table[T]) Get(ctx context.Context, id uint64) (*T, error) {
	var record T
	if err := t.query(ctx, "get").First(&record, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &record, nil
}

// GetForUpdate loads one record by primary key and, where the dialect
// supports it, locks the row until the surrounding transaction ends.
func (t *Table[T]) GetForUpdate(ctx context.Context, id uint64) (*T, error) {
	q := t.query(ctx, "get_for_update")
	switch t.db.Dialector.Name() {
	case "postgres", "mysql":
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var record T
	if err := q.First(&record, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &record, nil
}

// List returns every record sorted by orders, in the store's default order
// when none are given
func (t *Table[T]) List(ctx context.Context, orders ...Order) ([]T, error) {
	records := make([]T, 0)
	q := applyOrders(t.query(ctx, "list"), orders)
	if err := q.Find(&records).Error; err != nil {
		return nil, translateError(err)
	}
	return records, nil
}

// FindWhere returns the records whose column equals value
func (t *Table[T]) FindWhere(ctx context.Context, column string, value interface{}, orders ...Order) ([]T, error) {
	records := make([]T, 0)
	q := applyOrders(t.query(ctx, "find").Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}), orders)
	if err := q.Find(&records).Error; err != nil {
		return nil, translateError(err)
	}
	return records, nil
}

// FindFirst returns the first record matching every column/value pair in
// conditions, or ErrNotFound
func (t *Table[T]) FindFirst(ctx context.Context, conditions map[string]interface{}) (*T, error) {
	q := t.query(ctx, "find_first")
	for column, value := range conditions {
		q = q.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	}

	var record T
	result := q.Limit(1).Find(&record)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &record, nil
}

// Exists reports whether any record has column equal to value
func (t *Table[T]) Exists(ctx context.Context, column string, value interface{}) (bool, error) {
	var count int64
	err := t.query(ctx, "exists").
		Model(new(T)).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).
		Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// Count returns the number of records in the table
func (t *Table[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := t.query(ctx, "count").Model(new(T)).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

// Delete removes one record by primary key, or returns ErrNotFound
func (t *Table[T]) Delete(ctx context.Context, id uint64) error {
	result := t.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func applyOrders(q *gorm.DB, orders []Order) *gorm.DB {
	for _, o := range orders {
		q = q.Order(clause.OrderByColumn{
			Column: clause.Column{Name: o.Column},
			Desc:   o.Direction == Descending,
		})
	}
	return q
}
