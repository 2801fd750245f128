package repository

import (
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Resource is the one CRUD access layer every resource shares. A controller
// instantiates it with the resource's allowed equality filters (query param
// -> column) and its ordering clause; everything else is identical across
// menu, events, gallery, games, party packages, assets and contact messages.
type Resource[T any] struct {
	DB      *gorm.DB
	Filters map[string]string
	Order   string
}

func NewResource[T any](db *gorm.DB, order string, filters map[string]string) *Resource[T] {
	return &Resource[T]{DB: db, Order: order, Filters: filters}
}

// List applies the allowed filters ANDed together. limit <= 0 means no
// pagination (only contact messages paginate).
func (r *Resource[T]) List(params url.Values, limit, offset int) ([]T, error) {
	q := r.DB.Model(new(T)).Order(r.Order)

	for param, col := range r.Filters {
		v := params.Get(param)
		if v == "" {
			continue
		}
		if strings.HasPrefix(col, "is_") {
			b, err := strconv.ParseBool(v)
			if err != nil {
				// malformed flag values are ignored, never compared as text
				continue
			}
			q = q.Where(col+" = ?", b)
			continue
		}
		q = q.Where(col+" = ?", v)
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var items []T
	err := q.Find(&items).Error
	return items, err
}

func (r *Resource[T]) FindByID(id uint) (*T, error) {
	var item T
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts and re-fetches, so callers get server-populated fields back.
func (r *Resource[T]) Create(item *T) (*T, error) {
	if err := r.DB.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Update applies only the given fields. Omitted fields are preserved.
func (r *Resource[T]) Update(id uint, fields map[string]any) (*T, error) {
	if _, err := r.FindByID(id); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.DB.Model(new(T)).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(id)
}

func (r *Resource[T]) Delete(id uint) error {
	res := r.DB.Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DistinctValues backs the /categories/list style helper endpoints.
func (r *Resource[T]) DistinctValues(column string) ([]string, error) {
	var values []string
	err := r.DB.Model(new(T)).
		Distinct(column).
		Where(column+" <> ''").
		Order(column + " asc").
		Pluck(column, &values).Error
	return values, err
}
