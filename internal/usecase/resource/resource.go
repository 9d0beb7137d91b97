// Package resource exposes each backend collection as a typed service: one
// page at a time for table views, single items for editing, and the whole
// collection for exports.
package resource

import (
	"context"
	"fmt"

	"ventas-admin/internal/common/pagination"
	"ventas-admin/internal/infra/api"
)

// Item is a record that can check itself before it is sent to the backend.
type Item interface {
	Validate() error
}

// Column renders one field of T in a table.
type Column[T any] struct {
	Title string
	Width int
	Value func(T) string
}

// Resource is one backend collection, such as /vendedores.
type Resource[T Item] struct {
	client  *api.Client
	name    string
	path    string
	columns []Column[T]
}

// New binds the collection at path to client. name labels logs and metrics.
func New[T Item](client *api.Client, name, path string, columns ...Column[T]) *Resource[T] {
	return &Resource[T]{
		client:  client,
		name:    name,
		path:    path,
		columns: columns,
	}
}

// Name returns the collection name.
func (r *Resource[T]) Name() string { return r.name }

// Path returns the collection path on the backend.
func (r *Resource[T]) Path() string { return r.path }

// Columns returns the table layout of the collection.
func (r *Resource[T]) Columns() []Column[T] { return r.columns }

// Fetch loads one page. It has the signature of paging.FetchFunc.
func (r *Resource[T]) Fetch(ctx context.Context, params pagination.Params) (pagination.Page[T], error) {
	return api.List[T](ctx, r.client, r.path, params)
}

// Get loads one item.
func (r *Resource[T]) Get(ctx context.Context, id int64) (T, error) {
	return api.Get[T](ctx, r.client, r.path, id)
}

// Create validates item and stores it.
func (r *Resource[T]) Create(ctx context.Context, item T) (T, error) {
	if err := item.Validate(); err != nil {
		var zero T
		return zero, fmt.Errorf("create %s: %w", r.name, err)
	}
	return api.Create(ctx, r.client, r.path, item)
}

// Update validates item and replaces the stored item with the given ID.
func (r *Resource[T]) Update(ctx context.Context, id int64, item T) (T, error) {
	if err := item.Validate(); err != nil {
		var zero T
		return zero, fmt.Errorf("update %s %d: %w", r.name, id, err)
	}
	return api.Update(ctx, r.client, r.path, id, item)
}

// Delete removes the item with the given ID.
func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	return api.Delete(ctx, r.client, r.path, id)
}

// Rows renders items with the collection's columns.
func (r *Resource[T]) Rows(items []T) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		row := make([]string, len(r.columns))
		for i, col := range r.columns {
			row[i] = col.Value(item)
		}
		rows = append(rows, row)
	}
	return rows
}

// Headers returns the column titles.
func (r *Resource[T]) Headers() []string {
	headers := make([]string, len(r.columns))
	for i, col := range r.columns {
		headers[i] = col.Title
	}
	return headers
}
