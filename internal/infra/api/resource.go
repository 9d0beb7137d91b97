package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"ventas-admin/internal/common/pagination"
)

// List fetches one page of the collection at path. Pagination fields are
// decoded leniently; a malformed row fails the call. Pages are served from
// and stored in the page cache when one is configured.
func List[T any](ctx context.Context, c *Client, path string, params pagination.Params) (pagination.Page[T], error) {
	key := PageKey(path, params)
	if body, ok := c.cachedPage(ctx, key); ok {
		var page pagination.Page[T]
		if err := json.Unmarshal(body, &page); err == nil {
			return page, nil
		}
	}

	body, err := c.do(ctx, request{method: http.MethodGet, path: path, query: params.Query()})
	if err != nil {
		return pagination.Page[T]{}, fmt.Errorf("list %s: %w", path, err)
	}

	var page pagination.Page[T]
	if err := json.Unmarshal(body, &page); err != nil {
		return pagination.Page[T]{}, fmt.Errorf("decode %s page: %w", path, err)
	}
	c.storePage(ctx, key, body)
	return page, nil
}

// Get fetches one item by ID.
func Get[T any](ctx context.Context, c *Client, path string, id int64) (T, error) {
	body, err := c.do(ctx, request{method: http.MethodGet, path: itemPath(path, id)})
	if err != nil {
		var zero T
		return zero, fmt.Errorf("get %s: %w", itemPath(path, id), err)
	}
	return decodeItem[T](body)
}

// Create posts item to the collection and returns what the backend stored.
func Create[T any](ctx context.Context, c *Client, path string, item T) (T, error) {
	body, err := c.do(ctx, request{method: http.MethodPost, path: path, body: item})
	if err != nil {
		var zero T
		return zero, fmt.Errorf("create in %s: %w", path, err)
	}
	c.invalidate(ctx, path)
	return decodeItem[T](body)
}

// Update replaces the item with the given ID.
func Update[T any](ctx context.Context, c *Client, path string, id int64, item T) (T, error) {
	body, err := c.do(ctx, request{method: http.MethodPut, path: itemPath(path, id), body: item})
	if err != nil {
		var zero T
		return zero, fmt.Errorf("update %s: %w", itemPath(path, id), err)
	}
	c.invalidate(ctx, path)
	return decodeItem[T](body)
}

// Delete removes the item with the given ID.
func Delete(ctx context.Context, c *Client, path string, id int64) error {
	if _, err := c.do(ctx, request{method: http.MethodDelete, path: itemPath(path, id)}); err != nil {
		return fmt.Errorf("delete %s: %w", itemPath(path, id), err)
	}
	c.invalidate(ctx, path)
	return nil
}

func itemPath(path string, id int64) string {
	return path + "/" + strconv.FormatInt(id, 10)
}
