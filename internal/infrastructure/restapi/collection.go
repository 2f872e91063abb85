package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/dmehra2102/menudash/internal/domain"
)

// Collection talks to one resource path of the backend.
type Collection[T any] struct {
	client *Client
	path   string
	decode func(*T)
}

// NewCollection binds a resource path. decode, when set, runs on every item
// read from the backend.
func NewCollection[T any](client *Client, path string, decode func(*T)) *Collection[T] {
	return &Collection[T]{client: client, path: path, decode: decode}
}

func (c *Collection[T]) List(ctx context.Context, q domain.ListQuery) (*domain.Page[T], error) {
	return c.page(ctx, c.path, c.path, pageQuery(q), q.PageSize)
}

func (c *Collection[T]) Search(ctx context.Context, q domain.ListQuery) (*domain.Page[T], error) {
	query := pageQuery(q)
	query.Set("name", q.FilterText)
	return c.page(ctx, c.path+"/search", c.path+"/search", query, q.PageSize)
}

func (c *Collection[T]) ByCategory(ctx context.Context, q domain.ListQuery) (*domain.Page[T], error) {
	if q.CategoryID == nil || *q.CategoryID == "" {
		return c.List(ctx, q)
	}
	path := c.path + "/category/" + url.PathEscape(*q.CategoryID)
	return c.page(ctx, c.path+"/category/{id}", path, pageQuery(q), q.PageSize)
}

func (c *Collection[T]) page(ctx context.Context, route, path string, query url.Values, pageSize int) (*domain.Page[T], error) {
	var page domain.Page[T]
	err := c.client.do(ctx, request{
		method: http.MethodGet,
		route:  route,
		path:   path,
		query:  query,
	}, &page)
	if err != nil {
		return nil, err
	}

	page.Normalize(pageSize)
	if c.decode != nil {
		for i := range page.Items {
			c.decode(&page.Items[i])
		}
	}
	return &page, nil
}

func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	var item T
	err := c.client.do(ctx, request{
		method: http.MethodGet,
		route:  c.path + "/{id}",
		path:   c.path + "/" + url.PathEscape(id),
	}, &item)
	if err != nil {
		return nil, err
	}
	c.decodeOne(&item)
	return &item, nil
}

func (c *Collection[T]) Create(ctx context.Context, fields map[string]any, imagePath string) (*T, error) {
	var (
		body        io.Reader
		contentType string
		err         error
	)
	if imagePath != "" {
		body, contentType, err = multipartBody(fields, imagePath)
	} else {
		body, contentType, err = jsonBody(fields)
	}
	if err != nil {
		return nil, err
	}

	var item T
	err = c.client.do(ctx, request{
		method:      http.MethodPost,
		route:       c.path,
		path:        c.path,
		body:        body,
		contentType: contentType,
	}, &item)
	if err != nil {
		return nil, err
	}
	c.decodeOne(&item)
	return &item, nil
}

func (c *Collection[T]) Update(ctx context.Context, id string, fields map[string]any) (*T, error) {
	body, contentType, err := jsonBody(fields)
	if err != nil {
		return nil, err
	}

	var item T
	err = c.client.do(ctx, request{
		method:      http.MethodPut,
		route:       c.path + "/{id}",
		path:        c.path + "/" + url.PathEscape(id),
		body:        body,
		contentType: contentType,
	}, &item)
	if err != nil {
		return nil, err
	}
	c.decodeOne(&item)
	return &item, nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	return c.client.do(ctx, request{
		method: http.MethodDelete,
		route:  c.path + "/{id}",
		path:   c.path + "/" + url.PathEscape(id),
	}, nil)
}

func (c *Collection[T]) decodeOne(item *T) {
	if c.decode != nil {
		c.decode(item)
	}
}

func jsonBody(fields map[string]any) (io.Reader, string, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return bytes.NewReader(raw), "application/json", nil
}

// multipartBody sends the fields as form values plus the image as an "image" part.
func multipartBody(fields map[string]any, imagePath string) (io.Reader, string, error) {
	f, err := os.Open(imagePath)
	if err != nil {
		return nil, "", &domain.FieldError{Field: "image", Err: err}
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := w.WriteField(name, fmt.Sprint(value)); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}

	part, err := w.CreateFormFile("image", filepath.Base(imagePath))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create image part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", &domain.FieldError{Field: "image", Err: err}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish multipart body: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}
