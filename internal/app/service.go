// Package app holds the operations the dashboard screens invoke on a managed
// resource: listing reads, form-driven writes and deletes.
package app

import (
	"context"
	"fmt"

	"github.com/dmehra2102/menudash/internal/domain"
	"github.com/dmehra2102/menudash/pkg/auth"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Session reports whether the operator is signed in.
type Session interface {
	Valid() bool
	Context(ctx context.Context) context.Context
}

// ResourceService runs dashboard operations against one backend collection.
type ResourceService[T domain.Entity] struct {
	resource domain.Resource
	repo     domain.Collection[T]
	session  Session
	logger   *zap.Logger
	tracer   trace.Tracer
}

func NewResourceService[T domain.Entity](resource domain.Resource, repo domain.Collection[T], session Session, logger *zap.Logger) *ResourceService[T] {
	return &ResourceService[T]{
		resource: resource,
		repo:     repo,
		session:  session,
		logger:   logger.With(zap.String("resource", string(resource.Kind))),
		tracer:   otel.Tracer("resource-service"),
	}
}

func (s *ResourceService[T]) Resource() domain.Resource {
	return s.resource
}

func (s *ResourceService[T]) begin(ctx context.Context, op string) (context.Context, trace.Span, error) {
	ctx, span := s.tracer.Start(s.session.Context(ctx), op)
	span.SetAttributes(attribute.String("resource", string(s.resource.Kind)))

	if !s.session.Valid() {
		span.RecordError(domain.ErrUnauthenticated)
		return ctx, span, domain.ErrUnauthenticated
	}
	if u, err := auth.UserContextFromContext(ctx); err == nil {
		span.SetAttributes(attribute.String("user.id", u.UserID))
	}
	return ctx, span, nil
}

func (s *ResourceService[T]) List(ctx context.Context, q domain.ListQuery) (*domain.Page[T], error) {
	ctx, span, err := s.begin(ctx, "List")
	defer span.End()
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, q)
}

func (s *ResourceService[T]) Search(ctx context.Context, q domain.ListQuery) (*domain.Page[T], error) {
	ctx, span, err := s.begin(ctx, "Search")
	defer span.End()
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("query", q.FilterText))
	return s.repo.Search(ctx, q)
}

func (s *ResourceService[T]) ByCategory(ctx context.Context, q domain.ListQuery) (*domain.Page[T], error) {
	ctx, span, err := s.begin(ctx, "ByCategory")
	defer span.End()
	if err != nil {
		return nil, err
	}
	if !s.resource.CategoryFilter {
		return s.repo.List(ctx, q)
	}
	return s.repo.ByCategory(ctx, q)
}

func (s *ResourceService[T]) Get(ctx context.Context, id string) (*T, error) {
	ctx, span, err := s.begin(ctx, "Get")
	defer span.End()
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("item.id", id))

	if id == "" {
		return nil, &domain.FieldError{Field: "id", Err: domain.ErrRequiredField}
	}
	return s.repo.Get(ctx, id)
}

// Create validates the draft against the resource's form and sends it. An
// image path in the draft turns the request into a multipart upload.
func (s *ResourceService[T]) Create(ctx context.Context, draft domain.Draft) (*T, error) {
	ctx, span, err := s.begin(ctx, "Create")
	defer span.End()
	if err != nil {
		return nil, err
	}

	fields, image, err := s.resource.Schema.Build(draft)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Bool("multipart", image != ""))

	item, err := s.repo.Create(ctx, fields, image)
	if err != nil {
		span.RecordError(err)
		s.logger.Error("failed to create item", zap.Error(err))
		return nil, err
	}

	s.logger.Info("item created", zap.String("item_id", (*item).EntityID()))
	return item, nil
}

func (s *ResourceService[T]) Update(ctx context.Context, id string, draft domain.Draft) (*T, error) {
	ctx, span, err := s.begin(ctx, "Update")
	defer span.End()
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("item.id", id))

	if id == "" {
		return nil, &domain.FieldError{Field: "id", Err: domain.ErrRequiredField}
	}
	fields, _, err := s.resource.Schema.Build(draft)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		span.RecordError(err)
		s.logger.Error("failed to update item", zap.String("item_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("item updated", zap.String("item_id", id))
	return item, nil
}

func (s *ResourceService[T]) Delete(ctx context.Context, id string) error {
	ctx, span, err := s.begin(ctx, "Delete")
	defer span.End()
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("item.id", id))

	if id == "" {
		return &domain.FieldError{Field: "id", Err: domain.ErrRequiredField}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete %s %s: %w", s.resource.Kind, id, err)
	}

	s.logger.Info("item deleted", zap.String("item_id", id))
	return nil
}
