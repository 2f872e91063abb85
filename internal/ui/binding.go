package ui

import (
	"context"

	"github.com/dmehra2102/menudash/internal/app"
	"github.com/dmehra2102/menudash/internal/domain"
)

// Service is what the screens need from a resource.
type Service[T domain.Entity] interface {
	Resource() domain.Resource
	List(ctx context.Context, q domain.ListQuery) (*domain.Page[T], error)
	Search(ctx context.Context, q domain.ListQuery) (*domain.Page[T], error)
	ByCategory(ctx context.Context, q domain.ListQuery) (*domain.Page[T], error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, draft domain.Draft) (*T, error)
	Update(ctx context.Context, id string, draft domain.Draft) (*T, error)
	Delete(ctx context.Context, id string) error
}

var _ Service[domain.Product] = (*app.ResourceService[domain.Product])(nil)

// Binding connects one resource to its listing and form screens.
type Binding interface {
	Resource() domain.Resource
	openList(d *Deps) screen
	openForm(d *Deps) screen
	openEdit(d *Deps, id string) screen
}

type binding[T domain.Entity] struct {
	svc Service[T]
}

func Bind[T domain.Entity](svc Service[T]) Binding {
	return binding[T]{svc: svc}
}

func (b binding[T]) Resource() domain.Resource {
	return b.svc.Resource()
}

func (b binding[T]) openList(d *Deps) screen {
	return newListScreen(d, b.svc)
}

func (b binding[T]) openForm(d *Deps) screen {
	return newFormScreen(d, b.svc.Resource(), func(ctx context.Context, draft domain.Draft) (string, error) {
		item, err := b.svc.Create(ctx, draft)
		if err != nil {
			return "", err
		}
		return (*item).DisplayName(), nil
	})
}

func (b binding[T]) openEdit(d *Deps, id string) screen {
	res := b.svc.Resource()
	load := func(ctx context.Context) (domain.Draft, error) {
		item, err := b.svc.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return res.Schema.DraftOf(*item)
	}
	return newEditScreen(d, res, load, func(ctx context.Context, draft domain.Draft) (string, error) {
		item, err := b.svc.Update(ctx, id, draft)
		if err != nil {
			return "", err
		}
		return (*item).DisplayName(), nil
	})
}
