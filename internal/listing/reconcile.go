package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmehra2102/menudash/internal/domain"
	"github.com/dmehra2102/menudash/internal/i18n"
	"go.uber.org/zap"
)

// AlertKind classifies a message shown to the operator.
type AlertKind int

const (
	AlertInfo AlertKind = iota
	AlertSuccess
	AlertError
)

// Confirmer asks the operator a yes/no question. It may block until answered.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Alerter shows a transient message.
type Alerter interface {
	Alert(kind AlertKind, message string)
}

// Deleter removes one item from the backend.
type Deleter interface {
	Delete(ctx context.Context, id string) error
}

// Reconciler deletes items from a listing and brings the page back in line
// with the backend afterwards.
type Reconciler[T any] struct {
	ctrl      *Controller[T]
	deleter   Deleter
	confirmer Confirmer
	alerter   Alerter
}

func NewReconciler[T any](ctrl *Controller[T], deleter Deleter, confirmer Confirmer, alerter Alerter) *Reconciler[T] {
	return &Reconciler[T]{
		ctrl:      ctrl,
		deleter:   deleter,
		confirmer: confirmer,
		alerter:   alerter,
	}
}

// Delete confirms, deletes id and reloads. When the deleted item was the only
// one on a page past the first, the previous page is loaded instead. A failed
// delete leaves the listing untouched.
func (r *Reconciler[T]) Delete(ctx context.Context, id, label string) error {
	msgs := r.ctrl.opts.messages
	logger := r.ctrl.opts.logger.With(
		zap.String("resource", r.ctrl.opts.label),
		zap.String("id", id),
	)

	ok, err := r.confirmer.Confirm(ctx, msgs.T(i18n.KeyConfirmDelete, label))
	if err != nil {
		return fmt.Errorf("confirmation failed: %w", err)
	}
	if !ok {
		deletesTotal.WithLabelValues(r.ctrl.opts.label, "cancelled").Inc()
		return domain.ErrCancelled
	}

	if err := r.deleter.Delete(ctx, id); err != nil {
		deletesTotal.WithLabelValues(r.ctrl.opts.label, "error").Inc()
		logger.Warn("delete failed", zap.Error(err))
		r.alerter.Alert(AlertError, msgs.Error(err))
		return err
	}

	deletesTotal.WithLabelValues(r.ctrl.opts.label, "success").Inc()
	logger.Info("item deleted")
	r.alerter.Alert(AlertSuccess, msgs.T(i18n.KeyDeleted, label))

	snap := r.ctrl.Snapshot()
	if len(snap.Items) == 1 && snap.Query.Page > 0 {
		err = r.ctrl.SetPage(ctx, snap.Query.Page-1)
	} else {
		err = r.ctrl.Refresh(ctx)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("reload after delete failed", zap.Error(err))
	}
	return nil
}
