// Package gateway is the persistence boundary for widget records. The
// builder and the public render path both treat it as opaque CRUD.
package gateway

import (
	"context"
	"errors"
	"fmt"

	"reviewdash/models"
)

// ErrNotFound covers both an unknown widget id and, on the public path, a
// widget that exists but is not published.
var ErrNotFound = errors.New("widget not found")

// PersistenceError wraps storage failures so the builder can surface them
// as a non-fatal save status instead of losing the draft.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("widget gateway: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// CreateInput carries everything needed to allocate a widget record.
// Status defaults to DRAFT when empty.
type CreateInput struct {
	CompanyID  uint
	Name       string
	Type       string
	Status     string
	ConfigJSON []byte
}

// Update is a partial widget update; nil fields are left untouched.
type Update struct {
	Name       *string
	Status     *string
	ConfigJSON []byte
}

// Gateway is the CRUD contract the widget engine requires.
type Gateway interface {
	CreateWidget(ctx context.Context, in CreateInput) (models.Widget, error)
	GetWidget(ctx context.Context, id uint) (models.Widget, error)
	UpdateWidget(ctx context.Context, id uint, upd Update) (models.Widget, error)
	DeleteWidget(ctx context.Context, id uint) error
}
