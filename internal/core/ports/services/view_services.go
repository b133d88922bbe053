package services

import (
	"context"

	"github.com/finbook-dev/finbook/internal/core/domain"
	"github.com/finbook-dev/finbook/internal/dto"
)

// ViewSvc tracks the active view selection and assembles per-view payloads.
type ViewSvc interface {
	// ActiveView returns the currently selected view.
	ActiveView(ctx context.Context) domain.ViewType

	// SelectView switches the active view.
	SelectView(ctx context.Context, view domain.ViewType) error

	// GetView assembles the payload for the named view.
	GetView(ctx context.Context, view domain.ViewType) (*dto.ViewResponse, error)
}
