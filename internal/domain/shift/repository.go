package shift

import (
	"context"

	"github.com/medishift/clinic-backend-go/internal/pkg/dateutil"
)

type AssignmentRepository interface {
	// DeletePendingInWindow removes every pending assignment for the clinic
	// whose date falls in [from, to], returning the number removed.
	DeletePendingInWindow(ctx context.Context, clinicID string, from, to dateutil.Date) (int64, error)
	Insert(ctx context.Context, a Assignment) error
	ListPendingInWindow(ctx context.Context, clinicID string, from, to dateutil.Date) ([]Assignment, error)
	GetByID(ctx context.Context, id string) (Assignment, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
