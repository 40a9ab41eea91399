package leave

import "context"

type LeaveRepository interface {
	// ListApprovedStartingIn returns approved requests whose start date falls
	// in the given month. A request spanning into the next month is still
	// attributed to the month it starts in.
	ListApprovedStartingIn(ctx context.Context, employeeID string, month, year int) ([]LeaveRequest, error)
}
