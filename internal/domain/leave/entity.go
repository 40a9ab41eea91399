package leave

import (
	"time"

	"github.com/medishift/clinic-backend-go/internal/pkg/dateutil"
)

type Type string

const (
	TypePaid    Type = "paid"
	TypeUnpaid  Type = "unpaid"
	TypeMedical Type = "medical"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusDeclined RequestStatus = "declined"
)

type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       Type
	StartDate  dateutil.Date
	EndDate    dateutil.Date
	Reason     *string
	Status     RequestStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Days is the inclusive span of the request in calendar days.
func (l LeaveRequest) Days() int {
	return dateutil.InclusiveDays(l.StartDate, l.EndDate)
}
