package clinic

import "time"

type Clinic struct {
	ID        string
	Name      string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
