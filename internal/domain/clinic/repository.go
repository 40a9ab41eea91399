package clinic

import "context"

type ClinicRepository interface {
	GetByID(ctx context.Context, id string) (Clinic, error)
	List(ctx context.Context) ([]Clinic, error)
}
