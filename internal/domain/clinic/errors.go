package clinic

import "errors"

var ErrClinicNotFound = errors.New("clinic not found")
