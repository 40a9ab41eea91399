package shift

import "github.com/medishift/clinic-backend-go/internal/domain/employee"

// SessionWindow is a daily shift session template. End times at or before
// the start wrap into the next calendar day.
type SessionWindow struct {
	StartHour int
	EndHour   int
}

// SpansNextDay reports whether the session's end falls on the following day.
func (s SessionWindow) SpansNextDay() bool {
	return s.EndHour <= s.StartHour
}

// RotationPolicy carries the scheduler's constants as injected
// configuration: per-role headcount per session and the session windows.
type RotationPolicy struct {
	Headcounts map[employee.Category]int
	Sessions   []SessionWindow
}

// DefaultRotationPolicy is the clinic's standard coverage: two doctors, two
// nurses and one receptionist per session, morning 09:00-17:00 and evening
// 17:00-01:00.
func DefaultRotationPolicy() RotationPolicy {
	return RotationPolicy{
		Headcounts: map[employee.Category]int{
			employee.CategoryDoctor:       2,
			employee.CategoryNurse:        2,
			employee.CategoryReceptionist: 1,
		},
		Sessions: []SessionWindow{
			{StartHour: 9, EndHour: 17},
			{StartHour: 17, EndHour: 1},
		},
	}
}
