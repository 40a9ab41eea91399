package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInclusiveDays(t *testing.T) {
	t.Parallel()

	start, _ := ParseDate("2024-03-10")
	end, _ := ParseDate("2024-03-12")
	assert.Equal(t, 3, InclusiveDays(start, end))

	sameDay, _ := ParseDate("2024-03-10")
	assert.Equal(t, 1, InclusiveDays(start, sameDay))
}

func TestWorkingDays(t *testing.T) {
	t.Parallel()

	// March 2024: 31 days, 5 Saturdays and 5 Sundays.
	assert.Equal(t, 21, WorkingDays(2024, time.March))

	// February 2024 (leap): 29 days, 4 Saturdays and 4 Sundays.
	assert.Equal(t, 21, WorkingDays(2024, time.February))

	// April 2024: 30 days, 4 Saturdays and 4 Sundays.
	assert.Equal(t, 22, WorkingDays(2024, time.April))
}

func TestMonthRange(t *testing.T) {
	t.Parallel()

	first, last := MonthRange(2024, time.February)
	assert.Equal(t, "2024-02-01", first.String())
	assert.Equal(t, "2024-02-29", last.String())
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
}

func TestDateOfStripsTimeOfDay(t *testing.T) {
	t.Parallel()

	late := time.Date(2024, time.June, 3, 23, 59, 59, 0, time.UTC)
	early := time.Date(2024, time.June, 3, 0, 0, 1, 0, time.UTC)
	assert.Equal(t, DateOf(late), DateOf(early))
}

func TestParseDateInvalid(t *testing.T) {
	t.Parallel()

	_, err := ParseDate("03/10/2024")
	assert.Error(t, err)
}

func TestAddDaysCrossesMonthBoundary(t *testing.T) {
	t.Parallel()

	d, _ := ParseDate("2024-01-31")
	assert.Equal(t, "2024-02-01", d.AddDays(1).String())
}
