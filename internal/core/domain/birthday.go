package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Birthday records a user's day and month of birth.
// The year is never stored.
type Birthday struct {
	// UserID identifies the user in the chat transport.
	UserID string

	// Day is the day of the month (1-31).
	Day int

	// Month is the month of the year.
	Month time.Month

	// CreatedAt is when the birthday was first recorded.
	CreatedAt time.Time

	// UpdatedAt is when the birthday was last changed.
	UpdatedAt time.Time
}

// daysInMonth uses a leap year so 29/02 is accepted.
var daysInMonth = map[time.Month]int{
	time.January: 31, time.February: 29, time.March: 31,
	time.April: 30, time.May: 31, time.June: 30,
	time.July: 31, time.August: 31, time.September: 30,
	time.October: 31, time.November: 30, time.December: 31,
}

// ParseBirthdate parses a "dd/mm" date.
func ParseBirthdate(s string) (day int, month time.Month, err error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: expected dd/mm, got %q", ErrInvalidBirthday, s)
	}
	d, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad day %q", ErrInvalidBirthday, parts[0])
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad month %q", ErrInvalidBirthday, parts[1])
	}
	if err := ValidateBirthdate(d, time.Month(m)); err != nil {
		return 0, 0, err
	}
	return d, time.Month(m), nil
}

// ValidateBirthdate checks that day exists in month.
func ValidateBirthdate(day int, month time.Month) error {
	limit, ok := daysInMonth[month]
	if !ok {
		return fmt.Errorf("%w: month %d out of range", ErrInvalidBirthday, month)
	}
	if day < 1 || day > limit {
		return fmt.Errorf("%w: day %d out of range for %s", ErrInvalidBirthday, day, month)
	}
	return nil
}

// Validate checks the birthday fields.
func (b Birthday) Validate() error {
	if strings.TrimSpace(b.UserID) == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return ValidateBirthdate(b.Day, b.Month)
}

// Matches reports whether the birthday falls on the date's day and month.
// On non-leap years, 29/02 birthdays are celebrated on 28/02.
func (b Birthday) Matches(date time.Time) bool {
	if b.Month == time.February && b.Day == 29 && !isLeap(date.Year()) {
		return date.Month() == time.February && date.Day() == 28
	}
	return date.Month() == b.Month && date.Day() == b.Day
}

// String formats the birthday as dd/mm.
func (b Birthday) String() string {
	return fmt.Sprintf("%02d/%02d", b.Day, int(b.Month))
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
