package roster

import (
	"fmt"
	"time"
)

// EndOfDay is the roster's sentinel for a shift ending at midnight.
const EndOfDay = 2400

// DecodeDate converts a YYYYMMDD integer into a UTC date.
func DecodeDate(value int) (time.Time, error) {
	year := value / 10000
	month := value / 100 % 100
	day := value % 100
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid date integer %d", value)
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, fmt.Errorf("invalid date integer %d", value)
	}
	return date, nil
}

// EncodeDate is the inverse of DecodeDate.
func EncodeDate(date time.Time) int {
	return date.Year()*10000 + int(date.Month())*100 + date.Day()
}

// DecodeTime renders an HHMM integer as "HH:MM". The midnight sentinel 2400
// renders as "00:00"; CombineDateTime carries the day rollover.
func DecodeTime(value int) (string, error) {
	hour, minute, err := splitTime(value)
	if err != nil {
		return "", err
	}
	if hour == 24 {
		hour = 0
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

func splitTime(value int) (int, int, error) {
	if value == EndOfDay {
		return 24, 0, nil
	}
	hour := value / 100
	minute := value % 100
	if value < 0 || hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time integer %d", value)
	}
	return hour, minute, nil
}

// CombineDateTime builds a UTC datetime from roster date and time integers.
// An end time of 2400 rolls over to 00:00 of the following day.
func CombineDateTime(dateValue, timeValue int) (time.Time, error) {
	date, err := DecodeDate(dateValue)
	if err != nil {
		return time.Time{}, err
	}
	hour, minute, err := splitTime(timeValue)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC), nil
}

// DateOnly truncates a timestamp to midnight UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
