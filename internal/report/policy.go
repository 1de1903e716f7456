package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zlodag/leave-planner/internal/roster"
)

// DayPolicy turns one employee's leave shifts into a day total. Totals are
// decimal all the way through the aggregation; they become float64 only at
// the document boundary.
type DayPolicy interface {
	Name() string
	LeaveDays(records []roster.LeaveRecord) decimal.Decimal
}

// ParsePolicy maps a configured policy name to its implementation.
func ParsePolicy(name string) (DayPolicy, error) {
	switch name {
	case "flat":
		return FlatPolicy{}, nil
	case "calendar":
		return CalendarPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown day policy %q", name)
	}
}

var halfDay = decimal.NewFromFloat(0.5)

// FlatPolicy scores every leave shift as half a day.
type FlatPolicy struct{}

func (FlatPolicy) Name() string { return "flat" }

func (FlatPolicy) LeaveDays(records []roster.LeaveRecord) decimal.Decimal {
	return halfDay.Mul(decimal.NewFromInt(int64(len(records))))
}

// CalendarPolicy buckets shifts by start date: a date with both an AM- and
// a PM-marked shift scores a full day, a date with one kind scores half,
// and dates with neither marker score nothing. Markers are matched as
// case-insensitive substrings of the shift name.
type CalendarPolicy struct{}

func (CalendarPolicy) Name() string { return "calendar" }

func (CalendarPolicy) LeaveDays(records []roster.LeaveRecord) decimal.Decimal {
	type halves struct {
		am, pm bool
	}
	byDate := make(map[int]*halves)
	for _, record := range records {
		key := roster.EncodeDate(record.StartDate)
		mark := byDate[key]
		if mark == nil {
			mark = &halves{}
			byDate[key] = mark
		}
		name := strings.ToLower(record.ShiftName)
		if strings.Contains(name, "am") {
			mark.am = true
		}
		if strings.Contains(name, "pm") {
			mark.pm = true
		}
	}

	total := decimal.Zero
	for _, mark := range byDate {
		switch {
		case mark.am && mark.pm:
			total = total.Add(decimal.NewFromInt(1))
		case mark.am || mark.pm:
			total = total.Add(halfDay)
		}
	}
	return total
}
