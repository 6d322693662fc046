package insights

import (
	"time"

	"spendlens/internal/core"
)

// WeekdayBucket accumulates spend for one day of the week.
type WeekdayBucket struct {
	Label string
	Total float64
	Count int
}

// WeekdayPattern aggregates all records (not just the current month) into
// seven Sunday-first buckets. Every weekday appears in the result even when
// it saw no activity.
func WeekdayPattern(records []core.Expense) [7]WeekdayBucket {
	var out [7]WeekdayBucket
	for i := range out {
		out[i].Label = time.Weekday(i).String()
	}
	for _, e := range records {
		i := int(e.Date.Weekday())
		out[i].Total += e.Amount.Dollars()
		out[i].Count++
	}
	return out
}
