package drillql

import (
	"time"

	"github.com/gogf/gf/v2/os/gtime"
	"github.com/gogf/gf/v2/text/gstr"
	"github.com/gogf/gf/v2/util/gconv"
)

const dateLayout = "2006-01-02"

// PeriodBounds maps a rendered period label plus a granularity to the
// inclusive start/end dates of the period containing it, as ISO dates.
// Granularity matching is case-insensitive; anything unrecognized is
// treated as day. A label that cannot be parsed as a date is returned
// unchanged as both bounds: boundary resolution is then deferred to
// whatever consumes the query, and is not an error here.
func PeriodBounds(label string, g Granularity) (string, string) {
	t, ok := parsePeriodLabel(label)
	if !ok {
		return label, label
	}
	var start, end time.Time
	switch Granularity(gstr.ToLower(string(g))) {
	case Year:
		start = time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	case Quarter:
		// Quarter boundaries sit at months 1, 4, 7, 10.
		first := time.Month((int(t.Month())-1)/3*3 + 1)
		start = time.Date(t.Year(), first, 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 3, -1)
	case Month:
		start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, -1)
	case Week:
		// Monday-start weeks: Sunday closes the week opened by the
		// previous Monday.
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		wd := int(day.Weekday())
		if wd == 0 {
			wd = 7
		}
		start = day.AddDate(0, 0, 1-wd)
		end = start.AddDate(0, 0, 6)
	default:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		start, end = day, day
	}
	return start.Format(dateLayout), end.Format(dateLayout)
}

func parsePeriodLabel(label string) (time.Time, bool) {
	s := gstr.Trim(label)
	if s == "" {
		return time.Time{}, false
	}
	if gstr.IsNumeric(s) {
		// A bare four-digit label is a year. Other pure numbers are
		// opaque category labels, not dates (gtime would read them as
		// unix timestamps).
		if len(s) == 4 {
			return time.Date(gconv.Int(s), time.January, 1, 0, 0, 0, 0, time.UTC), true
		}
		return time.Time{}, false
	}
	t, err := gtime.StrToTime(s)
	if err != nil || t == nil {
		return time.Time{}, false
	}
	return t.Time, true
}
