package drillql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeriodBounds(t *testing.T) {
	tests := []struct {
		name  string
		label string
		g     Granularity
		start string
		end   string
	}{
		{"year from bare label", "2024", Year, "2024-01-01", "2024-12-31"},
		{"year from date", "2023-07-19", Year, "2023-01-01", "2023-12-31"},
		{"quarter q2", "2024-04-15", Quarter, "2024-04-01", "2024-06-30"},
		{"quarter q4 last day", "2024-12-31", Quarter, "2024-10-01", "2024-12-31"},
		{"quarter q1", "2024-02-01", Quarter, "2024-01-01", "2024-03-31"},
		{"month", "2024-06-15", Month, "2024-06-01", "2024-06-30"},
		{"month leap february", "2024-02-10", Month, "2024-02-01", "2024-02-29"},
		{"month plain february", "2023-02-10", Month, "2023-02-01", "2023-02-28"},
		{"week midweek", "2024-06-12", Week, "2024-06-10", "2024-06-16"},
		{"week monday", "2024-06-10", Week, "2024-06-10", "2024-06-16"},
		// Sunday closes the week opened by the previous Monday.
		{"week sunday", "2024-06-16", Week, "2024-06-10", "2024-06-16"},
		{"day", "2024-06-15", Day, "2024-06-15", "2024-06-15"},
		{"granularity is case-insensitive", "2024-06-15", Granularity("MONTH"), "2024-06-01", "2024-06-30"},
		{"unknown granularity behaves as day", "2024-06-15", Granularity("fortnight"), "2024-06-15", "2024-06-15"},
		{"empty granularity behaves as day", "2024-06-15", "", "2024-06-15", "2024-06-15"},
		{"datetime label", "2024-01-15T00:00:00", Month, "2024-01-01", "2024-01-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PeriodBounds(tt.label, tt.g)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestPeriodBoundsPassthrough(t *testing.T) {
	// Labels that are not dates come back unchanged; resolving them is
	// the query consumer's problem, not an error here.
	for _, label := range []string{"Total", "Q1 vs Q2", "", "123456"} {
		start, end := PeriodBounds(label, Month)
		assert.Equal(t, label, start)
		assert.Equal(t, label, end)
	}
}
