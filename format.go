package drillql

import (
	"github.com/gogf/gf/v2/text/gstr"
	"github.com/google/uuid"
)

// formatClickValue renders a clicked value for filters and breadcrumb
// labels. Nil values become the empty string rather than "<nil>".
func formatClickValue(v any) string {
	if isNull(v) {
		return ""
	}
	return NewVar(v).ToString()
}

func granularityLabel(g Granularity) string {
	return gstr.UcFirst(string(g))
}

func newPathID() string {
	return uuid.NewString()
}
