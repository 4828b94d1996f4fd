package drillql

import (
	"fmt"

	"github.com/gogf/gf/v2/errors/gcode"
	"github.com/gogf/gf/v2/errors/gerror"
)

// The two fatal error kinds. Both mark caller-programming errors, not
// data errors: everything data-shaped degrades gracefully instead.
// Classify with gerror.Code(err).
var (
	CodeUnknownDrillType   = gcode.New(1, "UnknownDrillType", nil)
	CodeMissingDrillTarget = gcode.New(2, "MissingDrillTarget", nil)
)

// detailRowLimit bounds a detail view's payload.
const detailRowLimit = 100

// BuildDrillQuery applies one selected drill option to the active query
// and returns the next query, an optional chart-axis suggestion, and the
// breadcrumb entry for this step. The input query is never mutated.
func BuildDrillQuery(option DrillOption, event ClickEvent, query Query, meta *Meta) (*DrillResult, error) {
	switch o := option.(type) {
	case *TimeDrillDown:
		return drillDownTime(o, event, query), nil
	case *TimeDrillUp:
		return drillUpTime(o, query), nil
	case *HierarchyDrillDown:
		return drillDownHierarchy(o, event, query, meta), nil
	case *HierarchyDrillUp:
		return drillUpHierarchy(o, query, meta), nil
	case *Details:
		return drillDetails(o, event, query, meta)
	default:
		return nil, gerror.NewCodef(CodeUnknownDrillType, "unsupported drill option type %T", option)
	}
}

// drillDownTime narrows the first time dimension to the clicked period.
// The date range spans that period at the granularity in effect before
// the drill; the granularity then moves to the finer target.
func drillDownTime(o *TimeDrillDown, event ClickEvent, query Query) *DrillResult {
	next := query.Clone()
	clicked := formatClickValue(event.XValue)
	if len(next.TimeDimensions) > 0 {
		td := &next.TimeDimensions[0]
		start, end := PeriodBounds(clicked, td.Granularity)
		td.Granularity = o.Granularity
		td.DateRange = []string{start, end}
	}
	return &DrillResult{
		Query: next,
		PathEntry: PathEntry{
			ID:           newPathID(),
			Label:        clicked,
			Query:        next.Clone(),
			Granularity:  o.Granularity,
			ClickedValue: clicked,
		},
	}
}

func drillUpTime(o *TimeDrillUp, query Query) *DrillResult {
	next := query.Clone()
	if len(next.TimeDimensions) > 0 {
		// The prior date range is carried forward unchanged. The
		// original intent was to clear it so the coarser view shows all
		// data again, but callers have come to rely on the carry-forward;
		// keep it until product settles the question.
		next.TimeDimensions[0].Granularity = o.Granularity
	}
	return &DrillResult{
		Query: next,
		PathEntry: PathEntry{
			ID:          newPathID(),
			Label:       o.Label,
			Query:       next.Clone(),
			Granularity: o.Granularity,
		},
	}
}

// drillDownHierarchy swaps the hierarchy's current member(s) for the
// finer target and pins the clicked value with an appended equality
// filter on the dimension that represented the hierarchy before the
// swap. Filters are only ever appended, never replaced.
func drillDownHierarchy(o *HierarchyDrillDown, event ClickEvent, query Query, meta *Meta) *DrillResult {
	next := query.Clone()
	clicked := formatClickValue(event.XValue)
	h, _ := meta.HierarchyOfDimension(o.Dimension)

	current := replaceHierarchyMembers(&next, h, o.Dimension)
	var added []Filter
	if current != "" {
		added = []Filter{{Member: current, Operator: OpEquals, Values: []string{clicked}}}
		next.Filters = append(next.Filters, added...)
	}

	entry := PathEntry{
		ID:           newPathID(),
		Label:        clicked,
		Query:        next.Clone(),
		Filters:      cloneFilters(added),
		Dimension:    o.Dimension,
		Hierarchy:    o.Hierarchy,
		ClickedValue: clicked,
	}
	return &DrillResult{Query: next, PathEntry: entry}
}

// drillUpHierarchy swaps the hierarchy member for the coarser target and
// drops filters pinned on levels strictly finer than it. Filters on
// unrelated dimensions and on levels at or above the target survive.
func drillUpHierarchy(o *HierarchyDrillUp, query Query, meta *Meta) *DrillResult {
	next := query.Clone()
	h, targetLevel := meta.HierarchyOfDimension(o.Dimension)

	replaceHierarchyMembers(&next, h, o.Dimension)
	if h != nil {
		finer := make(map[string]bool, len(h.Levels))
		for i := targetLevel + 1; i < len(h.Levels); i++ {
			finer[h.Levels[i]] = true
		}
		var kept []Filter
		for _, f := range next.Filters {
			if f.Member != "" && finer[f.Member] {
				continue
			}
			kept = append(kept, f)
		}
		next.Filters = kept
	}

	entry := PathEntry{
		ID:        newPathID(),
		Label:     o.Label,
		Query:     next.Clone(),
		Dimension: o.Dimension,
		Hierarchy: o.Hierarchy,
	}
	return &DrillResult{Query: next, PathEntry: entry}
}

// replaceHierarchyMembers rewrites query.Dimensions so the target is the
// hierarchy's only member, keeping its position when a member was already
// present and appending otherwise. It returns the dimension that
// represented the hierarchy before the rewrite, or "".
func replaceHierarchyMembers(query *Query, h *Hierarchy, target string) string {
	if h == nil {
		if !containsString(query.Dimensions, target) {
			query.Dimensions = append(query.Dimensions, target)
		}
		return ""
	}
	levels := make(map[string]bool, len(h.Levels))
	for _, level := range h.Levels {
		levels[level] = true
	}
	current := ""
	replaced := false
	out := query.Dimensions[:0]
	for _, dim := range query.Dimensions {
		if !levels[dim] {
			out = append(out, dim)
			continue
		}
		if current == "" {
			current = dim
		}
		if !replaced {
			out = append(out, target)
			replaced = true
		}
	}
	if !replaced {
		out = append(out, target)
	}
	query.Dimensions = out
	return current
}

// drillDetails builds a fresh, independent query that lists the clicked
// measure row-by-row through the selected drill member.
func drillDetails(o *Details, event ClickEvent, query Query, meta *Meta) (*DrillResult, error) {
	if o.Dimension == "" {
		return nil, gerror.NewCodef(CodeMissingDrillTarget, "details drill on %q has no target dimension", o.Measure)
	}
	measure := o.Measure
	if measure == "" {
		measure = event.ClickedField
	}
	clicked := formatClickValue(event.XValue)

	// The originating x axis: the first plain dimension, else the first
	// time dimension. Clicking its value scopes the detail rows.
	axis := ""
	if len(query.Dimensions) > 0 {
		axis = query.Dimensions[0]
	} else if len(query.TimeDimensions) > 0 {
		axis = query.TimeDimensions[0].Dimension
	}

	next := Query{
		Measures: []string{measure},
		Limit:    detailRowLimit,
	}
	if meta.IsTimeDimension(o.Dimension) {
		td := TimeDimension{Dimension: o.Dimension, Granularity: Day}
		if len(query.TimeDimensions) > 0 {
			orig := query.TimeDimensions[0]
			if orig.Granularity != "" {
				td.Granularity = orig.Granularity
			}
			if len(orig.DateRange) > 0 {
				td.DateRange = append([]string(nil), orig.DateRange...)
			}
		}
		next.TimeDimensions = []TimeDimension{td}
	} else {
		next.Dimensions = []string{o.Dimension}
		// Existing time dimensions keep scoping the detail rows; they
		// are context, not the axis being drilled.
		next.TimeDimensions = cloneTimeDimensions(query.TimeDimensions)
	}

	next.Filters = cloneFilters(query.Filters)
	next.Filters = append(next.Filters, cloneFilters(o.Filters)...)
	if axis != "" && clicked != "" {
		next.Filters = append(next.Filters, Filter{Member: axis, Operator: OpEquals, Values: []string{clicked}})
	}

	chart := &ChartConfig{XAxis: []string{o.Dimension}, YAxis: []string{measure}}
	label := "By " + meta.DimensionLabel(o.Dimension)
	if axis != "" && clicked != "" {
		label = fmt.Sprintf("By %s (%s: %s)", meta.DimensionLabel(o.Dimension), meta.DimensionLabel(axis), clicked)
	}

	entry := PathEntry{
		ID:           newPathID(),
		Label:        label,
		Query:        next.Clone(),
		Filters:      cloneFilters(next.Filters),
		Dimension:    o.Dimension,
		ClickedValue: clicked,
		ChartConfig:  chart,
	}
	return &DrillResult{Query: next, ChartConfig: chart, PathEntry: entry}, nil
}

func containsString(list []string, s string) bool {
	for _, cur := range list {
		if cur == s {
			return true
		}
	}
	return false
}
