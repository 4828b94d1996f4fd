package drillql

// M is shorthand for an untyped record, as rendered data points arrive
// from the chart layer.
type M = map[string]any

// Meta is the semantic-model document produced by schema introspection.
// It is treated as a read-only snapshot: nothing in this package mutates it.
type Meta struct {
	Cubes []*Cube `json:"cubes"`
}

type Cube struct {
	Name        string       `json:"name"`
	Title       string       `json:"title,omitempty"`
	Measures    []*Measure   `json:"measures,omitempty"`
	Dimensions  []*Dimension `json:"dimensions,omitempty"`
	Hierarchies []*Hierarchy `json:"hierarchies,omitempty"`
}

type Measure struct {
	Name       string `json:"name"`
	Title      string `json:"title,omitempty"`
	ShortTitle string `json:"shortTitle,omitempty"`
	// DrillMembers lists the dimensions this measure can be drilled
	// through into, in display order.
	DrillMembers []string `json:"drillMembers,omitempty"`
}

type Dimension struct {
	Name       string        `json:"name"`
	Title      string        `json:"title,omitempty"`
	ShortTitle string        `json:"shortTitle,omitempty"`
	Type       DimensionType `json:"type"`
	// Granularities applies to time dimensions only. Empty means the
	// dimension supports the default granularity list.
	Granularities []Granularity `json:"granularities,omitempty"`
}

type DimensionType string

const (
	TypeString  DimensionType = "string"
	TypeNumber  DimensionType = "number"
	TypeTime    DimensionType = "time"
	TypeBoolean DimensionType = "boolean"
)

// Hierarchy is an ordered chain of dimension names from coarsest to
// finest level. A dimension appears in at most one level per hierarchy.
type Hierarchy struct {
	Name   string   `json:"name"`
	Title  string   `json:"title,omitempty"`
	Levels []string `json:"levels"`
}

// Granularity is a time-bucketing resolution with a fixed global
// ordering from coarsest (year) to finest (second).
type Granularity string

const (
	Year    Granularity = "year"
	Quarter Granularity = "quarter"
	Month   Granularity = "month"
	Week    Granularity = "week"
	Day     Granularity = "day"
	Hour    Granularity = "hour"
	Minute  Granularity = "minute"
	Second  Granularity = "second"
)

var granularityOrder = []Granularity{Year, Quarter, Month, Week, Day, Hour, Minute, Second}

// defaultGranularities is used for time dimensions that declare no
// granularity list of their own.
var defaultGranularities = []Granularity{Year, Quarter, Month, Week, Day, Hour}

// FinerThan reports whether g is strictly finer than other in the global
// granularity order. Unknown granularities compare finer than known ones.
func (g Granularity) FinerThan(other Granularity) bool {
	return granularityRank(g) > granularityRank(other)
}

// CoarserThan reports whether g is strictly coarser than other.
func (g Granularity) CoarserThan(other Granularity) bool {
	return granularityRank(g) < granularityRank(other)
}

func granularityRank(g Granularity) int {
	for i, cur := range granularityOrder {
		if cur == g {
			return i
		}
	}
	return len(granularityOrder)
}

// QUERY

// Query is the analytical query shape consumed by the query-execution
// layer. Only the first TimeDimensions entry participates in time-drill
// logic.
type Query struct {
	Measures       []string        `json:"measures,omitempty"`
	Dimensions     []string        `json:"dimensions,omitempty"`
	TimeDimensions []TimeDimension `json:"timeDimensions,omitempty"`
	Filters        []Filter        `json:"filters,omitempty"`
	Limit          int             `json:"limit,omitempty"`
}

type TimeDimension struct {
	Dimension   string      `json:"dimension"`
	Granularity Granularity `json:"granularity,omitempty"`
	DateRange   []string    `json:"dateRange,omitempty"`
}

// Filter is either an equality leaf (Member/Operator/Values) or a
// compound node (And/Or), matching the wire shape.
type Filter struct {
	Member   string   `json:"member,omitempty"`
	Operator string   `json:"operator,omitempty"`
	Values   []string `json:"values,omitempty"`
	And      []Filter `json:"and,omitempty"`
	Or       []Filter `json:"or,omitempty"`
}

const OpEquals = "equals"

// Clone returns a deep copy. Rewrites always operate on a clone so the
// caller's query is never aliased or mutated.
func (q Query) Clone() Query {
	out := Query{Limit: q.Limit}
	if q.Measures != nil {
		out.Measures = append([]string(nil), q.Measures...)
	}
	if q.Dimensions != nil {
		out.Dimensions = append([]string(nil), q.Dimensions...)
	}
	out.TimeDimensions = cloneTimeDimensions(q.TimeDimensions)
	out.Filters = cloneFilters(q.Filters)
	return out
}

func cloneTimeDimensions(tds []TimeDimension) []TimeDimension {
	if tds == nil {
		return nil
	}
	out := make([]TimeDimension, len(tds))
	for i, td := range tds {
		out[i] = td
		if td.DateRange != nil {
			out[i].DateRange = append([]string(nil), td.DateRange...)
		}
	}
	return out
}

func cloneFilters(fs []Filter) []Filter {
	if fs == nil {
		return nil
	}
	out := make([]Filter, len(fs))
	for i, f := range fs {
		out[i] = f
		if f.Values != nil {
			out[i].Values = append([]string(nil), f.Values...)
		}
		out[i].And = cloneFilters(f.And)
		out[i].Or = cloneFilters(f.Or)
	}
	return out
}

// CLICK EVENT

// ClickEvent is produced by the chart layer when the user clicks a
// rendered data point. ClickedField names the clicked measure, XValue is
// the axis category under the cursor, DataPoint the full rendered row.
type ClickEvent struct {
	ClickedField string         `json:"clickedField"`
	XValue       any            `json:"xValue"`
	DataPoint    map[string]any `json:"dataPoint,omitempty"`
}

// Value wraps the clicked axis value for typed access.
func (e ClickEvent) Value() *Var {
	return NewVar(e.XValue)
}

// Point wraps the clicked data point for keyed access.
func (e ClickEvent) Point() *Var {
	return NewVar(e.DataPoint)
}

// DRILL OPTIONS

// DrillOption is one selectable navigation action, created fresh per
// click and consumed at most once by BuildDrillQuery. The concrete
// variants form a sealed union: each carries only the payload fields
// that are valid for its kind.
type DrillOption interface {
	Info() OptionInfo
	aOption()
}

// OptionInfo is the display header shared by every option variant.
type OptionInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Scope string `json:"scope"`
}

func (i OptionInfo) Info() OptionInfo { return i }

const (
	ScopeTime      = "time"
	ScopeHierarchy = "hierarchy"
	ScopeMeasure   = "measure"
)

const (
	IconZoomIn  = "zoom-in"
	IconZoomOut = "zoom-out"
	IconTable   = "table"
)

// TimeDrillDown moves the first time dimension to a finer granularity,
// scoped to the clicked period.
type TimeDrillDown struct {
	OptionInfo
	Granularity Granularity `json:"granularity"`
}

// TimeDrillUp moves the first time dimension to a coarser granularity.
type TimeDrillUp struct {
	OptionInfo
	Granularity Granularity `json:"granularity"`
}

// HierarchyDrillDown swaps a hierarchy member for the next-finer level,
// pinned to the clicked value.
type HierarchyDrillDown struct {
	OptionInfo
	Hierarchy string `json:"hierarchy"`
	Dimension string `json:"dimension"`
}

// HierarchyDrillUp swaps a hierarchy member for the next-coarser level.
type HierarchyDrillUp struct {
	OptionInfo
	Hierarchy string `json:"hierarchy"`
	Dimension string `json:"dimension"`
}

// Details opens a row-level view of the clicked measure through one of
// its drill members.
type Details struct {
	OptionInfo
	Measure   string `json:"measure"`
	Dimension string `json:"dimension"`
	// Filters carries the dashboard filter context captured when the
	// option was generated; it is merged into the detail query.
	Filters []Filter `json:"filters,omitempty"`
}

func (o *TimeDrillDown) aOption()      {}
func (o *TimeDrillUp) aOption()        {}
func (o *HierarchyDrillDown) aOption() {}
func (o *HierarchyDrillUp) aOption()   {}
func (o *Details) aOption()            {}

// RESULT

// ChartConfig suggests axes for the chart rendered from the next query.
type ChartConfig struct {
	XAxis []string `json:"xAxis"`
	YAxis []string `json:"yAxis"`
}

// PathEntry records one navigation step. The breadcrumb trail itself
// belongs to the caller; the engine only produces one entry per rewrite
// and never reads history.
type PathEntry struct {
	ID           string       `json:"id"`
	Label        string       `json:"label"`
	Query        Query        `json:"query"`
	Filters      []Filter     `json:"filters,omitempty"`
	Granularity  Granularity  `json:"granularity,omitempty"`
	Dimension    string       `json:"dimension,omitempty"`
	Hierarchy    string       `json:"hierarchy,omitempty"`
	ClickedValue string       `json:"clickedValue,omitempty"`
	ChartConfig  *ChartConfig `json:"chartConfig,omitempty"`
}

// DrillResult is the outcome of applying one drill option: the next
// query, an optional chart-axis suggestion, and the breadcrumb entry.
type DrillResult struct {
	Query       Query        `json:"query"`
	ChartConfig *ChartConfig `json:"chartConfig,omitempty"`
	PathEntry   PathEntry    `json:"pathEntry"`
}
