package drillql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clickOn(measure string, x any) ClickEvent {
	return ClickEvent{ClickedField: measure, XValue: x}
}

func TestBuildDrillOptionsNilMeta(t *testing.T) {
	query := Query{Measures: []string{"Sales.revenue"}}
	options := BuildDrillOptions(clickOn("Sales.revenue", "x"), query, nil)
	assert.Empty(t, options)
}

func TestTimeOptionsUnsetGranularity(t *testing.T) {
	query := Query{
		Measures:       []string{"Sales.revenue"},
		TimeDimensions: []TimeDimension{{Dimension: "Sales.orderDate"}},
	}
	options := BuildDrillOptions(clickOn("Sales.margin", "x"), query, testMeta())
	require.Len(t, options, 5)
	// Nothing to roll up from: every declared granularity is an entry
	// point, in declared order.
	wantLabels := []string{"View by Year", "View by Quarter", "View by Month", "View by Week", "View by Day"}
	wantTargets := []Granularity{Year, Quarter, Month, Week, Day}
	for i, opt := range options {
		down, ok := opt.(*TimeDrillDown)
		require.True(t, ok, "option %d", i)
		assert.Equal(t, wantLabels[i], down.Label)
		assert.Equal(t, wantTargets[i], down.Granularity)
		assert.Equal(t, ScopeTime, down.Scope)
	}
}

func TestTimeOptionsOrdering(t *testing.T) {
	query := Query{
		Measures:       []string{"Sales.revenue"},
		TimeDimensions: []TimeDimension{{Dimension: "Sales.orderDate", Granularity: Month}},
	}
	options := BuildDrillOptions(clickOn("Sales.margin", "x"), query, testMeta())
	require.Len(t, options, 4)

	// Finer targets first, nearest-finer leading.
	down1 := options[0].(*TimeDrillDown)
	down2 := options[1].(*TimeDrillDown)
	assert.Equal(t, Week, down1.Granularity)
	assert.Equal(t, "Drill to Week", down1.Label)
	assert.Equal(t, Day, down2.Granularity)

	// Then coarser targets, nearest-coarser leading.
	up1 := options[2].(*TimeDrillUp)
	up2 := options[3].(*TimeDrillUp)
	assert.Equal(t, Quarter, up1.Granularity)
	assert.Equal(t, "Roll up to Quarter", up1.Label)
	assert.Equal(t, Year, up2.Granularity)
}

func TestTimeOptionsFallbackList(t *testing.T) {
	// Hour is not in orderDate's declared list, so the fixed default
	// list is used for indexing instead.
	query := Query{
		TimeDimensions: []TimeDimension{{Dimension: "Sales.orderDate", Granularity: Hour}},
	}
	options := BuildDrillOptions(clickOn("Sales.margin", "x"), query, testMeta())
	require.Len(t, options, 5)
	wantUps := []Granularity{Day, Week, Month, Quarter, Year}
	for i, opt := range options {
		up, ok := opt.(*TimeDrillUp)
		require.True(t, ok, "option %d", i)
		assert.Equal(t, wantUps[i], up.Granularity)
	}
}

// Every granularity strictly finer than the current one appears exactly
// once as a drill-down target, every strictly coarser one exactly once as
// a roll-up target, and nothing else.
func TestTimeOptionsCompleteness(t *testing.T) {
	meta := testMeta()
	declared := meta.GranularitiesOf("Sales.orderDate")
	for _, g := range declared {
		query := Query{TimeDimensions: []TimeDimension{{Dimension: "Sales.orderDate", Granularity: g}}}
		options := BuildDrillOptions(clickOn("Sales.margin", "x"), query, meta)
		require.Len(t, options, len(declared)-1, "granularity %s", g)

		seen := map[Granularity]bool{}
		for _, opt := range options {
			switch o := opt.(type) {
			case *TimeDrillDown:
				assert.True(t, o.Granularity.FinerThan(g), "%s should be finer than %s", o.Granularity, g)
				assert.False(t, seen[o.Granularity])
				seen[o.Granularity] = true
			case *TimeDrillUp:
				assert.True(t, o.Granularity.CoarserThan(g), "%s should be coarser than %s", o.Granularity, g)
				assert.False(t, seen[o.Granularity])
				seen[o.Granularity] = true
			default:
				t.Fatalf("unexpected option %T", opt)
			}
		}
	}
}

func TestHierarchyOptionsMiddleLevel(t *testing.T) {
	query := Query{Dimensions: []string{"Sales.subCategory"}}
	options := BuildDrillOptions(clickOn("Sales.margin", "x"), query, testMeta())
	require.Len(t, options, 2)

	down, ok := options[0].(*HierarchyDrillDown)
	require.True(t, ok)
	assert.Equal(t, "Sales.product", down.Dimension)
	assert.Equal(t, "products", down.Hierarchy)
	assert.Equal(t, "Drill to Product", down.Label)

	up, ok := options[1].(*HierarchyDrillUp)
	require.True(t, ok)
	assert.Equal(t, "Sales.category", up.Dimension)
	assert.Equal(t, "Roll up to Category", up.Label)
}

func TestHierarchyOptionsAtEnds(t *testing.T) {
	meta := testMeta()

	coarsest := BuildDrillOptions(clickOn("Sales.margin", "x"), Query{Dimensions: []string{"Sales.category"}}, meta)
	require.Len(t, coarsest, 1)
	assert.IsType(t, &HierarchyDrillDown{}, coarsest[0])

	finest := BuildDrillOptions(clickOn("Sales.margin", "x"), Query{Dimensions: []string{"Sales.product"}}, meta)
	require.Len(t, finest, 1)
	assert.IsType(t, &HierarchyDrillUp{}, finest[0])

	outside := BuildDrillOptions(clickOn("Sales.margin", "x"), Query{Dimensions: []string{"Sales.status"}}, meta)
	assert.Empty(t, outside)
}

func TestDetailOptionsPerDrillMember(t *testing.T) {
	query := Query{Dimensions: []string{"Sales.category"}}
	options := BuildDrillOptions(clickOn("Sales.revenue", "Furniture"), query, testMeta())

	var details []*Details
	for _, opt := range options {
		if d, ok := opt.(*Details); ok {
			details = append(details, d)
		}
	}
	require.Len(t, details, 3)
	assert.Equal(t, "Show by Order ID", details[0].Label)
	assert.Equal(t, "Show by Product Name", details[1].Label)
	assert.Equal(t, "Show by Customer Name", details[2].Label)

	seen := map[string]bool{}
	for _, d := range details {
		assert.Equal(t, "Sales.revenue", d.Measure)
		assert.False(t, seen[d.Dimension], "duplicate target %s", d.Dimension)
		seen[d.Dimension] = true
	}
}

func TestNoDetailOptionsWithoutDrillMembers(t *testing.T) {
	options := BuildDrillOptions(clickOn("Sales.margin", "x"), Query{}, testMeta())
	assert.Empty(t, options)
}

func TestOptionOrderAcrossPasses(t *testing.T) {
	query := Query{
		Measures:       []string{"Sales.revenue"},
		Dimensions:     []string{"Sales.subCategory"},
		TimeDimensions: []TimeDimension{{Dimension: "Sales.orderDate", Granularity: Month}},
	}
	options := BuildDrillOptions(clickOn("Sales.revenue", "Furniture"), query, testMeta())
	require.Len(t, options, 9)

	wantScopes := []string{
		ScopeTime, ScopeTime, ScopeTime, ScopeTime,
		ScopeHierarchy, ScopeHierarchy,
		ScopeMeasure, ScopeMeasure, ScopeMeasure,
	}
	for i, opt := range options {
		assert.Equal(t, wantScopes[i], opt.Info().Scope, "option %d", i)
	}
}

func TestDashboardFiltersRideOnDetailOptions(t *testing.T) {
	dash := Filter{Member: "Sales.status", Operator: OpEquals, Values: []string{"shipped"}}
	options := BuildDrillOptions(clickOn("Sales.revenue", "Furniture"), Query{}, testMeta(), dash)

	require.NotEmpty(t, options)
	d, ok := options[0].(*Details)
	require.True(t, ok)
	require.Len(t, d.Filters, 1)
	assert.Equal(t, "Sales.status", d.Filters[0].Member)
}

func TestBuildDrillOptionsDeterministic(t *testing.T) {
	query := Query{
		Dimensions:     []string{"Sales.subCategory"},
		TimeDimensions: []TimeDimension{{Dimension: "Sales.orderDate", Granularity: Month}},
	}
	event := clickOn("Sales.revenue", "Furniture")
	meta := testMeta()
	assert.Equal(t, BuildDrillOptions(event, query, meta), BuildDrillOptions(event, query, meta))
}
