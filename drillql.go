// Package drillql is the drill navigation engine of a cube-style
// analytics layer. Given a metadata snapshot of the semantic model and a
// click on a rendered data point, BuildDrillOptions enumerates the valid
// ways to explore finer detail or roll back up across three axes — time
// granularity, dimension hierarchy, and measure drill-through — and
// BuildDrillQuery deterministically rewrites the active query once an
// option is chosen, producing the next query, an optional chart-axis
// suggestion, and one breadcrumb entry.
//
// Every function is synchronous and side-effect-free: inputs are taken
// by value or read-only, results are freshly allocated, and identical
// inputs yield value-identical outputs. The package is therefore safe to
// call concurrently for any number of visible charts.
package drillql
