package drillql

import "strings"

// Metadata accessors: pure, nil-safe lookups over the semantic-model
// snapshot. Members are addressed by their full "Cube.field" name.

func (m *Meta) CubeByName(name string) *Cube {
	if m == nil {
		return nil
	}
	for _, cube := range m.Cubes {
		if cube.Name == name {
			return cube
		}
	}
	return nil
}

func (m *Meta) MeasureByName(name string) *Measure {
	cube := m.CubeByName(cubePart(name))
	if cube == nil {
		return nil
	}
	for _, measure := range cube.Measures {
		if measure.Name == name {
			return measure
		}
	}
	return nil
}

func (m *Meta) DimensionByName(name string) *Dimension {
	cube := m.CubeByName(cubePart(name))
	if cube == nil {
		return nil
	}
	for _, dim := range cube.Dimensions {
		if dim.Name == name {
			return dim
		}
	}
	return nil
}

// IsTimeDimension reports whether some cube declares the dimension with
// the time kind.
func (m *Meta) IsTimeDimension(name string) bool {
	dim := m.DimensionByName(name)
	return dim != nil && dim.Type == TypeTime
}

// GranularitiesOf returns the dimension's declared granularity list, or
// the default list when none is declared. The result is always a copy.
func (m *Meta) GranularitiesOf(name string) []Granularity {
	dim := m.DimensionByName(name)
	if dim == nil || len(dim.Granularities) == 0 {
		return append([]Granularity(nil), defaultGranularities...)
	}
	return append([]Granularity(nil), dim.Granularities...)
}

// MeasureDrillMembers returns the measure's declared drill members, or
// nil when the measure is unknown or declares none. Absence is not an
// error.
func (m *Meta) MeasureDrillMembers(name string) []string {
	measure := m.MeasureByName(name)
	if measure == nil || len(measure.DrillMembers) == 0 {
		return nil
	}
	return append([]string(nil), measure.DrillMembers...)
}

// HierarchyOfDimension resolves which hierarchy of the dimension's
// owning cube contains it, and at which level. Returns (nil, -1) when
// the dimension belongs to no hierarchy.
func (m *Meta) HierarchyOfDimension(name string) (*Hierarchy, int) {
	cube := m.CubeByName(cubePart(name))
	if cube == nil {
		return nil, -1
	}
	for _, h := range cube.Hierarchies {
		for i, level := range h.Levels {
			if level == name {
				return h, i
			}
		}
	}
	return nil, -1
}

// DimensionLabel returns the dimension's display label: declared title,
// else short title, else the bare field name after the cube prefix.
func (m *Meta) DimensionLabel(name string) string {
	dim := m.DimensionByName(name)
	if dim != nil {
		if dim.Title != "" {
			return dim.Title
		}
		if dim.ShortTitle != "" {
			return dim.ShortTitle
		}
	}
	return fieldPart(name)
}

func cubePart(name string) string {
	cube, _, _ := strings.Cut(name, ".")
	return cube
}

func fieldPart(name string) string {
	if _, field, ok := strings.Cut(name, "."); ok {
		return field
	}
	return name
}
