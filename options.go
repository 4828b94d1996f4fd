package drillql

// BuildDrillOptions enumerates the valid navigation actions for a click
// on a rendered data point. Options are produced by three independent
// passes concatenated in a fixed order: time granularity, dimension
// hierarchy, then measure detail. A nil metadata snapshot yields no
// options. The optional dashFilters carry the surrounding dashboard's
// filter context; they ride on the generated detail options and are
// merged into the detail query by BuildDrillQuery.
func BuildDrillOptions(event ClickEvent, query Query, meta *Meta, dashFilters ...Filter) []DrillOption {
	if meta == nil {
		return nil
	}
	var options []DrillOption
	options = append(options, timeDrillOptions(query, meta)...)
	options = append(options, hierarchyDrillOptions(query, meta)...)
	options = append(options, detailDrillOptions(event, meta, dashFilters)...)
	return options
}

// timeDrillOptions operates on the first time dimension only.
func timeDrillOptions(query Query, meta *Meta) []DrillOption {
	if len(query.TimeDimensions) == 0 {
		return nil
	}
	td := query.TimeDimensions[0]
	avail := meta.GranularitiesOf(td.Dimension)

	var options []DrillOption
	if td.Granularity == "" {
		// Nothing is set yet, so there is nothing to roll up from:
		// offer every granularity as an entry point.
		for _, g := range avail {
			options = append(options, &TimeDrillDown{
				OptionInfo: OptionInfo{
					ID:    "time:down:" + string(g),
					Label: "View by " + granularityLabel(g),
					Icon:  IconZoomIn,
					Scope: ScopeTime,
				},
				Granularity: g,
			})
		}
		return options
	}

	idx := granularityIndex(avail, td.Granularity)
	if idx < 0 {
		avail = append([]Granularity(nil), defaultGranularities...)
		idx = granularityIndex(avail, td.Granularity)
	}
	// Finer targets, nearest first.
	for i := idx + 1; i < len(avail); i++ {
		options = append(options, &TimeDrillDown{
			OptionInfo: OptionInfo{
				ID:    "time:down:" + string(avail[i]),
				Label: "Drill to " + granularityLabel(avail[i]),
				Icon:  IconZoomIn,
				Scope: ScopeTime,
			},
			Granularity: avail[i],
		})
	}
	// Coarser targets, nearest first.
	for i := idx - 1; i >= 0; i-- {
		options = append(options, &TimeDrillUp{
			OptionInfo: OptionInfo{
				ID:    "time:up:" + string(avail[i]),
				Label: "Roll up to " + granularityLabel(avail[i]),
				Icon:  IconZoomOut,
				Scope: ScopeTime,
			},
			Granularity: avail[i],
		})
	}
	return options
}

func hierarchyDrillOptions(query Query, meta *Meta) []DrillOption {
	var options []DrillOption
	for _, dim := range query.Dimensions {
		h, level := meta.HierarchyOfDimension(dim)
		if h == nil {
			continue
		}
		if level < len(h.Levels)-1 {
			finer := h.Levels[level+1]
			options = append(options, &HierarchyDrillDown{
				OptionInfo: OptionInfo{
					ID:    "hierarchy:down:" + finer,
					Label: "Drill to " + meta.DimensionLabel(finer),
					Icon:  IconZoomIn,
					Scope: ScopeHierarchy,
				},
				Hierarchy: h.Name,
				Dimension: finer,
			})
		}
		if level > 0 {
			coarser := h.Levels[level-1]
			options = append(options, &HierarchyDrillUp{
				OptionInfo: OptionInfo{
					ID:    "hierarchy:up:" + coarser,
					Label: "Roll up to " + meta.DimensionLabel(coarser),
					Icon:  IconZoomOut,
					Scope: ScopeHierarchy,
				},
				Hierarchy: h.Name,
				Dimension: coarser,
			})
		}
	}
	return options
}

func detailDrillOptions(event ClickEvent, meta *Meta, dashFilters []Filter) []DrillOption {
	members := meta.MeasureDrillMembers(event.ClickedField)
	var options []DrillOption
	for _, member := range members {
		options = append(options, &Details{
			OptionInfo: OptionInfo{
				ID:    "details:" + member,
				Label: "Show by " + meta.DimensionLabel(member),
				Icon:  IconTable,
				Scope: ScopeMeasure,
			},
			Measure:   event.ClickedField,
			Dimension: member,
			Filters:   cloneFilters(dashFilters),
		})
	}
	return options
}

func granularityIndex(list []Granularity, g Granularity) int {
	for i, cur := range list {
		if cur == g {
			return i
		}
	}
	return -1
}
