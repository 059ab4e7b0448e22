package pipeline

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"hero-catalog/feature/heroes/models"
)

// SortField selects the single active ordering of a view.
type SortField string

const (
	SortNone         SortField = ""
	SortName         SortField = "name"
	SortIntelligence SortField = SortField(MetricIntelligence)
	SortStrength     SortField = SortField(MetricStrength)
)

// Options describes a derived view: an optional name filter followed by at most one sort.
type Options struct {
	Query     string
	Sort      SortField
	Ascending bool
}

// ParseOptions builds Options from raw query values. order accepts "asc" or "desc"
// and defaults to ascending.
func ParseOptions(query, sort, order string) (Options, error) {
	opts := Options{Query: query, Ascending: true}

	switch SortField(strings.ToLower(strings.TrimSpace(sort))) {
	case SortNone:
	case SortName:
		opts.Sort = SortName
	case SortIntelligence:
		opts.Sort = SortIntelligence
	case SortStrength:
		opts.Sort = SortStrength
	default:
		return Options{}, fmt.Errorf("unknown sort field %q", sort)
	}

	switch strings.ToLower(strings.TrimSpace(order)) {
	case "", "asc", "ascending":
	case "desc", "descending":
		opts.Ascending = false
	default:
		return Options{}, fmt.Errorf("unknown sort order %q", order)
	}

	return opts, nil
}

// Apply projects heroes through the filter and the selected sort.
// The input slice is never modified.
func Apply(heroes []models.Hero, opts Options) []models.Hero {
	view := FilterByName(heroes, opts.Query)

	switch opts.Sort {
	case SortName:
		return SortByName(view, opts.Ascending)
	case SortIntelligence:
		return SortByMetric(view, MetricIntelligence, opts.Ascending)
	case SortStrength:
		return SortByMetric(view, MetricStrength, opts.Ascending)
	default:
		return view
	}
}

// FilterByName keeps heroes whose name contains query, ignoring case.
// An empty query returns every hero in the original order.
func FilterByName(heroes []models.Hero, query string) []models.Hero {
	if query == "" {
		return slices.Clone(heroes)
	}

	needle := strings.ToLower(query)
	out := make([]models.Hero, 0, len(heroes))
	for _, h := range heroes {
		if strings.Contains(strings.ToLower(h.Name), needle) {
			out = append(out, h)
		}
	}
	return out
}

// SortByName orders heroes by name. Equal names keep their input order.
func SortByName(heroes []models.Hero, ascending bool) []models.Hero {
	out := slices.Clone(heroes)
	slices.SortStableFunc(out, func(a, b models.Hero) int {
		c := strings.Compare(a.Name, b.Name)
		if !ascending {
			c = -c
		}
		return c
	})
	return out
}

// SortByMetric orders heroes by a derived metric. Equal values keep their input order.
func SortByMetric(heroes []models.Hero, metric Metric, ascending bool) []models.Hero {
	type keyed struct {
		key  int
		hero models.Hero
	}

	items := make([]keyed, len(heroes))
	for i, h := range heroes {
		items[i] = keyed{key: MetricValue(h, metric), hero: h}
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		c := cmp.Compare(a.key, b.key)
		if !ascending {
			c = -c
		}
		return c
	})

	out := make([]models.Hero, len(items))
	for i, it := range items {
		out[i] = it.hero
	}
	return out
}
