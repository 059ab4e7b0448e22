package pipeline

import (
	"testing"

	"hero-catalog/feature/heroes/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func hero(id int, name, description string) models.Hero {
	return models.Hero{ID: id, Name: name, Description: description}
}

func names(heroes []models.Hero) []string {
	out := make([]string, len(heroes))
	for i, h := range heroes {
		out[i] = h.Name
	}
	return out
}

func TestFilterByName(t *testing.T) {
	all := []models.Hero{
		hero(1, "Iron Man", ""),
		hero(2, "Thor", ""),
		hero(3, "Iron Fist", ""),
	}

	t.Run("empty query is identity", func(t *testing.T) {
		got := FilterByName(all, "")
		if diff := cmp.Diff(all, got); diff != "" {
			t.Errorf("FilterByName(\"\") mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := FilterByName(all, "IRON")
		assert.Equal(t, []string{"Iron Man", "Iron Fist"}, names(got))
	})

	t.Run("no match", func(t *testing.T) {
		got := FilterByName(all, "hulk")
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("does not alias input", func(t *testing.T) {
		got := FilterByName(all, "")
		got[0].Name = "changed"
		assert.Equal(t, "Iron Man", all[0].Name)
	})
}

func TestExtractMetric(t *testing.T) {
	tests := []struct {
		name        string
		description string
		metric      Metric
		want        int
	}{
		{"intelligence", "Intelligence: 69, Strength: 100", MetricIntelligence, 69},
		{"strength", "Intelligence: 69, Strength: 100", MetricStrength, 100},
		{"missing label", "no stats here", MetricIntelligence, 0},
		{"missing label strength", "no stats here", MetricStrength, 0},
		{"label without digits", "Strength: unknown", MetricStrength, 0},
		{"first run only", "Strength: 12abc 99", MetricStrength, 12},
		{"unknown metric", "Strength: 5", Metric("speed"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractMetric(tt.description, tt.metric))
		})
	}
}

func TestMetricValue_PrefersTypedField(t *testing.T) {
	h := hero(1, "Thor", "Intelligence: 1, Strength: 2")
	h.Intelligence = intPtr(69)

	assert.Equal(t, 69, MetricValue(h, MetricIntelligence))
	assert.Equal(t, 2, MetricValue(h, MetricStrength))
}

func TestSortByName(t *testing.T) {
	in := []models.Hero{hero(1, "Thor", ""), hero(2, "Hulk", ""), hero(3, "Captain America", "")}

	asc := SortByName(in, true)
	assert.Equal(t, []string{"Captain America", "Hulk", "Thor"}, names(asc))

	desc := SortByName(in, false)
	assert.Equal(t, []string{"Thor", "Hulk", "Captain America"}, names(desc))

	// input untouched
	assert.Equal(t, []string{"Thor", "Hulk", "Captain America"}, names(in))
}

func TestSortByName_Stable(t *testing.T) {
	in := []models.Hero{hero(1, "Thor", ""), hero(2, "Hulk", ""), hero(3, "Thor", "")}

	ids := func(heroes []models.Hero) []int {
		out := make([]int, len(heroes))
		for i, h := range heroes {
			out[i] = h.ID
		}
		return out
	}

	assert.Equal(t, []int{2, 1, 3}, ids(SortByName(in, true)))
	assert.Equal(t, []int{1, 3, 2}, ids(SortByName(in, false)))
}

func TestSortByMetric_Stable(t *testing.T) {
	in := []models.Hero{
		hero(1, "A", "Strength: 50"),
		hero(2, "B", "Strength: 10"),
		hero(3, "C", "Strength: 50"),
		hero(4, "D", "no stats here"),
		hero(5, "E", "Strength: 10"),
	}

	asc := SortByMetric(in, MetricStrength, true)
	if diff := cmp.Diff([]string{"D", "B", "E", "A", "C"}, names(asc)); diff != "" {
		t.Errorf("ascending mismatch (-want +got):\n%s", diff)
	}

	desc := SortByMetric(in, MetricStrength, false)
	if diff := cmp.Diff([]string{"A", "C", "B", "E", "D"}, names(desc)); diff != "" {
		t.Errorf("descending mismatch (-want +got):\n%s", diff)
	}
}

func TestSortByMetric_ThorHulk(t *testing.T) {
	thor := hero(1, "Thor", models.StatsDescription(69, 100))
	hulk := hero(2, "Hulk", models.StatsDescription(10, 100))
	hulk.IsFavorite = true

	got := SortByMetric([]models.Hero{thor, hulk}, MetricStrength, false)
	assert.Equal(t, []string{"Thor", "Hulk"}, names(got))
	assert.True(t, got[1].IsFavorite)

	got = SortByMetric([]models.Hero{thor, hulk}, MetricIntelligence, true)
	assert.Equal(t, []string{"Hulk", "Thor"}, names(got))
}

func TestApply(t *testing.T) {
	in := []models.Hero{
		hero(1, "Iron Man", "Intelligence: 100, Strength: 85"),
		hero(2, "Thor", "Intelligence: 69, Strength: 100"),
		hero(3, "Iron Fist", "Intelligence: 63, Strength: 32"),
	}

	got := Apply(in, Options{Query: "iron", Sort: SortIntelligence, Ascending: true})
	assert.Equal(t, []string{"Iron Fist", "Iron Man"}, names(got))

	got = Apply(in, Options{})
	assert.Equal(t, names(in), names(got))
}

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions("thor", "Strength", "desc")
	require.NoError(t, err)
	assert.Equal(t, Options{Query: "thor", Sort: SortStrength, Ascending: false}, opts)

	opts, err = ParseOptions("", "", "")
	require.NoError(t, err)
	assert.Equal(t, Options{Ascending: true}, opts)

	_, err = ParseOptions("", "speed", "")
	assert.Error(t, err)

	_, err = ParseOptions("", "name", "sideways")
	assert.Error(t, err)
}

func TestParseMetric(t *testing.T) {
	m, err := ParseMetric(" INTELLIGENCE ")
	require.NoError(t, err)
	assert.Equal(t, MetricIntelligence, m)

	_, err = ParseMetric("combat")
	assert.Error(t, err)
}
