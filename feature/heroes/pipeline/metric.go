package pipeline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"hero-catalog/feature/heroes/models"
)

// Metric is a sortable numeric attribute derived from a hero.
type Metric string

const (
	MetricIntelligence Metric = "intelligence"
	MetricStrength     Metric = "strength"
)

var metricPatterns = map[Metric]*regexp.Regexp{
	MetricIntelligence: regexp.MustCompile(`Intelligence: (\d+)`),
	MetricStrength:     regexp.MustCompile(`Strength: (\d+)`),
}

// ParseMetric maps a user supplied name onto a Metric.
func ParseMetric(s string) (Metric, error) {
	switch Metric(strings.ToLower(strings.TrimSpace(s))) {
	case MetricIntelligence:
		return MetricIntelligence, nil
	case MetricStrength:
		return MetricStrength, nil
	default:
		return "", fmt.Errorf("unknown metric %q", s)
	}
}

// ExtractMetric returns the first decimal run following the metric's label in
// description, or 0 when the label is absent or the number does not parse.
func ExtractMetric(description string, metric Metric) int {
	re, ok := metricPatterns[metric]
	if !ok {
		return 0
	}
	match := re.FindStringSubmatch(description)
	if match == nil {
		return 0
	}
	v, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return v
}

// MetricValue returns the sort key of h for metric. The typed stat wins when the
// source provided one; stored records without it fall back to the description text.
func MetricValue(h models.Hero, metric Metric) int {
	switch metric {
	case MetricIntelligence:
		if h.Intelligence != nil {
			return *h.Intelligence
		}
	case MetricStrength:
		if h.Strength != nil {
			return *h.Strength
		}
	}
	return ExtractMetric(h.Description, metric)
}
