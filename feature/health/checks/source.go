package checks

import (
	"context"
	"time"

	"hero-catalog/core/superhero"
)

// SourceReport is the result of the remote catalog check.
type SourceReport struct {
	Reachable  bool   `json:"reachable"`
	Characters int    `json:"characters"`
	Published  int    `json:"published"`
	Publisher  string `json:"publisher"`
	Latency    string `json:"latency"`
	Error      string `json:"error,omitempty"`
}

// CheckSource fetches the remote catalog and counts the characters of publisher.
// An unreachable source is reported, not returned as an error.
func CheckSource(ctx context.Context, client superhero.Client, publisher string) *SourceReport {
	start := time.Now()
	report := &SourceReport{Publisher: publisher}

	chars, err := client.FetchAll(ctx)
	report.Latency = time.Since(start).String()
	if err != nil {
		report.Error = err.Error()
		return report
	}

	report.Reachable = true
	report.Characters = len(chars)
	for _, c := range chars {
		if c.Biography.Publisher == publisher {
			report.Published++
		}
	}
	return report
}
