package cmd

import (
	"fmt"
	"strings"

	"hero-catalog/feature/heroes/models"
	"hero-catalog/feature/heroes/pipeline"

	"github.com/charmbracelet/lipgloss"
)

const (
	iconStar  = "★"
	iconEmpty = "☆"
	iconWarn  = "⚠"
	iconOK    = "✔"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	keyStyle   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	mutedStyle = lipgloss.NewStyle().Foreground(cMuted)
	goodStyle  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	badStyle   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	goldStyle  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	panelStyle = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
)

func heading(title string) string {
	return titleStyle.Render(title)
}

func labelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", keyStyle.Render(label+":"), value)
}

func favoriteMark(fav bool) string {
	if fav {
		return goldStyle.Render(iconStar)
	}
	return mutedStyle.Render(iconEmpty)
}

// renderHeroList renders one line per hero: favorite mark, id, name and stats.
func renderHeroList(list []models.Hero) string {
	if len(list) == 0 {
		return mutedStyle.Render("No heroes.")
	}

	var sb strings.Builder
	for i, h := range list {
		if i > 0 {
			sb.WriteByte('\n')
		}
		stats := fmt.Sprintf("INT %3d  STR %3d",
			pipeline.MetricValue(h, pipeline.MetricIntelligence),
			pipeline.MetricValue(h, pipeline.MetricStrength))
		fmt.Fprintf(&sb, "%s %s %-28s %s",
			favoriteMark(h.IsFavorite),
			mutedStyle.Render(fmt.Sprintf("#%-4d", h.ID)),
			h.Name,
			mutedStyle.Render(stats))
	}
	return sb.String()
}

// renderDetail renders the hero detail panel, including the biography or its error.
func renderDetail(d *models.HeroDetail) string {
	lines := []string{
		heading(fmt.Sprintf("%s %s", favoriteMark(d.Hero.IsFavorite), d.Hero.Name)),
		labelValue("ID", d.Hero.ID),
		labelValue("Stats", d.Hero.Description),
		labelValue("Comics", d.Hero.ComicsCount),
	}
	if d.Hero.ImageURL != "" {
		lines = append(lines, labelValue("Image", d.Hero.ImageURL))
	}
	lines = append(lines, "")

	switch {
	case d.Biography != nil:
		lines = append(lines, d.Biography.Text())
	case d.BiographyError != "":
		lines = append(lines, badStyle.Render(d.BiographyError))
	}

	lines = append(lines, "", mutedStyle.Render(d.ShareSubject))
	return panelStyle.Render(strings.Join(lines, "\n"))
}

// renderToggle renders the outcome of a favorite toggle.
func renderToggle(r *models.ToggleResult) string {
	state := "Removed from favorites"
	if r.Hero.IsFavorite {
		state = "Added to favorites"
	}
	line := fmt.Sprintf("%s %s %s", favoriteMark(r.Hero.IsFavorite), r.Hero.Name, goodStyle.Render(state))
	if !r.Persisted {
		line += "\n" + warnStyle.Render(iconWarn+" Not saved: "+r.SaveError)
	}
	return line
}

func statusText(ok bool, text string) string {
	if ok {
		return goodStyle.Render(iconOK + " " + text)
	}
	return warnStyle.Render(iconWarn + " " + text)
}
