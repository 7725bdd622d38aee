package view

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/Egor213/LogiBoard/internal/domain"
)

type Style struct {
	Class string
	Icon  string
	Label string
	Color string
}

const fallbackColor = "#9e9e9e"

// LevelStyle is the single mapping from a log level to its display
// attributes. Unknown levels get a neutral style labelled with the raw value.
func LevelStyle(level string) Style {
	switch domain.LogLevel(level) {
	case domain.LevelDebug:
		return Style{Class: "level-debug", Icon: "🐛", Label: "Debug", Color: "#607d8b"}
	case domain.LevelInfo:
		return Style{Class: "level-info", Icon: "ℹ", Label: "Info", Color: "#2196f3"}
	case domain.LevelWarning:
		return Style{Class: "level-warning", Icon: "⚠", Label: "Warning", Color: "#ff9800"}
	case domain.LevelError:
		return Style{Class: "level-error", Icon: "✖", Label: "Error", Color: "#f44336"}
	case domain.LevelCritical:
		return Style{Class: "level-critical", Icon: "☠", Label: "Critical", Color: "#9c27b0"}
	}

	label := level
	if label == "" {
		label = "Unknown"
	}
	return Style{Class: "level-unknown", Icon: "•", Label: label, Color: fallbackColor}
}

func SeverityStyle(sev domain.Severity) Style {
	switch sev {
	case domain.SeverityLow:
		return Style{Class: "severity-low", Icon: "▁", Label: "Low", Color: "#4caf50"}
	case domain.SeverityMedium:
		return Style{Class: "severity-medium", Icon: "▃", Label: "Medium", Color: "#ffc107"}
	case domain.SeverityHigh:
		return Style{Class: "severity-high", Icon: "▅", Label: "High", Color: "#ff5722"}
	case domain.SeverityCritical:
		return Style{Class: "severity-critical", Icon: "█", Label: "Critical", Color: "#b71c1c"}
	}
	return Style{Class: "severity-unknown", Icon: "?", Label: "Unknown", Color: fallbackColor}
}

// PieGradient renders level counts as a CSS conic-gradient.
func PieGradient(counts []domain.LevelCount) template.CSS {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	if total == 0 {
		return template.CSS("background: conic-gradient(#e0e0e0 0% 100%)")
	}

	var b strings.Builder
	b.WriteString("background: conic-gradient(")
	start := 0.0
	for i, c := range counts {
		end := start + float64(c.Count)*100/float64(total)
		if i == len(counts)-1 {
			end = 100
		}
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s %.2f%% %.2f%%", LevelStyle(c.Level).Color, start, end)
		start = end
	}
	b.WriteString(")")
	return template.CSS(b.String())
}

// Share returns count as a percentage of total.
func Share(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(count) * 100 / float64(total)
}

func BarWidth(count, max int) template.CSS {
	return template.CSS(fmt.Sprintf("width: %.1f%%", Share(count, max)))
}

func maxServiceCount(counts []domain.ServiceCount) int {
	m := 0
	for _, c := range counts {
		if c.Count > m {
			m = c.Count
		}
	}
	return m
}

func levelTotal(counts []domain.LevelCount) int {
	t := 0
	for _, c := range counts {
		t += c.Count
	}
	return t
}
