package layout

import "strings"

// Measure returns the rendered width of s at the caller's current font and size.
type Measure func(s string) float64

// Wrap splits text into lines no wider than maxWidth using greedy word wrap.
// Explicit newlines start new lines. A word wider than maxWidth sits alone on its
// line; words are never split.
func Wrap(text string, maxWidth float64, measure Measure) []string {
	var lines []string
	for _, paragraph := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if measure(candidate) <= maxWidth {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = w
		}
		lines = append(lines, line)
	}
	return lines
}

// Height is the vertical space consumed by n lines.
func Height(n int, lineHeight float64) float64 {
	return float64(n) * lineHeight
}
