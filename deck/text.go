package deck

import (
	"fmt"
	"os"
	"strings"
)

// parseTextFile reads a plain-text deck where slides are separated by lines
// containing only "---".
func parseTextFile(path string) ([]SlideData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read text deck: %w", err)
	}
	return ParseText(string(data)), nil
}

// ParseText splits raw text into slides on "---" separator lines. Input with
// no separators becomes a single slide.
func ParseText(text string) []SlideData {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")

	var blocks []string
	var current []string
	for _, line := range strings.Split(normalized, "\n") {
		if strings.TrimSpace(line) == "---" {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = current[:0]
			continue
		}
		current = append(current, line)
	}
	blocks = append(blocks, strings.Join(current, "\n"))

	slides := make([]SlideData, 0, len(blocks))
	for _, block := range blocks {
		if strings.TrimSpace(block) == "" {
			continue
		}
		slides = append(slides, splitTitle(block))
	}

	if len(slides) == 0 {
		slides = append(slides, SlideData{Title: "Slide 1"})
	}
	return slides
}
