// Package deck extracts per-slide title and content from uploaded deck files.
package deck

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SlideData is one parsed slide, consumed once at ingestion.
type SlideData struct {
	Title   string
	Content string
}

// Format enumerates supported deck payload formats.
type Format string

const (
	FormatUnknown Format = ""
	FormatPDF     Format = "pdf"
	FormatText    Format = "text"
)

// DetectFormat infers a deck format from the path's extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF
	case ".txt", ".md":
		return FormatText
	default:
		return FormatUnknown
	}
}

// ParseFile parses a deck file into ordered slides.
func ParseFile(path string) ([]SlideData, error) {
	switch DetectFormat(path) {
	case FormatPDF:
		return parsePDF(path)
	case FormatText:
		return parseTextFile(path)
	default:
		return nil, fmt.Errorf("unsupported deck format: %s", filepath.Ext(path))
	}
}

const maxTitleLength = 120

// splitTitle takes the first non-empty line as the slide title and the rest
// as content, mirroring how deck exports usually lay out a page.
func splitTitle(text string) SlideData {
	lines := strings.Split(text, "\n")
	slide := SlideData{}

	rest := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if slide.Title == "" && trimmed != "" {
			title := trimmed
			if len([]rune(title)) > maxTitleLength {
				title = string([]rune(title)[:maxTitleLength])
			}
			slide.Title = title
			continue
		}
		rest = append(rest, line)
	}

	slide.Content = strings.TrimSpace(strings.Join(rest, "\n"))
	return slide
}
