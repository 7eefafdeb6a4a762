// Package narration turns slide text into typed elements, templated spoken
// sentences, and a timed playback plan.
package narration

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind classifies a slide element.
type Kind string

const (
	KindTitle     Kind = "title"
	KindHeading   Kind = "heading"
	KindBullet    Kind = "bullet"
	KindNumbered  Kind = "numbered"
	KindParagraph Kind = "paragraph"
)

// Structure is the per-slide classification result. It is recomputed on
// every narration request and never persisted.
type Structure struct {
	Title         string
	Headings      []string
	BulletPoints  []string
	NumberedItems []string
	Paragraphs    []string
}

const (
	headingMaxLen  = 80
	looseBulletMax = 8
)

var bulletGlyphs = []string{"•", "◦", "‣", "·", "–", "-", "*"}

var numberedPrefix = regexp.MustCompile(`^(\d+)[.)]\s+(\S.*)$`)

// StructureSlide classifies each non-empty content line into exactly one
// category; the first matching rule wins. The "short line with no trailing
// punctuation is a bullet" rule is intentionally loose and can swallow short
// declarative sentences; downstream consumers rely on it staying that way.
func StructureSlide(title, content string) Structure {
	st := Structure{Title: strings.TrimSpace(title)}

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if stripped, ok := stripBulletGlyph(line); ok {
			st.BulletPoints = append(st.BulletPoints, stripped)
			continue
		}

		if m := numberedPrefix.FindStringSubmatch(line); m != nil {
			st.NumberedItems = append(st.NumberedItems, m[2])
			continue
		}

		if isHeading(line) {
			st.Headings = append(st.Headings, line)
			continue
		}

		if isLooseBullet(line) {
			st.BulletPoints = append(st.BulletPoints, line)
			continue
		}

		st.Paragraphs = append(st.Paragraphs, line)
	}

	return st
}

func stripBulletGlyph(line string) (string, bool) {
	for _, glyph := range bulletGlyphs {
		if strings.HasPrefix(line, glyph) {
			rest := strings.TrimSpace(strings.TrimPrefix(line, glyph))
			if rest != "" {
				return rest, true
			}
		}
	}
	return "", false
}

func isHeading(line string) bool {
	if utf8.RuneCountInString(line) >= headingMaxLen {
		return false
	}
	return isAllUpper(line) || isTitleCase(line)
}

func isAllUpper(line string) bool {
	hasLetter := false
	for _, r := range line {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func isTitleCase(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		first, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsUpper(first) {
			return false
		}
	}
	return true
}

func isLooseBullet(line string) bool {
	if strings.HasSuffix(line, ".") || strings.HasSuffix(line, ":") {
		return false
	}
	return len(strings.Fields(line)) <= looseBulletMax
}
