package narration

import "strings"

// Segment is one narration part with its playback window. Windows are
// contiguous: segment i+1 starts exactly where segment i ends.
type Segment struct {
	Text            string  `json:"text"`
	Start           float64 `json:"start_time"`
	Duration        float64 `json:"duration"`
	End             float64 `json:"end_time"`
	HighlightSource string  `json:"highlight_source"`
	Kind            Kind    `json:"kind"`
	Language        string  `json:"language"`
}

// wordsPerMinute is an estimated speech rate per language. Unlisted
// languages use defaultWPM.
var wordsPerMinute = map[string]float64{
	"en": 150,
	"hi": 120,
	"es": 160,
	"fr": 160,
	"de": 130,
	"it": 160,
	"pt": 155,
	"ru": 140,
	"ja": 110,
	"ko": 115,
	"zh": 105,
	"ar": 125,
	"nl": 145,
	"sv": 145,
	"no": 145,
	"da": 145,
	"fi": 125,
	"pl": 135,
	"tr": 135,
	"th": 110,
	"vi": 130,
}

const defaultWPM = 140

// pauseBonus adds a breathing pause after each element kind.
var pauseBonus = map[Kind]float64{
	KindTitle:     1.0,
	KindHeading:   0.5,
	KindBullet:    0.3,
	KindNumbered:  0.4,
	KindParagraph: 0,
}

const minSegmentDuration = 1.0

// Timeline assigns each part a playback window on a running clock starting
// at zero, in input order.
func Timeline(parts []Part, language string) []Segment {
	wpm, ok := wordsPerMinute[language]
	if !ok {
		wpm = defaultWPM
	}

	segments := make([]Segment, 0, len(parts))
	clock := 0.0
	for _, part := range parts {
		words := len(strings.Fields(part.Text))
		duration := float64(words)*(60/wpm) + pauseBonus[part.Kind]
		if duration < minSegmentDuration {
			duration = minSegmentDuration
		}

		segments = append(segments, Segment{
			Text:            part.Text,
			Start:           clock,
			Duration:        duration,
			End:             clock + duration,
			HighlightSource: part.Source,
			Kind:            part.Kind,
			Language:        language,
		})
		clock += duration
	}
	return segments
}
