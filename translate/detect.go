package translate

import "strings"

var (
	spanishWords = wordSet("el", "la", "de", "que", "y", "en", "un", "es", "se",
		"no", "te", "lo", "le", "da", "su", "por", "son", "con", "para", "al",
		"del", "los", "las")
	frenchWords = wordSet("le", "la", "de", "et", "à", "un", "une", "est", "que",
		"pour", "dans", "ce", "il", "sur", "avec", "ne", "se", "pas", "tout",
		"mais", "son", "ses")
	germanWords = wordSet("der", "die", "das", "und", "in", "den", "von", "zu",
		"dem", "mit", "sich", "des", "auf", "für", "ist", "im", "an", "als",
		"auch", "eine", "ein", "nach", "wie", "oder", "aber", "vor", "aus",
		"bei", "nur", "durch", "um", "am", "zur", "noch", "mehr", "wenn",
		"über", "so", "sie", "kann", "alle", "wird", "sind", "hat", "haben")
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// DetectLanguage guesses the language of text with cheap heuristics: a
// Devanagari codepoint means Hindi, otherwise common-word lookups decide
// between Spanish, French, and German. Everything else is treated as English.
func DetectLanguage(text string) string {
	if len(strings.TrimSpace(text)) < 3 {
		return "en"
	}

	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return "hi"
		}
	}

	words := strings.Fields(strings.ToLower(text))
	for _, candidate := range []struct {
		code string
		set  map[string]struct{}
	}{
		{"es", spanishWords},
		{"fr", frenchWords},
		{"de", germanWords},
	} {
		for _, w := range words {
			if _, ok := candidate.set[strings.Trim(w, ".,!?¿¡;:'\"()")]; ok {
				return candidate.code
			}
		}
	}

	return "en"
}
