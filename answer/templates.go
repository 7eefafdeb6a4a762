package answer

// Category buckets a question by its interrogative intent.
type Category string

const (
	CategoryWhat    Category = "what"
	CategoryHow     Category = "how"
	CategoryWhy     Category = "why"
	CategoryExplain Category = "explain"
	CategoryGeneral Category = "general"
)

// categoryOrder fixes the match precedence; the first category with a
// keyword hit wins.
var categoryOrder = []Category{CategoryWhat, CategoryHow, CategoryWhy, CategoryExplain}

// questionKeywords is keyed by language then category. Matching is
// case-insensitive substring matching, same as the detection heuristics.
var questionKeywords = map[string]map[Category][]string{
	"en": {
		CategoryWhat:    {"what", "when", "where", "which"},
		CategoryHow:     {"how"},
		CategoryWhy:     {"why"},
		CategoryExplain: {"explain", "describe", "tell me about"},
	},
	"hi": {
		CategoryWhat:    {"क्या", "कब", "कहाँ"},
		CategoryHow:     {"कैसे"},
		CategoryWhy:     {"क्यों"},
		CategoryExplain: {"समझाएं", "समझाओ", "वर्णन"},
	},
	"es": {
		CategoryWhat:    {"qué", "que", "cuándo", "dónde", "cuál"},
		CategoryHow:     {"cómo", "como"},
		CategoryWhy:     {"por qué", "porqué"},
		CategoryExplain: {"explica", "explicar", "describe"},
	},
	"fr": {
		CategoryWhat:    {"quoi", "quel", "quelle", "quand", "où"},
		CategoryHow:     {"comment"},
		CategoryWhy:     {"pourquoi"},
		CategoryExplain: {"explique", "expliquer", "décris"},
	},
	"de": {
		CategoryWhat:    {"was", "wann", "wo", "welche"},
		CategoryHow:     {"wie"},
		CategoryWhy:     {"warum", "wieso"},
		CategoryExplain: {"erkläre", "erklären", "beschreibe"},
	},
}

// answerTemplates is keyed by language then category; each template takes
// the slide title and the retrieved context text.
var answerTemplates = map[string]map[Category]string{
	"en": {
		CategoryWhat:    "Based on slide '%s': %s",
		CategoryHow:     "Slide '%s' outlines the approach: %s",
		CategoryWhy:     "The reasoning on slide '%s': %s",
		CategoryExplain: "This slide '%s' explains:\n%s",
		CategoryGeneral: "From slide '%s':\n%s",
	},
	"hi": {
		CategoryWhat:    "स्लाइड '%s' के अनुसार: %s",
		CategoryHow:     "स्लाइड '%s' में तरीका बताया गया है: %s",
		CategoryWhy:     "स्लाइड '%s' में कारण दिया गया है: %s",
		CategoryExplain: "यह स्लाइड '%s' में विस्तार से समझाया गया है:\n%s",
		CategoryGeneral: "आपके प्रश्न के लिए स्लाइड '%s' से जानकारी:\n%s",
	},
	"es": {
		CategoryWhat:    "Según la diapositiva '%s': %s",
		CategoryHow:     "La diapositiva '%s' describe el método: %s",
		CategoryWhy:     "El razonamiento de la diapositiva '%s': %s",
		CategoryExplain: "Esta diapositiva '%s' explica:\n%s",
		CategoryGeneral: "De la diapositiva '%s':\n%s",
	},
	"fr": {
		CategoryWhat:    "D'après la diapositive '%s' : %s",
		CategoryHow:     "La diapositive '%s' décrit la méthode : %s",
		CategoryWhy:     "Le raisonnement de la diapositive '%s' : %s",
		CategoryExplain: "Cette diapositive '%s' explique :\n%s",
		CategoryGeneral: "De la diapositive '%s' :\n%s",
	},
	"de": {
		CategoryWhat:    "Laut Folie '%s': %s",
		CategoryHow:     "Folie '%s' beschreibt das Vorgehen: %s",
		CategoryWhy:     "Die Begründung auf Folie '%s': %s",
		CategoryExplain: "Diese Folie '%s' erklärt:\n%s",
		CategoryGeneral: "Von Folie '%s':\n%s",
	},
}

// fallbackTemplates answer directly from slide content when retrieval or
// translation breaks down.
var fallbackTemplates = map[string]string{
	"en": "About '%s': %s",
	"hi": "'%s' के बारे में: %s",
	"es": "Sobre '%s': %s",
	"fr": "À propos de '%s' : %s",
	"de": "Über '%s': %s",
}

// untitledSlide replaces an empty slide title in answers.
var untitledSlide = map[string]string{
	"en": "this slide",
	"hi": "यह स्लाइड",
	"es": "esta diapositiva",
	"fr": "cette diapositive",
	"de": "diese Folie",
}
