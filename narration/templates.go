package narration

import "fmt"

// templateSet carries one sentence pattern per element kind. Title, heading,
// and paragraph patterns take the element text; bullet and numbered patterns
// take the 1-based ordinal first.
type templateSet struct {
	Title     string
	Heading   string
	Bullet    string
	Numbered  string
	Paragraph string
}

const (
	ToneFormal   = "formal"
	ToneFriendly = "friendly"
	ToneAcademic = "academic"
	ToneHumorous = "humorous"
)

// templates is keyed by language then tone. Languages missing here render
// with defaultLanguage and go through the translator afterwards.
var templates = map[string]map[string]templateSet{
	"en": {
		ToneFormal: {
			Title:     "This slide is titled %s.",
			Heading:   "The section %s follows.",
			Bullet:    "Point %d: %s.",
			Numbered:  "Step %d: %s.",
			Paragraph: "%s",
		},
		ToneFriendly: {
			Title:     "Let's take a look at %s!",
			Heading:   "Next up: %s.",
			Bullet:    "Here's point %d: %s.",
			Numbered:  "Step %d is %s.",
			Paragraph: "%s",
		},
		ToneAcademic: {
			Title:     "This slide presents %s.",
			Heading:   "We now examine %s.",
			Bullet:    "Observation %d: %s.",
			Numbered:  "Procedure step %d: %s.",
			Paragraph: "It should be noted that %s",
		},
		ToneHumorous: {
			Title:     "Brace yourselves, this one is called %s!",
			Heading:   "And now, the thrilling part: %s.",
			Bullet:    "Point %d: %s. Impressive, right?",
			Numbered:  "Step %d: %s. Easy enough!",
			Paragraph: "%s No, really.",
		},
	},
	"hi": {
		ToneFormal: {
			Title:     "इस स्लाइड का शीर्षक %s है।",
			Heading:   "अगला खंड %s है।",
			Bullet:    "बिंदु %d: %s।",
			Numbered:  "चरण %d: %s।",
			Paragraph: "%s",
		},
		ToneFriendly: {
			Title:     "चलिए %s देखते हैं!",
			Heading:   "अब आता है: %s।",
			Bullet:    "यह रहा बिंदु %d: %s।",
			Numbered:  "चरण %d है %s।",
			Paragraph: "%s",
		},
		ToneAcademic: {
			Title:     "यह स्लाइड %s प्रस्तुत करती है।",
			Heading:   "अब हम %s की जांच करते हैं।",
			Bullet:    "अवलोकन %d: %s।",
			Numbered:  "प्रक्रिया चरण %d: %s।",
			Paragraph: "ध्यान दें कि %s",
		},
		ToneHumorous: {
			Title:     "तैयार हो जाइए, इसका नाम है %s!",
			Heading:   "और अब रोमांचक हिस्सा: %s।",
			Bullet:    "बिंदु %d: %s। प्रभावशाली, है ना?",
			Numbered:  "चरण %d: %s। आसान है!",
			Paragraph: "%s सच में।",
		},
	},
	"es": {
		ToneFormal: {
			Title:     "Esta diapositiva se titula %s.",
			Heading:   "A continuación, la sección %s.",
			Bullet:    "Punto %d: %s.",
			Numbered:  "Paso %d: %s.",
			Paragraph: "%s",
		},
		ToneFriendly: {
			Title:     "¡Veamos %s!",
			Heading:   "Lo siguiente: %s.",
			Bullet:    "Aquí va el punto %d: %s.",
			Numbered:  "El paso %d es %s.",
			Paragraph: "%s",
		},
		ToneAcademic: {
			Title:     "Esta diapositiva presenta %s.",
			Heading:   "Examinamos ahora %s.",
			Bullet:    "Observación %d: %s.",
			Numbered:  "Paso del procedimiento %d: %s.",
			Paragraph: "Cabe señalar que %s",
		},
		ToneHumorous: {
			Title:     "¡Prepárense, esta se llama %s!",
			Heading:   "Y ahora, la parte emocionante: %s.",
			Bullet:    "Punto %d: %s. Impresionante, ¿verdad?",
			Numbered:  "Paso %d: %s. ¡Muy fácil!",
			Paragraph: "%s En serio.",
		},
	},
	"fr": {
		ToneFormal: {
			Title:     "Cette diapositive s'intitule %s.",
			Heading:   "Vient ensuite la section %s.",
			Bullet:    "Point %d : %s.",
			Numbered:  "Étape %d : %s.",
			Paragraph: "%s",
		},
		ToneFriendly: {
			Title:     "Regardons %s !",
			Heading:   "À suivre : %s.",
			Bullet:    "Voici le point %d : %s.",
			Numbered:  "L'étape %d est %s.",
			Paragraph: "%s",
		},
		ToneAcademic: {
			Title:     "Cette diapositive présente %s.",
			Heading:   "Nous examinons maintenant %s.",
			Bullet:    "Observation %d : %s.",
			Numbered:  "Étape de procédure %d : %s.",
			Paragraph: "Il convient de noter que %s",
		},
		ToneHumorous: {
			Title:     "Accrochez-vous, celle-ci s'appelle %s !",
			Heading:   "Et maintenant, la partie passionnante : %s.",
			Bullet:    "Point %d : %s. Impressionnant, non ?",
			Numbered:  "Étape %d : %s. Facile !",
			Paragraph: "%s Sans blague.",
		},
	},
	"de": {
		ToneFormal: {
			Title:     "Diese Folie trägt den Titel %s.",
			Heading:   "Es folgt der Abschnitt %s.",
			Bullet:    "Punkt %d: %s.",
			Numbered:  "Schritt %d: %s.",
			Paragraph: "%s",
		},
		ToneFriendly: {
			Title:     "Schauen wir uns %s an!",
			Heading:   "Als Nächstes: %s.",
			Bullet:    "Hier ist Punkt %d: %s.",
			Numbered:  "Schritt %d ist %s.",
			Paragraph: "%s",
		},
		ToneAcademic: {
			Title:     "Diese Folie präsentiert %s.",
			Heading:   "Wir betrachten nun %s.",
			Bullet:    "Beobachtung %d: %s.",
			Numbered:  "Verfahrensschritt %d: %s.",
			Paragraph: "Es ist anzumerken, dass %s",
		},
		ToneHumorous: {
			Title:     "Festhalten, diese heißt %s!",
			Heading:   "Und nun der spannende Teil: %s.",
			Bullet:    "Punkt %d: %s. Beeindruckend, oder?",
			Numbered:  "Schritt %d: %s. Ganz einfach!",
			Paragraph: "%s Wirklich.",
		},
	},
}

const defaultLanguage = "en"

// lookupTemplates resolves the template set for a language and tone. The
// second return value reports whether the language itself is built in; an
// unknown tone falls back to formal within the same language.
func lookupTemplates(language, tone string) (templateSet, bool) {
	tones, ok := templates[language]
	if !ok {
		tones = templates[defaultLanguage]
	}
	set, toneOK := tones[tone]
	if !toneOK {
		set = tones[ToneFormal]
	}
	return set, ok
}

func renderPart(set templateSet, kind Kind, text string, ordinal int) string {
	switch kind {
	case KindTitle:
		return fmt.Sprintf(set.Title, text)
	case KindHeading:
		return fmt.Sprintf(set.Heading, text)
	case KindBullet:
		return fmt.Sprintf(set.Bullet, ordinal, text)
	case KindNumbered:
		return fmt.Sprintf(set.Numbered, ordinal, text)
	default:
		return fmt.Sprintf(set.Paragraph, text)
	}
}
