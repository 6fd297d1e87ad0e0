package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	English = language.English
	Hindi   = language.Hindi

	supported = []language.Tag{English, Hindi}
	matcher   = language.NewMatcher(supported)
)

// Translator looks up interface strings for one language, falling back to English.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New picks the closest supported language for the given BCP 47 tags
// (e.g. "hi-IN", "en-GB"). Unknown or empty input selects English.
func New(preferred ...string) *Translator {
	tags := make([]string, 0, len(preferred))
	for _, p := range preferred {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}

	tag := English
	if len(tags) > 0 {
		_, idx := language.MatchStrings(matcher, tags...)
		tag = supported[idx]
	}

	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

func (t *Translator) Language() language.Tag {
	return t.tag
}

// T returns the translation for key. Missing keys fall back to English, then to the key itself.
func (t *Translator) T(key string) string {
	if value, ok := catalog[t.tag][key]; ok {
		return value
	}
	if value, ok := catalog[English][key]; ok {
		return value
	}
	return key
}

// Format translates key and substitutes {name} placeholders from args.
func (t *Translator) Format(key string, args map[string]string) string {
	text := t.T(key)
	for name, value := range args {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}

// Number formats n with the digit grouping of the selected language.
func (t *Translator) Number(n int) string {
	return t.printer.Sprintf("%d", n)
}

// Stipend renders a monthly stipend, e.g. "₹5,000/month".
func (t *Translator) Stipend(amount int) string {
	return t.Format("recommendations.stipend", map[string]string{"amount": t.Number(amount)})
}
