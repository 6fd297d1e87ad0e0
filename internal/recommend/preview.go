package recommend

import "strings"

const reasonPreviewLength = 48

// reasonPreview collapses whitespace in a reason text and shortens it to at
// most limit characters for logging. A word cut in half is dropped, and a cut
// never splits a multi-byte character.
func reasonPreview(reason string, limit int) string {
	reason = strings.Join(strings.Fields(reason), " ")
	if limit <= 0 {
		return ""
	}

	runes := []rune(reason)
	if len(runes) <= limit {
		return reason
	}

	cut := string(runes[:limit])
	if runes[limit] != ' ' {
		if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
			cut = cut[:idx]
		}
	}
	return strings.TrimRight(cut, " ,.;:") + "..."
}
