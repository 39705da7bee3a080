package claudeService

import "strings"

// Cheap keyword heuristics. These only nudge the prompt; getting them
// wrong costs a slightly off tone, nothing more.

var negativeWords = []string{
	"broken", "useless", "terrible", "awful", "frustrat", "angry",
	"refund", "cancel", "worst", "hate", "scam", "garbage", "wtf",
	"not working", "doesn't work", "doesnt work",
}

var positiveWords = []string{
	"love", "great", "awesome", "amazing", "thanks", "thank you",
	"perfect", "excellent", "works great",
}

// DetectSentiment classifies a message as "negative", "positive", or
// "neutral" by keyword count.
func DetectSentiment(text string) string {
	t := strings.ToLower(text)

	neg, pos := 0, 0
	for _, w := range negativeWords {
		if strings.Contains(t, w) {
			neg++
		}
	}
	for _, w := range positiveWords {
		if strings.Contains(t, w) {
			pos++
		}
	}

	switch {
	case neg > pos:
		return "negative"
	case pos > neg:
		return "positive"
	default:
		return "neutral"
	}
}

var languageMarkers = map[string][]string{
	"spanish":    {"¿", "cómo", "qué", "gracias", "hola", "por favor", "ayuda", "necesito"},
	"french":     {"bonjour", "merci", "comment", "pourquoi", "j'ai", "s'il vous"},
	"german":     {"danke", "warum", "wie kann", "ich habe", "funktioniert nicht", "hallo"},
	"portuguese": {"obrigado", "obrigada", "como faço", "não funciona", "olá", "preciso"},
}

// DetectLanguage guesses the message language from marker words and
// defaults to English. The guess only steers the reply language.
func DetectLanguage(text string) string {
	t := strings.ToLower(text)
	bestLang := "english"
	bestHits := 0
	for lang, markers := range languageMarkers {
		hits := 0
		for _, m := range markers {
			if strings.Contains(t, m) {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			bestLang = lang
		}
	}
	return bestLang
}
