package claudeService

import "testing"

func TestDetectSentiment(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"this is broken and useless, I want a refund", "negative"},
		{"love it, works great, thanks!", "positive"},
		{"how do I configure the CLI", "neutral"},
		{"it's broken but I still love the product, great work", "positive"},
	}

	for _, tt := range tests {
		if got := DetectSentiment(tt.text); got != tt.expected {
			t.Errorf("DetectSentiment(%q) = %q, expected %q", tt.text, got, tt.expected)
		}
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"how do I install this?", "english"},
		{"hola, ¿cómo puedo instalar esto? gracias", "spanish"},
		{"bonjour, comment installer? merci", "french"},
		{"hallo, warum funktioniert nicht? danke", "german"},
	}

	for _, tt := range tests {
		if got := DetectLanguage(tt.text); got != tt.expected {
			t.Errorf("DetectLanguage(%q) = %q, expected %q", tt.text, got, tt.expected)
		}
	}
}
