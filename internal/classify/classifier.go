// Package classify flags party mentions and coarse sentiment in transcript
// text using keyword matching. This is a heuristic, not a model: matching is
// case-insensitive substring search, so short keywords can collide with
// unrelated words. That trade-off is accepted.
package classify

import (
	"strings"

	"github.com/praja-pulse/campaign-backend/internal/shared"
)

// Keyword sets span Latin, Telugu, and Devanagari scripts so that matches
// survive whichever language the speech recognizer settled on.
var (
	ysrcpKeywords = []string{
		"ysrcp", "ycp", "jagan", "jagananna",
		"వైసీపీ", "వైఎస్సార్", "జగన్", "జగనన్న",
		"वाईएसआरसीपी", "जगन",
	}

	tdpKeywords = []string{
		"tdp", "telugu desam", "chandrababu", "babu", "lokesh",
		"టీడీపీ", "తెలుగుదేశం", "చంద్రబాబు", "బాబు", "లోకేష్",
		"तेदेपा", "चंद्रबाबू", "नायडू",
	}

	positiveKeywords = []string{
		"win", "won", "victory", "develop", "welfare", "good", "great", "support",
		"గెలుపు", "విజయం", "అభివృద్ధి", "సంక్షేమం", "మంచి",
		"जीत", "विकास", "अच्छा", "समर्थन",
	}

	negativeKeywords = []string{
		"lose", "lost", "fail", "scam", "corrupt", "attack", "protest", "bad",
		"ఓటమి", "కుంభకోణం", "అవినీతి", "దాడి", "చెడు",
		"हार", "घोटाला", "भ्रष्टाचार", "बुरा",
	}
)

type Classification struct {
	MentionsYSRCP bool             `json:"mentions_ysrcp"`
	MentionsTDP   bool             `json:"mentions_tdp"`
	Sentiment     shared.Sentiment `json:"sentiment"`
}

// Classify is a pure function over the input text.
func Classify(text string) Classification {
	lower := strings.ToLower(text)

	positive := countMatches(lower, positiveKeywords)
	negative := countMatches(lower, negativeKeywords)

	sentiment := shared.SentimentNeutral
	switch {
	case positive > negative:
		sentiment = shared.SentimentPositive
	case negative > positive:
		sentiment = shared.SentimentNegative
	}

	return Classification{
		MentionsYSRCP: matchesAny(lower, ysrcpKeywords),
		MentionsTDP:   matchesAny(lower, tdpKeywords),
		Sentiment:     sentiment,
	}
}

func matchesAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func countMatches(lower string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			count++
		}
	}
	return count
}
