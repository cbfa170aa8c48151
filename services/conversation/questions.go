package conversation

import (
	"regexp"
	"strings"
)

// askIntentPhrases announce that the user wants to ask something.
var askIntentPhrases = []string{
	"want to ask", "wanted to ask", "would like to ask", "like to ask", "have a question",
	"got a question", "have a quick question", "quick question", "can i ask", "could i ask",
	"may i ask", "have a query", "ask you something", "question for you",
}

// softAskPhrases introduce a question in passing, mid-answer.
var softAskPhrases = []string{
	"by the way", "btw", "just wondering", "i was wondering", "i'm wondering",
	"out of curiosity", "also wondering",
}

var interrogatives = toSet(
	"what", "when", "where", "why", "how", "who", "which", "whose", "is", "are", "can",
	"could", "does", "do", "did", "will", "would", "should", "may", "am", "isn't", "aren't",
	"doesn't", "don't",
)

// requestPhrases read as questions even without a question mark.
var requestPhrases = []string{
	"can you", "could you", "explain", "tell me", "what about", "i'd like to know",
	"i want to know", "i would like to know", "help me understand", "is it possible",
}

var fillers = toSet("ok", "okay", "so", "and", "also", "but", "hey", "hi", "um", "well", "oh", "then")

var (
	clauseRe = regexp.MustCompile(`[^,.;:!?]+\??`)
	wordRe   = regexp.MustCompile(`[a-z']+`)
)

func hasAskIntent(lower string) bool {
	return containsAny(lower, askIntentPhrases)
}

func hasSoftAsk(lower string) bool {
	return containsAny(lower, softAskPhrases)
}

// isQuestionLike reports a question mark, an interrogative lead word or a
// request phrase.
func isQuestionLike(msg string) bool {
	if strings.Contains(msg, "?") {
		return true
	}
	lower := strings.ToLower(msg)
	return interrogatives[leadWord(lower)] || containsAny(lower, requestPhrases)
}

// extractQuestion returns the first clause that is itself a question and is not
// the announcement ("I have a question"). The result ends in a single "?".
func extractQuestion(msg string) (string, bool) {
	for _, clause := range clauseRe.FindAllString(msg, -1) {
		clause = strings.TrimSpace(clause)
		lower := strings.ToLower(clause)
		if clause == "" || hasAskIntent(lower) || hasSoftAsk(lower) && !strings.HasSuffix(clause, "?") {
			continue
		}
		if strings.HasSuffix(clause, "?") || interrogatives[leadWord(lower)] {
			return normaliseQuestion(stripSoftAsk(clause)), true
		}
	}
	return "", false
}

// normaliseQuestion trims surrounding space and punctuation and ends the text
// with exactly one question mark.
func normaliseQuestion(q string) string {
	q = strings.TrimSpace(q)
	q = strings.TrimRight(q, " ?!.,;:")
	q = strings.TrimLeft(q, " ,;:-")
	if q == "" {
		return ""
	}
	return q + "?"
}

func stripSoftAsk(clause string) string {
	lower := strings.ToLower(clause)
	for _, p := range softAskPhrases {
		if strings.HasPrefix(lower, p) {
			return strings.TrimSpace(clause[len(p):])
		}
	}
	return clause
}

// leadWord is the first word after conversational fillers.
func leadWord(lower string) string {
	for _, w := range wordRe.FindAllString(lower, 8) {
		if !fillers[w] {
			return w
		}
	}
	return ""
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
