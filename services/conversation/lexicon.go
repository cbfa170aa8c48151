package conversation

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// notNames are words that show up as short replies and must never be taken as
// a person's name or a bare place.
var notNames = toSet(
	"hi", "hello", "hey", "hiya", "yo", "thanks", "thank", "you", "cheers", "ok", "okay",
	"yes", "yeah", "yep", "no", "nope", "nah", "sure", "fine", "good", "great", "cool",
	"perfect", "right", "correct", "sounds", "looks", "done", "paid", "continue", "next",
	"none", "nothing", "skip", "add", "help", "please", "maybe", "today", "tomorrow",
	"tonight", "going", "travelling", "traveling", "flying", "leaving", "visiting",
	"heading", "coming", "returning", "back", "trip", "travel", "holiday", "vacation",
	"round", "single", "return", "one", "way", "just", "me", "alone", "solo", "myself",
	"the", "a", "an", "and", "or", "to", "from", "for", "with", "in", "on", "at", "of",
	"ask", "question", "what", "when", "where", "why", "how", "who", "which", "is", "are",
	"can", "could", "would", "will", "do", "does", "tell", "explain", "not", "sorry",
	"ski", "skiing", "diving", "hiking", "business", "work", "relax", "beach", "adult",
	"adults", "kid", "kids", "child", "children", "days", "weeks", "week", "nights",
	"basic", "essential", "standard", "comprehensive", "premium", "plan", "cover",
	"interested", "married", "retired", "here", "there", "also", "so", "well",
	"know", "be", "get", "see", "go", "buy", "book", "pay", "understand", "wondering",
	"my", "our", "your", "it", "its", "we", "they", "he", "she", "that", "this", "first",
	"very", "really", "looking", "planning", "thinking", "about", "all", "set", "ready",
	"happy", "excited", "insurance", "policy", "quote", "hmm", "um", "nice", "awesome",
	"off", "away", "out", "up", "down", "over", "currently", "actually", "still", "now",
	"new", "old", "tired", "busy", "moving", "staying", "only", "around",
)

// places are lower-case country and destination names accepted even when the
// user does not capitalise them.
var places = toSet(
	"afghanistan", "albania", "algeria", "andorra", "angola", "argentina", "armenia",
	"australia", "austria", "azerbaijan", "bahamas", "bahrain", "bangladesh", "barbados",
	"belarus", "belgium", "belize", "benin", "bhutan", "bolivia", "bosnia", "botswana",
	"brazil", "brunei", "bulgaria", "burundi", "cambodia", "cameroon", "canada",
	"chile", "china", "colombia", "congo", "costa rica", "croatia", "cuba", "cyprus",
	"czechia", "czech republic", "denmark", "djibouti", "dominican republic", "ecuador",
	"egypt", "el salvador", "eritrea", "estonia", "eswatini", "ethiopia", "fiji",
	"finland", "france", "gabon", "gambia", "georgia", "germany", "ghana", "greece",
	"grenada", "guatemala", "guinea", "guyana", "haiti", "honduras", "hungary",
	"iceland", "india", "indonesia", "iran", "iraq", "ireland", "israel", "italy",
	"jamaica", "japan", "jordan", "kazakhstan", "kenya", "kosovo", "kuwait",
	"kyrgyzstan", "laos", "latvia", "lebanon", "lesotho", "liberia", "libya",
	"liechtenstein", "lithuania", "luxembourg", "madagascar", "malawi", "malaysia",
	"maldives", "mali", "malta", "mauritius", "mexico", "moldova", "monaco", "mongolia",
	"montenegro", "morocco", "mozambique", "myanmar", "namibia", "nepal", "netherlands",
	"holland", "new zealand", "nicaragua", "niger", "nigeria", "north macedonia",
	"norway", "oman", "pakistan", "panama", "paraguay", "peru", "philippines", "poland",
	"portugal", "qatar", "romania", "russia", "rwanda", "samoa", "san marino",
	"saudi arabia", "senegal", "serbia", "seychelles", "sierra leone", "singapore",
	"slovakia", "slovenia", "somalia", "south africa", "south korea", "korea", "spain",
	"sri lanka", "sudan", "suriname", "sweden", "switzerland", "syria", "taiwan",
	"tajikistan", "tanzania", "thailand", "togo", "tonga", "tunisia", "turkey",
	"turkmenistan", "uganda", "ukraine", "united arab emirates", "uae",
	"united kingdom", "uk", "england", "scotland", "wales", "united states", "usa", "america",
	"uruguay", "uzbekistan", "vanuatu", "venezuela", "vietnam",
	"yemen", "zambia", "zimbabwe", "europe", "asia", "africa", "caribbean",
	"bali", "dubai", "paris", "london", "rome", "tokyo", "new york", "bangkok",
	"barcelona", "lisbon", "amsterdam", "berlin", "istanbul", "cancun", "hawaii",
	"zanzibar", "nairobi", "mombasa", "cape town", "sydney", "phuket", "madrid",
)

var numberWords = map[string]int{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
	"thirteen": 13, "fourteen": 14, "fifteen": 15, "twenty": 20, "thirty": 30,
}

// numberPattern matches digits or a spelled-out number from numberWords.
const numberPattern = `(\d{1,3}|a|an|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|thirteen|fourteen|fifteen|twenty|thirty)`

func toSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// parseCount reads digits or a number word.
func parseCount(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, ok := numberWords[s]; ok {
		return n, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isPlace(s string) bool {
	return places[strings.ToLower(strings.TrimSpace(s))]
}

// placeName normalises a captured place. Two-letter codes stay upper case.
func placeName(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 2 {
		return strings.ToUpper(s)
	}
	lower := strings.ToLower(s)
	switch lower {
	case "uk", "usa", "uae", "us":
		return strings.ToUpper(lower)
	}
	return titleCaser.String(lower)
}

func isAlphaWord(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '\'' || r == '-') {
			return false
		}
	}
	return true
}

func startsUpper(w string) bool {
	return w != "" && w[0] >= 'A' && w[0] <= 'Z'
}
