package conversation

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	namePhraseRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bmy name is\s+(.+)`),
		regexp.MustCompile(`(?i)\bname\s*[:=]\s*(.+)`),
		regexp.MustCompile(`(?i)\b(?:this is|call me)\s+(.+)`),
	}
	// "I am" introduces a name only when followed by a capitalised word or a
	// one-word reply; see introducesName.
	introRe           = regexp.MustCompile(`(?i)\b(?:i am|i'm|im)\s+(.+)`)
	capitalisedNameRe = regexp.MustCompile(`^([A-Z][a-z'\-]+(?:\s+[A-Z][a-z'\-]+)?)[.!]?$`)
	monthWordRe       = regexp.MustCompile(`(?i)^` + monthPattern + `$`)

	ageRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:i am|i'm|im)\s+(\d{1,3})\b`),
		regexp.MustCompile(`(?i)\bage(?:d|\s+is|\s*[:=])?\s*(\d{1,3})\b`),
		regexp.MustCompile(`(?i)\bi turn(?:ed)?\s+(\d{1,3})\b`),
	}
	bareNumberRe = regexp.MustCompile(`^(\d{1,3})[.!]?$`)
)

func extractName(x *extraction) {
	if x.known.Name != "" {
		return
	}
	for _, re := range namePhraseRes {
		if m := re.FindStringSubmatch(x.msg); m != nil {
			if name, ok := nameFrom(m[1]); ok {
				x.claimName(name)
				return
			}
		}
	}
	if m := introRe.FindStringSubmatch(x.msg); m != nil && introducesName(m[1]) {
		if name, ok := nameFrom(m[1]); ok {
			x.claimName(name)
			return
		}
	}
	if strings.Contains(x.msg, "\n") {
		return
	}
	if m := capitalisedNameRe.FindStringSubmatch(x.msg); m != nil {
		if name, ok := bareName(m[1]); ok {
			x.claimName(name)
			return
		}
	}
	if name, ok := bareName(strings.TrimRight(x.msg, ".!")); ok {
		x.claimName(name)
	}
}

func (x *extraction) claimName(name string) {
	x.out.Name = name
	x.nameClaimed = true
}

// nameFrom reads a name from the text following an introduction phrase: one
// word, plus a second when it is capitalised.
func nameFrom(rest string) (string, bool) {
	words := strings.Fields(rest)
	if len(words) == 0 {
		return "", false
	}
	first := strings.Trim(words[0], ",.!?;:")
	if !nameWord(first) {
		return "", false
	}
	name := first
	if len(words) > 1 && !strings.ContainsAny(words[0], ",.!?;:") {
		second := strings.Trim(words[1], ",.!?;:")
		if startsUpper(second) && nameWord(second) {
			name += " " + second
		}
	}
	return titleCaser.String(strings.ToLower(name)), true
}

func introducesName(rest string) bool {
	words := strings.Fields(rest)
	if len(words) == 0 {
		return false
	}
	first := strings.ToLower(strings.Trim(words[0], ",.!?;:"))
	if len(first) > 4 && strings.HasSuffix(first, "ing") {
		return false
	}
	return len(words) == 1 || startsUpper(words[0])
}

// bareName accepts a whole message of at most two alphabetic words.
func bareName(msg string) (string, bool) {
	words := strings.Fields(msg)
	if len(words) == 0 || len(words) > 2 {
		return "", false
	}
	for _, w := range words {
		if !nameWord(w) {
			return "", false
		}
	}
	if isPlace(msg) {
		return "", false
	}
	return titleCaser.String(strings.ToLower(strings.Join(words, " "))), true
}

func nameWord(w string) bool {
	if len(w) < 2 || !isAlphaWord(w) {
		return false
	}
	if len(w) == 2 && strings.ToUpper(w) == w {
		return false
	}
	lower := strings.ToLower(w)
	return !notNames[lower] && !places[lower] && !monthWordRe.MatchString(lower)
}

func extractAge(x *extraction) {
	if x.known.Age != 0 {
		return
	}
	for _, re := range ageRes {
		if m := re.FindStringSubmatch(x.msg); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && validAge(n) {
				x.out.Age = n
				return
			}
		}
	}
	if m := bareNumberRe.FindStringSubmatch(x.msg); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && validAge(n) {
			x.out.Age = n
			x.ageClaimed = true
		}
	}
}

func validAge(n int) bool {
	return n >= 1 && n <= 120
}
