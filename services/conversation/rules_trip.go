package conversation

import (
	"regexp"
	"strings"
	"time"

	"travelsure/models"
)

const placeCapture = `([A-Za-z][A-Za-z'\-]*(?:\s+[A-Za-z][A-Za-z'\-]*){0,3})`

var (
	relativeDayRe = regexp.MustCompile(`(?i)\b(today|tomorrow)\b`)

	destinationRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:going|travell?ing|flying|heading|headed|moving)\s+to\s+` + placeCapture),
		regexp.MustCompile(`(?i)\b(?:trip|holiday|vacation|visit|travel|fly|go)\s+to\s+` + placeCapture),
		regexp.MustCompile(`(?i)\bvisiting\s+` + placeCapture),
		regexp.MustCompile(`(?i)\bto\s+` + placeCapture),
	}

	singleTripRe = regexp.MustCompile(`(?i)\b(?:single[- ]trip|one[- ]way|not returning|not coming back|no return)\b`)
	roundTripRe  = regexp.MustCompile(`(?i)\b(?:round[- ]?trip|return trip|return ticket|coming back|returning)\b`)

	numericRangeRe = regexp.MustCompile(`(?i)(` + numericDatePattern + `)\s*(?:to|until|till|through|-|–)\s*(` + numericDatePattern + `)`)
	fromToRangeRe  = regexp.MustCompile(`(?i)\bfrom\s+(.+?)\s+(?:to|until|till)\s+(.+?)(?:[,;!?]|\.\s|\.$|\s+(?:and|for|with)\b|$)`)
	namedRangeRe   = regexp.MustCompile(`(?i)(` + namedDatePattern + `)\s*(?:to|until|till|through|-|–)\s*(` + namedDatePattern + `)`)
	dateWordRe     = regexp.MustCompile(`(?i)\d|\b` + monthPattern + `\b`)
	yearRe         = regexp.MustCompile(`\d{4}|\d{1,2}[-/.]\d{1,2}[-/.]\d{2}`)
	singleDateRe   = regexp.MustCompile(`(?i)\b` + anyDatePattern)

	durationRe  = regexp.MustCompile(`(?i)\b` + numberPattern + `[\s-]*(days?|weeks?|nights?|fortnights?)\b`)
	fortnightRe = regexp.MustCompile(`(?i)\bfortnight\b`)

	departurePhraseRe = regexp.MustCompile(`(?i)\bfrom\s+` + placeCapture)
	arrivalPhraseRes  = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:arriving|arrive|landing|land)\s+(?:at|in)\s+` + placeCapture),
		regexp.MustCompile(`(?i)\bto\s+` + placeCapture),
	}
	bareCountryRe = regexp.MustCompile(`^([A-Za-z][A-Za-z'\-]*(?:\s+[A-Za-z][A-Za-z'\-]*)?)[.!]?$`)
	countryCodeRe = regexp.MustCompile(`^[A-Z]{2}$`)
)

// placeStops end a captured place name.
var placeStops = toSet(
	"on", "for", "from", "in", "at", "with", "and", "next", "this", "by", "until", "till",
	"between", "during", "around", "via", "then", "departing", "leaving", "returning",
	"coming", "but", "or", "so", "because", "tomorrow", "today", "soon", "later", "to",
	"is", "are", "was", "will", "i", "we", "my", "our", "please", "thanks",
)

func extractRelativeDate(x *extraction) {
	if x.departureDate() != "" {
		return
	}
	m := relativeDayRe.FindStringSubmatch(x.msg)
	if m == nil {
		return
	}
	day := x.now
	if strings.EqualFold(m[1], "tomorrow") {
		day = day.AddDate(0, 0, 1)
	}
	x.setDeparture(day.Format(DateLayout))
}

func extractDestination(x *extraction) {
	if x.destination() != "" || x.asksSomething() {
		return
	}
	for _, re := range destinationRes {
		for _, m := range re.FindAllStringSubmatch(x.msg, -1) {
			if place, ok := cleanPlace(m[1]); ok {
				x.out.Destination = place
				return
			}
		}
	}
}

// cleanPlace trims a captured phrase to the place name it starts with. Known
// places are accepted in any case, unknown ones only when capitalised.
func cleanPlace(captured string) (string, bool) {
	words := strings.Fields(captured)
	if len(words) > 0 && strings.EqualFold(words[0], "the") {
		words = words[1:]
	}
	for i, w := range words {
		if placeStops[strings.ToLower(w)] {
			words = words[:i]
			break
		}
	}
	if len(words) == 0 || monthWordRe.MatchString(words[0]) {
		return "", false
	}
	for n := len(words); n > 0; n-- {
		candidate := strings.Join(words[:n], " ")
		if isPlace(candidate) {
			return placeName(candidate), true
		}
	}
	if notNames[strings.ToLower(words[0])] {
		return "", false
	}
	var caps []string
	for _, w := range words {
		if !startsUpper(w) {
			break
		}
		caps = append(caps, w)
	}
	if len(caps) == 0 {
		return "", false
	}
	return placeName(strings.Join(caps, " ")), true
}

func extractTripType(x *extraction) {
	if x.known.TripType != "" {
		return
	}
	switch {
	case singleTripRe.MatchString(x.msg):
		x.out.TripType = models.TripTypeSingle
	case roundTripRe.MatchString(x.msg):
		x.out.TripType = models.TripTypeRound
	}
}

func extractDateRange(x *extraction) {
	if x.departureDate() != "" && x.returnDate() != "" {
		return
	}
	var start, end string
	if m := numericRangeRe.FindStringSubmatch(x.msg); m != nil {
		start, end = m[1], m[2]
	} else if m := fromToRangeRe.FindStringSubmatch(x.msg); m != nil && dateWordRe.MatchString(m[1]) && dateWordRe.MatchString(m[2]) {
		start, end = m[1], m[2]
	} else if m := namedRangeRe.FindStringSubmatch(x.msg); m != nil {
		start, end = m[1], m[2]
	} else {
		return
	}

	from := rangeSide(start, x.now)
	to := rangeSide(end, x.now)
	// "28 Dec to 4 Jan" without years crosses into the next year.
	if !yearRe.MatchString(end) && to < from {
		if bumped, ok := addYear(to); ok {
			to = bumped
		}
	}

	x.rangeMatched = true
	if x.departureDate() == "" {
		x.setDeparture(from)
	}
	if x.returnDate() == "" {
		x.setReturn(to)
	}
}

// rangeSide normalises one side of a range. A side carrying extra words
// ("Kenya on 15 March") is reduced to the date token it contains.
func rangeSide(side string, now time.Time) string {
	if d, ok := NormalizeDate(side, now); ok {
		return d
	}
	if token := singleDateRe.FindString(side); token != "" {
		return normalizeOrRaw(token, now)
	}
	return strings.TrimSpace(side)
}

func addYear(date string) (string, bool) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", false
	}
	return t.AddDate(1, 0, 0).Format(DateLayout), true
}

func extractSingleDate(x *extraction) {
	if x.rangeMatched {
		return
	}
	for _, token := range singleDateRe.FindAllString(x.msg, 2) {
		date := normalizeOrRaw(token, x.now)
		switch {
		case x.departureDate() == "":
			x.setDeparture(date)
		case x.returnDate() == "" && date != x.departureDate():
			x.setReturn(date)
		}
	}
}

func extractDuration(x *extraction) {
	if x.returnDate() != "" || x.known.TripDuration != 0 {
		return
	}
	days := 0
	if m := durationRe.FindStringSubmatch(x.msg); m != nil {
		n, ok := parseCount(m[1])
		if !ok {
			return
		}
		unit := strings.ToLower(m[2])
		switch {
		case strings.HasPrefix(unit, "week"):
			days = n * 7
		case strings.HasPrefix(unit, "fortnight"):
			days = n * 14
		default:
			days = n
		}
	} else if fortnightRe.MatchString(x.msg) {
		days = 14
	}
	if days < 1 || days > 365 {
		return
	}

	x.out.TripDuration = days
	if dep := x.departureDate(); dep != "" {
		if ret, ok := AddDays(dep, days); ok {
			x.setReturn(ret)
		}
	}
}

func extractCountries(x *extraction) {
	if x.asksSomething() {
		return
	}
	if x.departureCountry() == "" {
		for _, m := range departurePhraseRe.FindAllStringSubmatch(x.msg, -1) {
			if place, ok := cleanPlace(m[1]); ok {
				x.out.DepartureCountry = place
				x.countryPhrase = true
				break
			}
		}
	}
	if x.known.ArrivalCountry == "" && x.known.Destination == "" {
	arrival:
		for _, re := range arrivalPhraseRes {
			for _, m := range re.FindAllStringSubmatch(x.msg, -1) {
				if place, ok := cleanPlace(m[1]); ok {
					x.out.ArrivalCountry = place
					x.countryPhrase = true
					break arrival
				}
			}
		}
	}
	if x.countryPhrase || x.out.Destination != "" || x.nameClaimed {
		return
	}

	place, ok := bareCountry(x.msg)
	if !ok {
		return
	}
	switch {
	case x.departureCountry() == "":
		x.out.DepartureCountry = place
	case x.destination() == "":
		x.out.ArrivalCountry = place
	}
}

// bareCountry accepts a message that is only a place: a two-letter code, a
// known place, or one or two capitalised words.
func bareCountry(msg string) (string, bool) {
	if countryCodeRe.MatchString(msg) && !notNames[strings.ToLower(msg)] {
		return msg, true
	}
	m := bareCountryRe.FindStringSubmatch(msg)
	if m == nil {
		return "", false
	}
	if isPlace(m[1]) {
		return placeName(m[1]), true
	}
	for _, w := range strings.Fields(m[1]) {
		if !startsUpper(w) || notNames[strings.ToLower(w)] || monthWordRe.MatchString(w) {
			return "", false
		}
	}
	return placeName(m[1]), true
}
