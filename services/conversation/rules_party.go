package conversation

import (
	"regexp"
	"strconv"
)

var (
	adultsRe     = regexp.MustCompile(`(?i)\b` + numberPattern + `\s+(?:adults?|grown[- ]?ups?)\b`)
	childrenRe   = regexp.MustCompile(`(?i)\b` + numberPattern + `\s+(?:child(?:ren)?|kids?|infants?|babies|baby|minors?|teens?|teenagers?)\b`)
	travellersRe = regexp.MustCompile(`(?i)\b` + numberPattern + `\s+(?:travell?ers?|people|persons?|pax|guests?|of us)\b`)
	soloRe       = regexp.MustCompile(`(?i)\b(?:just me|only me|by myself|on my own|solo|alone|travelling alone)\b`)
	partnerRe    = regexp.MustCompile(`(?i)\b(?:me and my|with my)\s+(?:wife|husband|partner|spouse|girlfriend|boyfriend|fianc[eé]e?)\b`)
	yearsOldRe   = regexp.MustCompile(`(?i)\b(\d{1,3})\s*(?:years?|yrs?)[\s-]*old\b`)
)

func extractTravellers(x *extraction) {
	if m := adultsRe.FindStringSubmatch(x.msg); m != nil {
		x.travellerPhrase = true
		if n, ok := parseCount(m[1]); ok && n > 0 && x.known.NumberOfAdults == 0 {
			x.out.NumberOfAdults = n
		}
	}
	if m := childrenRe.FindStringSubmatch(x.msg); m != nil {
		x.travellerPhrase = true
		if n, ok := parseCount(m[1]); ok && n > 0 && x.known.NumberOfChildren == 0 {
			x.out.NumberOfChildren = n
		}
	}
	if m := travellersRe.FindStringSubmatch(x.msg); m != nil {
		x.travellerPhrase = true
		if n, ok := parseCount(m[1]); ok && n > 0 && x.known.NumberOfTravellers == 0 {
			x.out.NumberOfTravellers = n
			x.fillAdults(n - x.children())
		}
	}
	if soloRe.MatchString(x.msg) {
		x.travellerPhrase = true
		if x.known.NumberOfTravellers == 0 && x.out.NumberOfTravellers == 0 {
			x.out.NumberOfTravellers = 1
		}
		x.fillAdults(1)
	}
	if partnerRe.MatchString(x.msg) {
		x.travellerPhrase = true
		x.fillAdults(2)
	}
	if x.travellerPhrase || x.ageClaimed || x.hasAdultCount() {
		return
	}

	// A bare small number answers "how many people are travelling?".
	if m := bareNumberRe.FindStringSubmatch(x.msg); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 && n <= 10 {
			x.out.NumberOfAdults = n
		}
	}
}

func (x *extraction) children() int {
	if x.known.NumberOfChildren > 0 {
		return x.known.NumberOfChildren
	}
	return x.out.NumberOfChildren
}

func (x *extraction) fillAdults(n int) {
	if n > 0 && x.known.NumberOfAdults == 0 && x.out.NumberOfAdults == 0 {
		x.out.NumberOfAdults = n
	}
}

func extractTravellerAges(x *extraction) {
	if len(x.known.TravellerAges) > 0 {
		return
	}
	for _, m := range yearsOldRe.FindAllStringSubmatch(x.msg, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && validAge(n) {
			x.out.TravellerAges = append(x.out.TravellerAges, n)
		}
	}
}
