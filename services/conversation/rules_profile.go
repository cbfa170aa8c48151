package conversation

import (
	"regexp"
	"strings"
)

type keywordGroup struct {
	label string
	re    *regexp.Regexp
}

func group(label string, words ...string) keywordGroup {
	return keywordGroup{label: label, re: regexp.MustCompile(`(?i)\b(?:` + strings.Join(words, "|") + `)\b`)}
}

// Activity categories, all of which may match.
var activityGroups = []keywordGroup{
	group("skiing", "ski", "skis", "skiing", "snowboard", "snowboarding", "slopes"),
	group("diving", "dive", "dives", "diving", "scuba", "snorkel", "snorkeling", "snorkelling"),
	group("hiking", "hike", "hikes", "hiking", "trek", "trekking", "climbing", "mountaineering", "safari"),
	group("scooter", "scooter", "moped", "motorbike", "motorcycle", "quad bike"),
	group("adventure", "adventure sports?", "bungee", "skydiving", "paragliding", "rafting", "extreme sports?", "zip-?lining"),
}

// Medical condition categories, all of which may match.
var medicalGroups = []keywordGroup{
	group("diabetes", "diabetes", "diabetic", "insulin"),
	group("asthma", "asthma", "asthmatic", "inhaler"),
	group("heart condition", "heart condition", "heart disease", "heart problems?", "cardiac", "heart attack", "pacemaker"),
	group("surgery", "surgery", "operation", "surgical"),
}

// Trip styles; the first matching group wins.
var styleGroups = []keywordGroup{
	group("relax", "relax", "relaxing", "relaxation", "beach", "resort", "spa", "chill"),
	group("romantic", "romantic", "romance", "honeymoon", "couple", "anniversary"),
	group("business", "business", "work", "conference", "meeting", "client"),
	group("adventure", "adventure", "adventurous", "outdoor", "outdoors", "extreme", "backpacking"),
}

func matchAll(groups []keywordGroup, msg string) []string {
	var labels []string
	for _, g := range groups {
		if g.re.MatchString(msg) {
			labels = append(labels, g.label)
		}
	}
	return labels
}

func extractActivities(x *extraction) {
	if len(x.known.Activities) > 0 {
		return
	}
	x.out.Activities = matchAll(activityGroups, x.msg)
}

func extractMedical(x *extraction) {
	if x.known.MedicalConditions != "" || len(x.known.MedicalConditionsList) > 0 {
		return
	}
	found := matchAll(medicalGroups, x.msg)
	if len(found) == 0 {
		return
	}
	x.out.MedicalConditionsList = found
	x.out.MedicalConditions = strings.Join(found, ", ")
}

func extractTripStyle(x *extraction) {
	if x.known.TripStyle != "" {
		return
	}
	for _, g := range styleGroups {
		if g.re.MatchString(x.msg) {
			x.out.TripStyle = g.label
			return
		}
	}
}
