package conversation

import "math/rand/v2"

// Phraser picks one of several equivalent phrasings.
type Phraser interface {
	Pick(options []string) string
}

// RandomPhraser picks uniformly at random.
type RandomPhraser struct{}

func (RandomPhraser) Pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[rand.IntN(len(options))]
}

// FirstPhraser always picks the first option, which keeps replies stable in tests.
type FirstPhraser struct{}

func (FirstPhraser) Pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[0]
}

var (
	acknowledgements = []string{
		"Thanks, got that.",
		"Great, noted.",
		"Perfect, thank you.",
		"Lovely, that helps.",
	}
	nothingNewReplies = []string{
		"Sorry, I didn't quite catch that.",
		"Hmm, I couldn't pick any trip details out of that.",
		"I'm not sure I understood that one.",
	}
	// Confirmation templates take destination, dates and traveller count.
	confirmations = []string{
		"Here's what I have: a trip to %s, %s, for %s. Does that all look right?",
		"Great, so that's %s, %s, for %s. Let me know if that's correct.",
		"Thanks! To confirm: you're heading to %s, %s, with %s. Shall we continue?",
	}
	collectFirstReplies = []string{
		"Happy to help with that! I just need to collect a few trip details first, then I'll answer it.",
		"Good question, and I'll come back to it. First I need a few details about your trip.",
		"I'll answer that as soon as I have your trip details.",
	}
	awaitingQuestionReplies = []string{
		"Of course, ask away! I'll answer once I have your trip details.",
		"Sure, what would you like to know? I'll answer right after we finish your trip details.",
	}
	capturedQuestionReplies = []string{
		"Got your question, I'll answer it once your trip details are complete.",
		"Noted, I'll come back to that question shortly.",
	}
)
