package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractQuestion(t *testing.T) {
	cases := map[string]string{
		"I want to ask a question, can I get a refund?": "can I get a refund?",
		"By the way, is skiing covered":                 "is skiing covered?",
		"what about cancellations??":                    "what about cancellations?",
		"Japan. Does it cover theft?":                   "Does it cover theft?",
	}
	for msg, want := range cases {
		got, ok := extractQuestion(msg)
		if assert.True(t, ok, msg) {
			assert.Equal(t, want, got, msg)
		}
	}

	for _, msg := range []string{"I have a question", "I want to ask something", "Japan"} {
		_, ok := extractQuestion(msg)
		assert.False(t, ok, msg)
	}
}

func TestIsQuestionLike(t *testing.T) {
	assert.True(t, isQuestionLike("ok so what is covered"))
	assert.True(t, isQuestionLike("tell me about the plans"))
	assert.True(t, isQuestionLike("Japan?"))
	assert.False(t, isQuestionLike("Japan"))
	assert.False(t, isQuestionLike("2 adults"))
}

func TestAskIntent(t *testing.T) {
	assert.True(t, hasAskIntent("i have a question"))
	assert.True(t, hasAskIntent("can i ask something"))
	assert.False(t, hasAskIntent("going to spain"))
	assert.True(t, hasSoftAsk("btw is covid covered"))
}

func TestNormaliseQuestion(t *testing.T) {
	assert.Equal(t, "is it covered?", normaliseQuestion("  is it covered?!  "))
	assert.Equal(t, "", normaliseQuestion(" ?? "))
}

func TestYesNo(t *testing.T) {
	assert.True(t, isAffirmative("ok"))
	assert.True(t, isAffirmative("yes please"))
	assert.True(t, isAffirmative("sounds good"))
	assert.False(t, isAffirmative("no"))
	assert.True(t, isNegative("not now"))
	assert.False(t, isNegative("yes"))
	assert.True(t, saysPaid("done"))
	assert.False(t, saysPaid("not paid yet"))
}
