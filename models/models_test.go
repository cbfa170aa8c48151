package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceToIsForwardOnly(t *testing.T) {
	s := NewSession("s1", time.Now())

	require.NoError(t, s.AdvanceTo(StepPersonaClassification))
	require.NoError(t, s.AdvanceTo(StepBindCheck))
	assert.Equal(t, StepBindCheck, s.Step)

	for _, bad := range []Step{StepBindCheck, StepAddOns, StepTripIntake, Step("bogus")} {
		err := s.AdvanceTo(bad)
		assert.True(t, errors.Is(err, ErrInvalidTransition), "moving to %s", bad)
	}
	assert.Equal(t, StepBindCheck, s.Step)
}

func TestStepNext(t *testing.T) {
	assert.Equal(t, StepPersonaClassification, StepTripIntake.Next())
	assert.Equal(t, StepPostPurchase, StepPostPurchase.Next())
	assert.Len(t, Steps(), 8)
}

func TestMergeNeverOverwrites(t *testing.T) {
	trip := TripData{Destination: "Japan", Age: 30}
	filled := trip.Merge(TripData{Destination: "France", Age: 41, Name: "Ada", Activities: []string{"skiing"}})

	assert.Equal(t, "Japan", trip.Destination)
	assert.Equal(t, 30, trip.Age)
	assert.Equal(t, "Ada", trip.Name)
	assert.ElementsMatch(t, []string{"name", "activities"}, filled)
}

func TestMergeCopiesSlices(t *testing.T) {
	src := TripData{TravellerAges: []int{30, 8}}
	var trip TripData
	trip.Merge(src)
	src.TravellerAges[0] = 99

	assert.Equal(t, []int{30, 8}, trip.TravellerAges)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, TripData{}.IsEmpty())
	assert.True(t, TripData{Activities: []string{}}.IsEmpty())
	assert.False(t, TripData{Age: 1}.IsEmpty())
}

func TestCloneIsDeep(t *testing.T) {
	s := NewSession("s1", time.Now())
	s.TripData.Activities = []string{"diving"}
	s.AppendTurn(RoleUser, "hi", time.Now())
	s.Quote = &Quote{Lines: []QuoteLine{{}}}

	c := s.Clone()
	c.TripData.Activities[0] = "hiking"
	c.ConversationHistory[0].Content = "changed"
	c.Quote.Total = 10

	assert.Equal(t, "diving", s.TripData.Activities[0])
	assert.Equal(t, "hi", s.ConversationHistory[0].Content)
	assert.Zero(t, s.Quote.Total)
}

func TestPendingQuestion(t *testing.T) {
	assert.False(t, PendingQuestion{}.Exists())
	assert.True(t, AwaitingQuestion().IsAwaiting())
	assert.True(t, CapturedQuestion("is skiing covered?").IsCaptured())
	assert.False(t, CapturedQuestion("").IsCaptured())
}
