package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestTransition_FirstVote(t *testing.T) {
	action, delta := Transition(TargetQuestion, nil, 1)
	assert.Equal(t, VoteCreated, action)
	assert.Equal(t, 5, delta)

	action, delta = Transition(TargetAnswer, nil, 1)
	assert.Equal(t, VoteCreated, action)
	assert.Equal(t, 10, delta)

	action, delta = Transition(TargetQuestion, nil, -1)
	assert.Equal(t, VoteCreated, action)
	assert.Equal(t, -2, delta)

	action, delta = Transition(TargetAnswer, nil, -1)
	assert.Equal(t, VoteCreated, action)
	assert.Equal(t, -2, delta)
}

func TestTransition_ToggleOffNegatesOriginalGrant(t *testing.T) {
	cases := []struct {
		kind  TargetKind
		value int
		want  int
	}{
		{TargetQuestion, 1, -5},
		{TargetAnswer, 1, -10},
		{TargetQuestion, -1, 2},
		{TargetAnswer, -1, 2},
	}
	for _, tc := range cases {
		_, firstDelta := Transition(tc.kind, nil, tc.value)
		action, delta := Transition(tc.kind, intPtr(tc.value), tc.value)
		assert.Equal(t, VoteRemoved, action)
		assert.Equal(t, tc.want, delta)
		// second call undoes exactly what the first granted
		assert.Equal(t, -firstDelta, delta)
	}
}

func TestTransition_FlipAppliesDifference(t *testing.T) {
	// down → up on an answer: undo -2, apply +10
	action, delta := Transition(TargetAnswer, intPtr(-1), 1)
	assert.Equal(t, VoteFlipped, action)
	assert.Equal(t, 12, delta)

	// up → down on an answer
	_, delta = Transition(TargetAnswer, intPtr(1), -1)
	assert.Equal(t, -12, delta)

	// question flips
	_, delta = Transition(TargetQuestion, intPtr(-1), 1)
	assert.Equal(t, 7, delta)
	_, delta = Transition(TargetQuestion, intPtr(1), -1)
	assert.Equal(t, -7, delta)
}

// Upvote then switch to downvote: author nets -2 relative to start while
// the ledger holds a single -1 row.
func TestTransition_UpThenDownScenario(t *testing.T) {
	_, first := Transition(TargetQuestion, nil, 1)
	_, second := Transition(TargetQuestion, intPtr(1), -1)
	assert.Equal(t, 5, first)
	assert.Equal(t, -7, second)
	assert.Equal(t, -2, first+second)
}
