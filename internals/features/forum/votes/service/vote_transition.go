// file: internals/features/forum/votes/service/vote_transition.go
package service

import (
	"studyoverflow_backend/internals/constants"
)

type TargetKind string

const (
	TargetQuestion TargetKind = "question"
	TargetAnswer   TargetKind = "answer"
)

type VoteAction int

const (
	VoteCreated VoteAction = iota // no prior vote → insert
	VoteRemoved                   // same value again → toggle off
	VoteFlipped                   // opposite value → update in place
)

// grantFor is the reputation granted to the target's author when a vote of
// the given value sits on the ledger: question upvote +5, answer upvote
// +10, any downvote -2.
func grantFor(kind TargetKind, value int) int {
	if value == 1 {
		if kind == TargetQuestion {
			return constants.RepQuestionUpvote
		}
		return constants.RepAnswerUpvote
	}
	return constants.RepDownvote
}

// Transition resolves the three-way branch over {no-vote, same-vote,
// opposite-vote} and returns the action plus the reputation delta for the
// target's author:
//
//	no existing vote  → VoteCreated, +grant(new)
//	same value again  → VoteRemoved, -grant(old)
//	opposite value    → VoteFlipped, grant(new) - grant(old)
//
// e.g. flipping -1 → +1 on an answer yields +12 (undo the -2, apply +10).
func Transition(kind TargetKind, existing *int, value int) (VoteAction, int) {
	if existing == nil {
		return VoteCreated, grantFor(kind, value)
	}
	if *existing == value {
		return VoteRemoved, -grantFor(kind, *existing)
	}
	return VoteFlipped, grantFor(kind, value) - grantFor(kind, *existing)
}
