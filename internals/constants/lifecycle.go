package constants

// Post lifecycle. PENDING is the only state a moderator may act on;
// APPROVED and REJECTED are terminal.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

/* ==========================
   Reputation deltas
   ==========================
   Question upvote +5, answer upvote +10, any downvote -2,
   accepted answer +15. Fixed figures, applied by the vote and
   accept paths.
*/
const (
	RepQuestionUpvote = 5
	RepAnswerUpvote   = 10
	RepDownvote       = -2
	RepAnswerAccepted = 15
)
