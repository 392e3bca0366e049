// file: internals/features/forum/votes/dto/vote_dto.go
package dto

type CastVoteRequest struct {
	Value int `json:"value" validate:"required,oneof=1 -1"`
}

type VoteResponse struct {
	NewScore int  `json:"new_score"`
	MyVote   *int `json:"my_vote"` // nil after a toggle-off
}
