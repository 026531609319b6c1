package domain

import "time"

// Notice is an announcement published on the association board.
// Notices may optionally be opened for member voting.
type Notice struct {
	ID            int64
	Title         string
	Body          string
	AuthorID      int64
	OpenForVoting bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// VoteChoice is a member's position on a notice open for voting.
type VoteChoice string

const (
	VoteFor     VoteChoice = "A Favor"
	VoteAgainst VoteChoice = "Contra"
	VoteAbstain VoteChoice = "Abstenção"
)

// IsValid reports whether c is one of the known choices.
func (c VoteChoice) IsValid() bool {
	switch c {
	case VoteFor, VoteAgainst, VoteAbstain:
		return true
	}
	return false
}

// Vote is a single member's vote on a notice. One vote per member per
// notice; re-voting replaces the previous choice.
type Vote struct {
	NoticeID  int64
	UserID    int64
	Choice    VoteChoice
	CreatedAt time.Time
}

// VoteTally aggregates the votes on a notice.
type VoteTally struct {
	NoticeID int64
	For      int
	Against  int
	Abstain  int
}
