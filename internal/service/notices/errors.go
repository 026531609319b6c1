package notices

import "errors"

var (
	// ErrNoticeNotFound is returned when the notice does not exist.
	ErrNoticeNotFound = errors.New("notices.service: notice not found")

	// ErrVotingClosed is returned when voting on a notice that is not
	// open for voting.
	ErrVotingClosed = errors.New("notices.service: notice is not open for voting")

	// ErrVoterNotActive is returned when a non-active member tries to vote.
	ErrVoterNotActive = errors.New("notices.service: voter membership is not active")

	// ErrInvalidInput is returned on validation failures.
	ErrInvalidInput = errors.New("notices.service: invalid input")

	// ErrInternal is returned on repository failures.
	ErrInternal = errors.New("notices.service: internal error")
)
