package models

import (
	"fmt"
	"time"

	"github.com/dungeon-app/booking-service/internal/domain"
)

// CreateNoticeRequest is the service-level request to publish a notice.
type CreateNoticeRequest struct {
	AuthorID      int64
	Title         string
	Body          string
	OpenForVoting bool
}

// CastVoteRequest records a member's vote.
type CastVoteRequest struct {
	NoticeID int64
	UserID   int64
	Choice   string
}

// NoticeResponse is the service-level view of a notice.
type NoticeResponse struct {
	ID            int64
	Title         string
	Body          string
	AuthorID      int64
	OpenForVoting bool
	CreatedAt     time.Time
}

// NoticeListResponse wraps a notice listing.
type NoticeListResponse struct {
	Notices []*NoticeResponse
}

// TallyResponse is the aggregated voting result of a notice.
type TallyResponse struct {
	NoticeID int64
	For      int
	Against  int
	Abstain  int
}

// ToDomainVoteChoice validates and converts a vote choice.
func ToDomainVoteChoice(s string) (domain.VoteChoice, error) {
	choice := domain.VoteChoice(s)
	if !choice.IsValid() {
		return "", fmt.Errorf("unknown vote choice %q", s)
	}
	return choice, nil
}

// FromDomainNotice converts a domain notice.
func FromDomainNotice(n *domain.Notice) *NoticeResponse {
	return &NoticeResponse{
		ID:            n.ID,
		Title:         n.Title,
		Body:          n.Body,
		AuthorID:      n.AuthorID,
		OpenForVoting: n.OpenForVoting,
		CreatedAt:     n.CreatedAt,
	}
}

// FromDomainNoticeList converts a domain notice slice.
func FromDomainNoticeList(notices []*domain.Notice) *NoticeListResponse {
	out := &NoticeListResponse{Notices: make([]*NoticeResponse, 0, len(notices))}
	for _, n := range notices {
		out.Notices = append(out.Notices, FromDomainNotice(n))
	}
	return out
}

// FromDomainTally converts a domain tally.
func FromDomainTally(t *domain.VoteTally) *TallyResponse {
	return &TallyResponse{
		NoticeID: t.NoticeID,
		For:      t.For,
		Against:  t.Against,
		Abstain:  t.Abstain,
	}
}
