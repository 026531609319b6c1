package notices

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dungeon-app/booking-service/internal/domain"
	noticeRepo "github.com/dungeon-app/booking-service/internal/infra/storage/notice"
	userRepo "github.com/dungeon-app/booking-service/internal/infra/storage/user"
	"github.com/dungeon-app/booking-service/internal/service/notices/models"
)

type fakeNoticeRepo struct {
	notices map[int64]*domain.Notice
	votes   map[int64]map[int64]domain.VoteChoice
	nextID  int64
}

func (f *fakeNoticeRepo) Create(_ context.Context, n *domain.Notice) (*domain.Notice, error) {
	f.nextID++
	created := *n
	created.ID = f.nextID
	f.notices[created.ID] = &created
	return &created, nil
}

func (f *fakeNoticeRepo) GetByID(_ context.Context, id int64) (*domain.Notice, error) {
	if n, ok := f.notices[id]; ok {
		return n, nil
	}
	return nil, noticeRepo.ErrNoticeNotFound
}

func (f *fakeNoticeRepo) List(_ context.Context) ([]*domain.Notice, error) {
	var out []*domain.Notice
	for _, n := range f.notices {
		out = append(out, n)
	}
	return out, nil
}

func (f *fakeNoticeRepo) UpsertVote(_ context.Context, v *domain.Vote) error {
	if f.votes[v.NoticeID] == nil {
		f.votes[v.NoticeID] = map[int64]domain.VoteChoice{}
	}
	f.votes[v.NoticeID][v.UserID] = v.Choice
	return nil
}

func (f *fakeNoticeRepo) GetTally(_ context.Context, noticeID int64) (*domain.VoteTally, error) {
	tally := &domain.VoteTally{NoticeID: noticeID}
	for _, choice := range f.votes[noticeID] {
		switch choice {
		case domain.VoteFor:
			tally.For++
		case domain.VoteAgainst:
			tally.Against++
		case domain.VoteAbstain:
			tally.Abstain++
		}
	}
	return tally, nil
}

type fakeUserRepo struct{ users map[int64]*domain.User }

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, userRepo.ErrUserNotFound
}

type fakeAudit struct{ actions []string }

func (f *fakeAudit) Record(_ context.Context, _ int64, action, _, _, _ string) {
	f.actions = append(f.actions, action)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture() (*Service, *fakeNoticeRepo, *fakeAudit) {
	repo := &fakeNoticeRepo{
		notices: map[int64]*domain.Notice{
			1: {ID: 1, Title: "Assembleia Geral", Body: "Pauta anexa", AuthorID: 2, OpenForVoting: true},
			2: {ID: 2, Title: "Aviso de manutenção", Body: "Sala fechada", AuthorID: 2, OpenForVoting: false},
		},
		votes:  map[int64]map[int64]domain.VoteChoice{},
		nextID: 2,
	}
	users := &fakeUserRepo{users: map[int64]*domain.User{
		10: {ID: 10, Status: domain.UserActive, Role: domain.RoleMember},
		11: {ID: 11, Status: domain.UserActive, Role: domain.RoleMember},
		12: {ID: 12, Status: domain.UserPending, Role: domain.RoleMember},
	}}
	audit := &fakeAudit{}
	return NewService(repo, users, audit, nopLogger{}), repo, audit
}

func TestCreate_Success(t *testing.T) {
	svc, _, audit := newFixture()

	resp, err := svc.Create(context.Background(), &models.CreateNoticeRequest{
		AuthorID:      2,
		Title:         "Nova votação",
		Body:          "Texto da proposta",
		OpenForVoting: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	assert.True(t, resp.OpenForVoting)
	assert.Contains(t, audit.actions, "notice.create")
}

func TestCreate_Validation(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.Create(context.Background(), &models.CreateNoticeRequest{
		AuthorID: 2, Title: "", Body: "corpo",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateNoticeRequest{
		AuthorID: 2,
		Title:    strings.Repeat("a", domain.MaxNoticeTitleLength+1),
		Body:     "corpo",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCastVote_TallyAndRevote(t *testing.T) {
	svc, _, audit := newFixture()
	ctx := context.Background()

	require.NoError(t, svc.CastVote(ctx, &models.CastVoteRequest{NoticeID: 1, UserID: 10, Choice: "A Favor"}))
	require.NoError(t, svc.CastVote(ctx, &models.CastVoteRequest{NoticeID: 1, UserID: 11, Choice: "Contra"}))

	tally, err := svc.GetTally(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, tally.For)
	assert.Equal(t, 1, tally.Against)
	assert.Equal(t, 0, tally.Abstain)

	// Re-voting replaces the previous choice, never adds a second vote.
	require.NoError(t, svc.CastVote(ctx, &models.CastVoteRequest{NoticeID: 1, UserID: 10, Choice: "Abstenção"}))

	tally, err = svc.GetTally(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, tally.For)
	assert.Equal(t, 1, tally.Against)
	assert.Equal(t, 1, tally.Abstain)

	assert.Contains(t, audit.actions, "notice.vote")
}

func TestCastVote_VotingClosed(t *testing.T) {
	svc, _, _ := newFixture()

	err := svc.CastVote(context.Background(), &models.CastVoteRequest{NoticeID: 2, UserID: 10, Choice: "A Favor"})
	assert.ErrorIs(t, err, ErrVotingClosed)
}

func TestCastVote_VoterNotActive(t *testing.T) {
	svc, _, _ := newFixture()
	ctx := context.Background()

	err := svc.CastVote(ctx, &models.CastVoteRequest{NoticeID: 1, UserID: 12, Choice: "A Favor"})
	assert.ErrorIs(t, err, ErrVoterNotActive)

	// Unknown voters are indistinguishable from ineligible ones.
	err = svc.CastVote(ctx, &models.CastVoteRequest{NoticeID: 1, UserID: 99, Choice: "A Favor"})
	assert.ErrorIs(t, err, ErrVoterNotActive)
}

func TestCastVote_InvalidChoice(t *testing.T) {
	svc, _, _ := newFixture()

	err := svc.CastVote(context.Background(), &models.CastVoteRequest{NoticeID: 1, UserID: 10, Choice: "Talvez"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCastVote_NoticeNotFound(t *testing.T) {
	svc, _, _ := newFixture()

	err := svc.CastVote(context.Background(), &models.CastVoteRequest{NoticeID: 99, UserID: 10, Choice: "A Favor"})
	assert.ErrorIs(t, err, ErrNoticeNotFound)
}

func TestGetTally_NoticeNotFound(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.GetTally(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNoticeNotFound)
}
