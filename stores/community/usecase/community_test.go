package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gitter-badger/talk-5/base/ctx"
	"github.com/gitter-badger/talk-5/domain"
	"github.com/gitter-badger/talk-5/domain/community"
	mCommunity "github.com/gitter-badger/talk-5/domain/community/mocks"
	mDomain "github.com/gitter-badger/talk-5/domain/mocks"
	"github.com/gitter-badger/talk-5/stores/community/usecase"
)

type CommunityUsecaseTestSuite struct {
	suite.Suite
	repo       *mCommunity.Repo
	dispatcher *mDomain.Dispatcher
	im         community.Usecase
	ctx        ctx.Ctx
	events     []domain.Event
}

func (s *CommunityUsecaseTestSuite) SetupTest() {
	s.repo = &mCommunity.Repo{}
	s.dispatcher = &mDomain.Dispatcher{}
	s.events = nil
	s.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		s.events = append(s.events, args.Get(1).(domain.Event))
	})
	s.im = usecase.New(s.repo, s.dispatcher)
	s.ctx = ctx.Background()
}

func (s *CommunityUsecaseTestSuite) TestFetchCommentersSuccess() {
	q := community.NewQuery(0, community.SortSpec{Direction: "asc"})
	page := &community.Page{
		Items:      []community.Commenter{{UserID: "u1", UserName: "Alice", Role: community.RoleCommenter}},
		Page:       0,
		Count:      1,
		Limit:      20,
		TotalPages: 1,
	}
	s.repo.On("FindCommenters", mock.Anything, q).Return(page, nil).Once()

	s.NoError(s.im.FetchCommenters(s.ctx, q))
	s.Equal([]domain.Event{
		community.CommentersFetchRequested{Seq: 1},
		community.CommentersFetchSucceeded{Seq: 1, Page: *page},
	}, s.events)
	s.repo.AssertExpectations(s.T())
}

func (s *CommunityUsecaseTestSuite) TestFetchCommentersFailure() {
	boom := &domain.ServerError{Status: 500}
	s.repo.On("FindCommenters", mock.Anything, mock.Anything).Return(nil, boom).Once()

	err := s.im.FetchCommenters(s.ctx, community.Query{})
	s.ErrorIs(err, domain.ErrServerError)
	s.Equal([]domain.Event{
		community.CommentersFetchRequested{Seq: 1},
		community.CommentersFetchFailed{Seq: 1, Err: boom},
	}, s.events)
}

func (s *CommunityUsecaseTestSuite) TestFetchSequenceIncreases() {
	s.repo.On("FindCommenters", mock.Anything, mock.Anything).Return(&community.Page{}, nil)

	s.NoError(s.im.FetchCommenters(s.ctx, community.Query{}))
	s.NoError(s.im.FetchCommenters(s.ctx, community.Query{}))
	s.Equal(community.CommentersFetchRequested{Seq: 2}, s.events[2])
}

func (s *CommunityUsecaseTestSuite) TestSortAndPageDoNotFetch() {
	s.im.UpdateSorting(s.ctx, community.SortSpec{Field: "created_at", Direction: "desc"})
	s.im.RequestNewPage(s.ctx)

	s.Equal([]domain.Event{
		community.SortUpdated{Sort: community.SortSpec{Field: "created_at", Direction: "desc"}},
		community.NewPageRequested{},
	}, s.events)
	s.repo.AssertNotCalled(s.T(), "FindCommenters", mock.Anything, mock.Anything)
}

func (s *CommunityUsecaseTestSuite) TestSetRoleAfterConfirmation() {
	s.repo.On("SetRole", mock.Anything, "u1", community.RoleModerator).Return(nil).Once()

	s.NoError(s.im.SetRole(s.ctx, "u1", community.RoleModerator))
	s.Equal([]domain.Event{community.RoleSet{UserID: "u1", Role: community.RoleModerator}}, s.events)
}

func (s *CommunityUsecaseTestSuite) TestSetRoleFailureEmitsNothing() {
	s.repo.On("SetRole", mock.Anything, "u1", community.RoleAdmin).Return(domain.ErrNotAuthorized).Once()

	s.ErrorIs(s.im.SetRole(s.ctx, "u1", community.RoleAdmin), domain.ErrNotAuthorized)
	s.Empty(s.events)
}

func (s *CommunityUsecaseTestSuite) TestBanUser() {
	req := community.BanRequest{UserID: "u2", UserName: "Bob", CommentID: "c7"}
	s.repo.On("SetStatus", mock.Anything, "u2", community.StatusBanned, "c7").Return(nil).Once()

	s.NoError(s.im.BanUser(s.ctx, req))
	s.Equal([]domain.Event{community.UserBanned{UserID: "u2", UserName: "Bob", CommentID: "c7"}}, s.events)
}

func (s *CommunityUsecaseTestSuite) TestBanUserFailure() {
	boom := errors.New("boom")
	s.repo.On("SetStatus", mock.Anything, "u2", community.StatusBanned, "").Return(boom).Once()

	s.Equal(boom, s.im.BanUser(s.ctx, community.BanRequest{UserID: "u2"}))
	s.Empty(s.events)
}

func TestCommunityUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(CommunityUsecaseTestSuite))
}
