package repository_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/gitter-badger/talk-5/base/ctx"
	"github.com/gitter-badger/talk-5/domain"
	"github.com/gitter-badger/talk-5/domain/community"
	"github.com/gitter-badger/talk-5/service/coralapi"
	"github.com/gitter-badger/talk-5/service/coralapi/coralapitest"
	"github.com/gitter-badger/talk-5/stores/community/repository"
)

type CommunityRepoTestSuite struct {
	suite.Suite
	srv  *coralapitest.Server
	repo community.Repo
	ctx  ctx.Ctx
}

func (s *CommunityRepoTestSuite) SetupTest() {
	s.srv = coralapitest.NewServer()
	s.srv.SetUsers(
		community.Commenter{UserID: "u1", UserName: "Alice", Role: community.RoleCommenter},
		community.Commenter{UserID: "u2", UserName: "Bob", Role: community.RoleModerator},
		community.Commenter{UserID: "u3", UserName: "Carol", Role: community.RoleCommenter},
	)
	api, err := coralapi.NewClient(&coralapi.ClientCfg{BaseURL: s.srv.URL})
	s.Require().NoError(err)
	s.repo = repository.New(api)
	s.ctx = ctx.Background()
}

func (s *CommunityRepoTestSuite) TearDownTest() {
	s.srv.Close()
}

func (s *CommunityRepoTestSuite) TestFindCommentersPaging() {
	s.srv.SetLimit(2)

	page, err := s.repo.FindCommenters(s.ctx, community.NewQuery(1, community.SortSpec{Direction: "asc"}))
	s.Require().NoError(err)
	s.Equal(1, page.Page)
	s.Equal(3, page.Count)
	s.Equal(2, page.Limit)
	s.Equal(2, page.TotalPages)
	s.Require().Len(page.Items, 1)
	s.Equal("u3", page.Items[0].UserID)

	reqs := s.srv.Requests()
	s.Equal("page=1&sort=asc", reqs[len(reqs)-1].Query)
}

func (s *CommunityRepoTestSuite) TestFindCommentersEmptyQuery() {
	page, err := s.repo.FindCommenters(s.ctx, community.Query{})
	s.Require().NoError(err)
	s.Len(page.Items, 3)
	s.Equal("", s.srv.Requests()[0].Query)
}

func (s *CommunityRepoTestSuite) TestFindCommentersServerError() {
	s.srv.FailNext("/user", http.StatusInternalServerError)
	page, err := s.repo.FindCommenters(s.ctx, community.Query{})
	s.Nil(page)
	s.ErrorIs(err, domain.ErrServerError)
}

func (s *CommunityRepoTestSuite) TestSetRole() {
	s.NoError(s.repo.SetRole(s.ctx, "u1", community.RoleModerator))
	s.Equal(community.RoleModerator, s.srv.Users()[0].Role)

	req := s.srv.Requests()[0]
	s.Equal(http.MethodPost, req.Method)
	s.Equal("/api/v1/user/u1/role", req.Path)
	s.Equal(map[string]interface{}{"role": "moderator"}, req.Body)
}

func (s *CommunityRepoTestSuite) TestSetRoleUnknownUser() {
	s.ErrorIs(s.repo.SetRole(s.ctx, "nope", community.RoleAdmin), &domain.ServerError{Status: http.StatusNotFound})
}

func (s *CommunityRepoTestSuite) TestSetRoleNotAuthorized() {
	s.srv.FailNext("/user/u1/role", http.StatusUnauthorized)
	s.ErrorIs(s.repo.SetRole(s.ctx, "u1", community.RoleAdmin), domain.ErrNotAuthorized)
	s.Equal(community.RoleCommenter, s.srv.Users()[0].Role)
}

func (s *CommunityRepoTestSuite) TestSetRoleBadInput() {
	s.ErrorIs(s.repo.SetRole(s.ctx, "", community.RoleAdmin), domain.ErrBadParamInput)
	s.ErrorIs(s.repo.SetRole(s.ctx, "u1", ""), domain.ErrBadParamInput)
	s.Empty(s.srv.Requests())
}

func (s *CommunityRepoTestSuite) TestSetStatus() {
	s.NoError(s.repo.SetStatus(s.ctx, "u2", community.StatusBanned, "c9"))
	s.Equal(community.StatusBanned, s.srv.Users()[1].Status)
	s.Equal([]community.BanRequest{{UserID: "u2", UserName: "Bob", CommentID: "c9"}}, s.srv.Bans())
}

func TestCommunityRepoTestSuite(t *testing.T) {
	suite.Run(t, new(CommunityRepoTestSuite))
}
