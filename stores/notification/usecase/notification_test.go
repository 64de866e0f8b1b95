package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gitter-badger/talk-5/base/ctx"
	"github.com/gitter-badger/talk-5/domain/comment"
	"github.com/gitter-badger/talk-5/domain/community"
	"github.com/gitter-badger/talk-5/domain/mail"
	mMail "github.com/gitter-badger/talk-5/domain/mail/mocks"
	"github.com/gitter-badger/talk-5/stores/notification/usecase"
)

type result struct {
	msg mail.Message
	err error
}

type NotifierTestSuite struct {
	suite.Suite
	mailer  *mMail.Dispatcher
	results chan result
	n       *usecase.Notifier
	ctx     ctx.Ctx
}

func (s *NotifierTestSuite) SetupTest() {
	s.mailer = &mMail.Dispatcher{}
	s.results = make(chan result, 4)
	s.n = usecase.New(s.mailer, usecase.Config{
		From:       "Talk <noreply@talk.example.com>",
		Recipients: []string{"mod1@example.com", "mod2@example.com"},
	}, usecase.WithSentHook(func(msg mail.Message, err error) {
		s.results <- result{msg, err}
	}))
	s.ctx = ctx.Background()
}

func (s *NotifierTestSuite) wait() result {
	select {
	case r := <-s.results:
		return r
	case <-time.After(time.Second):
		s.FailNow("no mail sent")
		return result{}
	}
}

func (s *NotifierTestSuite) TestFlagConfirmed() {
	s.mailer.On("SendSimple", mock.Anything, mock.Anything).Return(&mail.Receipt{MessageID: "<1@talk>"}, nil).Once()

	s.n.Dispatch(s.ctx, comment.FlagConfirmed{CommentID: "c1"})

	r := s.wait()
	s.NoError(r.err)
	s.Equal("Talk <noreply@talk.example.com>", r.msg.From)
	s.Equal("mod1@example.com, mod2@example.com", r.msg.To)
	s.Equal("Comment flagged for review", r.msg.Subject)
	s.Contains(r.msg.Text, "c1")
	s.mailer.AssertExpectations(s.T())
}

func (s *NotifierTestSuite) TestUserBanned() {
	s.mailer.On("SendSimple", mock.Anything, mock.Anything).Return(&mail.Receipt{}, nil).Once()

	s.n.Dispatch(s.ctx, community.UserBanned{UserID: "u2", UserName: "Bob <b>", CommentID: "c7"})

	r := s.wait()
	s.Equal("User banned", r.msg.Subject)
	s.Equal("User Bob <b> has been banned for comment c7.", r.msg.Text)
	s.Equal("<p>User Bob &lt;b&gt; has been banned for comment c7.</p>", r.msg.HTML)
}

func (s *NotifierTestSuite) TestUserBannedWithoutComment() {
	s.mailer.On("SendSimple", mock.Anything, mock.Anything).Return(&mail.Receipt{}, nil).Once()

	s.n.Dispatch(s.ctx, community.UserBanned{UserID: "u2"})
	s.Equal("User u2 has been banned.", s.wait().msg.Text)
}

func (s *NotifierTestSuite) TestSendFailureIsSwallowed() {
	boom := errors.New("dial tcp: connection refused")
	s.mailer.On("SendSimple", mock.Anything, mock.Anything).Return(nil, boom).Once()

	s.NotPanics(func() {
		s.n.Dispatch(s.ctx, comment.FlagConfirmed{CommentID: "c1"})
	})
	s.Equal(boom, s.wait().err)
}

func (s *NotifierTestSuite) TestOtherEventsIgnored() {
	s.n.Dispatch(s.ctx, comment.FlagRequested{CommentID: "c1"})
	s.n.Dispatch(s.ctx, comment.FlagFailed{CommentID: "c1"})
	s.n.Dispatch(s.ctx, community.RoleSet{UserID: "u1"})

	s.Never(func() bool {
		return len(s.results) > 0
	}, 100*time.Millisecond, 10*time.Millisecond)
	s.mailer.AssertNotCalled(s.T(), "SendSimple", mock.Anything, mock.Anything)
}

func (s *NotifierTestSuite) TestNoRecipients() {
	n := usecase.New(s.mailer, usecase.Config{From: "noreply@talk.example.com"})
	n.Dispatch(s.ctx, comment.FlagConfirmed{CommentID: "c1"})
	s.mailer.AssertNotCalled(s.T(), "SendSimple", mock.Anything, mock.Anything)
}

func TestNotifierTestSuite(t *testing.T) {
	suite.Run(t, new(NotifierTestSuite))
}
