package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/xerrors"

	"github.com/gitter-badger/talk-5/base/ctx"
	"github.com/gitter-badger/talk-5/domain"
	"github.com/gitter-badger/talk-5/domain/comment"
	"github.com/gitter-badger/talk-5/domain/community"
	"github.com/gitter-badger/talk-5/domain/mail"
)

const flagSettleTimeout = 30 * time.Second

type command func(a *app, c ctx.Ctx, args []string) error

var commands = map[string]command{
	"commenters": runCommenters,
	"set-role":   runSetRole,
	"ban":        runBan,
	"flag":       runFlag,
	"comment":    runComment,
	"stream":     runStream,
	"mail":       runMail,
}

func (a *app) run(c ctx.Ctx, name string, args []string) int {
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", name)
		globalFlags.Usage()
		return 2
	}
	if err := cmd(a, c, args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runCommenters(a *app, c ctx.Ctx, args []string) error {
	fs := pflag.NewFlagSet("commenters", pflag.ContinueOnError)
	page := fs.Int("page", 0, "page to load")
	dir := fs.String("sort", "", "sort direction, asc or desc")
	field := fs.String("field", "", "sort field")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sort := community.SortSpec{Field: *field, Direction: *dir}
	if !sort.IsZero() {
		a.community.UpdateSorting(c, sort)
	}
	if err := a.community.FetchCommenters(c, community.NewQuery(*page, sort)); err != nil {
		return err
	}
	return printJSON(a.store.Community())
}

func runSetRole(a *app, c ctx.Ctx, args []string) error {
	if len(args) != 2 {
		return xerrors.New("set-role needs <userId> <role>")
	}
	userID, role := args[0], community.Role(args[1])

	if err := a.community.FetchCommenters(c, community.Query{}); err != nil {
		return err
	}
	if err := a.community.SetRole(c, userID, role); err != nil {
		return err
	}
	return printJSON(a.store.Community())
}

func runBan(a *app, c ctx.Ctx, args []string) error {
	fs := pflag.NewFlagSet("ban", pflag.ContinueOnError)
	name := fs.String("name", "", "user name, used in the notification mail")
	commentID := fs.String("comment", "", "offending comment id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return xerrors.New("ban needs <userId>")
	}

	return a.community.BanUser(c, community.BanRequest{
		UserID:    fs.Arg(0),
		UserName:  *name,
		CommentID: *commentID,
	})
}

// settled forwards the terminal flag event for one comment.
type settled struct {
	commentID string
	done      chan domain.Event
}

func (s *settled) Dispatch(_ ctx.Ctx, e domain.Event) {
	switch ev := e.(type) {
	case comment.FlagConfirmed:
		if ev.CommentID == s.commentID {
			s.done <- e
		}
	case comment.FlagFailed:
		if ev.CommentID == s.commentID {
			s.done <- e
		}
	}
}

func runFlag(a *app, c ctx.Ctx, args []string) error {
	if len(args) != 1 {
		return xerrors.New("flag needs <commentId>")
	}
	watch := &settled{commentID: args[0], done: make(chan domain.Event, 1)}
	a.store.Subscribe(watch)

	if err := a.comments.FlagComment(c, args[0]); err != nil {
		return err
	}
	if err := printJSON(a.store.Stream().Notification); err != nil {
		return err
	}

	select {
	case e := <-watch.done:
		if failed, ok := e.(comment.FlagFailed); ok {
			return failed.Err
		}
	case <-time.After(flagSettleTimeout):
		return xerrors.Errorf("flag %s not settled after %s", args[0], flagSettleTimeout)
	}
	return printJSON(a.store.Stream())
}

func runComment(a *app, c ctx.Ctx, args []string) error {
	fs := pflag.NewFlagSet("comment", pflag.ContinueOnError)
	author := fs.String("author", "", "author name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	body := strings.Join(fs.Args(), " ")

	if err := a.comments.CreateComment(c, *author, body); err != nil {
		return err
	}
	return printJSON(a.store.Stream())
}

func runStream(a *app, c ctx.Ctx, args []string) error {
	fs := pflag.NewFlagSet("stream", pflag.ContinueOnError)
	query := fs.StringToString("query", map[string]string{}, "stream query, key=value")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.comments.FetchStream(c, comment.StreamQuery(*query)); err != nil {
		return err
	}
	return printJSON(a.store.Stream())
}

func runMail(a *app, c ctx.Ctx, args []string) error {
	fs := pflag.NewFlagSet("mail", pflag.ContinueOnError)
	msg := mail.Message{}
	fs.StringVar(&msg.From, "from", "", "sender address")
	fs.StringVar(&msg.To, "to", "", "comma-separated recipients")
	fs.StringVar(&msg.Subject, "subject", "", "subject")
	fs.StringVar(&msg.Text, "text", "", "plain text body")
	fs.StringVar(&msg.HTML, "html", "", "html body")
	if err := fs.Parse(args); err != nil {
		return err
	}

	receipt, err := a.mailer.SendSimple(c, msg)
	if err != nil {
		return err
	}
	return printJSON(receipt)
}
