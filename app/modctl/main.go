package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gitter-badger/talk-5/base/ctx"
	"github.com/gitter-badger/talk-5/base/log"
	"github.com/gitter-badger/talk-5/domain/comment"
	"github.com/gitter-badger/talk-5/domain/community"
	"github.com/gitter-badger/talk-5/domain/mail"
	"github.com/gitter-badger/talk-5/service/coralapi"
	"github.com/gitter-badger/talk-5/service/dispatcher"
	"github.com/gitter-badger/talk-5/service/mailer"
	comment_repository "github.com/gitter-badger/talk-5/stores/comment/repository"
	comment_usecase "github.com/gitter-badger/talk-5/stores/comment/usecase"
	community_repository "github.com/gitter-badger/talk-5/stores/community/repository"
	communitystate "github.com/gitter-badger/talk-5/stores/community/state"
	community_usecase "github.com/gitter-badger/talk-5/stores/community/usecase"
	notification_usecase "github.com/gitter-badger/talk-5/stores/notification/usecase"
	streamstate "github.com/gitter-badger/talk-5/stores/stream/state"
)

const usage = `usage: modctl [global flags] <command> [args]

commands:
  commenters [--page N] [--sort asc|desc] [--field name]
  set-role <userId> <commenter|moderator|admin>
  ban <userId> [--name userName] [--comment commentId]
  flag <commentId>
  comment --author name <body>
  stream [--query key=value ...]
  mail --to addrs --subject text [--text body] [--html body] [--from addr]

global flags:
`

var globalFlags = pflag.NewFlagSet("modctl", pflag.ContinueOnError)

func init() {
	globalFlags.String("config", "infra/configs/modctl/config.yaml", "config file")
	globalFlags.String("api.baseURL", "", "comment platform origin, e.g. https://talk.example.com")
	globalFlags.Bool("debug", false, "debug logging")
	globalFlags.SetInterspersed(false)
	globalFlags.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		globalFlags.PrintDefaults()
	}
}

func loadConfig(args []string) ([]string, error) {
	if err := globalFlags.Parse(args); err != nil {
		return nil, err
	}

	viper.SetConfigType("yaml")
	if err := viper.BindPFlags(globalFlags); err != nil {
		return nil, err
	}
	viper.SetConfigFile(viper.GetString("config"))
	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(viper.GetString("config")); !os.IsNotExist(statErr) {
			return nil, err
		}
		log.Log().WithField("config", viper.GetString("config")).Warn("config file not found, using flags only")
	}

	log.SetDebug(viper.GetBool("debug"))
	if viper.GetBool("debug") {
		log.Log().Info("modctl RUN on DEBUG mode")
	}
	return globalFlags.Args(), nil
}

type app struct {
	store     *dispatcher.Store
	community community.Usecase
	comments  comment.Usecase
	mailer    mail.Dispatcher
	notifier  *notification_usecase.Notifier
}

func newApp(c ctx.Ctx) (*app, error) {
	cfg := &coralapi.ClientCfg{
		BaseURL: viper.GetString("api.baseURL"),
		Timeout: viper.GetDuration("api.timeout"),
	}
	if name := viper.GetString("api.session.name"); name != "" {
		cfg.Session = &http.Cookie{
			Name:  name,
			Value: viper.GetString("api.session.value"),
		}
	}
	api, err := coralapi.NewClient(cfg)
	if err != nil {
		c.WithFields(log.Fields{
			"baseURL": cfg.BaseURL,
			"err":     err,
		}).Error("coralapi.NewClient failed")
		return nil, err
	}

	mailCfg, err := mailer.LoadConfigFromEnv(c)
	if err != nil {
		c.WithField("err", err).Error("mailer.LoadConfigFromEnv failed")
		return nil, err
	}
	mailDispatcher := mailer.NewDispatcher(mailer.NewSMTPTransport(mailCfg))

	streamOpts := []streamstate.StoreOption{}
	if d := viper.GetDuration("notification.bannerTimeout"); d > 0 {
		streamOpts = append(streamOpts, streamstate.WithTimeout(d))
	}
	store := dispatcher.New(communitystate.NewStore(), streamstate.NewStore(streamOpts...))

	notifier := notification_usecase.New(mailDispatcher, notification_usecase.Config{
		From:       viper.GetString("mail.from"),
		Recipients: viper.GetStringSlice("mail.moderators"),
	})
	store.Subscribe(notifier)

	return &app{
		store:     store,
		community: community_usecase.New(community_repository.New(api), store),
		comments:  comment_usecase.New(comment_repository.New(api), store),
		mailer:    mailDispatcher,
		notifier:  notifier,
	}, nil
}

func (a *app) Close() {
	a.comments.Close()
	a.notifier.Wait()
}

func main() {
	args, err := loadConfig(os.Args[1:])
	if err == pflag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if len(args) == 0 {
		globalFlags.Usage()
		os.Exit(2)
	}

	c := ctx.Background()
	a, err := newApp(c)
	if err != nil {
		os.Exit(1)
	}

	code := a.run(c, args[0], args[1:])
	a.Close()
	os.Exit(code)
}
