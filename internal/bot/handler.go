package bot

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/eliseohh/torrebot/internal/lookup"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/middleware"
)

// Replier answers one inbound text. *lookup.Service implements it.
type Replier interface {
	Reply(ctx context.Context, text string) (lookup.Reply, error)
}

type Bot struct {
	api    *tele.Bot
	svc    Replier
	cfg    Config
	logger *zap.Logger
}

type Config struct {
	Token        string
	FetchTimeout time.Duration
}

func New(cfg Config, svc Replier, logger *zap.Logger) (*Bot, error) {
	bot := &Bot{svc: svc, cfg: cfg, logger: logger}

	pref := tele.Settings{
		Token:   cfg.Token,
		Poller:  &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: bot.onError,
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	bot.api = b
	bot.register()
	return bot, nil
}

// Start blocks until Stop is called.
func (b *Bot) Start() {
	b.logger.Info("bot started", zap.String("username", b.api.Me.Username))
	b.api.Start()
}

func (b *Bot) Stop() {
	b.api.Stop()
}

func (b *Bot) register() {
	// Panics are routed to onError.
	b.api.Use(middleware.Recover())

	b.api.Handle("/start", b.handleHelp)
	b.api.Handle("/help", b.handleHelp)
	b.api.Handle(tele.OnText, b.handleText)
}

func (b *Bot) handleHelp(c tele.Context) error {
	return c.Send(lookup.UsageMessage)
}

func (b *Bot) handleText(c tele.Context) error {
	msg := c.Message()
	text := strings.TrimSpace(msg.Text)

	// Unregistered commands land here too.
	if strings.HasPrefix(text, "/") {
		return c.Send(lookup.UsageMessage)
	}

	log := b.logger
	if msg.Chat != nil {
		log = log.With(zap.Int64("chat_id", msg.Chat.ID))
	}

	ctx := context.Background()
	if b.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.cfg.FetchTimeout)
		defer cancel()
	}

	reply, err := b.svc.Reply(ctx, text)
	if err != nil {
		var unavailable *lookup.SourceUnavailableError
		if errors.As(err, &unavailable) {
			log.Error("lookup failed", zap.String("text", text), zap.Error(err))
			return c.Send(lookup.UnavailableMessage)
		}
		return err
	}

	if reply.Markdown {
		return c.Send(reply.Text, &tele.SendOptions{ParseMode: tele.ModeMarkdown})
	}
	return c.Send(reply.Text)
}

func (b *Bot) onError(err error, c tele.Context) {
	fields := []zap.Field{zap.Error(err)}
	if c != nil && c.Chat() != nil {
		fields = append(fields, zap.Int64("chat_id", c.Chat().ID))
	}
	b.logger.Error("telegram error", fields...)
}
