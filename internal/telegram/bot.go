package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tb "gopkg.in/telebot.v3"
)

type Bot struct {
	bot *tb.Bot

	handler *Handler

	log *slog.Logger
}

func NewBot(token string, handler *Handler, log *slog.Logger) (*Bot, error) {
	bot, err := tb.NewBot(tb.Settings{
		Token:  token,
		Poller: &tb.LongPoller{Timeout: 5 * time.Second}, //nolint:mnd // it's ok
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Bot{
		bot: bot,

		handler: handler,

		log: log.With("component", "bot"),
	}, nil
}

// Start blocks until ctx is done
func (b *Bot) Start(ctx context.Context) {
	b.bot.Handle(cmdStart, b.handler.Start)
	b.bot.Handle(cmdLastCheck, b.handler.LastCheck)
	b.bot.Handle(cmdBotSettings, b.handler.Settings)
	b.bot.Handle(cmdSubscribe, b.handler.Subscribe)

	go func() {
		<-ctx.Done()
		b.log.Info("Stopping bot")
		b.bot.Stop()
	}()

	b.log.Info("Starting bot")
	b.bot.Start()
}
