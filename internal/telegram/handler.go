package telegram

import (
	"log/slog"

	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/site-monitor/internal/dal"
)

//go:generate mockgen -package mocks -destination mocks/handler.go . Monitor,Subscriptions

const (
	cmdStart       = "/start"
	cmdLastCheck   = "/last_check"
	cmdBotSettings = "/bot_settings"
	cmdSubscribe   = "/subscribe"

	msgWelcome           = "Привет! Я проверяю доступность сайтов и сообщаю, если с ними что-то не так."
	msgWelcomeSubscribe  = "\n\nЧтобы получать уведомления о проблемах, нажмите /subscribe."
	msgWelcomeSubscribed = "\n\nВы подписаны на уведомления. Чтобы отписаться, нажмите /subscribe."
	msgSubscribed        = "Вы подписались на уведомления о проблемах с сайтами."
	msgUnsubscribed      = "Вы отписались от уведомлений."
	msgErrorGeneric      = "Что-то пошло не так. Пожалуйста, попробуйте позже."
	msgErrorSubscribe    = "Не удалось изменить подписку. Пожалуйста, попробуйте позже."
)

type (
	Monitor interface {
		LastCheckText() (string, error)
		SettingsText() (string, error)
	}

	Subscriptions interface {
		IsSubscribed(chatID int64) (bool, error)
		Toggle(chatID int64) (dal.ToggleAction, error)
	}
)

type Handler struct {
	monitor       Monitor
	subscriptions Subscriptions

	menu *tb.ReplyMarkup

	log *slog.Logger
}

func NewHandler(monitor Monitor, subscriptions Subscriptions, log *slog.Logger) *Handler {
	return &Handler{
		monitor:       monitor,
		subscriptions: subscriptions,
		menu:          newMenu(),
		log:           log.With("component", "handler"),
	}
}

func (h *Handler) Start(c tb.Context) error {
	chatID := c.Sender().ID

	subscribed, err := h.subscriptions.IsSubscribed(chatID)
	if err != nil {
		h.log.Error("failed to check if user is subscribed",
			"error", err,
			"chatID", chatID)
		return c.Send(msgErrorGeneric, h.menu)
	}

	h.log.Debug("start handler called",
		"chatID", chatID,
		"subscribed", subscribed)

	if subscribed {
		return c.Send(msgWelcome+msgWelcomeSubscribed, h.menu)
	}
	return c.Send(msgWelcome+msgWelcomeSubscribe, h.menu)
}

func (h *Handler) LastCheck(c tb.Context) error {
	chatID := c.Sender().ID

	text, err := h.monitor.LastCheckText()
	if err != nil {
		h.log.Error("failed to render last check",
			"error", err,
			"chatID", chatID)
		return c.Send(msgErrorGeneric, h.menu)
	}

	h.log.Info("last check requested", "chatID", chatID)
	return c.Send(text, h.menu)
}

func (h *Handler) Settings(c tb.Context) error {
	chatID := c.Sender().ID

	text, err := h.monitor.SettingsText()
	if err != nil {
		h.log.Error("failed to render settings",
			"error", err,
			"chatID", chatID)
		return c.Send(msgErrorGeneric, h.menu)
	}

	h.log.Info("bot settings requested", "chatID", chatID)
	return c.Send(text, h.menu)
}

func (h *Handler) Subscribe(c tb.Context) error {
	chatID := c.Sender().ID

	action, err := h.subscriptions.Toggle(chatID)
	if err != nil {
		h.log.Error("failed to toggle subscription",
			"error", err,
			"chatID", chatID)
		return c.Send(msgErrorSubscribe, h.menu)
	}

	h.log.Info("user toggled subscription",
		"chatID", chatID,
		"action", action)

	if action == dal.Subscribed {
		return c.Send(msgSubscribed, h.menu)
	}
	return c.Send(msgUnsubscribed, h.menu)
}

// newMenu builds the reply keyboard attached to every answer
func newMenu() *tb.ReplyMarkup {
	menu := &tb.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(cmdBotSettings), menu.Text(cmdLastCheck)),
		menu.Row(menu.Text(cmdSubscribe)),
	)
	return menu
}
