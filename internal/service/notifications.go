package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/Roma7-7-7/telegram"
	"github.com/sethvargo/go-retry"

	"github.com/Roma7-7-7/site-monitor/internal/dal"
	"github.com/Roma7-7-7/site-monitor/internal/obs"
)

//go:generate mockgen -package mocks -destination mocks/telegram.go . TelegramClient,SubscriberRemover

const (
	DefaultDeliveryTimeout    = 10 * time.Second
	DefaultDeliveryRetryDelay = time.Second

	// telegram rejects longer messages
	maxMessageLength = 4096
)

type (
	TelegramClient interface {
		SendMessage(ctx context.Context, chatID, msg string) error
	}

	SubscriberRemover interface {
		Remove(chatID int64) error
	}

	NotificationsConfig struct {
		AdminChatID int64
		Timeout     time.Duration
		RetryDelay  time.Duration
	}

	Notifications struct {
		telegram TelegramClient
		remover  SubscriberRemover
		metrics  *obs.Metrics

		adminChatID int64
		timeout     time.Duration
		retryDelay  time.Duration

		log *slog.Logger
	}
)

func NewNotifications(telegram TelegramClient, remover SubscriberRemover, conf NotificationsConfig, metrics *obs.Metrics, log *slog.Logger) *Notifications {
	if conf.Timeout <= 0 {
		conf.Timeout = DefaultDeliveryTimeout
	}
	if conf.RetryDelay <= 0 {
		conf.RetryDelay = DefaultDeliveryRetryDelay
	}
	return &Notifications{
		telegram: telegram,
		remover:  remover,
		metrics:  metrics,

		adminChatID: conf.AdminChatID,
		timeout:     conf.Timeout,
		retryDelay:  conf.RetryDelay,

		log: log.With("component", "service").With("service", "notifications"),
	}
}

// NotifyAll sends msg to every recipient. A failed recipient is logged and skipped;
// only an unusable transport or a cancelled context is returned as an error.
func (n *Notifications) NotifyAll(ctx context.Context, msg string, recipients dal.SubscriberSet) error {
	if n.telegram == nil {
		return &DeliveryError{Err: ErrTransportUnavailable}
	}

	sent, failed, blocked := 0, 0, 0
	for _, chatID := range recipients.IDs() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("notify subscribers: %w", err)
		}

		err := n.send(ctx, chatID, msg)
		switch {
		case err == nil:
			sent++
			n.metrics.ObserveDelivery("sent")
		case errors.Is(err, telegram.ErrForbidden):
			blocked++
			n.metrics.ObserveDelivery("blocked")
			n.log.InfoContext(ctx, "bot is blocked by user, removing subscriber", "chatID", chatID)
			if n.remover != nil {
				if err := n.remover.Remove(chatID); err != nil {
					n.log.ErrorContext(ctx, "failed to remove subscriber", "chatID", chatID, "error", err)
				}
			}
		default:
			failed++
			n.metrics.ObserveDelivery("failed")
			n.log.ErrorContext(ctx, "failed to send message", "chatID", chatID, "error", err)
		}
	}

	n.log.InfoContext(ctx, "digest delivered", "sent", sent, "failed", failed, "blocked", blocked)
	return nil
}

// NotifyAdmin never removes the admin chat, even when telegram reports it as blocked
func (n *Notifications) NotifyAdmin(ctx context.Context, msg string) error {
	if n.telegram == nil {
		return &DeliveryError{Err: ErrTransportUnavailable}
	}

	if err := n.send(ctx, n.adminChatID, msg); err != nil {
		n.metrics.ObserveDelivery("failed")
		n.log.ErrorContext(ctx, "failed to notify admin", "chatID", n.adminChatID, "error", err)
		return &DeliveryError{ChatID: n.adminChatID, Err: err}
	}

	n.metrics.ObserveDelivery("sent")
	return nil
}

func (n *Notifications) send(ctx context.Context, chatID int64, msg string) error {
	id := strconv.FormatInt(chatID, 10)
	for _, part := range splitMessage(msg, maxMessageLength) {
		backoff := retry.WithMaxRetries(1, retry.NewConstant(n.retryDelay))
		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			sendCtx, cancel := context.WithTimeout(ctx, n.timeout)
			defer cancel()

			err := n.telegram.SendMessage(sendCtx, id, part)
			if err == nil || errors.Is(err, telegram.ErrForbidden) || ctx.Err() != nil {
				return err
			}
			n.log.WarnContext(ctx, "send attempt failed", "chatID", chatID, "error", err)
			return retry.RetryableError(err)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// splitMessage cuts msg on line boundaries into parts of at most limit runes.
// A single line longer than limit is cut as is.
func splitMessage(msg string, limit int) []string {
	if len([]rune(msg)) <= limit {
		return []string{msg}
	}

	var (
		res     []string
		current strings.Builder
		size    int
	)
	flush := func() {
		if size > 0 {
			res = append(res, current.String())
			current.Reset()
			size = 0
		}
	}

	for _, line := range strings.SplitAfter(msg, "\n") {
		runes := []rune(line)
		for len(runes) > limit {
			flush()
			res = append(res, string(runes[:limit]))
			runes = runes[limit:]
		}
		if size+len(runes) > limit {
			flush()
		}
		current.WriteString(string(runes))
		size += len(runes)
	}
	flush()

	return res
}
