package telegram_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/site-monitor/internal/dal"
	"github.com/Roma7-7-7/site-monitor/internal/telegram"
	"github.com/Roma7-7-7/site-monitor/internal/telegram/mocks"
)

const chatID = int64(555)

// fakeContext implements only the tb.Context methods handlers use
type fakeContext struct {
	tb.Context

	sender  *tb.User
	sendErr error

	sent []string
	opts [][]interface{}
}

func newFakeContext() *fakeContext {
	return &fakeContext{sender: &tb.User{ID: chatID}}
}

func (c *fakeContext) Sender() *tb.User {
	return c.sender
}

func (c *fakeContext) Send(what interface{}, opts ...interface{}) error {
	text, _ := what.(string)
	c.sent = append(c.sent, text)
	c.opts = append(c.opts, opts)
	return c.sendErr
}

func assertKeyboard(t *testing.T, opts []interface{}) {
	t.Helper()
	require.Len(t, opts, 1)
	markup, ok := opts[0].(*tb.ReplyMarkup)
	require.True(t, ok, "expected *tb.ReplyMarkup, got %T", opts[0])
	assert.True(t, markup.ResizeKeyboard)

	var buttons []string
	for _, row := range markup.ReplyKeyboard {
		for _, btn := range row {
			buttons = append(buttons, btn.Text)
		}
	}
	assert.Equal(t, []string{"/bot_settings", "/last_check", "/subscribe"}, buttons)
}

func TestHandler_Subscribe(t *testing.T) {
	type fields struct {
		subscriptions func(*gomock.Controller) telegram.Subscriptions
	}
	tests := []struct {
		name    string
		fields  fields
		want    string
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "subscribed",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					res := mocks.NewMockSubscriptions(ctrl)
					res.EXPECT().Toggle(chatID).Return(dal.Subscribed, nil)
					return res
				},
			},
			want:    "Вы подписались на уведомления о проблемах с сайтами.",
			wantErr: assert.NoError,
		},
		{
			name: "unsubscribed",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					res := mocks.NewMockSubscriptions(ctrl)
					res.EXPECT().Toggle(chatID).Return(dal.Unsubscribed, nil)
					return res
				},
			},
			want:    "Вы отписались от уведомлений.",
			wantErr: assert.NoError,
		},
		{
			name: "store_error",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					res := mocks.NewMockSubscriptions(ctrl)
					res.EXPECT().Toggle(chatID).Return(dal.ToggleAction(""), assert.AnError)
					return res
				},
			},
			want:    "Не удалось изменить подписку. Пожалуйста, попробуйте позже.",
			wantErr: assert.NoError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h := telegram.NewHandler(mocks.NewMockMonitor(ctrl), tt.fields.subscriptions(ctrl), slog.New(slog.DiscardHandler))
			c := newFakeContext()

			tt.wantErr(t, h.Subscribe(c))
			require.Len(t, c.sent, 1)
			assert.Equal(t, tt.want, c.sent[0])
			assertKeyboard(t, c.opts[0])
		})
	}
}

func TestHandler_Start(t *testing.T) {
	tests := []struct {
		name       string
		subscribed bool
		err        error
		want       string
	}{
		{
			name: "not_subscribed",
			want: "Привет! Я проверяю доступность сайтов и сообщаю, если с ними что-то не так.\n\nЧтобы получать уведомления о проблемах, нажмите /subscribe.",
		},
		{
			name:       "subscribed",
			subscribed: true,
			want:       "Привет! Я проверяю доступность сайтов и сообщаю, если с ними что-то не так.\n\nВы подписаны на уведомления. Чтобы отписаться, нажмите /subscribe.",
		},
		{
			name: "error",
			err:  assert.AnError,
			want: "Что-то пошло не так. Пожалуйста, попробуйте позже.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			subs := mocks.NewMockSubscriptions(ctrl)
			subs.EXPECT().IsSubscribed(chatID).Return(tt.subscribed, tt.err)

			h := telegram.NewHandler(mocks.NewMockMonitor(ctrl), subs, slog.New(slog.DiscardHandler))
			c := newFakeContext()

			require.NoError(t, h.Start(c))
			require.Len(t, c.sent, 1)
			assert.Equal(t, tt.want, c.sent[0])
			assertKeyboard(t, c.opts[0])
		})
	}
}

func TestHandler_LastCheck(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		monitor := mocks.NewMockMonitor(ctrl)
		monitor.EXPECT().LastCheckText().Return("Дата и время последней проверки - 15.01.2026 13:00:05 MSK\n", nil)

		h := telegram.NewHandler(monitor, mocks.NewMockSubscriptions(ctrl), slog.New(slog.DiscardHandler))
		c := newFakeContext()

		require.NoError(t, h.LastCheck(c))
		assert.Equal(t, []string{"Дата и время последней проверки - 15.01.2026 13:00:05 MSK\n"}, c.sent)
		assertKeyboard(t, c.opts[0])
	})

	t.Run("render_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		monitor := mocks.NewMockMonitor(ctrl)
		monitor.EXPECT().LastCheckText().Return("", assert.AnError)

		h := telegram.NewHandler(monitor, mocks.NewMockSubscriptions(ctrl), slog.New(slog.DiscardHandler))
		c := newFakeContext()

		require.NoError(t, h.LastCheck(c))
		assert.Equal(t, []string{"Что-то пошло не так. Пожалуйста, попробуйте позже."}, c.sent)
	})

	t.Run("send_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		monitor := mocks.NewMockMonitor(ctrl)
		monitor.EXPECT().LastCheckText().Return("text", nil)

		h := telegram.NewHandler(monitor, mocks.NewMockSubscriptions(ctrl), slog.New(slog.DiscardHandler))
		c := newFakeContext()
		c.sendErr = assert.AnError

		assert.ErrorIs(t, h.LastCheck(c), assert.AnError)
	})
}

func TestHandler_Settings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	monitor := mocks.NewMockMonitor(ctrl)
	monitor.EXPECT().SettingsText().Return("Список проверяемых сайтов:\nhttps://a.example\nПериодичность проверки - 1 р. в 4 ч.", nil)

	h := telegram.NewHandler(monitor, mocks.NewMockSubscriptions(ctrl), slog.New(slog.DiscardHandler))
	c := newFakeContext()

	require.NoError(t, h.Settings(c))
	assert.Equal(t, []string{"Список проверяемых сайтов:\nhttps://a.example\nПериодичность проверки - 1 р. в 4 ч."}, c.sent)
	assertKeyboard(t, c.opts[0])
}
