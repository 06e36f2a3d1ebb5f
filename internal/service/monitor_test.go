package service_test

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Roma7-7-7/site-monitor/internal/dal"
	"github.com/Roma7-7-7/site-monitor/internal/dal/testutil"
	"github.com/Roma7-7-7/site-monitor/internal/service"
	"github.com/Roma7-7-7/site-monitor/internal/service/mocks"
	"github.com/Roma7-7-7/site-monitor/pkg/clock"
)

const (
	siteA = "https://a.example"
	siteB = "https://b.example"
)

type monitorMocks struct {
	prober   *mocks.MockProber
	loader   *mocks.MockSubscribersLoader
	notifier *mocks.MockNotifier
	checks   *mocks.MockChecksStore
}

func newMonitor(ctrl *gomock.Controller, state *service.State, c service.Clock, endpoints ...string) (*service.Monitor, monitorMocks) {
	m := monitorMocks{
		prober:   mocks.NewMockProber(ctrl),
		loader:   mocks.NewMockSubscribersLoader(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		checks:   mocks.NewMockChecksStore(ctrl),
	}
	return service.NewMonitor(service.MonitorConfig{
		Endpoints:   endpoints,
		Interval:    4 * time.Hour,
		Concurrency: 2,
		Location:    msk,
	}, m.prober, m.loader, m.notifier, m.checks, state, c, nil, slog.New(slog.DiscardHandler)), m
}

func TestMonitor_RunCycle(t *testing.T) {
	now := time.Date(2026, time.January, 15, 10, 0, 5, 0, time.UTC)
	healthyA := testutil.NewOutcome(siteA).WithCheckedAt(now).Build()
	healthyB := testutil.NewOutcome(siteB).WithCheckedAt(now).Build()
	brokenB := testutil.NewOutcome(siteB).WithCode(503).WithCheckedAt(now).Build()
	timedOutB := testutil.NewOutcome(siteB).Unreachable("context deadline exceeded").WithCheckedAt(now).Build()

	tests := []struct {
		name    string
		setup   func(*testing.T, monitorMocks)
		want    dal.Digest
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "problem_notifies_subscribers",
			setup: func(t *testing.T, m monitorMocks) {
				t.Helper()
				want := testutil.NewDigest(now).WithOutcomes(healthyA, brokenB).Build()
				m.loader.EXPECT().Load().Return(dal.NewSubscriberSet(chatID), nil)
				m.prober.EXPECT().Probe(gomock.Any(), siteA).Return(healthyA)
				m.prober.EXPECT().Probe(gomock.Any(), siteB).Return(brokenB)
				m.checks.EXPECT().PutLastCheck(testutil.NewDigestMatcher(t, want)).Return(nil)
				m.notifier.EXPECT().NotifyAll(gomock.Any(), `Дата и время последней проверки - 15.01.2026 13:00:05 MSK

❌ Проблемы:
503 - https://b.example

✅ Успешно:
200 - https://a.example
`, dal.NewSubscriberSet(chatID)).Return(nil)
			},
			want:    testutil.NewDigest(now).WithOutcomes(healthyA, brokenB).Build(),
			wantErr: assert.NoError,
		},
		{
			name: "all_healthy_no_notification",
			setup: func(t *testing.T, m monitorMocks) {
				t.Helper()
				m.loader.EXPECT().Load().Return(dal.NewSubscriberSet(chatID), nil)
				m.prober.EXPECT().Probe(gomock.Any(), siteA).Return(healthyA)
				m.prober.EXPECT().Probe(gomock.Any(), siteB).Return(healthyB)
				m.checks.EXPECT().PutLastCheck(gomock.Any()).Return(nil)
			},
			want:    testutil.NewDigest(now).WithOutcomes(healthyA, healthyB).Build(),
			wantErr: assert.NoError,
		},
		{
			name: "probe_timeout_is_a_problem",
			setup: func(t *testing.T, m monitorMocks) {
				t.Helper()
				m.loader.EXPECT().Load().Return(dal.NewSubscriberSet(chatID), nil)
				m.prober.EXPECT().Probe(gomock.Any(), siteA).Return(healthyA)
				m.prober.EXPECT().Probe(gomock.Any(), siteB).Return(timedOutB)
				m.checks.EXPECT().PutLastCheck(gomock.Any()).Return(nil)
				m.notifier.EXPECT().NotifyAll(gomock.Any(), gomock.Any(), dal.NewSubscriberSet(chatID)).
					DoAndReturn(func(_ context.Context, msg string, _ dal.SubscriberSet) error {
						assert.Contains(t, msg, "нет соединения - https://b.example (context deadline exceeded)")
						return nil
					})
			},
			want:    testutil.NewDigest(now).WithOutcomes(healthyA, timedOutB).Build(),
			wantErr: assert.NoError,
		},
		{
			name: "no_subscribers",
			setup: func(t *testing.T, m monitorMocks) {
				t.Helper()
				m.loader.EXPECT().Load().Return(dal.NewSubscriberSet(), nil)
				m.prober.EXPECT().Probe(gomock.Any(), siteA).Return(healthyA)
				m.prober.EXPECT().Probe(gomock.Any(), siteB).Return(brokenB)
				m.checks.EXPECT().PutLastCheck(gomock.Any()).Return(nil)
				m.notifier.EXPECT().NotifyAll(gomock.Any(), gomock.Any(), dal.NewSubscriberSet()).Return(nil)
			},
			want:    testutil.NewDigest(now).WithOutcomes(healthyA, brokenB).Build(),
			wantErr: assert.NoError,
		},
		{
			name: "snapshot_error_reported_to_admin",
			setup: func(t *testing.T, m monitorMocks) {
				t.Helper()
				m.loader.EXPECT().Load().Return(dal.NewSubscriberSet(chatID), nil)
				m.prober.EXPECT().Probe(gomock.Any(), siteA).Return(healthyA)
				m.prober.EXPECT().Probe(gomock.Any(), siteB).Return(healthyB)
				m.checks.EXPECT().PutLastCheck(gomock.Any()).Return(assert.AnError)
				m.notifier.EXPECT().NotifyAdmin(gomock.Any(), gomock.Any()).Return(nil)
			},
			want:    testutil.NewDigest(now).WithOutcomes(healthyA, healthyB).Build(),
			wantErr: assert.NoError,
		},
		{
			name: "delivery_error_reported_to_admin",
			setup: func(t *testing.T, m monitorMocks) {
				t.Helper()
				m.loader.EXPECT().Load().Return(dal.NewSubscriberSet(chatID), nil)
				m.prober.EXPECT().Probe(gomock.Any(), siteA).Return(healthyA)
				m.prober.EXPECT().Probe(gomock.Any(), siteB).Return(brokenB)
				m.checks.EXPECT().PutLastCheck(gomock.Any()).Return(nil)
				m.notifier.EXPECT().NotifyAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&service.DeliveryError{Err: service.ErrTransportUnavailable})
				m.notifier.EXPECT().NotifyAdmin(gomock.Any(), gomock.Any()).
					Return(&service.DeliveryError{ChatID: adminChatID, Err: service.ErrTransportUnavailable})
			},
			want:    testutil.NewDigest(now).WithOutcomes(healthyA, brokenB).Build(),
			wantErr: testutil.AssertErrorIsAndContains(service.ErrTransportUnavailable, "deliver message: "),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			state := service.NewState()
			c := clock.NewMock(now)
			monitor, m := newMonitor(ctrl, state, c, siteA, siteB)
			tt.setup(t, m)

			got, err := monitor.RunCycle(t.Context())
			if !tt.wantErr(t, err) {
				return
			}
			testutil.NewDigestMatcher(t, tt.want).Matches(got)

			last, ok := state.LastCheck()
			require.True(t, ok)
			testutil.NewDigestMatcher(t, tt.want).Matches(last)
			assert.Equal(t, now, state.LastCycleAt())
		})
	}
}

func TestMonitor_RunCycle_StoreErrorUsesLastKnownSubscribers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.January, 15, 10, 0, 5, 0, time.UTC)
	state := service.NewState()
	state.SetSubscribers(dal.NewSubscriberSet(1, 2))
	monitor, m := newMonitor(ctrl, state, clock.NewMock(now), siteA)

	m.loader.EXPECT().Load().Return(nil, &service.StoreError{Op: "load subscribers", Err: dal.ErrMalformedStore})
	m.notifier.EXPECT().NotifyAdmin(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg string) error {
		assert.True(t, strings.HasPrefix(msg, "Не удалось прочитать список подписчиков"))
		return nil
	})
	m.prober.EXPECT().Probe(gomock.Any(), siteA).Return(testutil.NewOutcome(siteA).WithCode(500).Build())
	m.checks.EXPECT().PutLastCheck(gomock.Any()).Return(nil)
	m.notifier.EXPECT().NotifyAll(gomock.Any(), gomock.Any(), dal.NewSubscriberSet(1, 2)).Return(nil)

	_, err := monitor.RunCycle(t.Context())
	require.NoError(t, err)
}

func TestMonitor_RunCycle_OrderFollowsEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.January, 15, 10, 0, 5, 0, time.UTC)
	const n = 8
	endpoints := make([]string, n)
	for i := range endpoints {
		endpoints[i] = fmt.Sprintf("https://s%d.example", i)
	}

	m := monitorMocks{
		prober:   mocks.NewMockProber(ctrl),
		loader:   mocks.NewMockSubscribersLoader(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		checks:   mocks.NewMockChecksStore(ctrl),
	}
	monitor := service.NewMonitor(service.MonitorConfig{
		Endpoints:   endpoints,
		Interval:    4 * time.Hour,
		Concurrency: n,
		Location:    msk,
	}, m.prober, m.loader, m.notifier, m.checks, service.NewState(), clock.NewMock(now), nil, slog.New(slog.DiscardHandler))

	var (
		mx       sync.Mutex
		finished []string
	)
	for i, url := range endpoints {
		code := 200
		if i%2 == 0 {
			code = 503
		}
		delay := time.Duration(n-i) * 15 * time.Millisecond
		m.prober.EXPECT().Probe(gomock.Any(), url).DoAndReturn(func(context.Context, string) dal.Outcome {
			time.Sleep(delay)
			mx.Lock()
			finished = append(finished, url)
			mx.Unlock()
			return testutil.NewOutcome(url).WithCode(code).Build()
		})
	}
	m.loader.EXPECT().Load().Return(dal.NewSubscriberSet(chatID), nil)
	m.checks.EXPECT().PutLastCheck(gomock.Any()).Return(nil)
	m.notifier.EXPECT().NotifyAll(gomock.Any(), gomock.Any(), dal.NewSubscriberSet(chatID)).Return(nil)

	got, err := monitor.RunCycle(t.Context())
	require.NoError(t, err)

	require.Len(t, finished, n)
	assert.Equal(t, endpoints[n-1], finished[0], "slowest endpoint is configured first")

	urls := func(outcomes []dal.Outcome) []string {
		res := make([]string, 0, len(outcomes))
		for _, o := range outcomes {
			res = append(res, o.URL)
		}
		return res
	}
	assert.Equal(t, []string{endpoints[0], endpoints[2], endpoints[4], endpoints[6]}, urls(got.Problems))
	assert.Equal(t, []string{endpoints[1], endpoints[3], endpoints[5], endpoints[7]}, urls(got.Successful))
}

func TestMonitor_RunCycle_Panic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.January, 15, 10, 0, 5, 0, time.UTC)
	state := service.NewState()
	monitor, m := newMonitor(ctrl, state, clock.NewMock(now), siteA)

	m.loader.EXPECT().Load().Return(dal.NewSubscriberSet(chatID), nil)
	m.prober.EXPECT().Probe(gomock.Any(), siteA).DoAndReturn(func(context.Context, string) dal.Outcome {
		panic("boom")
	})
	m.notifier.EXPECT().NotifyAdmin(gomock.Any(), "Непредвиденная ошибка во время проверки: boom").Return(nil)

	_, err := monitor.RunCycle(t.Context())

	var unexpected *service.UnexpectedError
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, "boom", unexpected.Cause)
	assert.NotEmpty(t, unexpected.Stack)

	_, ok := state.LastCheck()
	assert.False(t, ok)
	assert.Equal(t, now, state.LastCycleAt())
}

func TestMonitor_Run_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(t.Context())
	monitor, m := newMonitor(ctrl, service.NewState(), clock.NewMock(time.Now()), siteA)

	m.loader.EXPECT().Load().Return(dal.NewSubscriberSet(), nil)
	m.prober.EXPECT().Probe(gomock.Any(), siteA).Return(testutil.NewOutcome(siteA).Build())
	m.checks.EXPECT().PutLastCheck(gomock.Any()).DoAndReturn(func(dal.Digest) error {
		cancel()
		return nil
	})

	done := make(chan struct{})
	go func() {
		monitor.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("monitor did not stop after cancel")
	}
}

func TestMonitor_Restore(t *testing.T) {
	now := time.Date(2026, time.January, 15, 10, 0, 5, 0, time.UTC)
	saved := testutil.NewDigest(now).WithOutcomes(testutil.NewOutcome(siteA).Build()).Build()

	t.Run("restored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		state := service.NewState()
		monitor, m := newMonitor(ctrl, state, clock.NewMock(now), siteA)
		m.checks.EXPECT().GetLastCheck().Return(saved, true, nil)

		require.NoError(t, monitor.Restore(t.Context()))
		got, ok := state.LastCheck()
		require.True(t, ok)
		assert.Equal(t, saved, got)
	})

	t.Run("nothing_saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		state := service.NewState()
		monitor, m := newMonitor(ctrl, state, clock.NewMock(now), siteA)
		m.checks.EXPECT().GetLastCheck().Return(dal.Digest{}, false, nil)

		require.NoError(t, monitor.Restore(t.Context()))
		_, ok := state.LastCheck()
		assert.False(t, ok)
	})

	t.Run("error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		monitor, m := newMonitor(ctrl, service.NewState(), clock.NewMock(now), siteA)
		m.checks.EXPECT().GetLastCheck().Return(dal.Digest{}, false, assert.AnError)

		err := monitor.Restore(t.Context())
		require.ErrorIs(t, err, assert.AnError)
		assert.ErrorContains(t, err, "get last check: ")
	})
}

func TestMonitor_Texts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.January, 15, 10, 0, 5, 0, time.UTC)
	state := service.NewState()
	monitor, _ := newMonitor(ctrl, state, clock.NewMock(now), siteA, siteB)

	text, err := monitor.LastCheckText()
	require.NoError(t, err)
	assert.Equal(t, "Проверка ещё не проводилась. Результаты появятся после первого цикла.", text)

	state.SetLastCheck(testutil.NewDigest(now).WithOutcomes(testutil.NewOutcome(siteA).Build()).Build())
	text, err = monitor.LastCheckText()
	require.NoError(t, err)
	assert.Equal(t, "Дата и время последней проверки - 15.01.2026 13:00:05 MSK\n\n✅ Успешно:\n200 - https://a.example\n", text)

	text, err = monitor.SettingsText()
	require.NoError(t, err)
	assert.Equal(t, "Список проверяемых сайтов:\nhttps://a.example\nhttps://b.example\nПериодичность проверки - 1 р. в 4 ч.", text)
}

func TestMonitor_Health(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.January, 15, 10, 0, 5, 0, time.UTC)
	c := clock.NewMock(now)
	state := service.NewState()
	monitor, _ := newMonitor(ctrl, state, c, siteA)

	require.NoError(t, monitor.Health(t.Context()))

	c.Advance(9 * time.Hour)
	assert.ErrorContains(t, monitor.Health(t.Context()), "no check cycle finished since start")

	state.SetLastCycleAt(c.Now())
	c.Advance(4 * time.Hour)
	require.NoError(t, monitor.Health(t.Context()))

	c.Advance(5 * time.Hour)
	assert.ErrorContains(t, monitor.Health(t.Context()), "last check cycle finished 9h0m0s ago")
}
