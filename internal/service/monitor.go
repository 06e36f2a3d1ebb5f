package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Roma7-7-7/site-monitor/internal/dal"
	"github.com/Roma7-7-7/site-monitor/internal/obs"
)

//go:generate mockgen -package mocks -destination mocks/monitor.go . Prober,ChecksStore,Notifier,SubscribersLoader

const (
	DefaultProbeConcurrency = 4

	msgAdminStoreError    = "Не удалось прочитать список подписчиков: %v. Рассылка идёт по последнему известному списку (%d)."
	msgAdminSnapshotError = "Не удалось сохранить результаты проверки: %v"
	msgAdminDeliveryError = "Не удалось разослать результаты проверки: %v"
	msgAdminUnexpected    = "Непредвиденная ошибка во время проверки: %v"
)

type (
	Prober interface {
		Probe(ctx context.Context, url string) dal.Outcome
	}

	ChecksStore interface {
		GetLastCheck() (dal.Digest, bool, error)
		PutLastCheck(d dal.Digest) error
	}

	Notifier interface {
		NotifyAll(ctx context.Context, msg string, recipients dal.SubscriberSet) error
		NotifyAdmin(ctx context.Context, msg string) error
	}

	SubscribersLoader interface {
		Load() (dal.SubscriberSet, error)
	}

	Clock interface {
		Now() time.Time
	}

	MonitorConfig struct {
		Endpoints   []string
		Interval    time.Duration
		Concurrency int
		Location    *time.Location
	}

	Monitor struct {
		endpoints   []string
		interval    time.Duration
		concurrency int
		loc         *time.Location

		prober        Prober
		subscriptions SubscribersLoader
		notifier      Notifier
		checks        ChecksStore
		state         *State
		clock         Clock
		metrics       *obs.Metrics

		startedAt time.Time
		log       *slog.Logger
		mx        *sync.Mutex
	}
)

type loopState int

const (
	stateCycle loopState = iota
	stateSleeping
)

func NewMonitor(
	conf MonitorConfig,
	prober Prober,
	subscriptions SubscribersLoader,
	notifier Notifier,
	checks ChecksStore,
	state *State,
	clock Clock,
	metrics *obs.Metrics,
	log *slog.Logger,
) *Monitor {
	if conf.Concurrency <= 0 {
		conf.Concurrency = DefaultProbeConcurrency
	}
	if conf.Location == nil {
		conf.Location = time.Local
	}
	return &Monitor{
		endpoints:   append([]string(nil), conf.Endpoints...),
		interval:    conf.Interval,
		concurrency: conf.Concurrency,
		loc:         conf.Location,

		prober:        prober,
		subscriptions: subscriptions,
		notifier:      notifier,
		checks:        checks,
		state:         state,
		clock:         clock,
		metrics:       metrics,

		startedAt: clock.Now(),
		log:       log.With("component", "service").With("service", "monitor"),
		mx:        &sync.Mutex{},
	}
}

// Restore loads the digest persisted by a previous process, so last check
// is available right after restart.
func (m *Monitor) Restore(ctx context.Context) error {
	d, ok, err := m.checks.GetLastCheck()
	if err != nil {
		return &StoreError{Op: "get last check", Err: err}
	}
	if !ok {
		m.log.DebugContext(ctx, "No previous check to restore")
		return nil
	}

	if _, has := m.state.LastCheck(); !has {
		m.state.SetLastCheck(d)
		m.log.InfoContext(ctx, "Restored last check", "checkedAt", d.CheckedAt, "problems", len(d.Problems))
	}
	return nil
}

// Run checks endpoints right away and then once every interval until ctx is done.
// Cycle failures are reported and never stop the loop.
func (m *Monitor) Run(ctx context.Context) {
	defer func() {
		m.log.InfoContext(ctx, "Stopped check schedule")
	}()
	m.log.InfoContext(ctx, "Starting check schedule", "endpoints", len(m.endpoints), "interval", m.interval)

	state := stateCycle
	for {
		switch state {
		case stateCycle:
			if _, err := m.RunCycle(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				m.log.WarnContext(ctx, "Check cycle finished with error", "error", err)
			}
			state = stateSleeping
		case stateSleeping:
			select {
			case <-ctx.Done():
				return
			case <-time.After(m.interval):
				state = stateCycle
			}
		}
	}
}

// RunCycle probes every endpoint once, stores the digest as the last result and
// sends it to subscribers when any endpoint has a problem.
func (m *Monitor) RunCycle(ctx context.Context) (digest dal.Digest, err error) {
	m.mx.Lock()
	defer m.mx.Unlock()

	defer func() {
		if r := recover(); r != nil {
			err = m.unexpected(ctx, &UnexpectedError{Cause: r, Stack: debug.Stack()})
		}
	}()

	checkedAt := m.clock.Now()
	log := m.log.With("checkedAt", checkedAt)
	log.InfoContext(ctx, "Check cycle started")

	subscribers := m.loadSubscribers(ctx)
	outcomes, err := m.probeAll(ctx, checkedAt)
	if err != nil {
		var unexpected *UnexpectedError
		if errors.As(err, &unexpected) {
			return dal.Digest{}, m.unexpected(ctx, unexpected)
		}
		return dal.Digest{}, err
	}
	if err := ctx.Err(); err != nil {
		return dal.Digest{}, fmt.Errorf("probe endpoints: %w", err)
	}

	digest = BuildDigest(checkedAt, outcomes)
	m.state.SetLastCheck(digest)
	if err := m.checks.PutLastCheck(digest); err != nil {
		log.ErrorContext(ctx, "Failed to persist last check", "error", err)
		m.notifyAdmin(ctx, fmt.Sprintf(msgAdminSnapshotError, err))
	}

	if !digest.HasProblems() {
		log.InfoContext(ctx, "Check cycle finished, all endpoints are healthy", "endpoints", digest.Len())
		m.finishCycle("ok")
		return digest, nil
	}

	log.WarnContext(ctx, "Check cycle found problems", "problems", len(digest.Problems), "endpoints", digest.Len())
	text, err := RenderDigest(digest, m.loc)
	if err != nil {
		panic(err)
	}
	if err := m.notifier.NotifyAll(ctx, text, subscribers); err != nil {
		m.finishCycle("failed")
		if errors.Is(err, context.Canceled) {
			return digest, err
		}
		log.ErrorContext(ctx, "Failed to notify subscribers", "error", err)
		m.notifyAdmin(ctx, fmt.Sprintf(msgAdminDeliveryError, err))
		return digest, err
	}

	m.finishCycle("problems")
	return digest, nil
}

// Health fails when no cycle has finished for two intervals
func (m *Monitor) Health(_ context.Context) error {
	last := m.state.LastCycleAt()
	ref := last
	if ref.IsZero() {
		ref = m.startedAt
	}

	if since := m.clock.Now().Sub(ref); since > 2*m.interval {
		if last.IsZero() {
			return fmt.Errorf("no check cycle finished since start %s ago", since.Truncate(time.Second))
		}
		return fmt.Errorf("last check cycle finished %s ago", since.Truncate(time.Second))
	}
	return nil
}

// LastCheckText renders the last digest or a placeholder when no cycle has finished yet
func (m *Monitor) LastCheckText() (string, error) {
	d, _ := m.state.LastCheck()
	return RenderDigest(d, m.loc)
}

func (m *Monitor) SettingsText() (string, error) {
	return RenderSettings(m.endpoints, m.interval)
}

func (m *Monitor) loadSubscribers(ctx context.Context) dal.SubscriberSet {
	subs, err := m.subscriptions.Load()
	if err == nil {
		m.metrics.SetSubscribers(len(subs))
		return subs
	}

	fallback := m.state.Subscribers()
	m.log.ErrorContext(ctx, "Failed to load subscribers, using last known", "error", err, "fallback", len(fallback))
	m.notifyAdmin(ctx, fmt.Sprintf(msgAdminStoreError, err, len(fallback)))
	return fallback
}

// probeAll writes results by endpoint index, so order follows the configuration
// and not completion time. A panicking probe is returned as *UnexpectedError.
func (m *Monitor) probeAll(ctx context.Context, checkedAt time.Time) ([]dal.Outcome, error) {
	res := make([]dal.Outcome, len(m.endpoints))

	var g errgroup.Group
	g.SetLimit(m.concurrency)
	for i, url := range m.endpoints {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &UnexpectedError{Cause: r, Stack: debug.Stack()}
				}
			}()

			o := m.prober.Probe(ctx, url)
			o.URL = url
			o.CheckedAt = checkedAt
			res[i] = o

			m.metrics.ObserveProbe(o)
			if failure := o.Failure(); failure != nil {
				m.log.WarnContext(ctx, "Endpoint check failed", "url", url, "error", failure)
			} else {
				m.log.DebugContext(ctx, "Endpoint is healthy", "url", url, "latency", o.Latency)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}

func (m *Monitor) unexpected(ctx context.Context, err *UnexpectedError) error {
	m.log.ErrorContext(ctx, "Check cycle panicked", "error", err, "stack", string(err.Stack))
	m.notifyAdmin(ctx, fmt.Sprintf(msgAdminUnexpected, err.Cause))
	m.finishCycle("failed")
	return err
}

func (m *Monitor) notifyAdmin(ctx context.Context, msg string) {
	if err := m.notifier.NotifyAdmin(ctx, msg); err != nil {
		m.log.ErrorContext(ctx, "Failed to notify admin", "error", err)
	}
}

func (m *Monitor) finishCycle(result string) {
	now := m.clock.Now()
	m.state.SetLastCycleAt(now)
	m.metrics.ObserveCycle(result, now)
}
