package strategy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/ef-ds/deque"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/time/rate"
)

const (
	defaultMinInterval = time.Second
	quotaWindow        = 24 * time.Hour
	breakerFailures    = 5
	breakerCooldown    = 60 * time.Second
)

// Options adjusts an online strategy. Zero values keep the strategy's own
// defaults.
type Options struct {
	BaseURL           string
	HTTPClient        *http.Client
	Logger            *zap.Logger
	Now               func() time.Time
	MinInterval       time.Duration
	MaxRequestsPerDay int
	Timeout           time.Duration
}

type settings struct {
	name        string
	priority    int
	baseURL     string
	maxLength   int
	maxPerDay   int // 0 means unlimited
	timeout     time.Duration
	minInterval time.Duration
	accept      func(original, translated string) bool
}

// online carries the state shared by every strategy that leaves the process.
type online struct {
	name      string
	priority  int
	baseURL   string
	maxLength int
	maxPerDay int
	timeout   time.Duration
	accept    func(original, translated string) bool

	client  *http.Client
	logger  *zap.Logger
	now     func() time.Time
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker

	mu       sync.Mutex
	requests *deque.Deque
	count    int
}

func newOnline(s settings, opts Options) *online {
	if opts.BaseURL != "" {
		s.baseURL = opts.BaseURL
	}
	if opts.MinInterval > 0 {
		s.minInterval = opts.MinInterval
	}
	if opts.MaxRequestsPerDay > 0 {
		s.maxPerDay = opts.MaxRequestsPerDay
	}
	if opts.Timeout > 0 {
		s.timeout = opts.Timeout
	}
	if s.accept == nil {
		s.accept = IsValidTranslation
	}

	o := &online{
		name:      s.name,
		priority:  s.priority,
		baseURL:   s.baseURL,
		maxLength: s.maxLength,
		maxPerDay: s.maxPerDay,
		timeout:   s.timeout,
		accept:    s.accept,
		client:    opts.HTTPClient,
		logger:    opts.Logger,
		now:       opts.Now,
		limiter:   rate.NewLimiter(rate.Every(s.minInterval), 1),
		requests:  deque.New(),
	}
	if o.client == nil {
		o.client = &http.Client{}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.now == nil {
		o.now = time.Now
	}

	o.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    s.name,
		Timeout: breakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			o.logger.Warn("circuit breaker state changed",
				zap.String("strategy", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
	return o
}

func (o *online) Name() string { return o.name }

func (o *online) Priority() int { return o.priority }

// CanHandle reports whether text fits the length cap, the daily quota has
// room and the circuit breaker is not open.
func (o *online) CanHandle(text string) bool {
	if strings.TrimSpace(text) == "" || utf8.RuneCountInString(text) > o.maxLength {
		return false
	}
	if o.breaker.State() == gobreaker.StateOpen {
		return false
	}
	return o.quotaLeft()
}

// RequestCount returns the number of requests made since the last reset.
func (o *online) RequestCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.count
}

// ResetRequestCount clears the request counter and the daily quota window.
func (o *online) ResetRequestCount() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.count = 0
	o.requests = deque.New()
}

func (o *online) quotaLeft() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.prune(o.now())
	return o.maxPerDay <= 0 || o.requests.Len() < o.maxPerDay
}

// prune drops request timestamps older than the quota window. Callers hold mu.
func (o *online) prune(now time.Time) {
	for {
		v, ok := o.requests.Front()
		if !ok || now.Sub(v.(time.Time)) < quotaWindow {
			return
		}
		o.requests.PopFront()
	}
}

func (o *online) reserve() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	now := o.now()
	o.prune(now)
	if o.maxPerDay > 0 && o.requests.Len() >= o.maxPerDay {
		return ErrDailyLimit
	}
	o.requests.PushBack(now)
	o.count++
	return nil
}

// release gives back the slot taken by reserve when no request was sent.
func (o *online) release() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.requests.Len() > 0 {
		o.requests.PopBack()
	}
	if o.count > 0 {
		o.count--
	}
}

// wait blocks until the minimum spacing since the previous call has passed.
func (o *online) wait(ctx context.Context) error {
	now := o.now()
	r := o.limiter.ReserveN(now, 1)
	delay := r.DelayFrom(now)
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		r.CancelAt(o.now())
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// call runs one outbound request through the quota, the spacing limiter and
// the circuit breaker, then validates what came back. On failure it returns
// text unchanged with the reason.
func (o *online) call(ctx context.Context, text string, fn func(context.Context) (string, error)) (string, error) {
	if utf8.RuneCountInString(text) > o.maxLength {
		return text, fmt.Errorf("%s: %w", o.name, ErrTooLong)
	}
	if err := o.reserve(); err != nil {
		o.logger.Info("daily request limit reached", zap.String("strategy", o.name))
		return text, fmt.Errorf("%s: %w", o.name, err)
	}
	if err := o.wait(ctx); err != nil {
		o.release()
		return text, fmt.Errorf("%s: %w", o.name, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	out, err := o.breaker.Execute(func() (interface{}, error) {
		return fn(callCtx)
	})
	if err != nil {
		o.logger.Debug("translation request failed",
			zap.String("strategy", o.name),
			zap.String("text", text),
			zap.Error(err))
		return text, fmt.Errorf("%s: %w", o.name, err)
	}

	translated := norm.NFC.String(strings.TrimSpace(out.(string)))
	if strings.EqualFold(translated, strings.TrimSpace(text)) {
		o.logger.Debug("translation unchanged",
			zap.String("strategy", o.name),
			zap.String("text", text))
		return text, fmt.Errorf("%s: %w", o.name, ErrNoChange)
	}
	if !o.accept(text, translated) {
		o.logger.Debug("translation rejected",
			zap.String("strategy", o.name),
			zap.String("text", text),
			zap.String("result", translated))
		return text, fmt.Errorf("%s: %w", o.name, ErrInvalidTranslation)
	}

	o.logger.Debug("translation succeeded",
		zap.String("strategy", o.name),
		zap.String("text", text),
		zap.String("result", translated))
	return translated, nil
}

// doJSON sends req and decodes a 200 response body into out.
func (o *online) doJSON(req *http.Request, out interface{}) error {
	resp, err := o.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Strategy: o.name, Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
