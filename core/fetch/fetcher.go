package fetch

import (
	"context"
	"sync"
	"sync/atomic"
)

// Producer is a zero-argument asynchronous data source. It may return a
// bare value or an enveloped response (see package doc). Producers are
// identity-unstable: callers may pass a fresh closure on every render,
// and the fetcher guarantees the latest one is invoked at most once per
// explicit trigger, never once per SetProducer call.
type Producer func(ctx context.Context) (any, error)

// State is a point-in-time snapshot of a fetcher. It is owned by exactly
// one consumer; there is no sharing or cross-invalidation between
// fetchers.
type State[T any] struct {
	Data    *T
	Loading bool
	Err     string
}

// payloadCarrier is the runtime type guard for enveloped results.
type payloadCarrier interface {
	Payload() (any, bool)
}

type config struct {
	autoFetch bool
	notify    func()
}

// Option configures a Fetcher.
type Option func(*config)

// WithAutoFetch controls whether Mount triggers the initial fetch.
// Enabled by default.
func WithAutoFetch(enabled bool) Option {
	return func(c *config) {
		c.autoFetch = enabled
	}
}

// WithNotify sets a hook invoked after every state change, typically to
// signal a re-render.
func WithNotify(fn func()) Option {
	return func(c *config) {
		c.notify = fn
	}
}

// Fetcher drives a single producer and owns its fetch state.
type Fetcher[T any] struct {
	producer  atomic.Pointer[Producer]
	cfg       config
	mountGate sync.Once

	mu      sync.Mutex
	data    *T
	loading bool
	errMsg  string
}

// New creates a fetcher for the given producer.
func New[T any](producer Producer, opts ...Option) *Fetcher[T] {
	f := &Fetcher[T]{cfg: config{autoFetch: true}}
	for _, opt := range opts {
		opt(&f.cfg)
	}
	if producer != nil {
		f.producer.Store(&producer)
	}
	return f
}

// SetProducer replaces the producer invoked by subsequent triggers. It
// never triggers a fetch itself, so callers can safely hand over a new
// closure on every render.
func (f *Fetcher[T]) SetProducer(producer Producer) {
	if producer != nil {
		f.producer.Store(&producer)
	}
}

// Mount fires the initial auto-fetch. No matter how many times it is
// called over the fetcher's lifetime, the producer runs at most once
// from here; explicit Fetch calls are unaffected. The result is
// observable through State, matching a fire-and-forget mount effect.
func (f *Fetcher[T]) Mount(ctx context.Context) {
	f.mountGate.Do(func() {
		if f.cfg.autoFetch {
			_, _ = f.Fetch(ctx)
		}
	})
}

// Fetch invokes the latest producer and records the outcome. It returns
// the raw producer result and error so callers awaiting the fetch still
// observe failures that were also recorded in the state.
//
// Overlapping calls are not deduplicated: both run, and the last one to
// complete owns the final data write. Each completion clears loading.
func (f *Fetcher[T]) Fetch(ctx context.Context) (any, error) {
	p := f.producer.Load()
	if p == nil {
		return nil, ErrNoProducer
	}

	f.mu.Lock()
	f.loading = true
	f.errMsg = ""
	f.mu.Unlock()
	f.notify()

	res, err := (*p)(ctx)
	if err == nil {
		err = f.store(res)
	}

	f.mu.Lock()
	if err != nil {
		f.errMsg = errMessage(err)
	}
	f.loading = false
	f.mu.Unlock()
	f.notify()

	return res, err
}

// Go starts a Fetch in its own goroutine and returns a future for it.
func (f *Fetcher[T]) Go(ctx context.Context) *Result {
	r := &Result{done: make(chan struct{})}
	go func() {
		defer close(r.done)
		r.val, r.err = f.Fetch(ctx)
	}()
	return r
}

// State returns a snapshot of the current fetch state.
func (f *Fetcher[T]) State() State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State[T]{Data: f.data, Loading: f.loading, Err: f.errMsg}
}

// store unwraps enveloped results and records the typed payload.
func (f *Fetcher[T]) store(res any) error {
	if c, ok := res.(payloadCarrier); ok {
		payload, present := c.Payload()
		if !present {
			// Envelope without a payload: nothing to store.
			f.mu.Lock()
			f.data = nil
			f.mu.Unlock()
			return nil
		}
		res = payload
	}

	if res == nil {
		f.mu.Lock()
		f.data = nil
		f.mu.Unlock()
		return nil
	}

	val, ok := res.(T)
	if !ok {
		return ErrUnexpectedPayload
	}

	f.mu.Lock()
	f.data = &val
	f.mu.Unlock()
	return nil
}

func (f *Fetcher[T]) notify() {
	if f.cfg.notify != nil {
		f.cfg.notify()
	}
}

func errMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallbackMessage
}

// Result is the future for a fetch started with Go.
type Result struct {
	done chan struct{}
	val  any
	err  error
}

// Await blocks until the fetch completes and returns its outcome.
func (r *Result) Await() (any, error) {
	<-r.done
	return r.val, r.err
}

// IsComplete checks completion without blocking.
func (r *Result) IsComplete() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}
