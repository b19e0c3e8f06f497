package controller

import (
	"context"
	"sync"
	"time"

	"github.com/shouni/gemini-wallpaper-kit/pkg/domain"
)

// --- Mocks ---

type generateCall struct {
	prompt      string
	aspectRatio domain.AspectRatio
}

// mockGenerator は generator.WallpaperGenerator のテスト用モックです。
type mockGenerator struct {
	mu           sync.Mutex
	calls        []generateCall
	generateFunc func(ctx context.Context, prompt string, aspectRatio domain.AspectRatio) (string, error)
}

func (m *mockGenerator) GenerateWallpaper(ctx context.Context, prompt string, aspectRatio domain.AspectRatio) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, generateCall{prompt: prompt, aspectRatio: aspectRatio})
	fn := m.generateFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, prompt, aspectRatio)
	}
	return "data:image/jpeg;base64,QUJD", nil
}

func (m *mockGenerator) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockGenerator) lastCall() generateCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[len(m.calls)-1]
}

// manualTicker はテストから tick を手動で送る Ticker です。
type manualTicker struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (t *manualTicker) C() <-chan time.Time { return t.ch }

func (t *manualTicker) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
}

func (t *manualTicker) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// tickerFactory は作成した manualTicker を記録します。
type tickerFactory struct {
	mu       sync.Mutex
	tickers  []*manualTicker
	interval time.Duration
}

func (f *tickerFactory) newTicker(d time.Duration) Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &manualTicker{ch: make(chan time.Time)}
	f.tickers = append(f.tickers, t)
	f.interval = d
	return t
}

func (f *tickerFactory) last() *manualTicker {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tickers[len(f.tickers)-1]
}

func (f *tickerFactory) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tickers)
}

// tickN は n 回 tick を送ります。
func (t *manualTicker) tickN(n int) {
	for i := 0; i < n; i++ {
		t.ch <- time.Now()
	}
}

// recorder は通知された Snapshot を記録するオブザーバーです。
type recorder struct {
	mu    sync.Mutex
	snaps []domain.Snapshot
}

func (r *recorder) observe(s domain.Snapshot) {
	r.mu.Lock()
	r.snaps = append(r.snaps, s)
	r.mu.Unlock()
}

func (r *recorder) all() []domain.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Snapshot, len(r.snaps))
	copy(out, r.snaps)
	return out
}
