package server

import (
	"context"
	"time"

	"github.com/shouni/gemini-wallpaper-kit/pkg/controller"
	"github.com/shouni/gemini-wallpaper-kit/pkg/domain"
)

// --- Mocks ---

type mockGenerator struct {
	calls        int
	generateFunc func(ctx context.Context, prompt string, aspectRatio domain.AspectRatio) (string, error)
}

func (m *mockGenerator) GenerateWallpaper(ctx context.Context, prompt string, aspectRatio domain.AspectRatio) (string, error) {
	m.calls++
	if m.generateFunc != nil {
		return m.generateFunc(ctx, prompt, aspectRatio)
	}
	return "data:image/jpeg;base64,QUJD", nil
}

// chanTicker はテストが明示的に送るまで tick しない Ticker です。
type chanTicker struct {
	ch chan time.Time
}

func (t *chanTicker) C() <-chan time.Time { return t.ch }
func (t *chanTicker) Stop() {}

func newTestController(gen *mockGenerator) (*controller.Controller, *chanTicker) {
	ticker := &chanTicker{ch: make(chan time.Time)}
	ctrl := controller.New(gen, controller.WithTicker(func(time.Duration) controller.Ticker { return ticker }))
	return ctrl, ticker
}

// drain はクールダウンを最後まで進めます。
func (t *chanTicker) drain(ctrl *controller.Controller) {
	for i := 0; i < controller.CooldownSeconds; i++ {
		t.ch <- time.Now()
	}
	ctrl.Wait()
}
