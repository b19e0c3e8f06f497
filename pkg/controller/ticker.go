package controller

import "time"

// Ticker はクールダウンを1単位ずつ進める周期通知です。
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// NewTickerFunc は指定間隔の Ticker を作成します。
type NewTickerFunc func(d time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop() { t.t.Stop() }

func newTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}
