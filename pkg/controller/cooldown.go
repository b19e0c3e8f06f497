package controller

import (
	"log/slog"

	"github.com/shouni/gemini-wallpaper-kit/pkg/domain"
)

// startCooldownLocked はクールダウンを開始し、カウントダウン用の goroutine を起動します。
// 呼び出し時に c.mu を保持している必要があります。
func (c *Controller) startCooldownLocked() {
	c.cooldown = domain.CooldownState{Active: true, SecondsRemaining: CooldownSeconds}
	ticker := c.newTicker(CooldownTick)

	c.wg.Add(1)
	go c.runCooldown(ticker)
}

// runCooldown は tick ごとに残り秒数を1減らし、0 になったら終了します。途中で止める手段はありません。
func (c *Controller) runCooldown(ticker Ticker) {
	defer c.wg.Done()
	defer ticker.Stop()

	for range ticker.C() {
		c.mu.Lock()
		done := tickCooldown(&c.cooldown)
		snap, version := c.publishLocked()
		c.mu.Unlock()

		c.notify(snap, version)
		if done {
			slog.Debug("クールダウンが終了しました")
			return
		}
	}
}

// tickCooldown は残り秒数を1進め、クールダウンが終わったら true を返します。
func tickCooldown(s *domain.CooldownState) bool {
	if !s.Active {
		return true
	}
	s.SecondsRemaining--
	if s.SecondsRemaining <= 0 {
		*s = domain.CooldownState{}
		return true
	}
	return false
}
