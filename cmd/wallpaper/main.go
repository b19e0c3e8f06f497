package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shouni/gemini-wallpaper-kit/pkg/config"
	"github.com/shouni/gemini-wallpaper-kit/pkg/controller"
	"github.com/shouni/gemini-wallpaper-kit/pkg/domain"
	"github.com/shouni/gemini-wallpaper-kit/pkg/generator"
	"github.com/shouni/gemini-wallpaper-kit/pkg/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gen := generator.NewGeminiWallpaperGenerator(ctx, cfg.GeminiAPIKey, cfg.ImageModel)
	slog.Info("画像生成クライアントを準備しました", "model", gen.Model(), "ready", gen.Ready())

	ctrl := controller.New(gen)
	unsubscribe := ctrl.Subscribe(func(s domain.Snapshot) {
		slog.Debug("状態が更新されました",
			"status", s.Status,
			"aspect_ratio", s.Selection.AspectRatio,
			"theme", s.Selection.ThemeName(),
			"on_cooldown", s.OnCooldown,
			"cooldown_seconds", s.CooldownSeconds,
		)
	})
	defer unsubscribe()

	srv := server.NewHTTPServer(cfg.Addr(), server.NewRouter(ctrl), server.Timeouts{
		Read:  cfg.HTTPReadTimeout,
		Write: cfg.HTTPWriteTimeout,
		Idle:  cfg.HTTPIdleTimeout,
	})

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTPサーバーを起動します", "addr", cfg.Addr())
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		slog.Error("HTTPサーバーが異常終了しました", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTPサーバーの停止に失敗しました", "error", err)
	}
	if err := ctrl.WaitContext(shutdownCtx); err != nil {
		slog.Warn("クールダウンの終了を待たずに停止します", "error", err)
	}
	slog.Info("サーバーを停止しました")
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.IsDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
