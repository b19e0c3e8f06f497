package server

import (
	"context"
	"net/http"
	"time"
)

// Timeouts は HTTP サーバーのタイムアウト設定です。
type Timeouts struct {
	Read  time.Duration
	Write time.Duration
	Idle  time.Duration
}

// HTTPServer は http.Server の起動と停止をまとめたラッパーです。
type HTTPServer struct {
	server *http.Server
}

// NewHTTPServer は設定済みの HTTPServer を作成します。
// WriteTimeout は画像生成の待ち時間より長くしておく必要があります。
func NewHTTPServer(addr string, handler http.Handler, t Timeouts) *HTTPServer {
	return &HTTPServer{server: &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       t.Read,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      t.Write,
		IdleTimeout:       t.Idle,
	}}
}

// Start は現在の goroutine でサーバーを起動します。
func (s *HTTPServer) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown はサーバーを停止します。
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
