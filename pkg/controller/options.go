package controller

import "github.com/shouni/gemini-wallpaper-kit/pkg/domain"

// Option は Controller の設定を変更します。
type Option func(*Controller)

// WithCatalog はテーマカタログを差し替えます。初期選択はこのカタログの先頭テーマになります。
func WithCatalog(catalog domain.ThemeCatalog) Option {
	return func(c *Controller) {
		c.catalog = catalog
	}
}

// WithTicker はクールダウンの Ticker 生成関数を差し替えます。
func WithTicker(fn NewTickerFunc) Option {
	return func(c *Controller) {
		if fn != nil {
			c.newTicker = fn
		}
	}
}
