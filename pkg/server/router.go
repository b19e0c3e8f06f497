package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shouni/gemini-wallpaper-kit/pkg/controller"
	"github.com/shouni/gemini-wallpaper-kit/pkg/domain"
)

// WallpaperController は HTTP 層が利用するコントローラーの操作です。
type WallpaperController interface {
	Snapshot() domain.Snapshot
	Catalog() domain.ThemeCatalog
	UpdateSelection(u controller.SelectionUpdate) domain.Snapshot
	Generate(ctx context.Context) controller.Outcome
}

// NewRouter は UI 向けの JSON API を構築します。
func NewRouter(ctrl WallpaperController) http.Handler {
	h := &handler{ctrl: ctrl}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, requestLogger)

	r.Get("/healthz", h.health)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/aspect-ratios", h.aspectRatios)
		r.Get("/themes", h.themes)
		r.Get("/state", h.state)
		r.Put("/selection", h.updateSelection)
		r.Post("/generate", h.generate)
		r.Get("/image", h.image)
	})

	return r
}
