package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shouni/gemini-wallpaper-kit/pkg/controller"
	"github.com/shouni/gemini-wallpaper-kit/pkg/domain"
	"github.com/shouni/gemini-wallpaper-kit/pkg/imgutil"
)

type handler struct {
	ctrl WallpaperController
}

type errorResponse struct {
	Error string `json:"error"`
}

type generateResponse struct {
	Outcome string          `json:"outcome"`
	State   domain.Snapshot `json:"state"`
}

// selectionRequest は部分更新用です。nil のフィールドは変更しません。
type selectionRequest struct {
	AspectRatio *string `json:"aspectRatio"`
	Theme       *string `json:"theme"`
	CustomText  *string `json:"customText"`
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *handler) aspectRatios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.AspectRatioOptions())
}

func (h *handler) themes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ctrl.Catalog().Themes())
}

func (h *handler) state(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ctrl.Snapshot())
}

func (h *handler) updateSelection(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	// 不正な値が1つでもあれば何も更新しない
	u := controller.SelectionUpdate{Theme: req.Theme, CustomText: req.CustomText}
	if req.AspectRatio != nil {
		a, err := domain.ParseAspectRatio(*req.AspectRatio)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		u.AspectRatio = &a
	}

	writeJSON(w, http.StatusOK, h.ctrl.UpdateSelection(u))
}

func (h *handler) generate(w http.ResponseWriter, r *http.Request) {
	// クライアントが切断しても生成は最後まで実行する
	outcome := h.ctrl.Generate(context.WithoutCancel(r.Context()))
	snap := h.ctrl.Snapshot()

	status := http.StatusOK
	if outcome == controller.OutcomeBlocked {
		status = http.StatusTooManyRequests
		if snap.OnCooldown {
			w.Header().Set("Retry-After", strconv.Itoa(snap.CooldownSeconds))
		}
	}

	writeJSON(w, status, generateResponse{Outcome: outcome.String(), State: snap})
}

func (h *handler) image(w http.ResponseWriter, r *http.Request) {
	snap := h.ctrl.Snapshot()
	if snap.Image == "" {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no image has been generated"})
		return
	}

	mimeType, data, err := imgutil.ParseDataURI(snap.Image)
	if err != nil {
		slog.ErrorContext(r.Context(), "生成画像のデコードに失敗しました", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "stored image is corrupted"})
		return
	}

	if q := r.URL.Query().Get("quality"); q != "" {
		quality, err := strconv.Atoi(q)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid quality %q", q)})
			return
		}
		compressed, err := imgutil.CompressToJPEG(data, quality)
		if errors.Is(err, imgutil.ErrInvalidQuality) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		if err != nil {
			slog.ErrorContext(r.Context(), "JPEG再圧縮に失敗しました", "quality", quality, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to compress image"})
			return
		}
		mimeType, data = "image/jpeg", compressed
	}

	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Disposition", `attachment; filename="wallpaper.jpg"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
