package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/gemini-wallpaper-kit/pkg/domain"
	"github.com/shouni/gemini-wallpaper-kit/pkg/imgutil"
	"google.golang.org/genai"
)

// GeminiWallpaperGenerator は Imagen API で壁紙を1枚生成するクライアントです。
// imageModel が nil の場合は未初期化状態で、すべての呼び出しが ErrNotInitialized になります。
type GeminiWallpaperGenerator struct {
	imageModel ImageModel
	model      string
}

var _ WallpaperGenerator = (*GeminiWallpaperGenerator)(nil)

// NewGeminiWallpaperGenerator は APIキーから genai クライアントを作成して初期化します。
// キーが空、またはクライアントの作成に失敗した場合もエラーにはせず、未初期化のまま返します。
func NewGeminiWallpaperGenerator(ctx context.Context, apiKey, model string) *GeminiWallpaperGenerator {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		slog.ErrorContext(ctx, "APIキーが見つかりません。GEMINI_API_KEY を設定してください")
		return NewWallpaperGenerator(nil, model)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		slog.ErrorContext(ctx, "genai クライアントの初期化に失敗しました", "error", err)
		return NewWallpaperGenerator(nil, model)
	}

	return NewWallpaperGenerator(client.Models, model)
}

// NewWallpaperGenerator は ImageModel を注入して初期化します。model が空なら DefaultModel を使います。
func NewWallpaperGenerator(imageModel ImageModel, model string) *GeminiWallpaperGenerator {
	if model == "" {
		model = DefaultModel
	}
	return &GeminiWallpaperGenerator{
		imageModel: imageModel,
		model:      model,
	}
}

// Ready はクライアントが利用可能かを返します。
func (g *GeminiWallpaperGenerator) Ready() bool {
	return g.imageModel != nil
}

// Model は利用するモデル名を返します。
func (g *GeminiWallpaperGenerator) Model() string {
	return g.model
}

// GenerateWallpaper はプロンプトと縦横比から画像を1枚生成し、data URI として返します。
// 縦横比は検証せずにそのまま API に渡します。リトライは行いません。
func (g *GeminiWallpaperGenerator) GenerateWallpaper(ctx context.Context, prompt string, aspectRatio domain.AspectRatio) (string, error) {
	if g.imageModel == nil {
		return "", ErrNotInitialized
	}

	cfg := &genai.GenerateImagesConfig{
		NumberOfImages: numberOfImages,
		OutputMIMEType: OutputMIMEType,
		AspectRatio:    string(aspectRatio),
	}

	slog.DebugContext(ctx, "Imagen 生成リクエスト送信", "model", g.model, "aspect_ratio", aspectRatio)

	resp, err := g.imageModel.GenerateImages(ctx, g.model, prompt, cfg)
	if err != nil {
		slog.ErrorContext(ctx, "壁紙の生成に失敗しました", "model", g.model, "error", err)
		return "", &RemoteError{Err: err}
	}

	data, reason := firstImageBytes(resp)
	if data == nil {
		slog.WarnContext(ctx, "画像が生成されませんでした", "model", g.model, "filtered_reason", reason)
		if reason != "" {
			return "", fmt.Errorf("%w: %s", ErrNoImage, reason)
		}
		return "", ErrNoImage
	}

	return imgutil.DataURI(OutputMIMEType, data), nil
}
