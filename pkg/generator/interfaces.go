package generator

import (
	"context"

	"github.com/shouni/gemini-wallpaper-kit/pkg/domain"
	"google.golang.org/genai"
)

// ImageModel は Imagen の画像生成エンドポイントを抽象化するインターフェースです。
// *genai.Models がこれを満たします。
type ImageModel interface {
	GenerateImages(ctx context.Context, model string, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

// WallpaperGenerator はリクエストコントローラーが利用する生成窓口です。
// 成功時は埋め込み可能な data URI を返します。
type WallpaperGenerator interface {
	GenerateWallpaper(ctx context.Context, prompt string, aspectRatio domain.AspectRatio) (string, error)
}
