package generator

import (
	"context"

	"google.golang.org/genai"
)

// --- Mocks ---

type generateImagesCall struct {
	model  string
	prompt string
	config *genai.GenerateImagesConfig
}

// mockImageModel は ImageModel のテスト用モックです。
type mockImageModel struct {
	calls              []generateImagesCall
	generateImagesFunc func(ctx context.Context, model, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

func (m *mockImageModel) GenerateImages(ctx context.Context, model string, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
	m.calls = append(m.calls, generateImagesCall{model: model, prompt: prompt, config: config})
	if m.generateImagesFunc != nil {
		return m.generateImagesFunc(ctx, model, prompt, config)
	}
	return &genai.GenerateImagesResponse{}, nil
}

func imagesResponse(images ...[]byte) *genai.GenerateImagesResponse {
	resp := &genai.GenerateImagesResponse{}
	for _, b := range images {
		resp.GeneratedImages = append(resp.GeneratedImages, &genai.GeneratedImage{
			Image: &genai.Image{ImageBytes: b, MIMEType: OutputMIMEType},
		})
	}
	return resp
}
