package generator

import (
	"errors"
)

const (
	// DefaultModel は利用する Imagen モデルの既定値です。
	DefaultModel = "imagen-3.0-generate-002"
	// OutputMIMEType は生成画像のエンコード形式です。
	OutputMIMEType = "image/jpeg"

	numberOfImages = 1
)

var (
	// ErrNotInitialized は APIキーが未設定でクライアントが利用できない場合のエラーです。
	ErrNotInitialized = errors.New("image generation client not initialized, check GEMINI_API_KEY")
	// ErrNoImage は応答に画像が含まれなかった場合のエラーです。安全フィルターによるブロックが主な原因です。
	ErrNoImage = errors.New("no image generated, the request may have been blocked by safety policy")
)

// RemoteError は Imagen API 呼び出し自体が失敗した場合のエラーです。
type RemoteError struct {
	Err error
}

func (e *RemoteError) Error() string {
	return "failed to generate image: " + describeError(e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
