package generator

import (
	"errors"

	"google.golang.org/genai"
)

const unknownErrorMessage = "unknown error"

// describeError は UI に表示できる説明文をエラーから取り出します。
// genai.APIError の場合はサーバーのメッセージを優先します。
func describeError(err error) string {
	if err == nil {
		return unknownErrorMessage
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil && apiErrPtr.Message != "" {
		return apiErrPtr.Message
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return unknownErrorMessage
}

// firstImageBytes は応答の先頭画像のバイト列を返します。
// 画像がない場合はフィルター理由（あれば）を併せて返します。
func firstImageBytes(resp *genai.GenerateImagesResponse) ([]byte, string) {
	if resp == nil || len(resp.GeneratedImages) == 0 {
		return nil, ""
	}
	first := resp.GeneratedImages[0]
	if first == nil {
		return nil, ""
	}
	if first.Image == nil || len(first.Image.ImageBytes) == 0 {
		return nil, first.RAIFilteredReason
	}
	return first.Image.ImageBytes, ""
}
