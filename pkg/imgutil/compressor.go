package imgutil

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
)

// ErrInvalidQuality は JPEG 品質が 1〜100 の範囲外の場合のエラーです。
var ErrInvalidQuality = errors.New("jpeg quality must be between 1 and 100")

// CompressToJPEG は画像データ（PNG, GIF, JPEG等）を指定品質の JPEG に再エンコードします。
// ダウンロード時に壁紙のサイズを落としたい場合に利用します。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	if quality < 1 || quality > 100 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuality, quality)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("画像のデコードに失敗しました: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("JPEGエンコードに失敗しました: %w", err)
	}
	return buf.Bytes(), nil
}
