package domain

import (
	"errors"
	"fmt"
)

// AspectRatio は生成画像の縦横比です。Imagen API がそのまま受け付ける値だけを定義します。
type AspectRatio string

const (
	AspectRatio1x1  AspectRatio = "1:1"
	AspectRatio16x9 AspectRatio = "16:9"
	AspectRatio9x16 AspectRatio = "9:16"
	AspectRatio4x3  AspectRatio = "4:3"
	AspectRatio3x4  AspectRatio = "3:4"

	DefaultAspectRatio = AspectRatio16x9
)

// ErrUnsupportedAspectRatio はサポート外の縦横比が指定された場合のエラーです。
var ErrUnsupportedAspectRatio = errors.New("unsupported aspect ratio")

// AspectRatioOption は UI に表示する縦横比の選択肢です。
type AspectRatioOption struct {
	Name  string      `json:"name"`
	Value AspectRatio `json:"value"`
}

var aspectRatioOptions = []AspectRatioOption{
	{Name: "Escritorio (16:9)", Value: AspectRatio16x9},
	{Name: "Móvil (9:16)", Value: AspectRatio9x16},
	{Name: "Tableta (4:3)", Value: AspectRatio4x3},
	{Name: "Tableta Vertical (3:4)", Value: AspectRatio3x4},
	{Name: "Cuadrado (1:1)", Value: AspectRatio1x1},
}

// AspectRatioOptions は表示順に並んだ縦横比の一覧をコピーで返します。
func AspectRatioOptions() []AspectRatioOption {
	out := make([]AspectRatioOption, len(aspectRatioOptions))
	copy(out, aspectRatioOptions)
	return out
}

// Valid は縦横比が列挙値のいずれかであるかを返します。
func (a AspectRatio) Valid() bool {
	for _, opt := range aspectRatioOptions {
		if opt.Value == a {
			return true
		}
	}
	return false
}

func (a AspectRatio) String() string {
	return string(a)
}

// ParseAspectRatio は文字列を AspectRatio に変換します。
func ParseAspectRatio(s string) (AspectRatio, error) {
	a := AspectRatio(s)
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAspectRatio, s)
	}
	return a, nil
}
