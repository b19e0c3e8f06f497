package domain

import "strings"

// QualitySuffix はすべてのプロンプトの末尾に付与される固定の品質指定です。
const QualitySuffix = "A beautiful high-resolution wallpaper, 8k, ultra-detailed, cinematic quality."

// Selection はユーザーが選択中の生成パラメータです。Theme が nil の場合はテーマ未選択です。
type Selection struct {
	AspectRatio AspectRatio `json:"aspectRatio"`
	Theme       *Theme      `json:"theme"`
	CustomText  string      `json:"customText"`
}

// DefaultSelection は 16:9、カタログ先頭のテーマ、空のテキストで初期化した Selection を返します。
func DefaultSelection(catalog ThemeCatalog) Selection {
	sel := Selection{AspectRatio: DefaultAspectRatio}
	if t, ok := catalog.First(); ok {
		sel.Theme = &t
	}
	return sel
}

// ThemeName は選択中のテーマ名を返します。未選択なら空文字です。
func (s Selection) ThemeName() string {
	if s.Theme == nil {
		return ""
	}
	return s.Theme.Name
}

// ComposePrompt は Selection から最終プロンプトを組み立てる純粋関数です。
//
//	<テーマ断片><", " + カスタムテキスト>. <QualitySuffix>
func ComposePrompt(s Selection) string {
	var b strings.Builder
	if s.Theme != nil {
		b.WriteString(s.Theme.Prompt)
	}
	if s.CustomText != "" {
		b.WriteString(", ")
		b.WriteString(s.CustomText)
	}
	b.WriteString(". ")
	b.WriteString(QualitySuffix)
	return b.String()
}
