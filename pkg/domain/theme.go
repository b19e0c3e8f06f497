package domain

// Theme は名前付きのプロンプト断片です。Name はカタログ内で一意です。
type Theme struct {
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
}

// ThemeCatalog は起動時に定義される不変のテーマ一覧です。
type ThemeCatalog struct {
	themes []Theme
}

// NewThemeCatalog は与えられたテーマからカタログを作成します。
// 同名のテーマは最初のものだけが残ります。
func NewThemeCatalog(themes ...Theme) ThemeCatalog {
	seen := make(map[string]struct{}, len(themes))
	out := make([]Theme, 0, len(themes))
	for _, t := range themes {
		if _, ok := seen[t.Name]; ok {
			continue
		}
		seen[t.Name] = struct{}{}
		out = append(out, t)
	}
	return ThemeCatalog{themes: out}
}

// DefaultThemeCatalog は壁紙用の標準テーマを返します。
func DefaultThemeCatalog() ThemeCatalog {
	return NewThemeCatalog(
		Theme{Name: "Ciudad Futurista", Prompt: "a sprawling futuristic cityscape at night, neon lights, flying vehicles, cyberpunk aesthetic, hyper-detailed, cinematic lighting"},
		Theme{Name: "Bosque Encantado", Prompt: "a magical enchanted forest, glowing mushrooms, ancient trees with moss, sunbeams filtering through the canopy, fantasy art, ethereal"},
		Theme{Name: "Nebulosa Cósmica", Prompt: "a vibrant cosmic nebula in deep space, colorful gases, swirling galaxies, distant stars, high-resolution astrophotography style"},
		Theme{Name: "Paisaje Sereno", Prompt: "a serene mountain landscape at sunrise, misty valleys, calm lake reflecting the sky, Bob Ross painting style, peaceful"},
		Theme{Name: "Olas Abstractas", Prompt: "an abstract digital art of colorful, flowing waves and particles, vibrant gradients, dynamic motion, 3D render"},
		Theme{Name: "Anime Clásico", Prompt: "a beautiful 90s vintage anime aesthetic scenery, soft pastel colors, detailed background art, Studio Ghibli inspired"},
	)
}

// Themes はカタログのコピーを返します。
func (c ThemeCatalog) Themes() []Theme {
	out := make([]Theme, len(c.themes))
	copy(out, c.themes)
	return out
}

// Lookup は名前でテーマを検索します。
func (c ThemeCatalog) Lookup(name string) (Theme, bool) {
	for _, t := range c.themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// First は先頭のテーマを返します。カタログが空なら false です。
func (c ThemeCatalog) First() (Theme, bool) {
	if len(c.themes) == 0 {
		return Theme{}, false
	}
	return c.themes[0], true
}

// Len はテーマ数を返します。
func (c ThemeCatalog) Len() int {
	return len(c.themes)
}
