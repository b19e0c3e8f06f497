package controller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shouni/gemini-wallpaper-kit/pkg/domain"
	"github.com/shouni/gemini-wallpaper-kit/pkg/generator"
)

const (
	// CooldownSeconds は生成試行ごとに課される待機時間（秒）です。
	CooldownSeconds = 10
	// CooldownTick はクールダウンを1減らす間隔です。
	CooldownTick = time.Second

	unknownFailureMessage = "an unknown error occurred while generating the image"
)

// Outcome は Generate の結果です。
type Outcome int

const (
	// OutcomeBlocked は生成中またはクールダウン中のため何もしなかったことを示します。
	OutcomeBlocked Outcome = iota
	OutcomeSucceeded
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	default:
		return "blocked"
	}
}

// Controller はユーザーの選択、生成リクエスト、クールダウンを管理する状態保持者です。
// 同時に実行中のリクエストは最大1件で、試行が終わるたびに成否にかかわらずクールダウンが始まります。
type Controller struct {
	client    generator.WallpaperGenerator
	catalog   domain.ThemeCatalog
	newTicker NewTickerFunc

	mu        sync.Mutex
	selection domain.Selection
	request   domain.RequestState
	cooldown  domain.CooldownState
	observers map[int]func(domain.Snapshot)
	nextID    int
	version   uint64

	// notifyMu は通知を直列化します。delivered より古い版の Snapshot は配送しません。
	notifyMu  sync.Mutex
	delivered uint64

	wg sync.WaitGroup
}

// New は Controller を作成します。
func New(client generator.WallpaperGenerator, opts ...Option) *Controller {
	c := &Controller{
		client:    client,
		catalog:   domain.DefaultThemeCatalog(),
		newTicker: newTimeTicker,
		request:   domain.RequestState{Status: domain.StatusIdle},
		observers: make(map[int]func(domain.Snapshot)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.selection = domain.DefaultSelection(c.catalog)
	return c
}

// Catalog はテーマカタログを返します。
func (c *Controller) Catalog() domain.ThemeCatalog {
	return c.catalog
}

// SetAspectRatio は縦横比を設定します。サポート外の値は無視されます。
func (c *Controller) SetAspectRatio(a domain.AspectRatio) {
	if !a.Valid() {
		slog.Warn("サポート外の縦横比を無視しました", "aspect_ratio", a)
		return
	}
	c.update(func() {
		c.selection.AspectRatio = a
	})
}

// SetTheme は名前でテーマを選択します。カタログにない名前はテーマ未選択として扱います。
func (c *Controller) SetTheme(name string) {
	theme := c.resolveTheme(name)
	c.update(func() {
		c.selection.Theme = theme
	})
}

// SetCustomText は自由入力テキストをそのまま保存します。
func (c *Controller) SetCustomText(text string) {
	c.update(func() {
		c.selection.CustomText = text
	})
}

// SelectionUpdate は UpdateSelection の部分更新です。nil のフィールドは変更しません。
type SelectionUpdate struct {
	AspectRatio *domain.AspectRatio
	Theme       *string
	CustomText  *string
}

// UpdateSelection は複数の選択項目を1回のロックでまとめて更新し、通知も1回だけ行います。
// サポート外の縦横比は SetAspectRatio と同様に無視されます。更新後の Snapshot を返します。
func (c *Controller) UpdateSelection(u SelectionUpdate) domain.Snapshot {
	if u.AspectRatio != nil && !u.AspectRatio.Valid() {
		slog.Warn("サポート外の縦横比を無視しました", "aspect_ratio", *u.AspectRatio)
		u.AspectRatio = nil
	}
	var theme *domain.Theme
	if u.Theme != nil {
		theme = c.resolveTheme(*u.Theme)
	}

	return c.update(func() {
		if u.AspectRatio != nil {
			c.selection.AspectRatio = *u.AspectRatio
		}
		if u.Theme != nil {
			c.selection.Theme = theme
		}
		if u.CustomText != nil {
			c.selection.CustomText = *u.CustomText
		}
	})
}

func (c *Controller) resolveTheme(name string) *domain.Theme {
	theme, ok := c.catalog.Lookup(name)
	if !ok {
		return nil
	}
	return &theme
}

// ComposePrompt は現在の選択から最終プロンプトを計算します。副作用はありません。
func (c *Controller) ComposePrompt() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.ComposePrompt(c.selection)
}

// Snapshot は現在の観測可能な状態を返します。
func (c *Controller) Snapshot() domain.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Generate は壁紙を1枚生成します。
//
// 生成中またはクールダウン中は状態を変えずに OutcomeBlocked を返します。
// それ以外では Loading に遷移してクライアントを呼び出し、結果を反映した後にクールダウンを開始します。
// ctx がキャンセルされてもクールダウンは必ず最後まで進みます。
func (c *Controller) Generate(ctx context.Context) Outcome {
	c.mu.Lock()
	if loading, cooling := c.request.Status == domain.StatusLoading, c.cooldown.Active; loading || cooling {
		c.mu.Unlock()
		slog.DebugContext(ctx, "生成リクエストをブロックしました", "loading", loading, "cooldown", cooling)
		return OutcomeBlocked
	}
	c.request = domain.RequestState{Status: domain.StatusLoading}
	prompt := domain.ComposePrompt(c.selection)
	aspectRatio := c.selection.AspectRatio
	snap, version := c.publishLocked()
	c.mu.Unlock()
	c.notify(snap, version)

	uri, err := c.client.GenerateWallpaper(ctx, prompt, aspectRatio)

	outcome := OutcomeSucceeded
	c.mu.Lock()
	if err != nil {
		outcome = OutcomeFailed
		c.request = domain.RequestState{Status: domain.StatusFailed, Error: failureMessage(err)}
	} else {
		c.request = domain.RequestState{Status: domain.StatusSucceeded, Image: uri}
	}
	c.startCooldownLocked()
	snap, version = c.publishLocked()
	c.mu.Unlock()

	if err != nil {
		slog.ErrorContext(ctx, "壁紙の生成に失敗しました", "aspect_ratio", aspectRatio, "error", err)
	} else {
		slog.InfoContext(ctx, "壁紙を生成しました", "aspect_ratio", aspectRatio)
	}
	c.notify(snap, version)
	return outcome
}

// Subscribe は状態変更ごとに呼ばれるオブザーバーを登録し、解除関数を返します。
// オブザーバーは複数の goroutine から呼ばれる可能性があります。
func (c *Controller) Subscribe(fn func(domain.Snapshot)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.observers[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.observers, id)
			c.mu.Unlock()
		})
	}
}

// Wait は実行中のクールダウンが終わるまで待ちます。
func (c *Controller) Wait() {
	c.wg.Wait()
}

// WaitContext は Wait と同じですが、ctx が先に終了した場合は ctx.Err() を返します。
func (c *Controller) WaitContext(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Controller) update(fn func()) domain.Snapshot {
	c.mu.Lock()
	fn()
	snap, version := c.publishLocked()
	c.mu.Unlock()
	c.notify(snap, version)
	return snap
}

func (c *Controller) snapshotLocked() domain.Snapshot {
	return domain.NewSnapshot(c.selection, c.request, c.cooldown)
}

// publishLocked は状態変更ごとに版番号を進め、その時点の Snapshot と版を返します。
// 呼び出し時に c.mu を保持している必要があります。
func (c *Controller) publishLocked() (domain.Snapshot, uint64) {
	c.version++
	return c.snapshotLocked(), c.version
}

// notify はオブザーバーへ Snapshot を配送します。
// 配送は notifyMu で直列化され、既に配送済みの版より古い Snapshot は捨てられるため、
// オブザーバーが最後に受け取る Snapshot は常に最新の状態になります。
// オブザーバーの中から Controller の状態を変更してはいけません。
func (c *Controller) notify(snap domain.Snapshot, version uint64) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	if version <= c.delivered {
		return
	}
	c.delivered = version

	c.mu.Lock()
	observers := make([]func(domain.Snapshot), 0, len(c.observers))
	for _, fn := range c.observers {
		observers = append(observers, fn)
	}
	c.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
}

func failureMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return unknownFailureMessage
}
