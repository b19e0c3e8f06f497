package domain

// RequestStatus は生成リクエストの状態です。
type RequestStatus string

const (
	StatusIdle      RequestStatus = "idle"
	StatusLoading   RequestStatus = "loading"
	StatusSucceeded RequestStatus = "succeeded"
	StatusFailed    RequestStatus = "failed"
)

// RequestState は現在の生成状態です。Image は Succeeded、Error は Failed のときだけ設定されます。
type RequestState struct {
	Status RequestStatus
	Image  string
	Error  string
}

// CooldownState はクールダウンの状態です。RequestState とは独立して遷移します。
type CooldownState struct {
	Active           bool `json:"active"`
	SecondsRemaining int  `json:"secondsRemaining"`
}

// Snapshot は UI から観測できる状態の読み取り専用ビューです。
type Snapshot struct {
	Selection       Selection     `json:"selection"`
	Prompt          string        `json:"prompt"`
	Status          RequestStatus `json:"status"`
	Loading         bool          `json:"loading"`
	Image           string        `json:"image,omitempty"`
	Error           string        `json:"error,omitempty"`
	OnCooldown      bool          `json:"onCooldown"`
	CooldownSeconds int           `json:"cooldownSeconds"`
}

// NewSnapshot は各状態から Snapshot を組み立てます。
func NewSnapshot(sel Selection, req RequestState, cd CooldownState) Snapshot {
	if sel.Theme != nil {
		t := *sel.Theme
		sel.Theme = &t
	}
	return Snapshot{
		Selection:       sel,
		Prompt:          ComposePrompt(sel),
		Status:          req.Status,
		Loading:         req.Status == StatusLoading,
		Image:           req.Image,
		Error:           req.Error,
		OnCooldown:      cd.Active,
		CooldownSeconds: cd.SecondsRemaining,
	}
}
