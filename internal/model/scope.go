package model

// Scope identifies who triggered an operation and through which surface.
type Scope struct {
	UserID   string
	Username string
	Source   string // "http" or "telegram"
}

const (
	SourceHTTP     = "http"
	SourceTelegram = "telegram"
)
