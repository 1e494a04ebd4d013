package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"quick-entry/internal/quickadd"
	pkgLog "quick-entry/pkg/log"
	pkgTelegram "quick-entry/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender delivers replies to a chat. *pkgTelegram.Bot implements it.
type Sender interface {
	Send(ctx context.Context, req pkgTelegram.SendMessageRequest) error
}

type handler struct {
	l   pkgLog.Logger
	uc  quickadd.UseCase
	bot Sender
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc quickadd.UseCase, bot Sender) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
