package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"quick-entry/internal/model"
	"quick-entry/internal/quickadd"
	pkgResponse "quick-entry/pkg/response"
	pkgTelegram "quick-entry/pkg/telegram"
)

const (
	cmdStart   = "/start"
	cmdHelp    = "/help"
	cmdPreview = "/preview"
	cmdTodos   = "/todos"
)

const todosLimit = 20

const welcomeText = "👋 Willkommen bei Quick Entry!\n\n" +
	"Schick mir einfach eine Zeile, ich lege sie in Memos ab und trage Termine in den Kalender ein.\n\n" +
	"Beispiel: Zahnarzt morgen 15 uhr bei Dr. Weber #gesundheit\n\n" +
	"/help zeigt alle Kürzel, /preview <text> zeigt was ich erkenne ohne zu speichern, /todos listet offene Todos."

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It answers 200 right away and handles the message in the background.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edits, channel posts, ...)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		// The request context is cancelled once the response is written.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	cmd, arg := splitCommand(text)
	switch cmd {
	case cmdStart:
		return h.reply(ctx, msg, welcomeText)
	case cmdHelp:
		return h.reply(ctx, msg, "Kürzel und Schlüsselwörter:\n\n"+strings.Join(h.uc.Shortcuts(), "\n"))
	case cmdPreview:
		return h.preview(ctx, msg, arg)
	case cmdTodos:
		return h.openTodos(ctx, msg)
	}

	out, err := h.uc.Submit(ctx, scopeOf(msg), quickadd.SubmitInput{Text: text})
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: Submit failed: %v", err)
		return h.reply(ctx, msg, errorMessage(err))
	}

	return h.reply(ctx, msg, submitSummary(out))
}

func (h *handler) preview(ctx context.Context, msg *pkgTelegram.Message, text string) error {
	if text == "" {
		return h.reply(ctx, msg, "Benutzung: /preview <text>")
	}

	out, err := h.uc.Preview(ctx, quickadd.PreviewInput{Text: text})
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: Preview failed: %v", err)
		return h.reply(ctx, msg, errorMessage(err))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔎 %s", out.Result.Title)
	for _, badge := range out.Badges {
		b.WriteString("\n" + badge)
	}
	return h.reply(ctx, msg, b.String())
}

func (h *handler) openTodos(ctx context.Context, msg *pkgTelegram.Message) error {
	out, err := h.uc.Recent(ctx, scopeOf(msg), quickadd.RecentInput{Limit: todosLimit, OpenOnly: true})
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: Recent failed: %v", err)
		return h.reply(ctx, msg, errorMessage(err))
	}
	if len(out.Entries) == 0 {
		return h.reply(ctx, msg, "🎉 Keine offenen Todos.")
	}

	var b strings.Builder
	b.WriteString("Offene Todos:")
	for _, e := range out.Entries {
		b.WriteString("\n☐ " + e.Title)
		if e.Progress.Total > 1 {
			fmt.Fprintf(&b, " (%d/%d)", e.Progress.Completed, e.Progress.Total)
		}
	}
	return h.reply(ctx, msg, b.String())
}

func (h *handler) reply(ctx context.Context, msg *pkgTelegram.Message, text string) error {
	return h.bot.Send(ctx, pkgTelegram.SendMessageRequest{
		ChatID:                msg.Chat.ID,
		Text:                  text,
		ReplyToMessageID:      msg.MessageID,
		DisableWebPagePreview: true,
	})
}

func submitSummary(out quickadd.SubmitOutput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Gespeichert: %s", out.Task.Title)
	for _, badge := range out.Badges {
		b.WriteString("\n" + badge)
	}
	if out.Task.MemoURL != "" {
		b.WriteString("\n\n📝 " + out.Task.MemoURL)
	}
	if out.Task.CalendarLink != "" {
		b.WriteString("\n📅 " + out.Task.CalendarLink)
	}
	if out.Task.MeetLink != "" {
		b.WriteString("\n📹 " + out.Task.MeetLink)
	}
	if len(out.Conflicts) > 0 {
		b.WriteString("\n\n⚠️ Überschneidung mit: " + strings.Join(out.Conflicts, ", "))
	}
	return b.String()
}

// splitCommand returns the bot command ("/help", "/start@MyBot" → "/start")
// and its argument. Plain text yields an empty command.
func splitCommand(text string) (cmd, arg string) {
	if !strings.HasPrefix(text, "/") {
		return "", text
	}
	head, rest, _ := strings.Cut(text, " ")
	head, _, _ = strings.Cut(head, "@")
	switch strings.ToLower(head) {
	case cmdStart, cmdHelp, cmdPreview, cmdTodos:
		return strings.ToLower(head), strings.TrimSpace(rest)
	}
	// "/arbeit Meeting" is a calendar key, not a command.
	return "", text
}

func scopeOf(msg *pkgTelegram.Message) model.Scope {
	sc := model.Scope{
		UserID: fmt.Sprintf("telegram_chat_%d", msg.Chat.ID),
		Source: model.SourceTelegram,
	}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
		sc.Username = msg.From.Username
	}
	return sc
}
