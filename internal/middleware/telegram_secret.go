package middleware

import (
	"crypto/hmac"
	"errors"

	"github.com/gin-gonic/gin"

	pkgErrors "quick-entry/pkg/errors"
	"quick-entry/pkg/response"
	"quick-entry/pkg/telegram"
)

var errInvalidTelegramSecret = errors.New("invalid telegram secret token")

// TelegramSecret checks the secret token Telegram echoes on webhook calls.
// With no secret configured every call passes.
func (m Middleware) TelegramSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.telegramSecret == "" {
			c.Next()
			return
		}

		got := c.GetHeader(telegram.SecretTokenHeader)
		if !hmac.Equal([]byte(got), []byte(m.telegramSecret)) {
			m.l.Warnf(c.Request.Context(), "middleware.TelegramSecret: rejected webhook from %s", c.ClientIP())
			response.Error(c, pkgErrors.NewUnauthorizedHTTPError(errInvalidTelegramSecret.Error()), nil)
			return
		}
		c.Next()
	}
}
