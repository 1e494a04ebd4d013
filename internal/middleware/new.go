package middleware

import (
	"quick-entry/pkg/log"
)

// Config carries the knobs the middlewares need.
type Config struct {
	RateLimitPerMin     int
	TelegramSecretToken string
}

type Middleware struct {
	l              log.Logger
	limiter        *rateLimiter
	telegramSecret string
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:              l,
		limiter:        newRateLimiter(cfg.RateLimitPerMin),
		telegramSecret: cfg.TelegramSecretToken,
	}
}
