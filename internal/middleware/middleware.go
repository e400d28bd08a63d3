package middleware

import (
	"github.com/prachij94/CancelItNowBot/internal/metrics"
	"github.com/prachij94/CancelItNowBot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// PerUserLock serializes handling of one user's updates. Session state
// is mutated in place per step, so two rapid replies from the same
// user must not race; distinct users still proceed in parallel.
func PerUserLock(sessions *session.Store) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			unlock := sessions.Lock(sender.ID)
			defer unlock()

			return next(c)
		}
	}
}

// Metrics counts every handled update by kind
func Metrics() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			kind := "message"
			if c.Callback() != nil {
				kind = "callback"
			}
			metrics.UpdatesHandled.WithLabelValues(kind).Inc()

			return next(c)
		}
	}
}

// Recover keeps a panicking handler from taking the poller down
func Recover(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Handler panicked", zap.Any("panic", r))
				}
			}()
			return next(c)
		}
	}
}
