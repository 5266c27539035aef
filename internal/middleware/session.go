package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/dashboard/api/transport"
	"github.com/fastygo/dashboard/domain"
)

// SessionGate reports whether someone is signed in.
type SessionGate interface {
	Authenticated() bool
}

// RequireSession rejects requests with 401 while no session is active.
func RequireSession(gate SessionGate, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			if !gate.Authenticated() {
				logger.Debug("rejected unauthenticated request", zap.ByteString("path", ctx.Path()))
				body, _ := json.Marshal(transport.NewError(string(domain.ErrCodeUnauthorized), domain.ErrUnauthorized.Message, nil))
				ctx.Response.Header.SetContentType("application/json")
				ctx.SetStatusCode(http.StatusUnauthorized)
				ctx.SetBody(body)
				return
			}
			next(ctx)
		}
	}
}
