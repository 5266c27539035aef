package httpcontext

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	appLogger "github.com/fastygo/dashboard/pkg/logger"
)

// Key is a context value key exported for reuse.
type Key string

const (
	KeyRemoteAddr Key = "remote_addr"
	KeyUserAgent  Key = "user_agent"

	// HeaderRequestID is echoed back on every response.
	HeaderRequestID = "X-Request-ID"

	userValueRequestID = "request_id"
)

// Adapter converts a fasthttp.RequestCtx into a stdlib context carrying a
// deadline and request metadata.
type Adapter struct {
	timeout time.Duration
	newID   func() string
}

func NewAdapter(timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Adapter{
		timeout: timeout,
		newID:   uuid.NewString,
	}
}

// WithIDs overrides the request id source.
func (a *Adapter) WithIDs(newID func() string) *Adapter {
	if newID != nil {
		a.newID = newID
	}
	return a
}

// Attach derives the request context. The request id is taken from the
// incoming header when present and reused across calls for the same request.
func (a *Adapter) Attach(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	stdCtx, cancel := context.WithTimeout(context.Background(), a.timeout)

	reqID := a.requestID(ctx)
	stdCtx = appLogger.ContextWithRequestID(stdCtx, reqID)

	if remoteAddr := ctx.RemoteAddr(); remoteAddr != nil {
		stdCtx = context.WithValue(stdCtx, KeyRemoteAddr, remoteAddr.String())
	}
	if ua := string(ctx.Request.Header.UserAgent()); ua != "" {
		stdCtx = context.WithValue(stdCtx, KeyUserAgent, ua)
	}
	return stdCtx, cancel
}

// RequestID returns the id assigned by Attach, or "".
func RequestID(ctx *fasthttp.RequestCtx) string {
	id, _ := ctx.UserValue(userValueRequestID).(string)
	return id
}

func (a *Adapter) requestID(ctx *fasthttp.RequestCtx) string {
	if id := RequestID(ctx); id != "" {
		return id
	}
	id := strings.TrimSpace(string(ctx.Request.Header.Peek(HeaderRequestID)))
	if id == "" {
		id = a.newID()
	}
	ctx.SetUserValue(userValueRequestID, id)
	ctx.Response.Header.Set(HeaderRequestID, id)
	return id
}
