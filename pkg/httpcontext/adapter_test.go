package httpcontext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"

	appLogger "github.com/fastygo/dashboard/pkg/logger"
)

func TestAttach_GeneratesAndReusesRequestID(t *testing.T) {
	a := NewAdapter(time.Second).WithIDs(func() string { return "req-1" })
	var rc fasthttp.RequestCtx

	ctx, cancel := a.Attach(&rc)
	defer cancel()
	assert.Equal(t, "req-1", appLogger.RequestID(ctx))
	assert.Equal(t, "req-1", string(rc.Response.Header.Peek(HeaderRequestID)))

	_, hasDeadline := ctx.Deadline()
	assert.True(t, hasDeadline)

	a.WithIDs(func() string { return "req-2" })
	again, cancel2 := a.Attach(&rc)
	defer cancel2()
	assert.Equal(t, "req-1", appLogger.RequestID(again))
}

func TestAttach_HonoursIncomingHeader(t *testing.T) {
	a := NewAdapter(0)
	var rc fasthttp.RequestCtx
	rc.Request.Header.Set(HeaderRequestID, "client-id")

	ctx, cancel := a.Attach(&rc)
	defer cancel()
	assert.Equal(t, "client-id", appLogger.RequestID(ctx))
	assert.Equal(t, "client-id", RequestID(&rc))
}
