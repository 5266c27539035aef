package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/dashboard/pkg/httpcontext"
	"github.com/fastygo/dashboard/usecase"
	"github.com/fastygo/dashboard/usecase/analytics"
)

const defaultActivityLimit = 10

// DashboardHandler serves the read models of the dashboard and analytics pages.
type DashboardHandler struct {
	baseHandler
}

func NewDashboardHandler(dispatcher *usecase.Dispatcher, adapter *httpcontext.Adapter, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{baseHandler: newBaseHandler(dispatcher, adapter, logger)}
}

// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) Dashboard(ctx *fasthttp.RequestCtx) {
	query[analytics.Dashboard](h.baseHandler, ctx, usecase.QryDashboard, struct{}{})
}

// @Router /api/v1/analytics/stats [get]
func (h *DashboardHandler) Stats(ctx *fasthttp.RequestCtx) {
	query[analytics.Stats](h.baseHandler, ctx, usecase.QryStats, struct{}{})
}

// @Router /api/v1/analytics/weekly [get]
func (h *DashboardHandler) Weekly(ctx *fasthttp.RequestCtx) {
	query[[]analytics.DayCount](h.baseHandler, ctx, usecase.QryWeekly, struct{}{})
}

// @Router /api/v1/activity [get]
func (h *DashboardHandler) Activity(ctx *fasthttp.RequestCtx) {
	limit := parseInt(string(ctx.QueryArgs().Peek("limit")), defaultActivityLimit)
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	query[[]analytics.ActivityView](h.baseHandler, ctx, usecase.QryActivities, limit)
}

func query[R any](h baseHandler, ctx *fasthttp.RequestCtx, name string, params interface{}) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	out, err := usecase.Query[R](stdCtx, h.dispatcher, name, params)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, out)
}
