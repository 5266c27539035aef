package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/dashboard/internal/services/notify"
	"github.com/fastygo/dashboard/pkg/httpcontext"
	"github.com/fastygo/dashboard/usecase"
)

type NotificationHandler struct {
	baseHandler
}

func NewNotificationHandler(dispatcher *usecase.Dispatcher, adapter *httpcontext.Adapter, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{baseHandler: newBaseHandler(dispatcher, adapter, logger)}
}

// @Summary Visible toasts
// @Router /api/v1/notifications [get]
func (h *NotificationHandler) List(ctx *fasthttp.RequestCtx) {
	query[[]notify.Toast](h.baseHandler, ctx, usecase.QryNotification, struct{}{})
}

// @Router /api/v1/notifications/{id} [delete]
func (h *NotificationHandler) Dismiss(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if _, err := usecase.Command[bool](stdCtx, h.dispatcher, usecase.CmdDismissToast, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.SetStatusCode(http.StatusNoContent)
}
