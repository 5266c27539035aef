package handler

import (
	"fmt"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/dashboard/api/transport"
	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/pkg/httpcontext"
	"github.com/fastygo/dashboard/usecase"
	"github.com/fastygo/dashboard/usecase/settings"
)

type SettingsHandler struct {
	baseHandler
}

func NewSettingsHandler(dispatcher *usecase.Dispatcher, adapter *httpcontext.Adapter, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{baseHandler: newBaseHandler(dispatcher, adapter, logger)}
}

// @Router /api/v1/settings/theme [get]
func (h *SettingsHandler) Theme(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	theme, err := usecase.Query[domain.Theme](stdCtx, h.dispatcher, usecase.QryTheme, struct{}{})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.ThemeRequest{Theme: string(theme)})
}

// @Router /api/v1/settings/theme [put]
func (h *SettingsHandler) SetTheme(ctx *fasthttp.RequestCtx) {
	var req transport.ThemeRequest
	if !h.decode(ctx, &req) {
		return
	}
	h.theme(ctx, usecase.CmdSetTheme, domain.Theme(req.Theme))
}

// @Router /api/v1/settings/theme/toggle [post]
func (h *SettingsHandler) ToggleTheme(ctx *fasthttp.RequestCtx) {
	h.theme(ctx, usecase.CmdToggleTheme, struct{}{})
}

// @Summary Download a JSON backup
// @Tags settings
// @Router /api/v1/settings/export [get]
func (h *SettingsHandler) Export(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	file, err := usecase.Command[settings.ExportFile](stdCtx, h.dispatcher, usecase.CmdExport, struct{}{})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.Response.Header.SetContentType("application/json")
	ctx.Response.Header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	ctx.SetStatusCode(http.StatusOK)
	ctx.SetBody(file.Body)
}

// @Summary Parse a backup without merging it
// @Tags settings
// @Router /api/v1/settings/import [post]
func (h *SettingsHandler) Import(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	body := append([]byte(nil), ctx.PostBody()...)
	report, err := usecase.Command[settings.ImportReport](stdCtx, h.dispatcher, usecase.CmdImport, body)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, report)
}

// @Summary Delete every stored key and sign out
// @Tags settings
// @Router /api/v1/account [delete]
func (h *SettingsHandler) DeleteAccount(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if _, err := usecase.Command[bool](stdCtx, h.dispatcher, usecase.CmdDeleteAccount, struct{}{}); err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.SetStatusCode(http.StatusNoContent)
}

func (h *SettingsHandler) theme(ctx *fasthttp.RequestCtx, name string, payload interface{}) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	theme, err := usecase.Command[domain.Theme](stdCtx, h.dispatcher, name, payload)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.ThemeRequest{Theme: string(theme)})
}
