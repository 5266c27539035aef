package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/dashboard/api/transport"
	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/pkg/httpcontext"
	"github.com/fastygo/dashboard/usecase"
	"github.com/fastygo/dashboard/usecase/auth"
)

type AuthHandler struct {
	baseHandler
}

func NewAuthHandler(dispatcher *usecase.Dispatcher, adapter *httpcontext.Adapter, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{baseHandler: newBaseHandler(dispatcher, adapter, logger)}
}

// @Summary Sign up
// @Tags auth
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(ctx *fasthttp.RequestCtx) {
	var req transport.RegisterRequest
	if !h.decode(ctx, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.session(ctx, usecase.CmdRegister, auth.Registration{Name: req.Name, Email: req.Email}, http.StatusCreated)
}

// @Summary Sign in
// @Tags auth
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(ctx *fasthttp.RequestCtx) {
	var req transport.LoginRequest
	if !h.decode(ctx, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.session(ctx, usecase.CmdLogin, usecase.LoginPayload{
		User:     domain.User{Email: req.Email},
		Remember: req.Remember,
	}, http.StatusOK)
}

// @Summary Sign in as the demo user
// @Tags auth
// @Router /api/v1/auth/demo [post]
func (h *AuthHandler) Demo(ctx *fasthttp.RequestCtx) {
	h.session(ctx, usecase.CmdDemoLogin, struct{}{}, http.StatusOK)
}

// @Summary Sign out
// @Tags auth
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(ctx *fasthttp.RequestCtx) {
	h.session(ctx, usecase.CmdLogout, struct{}{}, http.StatusOK)
}

// @Summary Current session
// @Tags auth
// @Router /api/v1/auth/session [get]
func (h *AuthHandler) Session(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	session, err := usecase.Query[domain.Session](stdCtx, h.dispatcher, usecase.QrySession, struct{}{})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, session)
}

func (h *AuthHandler) session(ctx *fasthttp.RequestCtx, name string, payload interface{}, status int) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	session, err := usecase.Command[domain.Session](stdCtx, h.dispatcher, name, payload)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, status, session)
}
