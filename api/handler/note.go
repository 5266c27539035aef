package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/dashboard/api/transport"
	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/pkg/httpcontext"
	"github.com/fastygo/dashboard/usecase"
	"github.com/fastygo/dashboard/usecase/notes"
)

// NoteHandler exposes the note list and the single editor session.
type NoteHandler struct {
	baseHandler
}

func NewNoteHandler(dispatcher *usecase.Dispatcher, adapter *httpcontext.Adapter, logger *zap.Logger) *NoteHandler {
	return &NoteHandler{baseHandler: newBaseHandler(dispatcher, adapter, logger)}
}

// @Summary Notes matching the editor filter
// @Tags notes
// @Router /api/v1/notes [get]
func (h *NoteHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	views, err := usecase.Query[[]notes.View](stdCtx, h.dispatcher, usecase.QryNotes, struct{}{})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, views)
}

// @Summary Editor state
// @Tags notes
// @Router /api/v1/editor [get]
func (h *NoteHandler) Editor(ctx *fasthttp.RequestCtx) {
	h.state(ctx, usecase.QryNoteEditor, nil, true)
}

// @Router /api/v1/editor/new [post]
func (h *NoteHandler) New(ctx *fasthttp.RequestCtx) {
	h.state(ctx, usecase.CmdNoteNew, struct{}{}, false)
}

// @Router /api/v1/notes/{id}/select [post]
func (h *NoteHandler) Select(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	h.state(ctx, usecase.CmdNoteSelect, id, false)
}

// @Router /api/v1/editor/edit [post]
func (h *NoteHandler) Edit(ctx *fasthttp.RequestCtx) {
	h.state(ctx, usecase.CmdNoteEdit, struct{}{}, false)
}

// @Summary Change draft fields
// @Router /api/v1/editor/draft [patch]
func (h *NoteHandler) Change(ctx *fasthttp.RequestCtx) {
	var req transport.NoteDraftRequest
	if !h.decode(ctx, &req) {
		return
	}
	title, content, category, err := req.Validate()
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.state(ctx, usecase.CmdNoteChange, notes.DraftPatch{Title: title, Content: content, Category: category}, false)
}

// @Router /api/v1/editor/insert [post]
func (h *NoteHandler) Insert(ctx *fasthttp.RequestCtx) {
	var req transport.InsertSyntaxRequest
	if !h.decode(ctx, &req) {
		return
	}
	h.state(ctx, usecase.CmdNoteInsert, req.Syntax, false)
}

// @Router /api/v1/editor/preview [post]
func (h *NoteHandler) Preview(ctx *fasthttp.RequestCtx) {
	h.state(ctx, usecase.CmdNotePreview, struct{}{}, false)
}

// @Router /api/v1/editor/cancel [post]
func (h *NoteHandler) Cancel(ctx *fasthttp.RequestCtx) {
	h.state(ctx, usecase.CmdNoteCancel, struct{}{}, false)
}

// @Router /api/v1/editor/filter [put]
func (h *NoteHandler) Filter(ctx *fasthttp.RequestCtx) {
	var req transport.NoteFilterRequest
	if !h.decode(ctx, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.state(ctx, usecase.CmdNoteFilter, notes.Filter{Query: req.Query, Category: req.Category}, false)
}

// @Summary Save the draft
// @Tags notes
// @Router /api/v1/editor/save [post]
func (h *NoteHandler) Save(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	note, err := usecase.Command[domain.Note](stdCtx, h.dispatcher, usecase.CmdNoteSave, struct{}{})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, note)
}

// @Router /api/v1/notes/{id} [delete]
func (h *NoteHandler) Delete(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if _, err := usecase.Command[bool](stdCtx, h.dispatcher, usecase.CmdNoteDelete, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.SetStatusCode(http.StatusNoContent)
}

// state runs an editor command (or query) and responds with the editor state.
func (h *NoteHandler) state(ctx *fasthttp.RequestCtx, name string, payload interface{}, query bool) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	var (
		st  notes.State
		err error
	)
	if query {
		st, err = usecase.Query[notes.State](stdCtx, h.dispatcher, name, struct{}{})
	} else {
		st, err = usecase.Command[notes.State](stdCtx, h.dispatcher, name, payload)
	}
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, st)
}
