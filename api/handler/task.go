package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/dashboard/api/transport"
	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/pkg/httpcontext"
	"github.com/fastygo/dashboard/usecase"
	"github.com/fastygo/dashboard/usecase/kanban"
)

type TaskHandler struct {
	baseHandler
}

func NewTaskHandler(dispatcher *usecase.Dispatcher, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{baseHandler: newBaseHandler(dispatcher, adapter, logger)}
}

// @Summary Kanban board
// @Tags tasks
// @Router /api/v1/tasks [get]
func (h *TaskHandler) Board(ctx *fasthttp.RequestCtx) {
	filter := kanban.BoardFilter{
		Query:    string(ctx.QueryArgs().Peek("q")),
		Priority: string(ctx.QueryArgs().Peek("priority")),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	board, err := usecase.Query[kanban.Board](stdCtx, h.dispatcher, usecase.QryBoard, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, board)
}

// @Summary Get task
// @Tags tasks
// @Router /api/v1/tasks/{id} [get]
func (h *TaskHandler) GetTask(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := usecase.Query[domain.Task](stdCtx, h.dispatcher, usecase.QryTask, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// @Summary Create task
// @Tags tasks
// @Router /api/v1/tasks [post]
func (h *TaskHandler) CreateTask(ctx *fasthttp.RequestCtx) {
	input, ok := h.parseTask(ctx, transport.TaskRequest.ValidateCreate)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := usecase.Command[domain.Task](stdCtx, h.dispatcher, usecase.CmdCreateTask, input)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update task
// @Tags tasks
// @Router /api/v1/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	input, ok := h.parseTask(ctx, transport.TaskRequest.ValidateUpdate)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := usecase.Command[domain.Task](stdCtx, h.dispatcher, usecase.CmdUpdateTask, usecase.UpdateTaskPayload{ID: id, Input: input})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete task
// @Tags tasks
// @Router /api/v1/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if _, err := usecase.Command[bool](stdCtx, h.dispatcher, usecase.CmdDeleteTask, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.SetStatusCode(http.StatusNoContent)
}

// @Summary Drop a task on a board column
// @Tags tasks
// @Router /api/v1/tasks/{id}/drop [post]
func (h *TaskHandler) Drop(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	var req transport.DropRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := usecase.Command[kanban.DropResult](stdCtx, h.dispatcher, usecase.CmdDropTask, usecase.DropPayload{
		TaskID: id,
		Target: domain.Status(req.Status),
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, result)
}

func (h *TaskHandler) parseTask(ctx *fasthttp.RequestCtx, validate func(transport.TaskRequest) (domain.TaskInput, error)) (domain.TaskInput, bool) {
	var req transport.TaskRequest
	if !h.decode(ctx, &req) {
		return domain.TaskInput{}, false
	}
	input, err := validate(req)
	if err != nil {
		h.respondError(ctx, err)
		return domain.TaskInput{}, false
	}
	return input, true
}
