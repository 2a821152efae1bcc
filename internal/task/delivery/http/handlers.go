package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tasq/internal/middleware"
	"tasq/pkg/response"
)

// Create godoc
// @Summary     Create a new task
// @Description Creates a task for the caller. Free-form date expressions are resolved to a calendar day; a reminder is scheduled when the task has a time and task reminders are enabled.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks for a day
// @Description Returns the caller's tasks for the given day (default today), newest first.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       date query string false "Day to list; ISO date or a free-form expression like tomorrow (default: today)"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var (
		output any
		ucErr  error
	)
	if req.Date == "" {
		out, err := h.uc.ListToday(ctx, sc)
		output, ucErr = h.newListResp(out), err
	} else {
		out, err := h.uc.ListByDate(ctx, sc, req.Date)
		output, ucErr = h.newListResp(out), err
	}
	if ucErr != nil {
		h.l.Errorf(ctx, "uc.List: %v", ucErr)
		h.respondError(c, ucErr)
		return
	}

	response.OK(c, output)
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task owned by the caller.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Detail(ctx, middleware.ScopeFromContext(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Toggle godoc
// @Summary     Toggle task completion
// @Description Flips the completion flag and re-derives the task's reminder.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} toggleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Toggle(ctx, middleware.ScopeFromContext(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newToggleResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes a task and cancels its scheduled reminder.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, middleware.ScopeFromContext(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// Trend godoc
// @Summary     Completion trend
// @Description Returns per-day completion rates over the trailing week, oldest day first.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Success     200 {object} trendResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/trend [GET]
func (h *handler) Trend(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.CompletionTrend(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.CompletionTrend: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTrendResp(output))
}
