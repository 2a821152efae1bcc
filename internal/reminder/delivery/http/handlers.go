package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tasq/internal/reminder"
	"tasq/pkg/response"
)

// Settings godoc
// @Summary     Get notification settings
// @Description Returns the current notification preferences (defaults when never set).
// @Tags        Notifications
// @Accept      json
// @Produce     json
// @Success     200 {object} settingsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notifications/settings [GET]
func (h *handler) Settings(c *gin.Context) {
	ctx := c.Request.Context()

	settings, err := h.uc.Settings(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Settings: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newSettingsResp(settings))
}

// UpdateSettings godoc
// @Summary     Update notification settings
// @Description Merges a partial update into the stored preferences. Changing the daily summary enablement or hour re-derives its schedule.
// @Tags        Notifications
// @Accept      json
// @Produce     json
// @Param       body body updateSettingsReq true "Fields to update"
// @Success     200 {object} settingsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notifications/settings [PUT]
func (h *handler) UpdateSettings(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	merged, err := h.uc.UpdateSettings(ctx, req.toPatch())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateSettings: %v", err)
		if errors.Is(err, reminder.ErrInvalidSummaryHour) {
			response.Error(c, err, nil)
		} else {
			response.InternalError(c, err)
		}
		return
	}

	response.OK(c, newSettingsResp(merged))
}

// HandleResponse godoc
// @Summary     Handle a notification interaction
// @Description Dispatches a notification tap or action button and returns the route the app should navigate to ("" for none).
// @Tags        Notifications
// @Accept      json
// @Produce     json
// @Param       body body notificationResponseReq true "Interaction payload"
// @Success     200 {object} routeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notifications/response [POST]
func (h *handler) HandleResponse(c *gin.Context) {
	ctx := c.Request.Context()

	var req notificationResponseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	route, err := h.uc.HandleResponse(ctx, req.toResponse())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleResponse: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, routeResp{Route: string(route)})
}
