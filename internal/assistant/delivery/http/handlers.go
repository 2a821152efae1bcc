package http

import (
	"github.com/gin-gonic/gin"

	"tasq/internal/assistant"
	"tasq/internal/middleware"
	"tasq/pkg/response"
)

type chatReq struct {
	Text string `json:"text" binding:"required,min=1,max=2000"`
}

type createdTaskResp struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time,omitempty"`
	Priority string `json:"priority"`
	Category string `json:"category"`
}

type chatResp struct {
	Reply    string           `json:"reply"`
	Created  *createdTaskResp `json:"created,omitempty"`
	AIParsed bool             `json:"ai_parsed"`
}

// Chat godoc
// @Summary     Send a message to the assistant
// @Description Parses the message into a task intent, persists the task when usable, and returns the assistant's reply.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, middleware.ScopeFromContext(c), assistant.ChatInput{Text: req.Text})
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.InternalError(c, err)
		return
	}

	resp := chatResp{Reply: output.Reply, AIParsed: output.AIParsed}
	if t := output.Created; t != nil {
		resp.Created = &createdTaskResp{
			ID:       t.ID,
			Title:    t.Title,
			Date:     t.Date,
			Time:     t.Time,
			Priority: string(t.Priority),
			Category: t.Category,
		}
	}
	response.OK(c, resp)
}
