package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kitchen-voice-assistant/internal/assistant"
	"kitchen-voice-assistant/pkg/response"
)

// Command handles one text command
// @Summary Run a voice command
// @Description Classify and execute one utterance, returning the structured outcome
// @Tags Assistant
// @Accept json
// @Produce json
// @Param body body commandRequest true "Command"
// @Success 200 {object} commandResponse "Outcome"
// @Router /api/command [post]
func (h Handler) Command(c *gin.Context) {
	ctx := c.Request.Context()

	var req commandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Command(ctx, assistant.CommandInput{
		Text:      req.Text,
		Context:   req.Context,
		SessionID: req.SessionID,
	})
	if err != nil {
		if errors.Is(err, assistant.ErrEmptyUtterance) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "Command: %v", err)
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, commandResponse{
		Success:      out.Success,
		Intent:       out.Intent,
		Data:         out.Data,
		ResponseText: out.ResponseText,
		Error:        out.Error,
		ErrorType:    out.ErrorType,
	})
}

// UpdateContext handles a client context update
// @Summary Update session context
// @Description Shallow-merge client context into the session
// @Tags Assistant
// @Accept json
// @Produce json
// @Param body body contextRequest true "Context"
// @Success 200 {object} response.Resp "Acknowledged"
// @Router /api/context [post]
func (h Handler) UpdateContext(c *gin.Context) {
	ctx := c.Request.Context()

	var req contextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	h.uc.UpdateContext(ctx, req.SessionID, req.Context)
	response.OK(c, gin.H{"updated": true})
}

// Status handles the runtime status request
// @Summary Runtime status
// @Description Report model, client, and conversation state
// @Tags Assistant
// @Produce json
// @Success 200 {object} statusResponse "Status"
// @Router /status [get]
func (h Handler) Status(c *gin.Context) {
	st := h.uc.Status(c.Request.Context())

	c.JSON(http.StatusOK, statusResponse{
		Running:            st.Running,
		Model:              st.Model,
		ConnectedClients:   st.ConnectedClients,
		ConversationActive: st.ConversationActive,
		LLMConnected:       st.LLMConnected,
	})
}
