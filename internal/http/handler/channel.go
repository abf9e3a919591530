package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"huddle.app/server/internal/http/dto"
	"huddle.app/server/internal/http/middleware"
	"huddle.app/server/internal/service"
)

type ChannelHandler struct {
	channelService service.ChannelService
	messageService service.MessageService
}

func NewChannelHandler(channelService service.ChannelService, messageService service.MessageService) *ChannelHandler {
	return &ChannelHandler{
		channelService: channelService,
		messageService: messageService,
	}
}

func (h *ChannelHandler) Get(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user := middleware.GetUser(c.Request.Context())
	channel, err := h.channelService.Get(c.Request.Context(), user.ID, channelID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChannelResponse(channel))
}

func (h *ChannelHandler) Rename(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.RenameChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	user := middleware.GetUser(c.Request.Context())
	channel, err := h.channelService.Rename(c.Request.Context(), user.ID, channelID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChannelResponse(channel))
}

func (h *ChannelHandler) Delete(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user := middleware.GetUser(c.Request.Context())
	if err := h.channelService.Remove(c.Request.Context(), user.ID, channelID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ChannelHandler) ListMessages(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user := middleware.GetUser(c.Request.Context())
	messages, err := h.messageService.ListChannel(c.Request.Context(), user.ID, channelID, 0)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageResponses(messages))
}
