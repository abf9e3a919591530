package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"huddle.app/server/internal/http/dto"
	"huddle.app/server/internal/http/middleware"
	"huddle.app/server/internal/service"
)

type MessageHandler struct {
	messageService  service.MessageService
	reactionService service.ReactionService
}

func NewMessageHandler(messageService service.MessageService, reactionService service.ReactionService) *MessageHandler {
	return &MessageHandler{
		messageService:  messageService,
		reactionService: reactionService,
	}
}

func (h *MessageHandler) Post(c *gin.Context) {
	workspaceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body is required"})
		return
	}

	params := service.PostMessageParams{
		WorkspaceID: workspaceID,
		Body:        req.Body,
	}

	var err error
	if params.ChannelID, err = parseOptionalID(req.ChannelID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid channel_id"})
		return
	}
	if params.ConversationID, err = parseOptionalID(req.ConversationID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation_id"})
		return
	}
	if params.ParentMessageID, err = parseOptionalID(req.ParentMessageID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parent_message_id"})
		return
	}

	user := middleware.GetUser(c.Request.Context())
	message, err := h.messageService.Post(c.Request.Context(), user.ID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMessageResponse(message))
}

func (h *MessageHandler) ListConversationMessages(c *gin.Context) {
	conversationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user := middleware.GetUser(c.Request.Context())
	messages, err := h.messageService.ListConversation(c.Request.Context(), user.ID, conversationID, 0)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageResponses(messages))
}

func (h *MessageHandler) ToggleReaction(c *gin.Context) {
	messageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ToggleReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "value is required"})
		return
	}

	user := middleware.GetUser(c.Request.Context())
	added, err := h.reactionService.Toggle(c.Request.Context(), user.ID, messageID, req.Value)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToggleReactionResponse{Added: added})
}

func parseOptionalID(s *string) (*int64, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := parseID(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
