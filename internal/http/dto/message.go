package dto

import (
	"strconv"
	"time"

	"huddle.app/server/internal/model"
)

type PostMessageRequest struct {
	ChannelID       *string `json:"channel_id,omitempty"`
	ConversationID  *string `json:"conversation_id,omitempty"`
	ParentMessageID *string `json:"parent_message_id,omitempty"`
	Body            string  `json:"body" binding:"required"`
}

type ToggleReactionRequest struct {
	Value string `json:"value" binding:"required"`
}

type ToggleReactionResponse struct {
	Added bool `json:"added"`
}

type CreateConversationRequest struct {
	MemberID string `json:"member_id" binding:"required"`
}

type ConversationResponse struct {
	ID          string `json:"id"`
	WorkspaceID string `json:"workspace_id"`
	MemberOneID string `json:"member_one_id"`
	MemberTwoID string `json:"member_two_id"`
}

type MessageResponse struct {
	ID              string    `json:"id"`
	WorkspaceID     string    `json:"workspace_id"`
	ChannelID       *string   `json:"channel_id,omitempty"`
	ConversationID  *string   `json:"conversation_id,omitempty"`
	MemberID        string    `json:"member_id"`
	ParentMessageID *string   `json:"parent_message_id,omitempty"`
	Body            string    `json:"body"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToConversationResponse(conv *model.Conversation) *ConversationResponse {
	if conv == nil {
		return nil
	}
	return &ConversationResponse{
		ID:          strconv.FormatInt(conv.ID, 10),
		WorkspaceID: strconv.FormatInt(conv.WorkspaceID, 10),
		MemberOneID: strconv.FormatInt(conv.MemberOneID, 10),
		MemberTwoID: strconv.FormatInt(conv.MemberTwoID, 10),
	}
}

func ToMessageResponse(msg *model.Message) *MessageResponse {
	if msg == nil {
		return nil
	}
	return &MessageResponse{
		ID:              strconv.FormatInt(msg.ID, 10),
		WorkspaceID:     strconv.FormatInt(msg.WorkspaceID, 10),
		ChannelID:       formatOptionalID(msg.ChannelID),
		ConversationID:  formatOptionalID(msg.ConversationID),
		MemberID:        strconv.FormatInt(msg.MemberID, 10),
		ParentMessageID: formatOptionalID(msg.ParentMessageID),
		Body:            msg.Body,
		CreatedAt:       msg.CreatedAt,
	}
}

func ToMessageResponses(messages []model.Message) []MessageResponse {
	result := make([]MessageResponse, len(messages))
	for i := range messages {
		result[i] = *ToMessageResponse(&messages[i])
	}
	return result
}

func formatOptionalID(id *int64) *string {
	if id == nil {
		return nil
	}
	s := strconv.FormatInt(*id, 10)
	return &s
}
