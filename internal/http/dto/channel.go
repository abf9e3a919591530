package dto

import (
	"strconv"
	"time"

	"huddle.app/server/internal/model"
)

type CreateChannelRequest struct {
	Name string `json:"name" binding:"required"`
}

type RenameChannelRequest struct {
	Name string `json:"name" binding:"required"`
}

type ChannelResponse struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToChannelResponse(channel *model.Channel) *ChannelResponse {
	if channel == nil {
		return nil
	}
	return &ChannelResponse{
		ID:          strconv.FormatInt(channel.ID, 10),
		WorkspaceID: strconv.FormatInt(channel.WorkspaceID, 10),
		Name:        channel.Name,
		CreatedAt:   channel.CreatedAt,
	}
}

func ToChannelResponses(channels []model.Channel) []ChannelResponse {
	result := make([]ChannelResponse, len(channels))
	for i := range channels {
		result[i] = *ToChannelResponse(&channels[i])
	}
	return result
}
