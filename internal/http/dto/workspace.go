package dto

import (
	"strconv"
	"time"

	"huddle.app/server/internal/model"
	"huddle.app/server/internal/service"
)

type CreateWorkspaceRequest struct {
	Name string `json:"name" binding:"required"`
}

type RenameWorkspaceRequest struct {
	Name string `json:"name" binding:"required"`
}

type JoinWorkspaceRequest struct {
	JoinCode string `json:"join_code" binding:"required"`
}

// WorkspaceResponse is the member-only full read. The join code is part of it:
// members are the audience a join code is shared with.
type WorkspaceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	JoinCode  string    `json:"join_code"`
	CreatedAt time.Time `json:"created_at"`
}

// WorkspaceSummary is the list item: no join code, no timestamps.
type WorkspaceSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// WorkspacePreviewResponse is the discovery-safe read for join screens.
type WorkspacePreviewResponse struct {
	Name     *string `json:"name"`
	IsMember bool    `json:"is_member"`
}

func ToWorkspaceResponse(ws *model.Workspace) *WorkspaceResponse {
	if ws == nil {
		return nil
	}
	return &WorkspaceResponse{
		ID:        strconv.FormatInt(ws.ID, 10),
		Name:      ws.Name,
		JoinCode:  ws.JoinCode,
		CreatedAt: ws.CreatedAt,
	}
}

func ToWorkspaceSummaries(workspaces []model.Workspace) []WorkspaceSummary {
	result := make([]WorkspaceSummary, len(workspaces))
	for i, ws := range workspaces {
		result[i] = WorkspaceSummary{
			ID:   strconv.FormatInt(ws.ID, 10),
			Name: ws.Name,
		}
	}
	return result
}

func ToWorkspacePreviewResponse(preview *service.WorkspacePreview) *WorkspacePreviewResponse {
	if preview == nil {
		return nil
	}
	return &WorkspacePreviewResponse{
		Name:     preview.Name,
		IsMember: preview.IsMember,
	}
}
