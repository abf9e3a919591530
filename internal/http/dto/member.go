package dto

import (
	"strconv"

	"huddle.app/server/internal/model"
	"huddle.app/server/internal/service"
)

type MemberResponse struct {
	ID          string `json:"id"`
	WorkspaceID string `json:"workspace_id"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
}

type MemberWithUserResponse struct {
	MemberResponse
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

func ToMemberResponse(member *model.Member) *MemberResponse {
	if member == nil {
		return nil
	}
	return &MemberResponse{
		ID:          strconv.FormatInt(member.ID, 10),
		WorkspaceID: strconv.FormatInt(member.WorkspaceID, 10),
		UserID:      strconv.FormatInt(member.UserID, 10),
		Role:        string(member.Role),
	}
}

func ToMemberWithUserResponses(members []service.MemberWithUser) []MemberWithUserResponse {
	result := make([]MemberWithUserResponse, len(members))
	for i, m := range members {
		result[i] = MemberWithUserResponse{
			MemberResponse: *ToMemberResponse(&m.Member),
			Name:           m.User.Name,
			Email:          m.User.Email,
			AvatarURL:      m.User.AvatarURL,
		}
	}
	return result
}
