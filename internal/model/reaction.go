package model

import "time"

type Reaction struct {
	ID          int64     `json:"id"`
	WorkspaceID int64     `json:"workspace_id"`
	MessageID   int64     `json:"message_id"`
	MemberID    int64     `json:"member_id"`
	Value       string    `json:"value"`
	CreatedAt   time.Time `json:"created_at"`
}
