package model

import "time"

// Conversation is a direct-message thread between two workspace members.
// Member order is not significant; lookups match either orientation.
type Conversation struct {
	ID          int64     `json:"id"`
	WorkspaceID int64     `json:"workspace_id"`
	MemberOneID int64     `json:"member_one_id"`
	MemberTwoID int64     `json:"member_two_id"`
	CreatedAt   time.Time `json:"created_at"`
}
