package model

import "time"

// Message belongs to exactly one of a channel or a conversation, and always
// to a workspace. The workspace back-reference is what the lifecycle cascade
// queries by.
type Message struct {
	ID              int64     `json:"id"`
	WorkspaceID     int64     `json:"workspace_id"`
	ChannelID       *int64    `json:"channel_id,omitempty"`
	ConversationID  *int64    `json:"conversation_id,omitempty"`
	MemberID        int64     `json:"member_id"`
	ParentMessageID *int64    `json:"parent_message_id,omitempty"`
	Body            string    `json:"body"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
