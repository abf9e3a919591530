package store

import (
	"context"
	"errors"

	"huddle.app/server/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when an insert violates a uniqueness
// constraint, e.g. a second membership for the same (workspace, user) pair
var ErrAlreadyExists = errors.New("already exists")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	UpsertByWorkOSID(ctx context.Context, user *model.User) error
}

// SessionStore defines the contract for session data access
type SessionStore interface {
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context) error
}

// WorkspaceStore defines the contract for workspace data access
type WorkspaceStore interface {
	GetByID(ctx context.Context, id int64) (*model.Workspace, error)
	Create(ctx context.Context, ws *model.Workspace) error
	UpdateName(ctx context.Context, id int64, name string) (*model.Workspace, error)
	UpdateJoinCode(ctx context.Context, id int64, joinCode string) (*model.Workspace, error)
	Delete(ctx context.Context, id int64) error
}

// MemberStore defines the contract for membership data access
type MemberStore interface {
	GetByID(ctx context.Context, id int64) (*model.Member, error)
	GetByWorkspaceAndUser(ctx context.Context, workspaceID, userID int64) (*model.Member, error)
	Create(ctx context.Context, member *model.Member) error
	Delete(ctx context.Context, id int64) error
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Member, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Member, error)
	DeleteByWorkspace(ctx context.Context, workspaceID int64) (int64, error)
}

// ChannelStore defines the contract for channel data access
type ChannelStore interface {
	GetByID(ctx context.Context, id int64) (*model.Channel, error)
	Create(ctx context.Context, channel *model.Channel) error
	UpdateName(ctx context.Context, id int64, name string) (*model.Channel, error)
	Delete(ctx context.Context, id int64) error
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Channel, error)
	DeleteByWorkspace(ctx context.Context, workspaceID int64) (int64, error)
}

// ConversationStore defines the contract for direct-message thread data access
type ConversationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Conversation, error)
	GetByMembers(ctx context.Context, workspaceID, memberOneID, memberTwoID int64) (*model.Conversation, error)
	Create(ctx context.Context, conv *model.Conversation) error
	DeleteByWorkspace(ctx context.Context, workspaceID int64) (int64, error)
}

// MessageStore defines the contract for message data access
type MessageStore interface {
	GetByID(ctx context.Context, id int64) (*model.Message, error)
	Create(ctx context.Context, msg *model.Message) error
	ListByChannel(ctx context.Context, channelID int64, limit int32) ([]model.Message, error)
	ListByConversation(ctx context.Context, conversationID int64, limit int32) ([]model.Message, error)
	DeleteByWorkspace(ctx context.Context, workspaceID int64) (int64, error)
}

// ReactionStore defines the contract for reaction data access
type ReactionStore interface {
	GetByMessageMemberValue(ctx context.Context, messageID, memberID int64, value string) (*model.Reaction, error)
	Create(ctx context.Context, reaction *model.Reaction) error
	Delete(ctx context.Context, id int64) error
	ListByMessage(ctx context.Context, messageID int64) ([]model.Reaction, error)
	DeleteByWorkspace(ctx context.Context, workspaceID int64) (int64, error)
}
