package service

import (
	"huddle.app/server/core/config"
	"huddle.app/server/internal/queue"
	"huddle.app/server/internal/store"
)

type Services struct {
	stores    *store.Stores
	txRunner  TxRunner
	producer  queue.Producer
	workOSCfg config.WorkOSConfig
}

func NewServices(stores *store.Stores, txRunner TxRunner, producer queue.Producer, workOSCfg config.WorkOSConfig) *Services {
	return &Services{
		stores:    stores,
		txRunner:  txRunner,
		producer:  producer,
		workOSCfg: workOSCfg,
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Users(), s.stores.Sessions(), s.workOSCfg)
}

func (s *Services) Memberships() MembershipService {
	return NewMembershipService(s.stores.Members())
}

func (s *Services) Workspaces() WorkspaceService {
	return NewWorkspaceService(
		s.stores.Workspaces(),
		s.stores.Members(),
		s.Memberships(),
		s.txRunner,
		s.producer,
	)
}

func (s *Services) Channels() ChannelService {
	return NewChannelService(s.stores.Channels(), s.Memberships())
}

func (s *Services) Members() MemberService {
	return NewMemberService(s.stores.Members(), s.stores.Users(), s.Memberships())
}

func (s *Services) Conversations() ConversationService {
	return NewConversationService(s.stores.Conversations(), s.stores.Members(), s.Memberships())
}

func (s *Services) Messages() MessageService {
	return NewMessageService(
		s.stores.Messages(),
		s.stores.Channels(),
		s.stores.Conversations(),
		s.Memberships(),
	)
}

func (s *Services) Reactions() ReactionService {
	return NewReactionService(s.stores.Reactions(), s.stores.Messages(), s.Memberships())
}
