package service_test

import (
	"context"

	"huddle.app/server/internal/model"
	"huddle.app/server/internal/queue"
	"huddle.app/server/internal/service"
	"huddle.app/server/internal/store"
)

type mockUserStore struct {
	getByIDFn          func(ctx context.Context, id int64) (*model.User, error)
	createFn           func(ctx context.Context, user *model.User) error
	upsertByWorkOSIDFn func(ctx context.Context, user *model.User) error
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) UpsertByWorkOSID(ctx context.Context, user *model.User) error {
	if m.upsertByWorkOSIDFn != nil {
		return m.upsertByWorkOSIDFn(ctx, user)
	}
	return nil
}

type mockSessionStore struct {
	getValidFn      func(ctx context.Context, id int64) (*model.Session, error)
	createFn        func(ctx context.Context, session *model.Session) error
	deleteFn        func(ctx context.Context, id int64) error
	deleteExpiredFn func(ctx context.Context) error
}

func (m *mockSessionStore) GetValid(ctx context.Context, id int64) (*model.Session, error) {
	if m.getValidFn != nil {
		return m.getValidFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockSessionStore) Create(ctx context.Context, session *model.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	return nil
}

func (m *mockSessionStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockSessionStore) DeleteExpired(ctx context.Context) error {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx)
	}
	return nil
}

type mockWorkspaceStore struct {
	getByIDFn        func(ctx context.Context, id int64) (*model.Workspace, error)
	createFn         func(ctx context.Context, ws *model.Workspace) error
	updateNameFn     func(ctx context.Context, id int64, name string) (*model.Workspace, error)
	updateJoinCodeFn func(ctx context.Context, id int64, joinCode string) (*model.Workspace, error)
	deleteFn         func(ctx context.Context, id int64) error
	createCalls      int
	deleteCalls      int
}

func (m *mockWorkspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockWorkspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, ws)
	}
	return nil
}

func (m *mockWorkspaceStore) UpdateName(ctx context.Context, id int64, name string) (*model.Workspace, error) {
	if m.updateNameFn != nil {
		return m.updateNameFn(ctx, id, name)
	}
	return &model.Workspace{ID: id, Name: name}, nil
}

func (m *mockWorkspaceStore) UpdateJoinCode(ctx context.Context, id int64, joinCode string) (*model.Workspace, error) {
	if m.updateJoinCodeFn != nil {
		return m.updateJoinCodeFn(ctx, id, joinCode)
	}
	return &model.Workspace{ID: id, JoinCode: joinCode}, nil
}

func (m *mockWorkspaceStore) Delete(ctx context.Context, id int64) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockMemberStore struct {
	getByIDFn               func(ctx context.Context, id int64) (*model.Member, error)
	getByWorkspaceAndUserFn func(ctx context.Context, workspaceID, userID int64) (*model.Member, error)
	createFn                func(ctx context.Context, member *model.Member) error
	deleteFn                func(ctx context.Context, id int64) error
	listByWorkspaceFn       func(ctx context.Context, workspaceID int64) ([]model.Member, error)
	listByUserFn            func(ctx context.Context, userID int64) ([]model.Member, error)
	deleteByWorkspaceFn     func(ctx context.Context, workspaceID int64) (int64, error)
	createCalls             int
}

func (m *mockMemberStore) GetByID(ctx context.Context, id int64) (*model.Member, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockMemberStore) GetByWorkspaceAndUser(ctx context.Context, workspaceID, userID int64) (*model.Member, error) {
	if m.getByWorkspaceAndUserFn != nil {
		return m.getByWorkspaceAndUserFn(ctx, workspaceID, userID)
	}
	return nil, store.ErrNotFound
}

func (m *mockMemberStore) Create(ctx context.Context, member *model.Member) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, member)
	}
	return nil
}

func (m *mockMemberStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockMemberStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Member, error) {
	if m.listByWorkspaceFn != nil {
		return m.listByWorkspaceFn(ctx, workspaceID)
	}
	return nil, nil
}

func (m *mockMemberStore) ListByUser(ctx context.Context, userID int64) ([]model.Member, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockMemberStore) DeleteByWorkspace(ctx context.Context, workspaceID int64) (int64, error) {
	if m.deleteByWorkspaceFn != nil {
		return m.deleteByWorkspaceFn(ctx, workspaceID)
	}
	return 0, nil
}

type mockChannelStore struct {
	getByIDFn           func(ctx context.Context, id int64) (*model.Channel, error)
	createFn            func(ctx context.Context, channel *model.Channel) error
	updateNameFn        func(ctx context.Context, id int64, name string) (*model.Channel, error)
	deleteFn            func(ctx context.Context, id int64) error
	listByWorkspaceFn   func(ctx context.Context, workspaceID int64) ([]model.Channel, error)
	deleteByWorkspaceFn func(ctx context.Context, workspaceID int64) (int64, error)
	createCalls         int
}

func (m *mockChannelStore) GetByID(ctx context.Context, id int64) (*model.Channel, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockChannelStore) Create(ctx context.Context, channel *model.Channel) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, channel)
	}
	return nil
}

func (m *mockChannelStore) UpdateName(ctx context.Context, id int64, name string) (*model.Channel, error) {
	if m.updateNameFn != nil {
		return m.updateNameFn(ctx, id, name)
	}
	return &model.Channel{ID: id, Name: name}, nil
}

func (m *mockChannelStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockChannelStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Channel, error) {
	if m.listByWorkspaceFn != nil {
		return m.listByWorkspaceFn(ctx, workspaceID)
	}
	return nil, nil
}

func (m *mockChannelStore) DeleteByWorkspace(ctx context.Context, workspaceID int64) (int64, error) {
	if m.deleteByWorkspaceFn != nil {
		return m.deleteByWorkspaceFn(ctx, workspaceID)
	}
	return 0, nil
}

type mockConversationStore struct {
	getByIDFn           func(ctx context.Context, id int64) (*model.Conversation, error)
	getByMembersFn      func(ctx context.Context, workspaceID, memberOneID, memberTwoID int64) (*model.Conversation, error)
	createFn            func(ctx context.Context, conv *model.Conversation) error
	deleteByWorkspaceFn func(ctx context.Context, workspaceID int64) (int64, error)
}

func (m *mockConversationStore) GetByID(ctx context.Context, id int64) (*model.Conversation, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockConversationStore) GetByMembers(ctx context.Context, workspaceID, memberOneID, memberTwoID int64) (*model.Conversation, error) {
	if m.getByMembersFn != nil {
		return m.getByMembersFn(ctx, workspaceID, memberOneID, memberTwoID)
	}
	return nil, store.ErrNotFound
}

func (m *mockConversationStore) Create(ctx context.Context, conv *model.Conversation) error {
	if m.createFn != nil {
		return m.createFn(ctx, conv)
	}
	return nil
}

func (m *mockConversationStore) DeleteByWorkspace(ctx context.Context, workspaceID int64) (int64, error) {
	if m.deleteByWorkspaceFn != nil {
		return m.deleteByWorkspaceFn(ctx, workspaceID)
	}
	return 0, nil
}

type mockMessageStore struct {
	getByIDFn            func(ctx context.Context, id int64) (*model.Message, error)
	createFn             func(ctx context.Context, msg *model.Message) error
	listByChannelFn      func(ctx context.Context, channelID int64, limit int32) ([]model.Message, error)
	listByConversationFn func(ctx context.Context, conversationID int64, limit int32) ([]model.Message, error)
	deleteByWorkspaceFn  func(ctx context.Context, workspaceID int64) (int64, error)
}

func (m *mockMessageStore) GetByID(ctx context.Context, id int64) (*model.Message, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockMessageStore) Create(ctx context.Context, msg *model.Message) error {
	if m.createFn != nil {
		return m.createFn(ctx, msg)
	}
	return nil
}

func (m *mockMessageStore) ListByChannel(ctx context.Context, channelID int64, limit int32) ([]model.Message, error) {
	if m.listByChannelFn != nil {
		return m.listByChannelFn(ctx, channelID, limit)
	}
	return nil, nil
}

func (m *mockMessageStore) ListByConversation(ctx context.Context, conversationID int64, limit int32) ([]model.Message, error) {
	if m.listByConversationFn != nil {
		return m.listByConversationFn(ctx, conversationID, limit)
	}
	return nil, nil
}

func (m *mockMessageStore) DeleteByWorkspace(ctx context.Context, workspaceID int64) (int64, error) {
	if m.deleteByWorkspaceFn != nil {
		return m.deleteByWorkspaceFn(ctx, workspaceID)
	}
	return 0, nil
}

type mockReactionStore struct {
	getByMessageMemberValueFn func(ctx context.Context, messageID, memberID int64, value string) (*model.Reaction, error)
	createFn                  func(ctx context.Context, reaction *model.Reaction) error
	deleteFn                  func(ctx context.Context, id int64) error
	listByMessageFn           func(ctx context.Context, messageID int64) ([]model.Reaction, error)
	deleteByWorkspaceFn       func(ctx context.Context, workspaceID int64) (int64, error)
}

func (m *mockReactionStore) GetByMessageMemberValue(ctx context.Context, messageID, memberID int64, value string) (*model.Reaction, error) {
	if m.getByMessageMemberValueFn != nil {
		return m.getByMessageMemberValueFn(ctx, messageID, memberID, value)
	}
	return nil, store.ErrNotFound
}

func (m *mockReactionStore) Create(ctx context.Context, reaction *model.Reaction) error {
	if m.createFn != nil {
		return m.createFn(ctx, reaction)
	}
	return nil
}

func (m *mockReactionStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockReactionStore) ListByMessage(ctx context.Context, messageID int64) ([]model.Reaction, error) {
	if m.listByMessageFn != nil {
		return m.listByMessageFn(ctx, messageID)
	}
	return nil, nil
}

func (m *mockReactionStore) DeleteByWorkspace(ctx context.Context, workspaceID int64) (int64, error) {
	if m.deleteByWorkspaceFn != nil {
		return m.deleteByWorkspaceFn(ctx, workspaceID)
	}
	return 0, nil
}

type mockStoreProvider struct {
	workspaces    *mockWorkspaceStore
	members       *mockMemberStore
	channels      *mockChannelStore
	conversations *mockConversationStore
	messages      *mockMessageStore
	reactions     *mockReactionStore
}

func newMockStoreProvider() *mockStoreProvider {
	return &mockStoreProvider{
		workspaces:    &mockWorkspaceStore{},
		members:       &mockMemberStore{},
		channels:      &mockChannelStore{},
		conversations: &mockConversationStore{},
		messages:      &mockMessageStore{},
		reactions:     &mockReactionStore{},
	}
}

func (m *mockStoreProvider) Workspaces() store.WorkspaceStore       { return m.workspaces }
func (m *mockStoreProvider) Members() store.MemberStore             { return m.members }
func (m *mockStoreProvider) Channels() store.ChannelStore           { return m.channels }
func (m *mockStoreProvider) Conversations() store.ConversationStore { return m.conversations }
func (m *mockStoreProvider) Messages() store.MessageStore           { return m.messages }
func (m *mockStoreProvider) Reactions() store.ReactionStore         { return m.reactions }

type mockTxRunner struct {
	provider *mockStoreProvider
	withTxFn func(ctx context.Context, fn func(stores service.StoreProvider) error) error
}

func (m *mockTxRunner) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	if m.withTxFn != nil {
		return m.withTxFn(ctx, fn)
	}
	if m.provider == nil {
		m.provider = newMockStoreProvider()
	}
	return fn(m.provider)
}

type mockProducer struct {
	publishFn func(ctx context.Context, event queue.Event) error
	events    []queue.Event
}

func (m *mockProducer) Publish(ctx context.Context, event queue.Event) error {
	m.events = append(m.events, event)
	if m.publishFn != nil {
		return m.publishFn(ctx, event)
	}
	return nil
}

func (m *mockProducer) Close() error { return nil }
