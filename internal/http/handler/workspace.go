package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"huddle.app/server/internal/http/dto"
	"huddle.app/server/internal/http/middleware"
	"huddle.app/server/internal/service"
)

type WorkspaceHandler struct {
	workspaceService    service.WorkspaceService
	channelService      service.ChannelService
	memberService       service.MemberService
	conversationService service.ConversationService
}

func NewWorkspaceHandler(
	workspaceService service.WorkspaceService,
	channelService service.ChannelService,
	memberService service.MemberService,
	conversationService service.ConversationService,
) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceService:    workspaceService,
		channelService:      channelService,
		memberService:       memberService,
		conversationService: conversationService,
	}
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	user := middleware.GetUser(c.Request.Context())
	workspace, err := h.workspaceService.Create(c.Request.Context(), user.ID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(workspace))
}

// List returns the caller's workspaces. An unauthenticated caller gets an
// empty list, not a 401: the sidebar renders for guests too.
func (h *WorkspaceHandler) List(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())
	if user == nil {
		c.JSON(http.StatusOK, []dto.WorkspaceSummary{})
		return
	}

	workspaces, err := h.workspaceService.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceSummaries(workspaces))
}

// Get is the member-only full read. Non-members receive a null body rather
// than an error that would confirm the workspace exists.
func (h *WorkspaceHandler) Get(c *gin.Context) {
	workspaceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user := middleware.GetUser(c.Request.Context())
	workspace, err := h.workspaceService.Get(c.Request.Context(), user.ID, workspaceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

// Preview serves the join screen: workspace name plus whether the caller is
// already a member. Guests get a null body.
func (h *WorkspaceHandler) Preview(c *gin.Context) {
	workspaceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user := middleware.GetUser(c.Request.Context())
	if user == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	preview, err := h.workspaceService.Preview(c.Request.Context(), user.ID, workspaceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspacePreviewResponse(preview))
}

func (h *WorkspaceHandler) Join(c *gin.Context) {
	workspaceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.JoinWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "join_code is required"})
		return
	}

	user := middleware.GetUser(c.Request.Context())
	member, err := h.workspaceService.Join(c.Request.Context(), user.ID, workspaceID, req.JoinCode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

func (h *WorkspaceHandler) RotateJoinCode(c *gin.Context) {
	workspaceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user := middleware.GetUser(c.Request.Context())
	workspace, err := h.workspaceService.RotateJoinCode(c.Request.Context(), user.ID, workspaceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

func (h *WorkspaceHandler) Rename(c *gin.Context) {
	workspaceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.RenameWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	user := middleware.GetUser(c.Request.Context())
	workspace, err := h.workspaceService.Rename(c.Request.Context(), user.ID, workspaceID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

func (h *WorkspaceHandler) Delete(c *gin.Context) {
	workspaceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user := middleware.GetUser(c.Request.Context())
	if err := h.workspaceService.Delete(c.Request.Context(), user.ID, workspaceID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *WorkspaceHandler) ListChannels(c *gin.Context) {
	workspaceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user := middleware.GetUser(c.Request.Context())
	channels, err := h.channelService.List(c.Request.Context(), user.ID, workspaceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChannelResponses(channels))
}

func (h *WorkspaceHandler) CreateChannel(c *gin.Context) {
	workspaceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	user := middleware.GetUser(c.Request.Context())
	channel, err := h.channelService.Create(c.Request.Context(), user.ID, workspaceID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToChannelResponse(channel))
}

func (h *WorkspaceHandler) ListMembers(c *gin.Context) {
	workspaceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user := middleware.GetUser(c.Request.Context())
	members, err := h.memberService.List(c.Request.Context(), user.ID, workspaceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberWithUserResponses(members))
}

func (h *WorkspaceHandler) CurrentMember(c *gin.Context) {
	workspaceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user := middleware.GetUser(c.Request.Context())
	member, err := h.memberService.Current(c.Request.Context(), user.ID, workspaceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

func (h *WorkspaceHandler) CreateConversation(c *gin.Context) {
	workspaceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "member_id is required"})
		return
	}

	memberID, err := parseID(req.MemberID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member_id"})
		return
	}

	user := middleware.GetUser(c.Request.Context())
	conversation, err := h.conversationService.GetOrCreate(c.Request.Context(), user.ID, workspaceID, memberID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConversationResponse(conversation))
}
