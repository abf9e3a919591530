package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"huddle.app/server/internal/http/handler"
	"huddle.app/server/internal/http/middleware"
	"huddle.app/server/internal/http/router"
	"huddle.app/server/internal/model"
	"huddle.app/server/internal/service"
)

var _ = Describe("WorkspaceHandler", func() {
	var (
		engine        *gin.Engine
		auth          *mockAuthService
		workspaces    *mockWorkspaceService
		channels      *mockChannelService
		members       *mockMemberService
		conversations *mockConversationService
		messages      *mockMessageService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		engine = gin.New()
		auth = &mockAuthService{
			validateSessionFn: func(_ context.Context, sessionID int64) (*model.User, error) {
				if sessionID == 123 {
					return &model.User{ID: 10, Name: "Jess", Email: "jess@example.com"}, nil
				}
				return nil, service.ErrSessionExpired
			},
		}
		workspaces = &mockWorkspaceService{}
		channels = &mockChannelService{}
		members = &mockMemberService{}
		conversations = &mockConversationService{}
		messages = &mockMessageService{}

		h := handler.NewWorkspaceHandler(workspaces, channels, members, conversations)
		mh := handler.NewMessageHandler(messages, &mockReactionService{})
		router.WorkspaceRouter(engine.Group("/workspaces"), h, mh, auth, false)
	})

	request := func(method, path string, body any, authenticated bool) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		if authenticated {
			req.AddCookie(&http.Cookie{Name: "huddle_session", Value: "123"})
		}
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w
	}

	Describe("POST /workspaces", func() {
		It("returns 201 with the created workspace", func() {
			workspaces.createFn = func(_ context.Context, userID int64, name string) (*model.Workspace, error) {
				Expect(userID).To(Equal(int64(10)))
				Expect(name).To(Equal("Acme"))
				return &model.Workspace{ID: 1, Name: name, JoinCode: "abc123"}, nil
			}

			w := request(http.MethodPost, "/workspaces", gin.H{"name": "Acme"}, true)

			Expect(w.Code).To(Equal(http.StatusCreated))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["name"]).To(Equal("Acme"))
			Expect(resp["join_code"]).To(Equal("abc123"))
		})

		It("returns 401 without a session", func() {
			w := request(http.MethodPost, "/workspaces", gin.H{"name": "Acme"}, false)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns 400 for a too-short name", func() {
			workspaces.createFn = func(_ context.Context, _ int64, _ string) (*model.Workspace, error) {
				return nil, service.ErrInvalidName
			}

			w := request(http.MethodPost, "/workspaces", gin.H{"name": "ab"}, true)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /workspaces", func() {
		It("returns the caller's workspaces", func() {
			workspaces.listForUserFn = func(_ context.Context, userID int64) ([]model.Workspace, error) {
				return []model.Workspace{{ID: 1, Name: "Acme"}}, nil
			}

			w := request(http.MethodGet, "/workspaces", nil, true)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp []map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp).To(HaveLen(1))
		})

		It("returns an empty list for guests", func() {
			w := request(http.MethodGet, "/workspaces", nil, false)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`[]`))
		})
	})

	Describe("GET /workspaces/:id", func() {
		It("returns null for non-members", func() {
			workspaces.getFn = func(_ context.Context, _, _ int64) (*model.Workspace, error) {
				return nil, nil
			}

			w := request(http.MethodGet, "/workspaces/1", nil, true)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`null`))
		})

		It("returns 400 for a malformed id", func() {
			w := request(http.MethodGet, "/workspaces/notanid", nil, true)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /workspaces/:id/preview", func() {
		It("returns the preview for authenticated callers", func() {
			workspaces.previewFn = func(_ context.Context, userID, workspaceID int64) (*service.WorkspacePreview, error) {
				name := "Acme"
				return &service.WorkspacePreview{Name: &name, IsMember: false}, nil
			}

			w := request(http.MethodGet, "/workspaces/1/preview", nil, true)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["name"]).To(Equal("Acme"))
			Expect(resp["is_member"]).To(BeFalse())
		})

		It("returns null for guests", func() {
			w := request(http.MethodGet, "/workspaces/1/preview", nil, false)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`null`))
		})
	})

	Describe("POST /workspaces/:id/join", func() {
		It("returns 201 with the new membership", func() {
			workspaces.joinFn = func(_ context.Context, userID, workspaceID int64, joinCode string) (*model.Member, error) {
				Expect(joinCode).To(Equal("ABC123"))
				return &model.Member{ID: 5, WorkspaceID: workspaceID, UserID: userID, Role: model.RoleMember}, nil
			}

			w := request(http.MethodPost, "/workspaces/1/join", gin.H{"join_code": "ABC123"}, true)

			Expect(w.Code).To(Equal(http.StatusCreated))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["role"]).To(Equal("member"))
		})

		It("returns 422 for a wrong code", func() {
			workspaces.joinFn = func(_ context.Context, _, _ int64, _ string) (*model.Member, error) {
				return nil, service.ErrInvalidJoinCode
			}

			w := request(http.MethodPost, "/workspaces/1/join", gin.H{"join_code": "zzzzzz"}, true)
			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
		})

		It("returns 409 when already a member", func() {
			workspaces.joinFn = func(_ context.Context, _, _ int64, _ string) (*model.Member, error) {
				return nil, service.ErrAlreadyMember
			}

			w := request(http.MethodPost, "/workspaces/1/join", gin.H{"join_code": "abc123"}, true)
			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("returns 404 for a missing workspace", func() {
			workspaces.joinFn = func(_ context.Context, _, _ int64, _ string) (*model.Member, error) {
				return nil, service.ErrWorkspaceNotFound
			}

			w := request(http.MethodPost, "/workspaces/99/join", gin.H{"join_code": "abc123"}, true)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("DELETE /workspaces/:id", func() {
		It("returns 204 on success", func() {
			workspaces.deleteFn = func(_ context.Context, userID, workspaceID int64) error {
				Expect(workspaceID).To(Equal(int64(1)))
				return nil
			}

			w := request(http.MethodDelete, "/workspaces/1", nil, true)
			Expect(w.Code).To(Equal(http.StatusNoContent))
		})

		It("returns 403 for non-admins", func() {
			workspaces.deleteFn = func(_ context.Context, _, _ int64) error {
				return service.ErrUnauthorized
			}

			w := request(http.MethodDelete, "/workspaces/1", nil, true)
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})

	Describe("POST /workspaces/:id/join-code", func() {
		It("returns the workspace with the fresh code", func() {
			workspaces.rotateJoinCodeFn = func(_ context.Context, userID, workspaceID int64) (*model.Workspace, error) {
				return &model.Workspace{ID: workspaceID, Name: "Acme", JoinCode: "xyz789"}, nil
			}

			w := request(http.MethodPost, "/workspaces/1/join-code", nil, true)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["join_code"]).To(Equal("xyz789"))
		})
	})
})

var _ = Describe("RequireAuth middleware", func() {
	expiredRequest := func(secureCookies bool) *httptest.ResponseRecorder {
		gin.SetMode(gin.TestMode)
		engine := gin.New()
		auth := &mockAuthService{}
		engine.GET("/protected", middleware.RequireAuth(auth, secureCookies), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "huddle_session", Value: "123"})
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w
	}

	It("clears the cookie on an expired session", func() {
		w := expiredRequest(false)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring("huddle_session=;"))
		Expect(w.Header().Get("Set-Cookie")).NotTo(ContainSubstring("Secure"))
	})

	It("clears the cookie with the Secure attribute when secure cookies are on", func() {
		w := expiredRequest(true)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring("huddle_session=;"))
		Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring("Secure"))
	})
})
