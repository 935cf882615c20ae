package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"synthia-server/internal/domain"
	"synthia-server/internal/domain/chat"
	"synthia-server/internal/utils/platformerrors"
)

type mockChatService struct {
	respondFunc func(ctx context.Context, principal domain.Principal, personaID, message string, history []chat.Turn) (string, error)
}

func (m *mockChatService) Respond(ctx context.Context, principal domain.Principal, personaID, message string, history []chat.Turn) (string, error) {
	return m.respondFunc(ctx, principal, personaID, message, history)
}

func setupChatRouter(service ChatService, withPrincipal bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if withPrincipal {
		router.Use(func(c *gin.Context) {
			c.Set("auth.principal", domain.Principal{CompanyPublicID: "comp_test"})
		})
	}
	router.POST("/api/chat", NewChatHandler(service).Respond)
	return router
}

func TestChatHandlerSuccess(t *testing.T) {
	service := &mockChatService{
		respondFunc: func(_ context.Context, principal domain.Principal, personaID, message string, history []chat.Turn) (string, error) {
			if principal.CompanyPublicID != "comp_test" {
				t.Errorf("principal = %q", principal.CompanyPublicID)
			}
			if personaID != "pers_alex" || message != "Hi" {
				t.Errorf("unexpected args: %q %q", personaID, message)
			}
			if len(history) != 1 || history[0].Role != "user" {
				t.Errorf("history not forwarded: %+v", history)
			}
			return "in character reply", nil
		},
	}
	router := setupChatRouter(service, true)

	body := `{"personaId":"pers_alex","message":"Hi","conversationHistory":[{"role":"user","content":"earlier"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["response"] != "in character reply" {
		t.Errorf("response = %q", resp["response"])
	}
}

func TestChatHandlerMissingPrincipal(t *testing.T) {
	service := &mockChatService{
		respondFunc: func(context.Context, domain.Principal, string, string, []chat.Turn) (string, error) {
			t.Fatal("service must not be called without a principal")
			return "", nil
		},
	}
	router := setupChatRouter(service, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"personaId":"pers_alex","message":"Hi"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestChatHandlerMissingPersonaID(t *testing.T) {
	service := &mockChatService{
		respondFunc: func(context.Context, domain.Principal, string, string, []chat.Turn) (string, error) {
			t.Fatal("service must not be called for invalid input")
			return "", nil
		},
	}
	router := setupChatRouter(service, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"Hi"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestChatHandlerNotFoundMapsTo404(t *testing.T) {
	service := &mockChatService{
		respondFunc: func(context.Context, domain.Principal, string, string, []chat.Turn) (string, error) {
			return "", platformerrors.NewError(platformerrors.ErrorTypeNotFound, platformerrors.LayerRepository, "persona not found")
		},
	}
	router := setupChatRouter(service, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"personaId":"pers_other","message":"Hi"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestChatHandlerInternalErrorHidesDetail(t *testing.T) {
	service := &mockChatService{
		respondFunc: func(context.Context, domain.Principal, string, string, []chat.Turn) (string, error) {
			return "", platformerrors.NewError(platformerrors.ErrorTypeExternal, platformerrors.LayerInfrastructure, "provider secret detail")
		},
	}
	router := setupChatRouter(service, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"personaId":"pers_alex","message":"Hi"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "provider secret detail") {
		t.Error("internal detail leaked to the caller")
	}
}
