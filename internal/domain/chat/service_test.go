package chat

import (
	"context"
	"strings"
	"testing"

	"synthia-server/internal/domain"
	"synthia-server/internal/domain/company"
	"synthia-server/internal/domain/llm"
	"synthia-server/internal/domain/persona"
	"synthia-server/internal/utils/platformerrors"
)

type mockPersonaRepo struct {
	findFunc func(ctx context.Context, companyID, publicID string) (*persona.Persona, error)
}

func (m *mockPersonaRepo) FindByPublicID(ctx context.Context, companyID, publicID string) (*persona.Persona, error) {
	return m.findFunc(ctx, companyID, publicID)
}
func (m *mockPersonaRepo) ListByCompany(context.Context, string) ([]*persona.Persona, error) {
	return nil, nil
}
func (m *mockPersonaRepo) Create(context.Context, *persona.Persona) error { return nil }
func (m *mockPersonaRepo) Update(context.Context, *persona.Persona) error { return nil }
func (m *mockPersonaRepo) Delete(context.Context, string, string) error   { return nil }

type mockCompanyRepo struct {
	findFunc func(ctx context.Context, publicID string) (*company.Company, error)
}

func (m *mockCompanyRepo) FindByPublicID(ctx context.Context, publicID string) (*company.Company, error) {
	return m.findFunc(ctx, publicID)
}
func (m *mockCompanyRepo) Create(context.Context, *company.Company) error { return nil }
func (m *mockCompanyRepo) Update(context.Context, *company.Company) error { return nil }

type mockProvider struct {
	completeFunc func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResult, error)
}

func (m *mockProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResult, error) {
	return m.completeFunc(ctx, req)
}

var testPrincipal = domain.Principal{CompanyPublicID: "comp_test"}

func testPersona() *persona.Persona {
	return &persona.Persona{
		PublicID:         "pers_alex",
		CompanyPublicID:  "comp_test",
		Name:             "Alex",
		ShortDescription: "a pragmatic engineering manager",
		Parameters: persona.Parameters{
			Occupation:  "Engineering Manager",
			Motivations: []string{"ship faster"},
			PainPoints:  []string{"tool sprawl"},
		},
	}
}

func testCompany() *company.Company {
	return &company.Company{
		PublicID:          "comp_test",
		Name:              "Acme Corp",
		PublicContextText: "Acme sells developer tooling.",
	}
}

func newTestService(personaRepo *mockPersonaRepo, companyRepo *mockCompanyRepo, provider *mockProvider) *Service {
	return NewService(personaRepo, companyRepo, provider, 500)
}

func TestRespondReturnsCompletionContent(t *testing.T) {
	var captured llm.CompletionRequest
	provider := &mockProvider{
		completeFunc: func(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResult, error) {
			captured = req
			return &llm.CompletionResult{Content: "Hello, I have thoughts on that."}, nil
		},
	}
	svc := newTestService(
		&mockPersonaRepo{findFunc: func(_ context.Context, companyID, publicID string) (*persona.Persona, error) {
			if companyID != "comp_test" || publicID != "pers_alex" {
				t.Fatalf("unexpected lookup: %s %s", companyID, publicID)
			}
			return testPersona(), nil
		}},
		&mockCompanyRepo{findFunc: func(_ context.Context, _ string) (*company.Company, error) {
			return testCompany(), nil
		}},
		provider,
	)

	reply, err := svc.Respond(context.Background(), testPrincipal, "pers_alex", "Hi", nil)
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if reply != "Hello, I have thoughts on that." {
		t.Errorf("Respond() = %q", reply)
	}

	if captured.UserMessage != "Hi" {
		t.Errorf("user message = %q, want %q", captured.UserMessage, "Hi")
	}
	for _, want := range []string{"Alex", "Acme Corp", "Engineering Manager", "Stay in character"} {
		if !strings.Contains(captured.SystemPrompt, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestRespondRendersHistoryInOrder(t *testing.T) {
	var captured llm.CompletionRequest
	provider := &mockProvider{
		completeFunc: func(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResult, error) {
			captured = req
			return &llm.CompletionResult{Content: "ok"}, nil
		},
	}
	svc := newTestService(
		&mockPersonaRepo{findFunc: func(_ context.Context, _, _ string) (*persona.Persona, error) {
			return testPersona(), nil
		}},
		&mockCompanyRepo{findFunc: func(_ context.Context, _ string) (*company.Company, error) {
			return testCompany(), nil
		}},
		provider,
	)

	history := []Turn{
		{Role: "user", Content: "first question"},
		{Role: "assistant", Content: "first answer"},
	}
	if _, err := svc.Respond(context.Background(), testPrincipal, "pers_alex", "followup", history); err != nil {
		t.Fatalf("Respond() error = %v", err)
	}

	firstIdx := strings.Index(captured.SystemPrompt, "first question")
	secondIdx := strings.Index(captured.SystemPrompt, "first answer")
	if firstIdx < 0 || secondIdx < 0 {
		t.Fatal("history turns missing from system prompt")
	}
	if firstIdx > secondIdx {
		t.Error("history turns rendered out of order")
	}
}

func TestRespondEmptyCompletionUsesApology(t *testing.T) {
	svc := newTestService(
		&mockPersonaRepo{findFunc: func(_ context.Context, _, _ string) (*persona.Persona, error) {
			return testPersona(), nil
		}},
		&mockCompanyRepo{findFunc: func(_ context.Context, _ string) (*company.Company, error) {
			return testCompany(), nil
		}},
		&mockProvider{completeFunc: func(_ context.Context, _ llm.CompletionRequest) (*llm.CompletionResult, error) {
			return &llm.CompletionResult{Content: ""}, nil
		}},
	)

	reply, err := svc.Respond(context.Background(), testPrincipal, "pers_alex", "Hi", nil)
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if reply != emptyCompletionApology {
		t.Errorf("Respond() = %q, want apology", reply)
	}
}

func TestRespondRateLimitedReturnsMock(t *testing.T) {
	svc := newTestService(
		&mockPersonaRepo{findFunc: func(_ context.Context, _, _ string) (*persona.Persona, error) {
			return testPersona(), nil
		}},
		&mockCompanyRepo{findFunc: func(_ context.Context, _ string) (*company.Company, error) {
			return testCompany(), nil
		}},
		&mockProvider{completeFunc: func(_ context.Context, _ llm.CompletionRequest) (*llm.CompletionResult, error) {
			return nil, platformerrors.NewError(platformerrors.ErrorTypeRateLimited, platformerrors.LayerInfrastructure, "quota exhausted")
		}},
	)

	reply, err := svc.Respond(context.Background(), testPrincipal, "pers_alex", "Hi", nil)
	if err != nil {
		t.Fatalf("Respond() error = %v, want degraded success", err)
	}
	for _, want := range []string{"Alex", "a pragmatic engineering manager", "Acme Corp", "Mock"} {
		if !strings.Contains(reply, want) {
			t.Errorf("mock response missing %q: %q", want, reply)
		}
	}
}

func TestRespondOtherProviderErrorSurfaces(t *testing.T) {
	svc := newTestService(
		&mockPersonaRepo{findFunc: func(_ context.Context, _, _ string) (*persona.Persona, error) {
			return testPersona(), nil
		}},
		&mockCompanyRepo{findFunc: func(_ context.Context, _ string) (*company.Company, error) {
			return testCompany(), nil
		}},
		&mockProvider{completeFunc: func(_ context.Context, _ llm.CompletionRequest) (*llm.CompletionResult, error) {
			return nil, platformerrors.NewError(platformerrors.ErrorTypeExternal, platformerrors.LayerInfrastructure, "provider down")
		}},
	)

	if _, err := svc.Respond(context.Background(), testPrincipal, "pers_alex", "Hi", nil); err == nil {
		t.Fatal("Respond() expected error for non rate limit failure")
	}
}

func TestRespondPersonaNotOwned(t *testing.T) {
	svc := newTestService(
		&mockPersonaRepo{findFunc: func(_ context.Context, _, _ string) (*persona.Persona, error) {
			return nil, platformerrors.NewError(platformerrors.ErrorTypeNotFound, platformerrors.LayerRepository, "persona not found")
		}},
		&mockCompanyRepo{findFunc: func(_ context.Context, _ string) (*company.Company, error) {
			t.Fatal("company should not be loaded when persona lookup fails")
			return nil, nil
		}},
		&mockProvider{completeFunc: func(_ context.Context, _ llm.CompletionRequest) (*llm.CompletionResult, error) {
			t.Fatal("provider should not be called when persona lookup fails")
			return nil, nil
		}},
	)

	_, err := svc.Respond(context.Background(), testPrincipal, "pers_other", "Hi", nil)
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Fatalf("Respond() error = %v, want NotFound", err)
	}
}

func TestRespondRequiresMessage(t *testing.T) {
	svc := newTestService(
		&mockPersonaRepo{findFunc: func(_ context.Context, _, _ string) (*persona.Persona, error) {
			return testPersona(), nil
		}},
		&mockCompanyRepo{findFunc: func(_ context.Context, _ string) (*company.Company, error) {
			return testCompany(), nil
		}},
		&mockProvider{completeFunc: func(_ context.Context, _ llm.CompletionRequest) (*llm.CompletionResult, error) {
			return &llm.CompletionResult{Content: "ok"}, nil
		}},
	)

	_, err := svc.Respond(context.Background(), testPrincipal, "pers_alex", "", nil)
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Fatalf("Respond() error = %v, want Validation", err)
	}
}
