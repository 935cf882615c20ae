package summary

import (
	"context"
	"fmt"
	"testing"

	"synthia-server/internal/domain"
	"synthia-server/internal/domain/conversation"
	"synthia-server/internal/domain/llm"
	"synthia-server/internal/utils/platformerrors"
)

type mockSummaryRepo struct {
	stored      *Summary
	upsertCalls int
}

func (m *mockSummaryRepo) FindByConversationID(_ context.Context, conversationID string) (*Summary, error) {
	if m.stored == nil || m.stored.ConversationPublicID != conversationID {
		return nil, platformerrors.NewError(platformerrors.ErrorTypeNotFound, platformerrors.LayerRepository, "summary not found")
	}
	copied := *m.stored
	return &copied, nil
}

func (m *mockSummaryRepo) Upsert(_ context.Context, s *Summary) error {
	m.upsertCalls++
	if m.stored != nil && m.stored.ConversationPublicID == s.ConversationPublicID {
		m.stored.Payload = s.Payload
		m.stored.MessageCountAtGeneration = s.MessageCountAtGeneration
		return nil
	}
	copied := *s
	m.stored = &copied
	return nil
}

type mockConversationRepo struct {
	conversations map[string]*conversation.Conversation
	messages      []*conversation.Message
}

func (m *mockConversationRepo) FindByPublicID(_ context.Context, companyID, publicID string) (*conversation.Conversation, error) {
	conv, ok := m.conversations[publicID]
	if !ok || conv.CompanyPublicID != companyID {
		return nil, platformerrors.NewError(platformerrors.ErrorTypeNotFound, platformerrors.LayerRepository, "conversation not found")
	}
	return conv, nil
}
func (m *mockConversationRepo) ListByCompany(context.Context, string) ([]*conversation.Conversation, error) {
	return nil, nil
}
func (m *mockConversationRepo) Create(context.Context, *conversation.Conversation) error { return nil }
func (m *mockConversationRepo) ListMessages(context.Context, string) ([]*conversation.Message, error) {
	return m.messages, nil
}
func (m *mockConversationRepo) CountMessages(context.Context, string) (int, error) {
	return len(m.messages), nil
}
func (m *mockConversationRepo) CountMessagesByRole(_ context.Context, _ string, role conversation.MessageRole) (int, error) {
	n := 0
	for _, msg := range m.messages {
		if msg.Role == role {
			n++
		}
	}
	return n, nil
}
func (m *mockConversationRepo) AppendMessage(_ context.Context, msg *conversation.Message) error {
	m.messages = append(m.messages, msg)
	return nil
}

type stubProvider struct {
	completeFunc func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResult, error)
}

func (s *stubProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResult, error) {
	return s.completeFunc(ctx, req)
}

var testPrincipal = domain.Principal{CompanyPublicID: "comp_test"}

const testConversationID = "conv_1"

func buildMessages(userTurns, assistantTurns int) []*conversation.Message {
	var messages []*conversation.Message
	for i := 0; i < userTurns || i < assistantTurns; i++ {
		if i < userTurns {
			messages = append(messages, &conversation.Message{
				PublicID:             fmt.Sprintf("msg_u%d", i),
				ConversationPublicID: testConversationID,
				Role:                 conversation.RoleUser,
				Content:              fmt.Sprintf("user turn %d", i),
			})
		}
		if i < assistantTurns {
			messages = append(messages, &conversation.Message{
				PublicID:             fmt.Sprintf("msg_a%d", i),
				ConversationPublicID: testConversationID,
				Role:                 conversation.RoleAssistant,
				Content:              fmt.Sprintf("assistant turn %d", i),
			})
		}
	}
	return messages
}

func newTestFixture(messages []*conversation.Message, provider llm.Provider) (*Service, *mockSummaryRepo, *mockConversationRepo) {
	summaries := &mockSummaryRepo{}
	conversations := &mockConversationRepo{
		conversations: map[string]*conversation.Conversation{
			testConversationID: {PublicID: testConversationID, CompanyPublicID: "comp_test"},
		},
		messages: messages,
	}
	return NewService(summaries, conversations, provider, 1000), summaries, conversations
}

const validAnalysisJSON = `{"key_insights":["wants integrations","values speed"],"top_objections":["price"],"executive_summary":["a","b","c","d","e"]}`

func jsonProvider() *stubProvider {
	return &stubProvider{completeFunc: func(_ context.Context, _ llm.CompletionRequest) (*llm.CompletionResult, error) {
		return &llm.CompletionResult{Content: validAnalysisJSON}, nil
	}}
}

func TestGetNoSummary(t *testing.T) {
	svc, _, _ := newTestFixture(buildMessages(3, 3), jsonProvider())

	result, err := svc.Get(context.Background(), testPrincipal, testConversationID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if result.Summary != nil || result.IsStale {
		t.Errorf("Get() = {%v, %v}, want {nil, false}", result.Summary, result.IsStale)
	}
}

func TestGetUnknownConversationHidesExistence(t *testing.T) {
	svc, _, _ := newTestFixture(nil, jsonProvider())

	result, err := svc.Get(context.Background(), testPrincipal, "conv_unknown")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if result.Summary != nil || result.IsStale {
		t.Errorf("Get() for unknown conversation = {%v, %v}, want {nil, false}", result.Summary, result.IsStale)
	}
}

func TestGenerateRequiresMessages(t *testing.T) {
	svc, _, _ := newTestFixture(nil, jsonProvider())

	_, err := svc.Generate(context.Background(), testPrincipal, testConversationID)
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Fatalf("Generate() error = %v, want NotFound", err)
	}
}

func TestGenerateRequiresThreeUserMessages(t *testing.T) {
	svc, summaries, _ := newTestFixture(buildMessages(2, 2), jsonProvider())

	_, err := svc.Generate(context.Background(), testPrincipal, testConversationID)
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Fatalf("Generate() error = %v, want Validation", err)
	}
	if summaries.upsertCalls != 0 {
		t.Error("no summary should be written below the user message threshold")
	}
}

func TestGenerateSucceedsAtExactlyThreeUserMessages(t *testing.T) {
	svc, summaries, _ := newTestFixture(buildMessages(3, 3), jsonProvider())

	record, err := svc.Generate(context.Background(), testPrincipal, testConversationID)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if record.MessageCountAtGeneration != 6 {
		t.Errorf("MessageCountAtGeneration = %d, want 6", record.MessageCountAtGeneration)
	}
	if len(record.Payload.KeyInsights) != 2 || len(record.Payload.ExecutiveSummary) != 5 {
		t.Errorf("payload not parsed from provider output: %+v", record.Payload)
	}
	if summaries.upsertCalls != 1 {
		t.Errorf("upsert calls = %d, want 1", summaries.upsertCalls)
	}

	result, err := svc.Get(context.Background(), testPrincipal, testConversationID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if result.IsStale {
		t.Error("freshly generated summary reported stale")
	}
}

func TestGenerateRegenerationUpdatesInPlace(t *testing.T) {
	svc, summaries, conversations := newTestFixture(buildMessages(3, 3), jsonProvider())

	first, err := svc.Generate(context.Background(), testPrincipal, testConversationID)
	if err != nil {
		t.Fatalf("first Generate() error = %v", err)
	}

	if err := conversations.AppendMessage(context.Background(), &conversation.Message{
		PublicID:             "msg_extra",
		ConversationPublicID: testConversationID,
		Role:                 conversation.RoleUser,
		Content:              "one more thing",
	}); err != nil {
		t.Fatalf("AppendMessage() error = %v", err)
	}

	result, err := svc.Get(context.Background(), testPrincipal, testConversationID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !result.IsStale {
		t.Error("summary should be stale after a new message")
	}

	second, err := svc.Generate(context.Background(), testPrincipal, testConversationID)
	if err != nil {
		t.Fatalf("second Generate() error = %v", err)
	}
	if second.MessageCountAtGeneration != 7 {
		t.Errorf("MessageCountAtGeneration = %d, want 7", second.MessageCountAtGeneration)
	}
	if second.ConversationPublicID != first.ConversationPublicID {
		t.Error("regeneration produced a row for a different conversation")
	}
	if summaries.stored == nil || summaries.upsertCalls != 2 {
		t.Errorf("expected exactly one row updated twice, upsert calls = %d", summaries.upsertCalls)
	}
}

func TestGenerateSnapshotsCountBeforeCompletion(t *testing.T) {
	var conversations *mockConversationRepo
	provider := &stubProvider{completeFunc: func(_ context.Context, _ llm.CompletionRequest) (*llm.CompletionResult, error) {
		// A message arriving mid generation must not be reflected in
		// the recorded count.
		conversations.messages = append(conversations.messages, &conversation.Message{
			PublicID:             "msg_race",
			ConversationPublicID: testConversationID,
			Role:                 conversation.RoleUser,
			Content:              "arrived mid generation",
		})
		return &llm.CompletionResult{Content: validAnalysisJSON}, nil
	}}
	svc, _, convRepo := newTestFixture(buildMessages(3, 3), provider)
	conversations = convRepo

	record, err := svc.Generate(context.Background(), testPrincipal, testConversationID)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if record.MessageCountAtGeneration != 6 {
		t.Errorf("MessageCountAtGeneration = %d, want pre-completion count 6", record.MessageCountAtGeneration)
	}

	result, err := svc.Get(context.Background(), testPrincipal, testConversationID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !result.IsStale {
		t.Error("summary should read stale after the mid generation append")
	}
}

func TestGenerateRateLimitedPersistsMockSummary(t *testing.T) {
	provider := &stubProvider{completeFunc: func(_ context.Context, _ llm.CompletionRequest) (*llm.CompletionResult, error) {
		return nil, platformerrors.NewError(platformerrors.ErrorTypeRateLimited, platformerrors.LayerInfrastructure, "quota exhausted")
	}}
	svc, summaries, _ := newTestFixture(buildMessages(3, 3), provider)

	record, err := svc.Generate(context.Background(), testPrincipal, testConversationID)
	if err != nil {
		t.Fatalf("Generate() error = %v, want degraded success", err)
	}
	if len(record.Payload.KeyInsights) == 0 || len(record.Payload.TopObjections) == 0 {
		t.Error("mock summary must have non-empty insights and objections")
	}
	if len(record.Payload.ExecutiveSummary) != 5 {
		t.Errorf("mock executive summary entries = %d, want 5", len(record.Payload.ExecutiveSummary))
	}
	if record.MessageCountAtGeneration != 6 {
		t.Errorf("MessageCountAtGeneration = %d, want 6", record.MessageCountAtGeneration)
	}
	if summaries.upsertCalls != 1 {
		t.Error("mock summary must be persisted through the normal upsert path")
	}
}

func TestGenerateMalformedJSONFails(t *testing.T) {
	provider := &stubProvider{completeFunc: func(_ context.Context, _ llm.CompletionRequest) (*llm.CompletionResult, error) {
		return &llm.CompletionResult{Content: "not json at all"}, nil
	}}
	svc, summaries, _ := newTestFixture(buildMessages(3, 3), provider)

	_, err := svc.Generate(context.Background(), testPrincipal, testConversationID)
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal) {
		t.Fatalf("Generate() error = %v, want External", err)
	}
	if summaries.upsertCalls != 0 {
		t.Error("malformed output must not be persisted")
	}
}

func TestGenerateOtherCompanyConversation(t *testing.T) {
	svc, _, _ := newTestFixture(buildMessages(3, 3), jsonProvider())

	other := domain.Principal{CompanyPublicID: "comp_other"}
	_, err := svc.Generate(context.Background(), other, testConversationID)
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Fatalf("Generate() error = %v, want NotFound", err)
	}
}

func TestGenerateRequestsJSONResponse(t *testing.T) {
	var captured llm.CompletionRequest
	provider := &stubProvider{completeFunc: func(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResult, error) {
		captured = req
		return &llm.CompletionResult{Content: validAnalysisJSON}, nil
	}}
	svc, _, _ := newTestFixture(buildMessages(3, 3), provider)

	if _, err := svc.Generate(context.Background(), testPrincipal, testConversationID); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !captured.JSONResponse {
		t.Error("analysis request must ask for a JSON response")
	}
}
