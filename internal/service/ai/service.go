package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/meridianhq/hr-assistant/backend/internal/config"
	"github.com/meridianhq/hr-assistant/backend/internal/model/chat"
	"github.com/meridianhq/hr-assistant/backend/internal/model/topic"
	"github.com/meridianhq/hr-assistant/backend/internal/service/orchestrator"
)

const historyLimit = 10

// Service implements the orchestrator's Classifier and Composer capabilities
// on top of an Ark chat model via two eino chains.
type Service struct {
	chatModel  model.ChatModel
	classifier compose.Runnable[map[string]any, *schema.Message]
	composer   compose.Runnable[map[string]any, *schema.Message]
}

// NewService builds and compiles both chains.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	classifier, err := compileChain(ctx, chatModel, prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{query}"),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to compile classifier chain: %w", err)
	}

	composer, err := compileChain(ctx, chatModel, prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to compile composer chain: %w", err)
	}

	return &Service{
		chatModel:  chatModel,
		classifier: classifier,
		composer:   composer,
	}, nil
}

func compileChain(ctx context.Context, chatModel model.ChatModel, tpl prompt.ChatTemplate) (compose.Runnable[map[string]any, *schema.Message], error) {
	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(tpl)
	chain.AppendChatModel(chatModel)
	return chain.Compile(ctx)
}

// classifierPayload is the JSON shape the routing prompt asks for.
type classifierPayload struct {
	Agent      string  `json:"agent"`
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// Classify asks the model which topic handles the query. Model or transport
// failures surface as errors; any answer the model gives is mapped onto the
// closed topic set, with low-confidence or out-of-set answers becoming General.
func (s *Service) Classify(ctx context.Context, query string, history []chat.Turn) (topic.Topic, error) {
	input := map[string]any{
		"system": classifierSystemPrompt,
		"query": strings.NewReplacer(
			"{history}", renderHistory(history),
			"{query}", query,
		).Replace(classifierUserPrompt),
	}

	msg, err := s.classifier.Invoke(ctx, input)
	if err != nil {
		return topic.General, fmt.Errorf("classifier invoke failed: %w", err)
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		return topic.General, fmt.Errorf("classifier returned empty output")
	}

	payload, err := parseClassifierOutput(msg.Content)
	if err != nil {
		slog.Warn("classifier output not parseable, routing to general", "error", err)
		return topic.General, nil
	}

	resolved, known := topic.Parse(payload.Agent)
	if !known || payload.Confidence < 0.5 {
		slog.Debug("classifier result demoted to general",
			"agent", payload.Agent, "confidence", payload.Confidence)
		return topic.General, nil
	}

	slog.Debug("classified query", "topic", resolved, "intent", payload.Intent,
		"confidence", payload.Confidence)
	return resolved, nil
}

// Compose generates the final reply text from the formatted data context and
// recent history.
func (s *Service) Compose(ctx context.Context, req orchestrator.ComposeRequest) (string, error) {
	input := map[string]any{
		"system":  buildComposeSystem(req),
		"history": buildHistoryMessages(req.History),
		"query":   req.Query,
	}

	msg, err := s.composer.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("composer invoke failed: %w", err)
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		return "", fmt.Errorf("composer returned empty output")
	}
	return msg.Content, nil
}

// parseClassifierOutput digs the JSON object out of whatever surrounding prose
// the model produced.
func parseClassifierOutput(content string) (*classifierPayload, error) {
	trimmed := strings.TrimSpace(content)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("missing json object")
	}

	payload := &classifierPayload{}
	if err := json.Unmarshal([]byte(trimmed[start:end+1]), payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func buildHistoryMessages(turns []chat.Turn) []*schema.Message {
	if len(turns) == 0 {
		return nil
	}

	startIdx := 0
	if len(turns) > historyLimit {
		startIdx = len(turns) - historyLimit
	}

	history := make([]*schema.Message, 0, len(turns)-startIdx)
	for _, turn := range turns[startIdx:] {
		switch turn.Role {
		case chat.RoleUser:
			history = append(history, schema.UserMessage(turn.Content))
		case chat.RoleAssistant:
			history = append(history, schema.AssistantMessage(turn.Content, nil))
		}
	}
	return history
}

func renderHistory(turns []chat.Turn) string {
	if len(turns) == 0 {
		return "none"
	}

	var b strings.Builder
	for _, turn := range turns {
		role := "User"
		if turn.Role == chat.RoleAssistant {
			role = "Assistant"
		}
		content := turn.Content
		if len(content) > 200 {
			content = content[:200] + "..."
		}
		fmt.Fprintf(&b, "%s: %s\n", role, content)
	}
	return strings.TrimRight(b.String(), "\n")
}
