package orchestrator

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/meridianhq/hr-assistant/backend/internal/analysis/intent"
	"github.com/meridianhq/hr-assistant/backend/internal/model/chat"
	"github.com/meridianhq/hr-assistant/backend/internal/model/i18n"
	"github.com/meridianhq/hr-assistant/backend/internal/model/reference"
	"github.com/meridianhq/hr-assistant/backend/internal/model/topic"
	"github.com/meridianhq/hr-assistant/backend/internal/service/memory"
)

var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrUnknownEmployee = errors.New("employee not found")
)

// Classifier picks a topic for a query. Implemented by the AI service; nil
// when no model is configured, in which case keyword routing applies.
type Classifier interface {
	Classify(ctx context.Context, query string, history []chat.Turn) (topic.Topic, error)
}

// ComposeRequest carries everything the composer needs for one reply.
type ComposeRequest struct {
	Topic               topic.Topic
	Query               string
	DataContext         string
	LanguageInstruction string
	History             []chat.Turn
}

// Composer phrases the final reply. Implemented by the AI service; nil when no
// model is configured, in which case the formatted data context is returned
// directly.
type Composer interface {
	Compose(ctx context.Context, req ComposeRequest) (string, error)
}

// Archiver receives an audit copy of every stored turn.
type Archiver interface {
	SaveTurn(turn chat.Turn) error
}

// DefaultHistoryLimit is the context window surfaced to the model; older turns
// stay in memory but are not resurfaced.
const (
	DefaultHistoryLimit = 10
	DefaultTimeout      = 30 * time.Second
)

// Options tunes the orchestrator. Zero values fall back to defaults; Archive
// and Meter are optional.
type Options struct {
	HistoryLimit int
	Timeout      time.Duration
	Archive      Archiver
	Meter        metric.Meter
}

// Service runs the chat-turn pipeline: validate, remember, classify, format,
// compose, remember again.
type Service struct {
	memory       *memory.Store
	data         reference.Store
	classifier   Classifier
	composer     Composer
	archive      Archiver
	historyLimit int
	timeout      time.Duration

	turns    metric.Int64Counter
	failures metric.Int64Counter
}

// NewService wires the orchestrator. classifier and composer may be nil.
func NewService(mem *memory.Store, data reference.Store, classifier Classifier, composer Composer, opts Options) *Service {
	s := &Service{
		memory:       mem,
		data:         data,
		classifier:   classifier,
		composer:     composer,
		archive:      opts.Archive,
		historyLimit: opts.HistoryLimit,
		timeout:      opts.Timeout,
	}
	if s.historyLimit <= 0 {
		s.historyLimit = DefaultHistoryLimit
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}

	if opts.Meter != nil {
		var err error
		if s.turns, err = opts.Meter.Int64Counter("chat.turns"); err != nil {
			slog.Warn("failed to create turn counter", "error", err)
		}
		if s.failures, err = opts.Meter.Int64Counter("chat.collaborator_failures"); err != nil {
			slog.Warn("failed to create failure counter", "error", err)
		}
	}
	return s
}

// HandleMessage processes one chat turn. Validation failures return errors
// with no state mutated; once the user turn is stored, every outcome is a
// Reply — collaborator faults degrade to a "System" apology instead of
// propagating.
func (s *Service) HandleMessage(ctx context.Context, sessionID, employeeID, message, language string) (chat.Reply, error) {
	text := strings.TrimSpace(message)
	if text == "" {
		return chat.Reply{}, ErrEmptyMessage
	}
	if _, ok := s.data.FindEmployee(employeeID); !ok {
		return chat.Reply{}, ErrUnknownEmployee
	}

	userTurn := s.memory.Append(sessionID, chat.Turn{
		Role:    chat.RoleUser,
		Content: text,
	})
	s.archiveTurn(userTurn)

	// History window for the model, excluding the turn just appended: the
	// query travels separately in the prompt.
	history := s.memory.Recent(sessionID, s.historyLimit)
	if n := len(history); n > 0 && history[n-1].ID == userTurn.ID {
		history = history[:n-1]
	}

	reply := s.respond(ctx, sessionID, employeeID, text, language, history)

	assistantTurn := s.memory.Append(sessionID, chat.Turn{
		Role:      chat.RoleAssistant,
		Content:   reply.Response,
		AgentName: reply.AgentName,
	})
	s.archiveTurn(assistantTurn)

	s.count(s.turns, attribute.String("agent", reply.AgentName))
	return reply, nil
}

func (s *Service) respond(ctx context.Context, sessionID, employeeID, text, language string, history []chat.Turn) chat.Reply {
	resolved, degraded := s.classify(ctx, sessionID, text, history)
	if degraded {
		return degradedReply(language)
	}

	dataContext := s.contextForTopic(resolved, employeeID)

	if s.composer == nil {
		return ruleReply(resolved, text, dataContext, s.data, employeeID)
	}

	composeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	composed, err := s.composer.Compose(composeCtx, ComposeRequest{
		Topic:               resolved,
		Query:               text,
		DataContext:         dataContext,
		LanguageInstruction: i18n.Instruction(language),
		History:             history,
	})
	if err != nil {
		slog.Error("composer failed, sending degraded reply",
			"session", sessionID, "topic", resolved, "error", err)
		s.count(s.failures, attribute.String("collaborator", "composer"))
		return degradedReply(language)
	}

	return chat.Reply{
		Response:         composed,
		AgentName:        resolved.AgentName(),
		AgentDescription: resolved.Description(),
		Timestamp:        time.Now().UTC(),
	}
}

// classify resolves the topic. A classifier error or timeout means the model
// collaborator is down, so the caller should degrade immediately; an out-of-set
// answer from a live classifier is simply General.
func (s *Service) classify(ctx context.Context, sessionID, text string, history []chat.Turn) (topic.Topic, bool) {
	if s.classifier == nil {
		return intent.Route(text), false
	}

	classifyCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	resolved, err := s.classifier.Classify(classifyCtx, text, history)
	if err != nil {
		slog.Error("classifier failed, sending degraded reply",
			"session", sessionID, "error", err)
		s.count(s.failures, attribute.String("collaborator", "classifier"))
		return topic.General, true
	}
	return resolved, false
}

func (s *Service) archiveTurn(turn chat.Turn) {
	if s.archive == nil {
		return
	}
	if err := s.archive.SaveTurn(turn); err != nil {
		slog.Warn("failed to archive turn", "session", turn.SessionID, "error", err)
	}
}

func (s *Service) count(counter metric.Int64Counter, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(context.Background(), 1, metric.WithAttributes(attrs...))
}
