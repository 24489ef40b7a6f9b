package orchestrator

import (
	"fmt"
	"strings"
	"time"

	"github.com/meridianhq/hr-assistant/backend/internal/analysis/intent"
	"github.com/meridianhq/hr-assistant/backend/internal/model/chat"
	"github.com/meridianhq/hr-assistant/backend/internal/model/i18n"
	"github.com/meridianhq/hr-assistant/backend/internal/model/reference"
	"github.com/meridianhq/hr-assistant/backend/internal/model/topic"
)

// degradedApologies covers the supported UI languages so an outage still
// answers in the language the user asked in.
var degradedApologies = map[string]string{
	"en": "Sorry, I'm having trouble reaching the HR knowledge service right now. Please try again in a moment.",
	"es": "Lo siento, ahora mismo no puedo acceder al servicio de RRHH. Inténtalo de nuevo en un momento.",
	"fr": "Désolé, je ne parviens pas à joindre le service RH pour le moment. Veuillez réessayer dans un instant.",
	"ar": "عذراً، لا يمكنني الوصول إلى خدمة الموارد البشرية حالياً. يرجى المحاولة مرة أخرى بعد قليل.",
	"zh": "抱歉，暂时无法连接人力资源服务，请稍后再试。",
}

// degradedReply is the always-available answer when a collaborator is down.
// The user turn has already been stored by the time this runs.
func degradedReply(language string) chat.Reply {
	text, ok := degradedApologies[language]
	if !ok {
		text = degradedApologies[i18n.DefaultLanguage]
	}
	return chat.Reply{
		Response:         text,
		AgentName:        topic.SystemAgentName,
		AgentDescription: "Fallback response while a service is unavailable",
		Timestamp:        time.Now().UTC(),
	}
}

// ruleReply answers without a language model: greetings and help get canned
// text, topic queries get the formatted records directly.
func ruleReply(t topic.Topic, query, dataContext string, data reference.Store, employeeID string) chat.Reply {
	var text string
	switch {
	case intent.IsGreeting(query):
		text = greetingText(data, employeeID)
		t = topic.General
	case intent.IsHelp(query):
		text = helpText()
		t = topic.General
	case t == topic.General:
		text = generalText(query)
	default:
		text = dataContext
	}

	return chat.Reply{
		Response:         text,
		AgentName:        t.AgentName(),
		AgentDescription: t.Description(),
		Timestamp:        time.Now().UTC(),
	}
}

func greetingText(data reference.Store, employeeID string) string {
	name := "there"
	if emp, ok := data.FindEmployee(employeeID); ok {
		if first, _, found := strings.Cut(emp.Name, " "); found || first != "" {
			name = first
		}
	}
	return fmt.Sprintf("Hello, %s! I'm your HR assistant. Ask me about payslips, leave, attendance, benefits, performance, policies, or your profile.", name)
}

func helpText() string {
	var b strings.Builder
	b.WriteString("I can help you with:\n")
	for _, t := range topic.All() {
		if t == topic.General {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", t.AgentName(), t.Description())
	}
	b.WriteString("Just type your question!")
	return b.String()
}

func generalText(query string) string {
	return fmt.Sprintf("I'm not sure how to help with %q. Try asking about payslips, leave, attendance, benefits, performance, policies, or your profile.", query)
}
