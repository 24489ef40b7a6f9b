package intent

import (
	"strings"

	"github.com/meridianhq/hr-assistant/backend/internal/model/topic"
)

// Keyword routing is the deterministic fallback used when no language model is
// configured. It deliberately favours precision over recall: an unmatched query
// routes to General rather than guessing.

var keywordBuckets = map[topic.Topic][]string{
	topic.Payslip: {
		"payslip", "salary", "pay", "payment", "wage", "income", "deduction",
		"tax", "gross", "net", "earnings", "compensation", "paid",
	},
	topic.Leave: {
		"leave", "vacation", "holiday", "time off", "pto", "sick", "annual",
		"personal", "absence", "day off", "days off",
	},
	topic.Employee: {
		"profile", "employee", "team", "department", "manager", "coworker",
		"colleague", "who am i",
	},
	topic.Attendance: {
		"attendance", "clock", "check in", "check out", "hours", "overtime",
		"schedule", "late",
	},
	topic.Benefits: {
		"benefit", "insurance", "health", "medical", "dental", "401k",
		"retirement", "wellness",
	},
	topic.Performance: {
		"performance", "review", "rating", "goals", "goal", "kpi", "feedback",
		"evaluation", "appraisal",
	},
	topic.Policy: {
		"policy", "policies", "rule", "rules", "guideline", "wfh",
		"work from home", "dress code", "faq",
	},
}

var greetingKeywords = []string{
	"hello", "hi", "hey", "good morning", "good afternoon", "greetings",
}

var helpKeywords = []string{
	"help", "what can you do", "how can you help", "options", "commands",
}

// Route scores every topic's keyword bucket against the query and returns the
// best match. Total over all input; no match yields General.
func Route(text string) topic.Topic {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return topic.General
	}

	best := topic.General
	bestScore := 0
	for _, t := range topic.All() {
		score := 0
		for _, keyword := range keywordBuckets[t] {
			if strings.Contains(normalized, keyword) {
				score++
			}
		}
		if score > bestScore {
			best = t
			bestScore = score
		}
	}
	return best
}

// IsGreeting reports whether the query is a plain salutation.
func IsGreeting(text string) bool {
	return containsAny(text, greetingKeywords)
}

// IsHelp reports whether the user is asking what the assistant can do.
func IsHelp(text string) bool {
	return containsAny(text, helpKeywords)
}

// containsAny matches multi-word keywords as substrings and single words
// against whole tokens, so "hi" does not fire inside "which".
func containsAny(text string, keywords []string) bool {
	normalized := strings.ToLower(strings.TrimSpace(text))
	words := strings.FieldsFunc(normalized, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == '!' || r == '?'
	})
	for _, keyword := range keywords {
		if strings.Contains(keyword, " ") {
			if strings.Contains(normalized, keyword) {
				return true
			}
			continue
		}
		for _, word := range words {
			if word == keyword {
				return true
			}
		}
	}
	return false
}
