package i18n_test

import (
	"strings"
	"testing"

	"github.com/meridianhq/hr-assistant/backend/internal/model/i18n"
)

func TestInstruction(t *testing.T) {
	if got := i18n.Instruction("en"); got != "" {
		t.Errorf("expected no instruction for English, got %q", got)
	}
	if got := i18n.Instruction("klingon"); got != "" {
		t.Errorf("expected no instruction for unknown code, got %q", got)
	}
	got := i18n.Instruction("es")
	if !strings.Contains(got, "Spanish") || !strings.Contains(got, "Español") {
		t.Errorf("spanish instruction missing language names: %q", got)
	}
}

func TestTranslationsFallBackToEnglish(t *testing.T) {
	unknown := i18n.TranslationsFor("klingon")
	english := i18n.TranslationsFor("en")
	if unknown["app_title"] != english["app_title"] {
		t.Errorf("unknown code did not fall back to English")
	}
}

func TestEveryLanguageHasFullStringTable(t *testing.T) {
	english := i18n.TranslationsFor(i18n.DefaultLanguage)
	for _, lang := range i18n.Supported() {
		table := i18n.TranslationsFor(lang.Code)
		for key := range english {
			if table[key] == "" {
				t.Errorf("language %s missing translation for %q", lang.Code, key)
			}
		}
	}
}
