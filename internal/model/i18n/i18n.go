package i18n

import "fmt"

// DefaultLanguage is the fallback for unknown or missing language codes.
const DefaultLanguage = "en"

// Language describes one UI language option.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
	Flag       string `json:"flag"`
	RTL        bool   `json:"rtl"`
}

// Supported lists the languages offered by the frontend selector.
func Supported() []Language {
	return []Language{
		{Code: "en", Name: "English", NativeName: "English", Flag: "🇬🇧"},
		{Code: "es", Name: "Spanish", NativeName: "Español", Flag: "🇪🇸"},
		{Code: "fr", Name: "French", NativeName: "Français", Flag: "🇫🇷"},
		{Code: "ar", Name: "Arabic", NativeName: "العربية", Flag: "🇸🇦", RTL: true},
		{Code: "zh", Name: "Chinese", NativeName: "中文", Flag: "🇨🇳"},
	}
}

// IsSupported reports whether code is a known language code.
func IsSupported(code string) bool {
	for _, lang := range Supported() {
		if lang.Code == code {
			return true
		}
	}
	return false
}

// Instruction returns the prompt fragment that makes the model answer in the
// requested language. English needs none.
func Instruction(code string) string {
	if code == DefaultLanguage || !IsSupported(code) {
		return ""
	}
	var lang Language
	for _, l := range Supported() {
		if l.Code == code {
			lang = l
			break
		}
	}
	return fmt.Sprintf(
		"IMPORTANT: Respond entirely in %s (%s). All text, headers, and explanations must be in %s. Only keep technical terms, names, and data values in English if necessary.",
		lang.Name, lang.NativeName, lang.Name,
	)
}

// TranslationsFor returns the UI string table for a language code, falling
// back to English for unknown codes.
func TranslationsFor(code string) map[string]string {
	if table, ok := uiTranslations[code]; ok {
		return table
	}
	return uiTranslations[DefaultLanguage]
}

var uiTranslations = map[string]map[string]string{
	"en": {
		"app_title":         "HR Assistant",
		"app_subtitle":      "Your AI-powered HR companion",
		"input_placeholder": "Ask about payslips, leave, benefits...",
		"send":              "Send",
		"clear_chat":        "Clear chat",
		"welcome_message":   "Hello! I'm your HR assistant. How can I help you today?",
		"thinking":          "Thinking...",
		"error_message":     "Something went wrong. Please try again.",
		"select_language":   "Select language",
		"select_employee":   "Select employee",
	},
	"es": {
		"app_title":         "Asistente de RRHH",
		"app_subtitle":      "Tu compañero de RRHH con IA",
		"input_placeholder": "Pregunta sobre nóminas, vacaciones, beneficios...",
		"send":              "Enviar",
		"clear_chat":        "Borrar chat",
		"welcome_message":   "¡Hola! Soy tu asistente de RRHH. ¿En qué puedo ayudarte hoy?",
		"thinking":          "Pensando...",
		"error_message":     "Algo salió mal. Inténtalo de nuevo.",
		"select_language":   "Seleccionar idioma",
		"select_employee":   "Seleccionar empleado",
	},
	"fr": {
		"app_title":         "Assistant RH",
		"app_subtitle":      "Votre compagnon RH propulsé par l'IA",
		"input_placeholder": "Posez une question sur la paie, les congés, les avantages...",
		"send":              "Envoyer",
		"clear_chat":        "Effacer la discussion",
		"welcome_message":   "Bonjour ! Je suis votre assistant RH. Comment puis-je vous aider ?",
		"thinking":          "Réflexion...",
		"error_message":     "Une erreur s'est produite. Veuillez réessayer.",
		"select_language":   "Choisir la langue",
		"select_employee":   "Choisir l'employé",
	},
	"ar": {
		"app_title":         "مساعد الموارد البشرية",
		"app_subtitle":      "رفيقك الذكي للموارد البشرية",
		"input_placeholder": "اسأل عن الرواتب والإجازات والمزايا...",
		"send":              "إرسال",
		"clear_chat":        "مسح المحادثة",
		"welcome_message":   "مرحباً! أنا مساعد الموارد البشرية. كيف يمكنني مساعدتك اليوم؟",
		"thinking":          "جارٍ التفكير...",
		"error_message":     "حدث خطأ ما. حاول مرة أخرى.",
		"select_language":   "اختر اللغة",
		"select_employee":   "اختر الموظف",
	},
	"zh": {
		"app_title":         "人力资源助手",
		"app_subtitle":      "AI 驱动的人力资源伙伴",
		"input_placeholder": "咨询工资单、请假、福利等问题...",
		"send":              "发送",
		"clear_chat":        "清空对话",
		"welcome_message":   "你好！我是你的人力资源助手，今天有什么可以帮你？",
		"thinking":          "思考中...",
		"error_message":     "出错了，请重试。",
		"select_language":   "选择语言",
		"select_employee":   "选择员工",
	},
}
