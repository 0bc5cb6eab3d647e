package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeySettings        = "settings"
	KeyReset           = "reset"
	KeyClose           = "close"
	KeyLanguage        = "language"
	KeySectionApp      = "section_app"
	KeySectionText     = "section_text"
	KeySectionLayout   = "section_layout"
	KeySectionShadow   = "section_shadow"
	KeyText            = "text"
	KeyFontFamily      = "font_family"
	KeyFontSize        = "font_size"
	KeyLetterSpacing   = "letter_spacing"
	KeyColor           = "color"
	KeyFontWeight      = "font_weight"
	KeyHorizontalAlign = "horizontal_align"
	KeyVerticalAlign   = "vertical_align"
	KeyPosition        = "position"
	KeyPadding         = "padding"
	KeyDisplay         = "display"
	KeyClickThrough    = "click_through"
	KeyShadowColor     = "shadow_color"
	KeyShadowOpacity   = "shadow_opacity"
	KeyShadowOffsetX   = "shadow_offset_x"
	KeyShadowOffsetY   = "shadow_offset_y"
	KeyShadowBlur      = "shadow_blur"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Text Overlay",
		KeySettings:        "Settings",
		KeyReset:           "Reset to defaults",
		KeyClose:           "Close",
		KeyLanguage:        "Language",
		KeySectionApp:      "Application",
		KeySectionText:     "Text",
		KeySectionLayout:   "Layout",
		KeySectionShadow:   "Shadow",
		KeyText:            "Text",
		KeyFontFamily:      "Font family",
		KeyFontSize:        "Font size (px)",
		KeyLetterSpacing:   "Letter spacing (px)",
		KeyColor:           "Color",
		KeyFontWeight:      "Font weight",
		KeyHorizontalAlign: "Horizontal alignment",
		KeyVerticalAlign:   "Vertical alignment",
		KeyPosition:        "Position",
		KeyPadding:         "Padding (px)",
		KeyDisplay:         "Display",
		KeyClickThrough:    "Click-through",
		KeyShadowColor:     "Color",
		KeyShadowOpacity:   "Opacity",
		KeyShadowOffsetX:   "Offset X",
		KeyShadowOffsetY:   "Offset Y",
		KeyShadowBlur:      "Blur",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Текстовый оверлей",
		KeySettings:        "Настройки",
		KeyReset:           "Сбросить",
		KeyClose:           "Закрыть",
		KeyLanguage:        "Язык",
		KeySectionApp:      "Приложение",
		KeySectionText:     "Текст",
		KeySectionLayout:   "Расположение",
		KeySectionShadow:   "Тень",
		KeyText:            "Текст",
		KeyFontFamily:      "Шрифт",
		KeyFontSize:        "Размер шрифта (px)",
		KeyLetterSpacing:   "Межбуквенный интервал (px)",
		KeyColor:           "Цвет",
		KeyFontWeight:      "Насыщенность",
		KeyHorizontalAlign: "Выравнивание по горизонтали",
		KeyVerticalAlign:   "Выравнивание по вертикали",
		KeyPosition:        "Позиция",
		KeyPadding:         "Отступ (px)",
		KeyDisplay:         "Монитор",
		KeyClickThrough:    "Пропускать клики",
		KeyShadowColor:     "Цвет",
		KeyShadowOpacity:   "Непрозрачность",
		KeyShadowOffsetX:   "Смещение X",
		KeyShadowOffsetY:   "Смещение Y",
		KeyShadowBlur:      "Размытие",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Sobreposição de Texto",
		KeySettings:        "Configurações",
		KeyReset:           "Restaurar padrões",
		KeyClose:           "Fechar",
		KeyLanguage:        "Idioma",
		KeySectionApp:      "Aplicativo",
		KeySectionText:     "Texto",
		KeySectionLayout:   "Layout",
		KeySectionShadow:   "Sombra",
		KeyText:            "Texto",
		KeyFontFamily:      "Família da fonte",
		KeyFontSize:        "Tamanho da fonte (px)",
		KeyLetterSpacing:   "Espaçamento entre letras (px)",
		KeyColor:           "Cor",
		KeyFontWeight:      "Peso da fonte",
		KeyHorizontalAlign: "Alinhamento horizontal",
		KeyVerticalAlign:   "Alinhamento vertical",
		KeyPosition:        "Posição",
		KeyPadding:         "Margem (px)",
		KeyDisplay:         "Monitor",
		KeyClickThrough:    "Ignorar cliques",
		KeyShadowColor:     "Cor",
		KeyShadowOpacity:   "Opacidade",
		KeyShadowOffsetX:   "Deslocamento X",
		KeyShadowOffsetY:   "Deslocamento Y",
		KeyShadowBlur:      "Desfoque",
	}
}
