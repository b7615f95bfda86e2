package lexicon

// SupportedLanguage is one entry of the advertised language list.
type SupportedLanguage struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var supported = []SupportedLanguage{
	{Code: "en-US", Name: "English (US)", Icon: "🇺🇸"},
	{Code: "es-ES", Name: "Español", Icon: "🇪🇸"},
	{Code: "fr-FR", Name: "Français", Icon: "🇫🇷"},
	{Code: "de-DE", Name: "Deutsch", Icon: "🇩🇪"},
	{Code: "it-IT", Name: "Italiano", Icon: "🇮🇹"},
	{Code: "pt-BR", Name: "Português", Icon: "🇧🇷"},
	{Code: "ja-JP", Name: "日本語", Icon: "🇯🇵"},
	{Code: "ko-KR", Name: "한국어", Icon: "🇰🇷"},
	{Code: "zh-CN", Name: "中文", Icon: "🇨🇳"},
}

// Supported returns the languages advertised to callers. Only en, es, fr and
// de have extraction tables; the rest fall back to separator-only splitting.
func Supported() []SupportedLanguage {
	out := make([]SupportedLanguage, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether tag resolves to an advertised language.
func IsSupported(tag string) bool {
	base := Base(tag)
	for _, l := range supported {
		if Base(l.Code) == base {
			return true
		}
	}
	return false
}
