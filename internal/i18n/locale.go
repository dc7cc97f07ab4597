package i18n

import (
	"golang.org/x/text/language"

	"kisanmitra/internal/domain"
)

var voiceLocales = map[domain.Language]language.Tag{
	domain.English: language.MustParse("en-US"),
	domain.Hindi:   language.MustParse("hi-IN"),
	domain.Telugu:  language.MustParse("te-IN"),
}

// VoiceLocale maps a language to the speech locale used for capture and playback.
func VoiceLocale(lang domain.Language) language.Tag {
	if tag, ok := voiceLocales[lang]; ok {
		return tag
	}
	return voiceLocales[DefaultLanguage]
}
