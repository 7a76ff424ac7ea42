package middleware

import (
	"github.com/gin-gonic/gin"
)

const languageKey = "language"

// Supported display languages. Arabic is the library's default.
const (
	LanguageArabic  = "ar"
	LanguageEnglish = "en"
)

// Language reads the display language from the X-Language header and
// threads it through the request context. Anything other than the two
// supported values falls back to the configured default.
func Language(defaultLang string) gin.HandlerFunc {
	if defaultLang != LanguageArabic && defaultLang != LanguageEnglish {
		defaultLang = LanguageArabic
	}
	return func(c *gin.Context) {
		lang := c.GetHeader("X-Language")
		if lang != LanguageArabic && lang != LanguageEnglish {
			lang = defaultLang
		}
		c.Set(languageKey, lang)
		c.Next()
	}
}

// LanguageFrom returns the display language for this request.
func LanguageFrom(c *gin.Context) string {
	if lang := c.GetString(languageKey); lang != "" {
		return lang
	}
	return LanguageArabic
}
