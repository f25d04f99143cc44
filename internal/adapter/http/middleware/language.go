package middleware

import (
	"github.com/gin-gonic/gin"

	"studioo/internal/i18n"
)

const languageKey = "lang"

// Language resolves the visitor language from ?lang, then Accept-Language.
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.Match(c.Query("lang"), c.GetHeader("Accept-Language"))
		c.Set(languageKey, lang)
		c.Header("Content-Language", lang.String())
		c.Next()
	}
}

// LanguageFrom returns the language resolved by [Language], English when the
// middleware did not run.
func LanguageFrom(c *gin.Context) i18n.Language {
	if v, ok := c.Get(languageKey); ok {
		if lang, ok := v.(i18n.Language); ok {
			return lang
		}
	}
	return i18n.English
}
