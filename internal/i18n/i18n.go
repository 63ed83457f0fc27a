// Package i18n translates user-facing messages for the checkout service.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: defaultMessages,
	}
}

// GetTranslator returns the shared translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale, falling back to
// DefaultLocale and then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supports reports whether the translator has messages for locale.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale picks the first supported language from the Accept-Language
// header, e.g. "fr-FR,pt;q=0.8" yields "pt". Quality values are not weighed;
// header order is taken as preference order.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	translator := GetTranslator()
	for _, part := range strings.Split(acceptLang, ",") {
		lang := strings.TrimSpace(strings.Split(part, ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if translator.Supports(lang) {
			return lang
		}
	}

	return DefaultLocale
}

var defaultMessages = map[string]map[string]string{
	"en": {
		ErrKeyInvalidRequest:     "Invalid request",
		ErrKeyInvalidRequestBody: "Invalid request body",
		ErrKeyInternalError:      "An unexpected error occurred",
		ErrKeyUnauthorized:       "Unauthorized",
		ErrKeyAPIKeyRequired:     "API key is required",
		ErrKeyInvalidAPIKey:      "Invalid API key",
		ErrKeyNotFound:           "Not found",
		ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
		ErrKeyConflict:           "Conflict",
		ErrKeyTimeout:            "Request timed out",
		ErrKeyRequestTooLarge:    "Request body is too large",
		ErrKeyValidationItems:    "items: too many characters",
		ErrKeyEmptyReceipt:       "There are no items to put on a receipt",
		ErrKeySessionRequired:    "A checkout session token is required",
		ErrKeyInvalidSession:     "Invalid or expired checkout session",
		ErrKeySessionsDisabled:   "Checkout sessions are not available",

		SuccessKeyHistoryCleared: "Calculation history cleared",
	},
	"pt": {
		ErrKeyInvalidRequest:     "Requisição inválida",
		ErrKeyInvalidRequestBody: "Corpo da requisição inválido",
		ErrKeyInternalError:      "Ocorreu um erro inesperado",
		ErrKeyUnauthorized:       "Não autorizado",
		ErrKeyAPIKeyRequired:     "Chave de API é obrigatória",
		ErrKeyInvalidAPIKey:      "Chave de API inválida",
		ErrKeyNotFound:           "Não encontrado",
		ErrKeyRateLimitExceeded:  "Muitas requisições, tente novamente mais tarde",
		ErrKeyConflict:           "Conflito",
		ErrKeyTimeout:            "Tempo de requisição esgotado",
		ErrKeyRequestTooLarge:    "Corpo da requisição muito grande",
		ErrKeyValidationItems:    "items: caracteres demais",
		ErrKeyEmptyReceipt:       "Não há itens para o recibo",
		ErrKeySessionRequired:    "É necessário um token de sessão de compra",
		ErrKeyInvalidSession:     "Sessão de compra inválida ou expirada",
		ErrKeySessionsDisabled:   "Sessões de compra não estão disponíveis",

		SuccessKeyHistoryCleared: "Histórico de cálculos apagado",
	},
	"nl": {
		ErrKeyInvalidRequest:     "Ongeldig verzoek",
		ErrKeyInvalidRequestBody: "Ongeldige aanvraag body",
		ErrKeyInternalError:      "Er is een onverwachte fout opgetreden",
		ErrKeyUnauthorized:       "Niet geautoriseerd",
		ErrKeyAPIKeyRequired:     "API-sleutel is vereist",
		ErrKeyInvalidAPIKey:      "Ongeldige API-sleutel",
		ErrKeyNotFound:           "Niet gevonden",
		ErrKeyRateLimitExceeded:  "Te veel verzoeken, probeer het later opnieuw",
		ErrKeyConflict:           "Conflict",
		ErrKeyTimeout:            "Verzoek is verlopen",
		ErrKeyRequestTooLarge:    "Aanvraag body is te groot",
		ErrKeyValidationItems:    "items: te veel tekens",
		ErrKeyEmptyReceipt:       "Er zijn geen artikelen voor een bon",
		ErrKeySessionRequired:    "Een kassasessie-token is vereist",
		ErrKeyInvalidSession:     "Ongeldige of verlopen kassasessie",
		ErrKeySessionsDisabled:   "Kassasessies zijn niet beschikbaar",

		SuccessKeyHistoryCleared: "Berekeningsgeschiedenis gewist",
	},
}
