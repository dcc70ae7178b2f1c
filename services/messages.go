package services

import (
	"log/slog"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

/// Messages are stored to the session and displayed only once

const (
	messagesKey = "messages"
	warningsKey = "warnings"
	errorsKey   = "errors"
)

func addMessage(c *gin.Context, message string, key string) {
	session := sessions.Default(c)
	var messages []string
	stored := session.Get(key)
	if stored != nil {
		var ok bool
		messages, ok = stored.([]string)
		if !ok {
			slog.Warn("unknown type stored to session, dropping it", "key", key)
			session.Delete(key)
			if err := session.Save(); err != nil {
				slog.Warn("failed to save session", "error", err)
			}
			return
		}
	}
	messages = append(messages, message)
	session.Set(key, messages)
	if err := session.Save(); err != nil {
		slog.Warn("failed to save a message to session", "error", err)
	}
}

func AddMessage(c *gin.Context, message string) {
	addMessage(c, message, messagesKey)
}

func AddWarning(c *gin.Context, message string) {
	addMessage(c, message, warningsKey)
}

func AddError(c *gin.Context, message string) {
	addMessage(c, message, errorsKey)
}

// GetMessages drains the pending flash messages and returns the base page
// context every template render starts from.
func GetMessages(c *gin.Context) map[string]any {
	session := sessions.Default(c)
	messages := session.Get(messagesKey)
	warnings := session.Get(warningsKey)
	errors := session.Get(errorsKey)
	session.Delete(messagesKey)
	session.Delete(warningsKey)
	session.Delete(errorsKey)
	if err := session.Save(); err != nil {
		slog.Warn("failed to save session", "error", err)
	}

	return gin.H{
		"Messages": messages,
		"Warnings": warnings,
		"Errors":   errors,
	}
}
