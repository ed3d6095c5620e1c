package agent

import (
	"strings"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
)

const (
	MaxNameLength   = 100
	MaxPromptLength = 10000
)

// ValidateName validates an agent name given at creation
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return goerr.New("agent name cannot be empty")
	}

	if utf8.RuneCountInString(name) > MaxNameLength {
		return goerr.New("agent name is too long",
			goerr.V("max_length", MaxNameLength),
			goerr.V("length", utf8.RuneCountInString(name)))
	}

	return nil
}

// ValidatePrompt validates a prompt supplied by a client
func ValidatePrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return goerr.New("prompt cannot be empty")
	}

	if utf8.RuneCountInString(prompt) > MaxPromptLength {
		return goerr.New("prompt is too long",
			goerr.V("max_length", MaxPromptLength),
			goerr.V("length", utf8.RuneCountInString(prompt)))
	}

	return nil
}

// PromptOrDefault returns DefaultPrompt when prompt is absent or blank
func PromptOrDefault(prompt *string) string {
	if prompt == nil || strings.TrimSpace(*prompt) == "" {
		return DefaultPrompt
	}
	return *prompt
}
