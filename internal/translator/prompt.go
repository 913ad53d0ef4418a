package translator

import (
	"fmt"

	"doctranslate/internal/domain"
)

const systemPromptTemplate = "You are a professional translator. Translate the following text to %s while preserving the original formatting and meaning."

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one chat message of a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// BuildSystemPrompt returns the fixed translation instruction for target.
func BuildSystemPrompt(target domain.Language) string {
	return fmt.Sprintf(systemPromptTemplate, target)
}

// BuildMessages returns exactly two messages: the system instruction, then
// the source text verbatim as the user message.
func BuildMessages(req domain.TranslationRequest) []Message {
	return []Message{
		{Role: RoleSystem, Content: BuildSystemPrompt(req.TargetLanguage)},
		{Role: RoleUser, Content: req.SourceText},
	}
}
