// Package prompt builds the natural-language prompt sent to the
// completion service.
package prompt

import (
	"fmt"

	"github.com/zulandar/messagecraft/internal/models"
)

// System is the fixed system prompt for every completion request.
const System = "You are a helpful assistant that composes emails and messages."

// Build renders the composition prompt. Field values are interpolated
// verbatim; the consumer is a language model, not a structured parser.
// An empty details field becomes the literal marker "None".
func Build(recipient, context string, tone models.Tone, details string) string {
	if details == "" {
		details = "None"
	}
	return fmt.Sprintf(`Compose an email/message:
Recipient: %s
Context/Purpose: %s
Tone: %s
Details: %s

Generated Message:`, recipient, context, tone, details)
}
