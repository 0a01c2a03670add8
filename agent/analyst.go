package agent

import (
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// NewAnalyst creates the expert behind the assist session. contextJSON is
// the user's current holdings and returns, so the analyst never has to
// guess what "my portfolio" means; search grounding covers recent news.
func NewAnalyst(contextJSON string) *Expert {
	instruction := fmt.Sprintf(`
		You are a personal portfolio analyst. You answer questions about the
		user's investments: their holdings, their recent performance, and
		news that could affect them.

		Respond in markdown. Be concise, figures first, never invent
		positions the user does not hold. This is information, not
		financial advice, and say so when the user asks what to do.

		The user's current portfolio data follows as JSON:

		%s
	`, contextJSON)

	return &Expert{
		Name:      "Analyst",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
	}
}
