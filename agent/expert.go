package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Expert wraps one Gemini chat session behind a simple question/answer API.
type Expert struct {
	Name      string
	ModelName string
	Config    *genai.GenerateContentConfig
	chat      *genai.Chat
}

func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask sends one question and returns the expert's text answer.
func (e *Expert) Ask(ctx context.Context, question string) (string, error) {
	resp, err := e.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from expert %s", e.Name)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
