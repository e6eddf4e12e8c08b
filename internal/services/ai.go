package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/yukikurage/hackathon-hub/internal/models"
)

var ErrAdvisorNotConfigured = errors.New("category advisor is not configured")

// CategoryAdvisor picks a suggested category for a hackathon using OpenAI.
type CategoryAdvisor struct {
	client *openai.Client
}

func NewCategoryAdvisor(apiKey string) *CategoryAdvisor {
	return &CategoryAdvisor{
		client: openai.NewClient(apiKey),
	}
}

// SuggestCategory asks the model for the best matching category. Answers
// outside the suggested list fall back to Open Innovation.
func (a *CategoryAdvisor) SuggestCategory(ctx context.Context, title, description string) (string, error) {
	if a == nil || a.client == nil {
		return "", ErrAdvisorNotConfigured
	}

	prompt := fmt.Sprintf(`You classify hackathon events.
Pick exactly one category from this list:
%s

Title: %s
Description: %s

Answer with the category name only.`, strings.Join(models.Categories(), "\n"), title, description)

	resp, err := a.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return matchCategory(resp.Choices[0].Message.Content), nil
}

func matchCategory(answer string) string {
	answer = strings.Trim(strings.TrimSpace(answer), `."'`)
	for _, category := range models.Categories() {
		if strings.EqualFold(answer, category) {
			return category
		}
	}
	return models.CategoryOpenInnovation
}
