// file: internals/features/faq/service/generator.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are an assistant that turns a student forum thread into a reusable FAQ entry. " +
	"Rewrite the question so it reads as a general frequently asked question and summarize the accepted " +
	"community answer clearly and concisely. Respond with a JSON object containing exactly two string " +
	"fields: \"question\" and \"answer\"."

// FAQInput is one eligible thread handed to the model.
type FAQInput struct {
	Title      string
	Content    string
	BestAnswer string
	Tags       []string
}

// FAQOutput is what comes back, parsed.
type FAQOutput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Generator struct {
	client *openai.Client
	model  string
}

// NewGenerator returns a disabled generator when no API key is set; the
// job then skips generation instead of failing.
func NewGenerator(apiKey, model string) *Generator {
	g := &Generator{model: model}
	if apiKey != "" {
		g.client = openai.NewClient(apiKey)
	}
	return g
}

func (g *Generator) Enabled() bool { return g.client != nil }

// Generate runs one chat completion for a thread.
func (g *Generator) Generate(ctx context.Context, input FAQInput) (*FAQOutput, error) {
	if g.client == nil {
		return nil, errors.New("faq generator disabled: no API key configured")
	}

	userPrompt := fmt.Sprintf(
		"Question title: %s\n\nQuestion body:\n%s\n\nBest answer:\n%s\n\nTopics: %s",
		input.Title, input.Content, input.BestAnswer, strings.Join(input.Tags, ", "),
	)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0.3,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("faq completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("faq completion: empty response")
	}

	return ParseFAQOutput(resp.Choices[0].Message.Content)
}

// ParseFAQOutput decodes the model reply, tolerating markdown code
// fences some models wrap JSON in.
func ParseFAQOutput(raw string) (*FAQOutput, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var out FAQOutput
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, fmt.Errorf("faq output parse: %w", err)
	}
	out.Question = strings.TrimSpace(out.Question)
	out.Answer = strings.TrimSpace(out.Answer)
	if out.Question == "" || out.Answer == "" {
		return nil, errors.New("faq output parse: missing question or answer")
	}
	return &out, nil
}
