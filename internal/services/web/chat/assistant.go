package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemPrompt = "You are a friendly and helpful customer support agent for Boyal Integrated Service. " +
	"Your goal is to answer questions about their services (Music Production, Concert Productions, etc.) " +
	"and products (microphones, speakers, etc.), help users with booking inquiries, and provide information " +
	"about the company. Be concise and professional."

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// Assistant produces a streamed reply to the session history.
type Assistant interface {
	// Reply streams the assistant's answer, invoking onChunk for each text
	// fragment. It returns after the reply completes or fails.
	Reply(ctx context.Context, history []Message, onChunk func(text string)) error
}

// OpenAIAssistant answers with a chat completion model.
type OpenAIAssistant struct {
	client openai.Client
	model  string
}

// NewOpenAIAssistant builds an assistant for the given credentials. baseURL
// is optional and supports OpenAI-compatible gateways.
func NewOpenAIAssistant(apiKey, baseURL, model string) (*OpenAIAssistant, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("api key is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if strings.TrimSpace(baseURL) != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	return &OpenAIAssistant{client: openai.NewClient(opts...), model: model}, nil
}

// Reply streams one completion over the session history.
func (a *OpenAIAssistant) Reply(ctx context.Context, history []Message, onChunk func(text string)) error {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+1)
	messages = append(messages, openai.SystemMessage(systemPrompt))
	for _, msg := range history {
		if strings.TrimSpace(msg.Text) == "" {
			continue
		}
		switch msg.Sender {
		case SenderUser:
			messages = append(messages, openai.UserMessage(msg.Text))
		case SenderAI:
			messages = append(messages, openai.AssistantMessage(msg.Text))
		}
	}

	stream := a.client.Chat.Completions.NewStreaming(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(a.model),
		Messages: messages,
	})
	defer stream.Close()

	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		if delta := chunk.Choices[0].Delta.Content; delta != "" {
			onChunk(delta)
		}
	}
	if err := stream.Err(); err != nil {
		return fmt.Errorf("stream completion: %w", err)
	}
	return nil
}
