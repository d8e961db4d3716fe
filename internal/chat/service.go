// Package chat backs the site's chat widget with an OpenAI chat completion,
// answering visitor questions in the owner's voice.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const defaultModel = openai.GPT4oMini

var (
	// ErrNotConfigured is returned when no API key was provided; the chat
	// widget is optional and the rest of the site works without it.
	ErrNotConfigured = errors.New("chat: service not configured")
	errEmptyMessage  = errors.New("chat: message must not be empty")
	errNoChoices     = errors.New("chat: completion returned no choices")
)

// Message is one turn of the widget conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ProfileSummary is implemented by the content layer to describe the owner
// for the persona prompt.
type ProfileSummary interface {
	Summary(ctx context.Context) string
}

// ServiceConfig bundles the chat backend configuration.
type ServiceConfig struct {
	APIKey  string
	Model   string
	Profile ProfileSummary
	Logger  *zap.Logger
}

// Service wraps the chat completion client behind the widget endpoint.
type Service struct {
	client  *openai.Client
	model   string
	profile ProfileSummary
	logger  *zap.Logger
}

// NewService constructs the chat backend. A missing API key yields a
// service whose Reply returns ErrNotConfigured.
func NewService(cfg ServiceConfig) *Service {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var client *openai.Client
	if strings.TrimSpace(cfg.APIKey) != "" {
		client = openai.NewClient(strings.TrimSpace(cfg.APIKey))
	}

	return &Service{
		client:  client,
		model:   model,
		profile: cfg.Profile,
		logger:  logger,
	}
}

// Configured reports whether an API key was supplied.
func (s *Service) Configured() bool {
	return s.client != nil
}

// Reply produces the assistant's answer to the visitor's message, feeding
// prior widget turns back as conversation history.
func (s *Service) Reply(ctx context.Context, message string, history []Message) (string, error) {
	if s.client == nil {
		return "", ErrNotConfigured
	}
	if strings.TrimSpace(message) == "" {
		return "", errEmptyMessage
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: s.systemPrompt(ctx),
	})
	for _, turn := range history {
		role := openai.ChatMessageRoleUser
		if strings.EqualFold(turn.Role, "assistant") {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	response, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: messages,
	})
	if err != nil {
		s.logger.Error("chat completion failed", zap.Error(err))
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", errNoChoices
	}

	return response.Choices[0].Message.Content, nil
}

func (s *Service) systemPrompt(ctx context.Context) string {
	prompt := "You are the assistant on a personal portfolio website. Answer visitor questions about the site owner's background, projects and skills. Be concise and friendly, and say so when you do not know something."
	if s.profile != nil {
		if summary := strings.TrimSpace(s.profile.Summary(ctx)); summary != "" {
			prompt = fmt.Sprintf("%s\n\nAbout the owner: %s", prompt, summary)
		}
	}
	return prompt
}
