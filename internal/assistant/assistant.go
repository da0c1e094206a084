// Package assistant bridges the storefront to the hosted text-generation
// service. Stateless per call: one request, one response, and every failure
// degrades to a fixed human-readable string instead of an error.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mkoval-dev/bookmarket-backend/pkg/gemini"
	"github.com/mkoval-dev/bookmarket-backend/pkg/logger"
)

// Fallback strings shown verbatim in the UI.
const (
	FallbackNotConfigured = "API Key not configured."
	FallbackDescribe      = "Не удалось сгенерировать описание. Пожалуйста, попробуйте позже."
	FallbackChat          = "Извините, я сейчас не могу ответить. Попробуйте позже."
)

const chatPersona = "Ты полезный консультант книжного онлайн-магазина. Ты помогаешь выбирать книги и канцтовары. " +
	"Ты вежлив, используешь эмодзи и отвечаешь кратко и по делу. " +
	"Предлагай товары из ассортимента магазина, если это уместно."

// Turn is one prior exchange in a chat. Role is "user" or "model".
type Turn struct {
	Role string `json:"role" validate:"required,oneof=user model"`
	Text string `json:"text" validate:"required"`
}

// DescribeInput names the product to promote.
type DescribeInput struct {
	Title    string
	Author   string
	Category string
}

// Generator is the outbound surface the service needs; *gemini.Client
// satisfies it.
type Generator interface {
	Configured() bool
	GenerateContent(ctx context.Context, system string, history []gemini.Content, message string) (string, error)
}

type Service struct {
	client Generator
	logg   *logger.Logger
}

func NewService(client Generator, logg *logger.Logger) *Service {
	return &Service{client: client, logg: logg}
}

// Describe produces short promotional copy for a product. Never returns an
// error: missing credential or a failed call yields the fallback string and
// leaves every store untouched.
func (s *Service) Describe(ctx context.Context, input DescribeInput) string {
	if s.client == nil || !s.client.Configured() {
		return FallbackNotConfigured
	}

	var prompt strings.Builder
	prompt.WriteString("Напиши привлекательное, продающее описание для товара на маркетплейсе.\n")
	fmt.Fprintf(&prompt, "Название: %s\n", input.Title)
	if input.Author != "" {
		fmt.Fprintf(&prompt, "Автор: %s\n", input.Author)
	}
	fmt.Fprintf(&prompt, "Категория: %s\n", input.Category)
	prompt.WriteString("Язык: Русский.\nДлина: 2-3 предложения. Выдели ключевые преимущества.")

	text, err := s.client.GenerateContent(ctx, "", nil, prompt.String())
	if err != nil {
		if errors.Is(err, gemini.ErrNotConfigured) {
			return FallbackNotConfigured
		}
		if s.logg != nil {
			s.logg.Error(ctx, "assistant.describe failed", err)
		}
		return FallbackDescribe
	}
	return text
}

// Chat answers the next turn of the consultant conversation under the fixed
// persona. Same degradation contract as Describe.
func (s *Service) Chat(ctx context.Context, history []Turn, message string) string {
	if s.client == nil || !s.client.Configured() {
		return FallbackNotConfigured
	}

	contents := make([]gemini.Content, 0, len(history))
	for _, turn := range history {
		contents = append(contents, gemini.Content{
			Role:  turn.Role,
			Parts: []gemini.Part{{Text: turn.Text}},
		})
	}

	text, err := s.client.GenerateContent(ctx, chatPersona, contents, message)
	if err != nil {
		if errors.Is(err, gemini.ErrNotConfigured) {
			return FallbackNotConfigured
		}
		if s.logg != nil {
			s.logg.Error(ctx, "assistant.chat failed", err)
		}
		return FallbackChat
	}
	return text
}
