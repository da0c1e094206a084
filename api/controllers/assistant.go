package controllers

import (
	"context"
	"net/http"

	"github.com/mkoval-dev/bookmarket-backend/api/responses"
	"github.com/mkoval-dev/bookmarket-backend/api/validators"
	"github.com/mkoval-dev/bookmarket-backend/internal/assistant"
	"github.com/mkoval-dev/bookmarket-backend/pkg/logger"
)

// AssistantService is the surface the assistant handlers need. Both
// operations always return text; degradation happens below this boundary.
type AssistantService interface {
	Describe(ctx context.Context, input assistant.DescribeInput) string
	Chat(ctx context.Context, history []assistant.Turn, message string) string
}

type describeRequest struct {
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

// AssistantDescribe generates promotional copy for a draft product.
func AssistantDescribe(svc AssistantService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body describeRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		text := svc.Describe(r.Context(), assistant.DescribeInput{
			Title:    validators.SanitizeString(body.Title, 300),
			Author:   validators.SanitizeString(body.Author, 300),
			Category: validators.SanitizeString(body.Category, 100),
		})
		responses.WriteSuccess(w, map[string]string{"description": text})
	}
}

type chatRequest struct {
	History []assistant.Turn `json:"history" validate:"dive"`
	Message string           `json:"message" validate:"required"`
}

// AssistantChat answers the next turn of the consultant conversation.
func AssistantChat(svc AssistantService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body chatRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		reply := svc.Chat(r.Context(), body.History, body.Message)
		responses.WriteSuccess(w, map[string]string{"reply": reply})
	}
}

var _ AssistantService = (*assistant.Service)(nil)
