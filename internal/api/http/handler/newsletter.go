package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dtroode/newsletter-server/internal/logger"
	"github.com/dtroode/newsletter-server/internal/model"
)

const maxNewsletterBodyBytes = 1 << 20

// NewsletterService broadcasts newsletter issues.
type NewsletterService interface {
	Publish(ctx context.Context, title, htmlContent string) error
}

type publishRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Newsletter handles newsletter publishing.
type Newsletter struct {
	newsletterService NewsletterService
	contextManager    model.ContextManager
	logger            *logger.Logger
}

// NewNewsletter creates a new Newsletter handler.
func NewNewsletter(newsletterService NewsletterService, contextManager model.ContextManager, logger *logger.Logger) *Newsletter {
	return &Newsletter{
		newsletterService: newsletterService,
		contextManager:    contextManager,
		logger:            logger,
	}
}

// Publish handles POST /newsletters with a JSON body {"title", "content"}.
func (h *Newsletter) Publish(w http.ResponseWriter, r *http.Request) {
	publisher, ok := h.contextManager.GetPublisherFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "missing publisher")
		return
	}

	var req publishRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxNewsletterBodyBytes))
	if err := decoder.Decode(&req); err != nil {
		h.logger.Info("Newsletter handler: malformed request body",
			"publisher", publisher,
			"error", err.Error())
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	h.logger.Info("Newsletter handler: publishing issue",
		"publisher", publisher,
		"title", req.Title)

	if err := h.newsletterService.Publish(r.Context(), req.Title, req.Content); err != nil {
		handleError(w, h.logger, "Newsletter handler: publishing failed", err,
			"publisher", publisher)
		return
	}

	w.WriteHeader(http.StatusOK)
}
