package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/newsletter-server/internal/logger"
)

const subscriptionTokenParam = "subscription_token"

// SubscriptionService registers new subscribers.
type SubscriptionService interface {
	Subscribe(ctx context.Context, email, name string) error
}

// ConfirmationService redeems confirmation tokens.
type ConfirmationService interface {
	Confirm(ctx context.Context, token string) error
}

// Subscription handles subscription and confirmation endpoints.
type Subscription struct {
	subscriptionService SubscriptionService
	confirmationService ConfirmationService
	logger              *logger.Logger
}

// NewSubscription creates a new Subscription handler.
func NewSubscription(
	subscriptionService SubscriptionService,
	confirmationService ConfirmationService,
	logger *logger.Logger,
) *Subscription {
	return &Subscription{
		subscriptionService: subscriptionService,
		confirmationService: confirmationService,
		logger:              logger,
	}
}

// Subscribe handles POST /subscriptions with url-encoded name and email.
func (h *Subscription) Subscribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Info("Subscription handler: malformed form",
			"error", err.Error())
		respondWithError(w, http.StatusBadRequest, "malformed form body")
		return
	}

	email := r.PostForm.Get("email")
	name := r.PostForm.Get("name")

	h.logger.Debug("Subscription handler: processing subscription request",
		"email", email)

	if err := h.subscriptionService.Subscribe(r.Context(), email, name); err != nil {
		handleError(w, h.logger, "Subscription handler: subscription failed", err,
			"email", email)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Confirm handles GET /subscriptions/confirm?subscription_token=...
func (h *Subscription) Confirm(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has(subscriptionTokenParam) {
		respondWithError(w, http.StatusBadRequest, "missing subscription_token query parameter")
		return
	}

	if err := h.confirmationService.Confirm(r.Context(), query.Get(subscriptionTokenParam)); err != nil {
		handleError(w, h.logger, "Subscription handler: confirmation failed", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
