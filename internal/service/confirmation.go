package service

import (
	"context"

	"github.com/dtroode/newsletter-server/internal/logger"
	"github.com/dtroode/newsletter-server/internal/model"
)

// Confirmation redeems confirmation tokens.
type Confirmation struct {
	store  model.SubscriberStore
	logger *logger.Logger
}

func NewConfirmation(store model.SubscriberStore, logger *logger.Logger) *Confirmation {
	return &Confirmation{store: store, logger: logger}
}

// Confirm marks the subscriber owning token as confirmed. Confirming twice succeeds.
func (c *Confirmation) Confirm(ctx context.Context, token string) error {
	c.logger.Debug("Confirmation service: confirming subscriber")

	subscriberID, found, err := c.store.FindSubscriberIDByToken(ctx, token)
	if err != nil {
		c.logger.Error("Confirmation service: failed to look up token",
			"error", err.Error())
		return model.NewUnexpectedError("failed to retrieve the subscriber id associated with the provided token", err)
	}
	if !found {
		c.logger.Info("Confirmation service: unknown token")
		return model.ErrUnknownToken
	}

	if err := c.store.ConfirmSubscriber(ctx, subscriberID); err != nil {
		c.logger.Error("Confirmation service: failed to confirm subscriber",
			"subscriber_id", subscriberID,
			"error", err.Error())
		return model.NewUnexpectedError("failed to update the subscriber status to confirmed", err)
	}

	c.logger.Info("Confirmation service: subscriber confirmed",
		"subscriber_id", subscriberID)

	return nil
}
