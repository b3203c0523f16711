package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dtroode/newsletter-server/internal/logger"
	"github.com/dtroode/newsletter-server/internal/model"
)

const (
	confirmationSubject = "Welcome!"
	confirmationPath    = "/subscriptions/confirm"
)

// Subscription registers new subscribers and sends them a confirmation link.
type Subscription struct {
	store   model.SubscriberStore
	tokens  model.ConfirmationTokenGenerator
	sender  model.EmailSender
	baseURL string
	logger  *logger.Logger
}

// NewSubscription creates a Subscription. baseURL is the public address the
// confirmation link points at.
func NewSubscription(
	store model.SubscriberStore,
	tokens model.ConfirmationTokenGenerator,
	sender model.EmailSender,
	baseURL string,
	logger *logger.Logger,
) *Subscription {
	return &Subscription{
		store:   store,
		tokens:  tokens,
		sender:  sender,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// Subscribe validates the form, stores a pending subscriber together with a
// confirmation token and emails the confirmation link.
func (s *Subscription) Subscribe(ctx context.Context, rawEmail, rawName string) error {
	s.logger.Debug("Subscription service: adding a new subscriber",
		"email", rawEmail,
		"name", rawName)

	subscriber, err := model.NewSubscriberFromForm(rawEmail, rawName)
	if err != nil {
		s.logger.Info("Subscription service: invalid subscription form",
			"email", rawEmail,
			"error", err.Error())
		return err
	}

	token, err := s.register(ctx, subscriber)
	if err != nil {
		return err
	}

	link := ConfirmationLink(s.baseURL, token)
	body := fmt.Sprintf(
		`Welcome to our newsletter!<br />Click <a href="%s">here</a> to confirm your subscription.`,
		link,
	)

	if err := s.sender.Send(ctx, subscriber.Email, confirmationSubject, body); err != nil {
		s.logger.Error("Subscription service: failed to send confirmation email",
			"email", subscriber.Email.String(),
			"error", err.Error())
		return model.NewUnexpectedError("failed to send a confirmation email", err)
	}

	s.logger.Info("Subscription service: subscriber added",
		"email", subscriber.Email.String())

	return nil
}

// register runs the transactional part of Subscribe and returns the stored token.
func (s *Subscription) register(ctx context.Context, subscriber model.NewSubscriber) (string, error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		s.logger.Error("Subscription service: failed to begin transaction",
			"error", err.Error())
		return "", model.NewUnexpectedError("failed to acquire a store transaction", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
			s.logger.Error("Subscription service: failed to rollback transaction",
				"email", subscriber.Email.String(),
				"error", rbErr.Error())
		}
	}()

	subscriberID, err := tx.InsertSubscriber(ctx, subscriber)
	if err != nil {
		s.logger.Error("Subscription service: failed to insert subscriber",
			"email", subscriber.Email.String(),
			"error", err.Error())
		return "", model.NewUnexpectedError("failed to insert new subscriber", err)
	}

	token, err := s.tokens.Generate()
	if err != nil {
		s.logger.Error("Subscription service: failed to generate confirmation token",
			"subscriber_id", subscriberID,
			"error", err.Error())
		return "", model.NewUnexpectedError("failed to generate a confirmation token", err)
	}

	if err := tx.StoreToken(ctx, subscriberID, token); err != nil {
		s.logger.Error("Subscription service: failed to store confirmation token",
			"subscriber_id", subscriberID,
			"error", err.Error())
		return "", model.NewUnexpectedError("failed to store the confirmation token for a new subscriber", err)
	}

	if err := tx.Commit(ctx); err != nil {
		s.logger.Error("Subscription service: failed to commit transaction",
			"subscriber_id", subscriberID,
			"error", err.Error())
		return "", model.NewUnexpectedError("failed to commit the transaction to store a new subscriber", err)
	}
	committed = true

	return token, nil
}

// ConfirmationLink builds the link a subscriber follows to confirm.
func ConfirmationLink(baseURL, token string) string {
	query := url.Values{"subscription_token": []string{token}}
	return strings.TrimRight(baseURL, "/") + confirmationPath + "?" + query.Encode()
}
