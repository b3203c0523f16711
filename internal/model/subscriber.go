package model

import (
	"context"
	"iter"
	"time"

	"github.com/google/uuid"
)

// SubscriberStatus is the confirmation state of a subscriber.
// It only moves from pending to confirmed.
type SubscriberStatus string

const (
	// StatusPendingConfirmation is set on creation.
	StatusPendingConfirmation SubscriberStatus = "pending_confirmation"
	// StatusConfirmed is set after a confirmation token was redeemed.
	StatusConfirmed SubscriberStatus = "confirmed"
)

// Subscriber represents a stored subscriber.
type Subscriber struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Status       SubscriberStatus
	SubscribedAt time.Time
}

// NewSubscriber holds validated input for a subscription.
type NewSubscriber struct {
	Email SubscriberEmail
	Name  SubscriberName
}

// NewSubscriberFromForm parses raw form values into a NewSubscriber.
func NewSubscriberFromForm(rawEmail, rawName string) (NewSubscriber, error) {
	name, err := ParseSubscriberName(rawName)
	if err != nil {
		return NewSubscriber{}, err
	}

	email, err := ParseSubscriberEmail(rawEmail)
	if err != nil {
		return NewSubscriber{}, err
	}

	return NewSubscriber{Email: email, Name: name}, nil
}

// ConfirmedSubscriber is one row of the confirmed subscriber listing.
// Err is set instead of Email when the stored address no longer parses.
type ConfirmedSubscriber struct {
	ID    uuid.UUID
	Email SubscriberEmail
	Err   error
}

// NewConfirmedSubscriber re-validates a stored email address.
func NewConfirmedSubscriber(id uuid.UUID, rawEmail string) ConfirmedSubscriber {
	email, err := ParseSubscriberEmail(rawEmail)
	if err != nil {
		return ConfirmedSubscriber{ID: id, Err: err}
	}
	return ConfirmedSubscriber{ID: id, Email: email}
}

// SubscriberStore owns durable state of subscribers and confirmation tokens.
type SubscriberStore interface {
	Begin(ctx context.Context) (SubscriberTx, error)
	FindSubscriberIDByToken(ctx context.Context, token string) (uuid.UUID, bool, error)
	ConfirmSubscriber(ctx context.Context, subscriberID uuid.UUID) error
	// ListConfirmedSubscribers yields confirmed subscribers one by one. A non-nil
	// error ends the sequence; per-row parse failures are reported in
	// ConfirmedSubscriber.Err instead.
	ListConfirmedSubscribers(ctx context.Context) iter.Seq2[ConfirmedSubscriber, error]
	GetSubscriberByEmail(ctx context.Context, email string) (Subscriber, error)
}

// SubscriberTx groups subscriber writes that must become visible together.
// Rollback after a successful Commit is a no-op.
type SubscriberTx interface {
	InsertSubscriber(ctx context.Context, subscriber NewSubscriber) (uuid.UUID, error)
	StoreToken(ctx context.Context, subscriberID uuid.UUID, token string) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
