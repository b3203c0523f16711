package service

import (
	"context"
	"fmt"

	"github.com/dtroode/newsletter-server/internal/logger"
	"github.com/dtroode/newsletter-server/internal/model"
)

// Newsletter broadcasts issues to every confirmed subscriber.
type Newsletter struct {
	store   model.SubscriberStore
	sender  model.EmailSender
	archive model.IssueArchive
	policy  model.FanOutPolicy
	logger  *logger.Logger
}

// NewNewsletter creates a Newsletter. archive may be nil, in which case issues are not archived.
func NewNewsletter(
	store model.SubscriberStore,
	sender model.EmailSender,
	archive model.IssueArchive,
	logger *logger.Logger,
) *Newsletter {
	return &Newsletter{
		store:   store,
		sender:  sender,
		archive: archive,
		policy:  model.FanOutFailFast,
		logger:  logger,
	}
}

// Publish sends the issue to confirmed subscribers one at a time and stops at
// the first failed send. Subscribers whose stored email no longer validates
// are skipped with a warning.
func (n *Newsletter) Publish(ctx context.Context, title, htmlContent string) error {
	issue, err := model.NewIssue(title, htmlContent)
	if err != nil {
		n.logger.Info("Newsletter service: invalid issue",
			"error", err.Error())
		return err
	}

	n.logger.Info("Newsletter service: publishing issue",
		"issue_id", issue.ID,
		"title", issue.Title,
		"policy", string(n.policy))

	if n.archive != nil {
		key, err := n.archive.Store(ctx, issue)
		if err != nil {
			n.logger.Error("Newsletter service: failed to archive issue",
				"issue_id", issue.ID,
				"error", err.Error())
			return model.NewUnexpectedError("failed to archive newsletter issue", err)
		}
		n.logger.Debug("Newsletter service: issue archived",
			"issue_id", issue.ID,
			"key", key)
	}

	var sent, skipped int
	for subscriber, err := range n.store.ListConfirmedSubscribers(ctx) {
		if err != nil {
			n.logger.Error("Newsletter service: failed to list confirmed subscribers",
				"issue_id", issue.ID,
				"error", err.Error())
			return model.NewUnexpectedError("failed to get the list of confirmed subscribers", err)
		}

		if subscriber.Err != nil {
			skipped++
			n.logger.Warn("Skipping a confirmed subscriber. Their stored contact details are invalid",
				"subscriber_id", subscriber.ID,
				"error", subscriber.Err.Error())
			continue
		}

		if err := n.sender.Send(ctx, subscriber.Email, issue.Title, issue.HTMLContent); err != nil {
			n.logger.Error("Newsletter service: failed to send issue",
				"issue_id", issue.ID,
				"email", subscriber.Email.String(),
				"sent", sent,
				"error", err.Error())
			return model.NewUnexpectedError(
				fmt.Sprintf("failed to send newsletter issue to %s", subscriber.Email), err)
		}
		sent++
	}

	n.logger.Info("Newsletter service: issue published",
		"issue_id", issue.ID,
		"sent", sent,
		"skipped", skipped)

	return nil
}
