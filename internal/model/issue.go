package model

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FanOutPolicy decides what a broadcast does when a send fails.
type FanOutPolicy string

// FanOutFailFast aborts the remaining batch on the first send failure.
const FanOutFailFast FanOutPolicy = "fail_fast"

// Issue is a newsletter issue ready to be broadcast.
type Issue struct {
	ID          uuid.UUID
	Title       string
	HTMLContent string
	PublishedAt time.Time
}

// NewIssue validates title and content and stamps a new issue.
func NewIssue(title, htmlContent string) (Issue, error) {
	if strings.TrimSpace(title) == "" {
		return Issue{}, NewValidationError("newsletter title must not be empty")
	}
	if strings.TrimSpace(htmlContent) == "" {
		return Issue{}, NewValidationError("newsletter content must not be empty")
	}

	return Issue{
		ID:          uuid.New(),
		Title:       title,
		HTMLContent: htmlContent,
		PublishedAt: time.Now().UTC(),
	}, nil
}

// IssueArchive keeps a copy of every published issue.
type IssueArchive interface {
	Store(ctx context.Context, issue Issue) (string, error)
}

// EmailSender delivers a single transactional email. Implementations bound
// every call with a timeout and do not retry.
type EmailSender interface {
	Send(ctx context.Context, to SubscriberEmail, subject, htmlBody string) error
}
