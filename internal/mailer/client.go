package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dtroode/newsletter-server/internal/model"
)

const messagesPath = "/v1.0/me/messages"

var _ model.EmailSender = (*Client)(nil)

// Client sends HTML emails through the provider's REST API.
type Client struct {
	httpClient         *http.Client
	baseURL            string
	sender             model.SubscriberEmail
	authorizationToken string
}

// NewClient creates a Client whose every request is bounded by timeout.
func NewClient(baseURL string, sender model.SubscriberEmail, authorizationToken string, timeout time.Duration) *Client {
	return &Client{
		httpClient:         &http.Client{Timeout: timeout},
		baseURL:            strings.TrimRight(baseURL, "/"),
		sender:             sender,
		authorizationToken: authorizationToken,
	}
}

// Send delivers one message. Transport errors, timeouts and non-2xx responses are wrapped in model.ErrSend.
func (c *Client) Send(ctx context.Context, to model.SubscriberEmail, subject, htmlBody string) error {
	payload := messageRequest{
		Subject: subject,
		Body: itemBody{
			ContentType: "HTML",
			Content:     htmlBody,
		},
		From:         recipient{EmailAddress: emailAddress{Address: c.sender.String()}},
		ToRecipients: []recipient{{EmailAddress: emailAddress{Address: to.String()}}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %w", model.ErrSend, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %w", model.ErrSend, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.authorizationToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: request failed: %w", model.ErrSend, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: provider returned status %d: %s", model.ErrSend, resp.StatusCode, string(respBody))
	}

	return nil
}

type messageRequest struct {
	Subject      string      `json:"subject"`
	Body         itemBody    `json:"body"`
	From         recipient   `json:"from"`
	ToRecipients []recipient `json:"toRecipients"`
}

type itemBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type recipient struct {
	EmailAddress emailAddress `json:"emailAddress"`
}

type emailAddress struct {
	Address string `json:"address"`
}
