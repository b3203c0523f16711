//go:build integration

package router_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	httpctx "github.com/dtroode/newsletter-server/internal/api/http/context"
	"github.com/dtroode/newsletter-server/internal/api/http/router"
	"github.com/dtroode/newsletter-server/internal/mailer"
	"github.com/dtroode/newsletter-server/internal/model"
	"github.com/dtroode/newsletter-server/internal/repository/postgres"
	"github.com/dtroode/newsletter-server/internal/service"
	"github.com/dtroode/newsletter-server/internal/testutil"
	"github.com/dtroode/newsletter-server/internal/token"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "newsletter_e2e",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/newsletter_e2e?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

type sentMessage struct {
	To      string
	Subject string
	Content string
}

// emailCapture records messages posted to the provider endpoint.
type emailCapture struct {
	mu       sync.Mutex
	messages []sentMessage
	status   int
}

func (c *emailCapture) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Subject string `json:"subject"`
		Body    struct {
			Content string `json:"content"`
		} `json:"body"`
		ToRecipients []struct {
			EmailAddress struct {
				Address string `json:"address"`
			} `json:"emailAddress"`
		} `json:"toRecipients"`
	}
	raw, _ := io.ReadAll(r.Body)
	_ = json.Unmarshal(raw, &payload)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status != 0 {
		w.WriteHeader(c.status)
		return
	}
	for _, to := range payload.ToRecipients {
		c.messages = append(c.messages, sentMessage{To: to.EmailAddress.Address, Subject: payload.Subject, Content: payload.Body.Content})
	}
	w.WriteHeader(http.StatusOK)
}

func (c *emailCapture) sent() []sentMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]sentMessage(nil), c.messages...)
}

func (c *emailCapture) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
}

type testApp struct {
	conn    *postgres.Connection
	server  *httptest.Server
	emails  *emailCapture
	store   *postgres.SubscriberRepository
	tokens  *token.JWT
	baseURL string
}

func spawnApp(t *testing.T) *testApp {
	t.Helper()
	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	_, err = conn.Exec(ctx, `TRUNCATE subscription_tokens, subscriptions`)
	require.NoError(t, err)

	emails := &emailCapture{}
	provider := httptest.NewServer(emails)
	t.Cleanup(provider.Close)

	sender, err := model.ParseSubscriberEmail("newsletter@example.com")
	require.NoError(t, err)

	log := testutil.MakeNoopLogger()
	store := postgres.NewSubscriberRepository(conn)
	client := mailer.NewClient(provider.URL, sender, "test-token", 2*time.Second)
	tokens := token.NewJWT("e2e-secret", time.Hour)

	const baseURL = "http://127.0.0.1:8000"
	r := router.New(
		service.NewSubscription(store, token.NewConfirmationGenerator(), client, baseURL, log),
		service.NewConfirmation(store, log),
		service.NewNewsletter(store, client, nil, log),
		tokens,
		httpctx.NewManager(),
		log,
	)
	app := httptest.NewServer(r.Register())
	t.Cleanup(app.Close)

	return &testApp{conn: conn, server: app, emails: emails, store: store, tokens: tokens, baseURL: baseURL}
}

func (a *testApp) subscribe(t *testing.T, name, email string) *http.Response {
	t.Helper()
	resp, err := http.PostForm(a.server.URL+"/subscriptions", url.Values{"name": {name}, "email": {email}})
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp
}

var linkPattern = regexp.MustCompile(`href="([^"]+)"`)

// confirmationLink extracts the link from a confirmation email and points it at the test server.
func (a *testApp) confirmationLink(t *testing.T, msg sentMessage) string {
	t.Helper()
	match := linkPattern.FindStringSubmatch(msg.Content)
	require.Len(t, match, 2)
	require.True(t, strings.HasPrefix(match[1], a.baseURL))
	return a.server.URL + strings.TrimPrefix(match[1], a.baseURL)
}

func (a *testApp) subscriberCount(t *testing.T) int {
	t.Helper()
	var count int
	require.NoError(t, a.conn.QueryRow(context.Background(), `SELECT count(*) FROM subscriptions`).Scan(&count))
	return count
}

func (a *testApp) publish(t *testing.T, body string) *http.Response {
	t.Helper()
	signed, err := a.tokens.GeneratePublisherToken("editor")
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, a.server.URL+"/newsletters", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+signed)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp
}

func TestHealthCheck(t *testing.T) {
	app := spawnApp(t)

	resp, err := http.Get(app.server.URL + "/health_check")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body)
}

func TestSubscribeAndConfirm(t *testing.T) {
	ctx := context.Background()
	app := spawnApp(t)

	resp := app.subscribe(t, "Arya Stark", "arya@example.com")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	saved, err := app.store.GetSubscriberByEmail(ctx, "arya@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Arya Stark", saved.Name)
	assert.Equal(t, model.StatusPendingConfirmation, saved.Status)

	sent := app.emails.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "arya@example.com", sent[0].To)
	assert.Equal(t, "Welcome!", sent[0].Subject)

	confirm, err := http.Get(app.confirmationLink(t, sent[0]))
	require.NoError(t, err)
	_ = confirm.Body.Close()
	require.Equal(t, http.StatusOK, confirm.StatusCode)

	saved, err = app.store.GetSubscriberByEmail(ctx, "arya@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, saved.Status)

	again, err := http.Get(app.confirmationLink(t, sent[0]))
	require.NoError(t, err)
	_ = again.Body.Close()
	assert.Equal(t, http.StatusOK, again.StatusCode)
}

func TestSubscribe_InvalidForm(t *testing.T) {
	app := spawnApp(t)

	tests := []struct {
		name  string
		sname string
		email string
	}{
		{name: "empty email", sname: "Arya Stark", email: ""},
		{name: "empty name", sname: "", email: "arya@example.com"},
		{name: "invalid email", sname: "Arya Stark", email: "definitely-not-an-email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := app.subscribe(t, tt.sname, tt.email)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Zero(t, app.subscriberCount(t))
		})
	}
	assert.Empty(t, app.emails.sent())
}

func TestSubscribe_SendFailureKeepsPendingSubscriber(t *testing.T) {
	ctx := context.Background()
	app := spawnApp(t)
	app.emails.status = http.StatusInternalServerError

	resp := app.subscribe(t, "Arya Stark", "arya@example.com")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	saved, err := app.store.GetSubscriberByEmail(ctx, "arya@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPendingConfirmation, saved.Status)
}

func TestConfirm_Errors(t *testing.T) {
	app := spawnApp(t)

	resp, err := http.Get(app.server.URL + "/subscriptions/confirm")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(app.server.URL + "/subscriptions/confirm?subscription_token=doesNotExist0000000000000")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPublish_DeliversToConfirmedOnly(t *testing.T) {
	app := spawnApp(t)

	for _, email := range []string{"first@example.com", "second@example.com"} {
		require.Equal(t, http.StatusOK, app.subscribe(t, "Confirmed", email).StatusCode)
	}
	for _, msg := range app.emails.sent() {
		resp, err := http.Get(app.confirmationLink(t, msg))
		require.NoError(t, err)
		_ = resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	require.Equal(t, http.StatusOK, app.subscribe(t, "Pending", "pending@example.com").StatusCode)
	app.emails.reset()

	resp := app.publish(t, `{"title":"Issue #1","content":"<p>Hello</p>"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	sent := app.emails.sent()
	require.Len(t, sent, 2)
	recipients := []string{sent[0].To, sent[1].To}
	assert.ElementsMatch(t, []string{"first@example.com", "second@example.com"}, recipients)
	for _, msg := range sent {
		assert.Equal(t, "Issue #1", msg.Subject)
		assert.Equal(t, "<p>Hello</p>", msg.Content)
	}
}

func TestPublish_RejectsInvalidBodies(t *testing.T) {
	app := spawnApp(t)

	for _, body := range []string{`{"content":"<p>Hello</p>"}`, `{"title":"Issue #1"}`, `not json`} {
		resp := app.publish(t, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
	}
	assert.Empty(t, app.emails.sent())
}
