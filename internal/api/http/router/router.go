package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dtroode/newsletter-server/internal/api/http/handler"
	"github.com/dtroode/newsletter-server/internal/api/http/middleware"
	"github.com/dtroode/newsletter-server/internal/logger"
	"github.com/dtroode/newsletter-server/internal/model"
)

const requestTimeout = 60 * time.Second

// Router wires HTTP routes to newsletter workflows.
type Router struct {
	subscriptionService handler.SubscriptionService
	confirmationService handler.ConfirmationService
	newsletterService   handler.NewsletterService
	tokenManager        model.PublisherTokenManager
	contextManager      model.ContextManager
	logger              *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	subscriptionService handler.SubscriptionService,
	confirmationService handler.ConfirmationService,
	newsletterService handler.NewsletterService,
	tokenManager model.PublisherTokenManager,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		subscriptionService: subscriptionService,
		confirmationService: confirmationService,
		newsletterService:   newsletterService,
		tokenManager:        tokenManager,
		contextManager:      contextManager,
		logger:              logger,
	}
}

// Register builds the handler tree with request id, logging, recovery and
// publisher authentication on /newsletters. Only subscription routes carry a
// request timeout.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.RealIP)
	mux.Use(logging.Handle)
	mux.Use(chimiddleware.Recoverer)

	mux.Get("/health_check", handler.HealthCheck)
	r.registerSubscriptionRoutes(mux)
	r.registerNewsletterRoutes(mux, authenticate)

	return mux
}

func (r *Router) registerSubscriptionRoutes(mux chi.Router) {
	subscriptionHandler := handler.NewSubscription(r.subscriptionService, r.confirmationService, r.logger)

	mux.Route("/subscriptions", func(sr chi.Router) {
		sr.Use(chimiddleware.Timeout(requestTimeout))
		sr.Post("/", subscriptionHandler.Subscribe)
		sr.Get("/confirm", subscriptionHandler.Confirm)
	})
}

func (r *Router) registerNewsletterRoutes(mux chi.Router, authenticate *middleware.Authenticate) {
	newsletterHandler := handler.NewNewsletter(r.newsletterService, r.contextManager, r.logger)

	mux.With(authenticate.Handle).Post("/newsletters", newsletterHandler.Publish)
}
