package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apisetup "intake-agent/internal/api"
	authHandler "intake-agent/internal/auth/handler"
	"intake-agent/internal/bootstrap"
	"intake-agent/internal/config"
	"intake-agent/internal/observability"
	voiceCallHandler "intake-agent/internal/voicecall/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.ngrok.com/ngrok"
	ngrokconfig "golang.ngrok.com/ngrok/config"
)

// openTunnel starts an ngrok HTTP endpoint and returns it with its public URL.
var openTunnel = func(ctx context.Context, authToken string) (net.Listener, string, error) {
	tun, err := ngrok.Listen(ctx, ngrokconfig.HTTPEndpoint(), ngrok.WithAuthtoken(authToken))
	if err != nil {
		return nil, "", err
	}
	return tun, tun.URL(), nil
}

// Listen opens the listener the server accepts webhooks on. When no BaseURL
// is configured it opens an ngrok tunnel and stores the tunnel URL in
// cfg.Server.BaseURL, so it must run before bootstrap.Initialize.
func Listen(ctx context.Context, cfg *config.Config, logger *observability.Logger) (net.Listener, error) {
	if cfg.Server.BaseURL != "" {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
		if err != nil {
			return nil, fmt.Errorf("failed to listen on port %d: %w", cfg.Server.Port, err)
		}
		return ln, nil
	}

	ln, url, err := openTunnel(ctx, cfg.Server.NgrokAuthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to open ngrok tunnel: %w", err)
	}
	cfg.Server.BaseURL = config.NormalizeBaseURL(url)
	logger.Info(observability.WithFields(ctx, observability.Field{Key: "base_url", Value: cfg.Server.BaseURL}), "ngrok tunnel established")
	return ln, nil
}

// Server encapsulates the HTTP server and its dependencies
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	deps       *bootstrap.Dependencies
	config     *config.Config
	logger     *observability.Logger
}

// New creates a new Server instance
func New(cfg *config.Config, deps *bootstrap.Dependencies, logger *observability.Logger) *Server {
	return &Server{
		config: cfg,
		deps:   deps,
		logger: logger,
	}
}

// Setup configures the HTTP router with middleware and routes
func (s *Server) Setup() {
	s.router = gin.New()

	// Twilio posts server to server, CORS only matters for the read API
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowOrigins = []string{s.config.Server.BaseURL}

	// Allow localhost in non-production
	if os.Getenv("GO_ENV") != "production" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}

	// Apply middleware
	s.router.Use(cors.New(corsConfig))
	s.router.Use(observability.Middleware(s.logger))

	var opts []apisetup.Option
	if s.config.Twilio.ValidateSignature {
		opts = append(opts, apisetup.WithWebhookMiddleware(
			voiceCallHandler.ValidateTwilioSignature(s.deps.TwilioClient, s.config.Server.BaseURL, s.logger),
		))
	}
	if s.deps.AuthHandler != nil && s.deps.IntakesHandler != nil {
		var protected []gin.HandlerFunc
		if s.deps.RateLimiter != nil {
			protected = append(protected, s.deps.RateLimiter.Middleware(func(c *gin.Context) string {
				return c.GetString(authHandler.ContextKeySubject)
			}))
		}
		opts = append(opts, apisetup.WithIntakesAPI(s.deps.AuthHandler, s.deps.IntakesHandler, protected...))
	}

	// Register routes
	rootRouter := s.router.Group("/")
	api := apisetup.New(rootRouter, bootstrap.InboundCallRoute, s.deps.VoiceCallHandler, opts...)
	api.RegisterRoutes()
}

// Start serves HTTP requests on ln, which Listen opened
func (s *Server) Start(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler: s.router,
	}

	// Run the server in a goroutine so that it doesn't block
	go func() {
		s.logger.Info(ctx, fmt.Sprintf("Server starting on %s, public URL %s", ln.Addr(), s.config.Server.BaseURL))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error(ctx, "server failed to start", err)
			os.Exit(1)
		}
	}()

	return nil
}

// WaitForShutdown blocks until a shutdown signal is received, then gracefully shuts down
func (s *Server) WaitForShutdown(ctx context.Context) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	s.logger.Info(ctx, "Shutting down server...")

	// Give in-flight webhooks 5 seconds to finish
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.deps.Cleanup()

	s.logger.Info(ctx, "Server exited gracefully")
	return nil
}
