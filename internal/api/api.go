package api

import (
	"net/http"

	authHandler "intake-agent/internal/auth/handler"
	intakesHandler "intake-agent/internal/intakes/handler"
	voiceCallHandler "intake-agent/internal/voicecall/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router           *gin.RouterGroup
	inboundCallRoute string
	voiceCallHandler voiceCallHandler.Handler

	// Empty unless Twilio signature validation is enabled.
	webhookMiddleware []gin.HandlerFunc

	authHandler    *authHandler.Handler
	intakesHandler *intakesHandler.Handler

	// Runs after JWT validation on protected routes.
	protectedMiddleware []gin.HandlerFunc
}

type Option func(*API)

// WithWebhookMiddleware runs mw in front of every Twilio webhook route.
func WithWebhookMiddleware(mw ...gin.HandlerFunc) Option {
	return func(a *API) { a.webhookMiddleware = append(a.webhookMiddleware, mw...) }
}

// WithIntakesAPI exposes the JWT protected intake read API. mw runs after the
// token has been validated.
func WithIntakesAPI(auth *authHandler.Handler, intakes *intakesHandler.Handler, mw ...gin.HandlerFunc) Option {
	return func(a *API) {
		a.authHandler = auth
		a.intakesHandler = intakes
		a.protectedMiddleware = append(a.protectedMiddleware, mw...)
	}
}

func New(router *gin.RouterGroup, inboundCallRoute string, voiceCallHandler voiceCallHandler.Handler, opts ...Option) API {
	a := API{
		router:           router,
		inboundCallRoute: inboundCallRoute,
		voiceCallHandler: voiceCallHandler,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

func (a *API) RegisterRoutes() {
	a.Health()

	callGroup := a.router.Group(a.inboundCallRoute, a.webhookMiddleware...)
	{
		callGroup.POST("", a.voiceCallHandler.HandleInboundCall)
		callGroup.POST("/turn", a.voiceCallHandler.HandleTurn)
		callGroup.POST("/status", a.voiceCallHandler.HandleStatus)
	}

	if a.authHandler == nil || a.intakesHandler == nil {
		return
	}
	apiGroup := a.router.Group("/api")
	protectedGroup := apiGroup.Group("/protected", a.authHandler.HandleJWTMiddleware)
	protectedGroup.Use(a.protectedMiddleware...)
	{
		protectedGroup.GET("/intakes", a.intakesHandler.HandleListIntakes)
		protectedGroup.GET("/intakes/:id", a.intakesHandler.HandleGetIntake)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
