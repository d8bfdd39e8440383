package bootstrap

import (
	"context"
	"fmt"

	"intake-agent/internal/agent"
	authHandler "intake-agent/internal/auth/handler"
	authProcessor "intake-agent/internal/auth/processor"
	kafkaClient "intake-agent/internal/clients/kafka"
	redisClient "intake-agent/internal/clients/redis"
	"intake-agent/internal/clients/twilio"
	"intake-agent/internal/config"
	"intake-agent/internal/events"
	"intake-agent/internal/intake"
	intakesHandler "intake-agent/internal/intakes/handler"
	intakesProcessor "intake-agent/internal/intakes/processor"
	"intake-agent/internal/observability"
	"intake-agent/internal/ratelimit"
	"intake-agent/internal/store"
	voiceCallHandler "intake-agent/internal/voicecall/handler"
	voiceCallProcessor "intake-agent/internal/voicecall/processor"
	"intake-agent/internal/voicecall/session"
)

// InboundCallRoute is the path Twilio is configured to post new calls to.
const InboundCallRoute = "/inbound_call"

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  *store.Store
	Logger *observability.Logger

	// Handlers
	VoiceCallHandler voiceCallHandler.Handler
	TwilioClient     *twilio.Client

	// Set only when both the database and a JWT secret are configured.
	AuthHandler    *authHandler.Handler
	IntakesHandler *intakesHandler.Handler
	// Nil when Redis is not configured.
	RateLimiter *ratelimit.Service

	// Clients (for cleanup)
	RedisClient   *redisClient.Client
	KafkaProducer *kafkaClient.Producer
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	var err error
	deps.TwilioClient, err = twilio.NewClient(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.Number, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create twilio client: %w", err)
	}

	// Initialize the dialogue agent
	dialogueAgent, err := newAgent(cfg, logger)
	if err != nil {
		return nil, err
	}

	// Initialize session storage
	var sessions session.Store
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	if deps.RedisClient.IsEnabled() {
		sessions = session.NewRedisStore(deps.RedisClient, session.DefaultTTL, logger)
	} else {
		logger.Warn(ctx, "Redis is not configured, call sessions are kept in memory")
		sessions = session.NewMemoryStore()
	}

	var opts []voiceCallProcessor.Option

	// Initialize database store
	if cfg.Database.Enabled() {
		s, err := store.New(cfg.Database.ConnectionString(), logger)
		if err != nil {
			deps.Cleanup()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		deps.Store = &s
		opts = append(opts, voiceCallProcessor.WithIntakeStore(deps.Store))
	} else {
		logger.Warn(ctx, "Database is not configured, intake records will not be persisted")
	}

	// Initialize Kafka producer
	if cfg.Kafka.Enabled() {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.BrokerList(),
			Topic:   cfg.Kafka.IntakeTopic,
		}, logger)
		opts = append(opts, voiceCallProcessor.WithEventPublisher(events.NewPublisher(deps.KafkaProducer, logger)))
	}

	// Initialize voice call processor and handler
	callProc := voiceCallProcessor.New(voiceCallProcessor.Config{
		BaseURL:          cfg.Server.BaseURL,
		InboundCallRoute: InboundCallRoute,
	}, dialogueAgent, sessions, deps.TwilioClient, logger, opts...)
	deps.VoiceCallHandler = voiceCallHandler.New(callProc, logger)

	// Initialize the protected read API
	if deps.Store != nil && cfg.Auth.JWTSecret != "" {
		authProc, err := authProcessor.New(cfg.Auth.JWTSecret, logger)
		if err != nil {
			deps.Cleanup()
			return nil, fmt.Errorf("failed to create auth processor: %w", err)
		}
		ah := authHandler.New(&authProc, logger)
		deps.AuthHandler = &ah

		ih := intakesHandler.New(intakesProcessor.New(deps.Store, logger), logger)
		deps.IntakesHandler = &ih

		if deps.RedisClient.IsEnabled() {
			deps.RateLimiter = ratelimit.NewService(deps.RedisClient, cfg.Auth.RateLimitRPM, logger)
		}
	}

	return deps, nil
}

func newAgent(cfg *config.Config, logger *observability.Logger) (agent.Agent, error) {
	kind, err := agent.ParseKind(cfg.Agent.Kind)
	if err != nil {
		return nil, err
	}

	agentCfg := agent.Config{
		Kind:           kind,
		InitialMessage: voiceCallProcessor.Greeting,
		PromptPreamble: voiceCallProcessor.PromptPreamble(voiceCallProcessor.AvailableSlots),
		Actions:        []intake.ActionConfig{{Type: intake.ActionTypeCollectData}},
	}
	switch kind {
	case agent.KindGemini:
		agentCfg.Gemini = &agent.GeminiConfig{APIKey: cfg.Agent.GoogleAIAPIKey, Model: cfg.Agent.Model}
	default:
		agentCfg.ChatGPT = &agent.ChatGPTConfig{APIKey: cfg.Agent.OpenAIAPIKey, Model: cfg.Agent.Model}
	}

	factory := agent.NewFactory(intake.NewActionFactory(logger), logger)
	a, err := factory.CreateAgent(agentCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s agent: %w", kind, err)
	}
	return a, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.KafkaProducer != nil {
		d.KafkaProducer.Close()
	}
	if d.RedisClient != nil {
		d.RedisClient.Close()
	}
	if d.Store != nil {
		d.Store.Close()
	}
}
