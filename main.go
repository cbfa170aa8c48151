package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"travelsure/config"
	"travelsure/cron"
	"travelsure/database"
	policyRepo "travelsure/database/repository/policy"
	"travelsure/handlers"
	"travelsure/middleware"
	"travelsure/routes"
	"travelsure/services/conversation"
	"travelsure/services/faq"
	ai "travelsure/services/intelligence"
	"travelsure/services/notification"
	"travelsure/services/payment"
	"travelsure/services/persona"
	"travelsure/services/plans"
	"travelsure/services/policy"
	"travelsure/services/session"
	"travelsure/services/speech"
	"travelsure/services/tasks"
	"travelsure/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var redisClients []*redis.Client

	// Sessions.
	var store session.Store
	if strings.EqualFold(cfg.SessionStore, "memory") {
		store = session.NewMemoryStore(cfg.SessionTTL, 10*time.Minute)
		logger.Info("Sessions kept in memory")
	} else {
		if err := utils.InitSessionCache(); err != nil {
			logger.Fatal("main: session store unavailable", zap.Error(err))
		}
		store = session.NewRedisStore(utils.SessionCacheClient, cfg.SessionTTL)
		redisClients = append(redisClients, utils.SessionCacheClient)
	}

	llm, err := ai.NewTextGenerator(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("main: failed to initialize language model", zap.Error(err))
	}
	defer func() {
		if err := ai.Close(llm); err != nil {
			logger.Warn("main: failed to close language model client", zap.Error(err))
		}
	}()
	engine := plans.NewEngine(cfg.Currency)

	// Policies.
	var policies policyRepo.PolicyRepository
	if err := database.InitDB(); err != nil {
		logger.Warn("MongoDB unavailable, policies kept in memory", zap.Error(err))
		policies = policyRepo.NewMemoryPolicyRepo()
	} else {
		defer database.Close(context.Background())
		repo, err := policyRepo.NewMongoPolicyRepo(database.Database())
		if err != nil {
			logger.Fatal("main: failed to initialize policy repository", zap.Error(err))
		}
		policies = repo
	}

	// Push notifications.
	var notifier notification.Notifier = notification.LogNotifier{Logger: logger}
	if err := utils.FirebaseInit(ctx); err != nil {
		logger.Warn("Push notifications disabled", zap.Error(err))
	} else if fcm, err := notification.NewFCMNotifier(utils.FCMClient, logger); err == nil {
		notifier = fcm
	}

	// Pre-departure reminders.
	var scheduler tasks.Scheduler
	if err := utils.InitTaskCache(); err != nil {
		logger.Warn("Reminder queue disabled", zap.Error(err))
	} else {
		redisClients = append(redisClients, utils.TaskCacheClient)
		client := asynq.NewClient(cron.RedisOpt())
		defer client.Close()
		scheduler = tasks.NewAsynqScheduler(client)
		worker := cron.InitReminderWorker(ctx, notifier, policies, logger)
		defer worker.Shutdown()
	}

	var wording *faq.Wording
	if cfg.PolicyWordingPDF != "" {
		if wording, err = faq.LoadWording(cfg.PolicyWordingPDF); err != nil {
			logger.Warn("Policy wording not loaded", zap.String("path", cfg.PolicyWordingPDF), zap.Error(err))
		} else {
			logger.Info("Policy wording loaded", zap.Int("passages", wording.Len()))
		}
	}

	issuer, err := policy.NewIssuer(policy.Deps{
		Repo:      policies,
		Plans:     engine,
		Documents: utils.DocumentStore(),
		Notifier:  notifier,
		Scheduler: scheduler,
		TokenTTL:  cfg.PolicyTokenTTL,
		Logger:    logger,
	})
	if err != nil {
		logger.Fatal("main: failed to initialize policy issuer", zap.Error(err))
	}

	var transcriber speech.Transcriber = speech.Unavailable{}
	if gt, err := speech.NewGoogleTranscriber(ctx, cfg.GoogleServiceAccountFile); err == nil {
		defer gt.Close()
		transcriber = gt
	} else if !errors.Is(err, speech.ErrNotConfigured) {
		logger.Warn("Voice input disabled", zap.Error(err))
	}

	manager := &conversation.Manager{
		Store:     store,
		Extractor: conversation.NewExtractor(time.Now),
		LLM:       llm,
		FAQ:       faq.NewService(engine, wording, llm, logger),
		Personas:  persona.NewClassifier(),
		Plans:     engine,
		Payments:  payment.NewHandler(cfg, logger),
		Issuer:    issuer,
		Phraser:   conversation.RandomPhraser{},
		Timeout:   cfg.ExternalCallTimeout,
		Logger:    logger,
	}

	utils.StartHealthMonitor(ctx, redisClients, database.MongoClient, 30*time.Second)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewChatHandler(manager, transcriber),
		handlers.NewSessionHandler(manager),
		handlers.NewPolicyHandler(issuer),
		handlers.NewAdminHandler(manager),
		cfg.AdminToken,
	)
	routes.RegisterRoutes(router, handlerBundle)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	logger.Sugar().Info("main: server stopped gracefully")
}
