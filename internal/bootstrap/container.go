package bootstrap

import (
	"context"
	"log"
	"time"

	"lira-support-be/internal/catalog"
	"lira-support-be/internal/config"
	"lira-support-be/internal/controller"
	"lira-support-be/internal/pkg/logger"
	"lira-support-be/internal/repository/contract"
	"lira-support-be/internal/repository/file"
	"lira-support-be/internal/repository/memory"
	"lira-support-be/internal/repository/redisstore"
	"lira-support-be/internal/service"
	llmopenai "lira-support-be/pkg/llm/openai"
	"lira-support-be/pkg/prompt"
	"lira-support-be/pkg/speech"
	azurespeech "lira-support-be/pkg/speech/azure"
	openaispeech "lira-support-be/pkg/speech/openai"

	"github.com/redis/go-redis/v9"
)

const audioPublicPath = "/static/tts"

type Container struct {
	// Controllers
	ChatController controller.IChatController
	TTSController  controller.ITTSController

	// Exposed for main.go to flush on shutdown
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Grounding data, loaded once and injected read-only.
	// Missing or malformed files degrade to empty defaults, never crash.
	cat, err := catalog.Load(cfg.Data.CatalogPath)
	if err != nil {
		sysLogger.Warn("bootstrap", "Failed to load product catalog, continuing with empty catalog", map[string]interface{}{
			"path":  cfg.Data.CatalogPath,
			"error": err.Error(),
		})
		cat = &catalog.Catalog{}
	}
	article, err := catalog.LoadArticle(cfg.Data.ArticlePath)
	if err != nil {
		sysLogger.Warn("bootstrap", "Failed to load company article, continuing with empty article", map[string]interface{}{
			"path":  cfg.Data.ArticlePath,
			"error": err.Error(),
		})
		article = ""
	}

	// 3. Session Store based on Config
	ttl := time.Duration(cfg.Session.TTLMinutes) * time.Minute

	var sessionRepo contract.SessionRepository
	switch cfg.Session.Store {
	case "file":
		sessionRepo = file.NewSessionRepository(cfg.Session.FileDir, ttl, sysLogger)
		log.Printf("[INFO] Using Session Store: FILE (%s)", cfg.Session.FileDir)
	case "redis":
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sessionRepo = redisstore.NewSessionRepository(rdb, ttl, sysLogger)
		log.Printf("[INFO] Using Session Store: REDIS")
	default:
		sessionRepo = memory.NewSessionRepository(ttl)
		log.Printf("[INFO] Using Session Store: MEMORY")
	}

	// 4. LLM Provider
	llmProvider := llmopenai.NewProvider(cfg.Keys.OpenAI, cfg.Ai.Model)
	log.Printf("[INFO] Using LLM Model: %s", cfg.Ai.Model)

	// 5. Speech Synthesizer based on Config (one backend, never both)
	var synthesizer speech.Synthesizer
	rulesVariant := prompt.VariantBase
	if cfg.Speech.Provider == "azure" {
		synthesizer = azurespeech.NewSynthesizer(cfg.Keys.AzureSpeech, cfg.Keys.AzureSpeechRegion, cfg.Speech.OutputDir)
		rulesVariant = prompt.VariantEnhanced
		log.Printf("[INFO] Using TTS Provider: AZURE (%s)", cfg.Keys.AzureSpeechRegion)
	} else {
		synthesizer = openaispeech.NewSynthesizer(cfg.Keys.OpenAI, cfg.Speech.OutputDir)
		log.Printf("[INFO] Using TTS Provider: OPENAI")
	}

	// 6. Services
	chatService := service.NewChatService(sessionRepo, llmProvider, cat, article, rulesVariant, sysLogger)
	ttsService := service.NewTTSService(synthesizer, audioPublicPath, sysLogger)

	// 7. Controllers
	return &Container{
		ChatController: controller.NewChatController(chatService),
		TTSController:  controller.NewTTSController(ttsService),
		Logger:         sysLogger,
	}
}
