package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Session SessionConfig
	Data    DataConfig
	Keys    APIKeys
	Ai      AIConfig
	Speech  SpeechConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
}

type SessionConfig struct {
	Secret     string
	Store      string // "memory", "file" or "redis"
	FileDir    string
	TTLMinutes int
}

type DataConfig struct {
	CatalogPath string
	ArticlePath string
}

type APIKeys struct {
	OpenAI            string
	AzureSpeech       string
	AzureSpeechRegion string
}

type AIConfig struct {
	Model string // e.g. "gpt-4o-mini"
}

type SpeechConfig struct {
	Provider  string // "openai" or "azure", never both
	OutputDir string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", "dev-secret"),
			Store:      getEnv("SESSION_STORE", "memory"),
			FileDir:    getEnv("SESSION_FILE_DIR", "sessions"),
			TTLMinutes: getEnvAsInt("SESSION_TTL_MINUTES", 60),
		},
		Data: DataConfig{
			CatalogPath: getEnv("CATALOG_PATH", "products.json"),
			ArticlePath: getEnv("ARTICLE_PATH", "article.txt"),
		},
		Keys: APIKeys{
			OpenAI:            getEnv("OPENAI_API_KEY", ""),
			AzureSpeech:       getEnv("AZURE_SPEECH_KEY", ""),
			AzureSpeechRegion: getEnv("AZURE_SPEECH_REGION", ""),
		},
		Ai: AIConfig{
			Model: getEnv("LLM_MODEL", "gpt-4o-mini"),
		},
		Speech: SpeechConfig{
			Provider:  getEnv("TTS_PROVIDER", "openai"),
			OutputDir: getEnv("TTS_OUTPUT_DIR", "static/tts"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
