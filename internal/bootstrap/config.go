package bootstrap

import (
	"os"
	"strconv"
)

type Config struct {
	ServerAddr string
	LogLevel   string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	OpenAIAPIKey string

	YtdlpPath    string
	FfmpegPath   string
	CaptureDir   string
	ChunkSeconds int

	SearchEndpoint    string
	SearchBearerToken string
}

func LoadConfig() *Config {
	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=campaign port=5432 sslmode=disable"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       0,

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),

		YtdlpPath:    getEnv("YTDLP_PATH", "yt-dlp"),
		FfmpegPath:   getEnv("FFMPEG_PATH", "ffmpeg"),
		CaptureDir:   getEnv("CAPTURE_DIR", os.TempDir()),
		ChunkSeconds: getEnvInt("CHUNK_SECONDS", 30),

		SearchEndpoint:    getEnv("SEARCH_ENDPOINT", ""),
		SearchBearerToken: getEnv("SEARCH_BEARER_TOKEN", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
