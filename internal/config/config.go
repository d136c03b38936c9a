package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // Часы жизни токена и сессии
	} `yaml:"jwt"`

	Generation struct {
		Provider   string `yaml:"provider"` // openai или mock
		APIKey     string `yaml:"api_key"`
		TextModel  string `yaml:"text_model"`
		ImageModel string `yaml:"image_model"`
	} `yaml:"generation"`
}

var AppConfig *Config

// LoadConfig загружает конфигурацию: из переменных окружения, если задан
// DATABASE_URL (тесты/деплой), иначе из config.yaml. .env подхватывается
// автоматически, если присутствует.
func LoadConfig() {
	var cfg Config

	// .env опционален: в проде переменные приходят из окружения
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Host = os.Getenv("SERVER_HOST")
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL, _ = strconv.Atoi(os.Getenv("JWT_TTL"))
	cfg.Generation.Provider = os.Getenv("GENERATION_PROVIDER")
	cfg.Generation.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.Generation.TextModel = os.Getenv("GENERATION_TEXT_MODEL")
	cfg.Generation.ImageModel = os.Getenv("GENERATION_IMAGE_MODEL")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 7 * 24 // 7 дней
	}
	if cfg.Generation.Provider == "" {
		// Без ключа внешнего API работаем на мок-провайдере
		if cfg.Generation.APIKey == "" {
			cfg.Generation.Provider = "mock"
		} else {
			cfg.Generation.Provider = "openai"
		}
	}
	if cfg.Generation.TextModel == "" {
		cfg.Generation.TextModel = "gpt-3.5-turbo"
	}
	if cfg.Generation.ImageModel == "" {
		cfg.Generation.ImageModel = "dall-e-3"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
