package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DB       DBConfig
	Server   ServerConfig
	Logger   LoggerConfig
	Redis    RedisConfig
	Cache    CacheConfig
	LLM      LLMConfig
	Auth     AuthConfig
	Exercise ExerciseConfig
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type DBConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

type LoggerConfig struct {
	Level string
	Env   string
}

// CacheConfig selects the profile cache backend ("memory" or "redis").
type CacheConfig struct {
	Driver     string
	ProfileTTL string
}

// LLMConfig selects the exercise text generator. ServerURL is the Ollama
// endpoint; BaseURL overrides the endpoint of the hosted providers.
type LLMConfig struct {
	Provider      string
	Model         string
	APIKey        string
	BaseURL       string
	ServerURL     string
	Timeout       time.Duration
	RatePerSecond float64
	Temperature   float64
	MaxTokens     int
}

// AuthConfig enables bearer-token checks when JWTSecret is set.
type AuthConfig struct {
	JWTSecret string
}

type ExerciseConfig struct {
	MaxAttempts     int
	BackoffStep     time.Duration
	DefaultQuantity int
	MaxQuantity     int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.driver", "pgx")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.name", "edu_perfil")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime_minutes", 30)

	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 70)
	v.SetDefault("server.body_limit", 1024*1024)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetDefault("cache.driver", "memory")
	v.SetDefault("cache.profile_ttl", "10m")

	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.model", "gemini-2.0-flash")
	v.SetDefault("llm.server_url", "http://localhost:11434")
	v.SetDefault("llm.timeout", 30)
	v.SetDefault("llm.rate_per_second", 2.0)
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.max_tokens", 2048)

	v.SetDefault("exercise.max_attempts", 3)
	v.SetDefault("exercise.backoff_ms", 1000)
	v.SetDefault("exercise.default_quantity", 3)
	v.SetDefault("exercise.max_quantity", 10)
}

func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables still win.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	config := &Config{
		DB: DBConfig{
			Driver:   v.GetString("db.driver"),
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
			SSLMode:  v.GetString("db.sslmode"),

			MaxOpenConns:    v.GetInt("db.max_open_conns"),
			MaxIdleConns:    v.GetInt("db.max_idle_conns"),
			ConnMaxLifetime: time.Duration(v.GetInt("db.conn_max_lifetime_minutes")) * time.Minute,
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			BodyLimit:    v.GetInt("server.body_limit"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Cache: CacheConfig{
			Driver:     v.GetString("cache.driver"),
			ProfileTTL: v.GetString("cache.profile_ttl"),
		},
		LLM: LLMConfig{
			Provider:      v.GetString("llm.provider"),
			Model:         v.GetString("llm.model"),
			APIKey:        v.GetString("llm.api_key"),
			BaseURL:       v.GetString("llm.base_url"),
			ServerURL:     v.GetString("llm.server_url"),
			Timeout:       time.Duration(v.GetInt("llm.timeout")) * time.Second,
			RatePerSecond: v.GetFloat64("llm.rate_per_second"),
			Temperature:   v.GetFloat64("llm.temperature"),
			MaxTokens:     v.GetInt("llm.max_tokens"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("auth.jwt_secret"),
		},
		Exercise: ExerciseConfig{
			MaxAttempts:     v.GetInt("exercise.max_attempts"),
			BackoffStep:     time.Duration(v.GetInt("exercise.backoff_ms")) * time.Millisecond,
			DefaultQuantity: v.GetInt("exercise.default_quantity"),
			MaxQuantity:     v.GetInt("exercise.max_quantity"),
		},
	}

	// Provider-specific key names apply when llm.api_key is unset.
	if key := os.Getenv("GEMINI_API_KEY"); key != "" && config.LLM.APIKey == "" && config.LLM.Provider == "gemini" {
		config.LLM.APIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" && config.LLM.APIKey == "" && config.LLM.Provider == "openai" {
		config.LLM.APIKey = key
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" && config.LLM.APIKey == "" && config.LLM.Provider == "anthropic" {
		config.LLM.APIKey = key
	}
	if secret := os.Getenv("SUPABASE_JWT_SECRET"); secret != "" && config.Auth.JWTSecret == "" {
		config.Auth.JWTSecret = secret
	}

	return config
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
		c.DB.SSLMode,
	)
}

// ParseTTLStringOrDefault parses a Go duration string, falling back to
// defaultTTL when the string is empty or invalid.
func (c *Config) ParseTTLStringOrDefault(ttlString string, defaultTTL time.Duration) time.Duration {
	if ttlString == "" {
		return defaultTTL
	}
	d, err := time.ParseDuration(ttlString)
	if err != nil || d <= 0 {
		return defaultTTL
	}
	return d
}
