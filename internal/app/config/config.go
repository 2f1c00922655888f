package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	JWT         JWTConfig
	Redis       RedisConfig
}

type JWTConfig struct {
	Secret        string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

const (
	envJWTSecret    = "JWT_SECRET"
	envJWTExpiresIn = "JWT_EXPIRES_IN"
	envRedisHost    = "REDIS_HOST"
	envRedisPort    = "REDIS_PORT"
	envRedisUser    = "REDIS_USER"
	envRedisPass    = "REDIS_PASSWORD"
)

// Токен живёт неделю, если JWT_EXPIRES_IN не задан
const defaultTokenTTL = 7 * 24 * time.Hour

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	// Ключ подписи токенов только из окружения, встроенного дефолта нет:
	// сервис с непроставленным секретом не должен подняться
	secret := os.Getenv(envJWTSecret)
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	expiresIn := defaultTokenTTL
	if v := os.Getenv(envJWTExpiresIn); v != "" {
		expiresIn, err = time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("%s must be a duration: %w", envJWTExpiresIn, err)
		}
	}

	cfg.JWT = JWTConfig{
		Secret:        secret,
		ExpiresIn:     expiresIn,
		SigningMethod: jwt.SigningMethodHS256,
	}

	// Redis опционален: без REDIS_HOST кеш каталога просто выключен
	if host := os.Getenv(envRedisHost); host != "" {
		cfg.Redis.Host = host
		cfg.Redis.Port, err = strconv.Atoi(os.Getenv(envRedisPort))
		if err != nil {
			return nil, fmt.Errorf("redis port must be int value: %w", err)
		}
		cfg.Redis.Password = os.Getenv(envRedisPass)
		cfg.Redis.User = os.Getenv(envRedisUser)
		cfg.Redis.DialTimeout = 10 * time.Second
		cfg.Redis.ReadTimeout = 10 * time.Second
	}

	log.Info("config parsed")

	return cfg, nil
}
