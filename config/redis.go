package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var RedisClient *redis.Client

// ConnectRedis returns nil when Redis is not reachable; callers run without it.
func ConnectRedis(log *logrus.Logger) *redis.Client {
	opt, err := redisOptions(AppConfig)
	if err != nil {
		log.WithError(err).Warn("Failed to parse Redis URL, running without redis")
		return nil
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.WithError(err).WithField("addr", opt.Addr).Warn("Redis connection failed, running without redis")
		client.Close()
		return nil
	}

	log.WithField("addr", opt.Addr).Info("Redis connected")
	RedisClient = client
	return client
}

func redisOptions(c *Config) (*redis.Options, error) {
	if c.RedisURL != "" {
		return redis.ParseURL(c.RedisURL)
	}
	return &redis.Options{
		Addr:     c.RedisAddr,
		Password: c.RedisPassword,
		DB:       0,
	}, nil
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}
