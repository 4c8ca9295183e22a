package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisOptions(t *testing.T) {
	opt, err := redisOptions(&Config{RedisAddr: "cache:6379", RedisPassword: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "cache:6379", opt.Addr)
	assert.Equal(t, "pw", opt.Password)

	opt, err = redisOptions(&Config{RedisURL: "redis://:secret@redis.local:6380/2", RedisAddr: "ignored:1"})
	require.NoError(t, err)
	assert.Equal(t, "redis.local:6380", opt.Addr)
	assert.Equal(t, 2, opt.DB)

	_, err = redisOptions(&Config{RedisURL: "mysql://nope"})
	assert.Error(t, err)
}

func TestConnectRedisUnreachableLogsAndReturnsNil(t *testing.T) {
	AppConfig = &Config{RedisAddr: "127.0.0.1:1"}
	log, hook := test.NewNullLogger()

	client := ConnectRedis(log)

	assert.Nil(t, client)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Contains(t, entry.Message, "running without redis")
	assert.Equal(t, "127.0.0.1:1", entry.Data["addr"])
}
