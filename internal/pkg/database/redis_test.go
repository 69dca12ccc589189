package database

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/wheelshare/internal/pkg/models"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	client, err := NewRedisClient(models.RedisConfig{Host: "127.0.0.1", Port: 1})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestNewRedisClient_Miniredis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(models.RedisConfig{Host: mr.Host(), Port: mustPort(t, mr)})
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()))
	assert.NotNil(t, client.GetClient())
}

func TestRedisClient_IncrWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	client := &RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	defer client.Close()

	ctx := context.Background()
	key := "rate:limit:driver:nearby-rides"

	count, ttl, err := client.IncrWindow(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, time.Minute, ttl)
	assert.Equal(t, time.Minute, mr.TTL(key))

	count, _, err = client.IncrWindow(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// window expiry starts a fresh count
	mr.FastForward(time.Minute + time.Second)
	count, _, err = client.IncrWindow(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRedisClient_PingError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectPing().SetErr(errors.New("connection refused"))

	err := client.Ping(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return port
}
