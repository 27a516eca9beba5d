package mock

import (
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisServer *miniredis.Miniredis
var redisConn *redis.Client

// NewRedis starts one miniredis server for the suite and returns a client connected to it.
func NewRedis() *redis.Client {
	redisOnce.Do(
		func() {
			server, err := miniredis.Run()
			if err != nil {
				panic(err)
			}
			redisServer = server
			redisConn = redis.NewClient(&redis.Options{Addr: server.Addr()})
		},
	)

	return redisConn
}

// ClearRedis drops every key.
func ClearRedis() {
	if redisServer != nil {
		redisServer.FlushAll()
	}
}

// SetRedisError makes every following command fail with msg. An empty msg restores normal replies.
func SetRedisError(msg string) {
	if redisServer != nil {
		redisServer.SetError(msg)
	}
}
