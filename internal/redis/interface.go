package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the connection the Redis ledger uses.
// Tests back it with miniredis rather than a mock.
type Client interface {
	redis.UniversalClient
}
