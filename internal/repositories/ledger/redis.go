package ledger

import (
	"context"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-loot/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-loot/internal/redis"
)

const (
	ledgerKeyPrefix = "ledger:owner:"

	errOwnerIDEmpty = "owner ID cannot be empty"
)

// consumeScript decrements a hash field only when it covers the requested
// amount. KEYS[1] is the owner hash, ARGV[1] the currency and ARGV[2] the
// amount. It returns 1 when the amount was removed and 0 otherwise.
var consumeScript = redis.NewScript(`
local balance = tonumber(redis.call('HGET', KEYS[1], ARGV[1]) or '0')
local amount = tonumber(ARGV[2])
if balance < amount then
  return 0
end
redis.call('HINCRBY', KEYS[1], ARGV[1], -amount)
return 1
`)

type redisAccount struct {
	client  redisclient.Client
	ownerID string
}

// RedisConfig contains configuration for the Redis ledger
type RedisConfig struct {
	Client  redisclient.Client
	OwnerID string
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.OwnerID == "" {
		return errors.InvalidArgument(errOwnerIDEmpty)
	}
	return nil
}

// NewRedis creates a Redis-backed account for one owner. Balances live in a
// single hash keyed by owner with one field per currency.
func NewRedis(cfg *RedisConfig) (Account, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisAccount{
		client:  cfg.Client,
		ownerID: cfg.OwnerID,
	}, nil
}

func (r *redisAccount) key() string {
	return ledgerKeyPrefix + r.ownerID
}

func (r *redisAccount) ContainsAtLeast(ctx context.Context, currencyID string, amount int) (bool, error) {
	if err := validateRequest(currencyID, amount); err != nil {
		return false, err
	}

	balance, err := r.Balance(ctx, currencyID)
	if err != nil {
		return false, err
	}
	return balance >= amount, nil
}

func (r *redisAccount) Consume(ctx context.Context, currencyID string, amount int) (bool, error) {
	if err := validateRequest(currencyID, amount); err != nil {
		return false, err
	}

	result, err := consumeScript.Run(ctx, r.client, []string{r.key()}, currencyID, amount).Int()
	if err != nil {
		return false, errors.Wrapf(err, "failed to consume %d %s for owner %s", amount, currencyID, r.ownerID)
	}
	return result == 1, nil
}

func (r *redisAccount) Deposit(ctx context.Context, currencyID string, amount int) error {
	if err := validateRequest(currencyID, amount); err != nil {
		return err
	}

	if err := r.client.HIncrBy(ctx, r.key(), currencyID, int64(amount)).Err(); err != nil {
		return errors.Wrapf(err, "failed to deposit %d %s for owner %s", amount, currencyID, r.ownerID)
	}
	return nil
}

func (r *redisAccount) Balance(ctx context.Context, currencyID string) (int, error) {
	if currencyID == "" {
		return 0, errors.InvalidArgument(errCurrencyIDEmpty)
	}

	raw, err := r.client.HGet(ctx, r.key(), currencyID).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, errors.Wrapf(err, "failed to get %s balance for owner %s", currencyID, r.ownerID)
	}

	balance, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeDataLoss, "stored balance is not an integer").
			WithMeta("currency_id", currencyID)
	}
	return balance, nil
}
