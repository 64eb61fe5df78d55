package repository

import (
	"context"
	"errors"
	"log"
	"net"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"verify-server/util"
)

const (
	// maxRetriesPerRequest caps how often one in-flight command is retried
	// before its failure is surfaced. Long-term recovery belongs to the
	// reconnect loop, not the request.
	maxRetriesPerRequest = 3

	// Reconnect delay grows linearly in 100ms steps and tops out at 3s.
	retryBackoffStep = 100 * time.Millisecond
	maxRetryBackoff  = 3 * time.Second

	dialTimeout  = 5 * time.Second
	probeTimeout = 2 * time.Second
)

// RedisCodeStore is the production CodeStore. It owns the connection state
// machine and a background reconnect loop that keeps probing while the
// transport is down.
type RedisCodeStore struct {
	rdb   *redis.Client
	state *ConnectionState

	stop     chan struct{}
	stopOnce sync.Once
}

// NewRedisCodeStore reads REDIS_HOST/REDIS_PORT/REDIS_PASSWORD, attempts an
// initial connect, and starts the reconnect loop. It never fails: when Redis
// is down at startup the store simply reports disconnected until the loop
// brings it back.
func NewRedisCodeStore() *RedisCodeStore {
	host := util.GetEnv("REDIS_HOST", "127.0.0.1")
	port := util.GetEnv("REDIS_PORT", "6379")
	password := os.Getenv("REDIS_PASSWORD")

	state := NewConnectionState()

	rdb := redis.NewClient(&redis.Options{
		Addr:            net.JoinHostPort(host, port),
		Password:        password,
		MaxRetries:      maxRetriesPerRequest,
		MinRetryBackoff: retryBackoffStep,
		MaxRetryBackoff: maxRetryBackoff,
		DialTimeout:     dialTimeout,
		OnConnect: func(ctx context.Context, cn *redis.Conn) error {
			state.Apply(EventConnect)
			return nil
		},
	})

	s := &RedisCodeStore{
		rdb:   rdb,
		state: state,
		stop:  make(chan struct{}),
	}

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis not reachable at startup: %v (reconnecting in background)", err)
	}

	go s.reconnectLoop()
	return s
}

// reconnectLoop keeps probing the transport while it is down. It runs for
// the life of the process and only returns on Quit.
func (s *RedisCodeStore) reconnectLoop() {
	attempt := 0
	for {
		if s.state.Connected() {
			attempt = 0
			select {
			case <-s.stop:
				return
			case <-time.After(time.Second):
			}
			continue
		}

		attempt++
		s.state.Apply(EventReconnecting)

		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		err := s.rdb.Ping(ctx).Err()
		cancel()
		if err == nil {
			s.state.Apply(EventConnect)
			continue
		}

		delay := time.Duration(attempt) * retryBackoffStep
		if delay > maxRetryBackoff {
			delay = maxRetryBackoff
		}
		log.Printf("redis reconnect attempt %d failed: %v (next try in %v)", attempt, err, delay)

		select {
		case <-s.stop:
			return
		case <-time.After(delay):
		}
	}
}

// observe centralizes the fault-to-sentinel conversion: a redis.Nil is a
// normal miss, anything else flips the connection state machine.
func (s *RedisCodeStore) observe(err error) {
	if err == nil || errors.Is(err, redis.Nil) {
		return
	}
	s.state.Apply(EventError)
}

func (s *RedisCodeStore) Get(ctx context.Context, key string) (string, bool) {
	if !s.state.Connected() {
		log.Println("redis disconnected, skipping GET")
		return "", false
	}
	val, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("redis GET %s failed: %v", key, err)
		}
		s.observe(err)
		return "", false
	}
	return val, true
}

func (s *RedisCodeStore) Exists(ctx context.Context, key string) (bool, bool) {
	if !s.state.Connected() {
		log.Println("redis disconnected, skipping EXISTS")
		return false, false
	}
	n, err := s.rdb.Exists(ctx, key).Result()
	if err != nil {
		log.Printf("redis EXISTS %s failed: %v", key, err)
		s.observe(err)
		return false, false
	}
	return n > 0, true
}

func (s *RedisCodeStore) SetWithExpiry(ctx context.Context, key, value string, ttl time.Duration) bool {
	if !s.state.Connected() {
		log.Println("redis disconnected, skipping SET")
		return false
	}
	// SET then EXPIRE as two commands. A failure between them can leave the
	// value without an expiry; accepted rather than papered over with a
	// transaction the rest of the keyspace's clients don't use.
	if err := s.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		log.Printf("redis SET %s failed: %v", key, err)
		s.observe(err)
		return false
	}
	if err := s.rdb.Expire(ctx, key, ttl).Err(); err != nil {
		log.Printf("redis EXPIRE %s failed: %v", key, err)
		s.observe(err)
		return false
	}
	return true
}

func (s *RedisCodeStore) Ping(ctx context.Context) bool {
	if !s.state.Connected() {
		return false
	}
	res, err := s.rdb.Ping(ctx).Result()
	if err != nil {
		log.Printf("redis PING failed: %v", err)
		s.observe(err)
		return false
	}
	return res == "PONG"
}

func (s *RedisCodeStore) IsConnected() bool {
	return s.state.Connected()
}

// Quit stops the reconnect loop and closes the client. Safe to call more
// than once and when already disconnected.
func (s *RedisCodeStore) Quit() {
	s.stopOnce.Do(func() { close(s.stop) })

	if !s.state.Connected() {
		log.Println("redis already disconnected, nothing to close")
		s.state.Apply(EventEnd)
		return
	}

	log.Println("closing redis connection...")
	if err := s.rdb.Close(); err != nil {
		// Close failed; the connection is abandoned either way.
		log.Printf("redis close failed: %v", err)
	}
	s.state.Apply(EventEnd)
	log.Println("redis connection closed")
}
