package cache_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"hostdeck/infras/otel"
	"hostdeck/shared/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tracedErrors struct {
	mu     sync.Mutex
	errors map[string]error
}

func (t *tracedErrors) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	return ctx, &recordingScope{span: spanName, traced: t}
}

func (t *tracedErrors) Shutdown(_ context.Context) error {
	return nil
}

func (t *tracedErrors) get(span string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.errors[span]
}

type recordingScope struct {
	span   string
	traced *tracedErrors
}

func (s *recordingScope) End()                           {}
func (s *recordingScope) TraceError(_ error)             {}
func (s *recordingScope) AddEvent(_ string)              {}
func (s *recordingScope) SetAttribute(_ string, _ any)   {}
func (s *recordingScope) SetAttributes(_ map[string]any) {}

func (s *recordingScope) TraceIfError(err error) {
	if err == nil {
		return
	}

	s.traced.mu.Lock()
	defer s.traced.mu.Unlock()

	s.traced.errors[s.span] = err
}

func TestRedisCache_TracesFailures(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	traced := &tracedErrors{errors: map[string]error{}}
	redisCache := cache.NewRedisCache(client, traced)
	ctx := context.Background()

	var value map[string]string

	tests := []struct {
		name string
		span string
		call func() error
	}{
		{name: "take", span: "cache.Take", call: func() error { return redisCache.Take(ctx, "calendar:anchor", &value) }},
		{name: "get", span: "cache.Get", call: func() error { return redisCache.Get(ctx, "listing:get", &value) }},
		{name: "save", span: "cache.Save", call: func() error { return redisCache.Save(ctx, "listing:get", value, 60) }},
		{name: "delete", span: "cache.Delete", call: func() error { return redisCache.Delete(ctx, "listing:get") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)

			assert.Equal(t, err, traced.get(tt.span))
		})
	}
}
