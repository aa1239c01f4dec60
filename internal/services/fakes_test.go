package services

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/ecobytes/site-api/internal/models"
	"github.com/redis/go-redis/v9"
)

// fakeCache is an in-memory Cache. When err is set every command fails;
// expireErr fails ExpireNX only.
type fakeCache struct {
	mu        sync.Mutex
	values    map[string]string
	ttls      map[string]time.Duration
	err       error
	expireErr error
	gets      int
	sets      int
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (c *fakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.err != nil {
		return redis.NewStringResult("", c.err)
	}
	v, ok := c.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	if c.err != nil {
		return redis.NewStatusResult("", c.err)
	}
	switch v := value.(type) {
	case string:
		c.values[key] = v
	case []byte:
		c.values[key] = string(v)
	}
	c.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (c *fakeCache) Incr(ctx context.Context, key string) *redis.IntCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return redis.NewIntResult(0, c.err)
	}
	n, _ := strconv.ParseInt(c.values[key], 10, 64)
	n++
	c.values[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

func (c *fakeCache) ExpireNX(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return redis.NewBoolResult(false, c.err)
	}
	if c.expireErr != nil {
		return redis.NewBoolResult(false, c.expireErr)
	}
	if _, ok := c.ttls[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	c.ttls[key] = expiration
	return redis.NewBoolResult(true, nil)
}

// fakeQuoteStore records inserted quotes.
type fakeQuoteStore struct {
	quotes []*models.Quote
	err    error
}

func (s *fakeQuoteStore) InsertQuote(ctx context.Context, quote *models.Quote) error {
	if s.err != nil {
		return s.err
	}
	s.quotes = append(s.quotes, quote)
	return nil
}

// fakeSubscriberStore enforces uniqueness on EmailNormalized.
type fakeSubscriberStore struct {
	byEmail map[string]*models.Subscriber
	err     error
}

func newFakeSubscriberStore() *fakeSubscriberStore {
	return &fakeSubscriberStore{byEmail: map[string]*models.Subscriber{}}
}

func (s *fakeSubscriberStore) InsertSubscriber(ctx context.Context, sub *models.Subscriber) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.byEmail[sub.EmailNormalized]; ok {
		return models.ErrAlreadySubscribed
	}
	s.byEmail[sub.EmailNormalized] = sub
	return nil
}

func (s *fakeSubscriberStore) CountSubscribers(ctx context.Context) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.byEmail)), nil
}

// publishedMessage is one call to fakePublisher.Publish.
type publishedMessage struct {
	event   string
	payload any
	headers map[string]any
}

type fakePublisher struct {
	mu       sync.Mutex
	messages []publishedMessage
	err      error
}

func (p *fakePublisher) Publish(ctx context.Context, event string, payload any, headers map[string]any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, publishedMessage{event: event, payload: payload, headers: headers})
	return nil
}

func (p *fakePublisher) Close() error { return nil }
