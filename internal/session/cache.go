package session

import (
	"context"
	"time"

	"github.com/MKhiriev/go-attendance/internal/crypto"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/store"
	"github.com/MKhiriev/go-attendance/models"
)

// Clock returns the current time. Tests inject a fixed one.
type Clock func() time.Time

// LocalDate formats t as a zero-padded date in the process time zone.
func LocalDate(t time.Time) string {
	return t.Local().Format(models.DateLayout)
}

// DateScopedCache reads and writes the flags of one [Scope].
//
// States per flag: absent, fresh (written today) and stale (written on an
// earlier local date). Stale flags are never returned; the first Read that
// sees one deletes the whole scope.
type DateScopedCache struct {
	scope   Scope
	storage store.LocalStorage
	codec   crypto.Codec
	now     Clock
}

// NewDateScopedCache constructs a cache for scope. A nil clock means time.Now.
func NewDateScopedCache(scope Scope, storage store.LocalStorage, codec crypto.Codec, now Clock) *DateScopedCache {
	if now == nil {
		now = time.Now
	}
	return &DateScopedCache{scope: scope, storage: storage, codec: codec, now: now}
}

// Scope returns the scope served by the cache.
func (c *DateScopedCache) Scope() Scope {
	return c.scope
}

// Record stores value under key and stamps the scope with today's date.
// Keys outside the scope are ignored.
func (c *DateScopedCache) Record(ctx context.Context, key, value string) {
	c.RecordAll(ctx, map[string]string{key: value})
}

// RecordAll stores several flags under a single date stamp. A failed write
// clears the whole scope so that no flag outlives its siblings.
func (c *DateScopedCache) RecordAll(ctx context.Context, values map[string]string) {
	log := logger.FromContext(ctx)
	today := LocalDate(c.now())

	for key, value := range values {
		if !c.scope.has(key) {
			log.Warn().Str("func", "DateScopedCache.RecordAll").Str("scope", c.scope.Name).Str("key", key).Msg("key is not part of scope, ignored")
			continue
		}
		if c.scope.Encrypted {
			value = c.codec.Encrypt(value)
		}
		if err := c.storage.Set(ctx, key, value); err != nil {
			log.Err(err).Str("func", "DateScopedCache.RecordAll").Str("scope", c.scope.Name).Str("key", key).Msg("flag not saved, scope cleared")
			c.Clear(ctx)
			return
		}
	}

	if err := c.storage.Set(ctx, c.scope.DateKey, today); err != nil {
		log.Err(err).Str("func", "DateScopedCache.RecordAll").Str("scope", c.scope.Name).Msg("date stamp not saved")
	}
}

// Read returns the flag stored under key if it was written today.
//
// A missing or outdated date stamp purges the scope. A value that cannot be
// decrypted is removed. Both cases report absent.
func (c *DateScopedCache) Read(ctx context.Context, key string) (string, bool) {
	log := logger.FromContext(ctx)
	if !c.scope.has(key) {
		return "", false
	}

	today := LocalDate(c.now())
	stamped, ok, err := c.storage.Get(ctx, c.scope.DateKey)
	if err != nil {
		log.Err(err).Str("func", "DateScopedCache.Read").Str("scope", c.scope.Name).Msg("reading date stamp failed")
		return "", false
	}
	if !ok || stamped != today {
		c.Clear(ctx)
		return "", false
	}

	value, ok, err := c.storage.Get(ctx, key)
	if err != nil {
		log.Err(err).Str("func", "DateScopedCache.Read").Str("scope", c.scope.Name).Str("key", key).Msg("reading flag failed")
		return "", false
	}
	if !ok {
		return "", false
	}
	if !c.scope.Encrypted {
		return value, true
	}

	plain, err := c.codec.Decrypt(value)
	if err != nil {
		log.Warn().Err(err).Str("func", "DateScopedCache.Read").Str("scope", c.scope.Name).Str("key", key).Msg("undecryptable flag purged")
		c.remove(ctx, key)
		return "", false
	}
	return plain, true
}

// Clear removes every flag of the scope together with its date stamp.
func (c *DateScopedCache) Clear(ctx context.Context) {
	c.remove(ctx, c.scope.allKeys()...)
}

func (c *DateScopedCache) remove(ctx context.Context, keys ...string) {
	if err := c.storage.Remove(ctx, keys...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "DateScopedCache.remove").Str("scope", c.scope.Name).Msg("removing flags failed")
	}
}
