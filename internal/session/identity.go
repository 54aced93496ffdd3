package session

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/MKhiriev/go-attendance/internal/crypto"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/store"
	"github.com/MKhiriev/go-attendance/internal/utils"
	"github.com/MKhiriev/go-attendance/models"
)

// Identity stores who is signed in. All three values are ciphertext at rest.
type Identity struct {
	storage store.LocalStorage
	codec   crypto.Codec
	now     Clock
}

// NewIdentity constructs an Identity. A nil clock means time.Now.
func NewIdentity(storage store.LocalStorage, codec crypto.Codec, now Clock) *Identity {
	if now == nil {
		now = time.Now
	}
	return &Identity{storage: storage, codec: codec, now: now}
}

// SetEmployeeCode stores the signed-in employee code.
func (i *Identity) SetEmployeeCode(ctx context.Context, code string) {
	i.setEncrypted(ctx, KeyEmployeeCode, code)
}

// EmployeeCode returns the signed-in employee code, or [NotAvailable].
func (i *Identity) EmployeeCode(ctx context.Context) string {
	code, ok := i.getEncrypted(ctx, KeyEmployeeCode)
	if !ok {
		return NotAvailable
	}
	return code
}

// IsAuthenticated reports whether an employee code is stored.
func (i *Identity) IsAuthenticated(ctx context.Context) bool {
	code := i.EmployeeCode(ctx)
	return code != NotAvailable && code != ""
}

// SetUserData stores the profile and, for readers that only know the older
// layout, its employee code under KeyEmployeeCode as well.
func (i *Identity) SetUserData(ctx context.Context, user models.User) {
	blob, err := json.Marshal(user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Identity.SetUserData").Msg("marshal user data")
		return
	}
	i.setEncrypted(ctx, KeyUserData, string(blob))
	i.SetEmployeeCode(ctx, user.EmployeeCode)
}

// UserData returns the stored profile. A blob that cannot be decrypted or
// decoded is removed.
func (i *Identity) UserData(ctx context.Context) (models.User, bool) {
	blob, ok := i.getEncrypted(ctx, KeyUserData)
	if !ok {
		return models.User{}, false
	}

	var user models.User
	if err := json.Unmarshal([]byte(blob), &user); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "Identity.UserData").Msg("corrupted user data purged")
		i.remove(ctx, KeyUserData)
		return models.User{}, false
	}
	return user, true
}

// SetAuthToken stores the Authorization value returned by login.
func (i *Identity) SetAuthToken(ctx context.Context, token string) {
	i.setEncrypted(ctx, KeyAuthToken, token)
}

// AuthToken returns the stored token.
func (i *Identity) AuthToken(ctx context.Context) (string, bool) {
	return i.getEncrypted(ctx, KeyAuthToken)
}

// AuthTokenExpired reports whether the stored token is a JWT whose exp
// claim lies in the past. Opaque tokens and tokens without exp never expire
// client-side; a missing token is not expired either.
func (i *Identity) AuthTokenExpired(ctx context.Context) bool {
	token, ok := i.AuthToken(ctx)
	if !ok {
		return false
	}
	exp, err := utils.TokenExpiry(token)
	if err != nil {
		return false
	}
	return !i.now().Before(exp)
}

// clear removes the identity keys and any auth_/user_ leftovers.
func (i *Identity) clear(ctx context.Context) {
	keys := []string{KeyEmployeeCode, KeyUserData, KeyAuthToken}

	all, err := i.storage.Keys(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Identity.clear").Msg("listing keys failed")
	}
	for _, k := range all {
		for _, p := range logoutPrefixes {
			if strings.HasPrefix(k, p) {
				keys = append(keys, k)
				break
			}
		}
	}
	i.remove(ctx, keys...)
}

func (i *Identity) setEncrypted(ctx context.Context, key, value string) {
	if err := i.storage.Set(ctx, key, i.codec.Encrypt(value)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Identity.setEncrypted").Str("key", key).Msg("value not saved")
	}
}

func (i *Identity) getEncrypted(ctx context.Context, key string) (string, bool) {
	log := logger.FromContext(ctx)

	value, ok, err := i.storage.Get(ctx, key)
	if err != nil {
		log.Err(err).Str("func", "Identity.getEncrypted").Str("key", key).Msg("reading value failed")
		return "", false
	}
	if !ok {
		return "", false
	}

	plain, err := i.codec.Decrypt(value)
	if err != nil {
		log.Warn().Err(err).Str("func", "Identity.getEncrypted").Str("key", key).Msg("undecryptable value purged")
		i.remove(ctx, key)
		return "", false
	}
	return plain, true
}

func (i *Identity) remove(ctx context.Context, keys ...string) {
	if err := i.storage.Remove(ctx, keys...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Identity.remove").Msg("removing keys failed")
	}
}
