package storefront

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MarcGrol/walletbuttons/lib/mystore"
	"github.com/MarcGrol/walletbuttons/lib/mytime"
)

// tokens are not handed out during the last minute of their lifetime
const expiryMarginSeconds = 60

type tokenVault struct {
	store mystore.Store[StorefrontToken]
	nower mytime.Nower
}

func newTokenVault(store mystore.Store[StorefrontToken], nower mytime.Nower) *tokenVault {
	return &tokenVault{
		store: store,
		nower: nower,
	}
}

func tokenKey(storeHash string, channelID int, origins []string) string {
	return fmt.Sprintf("%s_%d_%s", storeHash, channelID, strings.Join(origins, ","))
}

// getOrMint returns the cached token for key while it is valid and mints a
// new one otherwise. Minting happens outside any store transaction; when
// another caller stored a valid token in the meantime, that one wins.
func (v *tokenVault) getOrMint(c context.Context, key string, expiresAt int64, mint func(c context.Context) (string, error)) (string, error) {
	now := v.nower.Now()

	token, found, err := v.valid(c, key, now)
	if err != nil {
		return "", err
	}
	if found {
		return token, nil
	}

	minted, err := mint(c)
	if err != nil {
		return "", err
	}

	err = v.store.RunInTransaction(c, func(c context.Context) error {
		existing, found, err := v.valid(c, key, now)
		if err != nil {
			return err
		}
		if found {
			token = existing
			return nil
		}

		token = minted
		return v.store.Put(c, key, StorefrontToken{
			Key:       key,
			Token:     minted,
			ExpiresAt: expiresAt,
			CreatedAt: now,
		})
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

func (v *tokenVault) valid(c context.Context, key string, now time.Time) (string, bool, error) {
	existing, found, err := v.store.Get(c, key)
	if err != nil {
		return "", false, fmt.Errorf("error fetching storefront token %s: %w", key, err)
	}
	if !found || existing.ExpiresAt-expiryMarginSeconds <= now.Unix() {
		return "", false, nil
	}
	return existing.Token, true, nil
}
