package storefront

import (
	"context"
	"time"
)

const (
	DefaultChannelID      = 1
	DefaultBillingCountry = "US"
	// DefaultTokenExpiresAt is roughly five years after the example pages were written.
	DefaultTokenExpiresAt int64 = 1885635176
	maxAllowedCorsOrigins       = 2
)

// Credentials address the management API of one store.
type Credentials struct {
	APIURL     string
	StoreHash  string
	XAuthToken string
}

type TokenRequest struct {
	AllowedCorsOrigins []string
	ChannelID          int
	ExpiresAt          int64
}

type Cart struct {
	EntityID string `json:"entityId"`
}

type WalletInitializationData struct {
	ClientToken        string `json:"clientToken"`
	InitializationData string `json:"initializationData"`
}

// StorefrontToken is a minted token kept for reuse until it expires.
type StorefrontToken struct {
	Key       string
	Token     string `datastore:",noindex"`
	ExpiresAt int64
	CreatedAt time.Time
}

//go:generate mockgen -source=api.go -package storefront -destination client_mock.go Client
type Client interface {
	CreateStorefrontToken(c context.Context, creds Credentials, req TokenRequest) (string, error)
	CreateCart(c context.Context, creds Credentials, productID int) (Cart, error)
	CreateCartWithGraphQL(c context.Context, storeURL string, token string, productID int) (Cart, error)
	ListPaymentWallets(c context.Context, storeURL string, token string, cartEntityID string, billingCountry string) ([]string, error)
	GetPaymentWalletInitializationData(c context.Context, storeURL string, token string, walletEntityID string) (WalletInitializationData, error)
}
