package merchant

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	formcodec "github.com/go-playground/form/v4"

	"github.com/MarcGrol/walletbuttons/lib/myerrors"
	"github.com/MarcGrol/walletbuttons/services/storefront"
	"github.com/MarcGrol/walletbuttons/services/walletbuttons"
)

const (
	// StorefrontJWTCookie carries a minted storefront token back to the page.
	StorefrontJWTCookie = "bc-storefront-jwt"

	CartVersionREST    = "v2"
	CartVersionGraphQL = "gql"
)

// DefaultMockedPaymentMethods is used in mock mode when the page names no methods.
var DefaultMockedPaymentMethods = []string{"paypalcommerce.paypal"}

// PageVariant captures the differences between the published demo pages.
type PageVariant struct {
	SetTokenCookie bool
	ExtraHeaders   map[string]string
}

// MerchantForm mirrors the demo page form. Every page action posts the
// whole form and uses the fields it needs.
type MerchantForm struct {
	StoreURL       string   `form:"storeUrl" validate:"omitempty,url"`
	APIURL         string   `form:"apiUrl" validate:"omitempty,url"`
	StoreHash      string   `form:"storeHash"`
	XAuthToken     string   `form:"xAuthToken"`
	CorsOrigins    []string `form:"corsOrigins"`
	ChannelID      int      `form:"channelId" validate:"gte=0"`
	ProductID      int      `form:"productId" validate:"gte=0"`
	StorefrontJWT  string   `form:"storefrontJwt"`
	Env            string   `form:"env"`
	Mock           bool     `form:"mock"`
	PaymentMethods []string `form:"paymentMethods"`
	BillingCountry string   `form:"billingCountry" validate:"omitempty,len=2"`
}

func (f MerchantForm) credentials() storefront.Credentials {
	return storefront.Credentials{
		APIURL:     f.APIURL,
		StoreHash:  f.StoreHash,
		XAuthToken: f.XAuthToken,
	}
}

func (f MerchantForm) tokenRequest() storefront.TokenRequest {
	return storefront.TokenRequest{
		AllowedCorsOrigins: splitOrigins(f.CorsOrigins),
		ChannelID:          f.ChannelID,
	}
}

// CartSession remembers a cart created from the demo page.
type CartSession struct {
	UID          string    `json:"uid"`
	Version      string    `json:"version"`
	StoreHash    string    `json:"storeHash"`
	StoreURL     string    `json:"storeUrl"`
	ProductID    int       `json:"productId"`
	CartEntityID string    `json:"cartEntityId"`
	CreatedAt    time.Time `json:"createdAt"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// WalletButtonsResponse holds what the page needs to hand the dispatched
// buttons to the checkout kit in the browser.
type WalletButtonsResponse struct {
	ScriptURL     string                        `json:"scriptUrl"`
	StoreHost     string                        `json:"storeHost"`
	StorefrontJWT string                        `json:"storefrontJwt,omitempty"`
	ContainerIDs  []string                      `json:"containerIds"`
	Outcomes      []walletbuttons.RenderOutcome `json:"outcomes"`
}

func decodeForm(r *http.Request, target any) error {
	err := r.ParseForm()
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	err = formcodec.NewDecoder().Decode(target, r.Form)
	if err != nil {
		return myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err))
	}

	return nil
}

// splitOrigins accepts both repeated fields and a single comma separated value.
func splitOrigins(values []string) []string {
	origins := []string{}
	for _, value := range values {
		for _, origin := range strings.Split(value, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	return origins
}
