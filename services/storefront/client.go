package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MarcGrol/walletbuttons/lib/myerrors"
	"github.com/MarcGrol/walletbuttons/lib/myhttpclient"
	"github.com/MarcGrol/walletbuttons/lib/mylog"
	"github.com/MarcGrol/walletbuttons/lib/mystore"
	"github.com/MarcGrol/walletbuttons/lib/mytime"
)

type client struct {
	sender myhttpclient.HTTPSender
	tokens *tokenVault
	logger mylog.Logger
}

func NewClient(sender myhttpclient.HTTPSender, tokenStore mystore.Store[StorefrontToken], nower mytime.Nower, logger mylog.Logger) Client {
	return &client{
		sender: sender,
		tokens: newTokenVault(tokenStore, nower),
		logger: logger,
	}
}

type apiTokenRequest struct {
	AllowedCorsOrigins []string `json:"allowed_cors_origins"`
	ChannelID          int      `json:"channel_id"`
	ExpiresAt          int64    `json:"expires_at"`
}

type apiTokenResponse struct {
	Data struct {
		Token string `json:"token"`
	} `json:"data"`
}

// CreateStorefrontToken mints a token for the storefront API, or returns a
// previously minted one that has not yet expired.
func (cl *client) CreateStorefrontToken(c context.Context, creds Credentials, req TokenRequest) (string, error) {
	err := creds.validate()
	if err != nil {
		return "", err
	}

	body := apiTokenRequest{
		AllowedCorsOrigins: limitOrigins(req.AllowedCorsOrigins),
		ChannelID:          req.ChannelID,
		ExpiresAt:          req.ExpiresAt,
	}
	if body.ChannelID <= 0 {
		body.ChannelID = DefaultChannelID
	}
	if body.ExpiresAt <= 0 {
		body.ExpiresAt = DefaultTokenExpiresAt
	}

	key := tokenKey(creds.StoreHash, body.ChannelID, body.AllowedCorsOrigins)

	return cl.tokens.getOrMint(c, key, body.ExpiresAt, func(c context.Context) (string, error) {
		resp := apiTokenResponse{}
		err := cl.sendJSON(c, creds.url("/v3/storefront/api-token"), creds.headers(), body, &resp)
		if err != nil {
			return "", fmt.Errorf("error creating storefront token for store %s: %w", creds.StoreHash, err)
		}
		if resp.Data.Token == "" {
			return "", myerrors.NewUnavailableError(fmt.Errorf("no token in storefront token response for store %s", creds.StoreHash))
		}

		cl.logger.Log(c, creds.StoreHash, mylog.SeverityInfo, "Minted storefront token for channel %d", body.ChannelID)

		return resp.Data.Token, nil
	})
}

type apiCartRequest struct {
	CustomerID int               `json:"customer_id"`
	LineItems  []apiCartLineItem `json:"line_items"`
	ChannelID  int               `json:"channel_id"`
	Currency   apiCurrency       `json:"currency"`
	Locale     string            `json:"locale"`
}

type apiCartLineItem struct {
	Quantity  int `json:"quantity"`
	ProductID int `json:"product_id"`
}

type apiCurrency struct {
	Code string `json:"code"`
}

type apiCartResponse struct {
	Data *struct {
		ID string `json:"id"`
	} `json:"data"`
}

// CreateCart creates a guest cart holding one unit of productID through the management API.
func (cl *client) CreateCart(c context.Context, creds Credentials, productID int) (Cart, error) {
	err := creds.validate()
	if err != nil {
		return Cart{}, err
	}
	if productID <= 0 {
		return Cart{}, myerrors.NewInvalidInputErrorf("can not create cart because product id is not provided")
	}

	resp := apiCartResponse{}
	err = cl.sendJSON(c, creds.url("/v3/carts"), creds.headers(), apiCartRequest{
		CustomerID: 0,
		LineItems:  []apiCartLineItem{{Quantity: 1, ProductID: productID}},
		ChannelID:  DefaultChannelID,
		Currency:   apiCurrency{Code: "USD"},
		Locale:     "en-US",
	}, &resp)
	if err != nil {
		return Cart{}, fmt.Errorf("error creating cart for store %s: %w", creds.StoreHash, err)
	}

	if resp.Data == nil {
		cl.logger.Log(c, creds.StoreHash, mylog.SeverityWarn, "Cart creation response for product %d has no data", productID)
		return Cart{}, nil
	}

	return Cart{EntityID: resp.Data.ID}, nil
}

func (cl *client) sendJSON(c context.Context, url string, headers map[string]string, req any, resp any) error {
	body, err := json.Marshal(req)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error marshalling request: %w", err))
	}

	status, respBody, err := cl.sender.Send(c, myhttpclient.Request{
		Method:  http.MethodPost,
		URL:     url,
		Headers: headers,
		Body:    body,
	})
	if err != nil {
		return myerrors.NewUnavailableError(err)
	}
	if status < 200 || status >= 300 {
		return myerrors.NewUnavailableError(fmt.Errorf("response status: %d", status))
	}

	err = json.Unmarshal(respBody, resp)
	if err != nil {
		// a body we do not understand is treated as an empty one
		cl.logger.Log(c, url, mylog.SeverityWarn, "Error parsing response from %s: %s", url, err)
	}

	return nil
}

func (creds Credentials) validate() error {
	if creds.StoreHash == "" || creds.XAuthToken == "" {
		return myerrors.NewInvalidInputErrorf("store hash and x-auth-token are required")
	}
	if creds.APIURL == "" {
		return myerrors.NewInvalidInputErrorf("api url is required")
	}
	return nil
}

func (creds Credentials) url(path string) string {
	return fmt.Sprintf("%s/stores/%s%s", strings.TrimSuffix(creds.APIURL, "/"), creds.StoreHash, path)
}

func (creds Credentials) headers() map[string]string {
	return map[string]string{"X-Auth-Token": creds.XAuthToken}
}

func limitOrigins(origins []string) []string {
	result := []string{}
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		result = append(result, origin)
		if len(result) == maxAllowedCorsOrigins {
			break
		}
	}
	return result
}
