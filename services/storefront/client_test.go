package storefront

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/walletbuttons/lib/myerrors"
	"github.com/MarcGrol/walletbuttons/lib/myhttpclient"
	"github.com/MarcGrol/walletbuttons/lib/mylog"
	"github.com/MarcGrol/walletbuttons/lib/mystore"
	"github.com/MarcGrol/walletbuttons/lib/mytime"
)

type recordedRequest struct {
	Method  string
	Path    string
	Headers http.Header
	Body    map[string]any
}

type fakeCommerceAPI struct {
	sync.Mutex
	server    *httptest.Server
	requests  []recordedRequest
	responses map[string]string
	status    int
}

func newFakeCommerceAPI() *fakeCommerceAPI {
	api := &fakeCommerceAPI{responses: map[string]string{}, status: http.StatusOK}
	api.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.Lock()
		defer api.Unlock()

		payload, _ := io.ReadAll(r.Body)
		body := map[string]any{}
		_ = json.Unmarshal(payload, &body)
		api.requests = append(api.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Headers: r.Header.Clone(), Body: body})

		w.WriteHeader(api.status)
		_, _ = w.Write([]byte(api.responses[r.URL.Path]))
	}))
	return api
}

func (api *fakeCommerceAPI) respond(path string, body string) {
	api.Lock()
	defer api.Unlock()
	api.responses[path] = body
}

func (api *fakeCommerceAPI) failWith(status int) {
	api.Lock()
	defer api.Unlock()
	api.status = status
}

func (api *fakeCommerceAPI) recorded() []recordedRequest {
	api.Lock()
	defer api.Unlock()
	return append([]recordedRequest{}, api.requests...)
}

func TestStorefrontToken(t *testing.T) {

	t.Run("Mint token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		api, sut, nower := setup(t, ctrl)
		defer api.server.Close()

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		api.respond("/stores/abc123/v3/storefront/api-token", `{"data":{"token":"jwt-1"},"meta":{}}`)

		// when
		token, err := sut.CreateStorefrontToken(context.TODO(), creds(api), TokenRequest{
			AllowedCorsOrigins: []string{"https://a.example.com", " https://b.example.com", "https://c.example.com"},
		})

		// then
		assert.NoError(t, err)
		assert.Equal(t, "jwt-1", token)
		assert.Len(t, api.recorded(), 1)
		req := api.recorded()[0]
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "secret", req.Headers.Get("X-Auth-Token"))
		assert.Equal(t, []any{"https://a.example.com", "https://b.example.com"}, req.Body["allowed_cors_origins"])
		assert.Equal(t, float64(1), req.Body["channel_id"])
		assert.Equal(t, float64(1885635176), req.Body["expires_at"])
	})

	t.Run("Token is reused until it expires", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		api, sut, nower := setup(t, ctrl)
		defer api.server.Close()

		// given
		expiresAt := mytime.ExampleTime.Add(time.Hour).Unix()
		api.respond("/stores/abc123/v3/storefront/api-token", `{"data":{"token":"jwt-1"}}`)
		gomock.InOrder(
			nower.EXPECT().Now().Return(mytime.ExampleTime),
			nower.EXPECT().Now().Return(mytime.ExampleTime.Add(time.Minute)),
			nower.EXPECT().Now().Return(mytime.ExampleTime.Add(2*time.Hour)),
		)
		req := TokenRequest{ChannelID: 1, ExpiresAt: expiresAt}

		// when
		first, err := sut.CreateStorefrontToken(context.TODO(), creds(api), req)
		assert.NoError(t, err)
		second, err := sut.CreateStorefrontToken(context.TODO(), creds(api), req)
		assert.NoError(t, err)

		api.respond("/stores/abc123/v3/storefront/api-token", `{"data":{"token":"jwt-2"}}`)
		third, err := sut.CreateStorefrontToken(context.TODO(), creds(api), req)
		assert.NoError(t, err)

		// then
		assert.Equal(t, "jwt-1", first)
		assert.Equal(t, "jwt-1", second)
		assert.Equal(t, "jwt-2", third)
		assert.Len(t, api.recorded(), 2)
	})

	t.Run("Missing store hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		api, sut, _ := setup(t, ctrl)
		defer api.server.Close()

		// when
		_, err := sut.CreateStorefrontToken(context.TODO(), Credentials{APIURL: api.server.URL, XAuthToken: "secret"}, TokenRequest{})

		// then
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err))
		assert.Empty(t, api.recorded())
	})

	t.Run("Rejected by api", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		api, sut, nower := setup(t, ctrl)
		defer api.server.Close()

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		api.failWith(http.StatusUnauthorized)

		// when
		_, err := sut.CreateStorefrontToken(context.TODO(), creds(api), TokenRequest{})

		// then
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "response status: 401")
		assert.Equal(t, 503, myerrors.GetHTTPStatus(err))
	})
}

func TestCarts(t *testing.T) {

	t.Run("Create cart with management api", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		api, sut, _ := setup(t, ctrl)
		defer api.server.Close()

		// given
		api.respond("/stores/abc123/v3/carts", `{"data":{"id":"cart-1","line_items":{}}}`)

		// when
		cart, err := sut.CreateCart(context.TODO(), creds(api), 77)

		// then
		assert.NoError(t, err)
		assert.Equal(t, Cart{EntityID: "cart-1"}, cart)
		body := api.recorded()[0].Body
		assert.Equal(t, float64(0), body["customer_id"])
		assert.Equal(t, []any{map[string]any{"quantity": float64(1), "product_id": float64(77)}}, body["line_items"])
		assert.Equal(t, map[string]any{"code": "USD"}, body["currency"])
		assert.Equal(t, "en-US", body["locale"])
	})

	t.Run("Cart response without data degrades to empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		api, sut, _ := setup(t, ctrl)
		defer api.server.Close()

		// given
		api.respond("/stores/abc123/v3/carts", `{"title":"something odd"}`)

		// when
		cart, err := sut.CreateCart(context.TODO(), creds(api), 77)

		// then
		assert.NoError(t, err)
		assert.Equal(t, Cart{}, cart)
	})

	t.Run("Missing product id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		api, sut, _ := setup(t, ctrl)
		defer api.server.Close()

		// when
		_, err := sut.CreateCartWithGraphQL(context.TODO(), api.server.URL, "jwt", 0)

		// then
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err))
		assert.Empty(t, api.recorded())
	})

	t.Run("Create cart with graphql", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		api, sut, _ := setup(t, ctrl)
		defer api.server.Close()

		// given
		api.respond("/graphql", `{"data":{"cart":{"createCart":{"cart":{"entityId":"cart-gql"}}}}}`)

		// when
		cart, err := sut.CreateCartWithGraphQL(context.TODO(), api.server.URL+"/", "jwt", 77)

		// then
		assert.NoError(t, err)
		assert.Equal(t, Cart{EntityID: "cart-gql"}, cart)
		req := api.recorded()[0]
		assert.Equal(t, "Bearer jwt", req.Headers.Get("Authorization"))
		assert.Contains(t, req.Body["query"], "createCart")
		assert.Equal(t, map[string]any{"productEntityId": float64(77)}, req.Body["variables"])
	})
}

func TestPaymentWallets(t *testing.T) {

	t.Run("List wallets for cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		api, sut, _ := setup(t, ctrl)
		defer api.server.Close()

		// given
		api.respond("/graphql", `{"data":{"site":{"paymentWallets":{"edges":[
			{"node":{"entityId":"paypalcommerce.paypal"}},
			{"node":null},
			{"node":{"entityId":"braintree.paypal"}}
		]}}}}`)

		// when
		wallets, err := sut.ListPaymentWallets(context.TODO(), api.server.URL, "jwt", "cart-1", "")

		// then
		assert.NoError(t, err)
		assert.Equal(t, []string{"paypalcommerce.paypal", "braintree.paypal"}, wallets)
		assert.Equal(t, map[string]any{"cartEntityId": "cart-1", "billingCountryCode": "US"}, api.recorded()[0].Body["variables"])
	})

	t.Run("Absent fields degrade to no wallets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		api, sut, _ := setup(t, ctrl)
		defer api.server.Close()

		for _, response := range []string{`{"data":{"site":{}}}`, `{"data":null}`, `not json`} {
			// given
			api.respond("/graphql", response)

			// when
			wallets, err := sut.ListPaymentWallets(context.TODO(), api.server.URL, "jwt", "cart-1", "NL")

			// then
			assert.NoError(t, err, response)
			assert.Equal(t, []string{}, wallets, response)
		}
	})

	t.Run("Graphql errors are returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		api, sut, _ := setup(t, ctrl)
		defer api.server.Close()

		// given
		api.respond("/graphql", `{"data":null,"errors":[{"message":"cart not found"}]}`)

		// when
		_, err := sut.ListPaymentWallets(context.TODO(), api.server.URL, "jwt", "cart-1", "US")

		// then
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cart not found")
	})

	t.Run("Missing cart id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		api, sut, _ := setup(t, ctrl)
		defer api.server.Close()

		// when
		_, err := sut.ListPaymentWallets(context.TODO(), api.server.URL, "jwt", "", "US")

		// then
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err))
	})

	t.Run("Initialization data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		api, sut, _ := setup(t, ctrl)
		defer api.server.Close()

		// given
		api.respond("/graphql", `{"data":{"site":{"paymentWalletWithInitializationData":{"clientToken":"ct","initializationData":"eyJ9"}}}}`)

		// when
		data, err := sut.GetPaymentWalletInitializationData(context.TODO(), api.server.URL, "jwt", "braintree.paypal")

		// then
		assert.NoError(t, err)
		assert.Equal(t, WalletInitializationData{ClientToken: "ct", InitializationData: "eyJ9"}, data)
		assert.Equal(t, map[string]any{"paymentWalletEntityId": "braintree.paypal"}, api.recorded()[0].Body["variables"])
	})
}

func creds(api *fakeCommerceAPI) Credentials {
	return Credentials{APIURL: api.server.URL, StoreHash: "abc123", XAuthToken: "secret"}
}

func setup(t *testing.T, ctrl *gomock.Controller) (*fakeCommerceAPI, Client, *mytime.MockNower) {
	c := context.TODO()
	tokenStore, _, err := mystore.New[StorefrontToken](c)
	assert.NoError(t, err)
	nower := mytime.NewMockNower(ctrl)

	api := newFakeCommerceAPI()
	sut := NewClient(myhttpclient.New(nil), tokenStore, nower, mylog.New("storefront"))

	return api, sut, nower
}
