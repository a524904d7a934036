package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MarcGrol/walletbuttons/lib/myerrors"
	"github.com/MarcGrol/walletbuttons/lib/myhttpclient"
	"github.com/MarcGrol/walletbuttons/lib/mylog"
)

const (
	createCartMutation = `mutation createCart($productEntityId: Int!) {
  cart {
    createCart(input: {lineItems: [{quantity: 1, productEntityId: $productEntityId}]}) {
      cart {
        entityId
      }
    }
  }
}`

	paymentWalletsQuery = `query paymentWallets($cartEntityId: String!, $billingCountryCode: String!) {
  site {
    paymentWallets(filter: {cartEntityId: $cartEntityId, billingCountryCode: $billingCountryCode}) {
      edges {
        node {
          entityId
        }
      }
    }
  }
}`

	paymentWalletInitializationQuery = `query paymentWalletWithInitializationData($paymentWalletEntityId: String!) {
  site {
    paymentWalletWithInitializationData(filter: {paymentWalletEntityId: $paymentWalletEntityId}) {
      clientToken
      initializationData
    }
  }
}`
)

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse[T any] struct {
	Data   *T             `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type createCartData struct {
	Cart *struct {
		CreateCart *struct {
			Cart *Cart `json:"cart"`
		} `json:"createCart"`
	} `json:"cart"`
}

type paymentWalletsData struct {
	Site *struct {
		PaymentWallets *struct {
			Edges []*struct {
				Node *struct {
					EntityID string `json:"entityId"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"paymentWallets"`
	} `json:"site"`
}

type paymentWalletInitializationData struct {
	Site *struct {
		PaymentWalletWithInitializationData *WalletInitializationData `json:"paymentWalletWithInitializationData"`
	} `json:"site"`
}

func (cl *client) CreateCartWithGraphQL(c context.Context, storeURL string, token string, productID int) (Cart, error) {
	if productID <= 0 {
		return Cart{}, myerrors.NewInvalidInputErrorf("can not create cart because product id is not provided")
	}

	data, err := query[createCartData](c, cl, storeURL, token, graphQLRequest{
		Query:     createCartMutation,
		Variables: map[string]any{"productEntityId": productID},
	})
	if err != nil {
		return Cart{}, fmt.Errorf("error creating cart for product %d: %w", productID, err)
	}

	if data == nil || data.Cart == nil || data.Cart.CreateCart == nil || data.Cart.CreateCart.Cart == nil {
		cl.logger.Log(c, storeURL, mylog.SeverityWarn, "Cart creation response for product %d has no cart", productID)
		return Cart{}, nil
	}

	return *data.Cart.CreateCart.Cart, nil
}

// ListPaymentWallets returns the payment method ids of the wallets that can
// pay for the cart. Incomplete responses yield the wallets that could be read.
func (cl *client) ListPaymentWallets(c context.Context, storeURL string, token string, cartEntityID string, billingCountry string) ([]string, error) {
	if cartEntityID == "" {
		return nil, myerrors.NewInvalidInputErrorf("cart entity id is required to list payment wallets")
	}
	if billingCountry == "" {
		billingCountry = DefaultBillingCountry
	}

	data, err := query[paymentWalletsData](c, cl, storeURL, token, graphQLRequest{
		Query: paymentWalletsQuery,
		Variables: map[string]any{
			"cartEntityId":       cartEntityID,
			"billingCountryCode": billingCountry,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error listing payment wallets for cart %s: %w", cartEntityID, err)
	}

	walletIDs := []string{}
	if data == nil || data.Site == nil || data.Site.PaymentWallets == nil {
		cl.logger.Log(c, cartEntityID, mylog.SeverityWarn, "Payment wallets response for cart %s has no wallets", cartEntityID)
		return walletIDs, nil
	}

	for idx, edge := range data.Site.PaymentWallets.Edges {
		if edge == nil || edge.Node == nil || edge.Node.EntityID == "" {
			cl.logger.Log(c, cartEntityID, mylog.SeverityWarn, "Payment wallet edge %d for cart %s has no entity id", idx, cartEntityID)
			continue
		}
		walletIDs = append(walletIDs, edge.Node.EntityID)
	}

	return walletIDs, nil
}

func (cl *client) GetPaymentWalletInitializationData(c context.Context, storeURL string, token string, walletEntityID string) (WalletInitializationData, error) {
	if walletEntityID == "" {
		return WalletInitializationData{}, myerrors.NewInvalidInputErrorf("payment wallet entity id is required")
	}

	data, err := query[paymentWalletInitializationData](c, cl, storeURL, token, graphQLRequest{
		Query:     paymentWalletInitializationQuery,
		Variables: map[string]any{"paymentWalletEntityId": walletEntityID},
	})
	if err != nil {
		return WalletInitializationData{}, fmt.Errorf("error fetching initialization data for wallet %s: %w", walletEntityID, err)
	}

	if data == nil || data.Site == nil || data.Site.PaymentWalletWithInitializationData == nil {
		cl.logger.Log(c, walletEntityID, mylog.SeverityWarn, "No initialization data for wallet %s", walletEntityID)
		return WalletInitializationData{}, nil
	}

	return *data.Site.PaymentWalletWithInitializationData, nil
}

// query posts a GraphQL operation to the storefront. A nil result with a nil
// error means the response carried no usable data.
func query[T any](c context.Context, cl *client, storeURL string, token string, req graphQLRequest) (*T, error) {
	if storeURL == "" {
		return nil, myerrors.NewInvalidInputErrorf("store url is required")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error marshalling graphql request: %w", err))
	}

	url := strings.TrimSuffix(storeURL, "/") + "/graphql"
	status, respBody, err := cl.sender.Send(c, myhttpclient.Request{
		Method:  http.MethodPost,
		URL:     url,
		Headers: map[string]string{"Authorization": "Bearer " + token},
		Body:    body,
	})
	if err != nil {
		return nil, myerrors.NewUnavailableError(err)
	}
	if status < 200 || status >= 300 {
		return nil, myerrors.NewUnavailableError(fmt.Errorf("graphql response status: %d", status))
	}

	resp := graphQLResponse[T]{}
	err = json.Unmarshal(respBody, &resp)
	if err != nil {
		cl.logger.Log(c, url, mylog.SeverityWarn, "Error parsing graphql response: %s", err)
		return nil, nil
	}

	if len(resp.Errors) > 0 {
		messages := []string{}
		for _, e := range resp.Errors {
			messages = append(messages, e.Message)
		}
		return nil, myerrors.NewUnavailableError(errors.New(strings.Join(messages, "; ")))
	}

	return resp.Data, nil
}
