package walletbuttons

import (
	"maps"
	"sort"

	"github.com/MarcGrol/walletbuttons/services/checkoutkit"
)

// Provider is a wallet button the checkout kit knows how to initialize.
// Supporting another one means adding a constant, a registry entry and a
// case in options.
type Provider int

const (
	providerUnknown Provider = iota
	ProviderBraintreePayPal
	ProviderPayPalCommercePayPal
	ProviderPayPalCommerceCredit
)

var providersByPaymentMethodID = map[string]Provider{
	"braintree.paypal":            ProviderBraintreePayPal,
	"paypalcommerce.paypal":       ProviderPayPalCommercePayPal,
	"paypalcommerce.paypalcredit": ProviderPayPalCommerceCredit,
}

// ProviderFor is an exact, case-sensitive lookup.
func ProviderFor(paymentMethodID string) (Provider, bool) {
	provider, found := providersByPaymentMethodID[paymentMethodID]
	return provider, found
}

func SupportedPaymentMethodIDs() []string {
	ids := make([]string, 0, len(providersByPaymentMethodID))
	for id := range providersByPaymentMethodID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// methodAndKey returns the method id the button module expects and the key
// under which it reads its options. Both can differ from the payment method id.
func (p Provider) methodAndKey() (string, string) {
	switch p {
	case ProviderBraintreePayPal:
		return "braintreepaypal", "braintreepaypal"
	case ProviderPayPalCommercePayPal:
		return "paypalcommerce.paypal", "paypalcommerce"
	case ProviderPayPalCommerceCredit:
		return "paypalcommercecredit", "paypalcommercecredit"
	default:
		return "", ""
	}
}

func (p Provider) options(req ButtonRequest) checkoutkit.ProviderInitializationOptions {
	methodID, providerKey := p.methodAndKey()

	options := maps.Clone(req.Options)
	if options == nil {
		options = map[string]any{}
	}

	return checkoutkit.ProviderInitializationOptions{
		MethodID:    methodID,
		ContainerID: req.ContainerID,
		ProviderKey: providerKey,
		Options:     options,
	}
}

// MapOptions translates a button request into the payload for its provider.
// It returns false for payment methods without a registered provider. The
// request is never modified.
func MapOptions(req ButtonRequest) (checkoutkit.ProviderInitializationOptions, bool) {
	provider, found := ProviderFor(req.PaymentMethodID)
	if !found {
		return checkoutkit.ProviderInitializationOptions{}, false
	}

	return provider.options(req), true
}
