package merchant

import (
	"github.com/MarcGrol/walletbuttons/services/walletbuttons"
)

var containerIDs = map[string]string{
	"paypalcommerce.paypal":       "paypalcommerce-button",
	"braintree.paypal":            "braintree-paypal-button",
	"paypalcommerce.paypalcredit": "paypalcommerce-credit-button",
}

func defaultStyle() map[string]any {
	return map[string]any{
		"style": map[string]any{"color": "gold", "label": "checkout"},
	}
}

// defaultButton returns the button a demo page shows for paymentMethodID.
// Unknown ids keep their id and get no container, so rendering reports them
// as unsupported instead of dropping them silently.
func defaultButton(paymentMethodID string) walletbuttons.ButtonRequest {
	containerID, found := containerIDs[paymentMethodID]
	if !found {
		return walletbuttons.ButtonRequest{PaymentMethodID: paymentMethodID}
	}

	return walletbuttons.ButtonRequest{
		PaymentMethodID: paymentMethodID,
		ContainerID:     containerID,
		Options:         defaultStyle(),
	}
}

func defaultButtons(paymentMethodIDs []string) ([]walletbuttons.ButtonRequest, []string) {
	buttons := make([]walletbuttons.ButtonRequest, 0, len(paymentMethodIDs))
	containers := []string{}
	for _, id := range paymentMethodIDs {
		button := defaultButton(id)
		buttons = append(buttons, button)
		if button.ContainerID != "" {
			containers = append(containers, button.ContainerID)
		}
	}
	return buttons, containers
}
