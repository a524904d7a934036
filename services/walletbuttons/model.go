package walletbuttons

import (
	"errors"

	"github.com/MarcGrol/walletbuttons/services/checkoutkit"
)

var ErrNoButtonsRequested = errors.New("no buttons requested")

type RenderRequest struct {
	StoreHost   string          `json:"storeHost" validate:"required"`
	AuthToken   string          `json:"authToken"`
	Environment Environment     `json:"environment" validate:"omitempty,oneof=local integration production"`
	Buttons     []ButtonRequest `json:"buttons"`
	PageOrigin  string          `json:"pageOrigin,omitempty" validate:"omitempty,url"`
}

type ButtonRequest struct {
	PaymentMethodID string         `json:"paymentMethodId"`
	ContainerID     string         `json:"containerId"`
	Options         map[string]any `json:"options,omitempty"`
}

type OutcomeStatus string

const (
	// OutcomeDispatched means the button was handed to the initializer, not that it rendered.
	OutcomeDispatched OutcomeStatus = "dispatched"
	OutcomeSkipped    OutcomeStatus = "skipped"
)

type RenderOutcome struct {
	Index           int                                        `json:"index"`
	PaymentMethodID string                                     `json:"paymentMethodId"`
	ContainerID     string                                     `json:"containerId"`
	Status          OutcomeStatus                              `json:"status"`
	Reason          string                                     `json:"reason,omitempty"`
	Options         *checkoutkit.ProviderInitializationOptions `json:"options,omitempty"`
}
