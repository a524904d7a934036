package walletbuttons

import (
	"fmt"
	"strings"

	"github.com/MarcGrol/walletbuttons/lib/myerrors"
)

type Environment string

const (
	EnvironmentLocal       Environment = "local"
	EnvironmentIntegration Environment = "integration"
	EnvironmentProduction  Environment = "production"
)

const (
	loaderScriptPath     = "/v1/loader.js"
	integrationScriptURL = "https://checkout-sdk.integration.zone" + loaderScriptPath
	productionScriptURL  = "https://checkout-sdk.bigcommerce.com" + loaderScriptPath
)

// ParseEnvironment accepts the values used by the merchant page select box.
// An empty value means production.
func ParseEnvironment(value string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "local":
		return EnvironmentLocal, nil
	case "int", "integration":
		return EnvironmentIntegration, nil
	case "", "prod", "production":
		return EnvironmentProduction, nil
	default:
		return "", myerrors.NewInvalidInputError(fmt.Errorf("unknown environment %q", value))
	}
}

// ScriptURL returns where the loader script lives. Local development serves
// it from the origin of the page itself.
func (e Environment) ScriptURL(localOrigin string) string {
	switch e {
	case EnvironmentLocal:
		return strings.TrimSuffix(localOrigin, "/") + loaderScriptPath
	case EnvironmentIntegration:
		return integrationScriptURL
	default:
		return productionScriptURL
	}
}
