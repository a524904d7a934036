package walletbuttons

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/walletbuttons/lib/myerrors"
)

func TestEnvironment(t *testing.T) {
	testCases := []struct {
		in        string
		env       Environment
		scriptURL string
	}{
		{in: "local", env: EnvironmentLocal, scriptURL: "http://localhost:8080/v1/loader.js"},
		{in: "int", env: EnvironmentIntegration, scriptURL: "https://checkout-sdk.integration.zone/v1/loader.js"},
		{in: "integration", env: EnvironmentIntegration, scriptURL: "https://checkout-sdk.integration.zone/v1/loader.js"},
		{in: "prod", env: EnvironmentProduction, scriptURL: "https://checkout-sdk.bigcommerce.com/v1/loader.js"},
		{in: "", env: EnvironmentProduction, scriptURL: "https://checkout-sdk.bigcommerce.com/v1/loader.js"},
	}
	for _, tc := range testCases {
		t.Run("Parse "+tc.in, func(t *testing.T) {
			env, err := ParseEnvironment(tc.in)
			assert.NoError(t, err)
			assert.Equal(t, tc.env, env)
			assert.Equal(t, tc.scriptURL, env.ScriptURL("http://localhost:8080/"))
		})
	}

	t.Run("Unknown environment", func(t *testing.T) {
		_, err := ParseEnvironment("staging")
		assert.Error(t, err)
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err))
	})
}
