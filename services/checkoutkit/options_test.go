package checkoutkit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderInitializationOptions(t *testing.T) {
	t.Run("Marshal flattens provider key", func(t *testing.T) {
		options := ProviderInitializationOptions{
			MethodID:    "braintreepaypal",
			ContainerID: "c1",
			ProviderKey: "braintreepaypal",
			Options:     map[string]any{"style": map[string]any{"color": "gold"}},
		}

		got, err := json.Marshal(options)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"methodId":"braintreepaypal","containerId":"c1","braintreepaypal":{"style":{"color":"gold"}}}`, string(got))
	})

	t.Run("Marshal without options yields empty object", func(t *testing.T) {
		got, err := json.Marshal(ProviderInitializationOptions{MethodID: "paypalcommerce.paypal", ContainerID: "c2", ProviderKey: "paypalcommerce"})
		assert.NoError(t, err)
		assert.JSONEq(t, `{"methodId":"paypalcommerce.paypal","containerId":"c2","paypalcommerce":{}}`, string(got))
	})

	t.Run("Unmarshal recovers provider key", func(t *testing.T) {
		options := ProviderInitializationOptions{}
		err := json.Unmarshal([]byte(`{"methodId":"paypalcommerce.paypal","containerId":"c2","paypalcommerce":{"style":{"label":"checkout"}}}`), &options)
		assert.NoError(t, err)
		assert.Equal(t, "paypalcommerce.paypal", options.MethodID)
		assert.Equal(t, "c2", options.ContainerID)
		assert.Equal(t, "paypalcommerce", options.ProviderKey)
		assert.Equal(t, map[string]any{"style": map[string]any{"label": "checkout"}}, options.Options)
	})

	t.Run("Unmarshal rejects two provider keys", func(t *testing.T) {
		options := ProviderInitializationOptions{}
		err := json.Unmarshal([]byte(`{"methodId":"x","a":{},"b":{}}`), &options)
		assert.Error(t, err)
	})
}
