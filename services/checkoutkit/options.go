package checkoutkit

import (
	"encoding/json"
	"fmt"
)

// ProviderInitializationOptions is the payload a provider button module expects:
//
//	{"methodId": "...", "containerId": "...", "<ProviderKey>": {...}}
type ProviderInitializationOptions struct {
	MethodID    string
	ContainerID string
	ProviderKey string
	Options     map[string]any
}

func (o ProviderInitializationOptions) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"methodId":    o.MethodID,
		"containerId": o.ContainerID,
	}
	if o.ProviderKey != "" {
		options := o.Options
		if options == nil {
			options = map[string]any{}
		}
		out[o.ProviderKey] = options
	}
	return json.Marshal(out)
}

func (o *ProviderInitializationOptions) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	result := ProviderInitializationOptions{}
	for key, value := range raw {
		switch key {
		case "methodId":
			err = json.Unmarshal(value, &result.MethodID)
		case "containerId":
			err = json.Unmarshal(value, &result.ContainerID)
		default:
			if result.ProviderKey != "" {
				return fmt.Errorf("multiple provider keys: %s and %s", result.ProviderKey, key)
			}
			result.ProviderKey = key
			err = json.Unmarshal(value, &result.Options)
		}
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", key, err)
		}
	}

	*o = result
	return nil
}
