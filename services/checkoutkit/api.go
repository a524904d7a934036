package checkoutkit

import "context"

const (
	// HeadlessButtonModule is the module that exposes the headless button initializer factory.
	HeadlessButtonModule = "checkout-headless-button"
)

type InitializerConfig struct {
	Host               string
	StorefrontJWTToken string
}

//go:generate mockgen -source=api.go -package checkoutkit -destination checkoutkit_mock.go ScriptInjector,ModuleLoader,Module,Initializer

// ScriptInjector places the loader script and blocks until it has been loaded.
type ScriptInjector interface {
	Inject(c context.Context, scriptURL string) (ModuleLoader, error)
}

type ModuleLoader interface {
	Load(c context.Context, moduleName string) (Module, error)
}

type Module interface {
	CreateInitializer(config InitializerConfig) (Initializer, error)
}

// Initializer hands a button to the checkout SDK. There is no result: once
// called the rendering is owned by the SDK and nothing reports back.
type Initializer interface {
	InitializeButton(c context.Context, options ProviderInitializationOptions)
}
