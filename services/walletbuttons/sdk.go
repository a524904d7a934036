package walletbuttons

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/MarcGrol/walletbuttons/lib/myerrors"
	"github.com/MarcGrol/walletbuttons/lib/mylog"
	"github.com/MarcGrol/walletbuttons/services/checkoutkit"
)

// SdkHandle is the loaded checkout kit.
type SdkHandle struct {
	Environment Environment
	ScriptURL   string
	Loader      checkoutkit.ModuleLoader
}

// SdkContext owns the state that lives as long as the process: the loaded
// kit and the most recently bootstrapped button initializer.
type SdkContext struct {
	sync.Mutex
	handle      *SdkHandle
	initializer checkoutkit.Initializer

	loads singleflight.Group

	// held for bootstrap plus dispatch of one render call
	renderLock sync.Mutex
}

func NewSdkContext() *SdkContext {
	return &SdkContext{}
}

func (s *SdkContext) Handle() (*SdkHandle, bool) {
	s.Lock()
	defer s.Unlock()
	return s.handle, s.handle != nil
}

func (s *SdkContext) Initializer() (checkoutkit.Initializer, bool) {
	s.Lock()
	defer s.Unlock()
	return s.initializer, s.initializer != nil
}

// Reset forgets the loaded kit and initializer, as a page unload would.
func (s *SdkContext) Reset() {
	s.Lock()
	defer s.Unlock()
	s.handle = nil
	s.initializer = nil
}

// Bootstrap creates a headless button initializer for storeHost and makes it
// the current one. A later call replaces it.
func (s *SdkContext) Bootstrap(c context.Context, handle *SdkHandle, storeHost string, authToken string) (checkoutkit.Initializer, error) {
	module, err := handle.Loader.Load(c, checkoutkit.HeadlessButtonModule)
	if err != nil {
		return nil, fmt.Errorf("error loading module %s: %w", checkoutkit.HeadlessButtonModule, err)
	}

	initializer, err := module.CreateInitializer(checkoutkit.InitializerConfig{
		Host:               storeHost,
		StorefrontJWTToken: authToken,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating button initializer for %s: %w", storeHost, err)
	}

	s.Lock()
	s.initializer = initializer
	s.Unlock()

	return initializer, nil
}

type Loader struct {
	sdk         *SdkContext
	injector    checkoutkit.ScriptInjector
	localOrigin string
	logger      mylog.Logger
}

func NewLoader(sdk *SdkContext, injector checkoutkit.ScriptInjector, localOrigin string, logger mylog.Logger) *Loader {
	return &Loader{
		sdk:         sdk,
		injector:    injector,
		localOrigin: localOrigin,
		logger:      logger,
	}
}

// EnsureLoaded returns the loaded kit, injecting the loader script for env
// the first time. Concurrent first callers share a single injection.
//
// The local loader script is served by the page's own origin unless the
// loader was created with a fixed local origin.
//
// There is no internal timeout: a script that never finishes loading keeps
// the caller waiting until c is done.
func (l *Loader) EnsureLoaded(c context.Context, env Environment, pageOrigin string) (*SdkHandle, error) {
	if handle, found := l.sdk.Handle(); found {
		if handle.Environment != env {
			l.logger.Log(c, "", mylog.SeverityWarn, "Checkout kit already loaded for %s, ignoring request for %s", handle.Environment, env)
		}
		return handle, nil
	}

	resultChannel := l.sdk.loads.DoChan("loader", func() (any, error) {
		// the injection is shared, so it must outlive the first caller
		return l.load(context.WithoutCancel(c), env, pageOrigin)
	})

	select {
	case <-c.Done():
		return nil, myerrors.NewUnavailableError(fmt.Errorf("waiting for checkout kit: %w", c.Err()))
	case result := <-resultChannel:
		if result.Err != nil {
			return nil, result.Err
		}
		return result.Val.(*SdkHandle), nil
	}
}

// ScriptURL returns the loader script for env as seen from a page served by pageOrigin.
func (l *Loader) ScriptURL(env Environment, pageOrigin string) (string, error) {
	localOrigin := l.localOrigin
	if localOrigin == "" {
		localOrigin = pageOrigin
	}
	if env == EnvironmentLocal && localOrigin == "" {
		return "", myerrors.NewInvalidInputErrorf("page origin is required to load the checkout kit locally")
	}
	return env.ScriptURL(localOrigin), nil
}

func (l *Loader) load(c context.Context, env Environment, pageOrigin string) (*SdkHandle, error) {
	if handle, found := l.sdk.Handle(); found {
		return handle, nil
	}

	scriptURL, err := l.ScriptURL(env, pageOrigin)
	if err != nil {
		return nil, err
	}

	moduleLoader, err := l.injector.Inject(c, scriptURL)
	if err != nil {
		return nil, fmt.Errorf("error loading checkout kit from %s: %w", scriptURL, err)
	}

	handle := &SdkHandle{
		Environment: env,
		ScriptURL:   scriptURL,
		Loader:      moduleLoader,
	}

	l.sdk.Lock()
	l.sdk.handle = handle
	l.sdk.Unlock()

	l.logger.Log(c, "", mylog.SeverityInfo, "Checkout kit loaded from %s", scriptURL)

	return handle, nil
}
