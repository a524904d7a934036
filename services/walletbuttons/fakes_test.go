package walletbuttons

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MarcGrol/walletbuttons/services/checkoutkit"
)

type recordingInitializer struct {
	sync.Mutex
	config checkoutkit.InitializerConfig
	calls  []checkoutkit.ProviderInitializationOptions
}

func (i *recordingInitializer) InitializeButton(c context.Context, options checkoutkit.ProviderInitializationOptions) {
	i.Lock()
	defer i.Unlock()
	i.calls = append(i.calls, options)
}

func (i *recordingInitializer) containerIDs() []string {
	i.Lock()
	defer i.Unlock()
	ids := []string{}
	for _, call := range i.calls {
		ids = append(ids, call.ContainerID)
	}
	return ids
}

type fakeKit struct {
	injections   atomic.Int32
	injectErr    error
	moduleErr    error
	release      chan struct{}
	sync.Mutex
	initializers []*recordingInitializer
}

func (k *fakeKit) Inject(c context.Context, scriptURL string) (checkoutkit.ModuleLoader, error) {
	k.injections.Add(1)
	if k.release != nil {
		<-k.release
	}
	if k.injectErr != nil {
		return nil, k.injectErr
	}
	return k, nil
}

func (k *fakeKit) Load(c context.Context, moduleName string) (checkoutkit.Module, error) {
	if k.moduleErr != nil {
		return nil, k.moduleErr
	}
	return k, nil
}

func (k *fakeKit) CreateInitializer(config checkoutkit.InitializerConfig) (checkoutkit.Initializer, error) {
	k.Lock()
	defer k.Unlock()
	initializer := &recordingInitializer{config: config}
	k.initializers = append(k.initializers, initializer)
	return initializer, nil
}

func (k *fakeKit) lastInitializer() *recordingInitializer {
	k.Lock()
	defer k.Unlock()
	if len(k.initializers) == 0 {
		return nil
	}
	return k.initializers[len(k.initializers)-1]
}
