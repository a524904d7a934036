package checkoutkit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MarcGrol/walletbuttons/lib/myerrors"
	"github.com/MarcGrol/walletbuttons/lib/mylog"
	"github.com/MarcGrol/walletbuttons/lib/mypubsub"
	"github.com/MarcGrol/walletbuttons/lib/mytime"
	"github.com/MarcGrol/walletbuttons/lib/myuuid"
)

type moduleLoader struct {
	scriptURL string
	logger    mylog.Logger
	pubsub    mypubsub.PubSub
	nower     mytime.Nower
	uuider    myuuid.UUIDer
}

func (l *moduleLoader) Load(c context.Context, moduleName string) (Module, error) {
	if moduleName != HeadlessButtonModule {
		return nil, myerrors.NewNotFoundError(fmt.Errorf("module %s is not provided by %s", moduleName, l.scriptURL))
	}

	return &headlessButtonModule{loader: l}, nil
}

type headlessButtonModule struct {
	loader *moduleLoader
}

func (m *headlessButtonModule) CreateInitializer(config InitializerConfig) (Initializer, error) {
	if config.Host == "" {
		return nil, myerrors.NewInvalidInputErrorf("host is required to create a headless button initializer")
	}

	return &publishingInitializer{
		config: config,
		logger: m.loader.logger,
		pubsub: m.loader.pubsub,
		nower:  m.loader.nower,
		uuider: m.loader.uuider,
	}, nil
}

type publishingInitializer struct {
	config InitializerConfig
	logger mylog.Logger
	pubsub mypubsub.PubSub
	nower  mytime.Nower
	uuider myuuid.UUIDer
}

func (i *publishingInitializer) InitializeButton(c context.Context, options ProviderInitializationOptions) {
	payload, err := json.Marshal(options)
	if err != nil {
		i.logger.Log(c, options.ContainerID, mylog.SeverityError, "Error marshalling options for %s: %s", options.MethodID, err)
		return
	}

	data, err := mypubsub.Wrap(i.uuider.Create(), i.nower.Now(), TopicName, ButtonInitialized{
		Host:        i.config.Host,
		MethodID:    options.MethodID,
		ContainerID: options.ContainerID,
		Payload:     string(payload),
	})
	if err != nil {
		i.logger.Log(c, options.ContainerID, mylog.SeverityError, "Error wrapping event for %s: %s", options.MethodID, err)
		return
	}

	err = i.pubsub.Publish(c, TopicName, data)
	if err != nil {
		i.logger.Log(c, options.ContainerID, mylog.SeverityError, "Error publishing button %s for %s: %s", options.MethodID, i.config.Host, err)
		return
	}
}
