package checkoutkit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/walletbuttons/lib/myerrors"
	"github.com/MarcGrol/walletbuttons/lib/myhttpclient"
	"github.com/MarcGrol/walletbuttons/lib/mypubsub"
	"github.com/MarcGrol/walletbuttons/lib/mytime"
	"github.com/MarcGrol/walletbuttons/lib/myuuid"
)

type recordingPubSub struct {
	topics   []string
	messages []string
	err      error
}

func (ps *recordingPubSub) CreateTopic(c context.Context, topic string) error {
	return nil
}

func (ps *recordingPubSub) Publish(c context.Context, topic string, data string) error {
	ps.topics = append(ps.topics, topic)
	ps.messages = append(ps.messages, data)
	return ps.err
}

func TestHTTPScriptInjector(t *testing.T) {

	t.Run("Script served", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/loader.js", r.URL.Path)
			_, _ = w.Write([]byte("window.checkoutKitLoader = {};"))
		}))
		defer server.Close()
		sut, _, _, _ := setup(ctrl)

		// when
		loader, err := sut.Inject(context.TODO(), server.URL+"/v1/loader.js")

		// then
		assert.NoError(t, err)
		assert.NotNil(t, loader)
	})

	t.Run("Script missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()
		sut, _, _, _ := setup(ctrl)

		// when
		_, err := sut.Inject(context.TODO(), server.URL+"/v1/loader.js")

		// then
		assert.Error(t, err)
		assert.Equal(t, 503, myerrors.GetHTTPStatus(err))
	})

	t.Run("Unknown module", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer server.Close()
		sut, _, _, _ := setup(ctrl)
		loader, err := sut.Inject(context.TODO(), server.URL+"/v1/loader.js")
		assert.NoError(t, err)

		// when
		_, err = loader.Load(context.TODO(), "checkout-button")

		// then
		assert.Error(t, err)
		assert.Equal(t, 404, myerrors.GetHTTPStatus(err))
	})

	t.Run("Headless initializer publishes button", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer server.Close()
		sut, pubsub, nower, uuider := setup(ctrl)

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		uuider.EXPECT().Create().Return("event-1")

		loader, err := sut.Inject(context.TODO(), server.URL+"/v1/loader.js")
		assert.NoError(t, err)
		module, err := loader.Load(context.TODO(), HeadlessButtonModule)
		assert.NoError(t, err)
		initializer, err := module.CreateInitializer(InitializerConfig{Host: "https://store.example.com", StorefrontJWTToken: "jwt"})
		assert.NoError(t, err)

		// when
		initializer.InitializeButton(context.TODO(), ProviderInitializationOptions{
			MethodID:    "braintreepaypal",
			ContainerID: "c1",
			ProviderKey: "braintreepaypal",
			Options:     map[string]any{"style": map[string]any{"color": "gold"}},
		})

		// then
		assert.Equal(t, []string{TopicName}, pubsub.topics)
		envelope := mypubsub.EventEnvelope{}
		err = json.Unmarshal([]byte(pubsub.messages[0]), &envelope)
		assert.NoError(t, err)
		assert.Equal(t, "event-1", envelope.UID)
		assert.Equal(t, "walletbuttons.button.initialized", envelope.EventTypeName)
		assert.Equal(t, "https://store.example.com", envelope.AggregateUID)

		event := ButtonInitialized{}
		err = json.Unmarshal([]byte(envelope.EventPayload), &event)
		assert.NoError(t, err)
		assert.Equal(t, "c1", event.ContainerID)
		assert.JSONEq(t, `{"methodId":"braintreepaypal","containerId":"c1","braintreepaypal":{"style":{"color":"gold"}}}`, event.Payload)
	})

	t.Run("Publish failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer server.Close()
		sut, pubsub, nower, uuider := setup(ctrl)

		// given
		pubsub.err = errors.New("topic unavailable")
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		uuider.EXPECT().Create().Return("event-2")

		loader, _ := sut.Inject(context.TODO(), server.URL+"/v1/loader.js")
		module, _ := loader.Load(context.TODO(), HeadlessButtonModule)
		initializer, _ := module.CreateInitializer(InitializerConfig{Host: "https://store.example.com"})

		// when / then
		assert.NotPanics(t, func() {
			initializer.InitializeButton(context.TODO(), ProviderInitializationOptions{MethodID: "paypalcommerce.paypal", ContainerID: "c2", ProviderKey: "paypalcommerce"})
		})
		assert.Len(t, pubsub.messages, 1)
	})

	t.Run("Initializer requires host", func(t *testing.T) {
		module := &headlessButtonModule{loader: &moduleLoader{}}
		_, err := module.CreateInitializer(InitializerConfig{})
		assert.Error(t, err)
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err))
	})
}

func setup(ctrl *gomock.Controller) (ScriptInjector, *recordingPubSub, *mytime.MockNower, *myuuid.MockUUIDer) {
	pubsub := &recordingPubSub{}
	nower := mytime.NewMockNower(ctrl)
	uuider := myuuid.NewMockUUIDer(ctrl)

	sut := NewHTTPScriptInjector(myhttpclient.New(nil), pubsub, nower, uuider)

	return sut, pubsub, nower, uuider
}
