package checkoutkit

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MarcGrol/walletbuttons/lib/myerrors"
	"github.com/MarcGrol/walletbuttons/lib/myhttpclient"
	"github.com/MarcGrol/walletbuttons/lib/mylog"
	"github.com/MarcGrol/walletbuttons/lib/mypubsub"
	"github.com/MarcGrol/walletbuttons/lib/mytime"
	"github.com/MarcGrol/walletbuttons/lib/myuuid"
)

type httpScriptInjector struct {
	sender myhttpclient.HTTPSender
	logger mylog.Logger
	pubsub mypubsub.PubSub
	nower  mytime.Nower
	uuider myuuid.UUIDer
}

// NewHTTPScriptInjector "injects" the loader script by fetching it; a script
// that can be fetched is considered loaded. Initializers created through the
// returned loader publish every initialized button on TopicName.
func NewHTTPScriptInjector(sender myhttpclient.HTTPSender, pubsub mypubsub.PubSub, nower mytime.Nower, uuider myuuid.UUIDer) ScriptInjector {
	return &httpScriptInjector{
		sender: sender,
		logger: mylog.New("checkoutkit"),
		pubsub: pubsub,
		nower:  nower,
		uuider: uuider,
	}
}

func (i *httpScriptInjector) Inject(c context.Context, scriptURL string) (ModuleLoader, error) {
	i.logger.Log(c, scriptURL, mylog.SeverityInfo, "Injecting loader script %s", scriptURL)

	status, _, err := i.sender.Send(c, myhttpclient.Request{
		Method: http.MethodGet,
		URL:    scriptURL,
		Headers: map[string]string{
			"Accept": "text/javascript, application/javascript",
		},
	})
	if err != nil {
		return nil, myerrors.NewUnavailableError(fmt.Errorf("error loading script %s: %w", scriptURL, err))
	}
	if status < 200 || status >= 300 {
		return nil, myerrors.NewUnavailableError(fmt.Errorf("error loading script %s: status %d", scriptURL, status))
	}

	return &moduleLoader{
		scriptURL: scriptURL,
		logger:    i.logger,
		pubsub:    i.pubsub,
		nower:     i.nower,
		uuider:    i.uuider,
	}, nil
}
