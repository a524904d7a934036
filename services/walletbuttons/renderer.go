package walletbuttons

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/MarcGrol/walletbuttons/lib/myerrors"
	"github.com/MarcGrol/walletbuttons/lib/mylog"
	"github.com/MarcGrol/walletbuttons/lib/myuuid"
)

type renderState string

const (
	stateIdle        renderState = "Idle"
	stateLoadingSdk  renderState = "LoadingSdk"
	stateBootstrap   renderState = "Bootstrapping"
	stateDispatching renderState = "DispatchingButtons"
	stateDone        renderState = "Done"
)

const (
	reasonMissingPaymentMethodID = "missing payment method id"
	reasonUnsupportedFormat      = "unsupported payment method: %s"
)

type Renderer struct {
	sdk      *SdkContext
	loader   *Loader
	validate *validator.Validate
	logger   mylog.Logger
	uuider   myuuid.UUIDer
}

func NewRenderer(sdk *SdkContext, loader *Loader, uuider myuuid.UUIDer, logger mylog.Logger) *Renderer {
	return &Renderer{
		sdk:      sdk,
		loader:   loader,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
		uuider:   uuider,
	}
}

// RenderWalletButtons loads the checkout kit, bootstraps a button initializer
// for the store and hands it every requested button in request order.
//
// Buttons that cannot be mapped are reported as skipped and do not stop the
// batch. Only an empty or invalid request, or a failure to obtain the kit or
// the initializer, is returned as an error.
func (r *Renderer) RenderWalletButtons(c context.Context, req RenderRequest) ([]RenderOutcome, error) {
	renderID := r.uuider.Create()
	r.transition(c, renderID, stateIdle)

	if len(req.Buttons) == 0 {
		r.logger.Log(c, renderID, mylog.SeverityError, "Wallet buttons can not be rendered: %s", ErrNoButtonsRequested)
		return []RenderOutcome{}, myerrors.NewInvalidInputError(ErrNoButtonsRequested)
	}

	err := r.validate.Struct(req)
	if err != nil {
		r.logger.Log(c, renderID, mylog.SeverityError, "Wallet buttons can not be rendered: %s", err)
		return []RenderOutcome{}, myerrors.NewInvalidInputError(fmt.Errorf("invalid render request: %w", err))
	}

	env := req.Environment
	if env == "" {
		env = EnvironmentProduction
	}

	r.transition(c, renderID, stateLoadingSdk)
	handle, err := r.loader.EnsureLoaded(c, env, req.PageOrigin)
	if err != nil {
		return nil, err
	}

	// bootstrap and dispatch as one unit, so this batch goes through the
	// initializer it created even when another render runs concurrently
	r.sdk.renderLock.Lock()
	defer r.sdk.renderLock.Unlock()

	r.transition(c, renderID, stateBootstrap)
	initializer, err := r.sdk.Bootstrap(c, handle, req.StoreHost, req.AuthToken)
	if err != nil {
		return nil, err
	}

	r.transition(c, renderID, stateDispatching)
	outcomes := make([]RenderOutcome, 0, len(req.Buttons))
	for idx, button := range req.Buttons {
		outcome := RenderOutcome{
			Index:           idx,
			PaymentMethodID: button.PaymentMethodID,
			ContainerID:     button.ContainerID,
		}

		if button.PaymentMethodID == "" {
			r.logger.Log(c, renderID, mylog.SeverityError, "Can not render wallet button %d: payment method id is empty", idx)
			outcomes = append(outcomes, skipped(outcome, reasonMissingPaymentMethodID))
			continue
		}

		options, supported := MapOptions(button)
		if !supported {
			r.logger.Log(c, renderID, mylog.SeverityError, "Wallet button with %q payment method id is not implemented", button.PaymentMethodID)
			outcomes = append(outcomes, skipped(outcome, fmt.Sprintf(reasonUnsupportedFormat, button.PaymentMethodID)))
			continue
		}

		initializer.InitializeButton(c, options)

		outcome.Status = OutcomeDispatched
		outcome.Options = &options
		outcomes = append(outcomes, outcome)
	}

	r.transition(c, renderID, stateDone)

	return outcomes, nil
}

// ScriptURL tells a page where to load the checkout kit for req from.
func (r *Renderer) ScriptURL(req RenderRequest) (string, error) {
	env := req.Environment
	if env == "" {
		env = EnvironmentProduction
	}
	return r.loader.ScriptURL(env, req.PageOrigin)
}

func skipped(outcome RenderOutcome, reason string) RenderOutcome {
	outcome.Status = OutcomeSkipped
	outcome.Reason = reason
	return outcome
}

func (r *Renderer) transition(c context.Context, renderID string, state renderState) {
	r.logger.Log(c, renderID, mylog.SeverityDebug, "Render %s -> %s", renderID, state)
}
