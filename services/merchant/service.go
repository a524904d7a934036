package merchant

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/MarcGrol/walletbuttons/lib/myerrors"
	"github.com/MarcGrol/walletbuttons/lib/mylog"
	"github.com/MarcGrol/walletbuttons/lib/mystore"
	"github.com/MarcGrol/walletbuttons/lib/mytime"
	"github.com/MarcGrol/walletbuttons/lib/myuuid"
	"github.com/MarcGrol/walletbuttons/services/storefront"
	"github.com/MarcGrol/walletbuttons/services/walletbuttons"
)

type ButtonRenderer interface {
	RenderWalletButtons(c context.Context, req walletbuttons.RenderRequest) ([]walletbuttons.RenderOutcome, error)
	ScriptURL(req walletbuttons.RenderRequest) (string, error)
}

type service struct {
	client    storefront.Client
	renderer  ButtonRenderer
	cartStore mystore.Store[CartSession]
	nower     mytime.Nower
	uuider    myuuid.UUIDer
	validate  *validator.Validate
	logger    mylog.Logger
}

func newService(client storefront.Client, renderer ButtonRenderer, cartStore mystore.Store[CartSession], nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger) *service {
	return &service{
		client:    client,
		renderer:  renderer,
		cartStore: cartStore,
		nower:     nower,
		uuider:    uuider,
		validate:  validator.New(),
		logger:    logger,
	}
}

func (s *service) validateForm(form MerchantForm) error {
	err := s.validate.Struct(form)
	if err != nil {
		return myerrors.NewInvalidInputError(fmt.Errorf("invalid form: %w", err))
	}
	return nil
}

func (s *service) mintToken(c context.Context, form MerchantForm) (string, error) {
	err := s.validateForm(form)
	if err != nil {
		return "", err
	}

	token, err := s.client.CreateStorefrontToken(c, form.credentials(), form.tokenRequest())
	if err != nil {
		s.logger.Log(c, form.StoreHash, mylog.SeverityError, "Error minting storefront token: %s", err)
		return "", err
	}

	return token, nil
}

func (s *service) createCart(c context.Context, version string, form MerchantForm) (CartSession, error) {
	err := s.validateForm(form)
	if err != nil {
		return CartSession{}, err
	}
	if form.ProductID <= 0 {
		return CartSession{}, myerrors.NewInvalidInputErrorf("can not create cart because product id is not provided")
	}

	var cart storefront.Cart
	switch version {
	case CartVersionREST:
		cart, err = s.client.CreateCart(c, form.credentials(), form.ProductID)
	case CartVersionGraphQL:
		cart, err = s.createCartWithGraphQL(c, form)
	default:
		return CartSession{}, myerrors.NewInvalidInputErrorf("unsupported cart api version %q", version)
	}
	if err != nil {
		return CartSession{}, err
	}

	session := CartSession{
		UID:          s.uuider.Create(),
		Version:      version,
		StoreHash:    form.StoreHash,
		StoreURL:     form.StoreURL,
		ProductID:    form.ProductID,
		CartEntityID: cart.EntityID,
		CreatedAt:    s.nower.Now(),
	}

	err = s.cartStore.Put(c, session.UID, session)
	if err != nil {
		return CartSession{}, myerrors.NewInternalError(fmt.Errorf("error storing cart %s: %s", session.UID, err))
	}

	s.logger.Log(c, session.UID, mylog.SeverityInfo, "Created %s cart %q for product %d", version, cart.EntityID, form.ProductID)

	return session, nil
}

func (s *service) createCartWithGraphQL(c context.Context, form MerchantForm) (storefront.Cart, error) {
	if form.StoreURL == "" {
		return storefront.Cart{}, myerrors.NewInvalidInputErrorf("can not create cart because store url is not provided")
	}

	token, err := s.storefrontToken(c, form)
	if err != nil {
		return storefront.Cart{}, err
	}

	return s.client.CreateCartWithGraphQL(c, form.StoreURL, token, form.ProductID)
}

// storefrontToken prefers the token the page already has over minting a new one.
func (s *service) storefrontToken(c context.Context, form MerchantForm) (string, error) {
	if form.StorefrontJWT != "" {
		return form.StorefrontJWT, nil
	}
	return s.mintToken(c, form)
}

func (s *service) getCart(c context.Context, cartUID string) (CartSession, error) {
	session, found, err := s.cartStore.Get(c, cartUID)
	if err != nil {
		return CartSession{}, myerrors.NewInternalError(fmt.Errorf("error fetching cart %s: %s", cartUID, err))
	}
	if !found {
		return CartSession{}, myerrors.NewNotFoundError(fmt.Errorf("cart %s not found", cartUID))
	}
	return session, nil
}

func (s *service) listCarts(c context.Context) ([]CartSession, error) {
	sessions, err := s.cartStore.List(c)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error listing carts: %s", err))
	}
	return sessions, nil
}

func (s *service) walletInitializationData(c context.Context, storeURL string, token string, walletEntityID string) (storefront.WalletInitializationData, error) {
	if storeURL == "" {
		return storefront.WalletInitializationData{}, myerrors.NewInvalidInputErrorf("can not fetch wallet data because store url is not provided")
	}

	return s.client.GetPaymentWalletInitializationData(c, storeURL, token, walletEntityID)
}

// renderWalletButtons renders the page's buttons; pageOrigin is where the
// page is served from and hosts the local checkout kit.
func (s *service) renderWalletButtons(c context.Context, form MerchantForm, pageOrigin string) (WalletButtonsResponse, error) {
	err := s.validateForm(form)
	if err != nil {
		return WalletButtonsResponse{}, err
	}
	if form.StoreURL == "" {
		return WalletButtonsResponse{}, myerrors.NewInvalidInputErrorf("can not render wallet buttons because store url is not provided")
	}

	env, err := walletbuttons.ParseEnvironment(form.Env)
	if err != nil {
		return WalletButtonsResponse{}, err
	}

	paymentMethodIDs, err := s.paymentMethods(c, &form)
	if err != nil {
		return WalletButtonsResponse{}, err
	}

	buttons, containers := defaultButtons(paymentMethodIDs)

	req := walletbuttons.RenderRequest{
		StoreHost:   form.StoreURL,
		AuthToken:   form.StorefrontJWT,
		Environment: env,
		Buttons:     buttons,
		PageOrigin:  pageOrigin,
	}

	outcomes, err := s.renderer.RenderWalletButtons(c, req)
	if err != nil {
		return WalletButtonsResponse{}, err
	}

	scriptURL, err := s.renderer.ScriptURL(req)
	if err != nil {
		return WalletButtonsResponse{}, err
	}

	return WalletButtonsResponse{
		ScriptURL:     scriptURL,
		StoreHost:     form.StoreURL,
		StorefrontJWT: form.StorefrontJWT,
		ContainerIDs:  containers,
		Outcomes:      outcomes,
	}, nil
}

// paymentMethods returns the wallets to show. Outside mock mode they are the
// wallets the store offers for a fresh cart; a token minted on the way is kept
// on the form for rendering.
func (s *service) paymentMethods(c context.Context, form *MerchantForm) ([]string, error) {
	if form.Mock {
		if len(form.PaymentMethods) > 0 {
			return form.PaymentMethods, nil
		}
		return DefaultMockedPaymentMethods, nil
	}

	token, err := s.storefrontToken(c, *form)
	if err != nil {
		return nil, err
	}
	form.StorefrontJWT = token

	session, err := s.createCart(c, CartVersionGraphQL, *form)
	if err != nil {
		return nil, err
	}

	wallets, err := s.client.ListPaymentWallets(c, form.StoreURL, token, session.CartEntityID, form.BillingCountry)
	if err != nil {
		return nil, err
	}

	s.logger.Log(c, session.UID, mylog.SeverityInfo, "Store offers wallets %v for cart %q", wallets, session.CartEntityID)

	return wallets, nil
}
