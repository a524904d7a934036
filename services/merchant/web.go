package merchant

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/walletbuttons/lib/mycontext"
	"github.com/MarcGrol/walletbuttons/lib/myerrors"
	"github.com/MarcGrol/walletbuttons/lib/myhttp"
	"github.com/MarcGrol/walletbuttons/lib/mylog"
	"github.com/MarcGrol/walletbuttons/lib/mystore"
	"github.com/MarcGrol/walletbuttons/lib/mytime"
	"github.com/MarcGrol/walletbuttons/lib/myuuid"
	"github.com/MarcGrol/walletbuttons/services/storefront"
	"github.com/MarcGrol/walletbuttons/services/walletbuttons"
)

type webService struct {
	logger  mylog.Logger
	service *service
	variant PageVariant
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewWebService(variant PageVariant, client storefront.Client, renderer ButtonRenderer, cartStore mystore.Store[CartSession], nower mytime.Nower, uuider myuuid.UUIDer) *webService {
	logger := mylog.New("merchant")

	return &webService{
		logger:  logger,
		service: newService(client, renderer, cartStore, nower, uuider, logger),
		variant: variant,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/", s.merchantPage()).Methods("GET")

	router.HandleFunc("/api/storefront/token", s.createStorefrontToken()).Methods("POST")
	router.HandleFunc("/api/cart", s.listCarts()).Methods("GET")
	router.HandleFunc("/api/cart/{version}", s.createCart()).Methods("POST")
	router.HandleFunc("/api/cart/{cartUID}", s.getCart()).Methods("GET")
	router.HandleFunc("/api/wallets/{walletEntityID}/initialization", s.getWalletInitializationData()).Methods("GET")
	router.HandleFunc("/api/walletbuttons", s.renderWalletButtons()).Methods("POST")

	return nil
}

//go:embed templates
var templateFolder embed.FS
var (
	merchantPageTemplate *template.Template
)

func init() {
	merchantPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/index.html"))
}

type merchantPageData struct {
	StorefrontJWT    string
	PaymentMethodIDs []string
	Environments     []walletbuttons.Environment
	SetTokenCookie   bool
}

func (s *webService) merchantPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := merchantPageTemplate.Execute(w, merchantPageData{
			StorefrontJWT:    tokenFromCookie(r),
			PaymentMethodIDs: walletbuttons.SupportedPaymentMethodIDs(),
			Environments: []walletbuttons.Environment{
				walletbuttons.EnvironmentProduction,
				walletbuttons.EnvironmentIntegration,
				walletbuttons.EnvironmentLocal,
			},
			SetTokenCookie: s.variant.SetTokenCookie,
		})
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(fmt.Errorf("error executing template: %s", err)))
			return
		}
	}
}

func (s *webService) createStorefrontToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		form := MerchantForm{}
		err := decodeForm(r, &form)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		token, err := s.service.mintToken(c, form)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		if s.variant.SetTokenCookie {
			http.SetCookie(w, &http.Cookie{
				Name:     StorefrontJWTCookie,
				Value:    token,
				Path:     "/",
				SameSite: http.SameSiteLaxMode,
			})
		}

		errorWriter.Write(c, w, http.StatusOK, TokenResponse{Token: token})
	}
}

func (s *webService) createCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		version := mux.Vars(r)["version"]

		form := MerchantForm{}
		err := decodeForm(r, &form)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}
		if form.StorefrontJWT == "" {
			form.StorefrontJWT = tokenFromCookie(r)
		}

		session, err := s.service.createCart(c, version, form)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusCreated, session)
	}
}

func (s *webService) getCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cartUID := mux.Vars(r)["cartUID"]

		session, err := s.service.getCart(c, cartUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, session)
	}
}

func (s *webService) listCarts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessions, err := s.service.listCarts(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, sessions)
	}
}

func (s *webService) getWalletInitializationData() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		walletEntityID := mux.Vars(r)["walletEntityID"]
		storeURL := r.URL.Query().Get("storeUrl")
		token := r.URL.Query().Get("storefrontJwt")
		if token == "" {
			token = tokenFromCookie(r)
		}

		data, err := s.service.walletInitializationData(c, storeURL, token, walletEntityID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, data)
	}
}

func (s *webService) renderWalletButtons() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		form := MerchantForm{}
		err := decodeForm(r, &form)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}
		if form.StorefrontJWT == "" {
			form.StorefrontJWT = tokenFromCookie(r)
		}

		resp, err := s.service.renderWalletButtons(c, form, myhttp.HostnameWithScheme(r))
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

func tokenFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(StorefrontJWTCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}
