package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/MarcGrol/walletbuttons/lib/myhttpclient"
	"github.com/MarcGrol/walletbuttons/lib/mylog"
	"github.com/MarcGrol/walletbuttons/lib/mypubsub"
	"github.com/MarcGrol/walletbuttons/lib/mystore"
	"github.com/MarcGrol/walletbuttons/lib/mytime"
	"github.com/MarcGrol/walletbuttons/lib/myuuid"
	"github.com/MarcGrol/walletbuttons/services/checkoutkit"
	"github.com/MarcGrol/walletbuttons/services/merchant"
	"github.com/MarcGrol/walletbuttons/services/storefront"
	"github.com/MarcGrol/walletbuttons/services/walletbuttons"
)

// config.LocalOrigin overrides the page origin as host of the local loader script.
type config struct {
	Port               string
	LocalOrigin        string
	CorsAllowedOrigins []string
	Variant            merchant.PageVariant
}

func main() {
	c := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Error loading config: %s", err)
	}

	router := mux.NewRouter()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}
	sender := myhttpclient.New(cfg.Variant.ExtraHeaders)

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	err = pubsub.CreateTopic(c, checkoutkit.TopicName)
	if err != nil {
		log.Fatalf("Error creating topic %s: %s", checkoutkit.TopicName, err)
	}

	tokenStore, tokenStoreCleanup, err := mystore.New[storefront.StorefrontToken](c)
	if err != nil {
		log.Fatalf("Error creating token store: %s", err)
	}
	defer tokenStoreCleanup()

	cartStore, cartStoreCleanup, err := mystore.New[merchant.CartSession](c)
	if err != nil {
		log.Fatalf("Error creating cart store: %s", err)
	}
	defer cartStoreCleanup()

	logger := mylog.New("walletbuttons")
	sdk := walletbuttons.NewSdkContext()
	injector := checkoutkit.NewHTTPScriptInjector(sender, pubsub, nower, uuider)
	renderer := walletbuttons.NewRenderer(sdk, walletbuttons.NewLoader(sdk, injector, cfg.LocalOrigin, logger), uuider, logger)

	client := storefront.NewClient(sender, tokenStore, nower, mylog.New("storefront"))

	merchantService := merchant.NewWebService(cfg.Variant, client, renderer, cartStore, nower, uuider)
	err = merchantService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering merchant endpoints: %s", err)
	}

	startWebServerBlocking(cfg, router)
}

func loadConfig(getenv func(string) string) (config, error) {
	cfg := config{
		Port:               getenv("PORT"),
		LocalOrigin:        getenv("LOCAL_ORIGIN"),
		CorsAllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS"), ","),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if len(cfg.CorsAllowedOrigins) == 0 {
		cfg.CorsAllowedOrigins = []string{fmt.Sprintf("http://localhost:%s", cfg.Port)}
	}

	if value := getenv("SET_TOKEN_COOKIE"); value != "" {
		setCookie, err := strconv.ParseBool(value)
		if err != nil {
			return config{}, fmt.Errorf("invalid SET_TOKEN_COOKIE %q: %s", value, err)
		}
		cfg.Variant.SetTokenCookie = setCookie
	}

	headers, err := parseHeaders(getenv("EXTRA_API_HEADERS"))
	if err != nil {
		return config{}, err
	}
	cfg.Variant.ExtraHeaders = headers

	return cfg, nil
}

// parseHeaders reads "name=value;name=value".
func parseHeaders(value string) (map[string]string, error) {
	headers := map[string]string{}
	for _, pair := range splitList(value, ";") {
		name, headerValue, found := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("invalid EXTRA_API_HEADERS entry %q", pair)
		}
		headers[name] = strings.TrimSpace(headerValue)
	}
	return headers, nil
}

func splitList(value string, separator string) []string {
	result := []string{}
	for _, part := range strings.Split(value, separator) {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

func startWebServerBlocking(cfg config, router *mux.Router) {
	handler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CorsAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization", "X-Auth-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	})(router)

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", cfg.Port, cfg.Port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), handler)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", cfg.Port, err)
	}
}
