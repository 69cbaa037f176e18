// Package storefront wires the client side of an embedded Shopify admin app:
// session resolution from the page URL, the authenticated request transport,
// the shared query cache, and the auth and vendor operations built on them.
//
// The page is abstracted as a navigation.Location. Headless callers and tests
// use navigation.Memory; a server-rendered app binds each incoming request
// with App.ForRequest so redirects become 302 responses.
//
// Basic Usage:
//
//	cfg, err := storefront.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	loc := navigation.NewMemory("https://app.example.com/?shop=acme.myshopify.com&session=tok")
//	app := storefront.New(cfg, loc)
//
//	status := app.Auth.CheckStatus(ctx, "acme.myshopify.com")
//	if !status.IsAuthenticated {
//		_ = app.Auth.Initiate(ctx, "acme.myshopify.com")
//		return
//	}
//
//	names, err := app.Vendors.List(ctx, "acme.myshopify.com")
//
// Configuration is read from the environment (and an optional .env file):
//
//	STOREFRONT_API_URL  backend origin; the page origin when empty
//	APP_ENV             development, staging or production
//	SERVICE_NAME        service attribute on log records
//	LOG_LEVEL           overrides the environment's default level
package storefront
