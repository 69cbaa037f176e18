// Package logger builds *slog.Logger instances for the storefront client and
// keeps attribute names consistent across packages.
//
// New applies functional options on top of production-safe defaults (JSON,
// info level, stdout) and wraps the handler so attributes stored in the
// context, such as the shop domain or the request ID, are added to every
// record logged with a *Context method:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "storefront"),
//		logger.WithContextExtractors(tenant.LoggerExtractor(), requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "vendors fetched", logger.Attempt(2), logger.StatusCode(200))
//
// Components accept a *slog.Logger through a WithLogger option and fall back
// to Discard, so libraries stay silent unless the application opts in.
//
// Attribute helpers return an empty slog.Attr for nil values, which slog
// drops, so calls such as logger.Error(err) need no nil check.
package logger
