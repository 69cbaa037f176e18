// Package requestid attaches correlation identifiers to outgoing API requests.
//
// Every request the transport issues carries an X-Request-ID header. When the
// caller's context already holds a well-formed ID it is reused, so all requests
// triggered by one user action share it; otherwise a fresh UUIDv4 is generated.
//
//	ctx, id := requestid.Ensure(ctx)
//	req.Header.Set(requestid.Header, id)
//
// LoggerExtractor plugs into pkg/logger so the same ID appears in log records.
package requestid
