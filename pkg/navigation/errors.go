package navigation

import "errors"

var (
	// ErrRedirectInProgress is returned by operations that navigated away from
	// the current page. Callers must not retry or surface it as a failure.
	ErrRedirectInProgress = errors.New("redirecting to authentication")

	// ErrAlreadyRedirected is returned when a Request location was asked to
	// navigate twice; only the first redirect reaches the browser.
	ErrAlreadyRedirected = errors.New("navigation: response already redirected")

	// ErrInvalidTarget is returned for empty or unparsable navigation targets.
	ErrInvalidTarget = errors.New("navigation: invalid target URL")
)

// IsRedirect reports whether err signals an in-progress full-page navigation.
func IsRedirect(err error) bool {
	return errors.Is(err, ErrRedirectInProgress)
}
