package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". Nil errors yield an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Shop records the shop domain under "shop". Empty values yield an empty Attr.
func Shop(domain string) slog.Attr {
	if domain == "" {
		return slog.Attr{}
	}
	return slog.String("shop", domain)
}

// Component records the emitting component under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// CacheKey records a query cache key under "cache_key".
func CacheKey(key string) slog.Attr {
	return slog.String("cache_key", key)
}

// Attempt records the 1-based attempt number under "attempt".
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

// Method records the HTTP method under "method".
func Method(m string) slog.Attr {
	return slog.String("method", m)
}

// Path records a request path under "path". Callers must strip credentials first.
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// StatusCode records the HTTP status under "status". Zero yields an empty Attr.
func StatusCode(code int) slog.Attr {
	if code == 0 {
		return slog.Attr{}
	}
	return slog.Int("status", code)
}

// Duration records an elapsed time under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Redirect records a navigation target under "redirect".
func Redirect(target string) slog.Attr {
	return slog.String("redirect", target)
}
