package session

import (
	"net/url"
	"strings"
)

// Incoming parameters, set on the page URL by the OAuth callback.
const (
	ParamShop    = "shop"
	ParamSession = "session"
)

// Outgoing parameters, appended to every API request.
const (
	QueryShopDomain = "shopDomain"
	QuerySession    = "session"
)

// Info is the identity found in the page URL. An empty field means the
// parameter is absent.
type Info struct {
	Shop    string
	Session string
}

// Valid reports whether both the shop and the session token are present.
func (i Info) Valid() bool {
	return i.Shop != "" && i.Session != ""
}

// FromURL extracts Info from u's query. A nil URL yields an empty Info.
func FromURL(u *url.URL) Info {
	if u == nil {
		return Info{}
	}
	q := u.Query()
	return Info{
		Shop:    q.Get(ParamShop),
		Session: q.Get(ParamSession),
	}
}

// QueryString encodes i as outgoing request parameters, or "" when i is not
// valid. Field order is fixed: shopDomain, then session.
func (i Info) QueryString() string {
	if !i.Valid() {
		return ""
	}
	return QueryShopDomain + "=" + escape(i.Shop) + "&" + QuerySession + "=" + escape(i.Session)
}

// escape percent-encodes s for a query component. Spaces become %20 rather
// than '+' so the value decodes the same way on any server.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
