package search

import (
	"net/url"
	"strings"
)

// trackingParams are query parameters stripped during URL normalization.
// Two URLs differing only in these are the same document.
var trackingParams = map[string]bool{
	"fbclid":      true,
	"gclid":       true,
	"msclkid":     true,
	"ref":         true,
	"ref_src":     true,
	"igshid":      true,
	"mc_cid":      true,
	"mc_eid":      true,
	"_hsenc":      true,
	"_hsmi":       true,
	"vero_id":     true,
	"yclid":       true,
	"twclid":      true,
	"si":          true,
	"spm":         true,
	"share_token": true,
}

// NormalizeURL reduces a URL to scheme+host+path plus non-tracking query
// params, dropping fragments. The result is the dedup key for search
// results and the (session_id, url) source uniqueness check.
func NormalizeURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return strings.TrimSpace(raw)
	}

	u.Fragment = ""
	u.Host = strings.ToLower(u.Host)
	u.Scheme = strings.ToLower(u.Scheme)

	if u.RawQuery != "" {
		q := u.Query()
		for key := range q {
			if trackingParams[strings.ToLower(key)] || strings.HasPrefix(strings.ToLower(key), "utm_") {
				q.Del(key)
			}
		}
		u.RawQuery = q.Encode()
	}

	// Trailing slash on a non-root path is not a distinct document.
	if len(u.Path) > 1 {
		u.Path = strings.TrimSuffix(u.Path, "/")
	}

	return u.String()
}

// domainOf extracts the lowercase host, without port or www prefix.
func domainOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// domainMatches reports whether host equals domain or is a subdomain of it.
func domainMatches(host, domain string) bool {
	domain = strings.TrimPrefix(strings.ToLower(domain), "www.")
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// passesDomainFilters applies the allow list then the block list.
func passesDomainFilters(rawURL string, allowed, blocked []string) bool {
	host := domainOf(rawURL)
	if host == "" {
		return false
	}
	for _, d := range blocked {
		if domainMatches(host, d) {
			return false
		}
	}
	if len(allowed) == 0 {
		return true
	}
	for _, d := range allowed {
		if domainMatches(host, d) {
			return true
		}
	}
	return false
}
