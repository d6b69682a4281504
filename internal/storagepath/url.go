package storagepath

import (
	"net/url"
	"strings"
)

const amazonHostSuffix = ".amazonaws.com/"

// IsSignedURL reports whether rawURL already carries a SigV4 signature query
// parameter. Already-signed URLs are returned unchanged by display-URL
// resolution to avoid redundant signing round-trips.
func IsSignedURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	q := u.Query()
	return q.Has("X-Amz-Signature") || q.Has("Signature")
}

// ExtractKey recovers the object-storage key from a stored object URL.
// Everything after the bucket host (".amazonaws.com/" for AWS-style URLs)
// is taken as the key; for custom endpoints the URL path is used, with a
// leading bucket segment dropped when the key namespace follows it. A bare
// key is returned as-is.
func ExtractKey(rawURL string) string {
	if i := strings.Index(rawURL, amazonHostSuffix); i >= 0 {
		key := rawURL[i+len(amazonHostSuffix):]
		return stripQuery(key)
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		// not a URL at all; assume the caller stored the bare key
		return stripQuery(rawURL)
	}

	key := strings.TrimPrefix(u.Path, "/")
	// path-style endpoints put the bucket before the key namespace
	if !strings.HasPrefix(key, Prefix) {
		if i := strings.Index(key, "/"+Prefix); i >= 0 {
			key = key[i+1:]
		}
	}
	return key
}

func stripQuery(s string) string {
	if i := strings.IndexByte(s, '?'); i >= 0 {
		return s[:i]
	}
	return s
}
