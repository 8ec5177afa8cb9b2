package remote

import (
	"net/url"
	"strings"
)

// Kind is the transport used for a source URI.
type Kind int

const (
	// KindUnsupported is any scheme other than the ones below.
	KindUnsupported Kind = iota

	// KindHTTP is an http or https URL.
	KindHTTP

	// KindFile is a file:// URL or a bare path.
	KindFile
)

// Resolve classifies a source URI. For files it returns the local path.
func Resolve(uri string) (Kind, string) {
	if strings.HasPrefix(uri, "file://") {
		return KindFile, strings.TrimPrefix(uri, "file://")
	}
	u, err := url.Parse(uri)
	if err != nil {
		return KindUnsupported, ""
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return KindHTTP, uri
	case "":
		return KindFile, uri
	default:
		// Windows drive letters parse as one-letter schemes.
		if len(u.Scheme) == 1 {
			return KindFile, uri
		}
		return KindUnsupported, ""
	}
}
