package htmx

import "net/http"

// Header wraps an http.Header with accessors for the htmx request and
// response headers.
type Header struct {
	http.Header
}

// Wrap shares h; writes through the returned Header land in h.
func Wrap(h http.Header) Header {
	if h == nil {
		h = make(http.Header)
	}
	return Header{Header: h}
}
