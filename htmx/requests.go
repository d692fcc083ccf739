package htmx

// HTMX Request Headers
// https://htmx.org/docs/#request-headers

type RequestHeader = Header

const (
	HeaderRequest    = "HX-Request"
	HeaderCurrentURL = "HX-Current-URL"
	HeaderTarget     = "HX-Target"
	HeaderTrigger    = "HX-Trigger"

	// registry headers sent by hxassets clients
	HeaderStyles       = "X-Teapot-Styles"
	HeaderDependencies = "X-Teapot-Dependencies"
)

func (h RequestHeader) IsHTMXRequest() bool {
	return h.Get(HeaderRequest) == "true"
}

// MarkHTMXRequest flags the request as issued by a fragment client.
func (h RequestHeader) MarkHTMXRequest() RequestHeader {
	h.Set(HeaderRequest, "true")
	return h
}

// the current URL of the browser
func (h RequestHeader) GetCurrentURL() string {
	return h.Get(HeaderCurrentURL)
}

// the id of the target element if it exists
func (h RequestHeader) GetTarget() string {
	return h.Get(HeaderTarget)
}

// the id of the triggered element if it exists
func (h RequestHeader) GetTrigger() string {
	return h.Get(HeaderTrigger)
}

// the raw JSON array of style ids the client already loaded
func (h RequestHeader) GetStyles() string {
	return h.Get(HeaderStyles)
}

// the raw JSON array of dependencies the client already loaded
func (h RequestHeader) GetDependencies() string {
	return h.Get(HeaderDependencies)
}
