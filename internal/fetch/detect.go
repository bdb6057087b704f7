package fetch

import (
	"bytes"
	"errors"
)

// ErrNeedsBrowser signals that the plain HTTP response is a JS shell or
// otherwise unusable, and the caller should retry through the rendering
// path.
var ErrNeedsBrowser = errors.New("fetch: page requires browser rendering")

// jsMarkers flag pages whose static HTML tells the reader to enable
// JavaScript. Matched lowercase.
var jsMarkers = [][]byte{
	[]byte("loading..."),
	[]byte("please enable javascript"),
	[]byte("javascript is required"),
	[]byte("this page requires javascript"),
	[]byte("you need to enable javascript"),
}

// NeedsBrowser reports whether an HTTP response body looks like a
// JS-rendered shell: implausibly small, or carrying an enable-JavaScript
// marker. PDFs never need a browser.
func NeedsBrowser(body []byte) bool {
	if bytes.HasPrefix(body, []byte("%PDF")) {
		return false
	}
	if len(body) < 1000 {
		return true
	}
	lower := bytes.ToLower(body)
	for _, m := range jsMarkers {
		if bytes.Contains(lower, m) {
			return true
		}
	}
	return false
}
