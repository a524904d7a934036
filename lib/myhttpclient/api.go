package myhttpclient

import (
	"context"
	"net/http"
)

type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

type HTTPSender interface {
	Send(c context.Context, req Request) (int, []byte, error)
}

// New returns a JSON sender; extraHeaders are added to every outbound request
// unless the request sets the same header itself.
func New(extraHeaders map[string]string) HTTPSender {
	return newJSONHTTPClient(http.DefaultTransport, extraHeaders)
}
