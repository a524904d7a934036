package myhttpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"time"
)

const (
	timeout = 10 * time.Second
	debug   = false
)

type jsonHTTPClient struct {
	client       *http.Client
	extraHeaders map[string]string
}

func newJSONHTTPClient(transport http.RoundTripper, extraHeaders map[string]string) *jsonHTTPClient {
	return &jsonHTTPClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		extraHeaders: extraHeaders,
	}
}

func (c jsonHTTPClient) Send(ctx context.Context, req Request) (int, []byte, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return 0, []byte{}, fmt.Errorf("error creating http request for %s %s: %w", req.Method, req.URL, err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for name, value := range c.extraHeaders {
		httpReq.Header.Set(name, value)
	}
	for name, value := range req.Headers {
		httpReq.Header.Set(name, value)
	}

	if debug {
		reqDump, err := httputil.DumpRequestOut(httpReq, true)
		if err == nil {
			fmt.Printf("HTTP-req:\n%s", string(reqDump))
		}
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return 0, []byte{}, fmt.Errorf("error sending %s %s: %w", req.Method, req.URL, err)
	}
	defer httpResp.Body.Close()

	log.Printf("HTTP call: %s %s -> %d", req.Method, req.URL, httpResp.StatusCode)

	if debug {
		respDump, err := httputil.DumpResponse(httpResp, true)
		if err == nil {
			fmt.Printf("HTTP-resp:\n%s", string(respDump))
		}
	}

	respPayload, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return 0, []byte{}, fmt.Errorf("error reading response %s %s: %w", req.Method, req.URL, err)
	}

	return httpResp.StatusCode, respPayload, nil
}
