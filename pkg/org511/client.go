package org511

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

const apiKeyParam = "api_key"

var byteOrderMark = []byte("\xef\xbb\xbf")

type Client struct {
	APIURL     string
	APIKey     string
	OperatorID string
	Agency     string

	HTTPClient *http.Client

	// Now is used to work out minutes until departure
	Now func() time.Time
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIURL:     DefaultAPIURL,
		APIKey:     apiKey,
		OperatorID: DefaultOperatorID,
		Agency:     DefaultAgency,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Now:        time.Now,
	}
}

func (c *Client) buildRequestURL(method string, params url.Values) string {
	query := url.Values{}
	for key, values := range params {
		query[key] = values
	}
	query.Set(apiKeyParam, c.APIKey)

	return c.APIURL + method + "?" + query.Encode()
}

func (c *Client) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// redactURL masks the api key so request URLs can be logged and returned in errors
func redactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	query := parsed.Query()
	if query.Has(apiKeyParam) {
		query.Set(apiKeyParam, "xxxxx")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

// stripBOM removes the byte order mark 511.org puts in front of its JSON
func stripBOM(body []byte) []byte {
	return bytes.TrimPrefix(body, byteOrderMark)
}

// get performs a GET against a 511.org API method and hands the BOM-stripped body to mapResponse
func get[T any](ctx context.Context, c *Client, method string, params url.Values, mapResponse func([]byte) (T, error)) (T, error) {
	var empty T

	requestURL := c.buildRequestURL(method, params)
	redactedURL := redactURL(requestURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return empty, &RequestError{Method: method, URL: redactedURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "alexa-sfmta")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	startTime := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		return empty, &RequestError{Method: method, URL: redactedURL, Err: err}
	}
	defer resp.Body.Close()

	log.Debug().
		Str("method", method).
		Int("status", resp.StatusCode).
		Str("latency", time.Since(startTime).String()).
		Msg("511.org request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return empty, &RequestError{
			Method:     method,
			URL:        redactedURL,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return empty, &RequestError{Method: method, URL: redactedURL, StatusCode: resp.StatusCode, Status: resp.Status, Err: err}
	}

	result, err := mapResponse(stripBOM(body))
	if err != nil {
		return empty, &ParseError{Method: method, Err: err}
	}

	return result, nil
}

func decodeJSON[T any](body []byte) (T, error) {
	var result T
	err := json.Unmarshal(body, &result)
	return result, err
}
