package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"
	"golang.org/x/sync/singleflight"

	"github.com/mdmasudrana9/mpms-dashboard-service/logging"
)

const renewalPath = "/auth/refresh-token"

// Notifier receives user-visible messages the gateway emits as a side
// effect, currently only for not-found responses. Emission is advisory; the
// error is still returned to the caller.
type Notifier interface {
	Notify(message string)
}

// APIError is a non-2xx response from the remote API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// Request describes one call against the remote API.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
}

// envelope is the response shape the MPMS API wraps every body in.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client dispatches credentialed requests to the remote MPMS API. It
// attaches the session's bearer token, reports not-found responses through
// the notifier, and on an unauthorized response performs exactly one token
// renewal followed by exactly one replay of the original request.
//
// Renewal is guarded by a singleflight group: if several in-flight requests
// fail with 401 at once, a single renewal call is issued and all of them
// wait on its outcome before replaying.
type Client struct {
	baseURL           string
	refreshCookieName string
	httpClient        *http.Client
	breaker           *gobreaker.CircuitBreaker
	session           *Session
	notifier          Notifier
	renewals          singleflight.Group
}

func NewClient(baseURL, refreshCookieName string, session *Session, notifier Notifier, httpClient *http.Client, breaker *gobreaker.CircuitBreaker) *Client {
	if refreshCookieName == "" {
		refreshCookieName = "refreshToken"
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:           baseURL,
		refreshCookieName: refreshCookieName,
		httpClient:        httpClient,
		breaker:           breaker,
		session:           session,
		notifier:          notifier,
	}
}

func (c *Client) Session() *Session {
	return c.session
}

// Do executes the request and decodes the envelope's data field into out
// when out is non-nil. Errors from the API are returned as *APIError; the
// caller decides presentation.
func (c *Client) Do(ctx context.Context, req Request, out interface{}) error {
	res, err := c.send(ctx, req)
	if err != nil {
		return err
	}

	if res.status == http.StatusNotFound {
		apiErr := res.apiError()
		if c.notifier != nil {
			c.notifier.Notify(apiErr.Message)
		}
		return apiErr
	}

	if res.status == http.StatusUnauthorized {
		original := res.apiError()
		_, renewErr, _ := c.renewals.Do("renew", func() (interface{}, error) {
			return nil, c.renewToken(ctx)
		})
		if renewErr != nil {
			// Session already cleared; the caller gets the original error.
			return original
		}

		res, err = c.send(ctx, req)
		if err != nil {
			return err
		}
		// A second unauthorized response is final, no further renewal.
		return res.finish(out)
	}

	return res.finish(out)
}

// renewToken exchanges the stored refresh credential for a fresh bearer
// token. No bearer header is sent. On any failure the session is cleared.
func (c *Client) renewToken(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+renewalPath, nil)
	if err != nil {
		return fmt.Errorf("failed to build renewal request: %v", err)
	}
	if cred := c.session.RefreshCredential(); cred != "" {
		httpReq.AddCookie(&http.Cookie{Name: c.refreshCookieName, Value: cred})
	}

	res, err := c.execute(httpReq)
	if err != nil {
		c.session.Clear()
		return fmt.Errorf("token renewal request failed: %v", err)
	}

	var data struct {
		AccessToken string `json:"accessToken"`
	}
	if res.status == http.StatusOK && len(res.env.Data) > 0 {
		if err := json.Unmarshal(res.env.Data, &data); err != nil {
			logging.Logger.Warnf("Event ID: TOKEN_RENEWAL_DECODE_FAILED, Description: Failed to decode renewal response: %v", err)
		}
	}
	if data.AccessToken == "" {
		c.session.Clear()
		logging.Logger.Warnf("Event ID: TOKEN_RENEWAL_REJECTED, Description: Renewal endpoint returned no access token, session cleared")
		return fmt.Errorf("token renewal rejected")
	}

	c.session.Renew(data.AccessToken)
	logging.Logger.Infof("Event ID: TOKEN_RENEWED, Description: Bearer token renewed after unauthorized response")
	return nil
}

// send builds and executes one attempt of the described request.
func (c *Client) send(ctx context.Context, req Request) (*response, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body for %s: %v", req.Path, err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %v", req.Path, err)
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		httpReq.Header.Set("Authorization", token)
	}

	return c.execute(httpReq)
}

// execute runs the request inside the circuit breaker. Only transport
// failures count against the breaker; HTTP error statuses are results.
func (c *Client) execute(httpReq *http.Request) (*response, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.httpClient.Do(httpReq)
	})
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %v", httpReq.URL.Path, err)
	}

	httpResp := result.(*http.Response)
	defer httpResp.Body.Close()

	c.captureRefreshCookie(httpResp)

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %v", httpReq.URL.Path, err)
	}

	res := &response{status: httpResp.StatusCode}
	if len(body) > 0 {
		// Tolerate non-envelope bodies; apiError falls back to the status text.
		_ = json.Unmarshal(body, &res.env)
	}
	return res, nil
}

// captureRefreshCookie keeps the session's ambient renewal credential in
// step with whatever the API last issued.
func (c *Client) captureRefreshCookie(httpResp *http.Response) {
	for _, cookie := range httpResp.Cookies() {
		if cookie.Name == c.refreshCookieName && cookie.Value != "" {
			c.session.SetRefreshCredential(cookie.Value)
		}
	}
}

type response struct {
	status int
	env    envelope
}

func (r *response) apiError() *APIError {
	msg := r.env.Message
	if msg == "" && len(r.env.Data) > 0 {
		var inner struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(r.env.Data, &inner)
		msg = inner.Message
	}
	if msg == "" {
		msg = http.StatusText(r.status)
	}
	return &APIError{Status: r.status, Message: msg}
}

// finish turns the final attempt into the caller-visible outcome.
func (r *response) finish(out interface{}) error {
	if r.status < 200 || r.status > 299 {
		return r.apiError()
	}
	if out == nil || len(r.env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %v", err)
	}
	return nil
}
