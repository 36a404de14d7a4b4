package remote

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"healthhub/pkg/apperror"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// CredentialCookie is the cookie the remote service authenticates with.
const CredentialCookie = "token"

// Client issues the HTTP calls against the remote HealthHub API and
// normalizes every failure into an apperror. It never retries.
type Client struct {
	http      *resty.Client
	log       *logrus.Logger
	baseURL   *url.URL
	jar       *credentialJar
	endpoints map[Kind]Endpoints
}

type Option func(*Client)

// WithEndpoints overrides endpoint sets per kind.
func WithEndpoints(endpoints map[Kind]Endpoints) Option {
	return func(c *Client) {
		for kind, e := range endpoints {
			c.endpoints[kind] = e
		}
	}
}

// WithTransport replaces the underlying round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.http.SetTransport(rt)
	}
}

func NewClient(baseURL string, log *logrus.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid remote base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid remote base url %q", baseURL)
	}

	jar := newCredentialJar()
	client := &Client{
		http: resty.New().
			SetBaseURL(u.String()).
			SetCookieJar(jar).
			SetHeader("Accept", "application/json").
			SetJSONMarshaler(json.Marshal).
			SetJSONUnmarshaler(json.Unmarshal),
		log:       log,
		baseURL:   u,
		jar:       jar,
		endpoints: make(map[Kind]Endpoints, len(DefaultEndpoints)),
	}
	for kind, e := range DefaultEndpoints {
		client.endpoints[kind] = e
	}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// SetCredential stores the remote session token sent with every request.
func (c *Client) SetCredential(token string) {
	c.jar.SetCookies(c.baseURL, []*http.Cookie{{Name: CredentialCookie, Value: token, Path: "/"}})
}

// HasCredential reports whether a remote session cookie is held.
func (c *Client) HasCredential() bool {
	for _, cookie := range c.jar.Cookies(c.baseURL) {
		if cookie.Name == CredentialCookie {
			return true
		}
	}
	return false
}

// ClearCredentials expires every cookie the remote service handed out.
func (c *Client) ClearCredentials() {
	c.jar.expireAll(c.baseURL)
	c.log.Debug("remote credentials cleared")
}

func (c *Client) endpointsFor(kind Kind) (Endpoints, error) {
	e, ok := c.endpoints[kind]
	if !ok {
		return Endpoints{}, fmt.Errorf("no endpoints registered for %s", kind)
	}
	return e, nil
}

// execute performs one call and returns the raw body of a 2xx answer.
func (c *Client) execute(ctx context.Context, kind Kind, op operation, id string, body interface{}) ([]byte, error) {
	endpoints, err := c.endpointsFor(kind)
	if err != nil {
		return nil, err
	}

	var route Route
	switch op {
	case opList:
		route = endpoints.List
	case opCreate:
		route = endpoints.Create
	case opDelete:
		route = endpoints.Delete
	}
	if route.Path == "" {
		return nil, fmt.Errorf("%s is not supported for %s", op, kind)
	}

	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if id != "" {
		req.SetPathParam("id", id)
	}

	started := time.Now()
	resp, err := req.Execute(route.Method, route.Path)
	entry := c.log.WithFields(logrus.Fields{
		"kind":   string(kind),
		"method": route.Method,
		"path":   route.Path,
	})
	if err != nil {
		entry.WithError(err).Warn("remote request failed")
		return nil, apperror.NewTransportError(fmt.Sprintf("%s %s", op, kind), endpoints.defaultMessage(op), err)
	}

	entry = entry.WithFields(logrus.Fields{
		"status":   resp.StatusCode(),
		"duration": time.Since(started).String(),
	})

	if !resp.IsSuccess() {
		message := messageFrom(resp.Body())
		if message == "" {
			message = endpoints.defaultMessage(op)
		}
		entry.Warnf("remote returned error: %s", message)
		return nil, apperror.NewRemoteError(resp.StatusCode(), message)
	}

	entry.Debug("remote request completed")
	return resp.Body(), nil
}

// messageFrom extracts the server message, preferring "message" over "msg".
func messageFrom(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Msg     string `json:"msg"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Msg
}

// decodeList accepts a bare array, an object with a "data" array, or any other
// JSON value which yields an empty list.
func decodeList[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("response is not valid JSON")
	}

	raw := trimmed
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, err
		}
		raw = bytes.TrimSpace(envelope.Data)
	}

	if len(raw) == 0 || raw[0] != '[' {
		return []T{}, nil
	}

	items := []T{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// decodeCreated accepts any JSON acknowledgement of a create. Only an object
// is decoded into the created record.
func decodeCreated[T any](body []byte) (*T, error) {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("response is not valid JSON")
	}
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, nil
	}
	return decodeOne[T](trimmed)
}

// decodeOne accepts an object, optionally wrapped in {"data": {...}}.
func decodeOne[T any](body []byte) (*T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("response is not a JSON object")
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}

	raw := trimmed
	if data := bytes.TrimSpace(envelope.Data); len(data) > 0 && data[0] == '{' {
		raw = data
	}

	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
