package gatecoin

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Client talks to the Gatecoin REST API with one fixed credential pair.
// The pair never changes after New, so a Client may be shared between goroutines.
type Client struct {
	host   string
	key    string // public key
	secret string // private key

	httpClient *http.Client
	now        func() time.Time

	Sugar *zap.SugaredLogger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithClock replaces the clock used for request timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// New returns a client for host (DefaultHost when empty). Without credentials only the
// public endpoints succeed; trading endpoints come back with a failure status.
func New(key, secret, host string, sugar *zap.SugaredLogger, opts ...Option) *Client {
	if host == "" {
		host = DefaultHost
	}
	if !strings.HasSuffix(host, "/") {
		host += "/"
	}
	if sugar == nil {
		sugar = zap.NewNop().Sugar()
	}
	c := &Client{
		host:       host,
		key:        key,
		secret:     secret,
		httpClient: &http.Client{},
		now:        time.Now,
		Sugar:      sugar,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Host returns the base URL every path is appended to.
func (c *Client) Host() string {
	return c.host
}

// request signs and sends one call, and returns the raw JSON body.
func (c *Client) request(method, path string, params map[string]interface{}) ([]byte, error) {
	if params == nil {
		params = map[string]interface{}{}
	}
	payload, err := json.Marshal(params)
	if err != nil {
		return nil, errors.Wrap(err, "encode params")
	}

	url := c.host + path
	ct := contentType(method)
	timestamp := Timestamp(c.now())

	req, err := http.NewRequest(method, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	// set directly so the names are sent as written, not canonicalised
	req.Header[HeaderPublicKey] = []string{c.key}
	req.Header[HeaderSignature] = []string{Sign(method, url, ct, timestamp, c.secret)}
	req.Header[HeaderDate] = []string{timestamp}
	req.Header.Set("Content-Type", ct)
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	c.Sugar.Debugf("%s %s", method, url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s %s", method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.Sugar.Debugf("raw response: %s", data)
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: data}
	}
	if !json.Valid(data) {
		c.Sugar.Debugf("raw response: %s", data)
		return nil, errors.Errorf("%s %s: malformed JSON response", method, path)
	}
	return data, nil
}

// schemaError logs the payload that failed to map and returns the error handed to the
// caller in place of a result.
func (c *Client) schemaError(endpoint string, data []byte, errs FieldErrors) error {
	c.Sugar.Errorf("%s response has %d bad field(s): %s", endpoint, len(errs), errs)
	c.Sugar.Debugf("raw response: %s", data)
	return &SchemaError{Endpoint: endpoint, Fields: errs}
}
