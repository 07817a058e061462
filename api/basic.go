package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/duke-git/lancet/v2/netutil"
	"github.com/hellodex/dbot-mcp/config"
	"github.com/hellodex/dbot-mcp/logger"
	"github.com/hellodex/dbot-mcp/model"
	"github.com/hellodex/dbot-mcp/util"
	"github.com/tidwall/gjson"
)

const (
	HeaderAPIKey = "X-API-KEY"

	poolInfoPath = "/dex/poolinfo"
)

var ErrInvalidEnvelope = errors.New("response is not a JSON envelope")

// Client talks to the trading API and the token security API with the same key.
type Client struct {
	baseURL     string
	securityURL string
	apiKey      string
	timeout     time.Duration
	transport   *http.Transport
}

func New(cfg *config.Config) *Client {
	timeout := cfg.API.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.API.BaseURL, "/"),
		securityURL: strings.TrimRight(cfg.API.SecurityURL, "/"),
		apiKey:      cfg.API.Key,
		timeout:     timeout,
		transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           (&net.Dialer{Timeout: timeout}).DialContext,
			TLSHandshakeTimeout:   timeout,
			ResponseHeaderTimeout: timeout,
			MaxIdleConnsPerHost:   4,
			IdleConnTimeout:       90 * time.Second,
		},
	}
}

// httpClient returns a fresh lancet client over the shared transport.
// netutil.HttpClient records the last request on itself, so calls never share one.
func (c *Client) httpClient() *netutil.HttpClient {
	hc := netutil.NewHttpClientWithConfig(&netutil.HttpClientConfig{
		HandshakeTimeout: c.timeout,
		ResponseTimeout:  c.timeout,
	})
	hc.Client.Transport = c.transport
	hc.Client.Timeout = c.timeout
	return hc
}

func (c *Client) headers() http.Header {
	header := http.Header{}
	header.Set(HeaderAPIKey, c.apiKey)
	header.Set("Content-Type", "application/json")
	return header
}

// send performs one request and returns the body of a 2xx response.
func (c *Client) send(method, rawURL, route string, query url.Values, body any) ([]byte, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("encode %s body: %w", route, err)
		}
	}
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}

	req := &netutil.HttpRequest{
		RawURL:  rawURL,
		Method:  method,
		Headers: c.headers(),
		Body:    payload,
	}

	resp, err := c.httpClient().SendRequest(req)
	if err != nil {
		return nil, &NetworkError{Method: method, Route: route, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Method: method, Route: route, Err: err}
	}

	logger.NewStdLog(method+" "+route, util.MaskJSON(payload), data)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Body:       data,
		}
	}
	return data, nil
}

func (c *Client) call(method, route string, query url.Values, body any) (*model.Envelope, error) {
	data, err := c.send(method, c.baseURL+route, route, query, body)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope(data)
}

func decodeEnvelope(data []byte) (*model.Envelope, error) {
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return nil, fmt.Errorf("%w: %.200s", ErrInvalidEnvelope, data)
	}

	r := gjson.GetManyBytes(data, "err", "res", "docs")
	env := &model.Envelope{
		Err:  r[0].Bool(),
		Docs: r[2].String(),
	}
	if r[1].Exists() {
		env.Res = json.RawMessage(r[1].Raw)
	}
	return env, nil
}

// queryOf flattens the JSON form of a request struct into query parameters.
func queryOf(v any) url.Values {
	values := url.Values{}
	raw, err := json.Marshal(v)
	if err != nil {
		return values
	}
	gjson.ParseBytes(raw).ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.Null {
			return true
		}
		values.Set(key.String(), value.String())
		return true
	})
	return values
}

func withID(prefix, id string) string {
	return prefix + "/" + url.PathEscape(id)
}
