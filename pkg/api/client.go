package api

import (
	"fmt"
	"io"
	"net/http"

	"context"

	"github.com/strongerfit/teamup-relay/pkg/xcontext"
)

type Client interface {
	Header(name, value string) Client
	Query(query Parameter) Client
	Body(body Body) Client
	POST(ctx context.Context, opts ...Opt) (*Response, error)
	GET(ctx context.Context, opts ...Opt) (*Response, error)
	PUT(ctx context.Context, opts ...Opt) (*Response, error)
}

type Generator interface {
	New(path string, args ...any) Client
}

type defaultGenerator struct {
	baseURL    string
	httpClient *http.Client
}

type GeneratorOpt func(*defaultGenerator)

// WithHTTPClient overrides the client carried in the request context. It is
// used by callers that must not inherit the shared retry policy.
func WithHTTPClient(client *http.Client) GeneratorOpt {
	return func(g *defaultGenerator) {
		g.httpClient = client
	}
}

func NewGenerator(baseURL string, opts ...GeneratorOpt) *defaultGenerator {
	g := &defaultGenerator{baseURL: baseURL}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

func (g *defaultGenerator) New(path string, args ...any) Client {
	return &defaultClient{
		baseURL:    g.baseURL,
		httpClient: g.httpClient,
		path:       fmt.Sprintf(path, args...),
		headers:    make(http.Header),
	}
}

type Body interface {
	ToReader() (io.Reader, string, error)
}

type Opt interface {
	Do(defaultClient, *http.Request)
}

type defaultClient struct {
	baseURL    string
	httpClient *http.Client
	method     string
	path       string
	headers    http.Header
	query      Parameter
	body       Body
}

func (c *defaultClient) Header(name, value string) Client {
	c.headers[name] = []string{value}
	return c
}

func (c *defaultClient) Query(query Parameter) Client {
	c.query = query
	return c
}

func (c *defaultClient) Body(body Body) Client {
	c.body = body
	return c
}

func (c *defaultClient) POST(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodPost
	return c.call(ctx, opts...)
}

func (c *defaultClient) GET(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodGet
	return c.call(ctx, opts...)
}

func (c *defaultClient) PUT(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodPut
	return c.call(ctx, opts...)
}

func (c *defaultClient) call(ctx context.Context, opts ...Opt) (*Response, error) {
	var reader io.Reader
	var contentType string
	if c.body != nil {
		var err error
		reader, contentType, err = c.body.ToReader()
		if err != nil {
			return nil, err
		}
	}

	url := c.baseURL + c.path
	if c.query != nil {
		url = url + "?" + c.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, c.method, url, reader)
	if err != nil {
		return nil, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for h, values := range c.headers {
		for _, v := range values {
			req.Header.Add(h, v)
		}
	}

	for _, opt := range opts {
		opt.Do(*c, req)
	}

	httpClient := c.httpClient
	if httpClient == nil {
		httpClient = xcontext.HTTPClient(ctx)
	}

	result, err := httpClient.Do(req)
	if err != nil {
		xcontext.Logger(ctx).Warnf("An error occured when calling to %s: %v", url, err)
		return nil, err
	}
	defer result.Body.Close()

	response := &Response{
		Code:   result.StatusCode,
		Header: result.Header,
	}

	body, err := io.ReadAll(result.Body)
	if err != nil {
		xcontext.Logger(ctx).Warnf("An error occured when reading body of %s: %v", url, err)
		return nil, err
	}

	response.RawBody = body
	if len(body) == 0 {
		response.Body = JSON{}
	} else if b, err := bytesToJSON(body); err == nil {
		response.Body = b
	} else if b, err := bytesToArray(body); err == nil {
		response.Body = b
	} else {
		// Remote platforms answer some errors with plain text.
		response.Body = string(body)
	}

	return response, nil
}
