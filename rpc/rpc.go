package rpc

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"base58kit/util/log"

	eParser "github.com/go-errors/errors"
	"github.com/valyala/fasthttp"
)

const jsonRPCVersion = "2.0"

type request struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

type responseCommon struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *Error          `json:"error"`
}

// Client calls a base58kit JSON-RPC server.
type Client struct {
	url  string
	http *fasthttp.Client
}

// NewClient returns a client for the server at url.
// The http scheme is attached when missing.
func NewClient(url string) *Client {
	if !strings.HasPrefix(url, "http") {
		url = "http://" + url
	}

	return &Client{
		url: url,
		http: &fasthttp.Client{
			MaxConnWaitTimeout: 15 * time.Second,
			MaxConnsPerHost:    20,
		},
	}
}

// Encode asks the server to encode payload given in format, after applying digest.
func (c *Client) Encode(payload, format, digest string) (string, error) {
	var encoded string
	err := c.Call("encode", []string{payload, format, digest}, &encoded)
	return encoded, err
}

// Decode asks the server to decode s and format the bytes in format.
func (c *Client) Decode(s, format string) (string, error) {
	var decoded string
	err := c.Call("decode", []string{s, format}, &decoded)
	return decoded, err
}

// Validate asks the server if s is a well formed base58 string.
func (c *Client) Validate(s string) (bool, error) {
	var valid bool
	err := c.Call("validate", []string{s}, &valid)
	return valid, err
}

// Call sends method with params and decodes the result into target.
// A server side failure is returned as *Error.
func (c *Client) Call(method string, params []string, target interface{}) error {
	requestBody, err := generateRequestBody(method, params)
	if err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod("POST")
	req.Header.SetContentType("application/json")
	req.SetRequestURI(c.url)
	req.SetBody(requestBody)

	if err := c.http.Do(req, resp); err != nil {
		return err
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return fmt.Errorf("unexpected http status %d from %s", resp.StatusCode(), c.url)
	}

	bodyBytes := resp.Body()

	var r responseCommon
	if err := json.Unmarshal(bodyBytes, &r); err != nil {
		log.Error(eParser.Wrap(err, 0).ErrorStack())
		log.Errorf("Response: %s", string(bodyBytes))
		return err
	}

	if r.Error != nil {
		return r.Error
	}

	if target == nil {
		return nil
	}

	return json.Unmarshal(r.Result, target)
}

func generateRequestBody(method string, params []string) ([]byte, error) {
	p, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}

	return json.Marshal(request{
		JSONRPC: jsonRPCVersion,
		Method:  method,
		Params:  p,
		ID:      json.RawMessage("1"),
	})
}
