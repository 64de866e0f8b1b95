package coralapi

import (
	"encoding/json"
	"net/http"
	"time"

	bCtx "github.com/gitter-badger/talk-5/base/ctx"
	"github.com/gitter-badger/talk-5/domain"
)

// BasePath is the versioned prefix every request path is resolved against.
const BasePath = "/api/v1"

type Client interface {
	// Request performs one exchange with the API. It never retries.
	//   401           -> domain.ErrNotAuthorized
	//   > 399         -> *domain.ServerError
	//   204           -> Result{Empty: true}
	//   anything else -> Result with the decoded JSON body
	Request(ctx bCtx.Ctx, path string, opts ...RequestOptionsFunc) (*Result, error)
}

type ClientCfg struct {
	// BaseURL is the API origin, e.g. https://talk.example.com
	BaseURL    string
	HttpClient http.Client
	Timeout    time.Duration
	// Session is seeded into the cookie jar for the base origin.
	Session *http.Cookie
}

// Result is a successful response.
type Result struct {
	Status int
	// Empty is set for 204 responses, whose body is kept as Text.
	Empty bool
	Text  string
	JSON  json.RawMessage
}

// Decode unmarshals the JSON body into v.
func (r *Result) Decode(v interface{}) error {
	if r.Empty || len(r.JSON) == 0 {
		return domain.ErrInvalidJsonFormat
	}
	return json.Unmarshal(r.JSON, v)
}

type RequestOptions struct {
	Method  string
	Body    interface{}
	Headers http.Header
}

type RequestOptionsFunc func(*RequestOptions) error

func ParseRequestOptions(opts ...RequestOptionsFunc) (RequestOptions, error) {
	opt := RequestOptions{
		Method:  http.MethodGet,
		Headers: http.Header{},
	}
	for _, f := range opts {
		if err := f(&opt); err != nil {
			return opt, err
		}
	}
	return opt, nil
}

func WithMethod(method string) RequestOptionsFunc {
	return func(opt *RequestOptions) error {
		if method == "" {
			return domain.ErrBadParamInput
		}
		opt.Method = method
		return nil
	}
}

// WithBody sets a JSON-serializable body; it is ignored on GET.
func WithBody(body interface{}) RequestOptionsFunc {
	return func(opt *RequestOptions) error {
		opt.Body = body
		return nil
	}
}

// WithHeader overrides one header, including the JSON defaults.
func WithHeader(key, value string) RequestOptionsFunc {
	return func(opt *RequestOptions) error {
		opt.Headers.Set(key, value)
		return nil
	}
}
