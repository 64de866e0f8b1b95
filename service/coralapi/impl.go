package coralapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/gitter-badger/talk-5/base/ctx"
	"github.com/gitter-badger/talk-5/base/log"
	"github.com/gitter-badger/talk-5/base/metrics"
	"github.com/gitter-badger/talk-5/domain"
)

const defaultTimeout = 10 * time.Second

type client struct {
	client  http.Client
	timeout time.Duration
	base    string
	metrics metrics.Service
}

func NewClient(cfg *ClientCfg) (Client, error) {
	origin, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, xerrors.Errorf("parse base url: %w", err)
	}
	if origin.Scheme == "" || origin.Host == "" {
		return nil, xerrors.Errorf("base url %q needs scheme and host: %w", cfg.BaseURL, domain.ErrBadParamInput)
	}

	httpClient := cfg.HttpClient
	if httpClient.Jar == nil {
		// cookiejar.New only fails on a broken PublicSuffixList
		jar, _ := cookiejar.New(nil)
		httpClient.Jar = jar
	}
	if cfg.Session != nil {
		httpClient.Jar.SetCookies(origin, []*http.Cookie{cfg.Session})
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &client{
		client:  httpClient,
		timeout: timeout,
		base:    origin.String() + BasePath,
		metrics: metrics.New("coralapi"),
	}, nil
}

func (c *client) resolve(path string) (string, error) {
	if u, err := url.Parse(path); err != nil {
		return "", xerrors.Errorf("parse path %q: %w", path, err)
	} else if u.IsAbs() || u.Host != "" {
		return "", domain.ErrAbsolutePath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.base + path, nil
}

func (c *client) Request(ctx bCtx.Ctx, path string, opts ...RequestOptionsFunc) (*Result, error) {
	opt, err := ParseRequestOptions(opts...)
	if err != nil {
		ctx.WithField("err", err).Error("ParseRequestOptions failed")
		return nil, err
	}

	url, err := c.resolve(path)
	if err != nil {
		ctx.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Error("resolve failed")
		return nil, err
	}

	method := strings.ToUpper(opt.Method)

	var body io.Reader
	if method != http.MethodGet && opt.Body != nil {
		b, err := json.Marshal(opt.Body)
		if err != nil {
			ctx.WithField("err", err).Error("json.Marshal failed")
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range opt.Headers {
		req.Header[k] = v
	}

	defer c.metrics.BumpTime("request.latency", "method", method).End()

	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		c.metrics.BumpSum("request.err", 1, "method", method)
		return nil, &domain.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	c.metrics.BumpSum("response", 1, "method", method, "status", strconv.Itoa(resp.StatusCode))

	return handleResp(ctx, url, resp)
}

func handleResp(ctx bCtx.Ctx, url string, resp *http.Response) (*Result, error) {
	if resp.StatusCode == http.StatusUnauthorized {
		ctx.WithField("url", url).Warn("not authorized")
		return nil, domain.ErrNotAuthorized
	} else if resp.StatusCode > 399 {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode > 399")
		return nil, &domain.ServerError{Status: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, &domain.NetworkError{Err: err}
	}

	if resp.StatusCode == http.StatusNoContent {
		return &Result{Status: resp.StatusCode, Empty: true, Text: string(data)}, nil
	}

	if !json.Valid(data) {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("invalid json body")
		return nil, xerrors.Errorf("decode %s: %w", url, domain.ErrInvalidJsonFormat)
	}

	return &Result{Status: resp.StatusCode, JSON: json.RawMessage(data)}, nil
}
