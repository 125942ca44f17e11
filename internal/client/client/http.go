package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/whattowear/internal/client/models"
	"github.com/dmitrijs2005/whattowear/internal/common"
)

// HTTPClient implements Client over the JSON API. It is safe for concurrent
// use.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient returns a client for the server at baseURL. timeout bounds
// every request.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url: unsupported scheme %q", u.Scheme)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) getToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do sends in as JSON (when not nil) and decodes a 2xx body into out (when
// not nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.getToken(); token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var m struct {
		Message string `json:"message"`
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(b, &m); err != nil || m.Message == "" {
		m.Message = strings.TrimSpace(string(b))
	}
	return &APIError{Status: resp.StatusCode, Message: m.Message}
}

func (c *HTTPClient) Signup(ctx context.Context, in models.SignupInput) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPost, "/signup", in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Signin returns the issued token and also keeps it for later calls.
func (c *HTTPClient) Signin(ctx context.Context, email, password string) (string, *models.User, error) {
	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var out struct {
		Token string       `json:"token"`
		User  *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/signin", in, &out); err != nil {
		return "", nil, err
	}
	if out.Token == "" {
		return "", nil, errors.New("signin: empty token in response")
	}

	c.SetToken(out.Token)
	return out.Token, out.User, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UpdateMe(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPatch, "/users/me", upd, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) ListItems(ctx context.Context) ([]models.Item, error) {
	var list []models.Item
	if err := c.do(ctx, http.MethodGet, "/items", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) CreateItem(ctx context.Context, in models.NewItem) (*models.Item, error) {
	var it models.Item
	if err := c.do(ctx, http.MethodPost, "/items", in, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// DeleteItem returns the record the server removed.
func (c *HTTPClient) DeleteItem(ctx context.Context, id string) (*models.Item, error) {
	var out struct {
		Message string       `json:"message"`
		Data    *models.Item `json:"data"`
	}
	if err := c.do(ctx, http.MethodDelete, "/items/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *HTTPClient) LikeItem(ctx context.Context, id string) (*models.Item, error) {
	return c.likes(ctx, http.MethodPut, id)
}

func (c *HTTPClient) UnlikeItem(ctx context.Context, id string) (*models.Item, error) {
	return c.likes(ctx, http.MethodDelete, id)
}

func (c *HTTPClient) likes(ctx context.Context, method, id string) (*models.Item, error) {
	var it models.Item
	if err := c.do(ctx, method, "/items/"+url.PathEscape(id)+"/likes", nil, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

func (c *HTTPClient) PresignImage(ctx context.Context) (*models.ImageUpload, error) {
	var up models.ImageUpload
	if err := c.do(ctx, http.MethodPost, "/items/images", nil, &up); err != nil {
		return nil, err
	}
	return &up, nil
}

// Ping checks GET /healthz.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/healthz", nil, nil)
}
