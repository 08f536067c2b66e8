package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/booshananamudara/zoura-mobile/internal/client/models"
	"github.com/booshananamudara/zoura-mobile/internal/common"
)

// HTTPClient talks JSON over HTTP to the storefront backend. The bearer
// token is pulled from the TokenSource on every authorized request rather
// than cached here, so login/logout take effect immediately.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	nowFn   func() time.Time // cache-busting timestamp, swappable in tests
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		nowFn:   time.Now,
	}
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return http.NewRequestWithContext(ctx, method, u, body)
}

// authorize attaches the current bearer token to req. Fails with
// common.ErrNotAuthenticated when no token is stored.
func (c *HTTPClient) authorize(ctx context.Context, req *http.Request) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if token == "" {
		return common.ErrNotAuthenticated
	}
	req.Header.Set(common.AuthorizationHeader, "Bearer "+token)
	return nil
}

// do executes req and decodes a 2xx JSON body into out (when out != nil).
// Transport failures map to common.ErrUnavailable, 401 to
// common.ErrUnauthorized, 404 to common.ErrNotFound; other non-2xx
// statuses become a *ServerError carrying the backend's message field.
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	msg := serverMessage(resp)
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", common.ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, msg)
	default:
		return &ServerError{Status: resp.StatusCode, Message: msg}
	}
}

func serverMessage(resp *http.Response) string {
	var env errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Message != "" {
		return env.Message
	}
	return http.StatusText(resp.StatusCode)
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, payload any, auth bool, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if auth {
		if err := c.authorize(ctx, req); err != nil {
			return err
		}
	}
	return c.do(req, out)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	payload := map[string]string{"email": email, "password": password}
	if err := c.postJSON(ctx, "/auth/login", payload, false, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) error {
	payload := map[string]string{"name": name, "email": email, "password": password}
	return c.postJSON(ctx, "/auth/register", payload, false, nil)
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/auth/profile", nil, nil)
	if err != nil {
		return nil, err
	}
	if err := c.authorize(ctx, req); err != nil {
		return nil, err
	}
	var user models.User
	if err := c.do(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) Products(ctx context.Context) (*models.ProductPage, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/products", nil, nil)
	if err != nil {
		return nil, err
	}
	var page models.ProductPage
	if err := c.do(req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Cart forces a fresh read: a no-cache header plus a timestamp query
// parameter so no intermediate cache can serve a stale cart.
func (c *HTTPClient) Cart(ctx context.Context) (*models.Cart, error) {
	query := url.Values{"_ts": {strconv.FormatInt(c.nowFn().UnixMilli(), 10)}}
	req, err := c.newRequest(ctx, http.MethodGet, "/cart", query, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-cache")
	if err := c.authorize(ctx, req); err != nil {
		return nil, err
	}
	var cart models.Cart
	if err := c.do(req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// cartEnvelope wraps mutation responses: {"cart": {...}}.
type cartEnvelope struct {
	Cart models.Cart `json:"cart"`
}

func (c *HTTPClient) AddCartItem(ctx context.Context, productID string, quantity int, variantID string) (*models.Cart, error) {
	payload := map[string]any{"productId": productID, "quantity": quantity}
	if variantID != "" {
		payload["variantId"] = variantID
	}
	var env cartEnvelope
	if err := c.postJSON(ctx, "/cart", payload, true, &env); err != nil {
		return nil, err
	}
	return &env.Cart, nil
}

func (c *HTTPClient) RemoveCartItem(ctx context.Context, itemID string) (*models.Cart, error) {
	req, err := c.newRequest(ctx, http.MethodDelete, "/cart/"+url.PathEscape(itemID), nil, nil)
	if err != nil {
		return nil, err
	}
	if err := c.authorize(ctx, req); err != nil {
		return nil, err
	}
	var env cartEnvelope
	if err := c.do(req, &env); err != nil {
		return nil, err
	}
	return &env.Cart, nil
}

func (c *HTTPClient) ClearCart(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/cart", nil, nil)
	if err != nil {
		return err
	}
	if err := c.authorize(ctx, req); err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *HTTPClient) CreateOrder(ctx context.Context, addr models.ShippingAddress, paymentMethod string) (*models.Order, error) {
	payload := map[string]any{
		"shippingAddress": addr,
		"paymentMethod":   paymentMethod,
	}
	var env struct {
		Order models.Order `json:"order"`
	}
	if err := c.postJSON(ctx, "/orders", payload, true, &env); err != nil {
		return nil, err
	}
	return &env.Order, nil
}

func (c *HTTPClient) Orders(ctx context.Context) ([]models.Order, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/orders", nil, nil)
	if err != nil {
		return nil, err
	}
	if err := c.authorize(ctx, req); err != nil {
		return nil, err
	}
	var env struct {
		Orders []models.Order `json:"orders"`
	}
	if err := c.do(req, &env); err != nil {
		return nil, err
	}
	return env.Orders, nil
}

func (c *HTTPClient) Feed(ctx context.Context, limit, offset int) (*models.FeedPage, error) {
	query := url.Values{
		"limit":  {strconv.Itoa(limit)},
		"offset": {strconv.Itoa(offset)},
	}
	req, err := c.newRequest(ctx, http.MethodGet, "/social/feed", query, nil)
	if err != nil {
		return nil, err
	}
	var page models.FeedPage
	if err := c.do(req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreatePost publishes a caption with an optional image. The image travels
// as a multipart part whose content type is inferred from the file
// extension, falling back to JPEG.
func (c *HTTPClient) CreatePost(ctx context.Context, content, imagePath string) (*models.Post, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("content", content); err != nil {
		return nil, fmt.Errorf("write content field: %w", err)
	}

	if imagePath != "" {
		data, err := os.ReadFile(imagePath)
		if err != nil {
			return nil, fmt.Errorf("read image: %w", err)
		}
		name := filepath.Base(imagePath)
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="image"; filename=%q`, name))
		header.Set("Content-Type", ImageContentType(name))
		part, err := w.CreatePart(header)
		if err != nil {
			return nil, fmt.Errorf("create image part: %w", err)
		}
		if _, err := part.Write(data); err != nil {
			return nil, fmt.Errorf("write image part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/social/feed", nil, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := c.authorize(ctx, req); err != nil {
		return nil, err
	}

	var env struct {
		Post models.Post `json:"post"`
	}
	if err := c.do(req, &env); err != nil {
		return nil, err
	}
	return &env.Post, nil
}

// ImageContentType infers a MIME type from the file extension. Unknown or
// missing extensions default to JPEG.
func ImageContentType(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return "image/jpeg"
	}
	return "image/" + ext
}
