package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/client/models"
)

// HTTPClient implements Client over the server's JSON API.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// messageBody is the {"message": ...} envelope the server uses for
// acknowledgments and errors.
type messageBody struct {
	Message string `json:"message"`
}

func (c *HTTPClient) SignUp(ctx context.Context, data SignUpData) (string, error) {
	var resp messageBody
	if err := c.do(ctx, http.MethodPost, "/signup", data, "", &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	req := map[string]string{"email": email, "password": password}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", req, "", &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) Users(ctx context.Context, token string) ([]models.User, error) {
	var resp []models.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, token, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) User(ctx context.Context, token, id string) (*models.User, error) {
	var resp models.User
	if err := c.do(ctx, http.MethodGet, "/users/"+id, nil, token, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/ping", nil, "", nil)
}

// do performs a single JSON round-trip. A transport failure maps to
// ErrUnavailable; a non-2xx status becomes an APIError carrying the server's
// message, with 401/403 additionally matching ErrUnauthorized.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, token string, out any) error {

	var reqBody *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}

		var msg messageBody
		if err := json.NewDecoder(resp.Body).Decode(&msg); err == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
