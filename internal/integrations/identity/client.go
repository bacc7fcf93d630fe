package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client клиент для работы с IdentityService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента IdentityService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProfile получает профиль пользователя
func (c *Client) GetProfile(ctx context.Context, userID string) (*UserProfile, error) {
	endpoint := fmt.Sprintf("%s/internal/users/%s", c.baseURL, url.PathEscape(userID))

	var profile UserProfile
	if err := c.getJSON(ctx, endpoint, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// GetRoles получает роли пользователя. У пользователя без записей о ролях
// подразумевается роль customer.
func (c *Client) GetRoles(ctx context.Context, userID string) ([]RoleRecord, error) {
	endpoint := fmt.Sprintf("%s/internal/users/%s/roles", c.baseURL, url.PathEscape(userID))

	var roles []RoleRecord
	if err := c.getJSON(ctx, endpoint, &roles); err != nil {
		if err == ErrUserNotFound {
			// Нет записей — обычный клиент
			return []RoleRecord{{Role: RoleCustomer}}, nil
		}
		return nil, err
	}

	if len(roles) == 0 {
		roles = []RoleRecord{{Role: RoleCustomer}}
	}

	return roles, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrUserNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
