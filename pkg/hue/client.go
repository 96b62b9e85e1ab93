package hue

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/wsmith/huedo/internal/config"
	"github.com/wsmith/huedo/internal/errors"
)

// ClientInterface defines the bridge operations the commands consume.
// Used for testability and mocking in the CLI.
type ClientInterface interface {
	CreateUser(ctx context.Context, hubAddr string) (string, error)
	GetLights(ctx context.Context) (map[string]Light, error)
	GetLight(ctx context.Context, id int) (Light, error)
	LightIsOn(ctx context.Context, id int) (bool, error)
	ToggleLight(ctx context.Context, id int) error
	ToggleGroup(ctx context.Context, name string) error
	SetLightState(ctx context.Context, id int, update StateUpdate) error
	Call(ctx context.Context, method, fragment string, body any) (json.RawMessage, error)
}

// Client handles HTTP communication with a Hue bridge. The bridge
// presents a self-signed certificate on the local network, so the
// default transport skips certificate verification.
type Client struct {
	logger     *slog.Logger
	cfg        *config.Config
	httpClient *http.Client
}

var _ ClientInterface = (*Client)(nil)

// New creates a new bridge client from an explicit config value.
func New(cfg *config.Config, logger *slog.Logger, httpClient ...*http.Client) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	var hc *http.Client
	if len(httpClient) > 0 && httpClient[0] != nil {
		hc = httpClient[0]
	} else {
		hc = &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		}
	}
	return &Client{
		logger:     logger,
		cfg:        cfg,
		httpClient: hc,
	}
}

// BuildURL composes a bridge URL for an authenticated API fragment.
func (c *Client) BuildURL(fragment string) string {
	return fmt.Sprintf("https://%s/api/%s/%s", c.cfg.Hub.IP, c.cfg.Hub.User, fragment)
}

// Call performs one authenticated request against the bridge and
// returns the raw JSON response.
func (c *Client) Call(ctx context.Context, method, fragment string, body any) (json.RawMessage, error) {
	return c.do(ctx, method, c.BuildURL(fragment), body)
}

// do performs one HTTP request. Any status other than 200 fails with an
// ErrBridge error carrying the status code and the response body verbatim.
func (c *Client) do(ctx context.Context, method, url string, body any) (json.RawMessage, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		c.logger.Debug("bridge request", "method", method, "url", url, "body", string(bodyBytes))
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		c.logger.Debug("bridge request", "method", method, "url", url)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("bridge request failed", "method", method, "url", url, "error", err)
		return nil, fmt.Errorf("bridge request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("bridge error response", "status", resp.StatusCode, "body", string(respBody))
		return nil, errors.Bridgef("unexpected response code %d: %s", resp.StatusCode, string(respBody))
	}

	c.logger.Debug("bridge response", "body", string(respBody))
	return respBody, nil
}

// CreateUser runs the pairing handshake against a bridge that is not
// yet configured. It only succeeds if the physical link button on the
// bridge was pressed within the prior ~30 seconds. On success the new
// username and hub address are persisted to the config file.
func (c *Client) CreateUser(ctx context.Context, hubAddr string) (string, error) {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "unknown"
	}

	raw, err := c.do(ctx, http.MethodPost, fmt.Sprintf("https://%s/api", hubAddr), map[string]string{
		"devicetype": "huedo#" + hostname,
	})
	if err != nil {
		return "", err
	}

	var results []pairingResult
	if err := json.Unmarshal(raw, &results); err != nil || len(results) == 0 {
		return "", errors.Pairingf("unexpected pairing response: %s", string(raw))
	}

	switch {
	case results[0].Success != nil:
		username := results[0].Success.Username
		if err := c.cfg.UpdateCredentials(hubAddr, username); err != nil {
			return "", fmt.Errorf("failed to persist credentials: %w", err)
		}
		c.logger.Info("paired with bridge", "hub", hubAddr)
		return username, nil
	case results[0].Error != nil:
		return "", errors.Pairingf("%s", results[0].Error.Description)
	default:
		return "", errors.Pairingf("unexpected pairing response: %s", string(raw))
	}
}

// GetLights returns all lights known to the bridge, keyed by id.
func (c *Client) GetLights(ctx context.Context) (map[string]Light, error) {
	raw, err := c.Call(ctx, http.MethodGet, "lights", nil)
	if err != nil {
		return nil, err
	}
	var lights map[string]Light
	if err := json.Unmarshal(raw, &lights); err != nil {
		return nil, fmt.Errorf("failed to decode lights response: %w", err)
	}
	return lights, nil
}

// GetLight returns a single light. State is always re-fetched from the
// bridge; nothing is cached locally.
func (c *Client) GetLight(ctx context.Context, id int) (Light, error) {
	raw, err := c.Call(ctx, http.MethodGet, fmt.Sprintf("lights/%d", id), nil)
	if err != nil {
		return Light{}, err
	}
	var light Light
	if err := json.Unmarshal(raw, &light); err != nil {
		return Light{}, fmt.Errorf("failed to decode light response: %w", err)
	}
	return light, nil
}

// LightIsOn reports whether the light is currently on.
func (c *Client) LightIsOn(ctx context.Context, id int) (bool, error) {
	light, err := c.GetLight(ctx, id)
	if err != nil {
		return false, err
	}
	return light.State.On, nil
}

// ToggleLight reads the current on/off state and writes the negation.
// The read and write are two separate requests, so a concurrent
// controller can race this; the bridge API has no atomic toggle.
func (c *Client) ToggleLight(ctx context.Context, id int) error {
	on, err := c.LightIsOn(ctx, id)
	if err != nil {
		return err
	}
	_, err = c.Call(ctx, http.MethodPut, fmt.Sprintf("lights/%d/state", id), map[string]any{"on": !on})
	return err
}

// ToggleGroup toggles every light in the named config group, in order.
// The first failure aborts the walk; already-toggled lights are not
// rolled back.
func (c *Client) ToggleGroup(ctx context.Context, name string) error {
	group, err := c.cfg.Group(name)
	if err != nil {
		return err
	}
	for _, id := range group.Lights {
		if err := c.ToggleLight(ctx, id); err != nil {
			return errors.WrapErrorf(err, "failed to toggle light %d in group %q", id, name)
		}
	}
	return nil
}

// SetLightState applies only the fields set on the update. An update
// with no fields performs no request at all.
func (c *Client) SetLightState(ctx context.Context, id int, update StateUpdate) error {
	body := update.wireBody()
	if body == nil {
		c.logger.Debug("no state fields to set", "light", id)
		return nil
	}
	_, err := c.Call(ctx, http.MethodPut, fmt.Sprintf("lights/%d/state", id), body)
	return err
}
