// Package client is the HTTP client the control CLI uses to drive a
// running notify service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	statusTimeout = 2 * time.Second
	notifyTimeout = 5 * time.Second
)

type StatusInfo struct {
	Status       string   `json:"status"`
	AudioBackend string   `json:"audio_backend"`
	Platform     string   `json:"platform"`
	Sounds       []string `json:"sounds"`
	Port         int      `json:"port"`
	Timestamp    string   `json:"timestamp"`
}

type Client struct {
	baseURL string
	hc      *http.Client
}

func New(baseURL string) *Client {
	return &Client{baseURL: baseURL, hc: &http.Client{}}
}

// Status queries the running service.
func (c *Client) Status() (*StatusInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), statusTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/status", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status endpoint: %s", resp.Status)
	}
	var info StatusInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

// IsRunning reports whether a service answers on the base URL.
func (c *Client) IsRunning() bool {
	_, err := c.Status()
	return err == nil
}

// Notify sends a notification request.
func (c *Client) Notify(message, sound string) error {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	payload, err := json.Marshal(map[string]string{
		"message": message,
		"sound":   sound,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/notify", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("notify: %s", resp.Status)
	}
	return nil
}

// Test plays a sound directly via the ad hoc test route.
func (c *Client) Test(sound string) error {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/test/"+sound, nil)
	if err != nil {
		return err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("test: %s", resp.Status)
	}
	return nil
}

// Shutdown asks the service to stop.
func (c *Client) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), statusTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/shutdown", nil)
	if err != nil {
		return err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("shutdown: %s", resp.Status)
	}
	return nil
}
