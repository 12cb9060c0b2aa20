// Package ndex is a minimal client for the NDEx REST API covering the four
// operations the loader needs: fetch a network as CX2, list the authenticated
// user's network summaries, create a network, update a network.
package ndex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nestloader/internal/cx2"
)

// PageSize is the summary page size; listing keeps paging while the server
// returns a full page.
const PageSize = 1000

const defaultTimeout = 5 * time.Minute

// NetworkSummary is the slice of a server-side summary the loader cares
// about.
type NetworkSummary struct {
	Name       string `json:"name"`
	ExternalID string `json:"externalId"`
}

// Service is the loader-facing surface of the NDEx API.
type Service interface {
	GetNetwork(ctx context.Context, id string) (*cx2.Network, error)
	UserNetworkSummaries(ctx context.Context) ([]NetworkSummary, error)
	CreateNetwork(ctx context.Context, net *cx2.Network, visibility string) (string, error)
	UpdateNetwork(ctx context.Context, id string, net *cx2.Network) error
}

type Client struct {
	base      string
	username  string
	password  string
	userAgent string
	client    *http.Client
}

// NewClient builds a client for server (hostname without scheme, per the
// credentials file) authenticated as username/password.
func NewClient(server, username, password, userAgent string) *Client {
	base := server
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}
	return &Client{
		base:      strings.TrimRight(base, "/"),
		username:  username,
		password:  password,
		userAgent: userAgent,
		client:    &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, fmt.Errorf("%s %s: ndex error %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return resp, nil
}

// GetNetwork fetches a network by id and decodes the CX2 stream.
func (c *Client) GetNetwork(ctx context.Context, id string) (*cx2.Network, error) {
	resp, err := c.do(ctx, http.MethodGet, "/v3/networks/"+id, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	net, err := cx2.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("network %s: %w", id, err)
	}
	return net, nil
}

// UserNetworkSummaries lists every network summary owned by the
// authenticated user, following pages until a short page arrives.
func (c *Client) UserNetworkSummaries(ctx context.Context) ([]NetworkSummary, error) {
	userID, err := c.userID(ctx)
	if err != nil {
		return nil, err
	}
	var all []NetworkSummary
	for offset := 0; ; offset += PageSize {
		path := fmt.Sprintf("/v2/user/%s/networksummary?offset=%d&limit=%d", userID, offset, PageSize)
		resp, err := c.do(ctx, http.MethodGet, path, nil, "")
		if err != nil {
			return nil, err
		}
		var page []NetworkSummary
		err = json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("decode network summaries: %w", err)
		}
		all = append(all, page...)
		if len(page) < PageSize {
			return all, nil
		}
	}
}

func (c *Client) userID(ctx context.Context) (string, error) {
	path := "/v2/user?username=" + url.QueryEscape(c.username)
	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	var user struct {
		ExternalID string `json:"externalId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return "", fmt.Errorf("decode user record: %w", err)
	}
	if user.ExternalID == "" {
		return "", fmt.Errorf("no user record for %q", c.username)
	}
	return user.ExternalID, nil
}

// CreateNetwork uploads a new network with the given visibility and returns
// the id the server assigned to it.
func (c *Client) CreateNetwork(ctx context.Context, net *cx2.Network, visibility string) (string, error) {
	payload, err := net.MarshalCX2()
	if err != nil {
		return "", fmt.Errorf("encode network: %w", err)
	}
	path := "/v3/networks?visibility=" + url.QueryEscape(visibility)
	resp, err := c.do(ctx, http.MethodPost, path, bytes.NewReader(payload), "application/json")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	// the server answers with the URI of the new network
	loc := resp.Header.Get("Location")
	if loc == "" {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		loc = strings.Trim(strings.TrimSpace(string(body)), `"`)
	}
	if loc == "" {
		return "", fmt.Errorf("create network: server returned no network URI")
	}
	parts := strings.Split(strings.TrimRight(loc, "/"), "/")
	return parts[len(parts)-1], nil
}

// UpdateNetwork replaces the network stored under id.
func (c *Client) UpdateNetwork(ctx context.Context, id string, net *cx2.Network) error {
	payload, err := net.MarshalCX2()
	if err != nil {
		return fmt.Errorf("encode network: %w", err)
	}
	resp, err := c.do(ctx, http.MethodPut, "/v3/networks/"+id, bytes.NewReader(payload), "application/json")
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
