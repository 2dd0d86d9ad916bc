package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
)

type client struct {
	geoURL     string
	weatherURL string
	httpClient *http.Client
}

func (c *client) Locate(ctx context.Context, ipHint string) (Location, error) {
	endpoint := strings.TrimRight(c.geoURL, "/")
	if ip := publicIP(ipHint); ip != "" {
		endpoint += "/" + url.PathEscape(ip)
	}

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return Location{}, err
	}

	var resp geoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Location{}, fmt.Errorf("%w: decode geolocation: %v", ErrLookupFailed, err)
	}
	if resp.Status != "success" || resp.City == "" {
		return Location{}, fmt.Errorf("%w: geolocation status %q: %s", ErrLookupFailed, resp.Status, resp.Message)
	}
	return resp.Location, nil
}

func (c *client) Conditions(ctx context.Context, city string) (string, error) {
	query := url.Values{"format": {conditionsFormat}}
	endpoint := fmt.Sprintf("%s/%s?%s",
		strings.TrimRight(c.weatherURL, "/"), url.PathEscape(city), query.Encode())

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return "", fmt.Errorf("%w: empty weather response", ErrLookupFailed)
	}
	return text, nil
}

func (c *client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrLookupFailed, err)
	}
	req.Header.Set("User-Agent", "curl/8.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrLookupFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrLookupFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

// publicIP returns ip when it is a routable address, or "" for loopback,
// private and unparsable hints.
func publicIP(ip string) string {
	parsed := net.ParseIP(strings.TrimSpace(ip))
	if parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() || parsed.IsLinkLocalUnicast() {
		return ""
	}
	return parsed.String()
}
