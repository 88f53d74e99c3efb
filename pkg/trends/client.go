package trends

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/valyala/fasthttp"
	"golang.org/x/text/language"

	"seoagent-go/pkg/logger"
)

// ErrUnavailable signals that the trends service has no volume data for a
// keyword. Callers fall back to the heuristic estimator.
var ErrUnavailable = errors.New("trends: volume data unavailable")

// VolumeProvider is the optional external volume-lookup collaborator.
type VolumeProvider interface {
	Lookup(ctx context.Context, keyword, country string) (int, error)
}

// Config holds trends client configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client queries a Google-Trends-style search interest API.
type Client struct {
	config Config
	client *fasthttp.Client
	log    *logger.Logger
}

// trendsResponse is the subset of the API response the client reads.
// AverageInterest is a 0-100 relative interest value.
type trendsResponse struct {
	AverageInterest  float64 `json:"average_interest"`
	InterestOverTime []struct {
		Timestamp string `json:"timestamp"`
		Value     int    `json:"value"`
	} `json:"interest_over_time"`
}

const (
	defaultBaseURL = "https://serpapi.com"
	defaultTimeout = 30 * time.Second
)

// NewClient creates a trends lookup client. An empty base URL targets the
// public SerpApi endpoint, so a bare API key is a complete configuration.
func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}

	return &Client{
		config: config,
		client: &fasthttp.Client{
			ReadTimeout:     config.Timeout,
			WriteTimeout:    config.Timeout,
			MaxConnsPerHost: 50,
		},
		log: logger.GetLogger().WithComponent("trends_client"),
	}, nil
}

// Lookup returns the estimated monthly search volume for a keyword in a
// country, or ErrUnavailable when the service has no data. The country must
// be a valid ISO region code.
func (c *Client) Lookup(ctx context.Context, keyword, country string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	region, err := language.ParseRegion(country)
	if err != nil {
		return 0, fmt.Errorf("invalid country code %q: %w", country, err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	params := url.Values{}
	params.Set("engine", "google_trends")
	params.Set("q", keyword)
	params.Set("geo", region.String())
	if c.config.APIKey != "" {
		params.Set("api_key", c.config.APIKey)
	}

	req.SetRequestURI(c.config.BaseURL + "/search?" + params.Encode())
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	if err := c.client.DoTimeout(req, resp, c.config.Timeout); err != nil {
		return 0, fmt.Errorf("trends request failed: %w", err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return 0, fmt.Errorf("trends API returned status %d", resp.StatusCode())
	}

	var parsed trendsResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return 0, fmt.Errorf("failed to decode trends response: %w", err)
	}

	if len(parsed.InterestOverTime) == 0 || parsed.AverageInterest <= 0 {
		return 0, ErrUnavailable
	}

	// Relative interest scaled to an absolute monthly estimate.
	volume := int(parsed.AverageInterest * 100)

	c.log.WithFields(map[string]interface{}{
		"keyword": keyword,
		"geo":     region.String(),
		"volume":  volume,
	}).Debug("Trends volume resolved")

	return volume, nil
}
