package weather

import (
	"errors"
	"net/http"
)

// ErrLookupFailed is returned (wrapped) for any failed geolocation or weather call.
var ErrLookupFailed = errors.New("weather lookup failed")

// Config holds weather client configuration.
type Config struct {
	GeoURL     string
	WeatherURL string
	HTTPClient *http.Client
}

// Validate fills defaults.
func (c *Config) Validate() error {
	if c.GeoURL == "" {
		c.GeoURL = DefaultGeoURL
	}
	if c.WeatherURL == "" {
		c.WeatherURL = DefaultWeatherURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Location is the result of an IP geolocation lookup.
type Location struct {
	City    string `json:"city"`
	Region  string `json:"regionName"`
	Country string `json:"country"`
}

type geoResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Location
}
