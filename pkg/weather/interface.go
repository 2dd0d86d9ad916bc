package weather

import "context"

// IWeather looks up the caller's city and its current conditions.
type IWeather interface {
	// Locate geolocates ipHint. An empty or private hint resolves the caller's public IP.
	Locate(ctx context.Context, ipHint string) (Location, error)

	// Conditions returns a short human-readable weather line for city.
	// An empty city lets the weather service resolve the caller's location.
	Conditions(ctx context.Context, city string) (string, error)
}

// New creates a weather client.
func New(cfg Config) (IWeather, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &client{
		geoURL:     cfg.GeoURL,
		weatherURL: cfg.WeatherURL,
		httpClient: cfg.HTTPClient,
	}, nil
}
