package weather

import "time"

const (
	// DefaultGeoURL is the IP geolocation endpoint (ip-api.com JSON API).
	DefaultGeoURL = "http://ip-api.com/json"

	// DefaultWeatherURL is the plain-text weather endpoint (wttr.in).
	DefaultWeatherURL = "https://wttr.in"

	// DefaultTimeout bounds each external call.
	DefaultTimeout = 5 * time.Second

	// conditionsFormat asks wttr.in for "<condition> <temperature>", e.g. "Sunny +30°C".
	conditionsFormat = "%C %t"
)
