package usecase

import (
	"context"
	"fmt"

	"kuma-assistant/internal/intent"
)

// handleWeather never fails: lookup errors degrade to a generic label or a canned reply.
func (uc *implUseCase) handleWeather(ctx context.Context, in intent.Input) (string, error) {
	if uc.weather == nil {
		return fmt.Sprintf(intent.ReplyWeatherFailed, intent.DefaultCityLabel), nil
	}

	city, lookup := intent.DefaultCityLabel, ""
	loc, err := uc.weather.Locate(ctx, in.ClientIP)
	if err != nil {
		uc.l.Warnf(ctx, "intent.usecase.handleWeather.Locate: %v", err)
	} else {
		city, lookup = loc.City, loc.City
	}

	conditions, err := uc.weather.Conditions(ctx, lookup)
	if err != nil {
		uc.l.Warnf(ctx, "intent.usecase.handleWeather.Conditions: %v", err)
		return fmt.Sprintf(intent.ReplyWeatherFailed, city), nil
	}
	return fmt.Sprintf(intent.ReplyWeather, conditions, city), nil
}
