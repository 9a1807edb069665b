package datasource

import (
	"context"
	"errors"
	"fmt"

	"weather-widget/models"
)

// Lookuper fetches the current weather for a city name.
//
// A city the API does not know is not an error: it comes back as a
// NotFound result. Errors are reserved for transport failures
type Lookuper interface {
	Lookup(ctx context.Context, city string) (models.WeatherResult, error)
}

// ErrMalformedResponse is returned when the body decodes but lacks the
// fields a result needs
var ErrMalformedResponse = errors.New("malformed weather response")

// TransportError wraps anything that went wrong between sending the request
// and classifying the response
type TransportError struct {
	City string
	Op   string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to %s for %q: %v", e.Op, e.City, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
