package datasource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weather-widget/models"
)

// DefaultBaseURL is the OpenWeatherMap 2.5 API root
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherMapClient looks up current weather with the OpenWeatherMap API
type OpenWeatherMapClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Ensure OpenWeatherMapClient implements Lookuper
var _ Lookuper = (*OpenWeatherMapClient)(nil)

// NewOpenWeatherMapClient creates a new OpenWeatherMap client.
// A zero timeout leaves requests unbounded
func NewOpenWeatherMapClient(apiKey, baseURL string, timeout time.Duration) *OpenWeatherMapClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &OpenWeatherMapClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the provider name
func (c *OpenWeatherMapClient) Name() string {
	return "OpenWeatherMap"
}

// statusCode is the response's "cod" field, which the API sends either as a
// number (200) or as a string ("404")
type statusCode string

func (s *statusCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = statusCode(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("cod: %w", err)
	}
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		*s = statusCode(strconv.FormatInt(i, 10))
		return nil
	}
	*s = statusCode(n.String())
	return nil
}

func (s statusCode) notFound() bool {
	return s == "404" || s == "400"
}

// currentWeatherResponse is the subset of /weather the widget reads
type currentWeatherResponse struct {
	Cod  statusCode `json:"cod"`
	Name string     `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
}

// Lookup fetches current weather for a city. The city is sent as given,
// including the empty string
func (c *OpenWeatherMapClient) Lookup(ctx context.Context, city string) (models.WeatherResult, error) {
	// Build URL
	endpoint := fmt.Sprintf("%s/weather", c.baseURL)
	params := url.Values{}
	params.Add("q", city)
	params.Add("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return models.WeatherResult{}, &TransportError{City: city, Op: "create request", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.WeatherResult{}, &TransportError{City: city, Op: "execute request", Err: err}
	}
	defer resp.Body.Close()

	// The API answers unknown cities with a 404 status and a JSON body, so
	// the status line is ignored and the body decides
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.WeatherResult{}, &TransportError{City: city, Op: "read response body", Err: err}
	}

	var response currentWeatherResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return models.WeatherResult{}, &TransportError{City: city, Op: "parse response", Err: err}
	}

	return classify(response, city)
}

// classify turns a decoded response into a result
func classify(response currentWeatherResponse, city string) (models.WeatherResult, error) {
	if response.Cod.notFound() {
		return models.NotFoundResult(), nil
	}
	if len(response.Weather) == 0 {
		return models.WeatherResult{}, &TransportError{City: city, Op: "classify response", Err: ErrMalformedResponse}
	}

	main := response.Weather[0].Main
	category, matched := models.MatchCategory(main)
	if !matched {
		category = models.Category(main)
	}

	return models.WeatherResult{
		City:       response.Name,
		Country:    response.Sys.Country,
		TempKelvin: response.Main.Temp,
		Category:   category,
		Matched:    matched,
	}, nil
}
