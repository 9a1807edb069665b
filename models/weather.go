package models

import (
	"fmt"
)

// KelvinOffset converts Kelvin to Celsius
const KelvinOffset = 273.15

// WeatherResult is the outcome of one lookup. When NotFound is set the API
// reported an unknown city and no other field is populated
type WeatherResult struct {
	City       string   `json:"city,omitempty"`
	Country    string   `json:"country,omitempty"`
	TempKelvin float64  `json:"tempKelvin,omitempty"`
	Category   Category `json:"category,omitempty"`
	Matched    bool     `json:"matched"` // Category is a registered one
	NotFound   bool     `json:"notFound"`
}

// NotFoundResult is the result for a city the API does not know
func NotFoundResult() WeatherResult {
	return WeatherResult{Category: NotFound, Matched: true, NotFound: true}
}

// Celsius returns the temperature in degrees Celsius
func (r WeatherResult) Celsius() float64 {
	return r.TempKelvin - KelvinOffset
}

// FormatTemperature renders the temperature as shown in the panel, e.g. "26.85°C"
func (r WeatherResult) FormatTemperature() string {
	return fmt.Sprintf("%.2f°C", r.Celsius())
}

// Location renders "City, CC"
func (r WeatherResult) Location() string {
	return fmt.Sprintf("%s, %s", r.City, r.Country)
}

// Icon returns the icon for the result's category; unmatched categories have none
func (r WeatherResult) Icon() Icon {
	if !r.Matched {
		return Icon{}
	}
	return IconFor(r.Category)
}
