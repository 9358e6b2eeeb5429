package models

// Weather is a current-conditions snapshot used as optional analytics input.
type Weather struct {
	Temperature float64 `json:"temperature"` // °C
	Humidity    int     `json:"humidity"`    // %
	WindSpeed   float64 `json:"wind_speed"`  // m/s
	Description string  `json:"description"`
	Pressure    int     `json:"pressure"` // hPa
	IsFallback  bool    `json:"is_fallback,omitempty"`
}
