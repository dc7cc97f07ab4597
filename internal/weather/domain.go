package weather

import (
	"time"

	"kisanmitra/internal/domain"
	"kisanmitra/internal/i18n"
)

// Condition is the sky status of a snapshot.
type Condition string

const (
	Sunny        Condition = "Sunny"
	PartlyCloudy Condition = "Partly Cloudy"
	Cloudy       Condition = "Cloudy"
	LightRain    Condition = "Light Rain"
)

// Conditions is the fixed set a snapshot draws from.
var Conditions = []Condition{Sunny, PartlyCloudy, Cloudy, LightRain}

var conditionKeys = map[Condition]string{
	Sunny:        "weather.condition.sunny",
	PartlyCloudy: "weather.condition.partly_cloudy",
	Cloudy:       "weather.condition.cloudy",
	LightRain:    "weather.condition.light_rain",
}

// Label is the condition's display text in lang.
func (c Condition) Label(lang domain.Language) string {
	key, ok := conditionKeys[c]
	if !ok {
		return string(c)
	}
	return i18n.T(key, lang)
}

// Snapshot is one weather reading for a place. Never cached.
type Snapshot struct {
	Place        string    `json:"place"`
	TemperatureC int       `json:"temperature_c"`
	Condition    Condition `json:"condition"`
	HumidityPct  int       `json:"humidity_pct"`
	WindKph      int       `json:"wind_kph"`
	ObservedAt   time.Time `json:"observed_at"`
}
