package weather

// Units is the temperature scale a reading is expressed in.
type Units string

const (
	Celsius    Units = "celsius"
	Fahrenheit Units = "fahrenheit"
)

// Valid reports whether u is one of the supported scales.
func (u Units) Valid() bool {
	return u == Celsius || u == Fahrenheit
}

// Reading is a single temperature measurement produced by a Station.
type Reading struct {
	Temperature float64 `json:"temperature"`
	Units       Units   `json:"units" validate:"oneof=celsius fahrenheit"`
}

// ReportRequest is what gets submitted to a Reporter.
// The commentator always sends Celsius; other units only reach a Reporter
// from outside callers (e.g. the reporter HTTP endpoint).
type ReportRequest struct {
	Temperature float64 `json:"temperature" validate:"gte=-30,lte=50"`
	Units       Units   `json:"units" validate:"oneof=celsius fahrenheit"`
	Comment     string  `json:"comment"`
}
