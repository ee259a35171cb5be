package unit

// Scale identifies a temperature scale. Temperature conversion is
// affine (scale plus offset) and pivots through Celsius, so it cannot
// share the linear ToBase machinery of the other categories.
type Scale int

const (
	Celsius Scale = iota
	Fahrenheit
	Kelvin
)

// ScaleDef carries the aliases and display strings for one scale.
type ScaleDef struct {
	Scale   Scale
	Aliases []string
	Label   string
	Symbol  string
}

// Scales returns the temperature alias table.
func Scales() []ScaleDef {
	return scales
}

var scales = []ScaleDef{
	{Scale: Celsius, Aliases: []string{"c", "celsius", "centigrade"}, Label: "Celsius", Symbol: "°C"},
	{Scale: Fahrenheit, Aliases: []string{"f", "fahrenheit"}, Label: "Fahrenheit", Symbol: "°F"},
	{Scale: Kelvin, Aliases: []string{"k", "kelvin"}, Label: "Kelvin", Symbol: "K"},
}

// ScaleFor returns the definition for a scale.
func ScaleFor(s Scale) *ScaleDef {
	for i := range scales {
		if scales[i].Scale == s {
			return &scales[i]
		}
	}
	return nil
}

// ConvertTemperature converts between scales via the Celsius pivot.
func ConvertTemperature(value float64, from, to Scale) float64 {
	var celsius float64
	switch from {
	case Celsius:
		celsius = value
	case Fahrenheit:
		celsius = (value - 32) * 5 / 9
	case Kelvin:
		celsius = value - 273.15
	}

	switch to {
	case Fahrenheit:
		return celsius*9/5 + 32
	case Kelvin:
		return celsius + 273.15
	default:
		return celsius
	}
}
