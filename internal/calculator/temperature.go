package calculator

const fahrenheitFormula = "(°C × 9/5) + 32 = °F"

type TemperatureResult struct {
	Celsius    float64 `json:"celsius"`
	Fahrenheit float64 `json:"fahrenheit"`
	Formula    string  `json:"formula"`
}

func CelsiusToFahrenheit(celsius float64) TemperatureResult {
	return TemperatureResult{
		Celsius:    celsius,
		Fahrenheit: celsius*9/5 + 32,
		Formula:    fahrenheitFormula,
	}
}
