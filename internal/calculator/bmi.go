package calculator

type BMIResult struct {
	Weight   float64 `json:"inputWeight"`
	Height   float64 `json:"inputHeight"`
	Score    float64 `json:"bmiScore"`
	Category string  `json:"category"`
}

// BMI computes the body mass index for a weight in kilograms and a height in
// metres.
func BMI(weight, height float64) (BMIResult, error) {
	if !finite(weight) || weight <= 0 {
		return BMIResult{}, invalid("weight", "must be greater than 0")
	}
	if !finite(height) || height <= 0 {
		return BMIResult{}, invalid("height", "must be greater than 0")
	}

	bmi := weight / (height * height)
	if !finite(bmi) {
		return BMIResult{}, invalid("height", "is too small")
	}

	return BMIResult{
		Weight:   weight,
		Height:   height,
		Score:    round2(bmi),
		Category: bmiCategory(bmi),
	}, nil
}

func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 24.9:
		return "Normal Weight"
	case bmi < 29.9:
		return "Overweight"
	default:
		return "Obese"
	}
}
