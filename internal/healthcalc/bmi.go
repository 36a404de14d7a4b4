// Package healthcalc derives display values from raw records: the body mass
// index of a user and human readable labels for appointments, reminders and
// facilities.
package healthcalc

import (
	"errors"
	"math"
)

type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal weight"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

var ErrInvalidMeasurement = errors.New("height must be greater than zero and weight must not be negative")

type BMI struct {
	Value    float64     `json:"value"`
	Category BMICategory `json:"category"`
}

// ComputeBMI returns weight / (height/100)^2 rounded to one decimal place.
// The category is taken from the rounded value so that both always agree.
func ComputeBMI(weightKg, heightCm float64) (BMI, error) {
	if heightCm <= 0 || weightKg < 0 || math.IsNaN(weightKg) || math.IsNaN(heightCm) {
		return BMI{}, ErrInvalidMeasurement
	}

	meters := heightCm / 100
	value := math.Round(weightKg/(meters*meters)*10) / 10

	return BMI{Value: value, Category: CategorizeBMI(value)}, nil
}

// CategorizeBMI buckets a BMI value into half-open intervals.
func CategorizeBMI(value float64) BMICategory {
	switch {
	case value < 18.5:
		return BMIUnderweight
	case value < 25:
		return BMINormal
	case value < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}
