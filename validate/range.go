package validate

const floatingPointTolerance = 0.000001

// NonNegative reports whether value is a valid length in mm.
func NonNegative(value float64) bool {
	return value >= 0
}

// TaperAngle reports whether an angle in degrees lies in [0, 90).
func TaperAngle(value float64) bool {
	return value >= 0 && value < 90
}

// Fraction reports whether value is a valid isotopic fraction.
func Fraction(value float64) bool {
	return value >= -floatingPointTolerance && value <= 1+floatingPointTolerance
}
