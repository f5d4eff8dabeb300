package validator

// SetCurrentYear fixes the current year and returns a restore func.
func SetCurrentYear(year int) func() {
	previous := currentYear
	currentYear = func() int { return year }
	return func() { currentYear = previous }
}
