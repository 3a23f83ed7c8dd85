package validation

const (
	// Commission percentage ceiling
	MaxPercentage = 100.0

	// Accepted date layouts for filter ranges
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
)
