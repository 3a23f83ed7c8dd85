package models

// Color is the badge colour a screen renders for a status.
type Color string

const (
	ColorDefault Color = "default"
	ColorSuccess Color = "success"
	ColorWarning Color = "warning"
	ColorError   Color = "error"
	ColorInfo    Color = "info"
)
