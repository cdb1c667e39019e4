package models

// HealthLog captures one day's health metrics. At most one log exists per
// day key; a write for an existing day replaces every field but keeps the id.
type HealthLog struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"` // YYYY-MM-DD
	Steps    int     `json:"steps"`
	Sleep    float64 `json:"sleep"` // hours
	Water    int     `json:"water"` // glasses
	Calories int     `json:"calories"`
}
