package domain

import "strings"

var statusLabels = map[Status]string{
	StatusOK:      "Sufficient",
	StatusBuy:     "Purchase",
	StatusProduce: "Produce",
}

var statusValues = map[string]Status{
	"ok":      StatusOK,
	"buy":     StatusBuy,
	"produce": StatusProduce,
}

// StatusLabel returns a human-readable label for an analysis status.
func StatusLabel(status Status) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}

	return "Unknown"
}

// ParseStatus returns the status for a given token (case-insensitive).
func ParseStatus(token string) (Status, bool) {
	status, ok := statusValues[strings.ToLower(token)]

	return status, ok
}
