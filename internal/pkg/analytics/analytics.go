package analytics

import "time"

// ChartData is the payload served by the /api/data endpoint.
type ChartData struct {
	Labels    []string `json:"labels"`
	Values    []int    `json:"values"`
	Timestamp string   `json:"timestamp"`
}

var (
	sampleLabels = []string{"January", "February", "March", "April", "May", "June"}
	sampleValues = []int{65, 59, 80, 81, 56, 55}
)

// Sample returns the demo dataset with a timestamp taken from now. In a real
// deployment this would come from a database or an analytics pipeline.
func Sample(now time.Time) ChartData {
	return ChartData{
		Labels:    append([]string(nil), sampleLabels...),
		Values:    append([]int(nil), sampleValues...),
		Timestamp: now.Format(time.RFC3339),
	}
}
