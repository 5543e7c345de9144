package domain

// RFMInput is a customer's recency (days since last purchase), frequency
// (number of purchases) and monetary (total spent) values.
type RFMInput struct {
	Recency   int     `json:"recency"`
	Frequency int     `json:"frequency"`
	Monetary  float64 `json:"monetary"`
}

// Vector returns the features in model order: recency, frequency, monetary.
func (r RFMInput) Vector() []float64 {
	return []float64{float64(r.Recency), float64(r.Frequency), r.Monetary}
}

type Segment struct {
	ClusterIndex int    `json:"cluster_index"`
	Label        string `json:"label"`
	Color        string `json:"color"`
}

const (
	LabelAtRisk     = "At-Risk"
	LabelHighValue  = "High-Value"
	LabelRegular    = "Regular"
	LabelOccasional = "Occasional"
	LabelUnknown    = "Unknown Segment"
)

// ClusterLabelMap maps a cluster index to its segment label.
type ClusterLabelMap map[int]string

func DefaultClusterLabels() ClusterLabelMap {
	return ClusterLabelMap{
		0: LabelAtRisk,
		1: LabelHighValue,
		2: LabelRegular,
		3: LabelOccasional,
	}
}

// Label never fails: unmapped indices resolve to LabelUnknown.
func (m ClusterLabelMap) Label(cluster int) string {
	if label, ok := m[cluster]; ok && label != "" {
		return label
	}
	return LabelUnknown
}

var segmentColors = map[string]string{
	LabelAtRisk:     "red",
	LabelHighValue:  "green",
	LabelRegular:    "orange",
	LabelOccasional: "blue",
}

// SegmentColor is the display color for a label; gray when it has none.
func SegmentColor(label string) string {
	if c, ok := segmentColors[label]; ok {
		return c
	}
	return "gray"
}
