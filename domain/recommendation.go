package domain

type Recommendation struct {
	Rank        int     `json:"rank"`
	ProductCode string  `json:"product_code"`
	Name        string  `json:"name"`
	Score       float64 `json:"score"`     // rounded for display
	RawScore    float64 `json:"raw_score"` // as stored in the similarity matrix
}
