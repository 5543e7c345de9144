package domain

// Catalog is the ordered list of product codes. A code's position is its
// row/column index in the SimilarityMatrix. Lookups are exact and
// case-sensitive.
type Catalog struct {
	codes []string
	index map[string]int
}

// NewCatalog copies codes into an immutable catalog. When a code repeats,
// the first position wins.
func NewCatalog(codes []string) Catalog {
	c := Catalog{
		codes: make([]string, len(codes)),
		index: make(map[string]int, len(codes)),
	}
	copy(c.codes, codes)
	for i, code := range c.codes {
		if _, exists := c.index[code]; !exists {
			c.index[code] = i
		}
	}
	return c
}

func (c Catalog) Len() int {
	return len(c.codes)
}

func (c Catalog) IndexOf(code string) (int, bool) {
	i, ok := c.index[code]
	return i, ok
}

func (c Catalog) CodeAt(i int) string {
	return c.codes[i]
}

// Codes returns a copy of the ordered product codes.
func (c Catalog) Codes() []string {
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}

// SimilarityMatrix holds pairwise product similarity; entry (i, j) is the
// score of product j against product i.
type SimilarityMatrix [][]float64

func (m SimilarityMatrix) Dim() int {
	return len(m)
}

// ProductNameMap maps product code to display name. It may be partial.
type ProductNameMap map[string]string

// Name returns the display name for code, or code itself when unmapped.
func (m ProductNameMap) Name(code string) string {
	if name, ok := m[code]; ok && name != "" {
		return name
	}
	return code
}

type CatalogProduct struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type ProductPage struct {
	Items  []CatalogProduct `json:"items"`
	Total  int              `json:"total"`
	Offset int              `json:"offset"`
	Limit  int              `json:"limit"`
}
