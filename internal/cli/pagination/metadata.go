package pagination

// Meta describes the window a list command returned.
type Meta struct {
	Offset     int  `json:"offset"      yaml:"offset"`
	Limit      int  `json:"limit"       yaml:"limit"`
	Returned   int  `json:"returned"    yaml:"returned"`
	TotalItems int  `json:"total_items" yaml:"total_items"`
	HasMore    bool `json:"has_more"    yaml:"has_more"`
}

// NewMeta creates metadata for params applied to totalCount items.
func NewMeta(params Params, totalCount int) Meta {
	start, end := params.Window(totalCount)
	return Meta{
		Offset:     start,
		Limit:      params.Limit,
		Returned:   end - start,
		TotalItems: totalCount,
		HasMore:    end < totalCount,
	}
}
