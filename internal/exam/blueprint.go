package exam

// Blueprint is the fixed quota table for one paper type.
type Blueprint struct {
	PaperType string `json:"paper_type"`
	Choose    int    `json:"choose"`
	Fill      int    `json:"fill"`
	Two       int    `json:"two"`
	FivePairs int    `json:"five_pairs"`
	Ten       int    `json:"ten"`
}

// FiveItems is the number of five-mark templates drawn to fill the pairs.
func (b Blueprint) FiveItems() int { return 2 * b.FivePairs }

var (
	Blueprint50 = Blueprint{PaperType: "50", Choose: 3, Fill: 3, Two: 2, FivePairs: 4, Ten: 3}
	Blueprint75 = Blueprint{PaperType: "75", Choose: 5, Fill: 5, Two: 5, FivePairs: 5, Ten: 5}
)

// BlueprintFor returns the quota table for a paper type. Only "50" selects
// the smaller table; every other value, including "", gets the "75" table.
func BlueprintFor(paperType string) Blueprint {
	if paperType == Blueprint50.PaperType {
		return Blueprint50
	}
	return Blueprint75
}
