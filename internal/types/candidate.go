package types

// Candidate is a scored outfit combination in the selection pool. Items holds
// the member ids in assembly order (shirt, pants, shoes, then any belt,
// jacket, watch, undershirt); the core ids are duplicated as named fields so
// the selector can compute group keys without re-parsing the slice.
type Candidate struct {
	Items           []string `json:"items"`
	Score           float64  `json:"score"`
	ShirtID         string   `json:"shirtId"`
	PantsID         string   `json:"pantsId"`
	ShoesID         string   `json:"shoesId"`
	JacketID        string   `json:"jacketId,omitempty"`
	DominantCapsule string   `json:"dominantCapsule"`
	Tuck            string   `json:"tuck"`
}
