package types

import "github.com/go-playground/validator/v10"

// TuckTucked is the tuck style recorded on every generated outfit.
const TuckTucked = "Tucked"

// CorpusOutfit is one persisted outfit in the corpus document.
type CorpusOutfit struct {
	ID    string   `json:"id" validate:"required,min=1"`
	Items []string `json:"items" validate:"required,min=1,dive,required"`
	Tuck  string   `json:"tuck,omitempty"`
}

// CorpusDocument is the on-disk outfit corpus format.
type CorpusDocument struct {
	Outfits []CorpusOutfit `json:"outfits"`
}

// Validate validates the CorpusOutfit using the validator.
func (o *CorpusOutfit) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}
