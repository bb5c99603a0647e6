package closet

// Kind discriminates the two collection flavours a user owns: categories of
// saved products and outfit boards. Both share the same operations.
type Kind string

const (
	KindCategory Kind = "category"
	KindOutfit   Kind = "outfit"
)

func ParseKind(s string) (Kind, bool) {
	switch s {
	case "categories":
		return KindCategory, true
	case "outfits":
		return KindOutfit, true
	default:
		return "", false
	}
}

type Collection struct {
	ID       string         `json:"id"`
	UserID   string         `json:"-"`
	Kind     Kind           `json:"kind"`
	Name     string         `json:"name"`
	Products []SavedProduct `json:"products"`
}

// SavedProduct is the record written under a collection. Re-saving the same
// ID merges the new fields over the stored ones.
type SavedProduct struct {
	ID    string `json:"id"`
	Brand string `json:"brand"`
	Price string `json:"price"`
	Link  string `json:"link"`
	Image string `json:"image"`
}
