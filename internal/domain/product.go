package domain

// Product is a catalog entry. Prices and ratings are kept as the exact
// strings they were authored with; arithmetic parses them on demand so
// no floating-point drift ever reaches the wire.
type Product struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          string            `json:"price"`
	OriginalPrice  string            `json:"originalPrice,omitempty"`
	Category       string            `json:"category"`
	Subcategory    string            `json:"subcategory"`
	Image          string            `json:"image"`
	Images         []string          `json:"images"`
	Rating         string            `json:"rating"`
	ReviewCount    int               `json:"reviewCount"`
	InStock        bool              `json:"inStock"`
	StockCount     *int              `json:"stockCount,omitempty"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	Badge          string            `json:"badge,omitempty"`
}

// ProductInput is a Product before the store has assigned its id. The
// yaml tags cover the embedded seed catalog.
type ProductInput struct {
	Name           string            `json:"name" yaml:"name"`
	Description    string            `json:"description" yaml:"description"`
	Price          string            `json:"price" yaml:"price"`
	OriginalPrice  string            `json:"originalPrice,omitempty" yaml:"originalPrice"`
	Category       string            `json:"category" yaml:"category"`
	Subcategory    string            `json:"subcategory" yaml:"subcategory"`
	Image          string            `json:"image" yaml:"image"`
	Images         []string          `json:"images" yaml:"images"`
	Rating         string            `json:"rating" yaml:"rating"`
	ReviewCount    int               `json:"reviewCount" yaml:"reviewCount"`
	InStock        bool              `json:"inStock" yaml:"inStock"`
	StockCount     *int              `json:"stockCount,omitempty" yaml:"stockCount"`
	Features       []string          `json:"features" yaml:"features"`
	Specifications map[string]string `json:"specifications" yaml:"specifications"`
	Badge          string            `json:"badge,omitempty" yaml:"badge"`
}

// Promotional badges the storefront renders. A product may also carry
// no badge at all.
const (
	BadgeHot     = "Hot"
	BadgeLimited = "Limited"
	BadgeNew     = "New"
)
