package entity

// CleaningTier is a base package in the owner's direct cleaning hub.
type CleaningTier struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Price       int64  `json:"price" yaml:"price"`
	Description string `json:"desc" yaml:"desc"`
}

type AddOn struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Price int64  `json:"price" yaml:"price"`
	Icon  string `json:"icon,omitempty" yaml:"icon"`
}

// Quote is the derived price of a direct booking selection.
type Quote struct {
	Subtotal   int64 `json:"subtotal"`
	Discount   int64 `json:"discount"`
	FinalTotal int64 `json:"finalTotal"`
	IsBundle   bool  `json:"isBundle"`
	ItemCount  int   `json:"itemCount"`
}
