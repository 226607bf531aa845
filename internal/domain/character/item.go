package character

import (
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/currency"
)

// Item is an inventory entry. Value is the free-text price string the
// host platform stores ("10 gp"); it is parsed on demand and normalized
// to copper for settlement arithmetic.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"qty"`
	Value    string  `json:"value,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
	Category string  `json:"category,omitempty"`
}

// UnitValueCopper returns the copper value of a single unit of the item
func (i *Item) UnitValueCopper() int {
	v := currency.Parse(i.Value)
	return currency.ToCopper(v.Amount, v.Denomination)
}

// TotalValueCopper returns the copper value of the whole stack
func (i *Item) TotalValueCopper() int {
	qty := i.Quantity
	if qty <= 0 {
		return 0
	}
	return i.UnitValueCopper() * qty
}
