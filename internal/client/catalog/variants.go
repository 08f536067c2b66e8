// Package catalog covers read-only product browsing: listing and the
// variant-selection rules a detail view needs before an item can enter
// the cart.
package catalog

import "github.com/booshananamudara/zoura-mobile/internal/client/models"

// Axis names reported when a selection is incomplete.
const (
	AxisColor = "color"
	AxisSize  = "size"
)

// Selection is an immutable snapshot of a variant choice on one product.
// Choosing an axis value yields a new Selection; all methods are pure
// functions of the snapshot.
type Selection struct {
	product *models.Product
	color   string
	size    string
}

func NewSelection(p *models.Product) Selection {
	return Selection{product: p}
}

// WithColor returns a copy with the color axis chosen.
func (s Selection) WithColor(color string) Selection {
	s.color = color
	return s
}

// WithSize returns a copy with the size axis chosen.
func (s Selection) WithSize(size string) Selection {
	s.size = size
	return s
}

func (s Selection) Color() string { return s.color }
func (s Selection) Size() string  { return s.size }

// Colors returns the distinct non-empty colors across variants, in first
// appearance order.
func (s Selection) Colors() []string {
	return s.axisValues(func(v models.Variant) string { return v.Color })
}

// Sizes returns the distinct non-empty sizes across variants, in first
// appearance order.
func (s Selection) Sizes() []string {
	return s.axisValues(func(v models.Variant) string { return v.Size })
}

func (s Selection) axisValues(get func(models.Variant) string) []string {
	seen := make(map[string]struct{})
	values := []string{}
	for _, v := range s.product.Variants {
		val := get(v)
		if val == "" {
			continue
		}
		if _, ok := seen[val]; ok {
			continue
		}
		seen[val] = struct{}{}
		values = append(values, val)
	}
	return values
}

// Match resolves the chosen axes to the variant agreeing on every
// populated axis, or nil when the selection is incomplete or no variant
// matches. A product with a single axis-less variant resolves to it
// unconditionally.
func (s Selection) Match() *models.Variant {
	variants := s.product.Variants
	if len(variants) == 0 {
		return nil
	}
	if len(variants) == 1 && variants[0].Color == "" && variants[0].Size == "" {
		return &variants[0]
	}

	needColor := len(s.Colors()) > 0
	needSize := len(s.Sizes()) > 0
	if needColor && s.color == "" {
		return nil
	}
	if needSize && s.size == "" {
		return nil
	}

	for i := range variants {
		v := &variants[i]
		if needColor && v.Color != s.color {
			continue
		}
		if needSize && v.Size != s.size {
			continue
		}
		return v
	}
	return nil
}

// Complete reports whether every axis with at least one option has been
// chosen and a matching variant exists. Products with zero variants, or a
// single variant defining no axis, count as auto-selected.
func (s Selection) Complete() bool {
	if len(s.product.Variants) == 0 {
		return true
	}
	return s.Match() != nil
}

// MissingAxes names the axes still blocking the selection, so the view can
// tell the user exactly what to pick.
func (s Selection) MissingAxes() []string {
	missing := []string{}
	if len(s.product.Variants) == 0 {
		return missing
	}
	if len(s.Colors()) > 0 && s.color == "" {
		missing = append(missing, AxisColor)
	}
	if len(s.Sizes()) > 0 && s.size == "" {
		missing = append(missing, AxisSize)
	}
	return missing
}

// DisplayPrice is the base price, or the matched variant's override when
// the selection is complete and the variant defines one.
func (s Selection) DisplayPrice() string {
	if v := s.Match(); v != nil && v.Price != "" {
		return v.Price
	}
	return s.product.Price
}

// AvailableStock is the matched variant's stock once selected; before
// that, the sum across all variants. Products without variants expose
// their own stock field.
func (s Selection) AvailableStock() int {
	if len(s.product.Variants) == 0 {
		return s.product.Stock
	}
	if v := s.Match(); v != nil {
		return v.Stock
	}
	total := 0
	for _, v := range s.product.Variants {
		total += v.Stock
	}
	return total
}
