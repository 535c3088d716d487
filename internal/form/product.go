package form

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"catalog/admin/internal/domain"
	"catalog/admin/internal/format"
)

// ProductForm holds raw submitted values; numbers stay strings until Payload
// so that "missing" and "zero" remain distinguishable.
type ProductForm struct {
	Name        string `form:"name" validate:"required,min=2,max=100"`
	Description string `form:"description" validate:"max=500"`
	Price       string `form:"price" validate:"required,decimal_number,decimal_gt0"`
	Stock       string `form:"stock" validate:"required,whole_number,whole_gte0"`
	CategoryID  string `form:"categoryId" validate:"required,whole_number"`
}

// NewProductForm returns the initial values for creating (nil) or editing p.
// A new product starts with stock 0.
func NewProductForm(p *domain.Product) ProductForm {
	if p == nil {
		return ProductForm{Stock: "0"}
	}
	return ProductForm{
		Name:        p.Name,
		Description: p.Description,
		Price:       strconv.FormatFloat(p.Price.Float64(), 'f', 2, 64),
		Stock:       strconv.Itoa(p.Stock),
		CategoryID:  strconv.FormatInt(p.CategoryID, 10),
	}
}

func (f ProductForm) Normalize() ProductForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Price = strings.TrimSpace(f.Price)
	f.Stock = strings.TrimSpace(f.Stock)
	f.CategoryID = strings.TrimSpace(f.CategoryID)
	return f
}

func (f ProductForm) DescriptionLength() int {
	return utf8.RuneCountInString(f.Description)
}

// SelectedCategory returns the chosen category id, or 0.
func (f ProductForm) SelectedCategory() int64 {
	id, err := strconv.ParseInt(f.CategoryID, 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// PricePreview is the formatted price, or "" while the price does not parse.
func (f ProductForm) PricePreview() string {
	price, err := parseDecimal(f.Price)
	if err != nil || f.Price == "" {
		return ""
	}
	return format.Currency(price)
}

// Payload converts validated values; call it only once ProductRules passed.
func (f ProductForm) Payload() (domain.ProductPayload, error) {
	price, err := parseDecimal(f.Price)
	if err != nil {
		return domain.ProductPayload{}, fmt.Errorf("invalid price %q: %w", f.Price, err)
	}
	stock, err := strconv.Atoi(f.Stock)
	if err != nil {
		return domain.ProductPayload{}, fmt.Errorf("invalid stock %q: %w", f.Stock, err)
	}
	categoryID, err := strconv.ParseInt(f.CategoryID, 10, 64)
	if err != nil {
		return domain.ProductPayload{}, fmt.Errorf("invalid category id %q: %w", f.CategoryID, err)
	}

	return domain.ProductPayload{
		Name:        f.Name,
		Description: f.Description,
		Price:       price,
		Stock:       stock,
		CategoryID:  categoryID,
	}, nil
}

// ProductRules returns the product rules with categoryId restricted to
// the given selectable categories.
func ProductRules(selectable []domain.Category) func(ProductForm) Errors {
	ids := make(map[int64]struct{}, len(selectable))
	for _, c := range selectable {
		ids[c.ID] = struct{}{}
	}

	return func(f ProductForm) Errors {
		errs := check(f)
		if errs.Has("categoryId") {
			return errs
		}

		id := f.SelectedCategory()
		if id <= 0 {
			errs["categoryId"] = messages["categoryId.required"]
			return errs
		}
		if _, ok := ids[id]; !ok {
			errs["categoryId"] = msgCategoryGone
		}
		return errs
	}
}
