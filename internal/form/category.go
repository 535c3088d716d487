package form

import (
	"strings"
	"unicode/utf8"

	"catalog/admin/internal/domain"
)

const DescriptionMax = 500

type CategoryForm struct {
	Name        string `form:"name" validate:"required,min=2,max=100"`
	Description string `form:"description" validate:"max=500"`
}

// NewCategoryForm returns the initial values for creating (nil) or editing c.
func NewCategoryForm(c *domain.Category) CategoryForm {
	if c == nil {
		return CategoryForm{}
	}
	return CategoryForm{
		Name:        c.Name,
		Description: c.Description,
	}
}

// Normalize trims surrounding whitespace from every field.
func (f CategoryForm) Normalize() CategoryForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	return f
}

func (f CategoryForm) DescriptionLength() int {
	return utf8.RuneCountInString(f.Description)
}

func (f CategoryForm) Payload() domain.CategoryPayload {
	return domain.CategoryPayload{
		Name:        f.Name,
		Description: f.Description,
	}
}

// ValidateCategory applies the category rules.
func ValidateCategory(f CategoryForm) Errors {
	return check(f)
}
