package form

import (
	"strings"
	"testing"
	"time"

	"catalog/admin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name  string
		input CategoryForm
		field string
		msg   string
	}{
		{name: "empty name", input: CategoryForm{}, field: "name", msg: "Nome é obrigatório"},
		{name: "one char", input: CategoryForm{Name: "A"}, field: "name", msg: "Nome muito curto"},
		{name: "101 chars", input: CategoryForm{Name: strings.Repeat("a", 101)}, field: "name", msg: "Nome muito longo"},
		{name: "long description", input: CategoryForm{Name: "Livros", Description: strings.Repeat("x", 501)}, field: "description", msg: "Descrição muito longa"},
		{name: "minimal", input: CategoryForm{Name: "TV"}},
		{name: "100 runes", input: CategoryForm{Name: strings.Repeat("é", 100)}},
		{name: "500 char description", input: CategoryForm{Name: "Livros", Description: strings.Repeat("x", 500)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateCategory(tt.input)
			if tt.field == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.msg, errs[tt.field])
		})
	}
}

func TestProductRules(t *testing.T) {
	selectable := []domain.Category{{ID: 1, Name: "Eletrônicos"}, {ID: 2, Name: "Livros"}}
	rules := ProductRules(selectable)
	valid := ProductForm{Name: "Mouse", Price: "99.99", Stock: "0", CategoryID: "1"}

	tests := []struct {
		name   string
		mutate func(*ProductForm)
		field  string
		msg    string
	}{
		{name: "valid with zero stock", mutate: func(f *ProductForm) {}},
		{name: "comma decimal", mutate: func(f *ProductForm) { f.Price = "99,99" }},
		{name: "zero price", mutate: func(f *ProductForm) { f.Price = "0" }, field: "price", msg: "Preço deve ser positivo"},
		{name: "negative price", mutate: func(f *ProductForm) { f.Price = "-1" }, field: "price", msg: "Preço deve ser positivo"},
		{name: "price not a number", mutate: func(f *ProductForm) { f.Price = "abc" }, field: "price", msg: "Preço deve ser um número"},
		{name: "grouped pt-BR price", mutate: func(f *ProductForm) { f.Price = "1.234,56" }},
		{name: "exponent price", mutate: func(f *ProductForm) { f.Price = "1e3" }, field: "price", msg: "Preço deve ser um número"},
		{name: "hex price", mutate: func(f *ProductForm) { f.Price = "0x1p4" }, field: "price", msg: "Preço deve ser um número"},
		{name: "missing price", mutate: func(f *ProductForm) { f.Price = "" }, field: "price", msg: "Preço é obrigatório"},
		{name: "missing stock", mutate: func(f *ProductForm) { f.Stock = "" }, field: "stock", msg: "Estoque é obrigatório"},
		{name: "fractional stock", mutate: func(f *ProductForm) { f.Stock = "1.5" }, field: "stock", msg: "Estoque deve ser um número inteiro"},
		{name: "negative stock", mutate: func(f *ProductForm) { f.Stock = "-1" }, field: "stock", msg: "Estoque não pode ser negativo"},
		{name: "missing category", mutate: func(f *ProductForm) { f.CategoryID = "" }, field: "categoryId", msg: "Categoria é obrigatória"},
		{name: "zero category", mutate: func(f *ProductForm) { f.CategoryID = "0" }, field: "categoryId", msg: "Categoria é obrigatória"},
		{name: "unknown category", mutate: func(f *ProductForm) { f.CategoryID = "9" }, field: "categoryId", msg: "Categoria selecionada não existe mais"},
		{name: "short name", mutate: func(f *ProductForm) { f.Name = "M" }, field: "name", msg: "Nome muito curto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)

			errs := rules(input)
			if tt.field == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Len(t, errs, 1)
			assert.Equal(t, tt.msg, errs[tt.field])
		})
	}
}

func TestProductForm_Payload(t *testing.T) {
	f := ProductForm{Name: "Mouse", Description: "sem fio", Price: "1234,5", Stock: "7", CategoryID: "2"}

	payload, err := f.Payload()
	require.NoError(t, err)
	assert.Equal(t, domain.ProductPayload{
		Name:        "Mouse",
		Description: "sem fio",
		Price:       1234.5,
		Stock:       7,
		CategoryID:  2,
	}, payload)

	_, err = ProductForm{Price: "x"}.Payload()
	assert.Error(t, err)
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{input: "99.99", want: 99.99},
		{input: "99,99", want: 99.99},
		{input: "1.234", want: 1.234},
		{input: "1.234,56", want: 1234.56},
		{input: "1.234.567", want: 1234567},
		{input: " 10 ", want: 10},
		{input: "-1", want: -1},
		{input: "1e3", wantErr: true},
		{input: "0x1p4", wantErr: true},
		{input: "NaN", wantErr: true},
		{input: "Inf", wantErr: true},
		{input: "1,234.56", wantErr: true},
		{input: "12.34,5", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseDecimal(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestProductForm_Preview(t *testing.T) {
	assert.Equal(t, "R$ 1.234,50", ProductForm{Price: "1234.5"}.PricePreview())
	assert.Equal(t, "R$ 1.234,56", ProductForm{Price: "1.234,56"}.PricePreview())
	assert.Empty(t, ProductForm{Price: "1e3"}.PricePreview())
	assert.Empty(t, ProductForm{Price: "abc"}.PricePreview())
	assert.Empty(t, ProductForm{}.PricePreview())
	assert.Equal(t, int64(3), ProductForm{CategoryID: "3"}.SelectedCategory())
	assert.Zero(t, ProductForm{CategoryID: "x"}.SelectedCategory())
}

func TestNewProductForm(t *testing.T) {
	assert.Equal(t, ProductForm{Stock: "0"}, NewProductForm(nil))

	now := time.Now()
	p := &domain.Product{ID: 4, Name: "Duna", Price: 59.9, Stock: 12, CategoryID: 3, CreatedAt: &now}
	assert.Equal(t, ProductForm{Name: "Duna", Price: "59.90", Stock: "12", CategoryID: "3"}, NewProductForm(p))
}

func TestNormalize(t *testing.T) {
	f := ProductForm{Name: "  Mouse ", Price: " 10 ", Stock: " 1", CategoryID: "2 "}.Normalize()
	assert.Equal(t, ProductForm{Name: "Mouse", Price: "10", Stock: "1", CategoryID: "2"}, f)

	c := CategoryForm{Name: " TV ", Description: "  "}.Normalize()
	assert.Equal(t, CategoryForm{Name: "TV"}, c)
	assert.Equal(t, 3, CategoryForm{Description: "açú"}.DescriptionLength())
}

func TestState_CanSubmit(t *testing.T) {
	s := NewState(NewCategoryForm(&domain.Category{ID: 1, Name: "Livros"}))

	assert.False(t, s.Dirty())
	assert.True(t, s.Valid())
	assert.False(t, s.CanSubmit(), "unchanged form must not submit")

	s.Update(CategoryForm{Name: "Livros"}, ValidateCategory)
	assert.False(t, s.CanSubmit())

	s.Update(CategoryForm{Name: "L"}, ValidateCategory)
	assert.True(t, s.Dirty())
	assert.False(t, s.CanSubmit(), "invalid form must not submit")
	assert.Equal(t, "Nome muito curto", s.Error("name"))

	s.Update(CategoryForm{Name: "Livros e HQs"}, ValidateCategory)
	assert.True(t, s.CanSubmit())
	assert.Empty(t, s.Error("name"))
}

func TestState_NewProductNeedsChanges(t *testing.T) {
	rules := ProductRules([]domain.Category{{ID: 1, Name: "Eletrônicos"}})
	s := NewState(NewProductForm(nil))

	s.Update(NewProductForm(nil), rules)
	assert.False(t, s.CanSubmit())
	assert.Equal(t, "Nome é obrigatório", s.Error("name"))

	s.Update(ProductForm{Name: "Mouse", Price: "10", Stock: "0", CategoryID: "1"}, rules)
	assert.True(t, s.CanSubmit())
}
