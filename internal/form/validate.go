// Package form holds the category and product form models and the rules
// that gate their submission.
package form

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps a form field name to its first violated rule message.
type Errors map[string]string

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	must(v.RegisterValidation("decimal_number", func(fl validator.FieldLevel) bool {
		_, err := parseDecimal(fl.Field().String())
		return err == nil
	}))
	must(v.RegisterValidation("decimal_gt0", func(fl validator.FieldLevel) bool {
		d, err := parseDecimal(fl.Field().String())
		return err == nil && d > 0
	}))
	must(v.RegisterValidation("whole_number", func(fl validator.FieldLevel) bool {
		_, err := strconv.Atoi(fl.Field().String())
		return err == nil
	}))
	must(v.RegisterValidation("whole_gte0", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Field().String())
		return err == nil && n >= 0
	}))

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// messages is keyed by "field.tag".
var messages = map[string]string{
	"name.required":           "Nome é obrigatório",
	"name.min":                "Nome muito curto",
	"name.max":                "Nome muito longo",
	"description.max":         "Descrição muito longa",
	"price.required":          "Preço é obrigatório",
	"price.decimal_number":    "Preço deve ser um número",
	"price.decimal_gt0":       "Preço deve ser positivo",
	"stock.required":          "Estoque é obrigatório",
	"stock.whole_number":      "Estoque deve ser um número inteiro",
	"stock.whole_gte0":        "Estoque não pode ser negativo",
	"categoryId.required":     "Categoria é obrigatória",
	"categoryId.whole_number": "Categoria é obrigatória",
}

// Field-scoped messages not produced by struct tags.
const (
	msgCategoryGone = "Categoria selecionada não existe mais"
	msgInvalid      = "Valor inválido"
)

func check(v any) Errors {
	errs := Errors{}

	err := validate.Struct(v)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs["_form"] = err.Error()
		return errs
	}

	for _, fe := range fieldErrs {
		if errs.Has(fe.Field()) {
			continue
		}
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = msgInvalid
		}
		errs[fe.Field()] = msg
	}
	return errs
}

var (
	plainDecimal   = regexp.MustCompile(`^-?\d+([.,]\d+)?$`)
	groupedDecimal = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+(,\d+)?$`)
)

// parseDecimal accepts "1234.56", "1234,56" and the grouped pt-BR "1.234,56".
// Exponent and hex forms are rejected.
func parseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch {
	case plainDecimal.MatchString(s):
		s = strings.Replace(s, ",", ".", 1)
	case groupedDecimal.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	default:
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(s, 64)
}
