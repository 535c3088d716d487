package admin

import (
	"context"
	"fmt"
	"sync"

	"catalog/admin/internal/client"
	"catalog/admin/internal/domain"
	"catalog/admin/internal/form"
	"catalog/admin/internal/format"
	"catalog/admin/internal/notify"
	"catalog/admin/internal/view"

	"github.com/sirupsen/logrus"
)

const (
	ProductsPath = "/products"

	msgProductListFailed = "Erro ao carregar produtos"
	msgProductLoadFailed = "Erro ao carregar produto"
	msgProductNotFound   = "Produto não encontrado"
	msgProductCreateErr  = "Erro ao criar produto. Por favor, tente novamente."
	msgProductUpdateErr  = "Erro ao atualizar produto. Por favor, tente novamente."
	msgProductDeleteErr  = "Erro ao excluir produto. Por favor, tente novamente."
	msgProductDeleted    = "Produto excluído com sucesso!"
)

type Products struct {
	svc        client.ProductService
	categories client.CategoryService
	log        *logrus.Entry
}

func NewProducts(svc client.ProductService, categories client.CategoryService, logger *logrus.Logger) *Products {
	return &Products{
		svc:        svc,
		categories: categories,
		log:        logger.WithField("actions", "products"),
	}
}

func ProductPath(id int64) string {
	return fmt.Sprintf("%s/%d", ProductsPath, id)
}

// ProductForm is a product form together with the categories it may select.
type ProductForm struct {
	*form.State[form.ProductForm]
	Categories *view.State[[]domain.Category]
}

// CategoryName resolves the selected category for the preview.
func (f ProductForm) CategoryName() string {
	id := f.Values.SelectedCategory()
	for _, c := range f.Categories.Data() {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

// ProductSummary aggregates a product list for the stats row under the table.
type ProductSummary struct {
	Count      int
	TotalPrice domain.Money
	TotalStock int
	// LowStock counts products at or below the low tier, sold-out ones included.
	LowStock int
}

func SummarizeProducts(products []domain.Product) ProductSummary {
	summary := ProductSummary{Count: len(products)}
	for _, p := range products {
		summary.TotalPrice += p.Price
		summary.TotalStock += p.Stock
		if format.ClassifyStock(p.Stock) <= format.StockLow {
			summary.LowStock++
		}
	}
	return summary
}

// StockValue is the worth of the units on hand at the unit price.
func StockValue(p domain.Product) domain.Money {
	return domain.Money(p.Price.Float64() * float64(p.Stock))
}

func (a *Products) List(ctx context.Context) (*view.State[[]domain.Product], ProductSummary, Outcome) {
	st := view.NewState[[]domain.Product]()
	if err := st.Load(ctx, a.svc.GetAll); err != nil {
		a.log.WithError(err).Error("list failed")
		return st, ProductSummary{}, fail(msgProductListFailed)
	}
	return st, SummarizeProducts(st.Data()), Outcome{}
}

func (a *Products) Detail(ctx context.Context, id int64) (*view.State[*domain.Product], Outcome) {
	st := view.NewState[*domain.Product]()
	err := st.Load(ctx, func(ctx context.Context) (*domain.Product, error) {
		return a.svc.GetByID(ctx, id)
	})
	if err != nil {
		return st, a.loadFailure(id, err)
	}
	return st, Outcome{}
}

func (a *Products) loadFailure(id int64, err error) Outcome {
	if client.IsNotFound(err) {
		return fail(msgProductNotFound)
	}
	a.log.WithError(err).WithField("id", id).Error("load failed")
	return fail(msgProductLoadFailed)
}

func (a *Products) loadCategories(ctx context.Context) (*view.State[[]domain.Category], Outcome) {
	st := view.NewState[[]domain.Category]()
	if err := st.Load(ctx, a.categories.GetAll); err != nil {
		a.log.WithError(err).Error("category options failed")
		return st, fail(msgCategoryListFailed)
	}
	return st, Outcome{}
}

// NewForm returns an empty creation form and its category options.
func (a *Products) NewForm(ctx context.Context) (ProductForm, Outcome) {
	cats, out := a.loadCategories(ctx)
	return ProductForm{
		State:      form.NewState(form.NewProductForm(nil)),
		Categories: cats,
	}, out
}

// Create validates against a category list fetched at submit time, so a
// category deleted after the form was loaded is rejected before the API call.
func (a *Products) Create(ctx context.Context, values form.ProductForm) (ProductForm, Outcome) {
	pf, out := a.NewForm(ctx)
	if out.Failed() {
		pf.Values = values.Normalize()
		return pf, out
	}

	pf.Update(values.Normalize(), form.ProductRules(pf.Categories.Data()))
	if !pf.Valid() {
		return pf, Outcome{}
	}

	payload, err := pf.Values.Payload()
	if err != nil {
		return pf, fail(msgProductCreateErr)
	}
	created, err := a.svc.Create(ctx, payload)
	if err != nil {
		a.log.WithError(err).Warn("create failed")
		return pf, saveError(err, msgProductCreateErr)
	}

	return pf, Outcome{
		Notices:  []notify.Notice{notify.Success(fmt.Sprintf("Produto \"%s\" criado com sucesso!", created.Name))},
		Redirect: ProductsPath,
	}
}

// Edit loads the product and the category options concurrently. A failure of
// one load does not cancel the other.
func (a *Products) Edit(ctx context.Context, id int64) (*view.State[*domain.Product], ProductForm, Outcome) {
	var (
		st      *view.State[*domain.Product]
		cats    *view.State[[]domain.Category]
		loadOut Outcome
		catOut  Outcome
	)

	wg := &sync.WaitGroup{}
	wg.Add(2)
	go func() {
		defer wg.Done()
		st, loadOut = a.Detail(ctx, id)
	}()
	go func() {
		defer wg.Done()
		cats, catOut = a.loadCategories(ctx)
	}()
	wg.Wait()

	pf := ProductForm{Categories: cats}
	if loadOut.Failed() {
		return st, pf, loadOut
	}
	pf.State = form.NewState(form.NewProductForm(st.Data()))
	return st, pf, catOut
}

func (a *Products) Update(ctx context.Context, id int64, values form.ProductForm) (*view.State[*domain.Product], ProductForm, Outcome) {
	st, pf, out := a.Edit(ctx, id)
	if pf.State == nil {
		return st, pf, out
	}
	if out.Failed() {
		pf.Values = values.Normalize()
		return st, pf, out
	}

	pf.Update(values.Normalize(), form.ProductRules(pf.Categories.Data()))
	if !pf.Valid() {
		return st, pf, Outcome{}
	}
	if !pf.Dirty() {
		return st, pf, Outcome{Notices: []notify.Notice{notify.Info(msgNothingChanged)}}
	}

	payload, err := pf.Values.Payload()
	if err != nil {
		return st, pf, fail(msgProductUpdateErr)
	}
	updated, err := a.svc.Update(ctx, id, payload)
	if err != nil {
		a.log.WithError(err).WithField("id", id).Warn("update failed")
		return st, pf, saveError(err, msgProductUpdateErr)
	}

	return st, pf, Outcome{
		Notices:  []notify.Notice{notify.Success(fmt.Sprintf("Produto \"%s\" atualizado com sucesso!", updated.Name))},
		Redirect: ProductsPath,
	}
}

func (a *Products) Delete(ctx context.Context, id int64, c Confirmer) Outcome {
	product, err := a.svc.GetByID(ctx, id)
	if err != nil {
		out := a.loadFailure(id, err)
		out.Redirect = ProductsPath
		return out
	}

	if !c.Confirm(DeleteProductPrompt(product.Name)) {
		return Outcome{Canceled: true}
	}

	if err := a.svc.Delete(ctx, id); err != nil {
		a.log.WithError(err).WithField("id", id).Error("delete failed")
		return Outcome{Notices: []notify.Notice{notify.Error(msgProductDeleteErr)}, Redirect: ProductsPath}
	}
	return Outcome{Notices: []notify.Notice{notify.Success(msgProductDeleted)}, Redirect: ProductsPath}
}
