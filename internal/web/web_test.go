package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"catalog/admin/internal/admin"
	"catalog/admin/internal/apitest"
	"catalog/admin/internal/client"
	"catalog/admin/internal/config"
	"catalog/admin/internal/notify"
	"catalog/admin/internal/web/webtest"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	api     *apitest.Server
	browser *webtest.Browser
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	api := apitest.NewServer()
	t.Cleanup(api.Close)

	c := client.New(config.APIConfig{BaseURL: api.BaseURL(), Timeout: 5})
	t.Cleanup(func() { _ = c.Close() })

	logger, _ := test.NewNullLogger()
	srv, err := NewServer(Deps{
		Home:       admin.NewHome(c.Categories, c.Products, logger),
		Categories: admin.NewCategories(c.Categories, logger),
		Products:   admin.NewProducts(c.Products, c.Categories, logger),
		Flash:      notify.NewMemoryStore(time.Minute),
		Logger:     logger,
		Location:   time.UTC,
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	browser, err := webtest.NewBrowser(ts.URL)
	require.NoError(t, err)

	return &harness{api: api, browser: browser}
}

func (h *harness) get(t *testing.T, path string) *webtest.Page {
	t.Helper()
	page, err := h.browser.Get(path)
	require.NoError(t, err)
	return page
}

func TestNavigation(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		path    string
		heading string
	}{
		{path: "/", heading: "Sistema de Gerenciamento de Produtos"},
		{path: "/categories", heading: "Gerenciar Categorias"},
		{path: "/categories/new", heading: "Nova Categoria"},
		{path: "/products", heading: "Gerenciar Produtos"},
		{path: "/products/new", heading: "Novo Produto"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			page := h.get(t, tt.path)
			assert.Equal(t, http.StatusOK, page.Status)
			assert.Equal(t, tt.heading, page.Heading())
		})
	}
}

func TestNotFound(t *testing.T) {
	h := newHarness(t)

	for _, path := range []string{"/nao-existe", "/categories/abc", "/products/0"} {
		page := h.get(t, path)
		assert.Equal(t, http.StatusNotFound, page.Status, path)
		assert.Equal(t, "404", page.Heading())
		assert.Contains(t, page.Doc.Text(), "Página não encontrada")
		assert.Equal(t, "Voltar ao Início", page.TestID("back-home"))
	}
}

func TestHealthz(t *testing.T) {
	h := newHarness(t)
	page := h.get(t, "/healthz")
	assert.Equal(t, http.StatusOK, page.Status)
}

func TestHomeStats(t *testing.T) {
	h := newHarness(t)
	cat := h.api.SeedCategory("Livros", "")
	h.api.SeedProduct("Duna", 59.9, 12, cat.ID)

	page := h.get(t, "/")
	assert.Equal(t, "1", page.TestID("stats-categories"))
	assert.Equal(t, "1", page.TestID("stats-products"))
}

func TestCreateCategoryAppearsInListAndProductSelect(t *testing.T) {
	h := newHarness(t)

	form := h.get(t, "/categories/new")
	page, err := h.browser.SubmitForm(form, "[data-testid=category-form]", map[string]string{
		"name":        "Eletrônicos",
		"description": "Aparelhos e acessórios",
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, page.Status)
	assert.Equal(t, "/categories", page.Path)
	assert.Equal(t, []notify.Notice{notify.Success(`Categoria "Eletrônicos" criada com sucesso!`)}, page.Notices())
	assert.Contains(t, page.RowNames("category-table", "category-name"), "Eletrônicos")

	again := h.get(t, "/categories")
	assert.Empty(t, again.Notices(), "flash notices show once")

	productForm := h.get(t, "/products/new")
	assert.Contains(t, productForm.Options("categoryId"), "Eletrônicos")
}

func TestCreateCategoryValidation(t *testing.T) {
	h := newHarness(t)

	page, err := h.browser.Submit("/categories", url.Values{"name": {"A"}})
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnprocessableEntity, page.Status)
	assert.Equal(t, "Nome muito curto", page.FieldError("name"))
	assert.NotContains(t, h.api.Requests(), "POST /categories")
}

func TestDeleteCategoryWithProductsIsBlocked(t *testing.T) {
	h := newHarness(t)
	cat := h.api.SeedCategory("Eletrônicos", "")
	h.api.SeedProduct("Notebook", 3500, 3, cat.ID)

	confirm := h.get(t, admin.CategoryPath(cat.ID)+"/delete")
	require.Equal(t, http.StatusOK, confirm.Status)
	assert.Contains(t, confirm.TestID("confirm-prompt"), `Tem certeza que deseja excluir a categoria "Eletrônicos"?`)

	page, err := h.browser.SubmitForm(confirm, "form[method=post]", nil)
	require.NoError(t, err)

	assert.Equal(t, "/categories", page.Path)
	assert.Equal(t, []notify.Notice{notify.Error(admin.MsgCategoryInUse)}, page.Notices())
	assert.Equal(t, []string{"Eletrônicos"}, page.RowNames("category-table", "category-name"))
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	h := newHarness(t)
	cat := h.api.SeedCategory("Livros", "")

	page, err := h.browser.Submit(admin.CategoryPath(cat.ID)+"/delete", url.Values{})
	require.NoError(t, err)
	assert.Equal(t, admin.CategoryPath(cat.ID), page.Path)
	assert.NotContains(t, h.api.Requests(), "DELETE /categories/1")
}

func TestProductLifecycle(t *testing.T) {
	h := newHarness(t)
	cat := h.api.SeedCategory("Eletrônicos", "")

	form := h.get(t, "/products/new")
	assert.Equal(t, "0", form.Doc.Find("input[name=stock]").AttrOr("value", ""))

	page, err := h.browser.SubmitForm(form, "[data-testid=product-form]", map[string]string{
		"name":       "Mouse",
		"price":      "1234,5",
		"stock":      "0",
		"categoryId": "1",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), cat.ID)
	assert.Equal(t, "/products", page.Path)
	assert.Equal(t, `Produto "Mouse" criado com sucesso!`, page.Notices()[0].Message)
	assert.Equal(t, "R$ 1.234,50", page.TestID("product-price"))
	assert.Equal(t, "0 (Esgotado)", page.TestID("product-stock"))

	detail := h.get(t, "/products/2")
	assert.Equal(t, "Mouse", detail.TestID("product-title"))
	assert.Equal(t, "Eletrônicos", detail.TestID("product-category"))

	edit := h.get(t, "/products/2/edit")
	assert.Equal(t, "Editar Produto", edit.Heading())
	page, err = h.browser.SubmitForm(edit, "[data-testid=product-form]", map[string]string{"stock": "30"})
	require.NoError(t, err)
	assert.Equal(t, `Produto "Mouse" atualizado com sucesso!`, page.Notices()[0].Message)
	assert.Equal(t, "30 (Alto)", page.TestID("product-stock"))

	confirm := h.get(t, "/products/2/delete")
	page, err = h.browser.SubmitForm(confirm, "form[method=post]", nil)
	require.NoError(t, err)
	assert.Equal(t, "Produto excluído com sucesso!", page.Notices()[0].Message)
	assert.True(t, page.Has("[data-testid=empty]"))
}

func TestProductFormRejectsInvalid(t *testing.T) {
	h := newHarness(t)
	h.api.SeedCategory("Eletrônicos", "")

	page, err := h.browser.Submit("/products", url.Values{
		"name":       {"Mouse"},
		"price":      {"0"},
		"stock":      {"0"},
		"categoryId": {""},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnprocessableEntity, page.Status)
	assert.Equal(t, "Preço deve ser positivo", page.FieldError("price"))
	assert.Equal(t, "Categoria é obrigatória", page.FieldError("categoryId"))
	assert.Empty(t, page.FieldError("stock"))
}

func TestMissingEntityRendersPanel(t *testing.T) {
	h := newHarness(t)

	for _, path := range []string{"/categories/99", "/categories/99/edit", "/products/99", "/products/99/edit"} {
		page := h.get(t, path)
		assert.Equal(t, http.StatusNotFound, page.Status, path)
		assert.True(t, page.Has("[data-testid=error-panel]"), path)
		assert.True(t, page.Has("[data-testid=back]"), path)
	}
}

func TestListFailureShowsRetry(t *testing.T) {
	h := newHarness(t)
	h.api.Fail(http.MethodGet, "/categories", http.StatusServiceUnavailable, `{"error":"down"}`)

	page := h.get(t, "/categories")
	assert.Equal(t, http.StatusBadGateway, page.Status)
	assert.Equal(t, "Erro ao carregar categorias", page.TestID("error-message"))
	assert.Equal(t, "/categories", page.Doc.Find("[data-testid=retry]").AttrOr("href", ""))

	retry := h.get(t, "/categories")
	assert.Equal(t, http.StatusOK, retry.Status)
}

func TestEditCategoryUnchanged(t *testing.T) {
	h := newHarness(t)
	cat := h.api.SeedCategory("Livros", "")

	edit := h.get(t, admin.CategoryPath(cat.ID)+"/edit")
	assert.Equal(t, "Livros", edit.Doc.Find("input[name=name]").AttrOr("value", ""))

	page, err := h.browser.SubmitForm(edit, "[data-testid=category-form]", nil)
	require.NoError(t, err)
	assert.Equal(t, []notify.Notice{notify.Info("Nenhuma alteração para salvar.")}, page.Notices())
	assert.NotContains(t, h.api.Requests(), "PUT /categories/1")
}

func TestProductListSummary(t *testing.T) {
	h := newHarness(t)
	cat := h.api.SeedCategory("Eletrônicos", "")
	h.api.SeedProduct("Notebook", 3500, 3, cat.ID)
	h.api.SeedProduct("Mouse", 99.9, 1200, cat.ID)
	h.api.SeedProduct("Cabo", 10, 0, cat.ID)

	page := h.get(t, "/products")
	require.Equal(t, http.StatusOK, page.Status)
	assert.Equal(t, "3", page.TestID("summary-count"))
	assert.Equal(t, "R$ 3.609,90", page.TestID("summary-total-price"))
	assert.Equal(t, "1.203", page.TestID("summary-total-stock"))
	assert.Equal(t, "2", page.TestID("summary-low-stock"))
}

func TestProductListSummaryHiddenWhenEmpty(t *testing.T) {
	h := newHarness(t)

	page := h.get(t, "/products")
	assert.True(t, page.Has("[data-testid=empty]"))
	assert.False(t, page.Has("[data-testid=product-summary]"))
}

func TestProductDetailStockValueAndAlerts(t *testing.T) {
	h := newHarness(t)
	cat := h.api.SeedCategory("Livros", "")
	normal := h.api.SeedProduct("Duna", 59.9, 12, cat.ID)
	low := h.api.SeedProduct("Fundação", 49.9, 3, cat.ID)
	out := h.api.SeedProduct("Neuromancer", 45, 0, cat.ID)

	page := h.get(t, admin.ProductPath(normal.ID))
	assert.Equal(t, "R$ 718,80", page.TestID("stock-value"))
	assert.Equal(t, "12 × R$ 59,90", page.TestID("stock-value-breakdown"))
	assert.False(t, page.Has("[data-testid=stock-alert]"))

	page = h.get(t, admin.ProductPath(low.ID))
	assert.Equal(t, "low", page.Doc.Find("[data-testid=stock-alert]").AttrOr("data-level", ""))
	assert.Contains(t, page.TestID("stock-alert"), "Este produto tem apenas 3 unidades em estoque.")

	page = h.get(t, admin.ProductPath(out.ID))
	assert.Equal(t, "R$ 0,00", page.TestID("stock-value"))
	assert.Equal(t, "out", page.Doc.Find("[data-testid=stock-alert]").AttrOr("data-level", ""))
	assert.Contains(t, page.TestID("stock-alert"), "Produto Esgotado!")
}

func TestCategoryDetailShowsProductDates(t *testing.T) {
	h := newHarness(t)
	cat := h.api.SeedCategory("Livros", "")
	p := h.api.SeedProduct("Duna", 59.9, 12, cat.ID)

	page := h.get(t, admin.CategoryPath(cat.ID))
	require.Equal(t, http.StatusOK, page.Status)
	assert.Equal(t, p.CreatedAt.UTC().Format("02/01/2006"), page.TestID("product-created"))
}
