package web

import (
	"net/http"

	"catalog/admin/internal/admin"
	"catalog/admin/internal/client"
	"catalog/admin/internal/domain"
	"catalog/admin/internal/form"
	"catalog/admin/internal/view"

	"github.com/gin-gonic/gin"
)

var productsCrumb = crumb{Label: "Produtos", Href: admin.ProductsPath}

func (s *Server) listProducts(c *gin.Context) {
	st, summary, out := s.products.List(c.Request.Context())
	l := layout{
		Title:   "Produtos",
		Section: "products",
		Crumbs:  []crumb{{Label: "Produtos"}},
		Notices: out.Notices,
	}

	if st.Status() == view.StatusFailed {
		s.render(c, http.StatusBadGateway, "products", l, gin.H{
			"Error": errorPanel{Message: "Erro ao carregar produtos", Retry: admin.ProductsPath},
		})
		return
	}
	s.render(c, http.StatusOK, "products", l, gin.H{"Products": st.Data(), "Summary": summary})
}

func productLoadPanel(out admin.Outcome, retry string) errorPanel {
	panel := errorPanel{Back: admin.ProductsPath, BackLabel: "Voltar para Produtos", Retry: retry}
	if len(out.Notices) > 0 {
		panel.Message = out.Notices[0].Message
	}
	return panel
}

func (s *Server) showProduct(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	st, out := s.products.Detail(c.Request.Context(), id)
	l := layout{
		Title:   "Produto",
		Section: "products",
		Crumbs:  []crumb{productsCrumb, {Label: "Detalhes"}},
	}
	if st.Status() == view.StatusFailed {
		s.render(c, loadStatus(client.IsNotFound(st.Err())), "product_detail", l, gin.H{
			"Error": productLoadPanel(out, c.Request.URL.Path),
		})
		return
	}

	l.Title = st.Data().Name
	s.render(c, http.StatusOK, "product_detail", l, gin.H{
		"Product":    st.Data(),
		"StockValue": admin.StockValue(*st.Data()),
	})
}

func productFormLayout(edit bool) layout {
	title := "Novo Produto"
	if edit {
		title = "Editar Produto"
	}
	return layout{
		Title:   title,
		Section: "products",
		Crumbs:  []crumb{productsCrumb, {Label: title}},
	}
}

func (s *Server) newProduct(c *gin.Context) {
	pf, out := s.products.NewForm(c.Request.Context())
	l := productFormLayout(false)
	l.Notices = out.Notices
	s.render(c, http.StatusOK, "product_form", l, gin.H{
		"Form":   pf,
		"Action": admin.ProductsPath,
	})
}

func (s *Server) createProduct(c *gin.Context) {
	var values form.ProductForm
	if err := c.ShouldBind(&values); err != nil {
		s.log.WithField("handler", "createProduct").Warnf("Failed to bind form: %v", err)
	}

	pf, out := s.products.Create(c.Request.Context(), values)
	if out.Redirect != "" {
		s.finish(c, out, admin.ProductsPath)
		return
	}

	l := productFormLayout(false)
	l.Notices = out.Notices
	s.render(c, http.StatusUnprocessableEntity, "product_form", l, gin.H{
		"Form":   pf,
		"Action": admin.ProductsPath,
	})
}

func (s *Server) editProduct(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	st, pf, out := s.products.Edit(c.Request.Context(), id)
	s.renderProductEdit(c, id, st, pf, out)
}

func (s *Server) updateProduct(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	var values form.ProductForm
	if err := c.ShouldBind(&values); err != nil {
		s.log.WithField("handler", "updateProduct").Warnf("Failed to bind form: %v", err)
	}

	st, pf, out := s.products.Update(c.Request.Context(), id, values)
	if out.Redirect != "" {
		s.finish(c, out, admin.ProductsPath)
		return
	}
	s.renderProductEdit(c, id, st, pf, out)
}

func (s *Server) renderProductEdit(c *gin.Context, id int64, st *view.State[*domain.Product], pf admin.ProductForm, out admin.Outcome) {
	l := productFormLayout(true)
	action := admin.ProductPath(id) + "/edit"

	if pf.State == nil {
		s.render(c, loadStatus(client.IsNotFound(st.Err())), "product_form", l, gin.H{
			"Edit":  true,
			"Error": productLoadPanel(out, action),
		})
		return
	}

	l.Notices = out.Notices
	status := http.StatusOK
	if out.Failed() || !pf.Valid() {
		status = http.StatusUnprocessableEntity
	}
	s.render(c, status, "product_form", l, gin.H{
		"Edit":   true,
		"Form":   pf,
		"Action": action,
	})
}

func (s *Server) confirmDeleteProduct(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	st, out := s.products.Detail(c.Request.Context(), id)
	l := layout{
		Title:   "Excluir Produto",
		Section: "products",
		Crumbs:  []crumb{productsCrumb, {Label: "Excluir"}},
	}
	if st.Status() == view.StatusFailed {
		s.render(c, loadStatus(client.IsNotFound(st.Err())), "product_detail", l, gin.H{
			"Error": productLoadPanel(out, c.Request.URL.Path),
		})
		return
	}

	s.render(c, http.StatusOK, "confirm", l, gin.H{
		"Prompt": admin.DeleteProductPrompt(st.Data().Name),
		"Action": admin.ProductPath(id) + "/delete",
		"Cancel": admin.ProductPath(id),
	})
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	out := s.products.Delete(c.Request.Context(), id, confirmed(c))
	if out.Canceled {
		c.Redirect(http.StatusSeeOther, admin.ProductPath(id))
		return
	}
	s.finish(c, out, admin.ProductsPath)
}
