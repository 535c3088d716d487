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

var categoriesCrumb = crumb{Label: "Categorias", Href: admin.CategoriesPath}

func (s *Server) listCategories(c *gin.Context) {
	st, out := s.categories.List(c.Request.Context())
	l := layout{
		Title:   "Categorias",
		Section: "categories",
		Crumbs:  []crumb{{Label: "Categorias"}},
		Notices: out.Notices,
	}

	if st.Status() == view.StatusFailed {
		s.render(c, http.StatusBadGateway, "categories", l, gin.H{
			"Error": errorPanel{Message: "Erro ao carregar categorias", Retry: admin.CategoriesPath},
		})
		return
	}
	s.render(c, http.StatusOK, "categories", l, gin.H{"Categories": st.Data()})
}

func (s *Server) showCategory(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	st, out := s.categories.Detail(c.Request.Context(), id)
	l := layout{
		Title:   "Categoria",
		Section: "categories",
		Crumbs:  []crumb{categoriesCrumb, {Label: "Detalhes"}},
	}
	if st.Status() == view.StatusFailed {
		s.render(c, loadStatus(client.IsNotFound(st.Err())), "category_detail", l, gin.H{
			"Error": categoryLoadPanel(out, c.Request.URL.Path),
		})
		return
	}

	l.Title = st.Data().Name
	s.render(c, http.StatusOK, "category_detail", l, gin.H{"Category": st.Data()})
}

func categoryLoadPanel(out admin.Outcome, retry string) errorPanel {
	panel := errorPanel{Back: admin.CategoriesPath, BackLabel: "Voltar para Categorias", Retry: retry}
	if len(out.Notices) > 0 {
		panel.Message = out.Notices[0].Message
	}
	return panel
}

func categoryFormLayout(edit bool) layout {
	title := "Nova Categoria"
	if edit {
		title = "Editar Categoria"
	}
	return layout{
		Title:   title,
		Section: "categories",
		Crumbs:  []crumb{categoriesCrumb, {Label: title}},
	}
}

func (s *Server) newCategory(c *gin.Context) {
	s.render(c, http.StatusOK, "category_form", categoryFormLayout(false), gin.H{
		"Form":   s.categories.NewForm(),
		"Action": admin.CategoriesPath,
	})
}

func (s *Server) createCategory(c *gin.Context) {
	var values form.CategoryForm
	if err := c.ShouldBind(&values); err != nil {
		s.log.WithField("handler", "createCategory").Warnf("Failed to bind form: %v", err)
	}

	fs, out := s.categories.Create(c.Request.Context(), values)
	if out.Redirect != "" {
		s.finish(c, out, admin.CategoriesPath)
		return
	}

	l := categoryFormLayout(false)
	l.Notices = out.Notices
	s.render(c, http.StatusUnprocessableEntity, "category_form", l, gin.H{
		"Form":   fs,
		"Action": admin.CategoriesPath,
	})
}

func (s *Server) editCategory(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	st, fs, out := s.categories.Edit(c.Request.Context(), id)
	s.renderCategoryEdit(c, id, st, fs, out)
}

func (s *Server) updateCategory(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	var values form.CategoryForm
	if err := c.ShouldBind(&values); err != nil {
		s.log.WithField("handler", "updateCategory").Warnf("Failed to bind form: %v", err)
	}

	st, fs, out := s.categories.Update(c.Request.Context(), id, values)
	if out.Redirect != "" {
		s.finish(c, out, admin.CategoriesPath)
		return
	}
	s.renderCategoryEdit(c, id, st, fs, out)
}

func (s *Server) renderCategoryEdit(c *gin.Context, id int64, st *view.State[*domain.Category], fs *form.State[form.CategoryForm], out admin.Outcome) {
	l := categoryFormLayout(true)
	action := admin.CategoryPath(id) + "/edit"

	if fs == nil {
		s.render(c, loadStatus(client.IsNotFound(st.Err())), "category_form", l, gin.H{
			"Edit":  true,
			"Error": categoryLoadPanel(out, action),
		})
		return
	}

	l.Notices = out.Notices
	status := http.StatusOK
	if out.Failed() || !fs.Valid() {
		status = http.StatusUnprocessableEntity
	}
	s.render(c, status, "category_form", l, gin.H{
		"Edit":   true,
		"Form":   fs,
		"Action": action,
	})
}

func (s *Server) confirmDeleteCategory(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	st, out := s.categories.Detail(c.Request.Context(), id)
	l := layout{
		Title:   "Excluir Categoria",
		Section: "categories",
		Crumbs:  []crumb{categoriesCrumb, {Label: "Excluir"}},
	}
	if st.Status() == view.StatusFailed {
		s.render(c, loadStatus(client.IsNotFound(st.Err())), "category_detail", l, gin.H{
			"Error": categoryLoadPanel(out, c.Request.URL.Path),
		})
		return
	}

	s.render(c, http.StatusOK, "confirm", l, gin.H{
		"Prompt": admin.DeleteCategoryPrompt(st.Data().Name),
		"Action": admin.CategoryPath(id) + "/delete",
		"Cancel": admin.CategoryPath(id),
	})
}

func (s *Server) deleteCategory(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	out := s.categories.Delete(c.Request.Context(), id, confirmed(c))
	if out.Canceled {
		c.Redirect(http.StatusSeeOther, admin.CategoryPath(id))
		return
	}
	s.finish(c, out, admin.CategoriesPath)
}
