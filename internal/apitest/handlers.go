package apitest

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"catalog/admin/internal/domain"

	"github.com/gin-gonic/gin"
)

func (s *Server) listCategories(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Category, 0, len(s.categories))
	for _, rec := range s.sortedCategories() {
		out = append(out, s.categoryJSON(rec, false))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, found := s.categories[id]
	if !found {
		abortError(c, http.StatusNotFound, "Categoria não encontrada")
		return
	}
	c.JSON(http.StatusOK, s.categoryJSON(rec, true))
}

func (s *Server) createCategory(c *gin.Context) {
	var payload domain.CategoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if msg := checkName(payload.Name); msg != "" {
		abortError(c, http.StatusBadRequest, "%s", msg)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categories {
		if strings.EqualFold(existing.Name, payload.Name) {
			abortError(c, http.StatusBadRequest, "Já existe uma categoria com este nome")
			return
		}
	}

	rec := s.insertCategory(payload.Name, payload.Description)
	c.JSON(http.StatusCreated, s.categoryJSON(rec, false))
}

func (s *Server) updateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload domain.CategoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if msg := checkName(payload.Name); msg != "" {
		abortError(c, http.StatusBadRequest, "%s", msg)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, found := s.categories[id]
	if !found {
		abortError(c, http.StatusNotFound, "Categoria não encontrada")
		return
	}
	rec.Name = payload.Name
	rec.Description = payload.Description
	rec.UpdatedAt = s.now()
	c.JSON(http.StatusOK, s.categoryJSON(rec, false))
}

func (s *Server) deleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.categories[id]; !found {
		abortError(c, http.StatusNotFound, "Categoria não encontrada")
		return
	}
	for _, p := range s.products {
		if p.CategoryID == id {
			abortError(c, http.StatusBadRequest, CategoryInUseMessage)
			return
		}
	}
	delete(s.categories, id)
	c.Status(http.StatusNoContent)
}

func (s *Server) listProducts(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]productWire, 0, len(s.products))
	for _, rec := range s.sortedProducts() {
		out = append(out, s.productJSON(rec))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, found := s.products[id]
	if !found {
		abortError(c, http.StatusNotFound, "Produto não encontrado")
		return
	}
	c.JSON(http.StatusOK, s.productJSON(rec))
}

func (s *Server) createProduct(c *gin.Context) {
	payload, ok := bindProduct(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.categories[payload.CategoryID]; !found {
		abortError(c, http.StatusBadRequest, "Categoria não encontrada")
		return
	}

	s.nextID++
	now := s.now()
	rec := &productRecord{
		ID:          s.nextID,
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		Stock:       payload.Stock,
		CategoryID:  payload.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.products[rec.ID] = rec
	c.JSON(http.StatusCreated, s.productJSON(rec))
}

func (s *Server) updateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	payload, ok := bindProduct(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, found := s.products[id]
	if !found {
		abortError(c, http.StatusNotFound, "Produto não encontrado")
		return
	}
	if _, found := s.categories[payload.CategoryID]; !found {
		abortError(c, http.StatusBadRequest, "Categoria não encontrada")
		return
	}

	rec.Name = payload.Name
	rec.Description = payload.Description
	rec.Price = payload.Price
	rec.Stock = payload.Stock
	rec.CategoryID = payload.CategoryID
	rec.UpdatedAt = s.now()
	c.JSON(http.StatusOK, s.productJSON(rec))
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.products[id]; !found {
		abortError(c, http.StatusNotFound, "Produto não encontrado")
		return
	}
	delete(s.products, id)
	c.Status(http.StatusNoContent)
}

func bindProduct(c *gin.Context) (domain.ProductPayload, bool) {
	var payload domain.ProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return payload, false
	}
	if msg := checkName(payload.Name); msg != "" {
		abortError(c, http.StatusBadRequest, "%s", msg)
		return payload, false
	}
	if payload.Price <= 0 {
		abortError(c, http.StatusBadRequest, "Preço deve ser positivo")
		return payload, false
	}
	if payload.Stock < 0 {
		abortError(c, http.StatusBadRequest, "Estoque não pode ser negativo")
		return payload, false
	}
	return payload, true
}

func checkName(name string) string {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	switch {
	case n == 0:
		return "Nome é obrigatório"
	case n < 2 || n > 100:
		return "Nome deve ter entre 2 e 100 caracteres"
	default:
		return ""
	}
}
