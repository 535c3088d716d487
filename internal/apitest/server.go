// Package apitest runs an in-memory catalog REST API for tests. It mirrors the
// remote contract: JSON bodies, 201 on create, 204 on delete, 400 with an
// {"error": ...} envelope on rejected input and on deleting a category that
// still has products.
package apitest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"catalog/admin/internal/domain"

	"github.com/gin-gonic/gin"
)

// CategoryInUseMessage is returned when deleting a referenced category.
const CategoryInUseMessage = "Não é possível excluir uma categoria que possui produtos associados"

type categoryRecord struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type productRecord struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Stock       int
	CategoryID  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// fault forces the next matching request to fail.
type fault struct {
	method string
	prefix string
	status int
	body   string
}

type Server struct {
	*httptest.Server

	mu         sync.Mutex
	categories map[int64]*categoryRecord
	products   map[int64]*productRecord
	nextID     int64
	faults     []fault
	requests   []string
	now        func() time.Time
}

func NewServer() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		categories: make(map[int64]*categoryRecord),
		products:   make(map[int64]*productRecord),
		now:        func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}

	router := gin.New()
	router.Use(s.record, s.inject)

	api := router.Group("/api")
	{
		api.GET("/categories", s.listCategories)
		api.GET("/categories/:id", s.getCategory)
		api.POST("/categories", s.createCategory)
		api.PUT("/categories/:id", s.updateCategory)
		api.DELETE("/categories/:id", s.deleteCategory)

		api.GET("/products", s.listProducts)
		api.GET("/products/:id", s.getProduct)
		api.POST("/products", s.createProduct)
		api.PUT("/products/:id", s.updateProduct)
		api.DELETE("/products/:id", s.deleteProduct)
	}

	s.Server = httptest.NewServer(router)
	return s
}

// BaseURL is the API root to configure clients with.
func (s *Server) BaseURL() string {
	return s.Server.URL + "/api"
}

// Fail makes the next request whose method matches and whose path (relative
// to /api) starts with prefix answer with status and body.
func (s *Server) Fail(method, prefix string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults = append(s.faults, fault{method: method, prefix: prefix, status: status, body: body})
}

// Requests lists "METHOD /path" for every request served so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *Server) SeedCategory(name, description string) domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.insertCategory(name, description)
	return s.categoryJSON(rec, false)
}

func (s *Server) SeedProduct(name string, price float64, stock int, categoryID int64) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	now := s.now()
	rec := &productRecord{
		ID:         s.nextID,
		Name:       name,
		Price:      price,
		Stock:      stock,
		CategoryID: categoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.products[rec.ID] = rec
	return s.productDomain(rec)
}

func (s *Server) record(c *gin.Context) {
	s.mu.Lock()
	s.requests = append(s.requests, c.Request.Method+" "+strings.TrimPrefix(c.Request.URL.Path, "/api"))
	s.mu.Unlock()
	c.Next()
}

func (s *Server) inject(c *gin.Context) {
	path := strings.TrimPrefix(c.Request.URL.Path, "/api")

	s.mu.Lock()
	for i, f := range s.faults {
		if f.method == c.Request.Method && strings.HasPrefix(path, f.prefix) {
			s.faults = append(s.faults[:i], s.faults[i+1:]...)
			s.mu.Unlock()
			c.Data(f.status, "application/json; charset=utf-8", []byte(f.body))
			c.Abort()
			return
		}
	}
	s.mu.Unlock()

	c.Next()
}

func (s *Server) insertCategory(name, description string) *categoryRecord {
	s.nextID++
	now := s.now()
	rec := &categoryRecord{
		ID:          s.nextID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.categories[rec.ID] = rec
	return rec
}

// productWire encodes price as a decimal string, the way SQL DECIMAL
// columns reach JSON through most ORMs.
type productWire struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       string           `json:"price"`
	Stock       int              `json:"stock"`
	CategoryID  int64            `json:"categoryId"`
	Category    *domain.Category `json:"category,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func (s *Server) categoryJSON(rec *categoryRecord, withProducts bool) domain.Category {
	created, updated := rec.CreatedAt, rec.UpdatedAt
	category := domain.Category{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		CreatedAt:   &created,
		UpdatedAt:   &updated,
	}
	if withProducts {
		category.Products = []domain.Product{}
		for _, p := range s.sortedProducts() {
			if p.CategoryID == rec.ID {
				category.Products = append(category.Products, s.productDomain(p))
			}
		}
	}
	return category
}

func (s *Server) productDomain(rec *productRecord) domain.Product {
	created, updated := rec.CreatedAt, rec.UpdatedAt
	return domain.Product{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Price:       domain.Money(rec.Price),
		Stock:       rec.Stock,
		CategoryID:  rec.CategoryID,
		CreatedAt:   &created,
		UpdatedAt:   &updated,
	}
}

func (s *Server) productJSON(rec *productRecord) productWire {
	wire := productWire{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Price:       strconv.FormatFloat(rec.Price, 'f', 2, 64),
		Stock:       rec.Stock,
		CategoryID:  rec.CategoryID,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
	if cat, ok := s.categories[rec.CategoryID]; ok {
		embedded := domain.Category{ID: cat.ID, Name: cat.Name}
		wire.Category = &embedded
	}
	return wire
}

func (s *Server) sortedCategories() []*categoryRecord {
	out := make([]*categoryRecord, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) sortedProducts() []*productRecord {
	out := make([]*productRecord, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func abortError(c *gin.Context, status int, format string, args ...any) {
	c.AbortWithStatusJSON(status, gin.H{"error": fmt.Sprintf(format, args...)})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abortError(c, http.StatusBadRequest, "ID inválido")
		return 0, false
	}
	return id, true
}
