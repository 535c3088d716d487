// Package web serves the catalog admin as server-rendered HTML. Handlers
// delegate to the admin actions and follow Post/Redirect/Get: notices from a
// POST travel to the next page through the flash store.
package web

import (
	"net/http"
	"strconv"
	"time"

	"catalog/admin/internal/admin"
	"catalog/admin/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Deps struct {
	Home       *admin.Home
	Categories *admin.Categories
	Products   *admin.Products
	Flash      notify.FlashStore
	Logger     *logrus.Logger
	// Location is used to display timestamps; nil means UTC.
	Location *time.Location
}

type Server struct {
	router     *gin.Engine
	home       *admin.Home
	categories *admin.Categories
	products   *admin.Products
	flash      notify.FlashStore
	log        *logrus.Logger
}

func NewServer(d Deps) (*Server, error) {
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}
	renderer, err := newPageRenderer(loc)
	if err != nil {
		return nil, err
	}

	s := &Server{
		home:       d.Home,
		categories: d.Categories,
		products:   d.Products,
		flash:      d.Flash,
		log:        d.Logger,
	}

	router := gin.New()
	router.HTMLRender = renderer
	router.RedirectTrailingSlash = true
	router.Use(gin.Recovery(), requestLogger(d.Logger), s.session)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/", s.homePage)

	categories := router.Group("/categories")
	{
		categories.GET("", s.listCategories)
		categories.GET("/new", s.newCategory)
		categories.POST("", s.createCategory)
		categories.GET("/:id", s.showCategory)
		categories.GET("/:id/edit", s.editCategory)
		categories.POST("/:id/edit", s.updateCategory)
		categories.GET("/:id/delete", s.confirmDeleteCategory)
		categories.POST("/:id/delete", s.deleteCategory)
	}

	products := router.Group("/products")
	{
		products.GET("", s.listProducts)
		products.GET("/new", s.newProduct)
		products.POST("", s.createProduct)
		products.GET("/:id", s.showProduct)
		products.GET("/:id/edit", s.editProduct)
		products.POST("/:id/edit", s.updateProduct)
		products.GET("/:id/delete", s.confirmDeleteProduct)
		products.POST("/:id/delete", s.deleteProduct)
	}

	router.NoRoute(s.notFound)

	s.router = router
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

type crumb struct {
	Label string
	Href  string
}

// layout is the data every page shares.
type layout struct {
	Title   string
	Section string
	Crumbs  []crumb
	Notices []notify.Notice
}

type errorPanel struct {
	Message   string
	Retry     string
	Back      string
	BackLabel string
}

// render draws page with pending flash notices shown ahead of the page's own.
func (s *Server) render(c *gin.Context, status int, page string, l layout, data gin.H) {
	pending, err := s.flash.Pop(c.Request.Context(), sessionID(c))
	if err != nil {
		s.log.WithField("handler", page).Warnf("Failed to read flash notices: %v", err)
	}
	l.Notices = append(pending, l.Notices...)

	if data == nil {
		data = gin.H{}
	}
	data["Layout"] = l
	c.HTML(status, page, data)
}

// finish stores the outcome's notices and redirects to where it points.
func (s *Server) finish(c *gin.Context, out admin.Outcome, fallback string) {
	if err := s.flash.Push(c.Request.Context(), sessionID(c), out.Notices...); err != nil {
		s.log.WithField("handler", c.FullPath()).Warnf("Failed to store flash notices: %v", err)
	}
	target := out.Redirect
	if target == "" {
		target = fallback
	}
	c.Redirect(http.StatusSeeOther, target)
}

func (s *Server) homePage(c *gin.Context) {
	stats := s.home.Stats(c.Request.Context())
	s.render(c, http.StatusOK, "home", layout{Title: "Início", Section: "home"}, gin.H{"Stats": stats})
}

func (s *Server) notFound(c *gin.Context) {
	s.render(c, http.StatusNotFound, "not_found", layout{Title: "Página não encontrada"}, nil)
}

// pathID reads the :id parameter, rendering the not-found page when it is
// not a positive integer.
func (s *Server) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		s.notFound(c)
		return 0, false
	}
	return id, true
}

// loadStatus maps a failed load onto the page's HTTP status.
func loadStatus(notFound bool) int {
	if notFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

// confirmed reads the confirmation field posted by the confirm page.
func confirmed(c *gin.Context) admin.Confirmer {
	return admin.ConfirmFunc(func(string) bool {
		return c.PostForm("confirm") == "yes"
	})
}
