package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"catalog/admin/internal/admin"
	"catalog/admin/internal/domain"
	"catalog/admin/internal/format"
	"catalog/admin/internal/notify"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"home",
	"categories",
	"category_detail",
	"category_form",
	"products",
	"product_detail",
	"product_form",
	"confirm",
	"not_found",
}

// pageRenderer keeps one template set per page, each sharing the layout,
// so that every page can define its own "content" block.
type pageRenderer struct {
	pages map[string]*template.Template
}

func newPageRenderer(loc *time.Location) (*pageRenderer, error) {
	funcs := templateFuncs(loc)
	r := &pageRenderer{pages: make(map[string]*template.Template, len(pageNames))}

	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse page %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

func (r *pageRenderer) Instance(name string, data any) render.Render {
	tmpl, ok := r.pages[name]
	if !ok {
		panic(fmt.Sprintf("web: unknown page %q", name))
	}
	return render.HTML{Template: tmpl, Name: "layout", Data: data}
}

func templateFuncs(loc *time.Location) template.FuncMap {
	inZone := func(t *time.Time) *time.Time {
		if t == nil || t.IsZero() {
			return nil
		}
		local := t.In(loc)
		return &local
	}

	return template.FuncMap{
		"currency":     func(m domain.Money) string { return format.Currency(m.Float64()) },
		"date":         func(t *time.Time) string { return format.Date(inZone(t)) },
		"dateTime":     func(t *time.Time) string { return format.DateTime(inZone(t)) },
		"units":        units,
		"truncate":     format.Truncate,
		"stock":        format.StockStatus,
		"categoryPath": admin.CategoryPath,
		"productPath":  admin.ProductPath,
		"noticeClass":  noticeClass,
	}
}

// units renders a count with pt-BR digit grouping.
func units(n int) string {
	return format.Number(float64(n), 0)
}

func noticeClass(level notify.Level) string {
	switch level {
	case notify.LevelSuccess:
		return "alert-success"
	case notify.LevelError:
		return "alert-danger"
	default:
		return "alert-info"
	}
}
