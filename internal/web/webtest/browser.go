// Package webtest drives the admin's HTML like a user would: it follows
// redirects, keeps cookies and parses every page with goquery.
package webtest

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"catalog/admin/internal/notify"

	"github.com/PuerkitoBio/goquery"
)

type Browser struct {
	baseURL string
	http    *http.Client
}

func NewBrowser(baseURL string) (*Browser, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	return &Browser{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar},
	}, nil
}

// Get loads path and parses the final page after redirects.
func (b *Browser) Get(path string) (*Page, error) {
	resp, err := b.http.Get(b.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	return parsePage(resp)
}

// Submit posts values to path the way an HTML form would.
func (b *Browser) Submit(path string, values url.Values) (*Page, error) {
	resp, err := b.http.PostForm(b.baseURL+path, values)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", path, err)
	}
	return parsePage(resp)
}

// SubmitForm posts the form matched by selector on page, overriding
// the given fields and keeping every other field's current value.
func (b *Browser) SubmitForm(page *Page, selector string, fields map[string]string) (*Page, error) {
	f := page.Doc.Find(selector).First()
	if f.Length() == 0 {
		return nil, fmt.Errorf("form %q not found on %s", selector, page.Path)
	}
	action, _ := f.Attr("action")

	values := url.Values{}
	f.Find("input[name], textarea[name], select[name]").Each(func(_ int, field *goquery.Selection) {
		name, _ := field.Attr("name")
		values.Set(name, fieldValue(field))
	})
	for k, v := range fields {
		values.Set(k, v)
	}
	return b.Submit(action, values)
}

func fieldValue(field *goquery.Selection) string {
	switch goquery.NodeName(field) {
	case "textarea":
		return field.Text()
	case "select":
		selected := field.Find("option[selected]").First()
		v, _ := selected.Attr("value")
		return v
	default:
		v, _ := field.Attr("value")
		return v
	}
}

// Page is a parsed response.
type Page struct {
	Status int
	Path   string
	Doc    *goquery.Document
}

func parsePage(resp *http.Response) (*Page, error) {
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Page{
		Status: resp.StatusCode,
		Path:   resp.Request.URL.Path,
		Doc:    doc,
	}, nil
}

func (p *Page) Heading() string {
	return strings.TrimSpace(p.Doc.Find("main h1").First().Text())
}

func (p *Page) Notices() []notify.Notice {
	var notices []notify.Notice
	p.Doc.Find("[data-testid=notice]").Each(func(_ int, s *goquery.Selection) {
		level, _ := s.Attr("data-level")
		notices = append(notices, notify.Notice{
			Level:   notify.Level(level),
			Message: strings.TrimSpace(s.Text()),
		})
	})
	return notices
}

// TestID returns the trimmed text of the first element with data-testid=id.
func (p *Page) TestID(id string) string {
	return strings.TrimSpace(p.Doc.Find(fmt.Sprintf("[data-testid=%q]", id)).First().Text())
}

func (p *Page) Has(selector string) bool {
	return p.Doc.Find(selector).Length() > 0
}

// RowNames lists the names in the rows of the table marked with testid.
func (p *Page) RowNames(table, nameCell string) []string {
	var names []string
	p.Doc.Find(fmt.Sprintf("[data-testid=%q] tbody tr", table)).Each(func(_ int, row *goquery.Selection) {
		names = append(names, strings.TrimSpace(row.Find(fmt.Sprintf("[data-testid=%q] a", nameCell)).First().Text()))
	})
	return names
}

// Options maps the labels of select's options to their values, skipping
// the empty placeholder.
func (p *Page) Options(selectName string) map[string]string {
	options := make(map[string]string)
	p.Doc.Find(fmt.Sprintf("select[name=%q] option", selectName)).Each(func(_ int, o *goquery.Selection) {
		v, _ := o.Attr("value")
		if v == "" {
			return
		}
		options[strings.TrimSpace(o.Text())] = v
	})
	return options
}

// FieldError returns the validation message rendered under the named input.
func (p *Page) FieldError(name string) string {
	field := p.Doc.Find(fmt.Sprintf("[name=%q]", name)).First()
	return strings.TrimSpace(field.Parent().Find("[data-testid=field-error]").First().Text())
}
