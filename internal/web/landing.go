package web

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	_ "embed"

	"github.com/gin-gonic/gin"
)

//go:embed index.html.tpl
var indexTmpl string

//go:embed notfound.html.tpl
var notFoundTmpl string

const (
	Title    = "Event Ticket Manager"
	Subtitle = "Create, sell, and manage event tickets with ease"
	Footer   = "Powered by Go + Gin"
)

// Action is a call-to-action button. Buttons are not wired to anything.
type Action struct {
	Label   string
	Primary bool
}

type pageData struct {
	Title    string
	Subtitle string
	Actions  []Action
	Footer   string
}

var actions = []Action{
	{Label: "Browse Events", Primary: true},
	{Label: "Organizer Dashboard"},
}

// Landing renders the static landing page.
// The index is rendered once, it never changes for the lifetime of the process.
type Landing struct {
	index  []byte
	tpl404 *template.Template
}

func NewLanding() (*Landing, error) {
	tplIndex, err := template.New("index").Parse(indexTmpl)
	if err != nil {
		return nil, err
	}
	tpl404, err := template.New("notfound").Parse(notFoundTmpl)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tplIndex.Execute(&buf, pageData{
		Title:    Title,
		Subtitle: Subtitle,
		Actions:  actions,
		Footer:   Footer,
	}); err != nil {
		return nil, err
	}

	return &Landing{
		index:  buf.Bytes(),
		tpl404: tpl404,
	}, nil
}

func (l *Landing) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", l.index)
}

func (l *Landing) NotFound(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusNotFound)
	if err := l.tpl404.Execute(c.Writer, map[string]any{"Title": Title, "Path": c.Request.URL.Path}); err != nil {
		slog.Error("render not found page", "error", err)
	}
}
