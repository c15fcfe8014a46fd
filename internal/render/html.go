// Package render writes a timeline state out as a standalone HTML page or
// as a raster image of that page.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/kyaoi/chronoline/internal/timeline"
)

// Options tune the generated page.
type Options struct {
	Title string
	// BaseURL prefixes the links of markers and controls. Leave empty for
	// relative "?year=" links.
	BaseURL string
	// Static drops the navigation links, for exports that are not served.
	Static bool
	// LiveURL is the websocket path that announces changed events. The page
	// reloads itself when a message arrives.
	LiveURL string
}

type markerData struct {
	timeline.Marker
	Href  string
	Title string
}

type panelData struct {
	timeline.Panel
	Body        template.HTML
	DetailsHref string
}

type detailsData struct {
	timeline.Event
	Body      template.HTML
	CloseHref string
}

type pageData struct {
	Title     string
	ThemeAttr string
	Theme     timeline.Theme
	ThemeHref string
	Markers   []markerData
	Panels    []panelData
	Details   *detailsData
	Static    bool
	LiveURL   string
}

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// HTML writes the page for state s.
func HTML(w io.Writer, tl *timeline.Timeline, s timeline.State, opts Options) error {
	if opts.Title == "" {
		opts.Title = "Timeline"
	}
	view := timeline.Render(tl, s)
	links := linker{base: opts.BaseURL, state: s}

	data := pageData{
		Title:     opts.Title,
		ThemeAttr: view.Theme.Attr(),
		Theme:     view.Theme,
		ThemeHref: links.with("theme", view.Theme.Toggle().String()),
		Static:    opts.Static,
	}
	if !opts.Static {
		data.LiveURL = opts.LiveURL
	}
	for _, m := range view.Markers {
		ev, _ := tl.At(m.Index)
		data.Markers = append(data.Markers, markerData{
			Marker: m,
			Href:   links.with("year", strconv.Itoa(m.Year)),
			Title:  ev.Title,
		})
	}
	for _, p := range view.Panels {
		body, err := markdown(p.Description)
		if err != nil {
			return fmt.Errorf("rendering description for %d: %w", p.Year, err)
		}
		data.Panels = append(data.Panels, panelData{
			Panel:       p,
			Body:        body,
			DetailsHref: links.with("details", strconv.Itoa(p.Year)),
		})
	}
	if view.Details != nil {
		body, err := markdown(view.Details.Description)
		if err != nil {
			return fmt.Errorf("rendering details for %d: %w", view.Details.Year, err)
		}
		data.Details = &detailsData{
			Event:     *view.Details,
			Body:      body,
			CloseHref: links.without("details"),
		}
	}
	return pageTmpl.Execute(w, data)
}

func markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// linker builds query links that carry the rest of the state along.
type linker struct {
	base  string
	state timeline.State
}

func (l linker) values() url.Values {
	v := url.Values{}
	if l.state.HasActive {
		v.Set("year", strconv.Itoa(l.state.Active))
	}
	v.Set("theme", l.state.Theme.String())
	if l.state.Modal.Open {
		v.Set("details", strconv.Itoa(l.state.Modal.Year))
	}
	return v
}

func (l linker) with(key, value string) string {
	v := l.values()
	v.Set(key, value)
	return l.base + "?" + v.Encode()
}

func (l linker) without(key string) string {
	v := l.values()
	v.Del(key)
	return l.base + "?" + v.Encode()
}
