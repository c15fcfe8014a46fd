package render

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/kyaoi/chronoline/internal/timeline"
)

func scenario(t *testing.T) *timeline.Timeline {
	t.Helper()
	tl, err := timeline.New([]timeline.Event{
		{Year: 1969, Title: "ARPANET", Description: "First *network*.", Category: "Networking", Link: "https://en.wikipedia.org/wiki/ARPANET", Image: "https://example.org/a.png"},
		{Year: 1981, Title: "IBM PC", Description: "The PC.", Category: "Hardware"},
		{Year: 1991, Title: "Web <script>", Description: "Goes live.", Category: "Networking"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return tl
}

func renderPage(t *testing.T, tl *timeline.Timeline, s timeline.State, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	if err := HTML(&buf, tl, s, opts); err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	return buf.String()
}

func TestHTMLShowsOnlyActivePanel(t *testing.T) {
	tl := scenario(t)
	s, _ := timeline.Activate(tl, timeline.Initial(tl, timeline.Light), 1981)
	page := renderPage(t, tl, s, Options{})

	if got := strings.Count(page, `class="event-card show"`); got != 1 {
		t.Errorf("expected 1 shown card, got %d", got)
	}
	if !strings.Contains(page, `class="event-card show" id="event-1981"`) {
		t.Error("card for 1981 should be shown")
	}
	for _, year := range []string{"1969", "1991"} {
		if !strings.Contains(page, `class="event-card" id="event-`+year+`"`) {
			t.Errorf("card for %s should be hidden", year)
		}
	}
	if got := strings.Count(page, `timeline-dot active`); got != 1 {
		t.Errorf("expected 1 active marker, got %d", got)
	}
	if !strings.Contains(page, `left: 50.00%`) {
		t.Error("middle marker should sit at 50%")
	}
	if !strings.Contains(page, `left: 100.00%`) {
		t.Error("last marker should sit at 100%")
	}
}

func TestHTMLTheme(t *testing.T) {
	tl := scenario(t)
	light := renderPage(t, tl, timeline.Initial(tl, timeline.Light), Options{})
	if !strings.Contains(light, "<body>") {
		t.Error("light theme should not set data-theme")
	}
	if !strings.Contains(light, "theme=dark") {
		t.Error("theme toggle should link to the dark theme")
	}

	dark := renderPage(t, tl, timeline.Initial(tl, timeline.Dark), Options{})
	if !strings.Contains(dark, `<body data-theme="dark">`) {
		t.Error("dark theme should set data-theme on body")
	}
}

func TestHTMLModal(t *testing.T) {
	tl := scenario(t)
	s := timeline.Initial(tl, timeline.Light)
	if page := renderPage(t, tl, s, Options{}); strings.Contains(page, `id="modal"`) {
		t.Error("closed modal should not be rendered")
	}

	s, _ = timeline.OpenDetails(tl, s, 1969)
	page := renderPage(t, tl, s, Options{})
	for _, want := range []string{
		`id="modal"`,
		`class="modal-backdrop"`,
		`class="modal-close"`,
		`<strong>Category:</strong> Networking`,
		`<em>network</em>`,
		`rel="noopener noreferrer"`,
		`onerror="this.style.display='none'"`,
		`class="modal-open"`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("modal page missing %q", want)
		}
	}
	if !strings.Contains(page, `class="event-card show" id="event-1969"`) {
		t.Error("opening details must not change the shown card")
	}
}

func TestHTMLEscapesText(t *testing.T) {
	tl := scenario(t)
	page := renderPage(t, tl, timeline.Initial(tl, timeline.Light), Options{})
	if strings.Contains(page, "Web <script>") {
		t.Error("titles must be escaped")
	}
	if !strings.Contains(page, "Web &lt;script&gt;") {
		t.Error("escaped title not found")
	}
}

func TestHTMLStaticDropsLinks(t *testing.T) {
	tl := scenario(t)
	page := renderPage(t, tl, timeline.Initial(tl, timeline.Light), Options{Static: true, Title: "Milestones"})
	if strings.Contains(page, "View Details") || strings.Contains(page, `class="theme-toggle"`) {
		t.Error("static export should not contain navigation controls")
	}
	if !strings.Contains(page, "<title>Milestones</title>") {
		t.Error("custom title missing")
	}
}

func TestHTMLEmptyTimeline(t *testing.T) {
	tl, _ := timeline.New(nil)
	page := renderPage(t, tl, timeline.Initial(tl, timeline.Light), Options{})
	if strings.Contains(page, `<article class="event-card`) {
		t.Error("empty timeline should render no cards")
	}
}

func TestLinkerKeepsState(t *testing.T) {
	tl := scenario(t)
	s, _ := timeline.Activate(tl, timeline.Initial(tl, timeline.Dark), 1991)
	s, _ = timeline.OpenDetails(tl, s, 1969)
	l := linker{base: "/", state: s}

	if got := l.with("year", "1981"); got != "/?details=1969&theme=dark&year=1981" {
		t.Errorf("with(year): got %q", got)
	}
	if got := l.without("details"); got != "/?theme=dark&year=1991" {
		t.Errorf("without(details): got %q", got)
	}
}

func TestEncodeScreenshot(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var shot bytes.Buffer
	if err := png.Encode(&shot, img); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := encodeScreenshot(shot.Bytes(), "png", &out); err != nil {
		t.Fatalf("png: %v", err)
	}
	if !bytes.Equal(out.Bytes(), shot.Bytes()) {
		t.Error("png output should be copied unchanged")
	}

	out.Reset()
	if err := encodeScreenshot(shot.Bytes(), "jpeg", &out); err != nil {
		t.Fatalf("jpeg: %v", err)
	}
	if _, err := jpeg.Decode(&out); err != nil {
		t.Errorf("jpeg output does not decode: %v", err)
	}

	if err := encodeScreenshot(shot.Bytes(), "gif", &out); err == nil {
		t.Error("gif should be rejected")
	}
}

func TestHTMLLiveReload(t *testing.T) {
	tl := scenario(t)
	s := timeline.Initial(tl, timeline.Light)

	page := renderPage(t, tl, s, Options{LiveURL: "/live"})
	if !strings.Contains(page, "new WebSocket(") {
		t.Error("live page should open a websocket")
	}
	if strings.Contains(renderPage(t, tl, s, Options{}), "WebSocket") {
		t.Error("no live script without a live URL")
	}
	if strings.Contains(renderPage(t, tl, s, Options{LiveURL: "/live", Static: true}), "WebSocket") {
		t.Error("static exports must not open a websocket")
	}
}
