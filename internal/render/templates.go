package render

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="theme-color" content="{{if eq .ThemeAttr "dark"}}#1a1a1a{{else}}#ffffff{{end}}">
<title>{{.Title}}</title>
<style>
` + pageCSS + `
</style>
</head>
<body{{if .ThemeAttr}} data-theme="{{.ThemeAttr}}"{{end}}{{if .Details}} class="modal-open"{{end}}>
<header role="banner">
  <div class="logo">{{.Title}}</div>
  {{- if not .Static}}
  <a class="theme-toggle" href="{{.ThemeHref}}" aria-label="Switch theme" title="Currently using {{.Theme}} theme">{{if eq .ThemeAttr "dark"}}☀{{else}}☾{{end}}</a>
  {{- end}}
</header>
<main id="main-content">
<section id="timeline">
  <article class="timeline-container">
    <div class="timeline-line" role="tablist">
    {{- range .Markers}}
      {{- if $.Static}}
      <span class="timeline-dot{{if .Active}} active{{end}}" style="left: {{printf "%.2f" .Position}}%" data-year="{{.Year}}"></span>
      {{- else}}
      <a class="timeline-dot{{if .Active}} active{{end}}" style="left: {{printf "%.2f" .Position}}%" href="{{.Href}}" data-year="{{.Year}}" role="tab" aria-selected="{{.Active}}" aria-label="View {{.Title}} from {{.Year}}"></a>
      {{- end}}
      <div class="year" style="left: {{printf "%.2f" .Position}}%" aria-hidden="true">{{.Year}}</div>
    {{- end}}
    </div>
  </article>
  {{- range .Panels}}
  <article class="event-card{{if .Shown}} show{{end}}" id="event-{{.Year}}" role="tabpanel">
    <header class="event-header">
      <div class="event-year">{{.Year}}</div>
      <h2 class="event-title">{{.Title}}</h2>
    </header>
    <div class="event-content">
      {{- if .Image}}
      <figure class="event-image">
        <img src="{{.Image}}" alt="{{.Title}}" onerror="this.style.display='none'">
      </figure>
      {{- end}}
      <div class="event-description">
        {{.Body}}
        <div class="event-actions">
          {{- if .Link}}
          <a href="{{.Link}}" class="learn-more" target="_blank" rel="noopener noreferrer">Learn More</a>
          {{- end}}
          {{- if not $.Static}}
          <a href="{{.DetailsHref}}" class="details-button">View Details</a>
          {{- end}}
        </div>
      </div>
    </div>
    {{- if .Category}}
    <footer class="event-footer"><p class="event-category">{{.Category}}</p></footer>
    {{- end}}
  </article>
  {{- end}}
</section>
</main>
{{- with .Details}}
<div id="modal" role="dialog" aria-modal="true" data-close="{{.CloseHref}}">
  <a class="modal-backdrop" href="{{.CloseHref}}" aria-label="Close"></a>
  <div class="modal-content">
    <a class="modal-close" href="{{.CloseHref}}" aria-label="Close modal">✖</a>
    <div id="modal-details">
      <h2>{{.Title}}</h2>
      {{- if .Category}}
      <p><strong>Category:</strong> {{.Category}}</p>
      {{- end}}
      {{.Body}}
      {{- if .Image}}
      <img src="{{.Image}}" alt="{{.Title}}" onerror="this.style.display='none'">
      {{- end}}
      {{- if .Link}}
      <a href="{{.Link}}" class="learn-more" target="_blank" rel="noopener noreferrer">Visit Wikipedia</a>
      {{- end}}
    </div>
  </div>
</div>
<script>
document.addEventListener('keydown', function (e) {
  if (e.key !== 'Escape') return;
  var modal = document.getElementById('modal');
  if (modal) window.location.href = modal.dataset.close;
});
</script>
{{- end}}
{{- if .LiveURL}}
<script>
(function () {
  var scheme = location.protocol === 'https:' ? 'wss://' : 'ws://';
  var ws = new WebSocket(scheme + location.host + {{.LiveURL}});
  ws.onmessage = function () { window.location.reload(); };
})();
</script>
{{- end}}
</body>
</html>
`

const pageCSS = `:root { --bg: #ffffff; --fg: #1a1a1a; --muted: #6b7280; --accent: #2563eb; --card: #f8f8f8; --line: #d1d5db; }
[data-theme="dark"] { --bg: #1a1a1a; --fg: #f3f4f6; --muted: #9ca3af; --accent: #60a5fa; --card: #262626; --line: #404040; }
body { margin: 0; font-family: system-ui, sans-serif; background: var(--bg); color: var(--fg); }
body.modal-open { overflow: hidden; }
header[role="banner"] { display: flex; justify-content: space-between; align-items: center; padding: 1rem 2rem; }
.logo { font-weight: 700; font-size: 1.25rem; }
.theme-toggle { text-decoration: none; font-size: 1.25rem; color: var(--fg); }
#timeline { max-width: 960px; margin: 0 auto; padding: 2rem; }
.timeline-container { padding: 3rem 1rem; }
.timeline-line { position: relative; height: 4px; background: var(--line); }
.timeline-dot { position: absolute; top: 50%; width: 16px; height: 16px; border-radius: 50%; background: var(--line); border: 3px solid var(--bg); transform: translate(-50%, -50%); cursor: pointer; }
.timeline-dot.active { background: var(--accent); }
.year { position: absolute; top: 18px; transform: translateX(-50%); font-size: 0.85rem; color: var(--muted); }
.event-card { display: none; background: var(--card); border-radius: 8px; padding: 1.5rem; margin-top: 2rem; }
.event-card.show { display: block; }
.event-header { display: flex; gap: 1rem; align-items: baseline; }
.event-year { font-weight: 700; color: var(--accent); }
.event-content { display: flex; gap: 1.5rem; }
.event-image img { max-width: 200px; border-radius: 8px; }
.learn-more, .details-button { color: var(--accent); margin-right: 1rem; }
.event-category { color: var(--muted); font-size: 0.85rem; }
#modal { position: fixed; inset: 0; display: flex; align-items: center; justify-content: center; }
.modal-backdrop { position: absolute; inset: 0; background: rgba(0, 0, 0, 0.6); }
.modal-content { position: relative; max-width: 560px; width: 90%; background: var(--bg); border-radius: 8px; padding: 2rem; }
.modal-close { position: absolute; top: 0.75rem; right: 1rem; text-decoration: none; color: var(--fg); }
#modal-details img { width: 100%; border-radius: 8px; margin-top: 1rem; }
#modal-details .learn-more { display: block; margin-top: 1rem; text-align: center; }`
