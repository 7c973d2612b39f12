package views

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/trailmark/waypoint/pkg/waypoint/router"
)

var homeTemplate = template.Must(template.New("home").Parse(`<section class="home">
<h1>{{.Title}}</h1>
{{- if .Projects}}
<ul class="projects">
{{- range .Projects}}
<li><a href="{{.Href}}" data-route="{{.Href}}">{{.Name}}</a> <span class="progress">{{.Progress}}</span></li>
{{- end}}
</ul>
{{- else}}
<p class="empty">{{.Empty}}</p>
{{- end}}
</section>`))

var projectTemplate = template.Must(template.New("project").Parse(`<section class="project" data-project="{{.ID}}">
<h1>{{.Name}}</h1>
<p class="progress">{{.Progress}}</p>
<p class="walk-count">{{.WalkCount}}</p>
{{- if .Walks}}
<ul class="walks">
{{- range .Walks}}
<li><a href="{{.Href}}" data-route="{{.Href}}">{{.Date}}</a> {{.Distance}}</li>
{{- end}}
</ul>
{{- end}}
</section>`))

var walkTemplate = template.Must(template.New("walk").Parse(`<section class="walk">
<h1>{{.Title}}</h1>
<p class="distance">{{.Distance}}</p>
<a href="{{.Back}}" data-route="{{.Back}}">{{.BackLabel}}</a>
</section>`))

var aboutTemplate = template.Must(template.New("about").Parse(`<section class="about">
<h1>{{.Title}}</h1>
<p>{{.Body}}</p>
</section>`))

var notFoundTemplate = template.Must(template.New("not-found").Parse(`<section class="not-found">
<h1>{{.Title}}</h1>
<p>{{.Body}}</p>
{{- if .Suggestion}}
<p class="suggestion"><a href="{{.Suggestion}}" data-route="{{.Suggestion}}">{{.SuggestionText}}</a></p>
{{- end}}
</section>`))

func execute(t *template.Template, data any) (router.Content, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return router.NoContent, fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return router.Content(buf.String()), nil
}
