package client

import (
	"html/template"
	"io"
	"strings"

	"github.com/Amitgupta170804/BlogEase/dto"
)

const (
	MsgFetchFailed = "Could not fetch blogs. Is the backend server running?"
	MsgNoBlogs     = "No blogs to display."
)

var feedTmpl = template.Must(template.New("feed").Funcs(template.FuncMap{
	"author": func(b dto.BlogView) string {
		if b.Author == nil {
			return "Anonymous"
		}
		return b.Author.Username
	},
	"date": func(b dto.BlogView) string { return b.CreatedAt.Local().Format("1/2/2006") },
	"join": strings.Join,
}).Parse(`<div id="blogs-container">
{{- if .Message}}
<p>{{.Message}}</p>
{{- else}}
{{- range .Blogs}}
<div class="blog-post">
    <h2>{{.Title}}</h2>
    <div class="meta">
        <span>By: {{author .}}</span> |
        <span>On: {{date .}}</span>
    </div>
    <div class="content">
        <p>{{.Content}}</p>
    </div>
    <div class="tags">
        <strong>Tags:</strong> {{join .Tags ", "}}
    </div>
</div>
{{- end}}
{{- end}}
</div>
`))

// Render writes the feed. A non-nil fetchErr shows the static failure
// message instead of any blogs.
func Render(w io.Writer, blogs []dto.BlogView, fetchErr error) error {
	data := struct {
		Message string
		Blogs   []dto.BlogView
	}{Blogs: blogs}

	switch {
	case fetchErr != nil:
		data.Message = MsgFetchFailed
	case len(blogs) == 0:
		data.Message = MsgNoBlogs
	}
	return feedTmpl.Execute(w, data)
}
