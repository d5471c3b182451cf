package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"main/internal/middleware"
	"main/internal/palette"

	"github.com/microcosm-cc/bluemonday"
)

const previewPage = `<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title></head>
<body style="font-family: sans-serif; max-width: 480px; margin: 2em auto">
<h1>{{.Title}}</h1>
<p>{{.Algorithm}} &middot; {{len .Swatches}} colors</p>
{{range .Swatches}}<div style="background: {{.Hex}}; color: {{.TextColor}}; padding: 12px 16px">{{.Hex}}</div>
{{end}}</body>
</html>
`

var previewTemplate = template.Must(template.New("preview").Parse(previewPage))

type previewData struct {
	Title     string
	Algorithm string
	Swatches  []palette.Swatch
}

// PreviewHandler: renders an HTML swatch sheet for quick visual checks
type PreviewHandler struct {
	sanitizer *bluemonday.Policy
	limits    *middleware.Limits
}

// NewPreviewHandler: creates a new PreviewHandler
func NewPreviewHandler(limits *middleware.Limits) *PreviewHandler {
	// removes all HTML/scripts from the client-supplied title
	return &PreviewHandler{
		sanitizer: bluemonday.StrictPolicy(),
		limits:    limits,
	}
}

func (h *PreviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	algorithm := r.URL.Query().Get("algorithm")
	if algorithm == "" {
		algorithm = "golden_ratio"
	}
	count, err := intParam(r, "count", 8)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if count < 1 || !h.limits.ValidateCount(count) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("count must be between 1 and %d", h.limits.MaxColors))
		return
	}

	title := h.sanitizer.Sanitize(r.URL.Query().Get("title"))
	if title == "" {
		title = "Palette preview"
	}

	colors, err := palette.GenerateByName(algorithm, palette.NewRequest(count))
	if err != nil {
		var unknown *palette.UnknownAlgorithmError
		if errors.As(err, &unknown) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "palette generation failed")
		return
	}

	analysis, err := palette.Analyze(colors)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "palette analysis failed")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := previewTemplate.Execute(w, previewData{
		Title:     title,
		Algorithm: algorithm,
		Swatches:  analysis.Swatches,
	}); err != nil {
		log.Printf("Error: Failed to render preview - %v", err)
	}
}
