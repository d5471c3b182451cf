package handlers

import (
	"net/http"

	"main/internal/middleware"
)

// Router: bundles the HTTP handlers with their shared dependencies
type Router struct {
	palette    *PaletteHandler
	algorithms *AlgorithmsHandler
	preview    *PreviewHandler
}

// NewRouter: creates all handlers with shared limits
func NewRouter(limits *middleware.Limits) *Router {
	return &Router{
		palette:    NewPaletteHandler(limits),
		algorithms: NewAlgorithmsHandler(),
		preview:    NewPreviewHandler(limits),
	}
}

// Register: mounts the handlers on a mux
func (rt *Router) Register(mux *http.ServeMux) {
	mux.Handle("/api/palette", rt.palette)
	mux.Handle("/api/algorithms", rt.algorithms)
	mux.Handle("/preview", rt.preview)
}
