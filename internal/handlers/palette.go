package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"main/internal/middleware"
	"main/internal/palette"

	"github.com/go-playground/validator/v10"
)

// PaletteRequest: decoded query parameters for palette generation
type PaletteRequest struct {
	Algorithm  string  `validate:"required"`
	Count      int     `validate:"required,min=1"`
	Saturation float64 `validate:"min=0,max=1"`
	Lightness  float64 `validate:"min=0,max=1"`
	Offset     float64
	Analyze    bool
}

// PaletteResponse: generated palette plus optional analysis
type PaletteResponse struct {
	Algorithm string            `json:"algorithm"`
	Count     int               `json:"count"`
	Colors    []string          `json:"colors"`
	Analysis  *palette.Analysis `json:"analysis,omitempty"`
}

// PaletteHandler: serves GET /api/palette
type PaletteHandler struct {
	validate *validator.Validate
	limits   *middleware.Limits
}

// NewPaletteHandler: creates a new PaletteHandler
func NewPaletteHandler(limits *middleware.Limits) *PaletteHandler {
	return &PaletteHandler{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		limits:   limits,
	}
}

func (h *PaletteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req, err := parsePaletteRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			writeError(w, http.StatusBadRequest, formatValidationErrors(validationErrors))
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if !h.limits.ValidateCount(req.Count) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("count exceeds maximum of %d", h.limits.MaxColors))
		return
	}

	colors, err := palette.GenerateByName(req.Algorithm, palette.Request{
		Count:      req.Count,
		Saturation: req.Saturation,
		Lightness:  req.Lightness,
		Offset:     req.Offset,
	})
	if err != nil {
		var unknown *palette.UnknownAlgorithmError
		if errors.As(err, &unknown) || errors.Is(err, palette.ErrInvalidCount) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "palette generation failed")
		return
	}

	resp := PaletteResponse{
		Algorithm: req.Algorithm,
		Count:     req.Count,
		Colors:    colors,
	}
	if req.Analyze {
		analysis, err := palette.Analyze(colors)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "palette analysis failed")
			return
		}
		resp.Analysis = analysis
	}

	writeJSON(w, http.StatusOK, resp)
}

// parsePaletteRequest: decodes query parameters, applying defaults for
// anything unset
func parsePaletteRequest(r *http.Request) (*PaletteRequest, error) {
	count, err := intParam(r, "count", 0)
	if err != nil {
		return nil, err
	}
	saturation, err := floatParam(r, "saturation", palette.DefaultSaturation)
	if err != nil {
		return nil, err
	}
	lightness, err := floatParam(r, "lightness", palette.DefaultLightness)
	if err != nil {
		return nil, err
	}
	offset, err := floatParam(r, "offset", 0)
	if err != nil {
		return nil, err
	}

	return &PaletteRequest{
		Algorithm:  r.URL.Query().Get("algorithm"),
		Count:      count,
		Saturation: saturation,
		Lightness:  lightness,
		Offset:     offset,
		Analyze:    r.URL.Query().Get("analyze") == "true",
	}, nil
}
