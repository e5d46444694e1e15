package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	aferrors "github.com/vango-dev/autoform/internal/errors"
	"github.com/vango-dev/autoform/pkg/factory"
	"github.com/vango-dev/autoform/pkg/form"
	"github.com/vango-dev/autoform/pkg/render"
	"github.com/vango-dev/autoform/pkg/schema"
	"github.com/vango-dev/autoform/pkg/source"
	"github.com/vango-dev/autoform/pkg/ui"
	"github.com/vango-dev/autoform/pkg/vdom"
)

// ErrBadRequest marks request bodies that could not be read or parsed.
var ErrBadRequest = errors.New("server: bad request")

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

// FormInfo describes one schema listed by GET /forms.
type FormInfo struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func (s *Server) handleListForms(w http.ResponseWriter, r *http.Request) {
	forms := []FormInfo{}
	if s.config.Forms != nil {
		refs, err := s.config.Forms.List(r.Context())
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		for _, ref := range refs {
			forms = append(forms, FormInfo{
				Name: strings.TrimSuffix(ref, path.Ext(ref)),
				Path: ref,
			})
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"forms": forms})
}

func (s *Server) handleFormPage(w http.ResponseWriter, r *http.Request) {
	doc, err := s.loadForm(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	node, err := s.builder.Build(r.Context(), doc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writePage(w, r, http.StatusOK, doc, node)
}

// handleFormSubmit validates posted values against the schema's rules and
// re-renders the form with values and errors filled in. Invalid submissions
// answer 422.
func (s *Server) handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	doc, err := s.loadForm(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
	if err := r.ParseForm(); err != nil {
		s.writeError(w, r, bodyError(err))
		return
	}

	rules, err := doc.Rules()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	node, err := s.builder.Build(r.Context(), doc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	state := form.NewState(submittedValues(doc, r))
	valid := state.Validate(rules)
	state.Apply(node)

	status := http.StatusOK
	if !valid {
		status = http.StatusUnprocessableEntity
	}
	s.logger.Debug("form submitted", "form", doc.Title, "valid", valid)
	s.writePage(w, r, status, doc, node)
}

// submittedValues collects the posted values of the schema's fields. Fields
// posted more than once keep every value.
func submittedValues(doc *schema.Document, r *http.Request) map[string]any {
	values := make(map[string]any)
	for _, name := range doc.Names() {
		vals, ok := r.PostForm[name]
		if !ok {
			continue
		}
		if len(vals) == 1 {
			values[name] = vals[0]
		} else {
			values[name] = append([]string(nil), vals...)
		}
	}
	return values
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes))
	if err != nil {
		s.writeError(w, r, bodyError(err))
		return
	}
	doc, err := schema.Decode(data, requestFormat(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	node, err := s.builder.Build(r.Context(), doc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	renderer := s.renderer
	if r.URL.Query().Get("pretty") == "true" {
		renderer = render.NewRenderer(render.RendererConfig{Pretty: true})
	}
	html, err := renderer.RenderToString(node)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, html)
}

// requestFormat picks the decoder from the format query parameter, then the
// Content-Type header, falling back to detection.
func requestFormat(r *http.Request) schema.Format {
	switch strings.ToLower(r.URL.Query().Get("format")) {
	case "json":
		return schema.FormatJSON
	case "yaml", "yml":
		return schema.FormatYAML
	}
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch {
	case mediaType == contentTypeJSON:
		return schema.FormatJSON
	case strings.Contains(mediaType, "yaml"):
		return schema.FormatYAML
	}
	return schema.FormatAuto
}

// ComponentsResponse is the body of GET /components.
type ComponentsResponse struct {
	Fields       []string         `json:"fields"`
	Types        []TypeComponents `json:"types"`
	Groups       []string         `json:"groups"`
	DefaultGroup string           `json:"defaultGroup"`
	Roots        []string         `json:"roots"`
	CurrentRoot  string           `json:"currentRoot"`
}

// TypeComponents describes the definitions registered for one type.
// Default is empty when the type falls back to its first definition.
type TypeComponents struct {
	Type    string `json:"type"`
	Count   int    `json:"count"`
	Default string `json:"default,omitempty"`
}

func (s *Server) handleComponents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Components(s.registry))
}

// Components describes the contents of reg, with types sorted by name.
func Components(reg *ui.Registry) ComponentsResponse {
	resp := ComponentsResponse{
		Fields:       reg.FieldComponentIDs(),
		Types:        []TypeComponents{},
		Groups:       reg.GroupComponentIDs(),
		DefaultGroup: reg.DefaultGroupComponentID(),
		Roots:        reg.RootComponentIDs(),
		CurrentRoot:  reg.CurrentRootID(),
	}
	defaults := reg.DefaultFieldComponents()
	for t, defs := range reg.FieldComponents() {
		resp.Types = append(resp.Types, TypeComponents{Type: t, Count: len(defs), Default: defaults[t]})
	}
	sort.Slice(resp.Types, func(i, j int) bool { return resp.Types[i].Type < resp.Types[j].Type })
	return resp
}

func (s *Server) loadForm(ctx context.Context, name string) (*schema.Document, error) {
	if s.config.Forms == nil {
		return nil, aferrors.New("E220").WithMessagef("Schema not found: %s", name).Wrap(source.ErrNotFound)
	}
	data, err := s.config.Forms.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return schema.Decode(data, schema.FormatFromPath(name))
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, status int, doc *schema.Document, node *vdom.VNode) {
	html, err := s.renderer.RenderPageToString(render.PageData{
		Body:        node,
		Title:       doc.Title,
		StyleSheets: s.config.Stylesheets,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	_, _ = io.WriteString(w, html)
}

// StatusCode maps an error to the HTTP status the server answers with.
func StatusCode(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, source.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, source.ErrInvalidRef),
		errors.Is(err, schema.ErrMalformed),
		errors.Is(err, schema.ErrInvalidDocument),
		errors.Is(err, factory.ErrInvalidArgument),
		errors.Is(err, factory.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, factory.ErrNotFound),
		errors.Is(err, factory.ErrResolution):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusCode(err)
	ae := aferrors.FromError(err, "E232")

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	} else {
		s.logger.Debug("request rejected", "path", r.URL.Path, "status", status, "error", err)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_, _ = io.WriteString(w, `{"error":`+ae.FormatJSON()+"}\n")
}

func bodyError(err error) error {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return aferrors.New("E230").Wrap(err)
	}
	return aferrors.New("E231").WithDetail(err.Error()).Wrap(errors.Join(ErrBadRequest, err))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
