package server

import (
	"net/http"
	"strings"
)

// RouteDoc describes one registered endpoint so the API stays
// discoverable without a separate docs page.
type RouteDoc struct {
	Method      string `json:"method"`
	Pattern     string `json:"pattern"`
	Summary     string `json:"summary,omitempty"`
	ExampleBody string `json:"example_body,omitempty"`
}

type RouteRegistry struct {
	routes []RouteDoc
}

func (rr *RouteRegistry) List() []RouteDoc {
	out := make([]RouteDoc, len(rr.routes))
	copy(out, rr.routes)
	return out
}

// Handle registers the handler on the mux and records its doc entry.
// methodAndPattern uses the ServeMux "METHOD /path" form.
func Handle(mux *http.ServeMux, rr *RouteRegistry, methodAndPattern, summary, exampleBody string, h http.HandlerFunc) {
	method, pattern, _ := strings.Cut(methodAndPattern, " ")
	rr.routes = append(rr.routes, RouteDoc{
		Method:      method,
		Pattern:     pattern,
		Summary:     summary,
		ExampleBody: exampleBody,
	})
	mux.HandleFunc(methodAndPattern, h)
}
