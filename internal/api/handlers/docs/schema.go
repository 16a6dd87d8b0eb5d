package docs

import (
	"sort"
	"strings"

	"MerlinsForkAPI/internal/pkg/config"
)

// Endpoint describes one API operation published in the generated schema
type Endpoint struct {
	Method      string
	Path        string
	OperationID string
	Summary     string
	Description string
	Tag         string

	// Secured operations require a bearer access token
	Secured   bool
	Body      *Schema
	Responses map[string]Response
}

// Document is the subset of a Swagger 2.0 document this service produces
type Document struct {
	Swagger             string                    `json:"swagger" yaml:"swagger"`
	Info                Info                      `json:"info" yaml:"info"`
	Host                string                    `json:"host,omitempty" yaml:"host,omitempty"`
	BasePath            string                    `json:"basePath" yaml:"basePath"`
	Schemes             []string                  `json:"schemes,omitempty" yaml:"schemes,omitempty"`
	Consumes            []string                  `json:"consumes" yaml:"consumes"`
	Produces            []string                  `json:"produces" yaml:"produces"`
	SecurityDefinitions map[string]SecurityScheme `json:"securityDefinitions" yaml:"securityDefinitions"`
	Paths               map[string]PathItem       `json:"paths" yaml:"paths"`
}

// Info holds the API title, version and description
type Info struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string `json:"version" yaml:"version"`
}

// SecurityScheme describes an authentication mechanism
type SecurityScheme struct {
	Type        string `json:"type" yaml:"type"`
	Name        string `json:"name" yaml:"name"`
	In          string `json:"in" yaml:"in"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// PathItem maps lower-case HTTP methods to operations
type PathItem map[string]*Operation

// Operation is a single documented API call
type Operation struct {
	OperationID string                `json:"operationId" yaml:"operationId"`
	Summary     string                `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string              `json:"tags,omitempty" yaml:"tags,omitempty"`
	Parameters  []Parameter           `json:"parameters" yaml:"parameters"`
	Responses   map[string]Response   `json:"responses" yaml:"responses"`
	Security    []map[string][]string `json:"security,omitempty" yaml:"security,omitempty"`
}

// Parameter is a request parameter; only body parameters are produced
type Parameter struct {
	Name     string  `json:"name" yaml:"name"`
	In       string  `json:"in" yaml:"in"`
	Required bool    `json:"required" yaml:"required"`
	Schema   *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// Response describes one response status
type Response struct {
	Description string  `json:"description" yaml:"description"`
	Schema      *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// Schema is a JSON schema fragment
type Schema struct {
	Type       string             `json:"type" yaml:"type"`
	Format     string             `json:"format,omitempty" yaml:"format,omitempty"`
	Required   []string           `json:"required,omitempty" yaml:"required,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Object builds an object schema whose properties are all strings
func Object(required []string, optional ...string) *Schema {
	s := &Schema{Type: "object", Required: required, Properties: map[string]*Schema{}}
	for _, name := range append(append([]string(nil), required...), optional...) {
		s.Properties[name] = &Schema{Type: "string"}
	}
	return s
}

const bearerScheme = "Bearer"

// Build assembles the schema document for the given endpoints
func Build(cfg config.DocsConfig, host, scheme string, endpoints []Endpoint) *Document {
	doc := &Document{
		Swagger: "2.0",
		Info: Info{
			Title:       cfg.Title,
			Description: cfg.Description,
			Version:     cfg.DefaultVersion,
		},
		Host:     host,
		BasePath: "/",
		Consumes: []string{"application/json"},
		Produces: []string{"application/json"},
		SecurityDefinitions: map[string]SecurityScheme{
			bearerScheme: {
				Type:        "apiKey",
				Name:        "Authorization",
				In:          "header",
				Description: `Access token, as "Bearer <token>"`,
			},
		},
		Paths: map[string]PathItem{},
	}
	if scheme != "" {
		doc.Schemes = []string{scheme}
	}

	for _, e := range endpoints {
		item, ok := doc.Paths[e.Path]
		if !ok {
			item = PathItem{}
			doc.Paths[e.Path] = item
		}

		op := &Operation{
			OperationID: e.OperationID,
			Summary:     e.Summary,
			Description: e.Description,
			Parameters:  []Parameter{},
			Responses:   e.Responses,
		}
		if e.Tag != "" {
			op.Tags = []string{e.Tag}
		}
		if e.Body != nil {
			op.Parameters = append(op.Parameters, Parameter{Name: "data", In: "body", Required: true, Schema: e.Body})
		}
		if e.Secured {
			op.Security = []map[string][]string{{bearerScheme: {}}}
		}
		if op.Responses == nil {
			op.Responses = map[string]Response{"200": {Description: "OK"}}
		}
		item[strings.ToLower(e.Method)] = op
	}

	return doc
}

// SortedEndpoints returns endpoints ordered by path then method
func SortedEndpoints(endpoints []Endpoint) []Endpoint {
	out := append([]Endpoint(nil), endpoints...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}
