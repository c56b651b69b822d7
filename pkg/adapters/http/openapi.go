package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/aretw0/digit"
	"github.com/aretw0/digit/pkg/plugin"
	"github.com/getkin/kin-openapi/openapi3"
)

// APIVersion is the version of the HTTP contract, independent of the plugin
// version.
const APIVersion = "1.0.0"

// BuildOpenAPI describes every operation currently published by h. Each
// operation gets its own concrete path so request and response schemas can be
// exact.
func BuildOpenAPI(h Host) (*openapi3.T, error) {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Digit API",
			Version:     APIVersion,
			Description: fmt.Sprintf("Numeric and geometry operations (digit %s).", strings.TrimSpace(digit.Version)),
		},
		Paths: openapi3.NewPaths(),
	}

	doc.Paths.Set("/health", &openapi3.PathItem{Get: simpleGet("getHealth", "Liveness probe",
		openapi3.NewObjectSchema().WithProperty("status", openapi3.NewStringSchema()))})
	doc.Paths.Set("/plugins", &openapi3.PathItem{Get: simpleGet("listPlugins", "Registered plugins",
		openapi3.NewArraySchema().WithItems(entrySchema()))})

	for _, e := range h.List() {
		ops, err := h.Operations(e.ID)
		if err != nil {
			return nil, err
		}
		for _, op := range ops {
			doc.Paths.Set(operationPath(e.ID, op.Name), &openapi3.PathItem{Post: invokeOperation(e.ID, op)})
		}
	}
	return doc, nil
}

func operationPath(pluginID, op string) string {
	return "/plugins/" + pluginID + "/operations/" + op
}

func simpleGet(id, summary string, schema *openapi3.Schema) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = id
	op.Summary = summary
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription(summary).WithJSONSchema(schema),
		}),
	)
	return op
}

func invokeOperation(pluginID string, op plugin.Operation) *openapi3.Operation {
	body := openapi3.NewObjectSchema()
	var required []string
	for _, p := range op.Params {
		s := paramSchema(p.Type)
		s.Description = p.Description
		body = body.WithProperty(p.Name, s)
		if !p.Optional {
			required = append(required, p.Name)
		}
	}
	if len(required) > 0 {
		body = body.WithRequired(required)
	}

	response := openapi3.NewObjectSchema().
		WithProperty("plugin", openapi3.NewStringSchema()).
		WithProperty("operation", openapi3.NewStringSchema()).
		WithProperty("result", resultSchema(op.Returns)).
		WithRequired([]string{"plugin", "operation", "result"})

	errorBody := openapi3.NewObjectSchema().WithProperty("error", openapi3.NewStringSchema())

	o := openapi3.NewOperation()
	o.OperationID = pluginID + "_" + op.Name
	o.Summary = op.Description
	o.Tags = []string{pluginID}
	o.RequestBody = &openapi3.RequestBodyRef{Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(body)}
	o.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription("Operation result").WithJSONSchema(response),
		}),
		openapi3.WithStatus(http.StatusBadRequest, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription("Invalid arguments").WithJSONSchema(errorBody),
		}),
		openapi3.WithStatus(http.StatusNotFound, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription("Unknown plugin or operation").WithJSONSchema(errorBody),
		}),
	)
	return o
}

// numberSchema accepts a JSON number or one of the non-finite spellings.
func numberSchema() *openapi3.Schema {
	return openapi3.NewOneOfSchema(
		openapi3.NewFloat64Schema(),
		openapi3.NewStringSchema().WithEnum("NaN", "+Inf", "-Inf"),
	)
}

func pointSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("x", numberSchema()).
		WithProperty("y", numberSchema()).
		WithRequired([]string{"x", "y"})
}

func paramSchema(t plugin.ParamType) *openapi3.Schema {
	switch t {
	case plugin.ParamInteger:
		return openapi3.NewIntegerSchema()
	case plugin.ParamNumbers:
		return openapi3.NewArraySchema().WithItems(numberSchema())
	case plugin.ParamPoint:
		return pointSchema()
	default:
		return numberSchema()
	}
}

func resultSchema(t plugin.ResultType) *openapi3.Schema {
	switch t {
	case plugin.ResultBool:
		return openapi3.NewBoolSchema()
	case plugin.ResultPoint:
		return pointSchema()
	default:
		return numberSchema()
	}
}

func entrySchema() *openapi3.Schema {
	meta := openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("version", openapi3.NewStringSchema()).
		WithProperty("description", openapi3.NewStringSchema()).
		WithProperty("author", openapi3.NewStringSchema())
	return openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewStringSchema()).
		WithProperty("metadata", meta)
}
