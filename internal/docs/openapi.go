// Package docs builds the OpenAPI 3.0 document for the API by reflecting
// the request and response models, and serves it as JSON. The document is
// assembled once at startup; handlers never consult it.
package docs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/example/demo-api/internal/api"
	"github.com/swaggest/jsonschema-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// userUpdate and orderUpdate are documentation stand-ins for the tri-state
// update DTOs in the api package: the schema of a PATCH body is "every
// field optional", which plain pointers express and the reflector
// understands, while the wrapper type the handlers decode into does not
// reflect cleanly.
type userUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Age   *int    `json:"age,omitempty"`
}

type orderUpdate struct {
	Item     *string  `json:"item,omitempty"`
	Quantity *int     `json:"quantity,omitempty"`
	Total    *float64 `json:"total,omitempty"`
}

// Spec builds the OpenAPI document covering every operation the router
// exposes. Paths use the OpenAPI {param} form, which matches the chi
// route patterns.
func Spec(title, version string) (*openapi3.Spec, error) {
	spec := &openapi3.Spec{
		Openapi: "3.0.3",
		Info: openapi3.Info{
			Title:   title,
			Version: version,
		},
	}

	type op struct {
		method, path string
		operation    func() (openapi3.Operation, error)
	}

	ops := []op{
		{http.MethodGet, "/users", func() (openapi3.Operation, error) {
			return listOperation("Users", "List all users", []api.UserResponse{})
		}},
		{http.MethodPost, "/users", func() (openapi3.Operation, error) {
			return bodyOperation("Users", "Create a new user", http.StatusCreated, api.CreateUserRequest{}, api.UserResponse{})
		}},
		{http.MethodGet, "/users/{userID}", func() (openapi3.Operation, error) {
			return itemOperation("Users", "Get a user by ID", "userID", api.UserResponse{})
		}},
		{http.MethodPut, "/users/{userID}", func() (openapi3.Operation, error) {
			return itemBodyOperation("Users", "Fully update a user", "userID", api.CreateUserRequest{}, api.UserResponse{})
		}},
		{http.MethodPatch, "/users/{userID}", func() (openapi3.Operation, error) {
			return itemBodyOperation("Users", "Partially update a user", "userID", userUpdate{}, api.UserResponse{})
		}},
		{http.MethodDelete, "/users/{userID}", func() (openapi3.Operation, error) {
			return deleteOperation("Users", "Delete a user", "userID")
		}},

		{http.MethodGet, "/orders", func() (openapi3.Operation, error) {
			return listOperation("Orders", "List all orders", []api.OrderResponse{})
		}},
		{http.MethodPost, "/orders", func() (openapi3.Operation, error) {
			return bodyOperation("Orders", "Create a new order", http.StatusCreated, api.CreateOrderRequest{}, api.OrderResponse{})
		}},
		{http.MethodGet, "/orders/user/{userID}", func() (openapi3.Operation, error) {
			return itemOperation("Orders", "Get all orders for a user", "userID", []api.OrderResponse{})
		}},
		{http.MethodGet, "/orders/{orderID}", func() (openapi3.Operation, error) {
			return itemOperation("Orders", "Get an order by ID", "orderID", api.OrderResponse{})
		}},
		{http.MethodPut, "/orders/{orderID}", func() (openapi3.Operation, error) {
			return itemBodyOperation("Orders", "Fully update an order", "orderID", api.CreateOrderRequest{}, api.OrderResponse{})
		}},
		{http.MethodPatch, "/orders/{orderID}", func() (openapi3.Operation, error) {
			return itemBodyOperation("Orders", "Partially update an order", "orderID", orderUpdate{}, api.OrderResponse{})
		}},
		{http.MethodDelete, "/orders/{orderID}", func() (openapi3.Operation, error) {
			return deleteOperation("Orders", "Delete an order", "orderID")
		}},
	}

	for _, o := range ops {
		operation, err := o.operation()
		if err != nil {
			return nil, fmt.Errorf("building %s %s: %w", o.method, o.path, err)
		}
		if err := spec.AddOperation(o.method, o.path, operation); err != nil {
			return nil, fmt.Errorf("registering %s %s: %w", o.method, o.path, err)
		}
	}

	return spec, nil
}

// Handler serves the given spec at its mount point as JSON.
func Handler(spec *openapi3.Spec, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(spec); err != nil {
			logger.ErrorContext(r.Context(), "failed to encode openapi schema to json",
				slog.Any("error", err))
		}
	}
}

func schemaOf(v interface{}) (*openapi3.SchemaOrRef, error) {
	var reflector jsonschema.Reflector

	jsonSchema, err := reflector.Reflect(v, jsonschema.InlineRefs)
	if err != nil {
		return nil, err
	}

	var schemaOrRef openapi3.SchemaOrRef
	schemaOrRef.FromJSONSchema(jsonSchema.ToSchemaOrBool())
	return &schemaOrRef, nil
}

func jsonRequestBody(v interface{}) (*openapi3.RequestBodyOrRef, error) {
	schema, err := schemaOf(v)
	if err != nil {
		return nil, err
	}

	required := true
	return &openapi3.RequestBodyOrRef{
		RequestBody: &openapi3.RequestBody{
			Required: &required,
			Content: map[string]openapi3.MediaType{
				"application/json": {Schema: schema},
			},
		},
	}, nil
}

func jsonResponse(v interface{}, description string) (openapi3.ResponseOrRef, error) {
	schema, err := schemaOf(v)
	if err != nil {
		return openapi3.ResponseOrRef{}, err
	}

	return openapi3.ResponseOrRef{
		Response: &openapi3.Response{
			Description: description,
			Content: map[string]openapi3.MediaType{
				"application/json": {Schema: schema},
			},
		},
	}, nil
}

func emptyResponse(description string) openapi3.ResponseOrRef {
	return openapi3.ResponseOrRef{
		Response: &openapi3.Response{Description: description},
	}
}

func intParameter(name string, in openapi3.ParameterIn) openapi3.ParameterOrRef {
	required := true
	intType := openapi3.SchemaTypeInteger
	p := openapi3.Parameter{
		Name: name,
		In:   in,
		Schema: &openapi3.SchemaOrRef{
			Schema: &openapi3.Schema{Type: &intType},
		},
	}
	if in == openapi3.ParameterInPath {
		p.Required = &required
	}
	return openapi3.ParameterOrRef{Parameter: &p}
}

func paginationParameters() []openapi3.ParameterOrRef {
	return []openapi3.ParameterOrRef{
		intParameter("offset", openapi3.ParameterInQuery),
		intParameter("limit", openapi3.ParameterInQuery),
	}
}

func listOperation(tag, summary string, resp interface{}) (openapi3.Operation, error) {
	ok, err := jsonResponse(resp, "OK")
	if err != nil {
		return openapi3.Operation{}, err
	}

	return openapi3.Operation{
		Tags:       []string{tag},
		Summary:    &summary,
		Parameters: paginationParameters(),
		Responses: openapi3.Responses{
			MapOfResponseOrRefValues: map[string]openapi3.ResponseOrRef{
				"200": ok,
				"422": emptyResponse("Invalid pagination parameters"),
			},
		},
	}, nil
}

func bodyOperation(tag, summary string, status int, req, resp interface{}) (openapi3.Operation, error) {
	body, err := jsonRequestBody(req)
	if err != nil {
		return openapi3.Operation{}, err
	}
	created, err := jsonResponse(resp, "Created")
	if err != nil {
		return openapi3.Operation{}, err
	}

	return openapi3.Operation{
		Tags:        []string{tag},
		Summary:     &summary,
		RequestBody: body,
		Responses: openapi3.Responses{
			MapOfResponseOrRefValues: map[string]openapi3.ResponseOrRef{
				fmt.Sprintf("%d", status): created,
				"404":                     emptyResponse("Referenced resource not found"),
				"422":                     emptyResponse("Validation error"),
			},
		},
	}, nil
}

func itemOperation(tag, summary, param string, resp interface{}) (openapi3.Operation, error) {
	ok, err := jsonResponse(resp, "OK")
	if err != nil {
		return openapi3.Operation{}, err
	}

	return openapi3.Operation{
		Tags:       []string{tag},
		Summary:    &summary,
		Parameters: []openapi3.ParameterOrRef{intParameter(param, openapi3.ParameterInPath)},
		Responses: openapi3.Responses{
			MapOfResponseOrRefValues: map[string]openapi3.ResponseOrRef{
				"200": ok,
				"404": emptyResponse("Not found"),
			},
		},
	}, nil
}

func itemBodyOperation(tag, summary, param string, req, resp interface{}) (openapi3.Operation, error) {
	op, err := itemOperation(tag, summary, param, resp)
	if err != nil {
		return openapi3.Operation{}, err
	}

	body, err := jsonRequestBody(req)
	if err != nil {
		return openapi3.Operation{}, err
	}

	op.RequestBody = body
	op.Responses.MapOfResponseOrRefValues["422"] = emptyResponse("Validation error")
	return op, nil
}

func deleteOperation(tag, summary, param string) (openapi3.Operation, error) {
	return openapi3.Operation{
		Tags:       []string{tag},
		Summary:    &summary,
		Parameters: []openapi3.ParameterOrRef{intParameter(param, openapi3.ParameterInPath)},
		Responses: openapi3.Responses{
			MapOfResponseOrRefValues: map[string]openapi3.ResponseOrRef{
				"204": emptyResponse("Deleted"),
				"404": emptyResponse("Not found"),
			},
		},
	}, nil
}
