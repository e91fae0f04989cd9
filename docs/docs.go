// Package docs registers the OpenAPI document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/mcp_gateway": {
            "post": {
                "description": "Classifies the query into a supported intent with the language model and runs the matching handler.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Intent"],
                "summary": "Dispatch a natural-language query",
                "parameters": [
                    {
                        "description": "Query to dispatch",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.dispatchReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.dispatchResp"}},
                    "400": {"description": "Missing query or unsupported intent", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Model, parse or Salesforce failure", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/intents/dispatch": {
            "post": {
                "description": "Classifies the query into a supported intent with the language model and runs the matching handler.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Intent"],
                "summary": "Dispatch a natural-language query",
                "parameters": [
                    {
                        "description": "Query to dispatch",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.dispatchReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.dispatchResp"}},
                    "400": {"description": "Missing query or unsupported intent", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Model, parse or Salesforce failure", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check that the language model and Salesforce session are available",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "A dependency is not ready", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "http.dispatchReq": {
            "type": "object",
            "properties": {
                "query": {"type": "string", "example": "Show me all solar products"}
            }
        },
        "http.dispatchResp": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "message": {"type": "string", "example": "Found 2 products."},
                "data": {}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "data": {},
                "llm_raw_output": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:5000",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Intent Gateway API",
	Description:      "Natural-language gateway that classifies queries with an LLM and dispatches them to Salesforce Revenue Cloud handlers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
