// Package docs registers the OpenAPI document served under /swagger.
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
        "/api/v1/quick-add": {
            "post": {
                "description": "Parses the line, stores it in Memos and creates a calendar event for dated entries.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["QuickAdd"],
                "summary": "Submit a quick-entry line",
                "parameters": [
                    {"description": "Line to store", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/textReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "413": {"description": "Text too long", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "422": {"description": "No title", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Storage unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/quick-add/preview": {
            "post": {
                "description": "Parses a line without storing it and returns the recognised fields plus preview badges.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["QuickAdd"],
                "summary": "Preview a quick-entry line",
                "parameters": [
                    {"description": "Line to parse", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/previewReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "413": {"description": "Text too long", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/quick-add/preview/simple": {
            "post": {
                "description": "Recognises only #tags, /calendar, p1..p3 and due:<phrase>.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["QuickAdd"],
                "summary": "Preview with the token parser",
                "parameters": [
                    {"description": "Line to parse", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/previewReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/quick-add/recent": {
            "get": {
                "description": "Returns the latest stored quick-add entries, newest first.",
                "produces": ["application/json"],
                "tags": ["QuickAdd"],
                "summary": "List recent entries",
                "parameters": [
                    {"type": "integer", "description": "Number of entries (default 10, max 50)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Storage unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/quick-add/shortcuts": {
            "get": {
                "description": "Returns the static list of supported shortcuts and keywords.",
                "produces": ["application/json"],
                "tags": ["QuickAdd"],
                "summary": "Cheat-sheet",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}
        },
        "/ready": {
            "get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}}}
        },
        "/live": {
            "get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}
        }
    },
    "definitions": {
        "previewReq": {
            "type": "object",
            "properties": {
                "text": {"type": "string", "example": "Zahnarzt morgen 15 uhr"},
                "now": {"type": "string", "format": "date-time"}
            }
        },
        "textReq": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string", "example": "Miete 1.7. 800€ p1"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Quick Entry API",
	Description:      "Bilingual quick-entry parser with Memos storage, Google Calendar scheduling and a Telegram surface.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
