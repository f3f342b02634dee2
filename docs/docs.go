// Package docs registers the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/health": {
            "get": {"summary": "Liveness probe", "responses": {"200": {"description": "ok"}}}
        },
        "/licenses": {
            "get": {
                "summary": "List licenses",
                "produces": ["application/json"],
                "responses": {"200": {"description": "licenses", "schema": {"type": "array", "items": {"$ref": "#/definitions/License"}}}}
            },
            "post": {
                "summary": "Create a license",
                "security": [{"Bearer": []}],
                "parameters": [{"in": "body", "name": "license", "required": true, "schema": {"$ref": "#/definitions/LicenseInput"}}],
                "responses": {"200": {"description": "created", "schema": {"$ref": "#/definitions/License"}}, "400": {"description": "invalid body"}}
            }
        },
        "/licenses/{id}": {
            "delete": {
                "summary": "Delete a license and its files",
                "security": [{"Bearer": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "deleted"}, "404": {"description": "not found"}}
            }
        },
        "/licenses/batch-delete": {
            "post": {
                "summary": "Delete many licenses",
                "security": [{"Bearer": []}],
                "parameters": [{"in": "body", "name": "ids", "required": true, "schema": {"$ref": "#/definitions/BatchDelete"}}],
                "responses": {"200": {"description": "deleted count"}}
            }
        },
        "/licenses/export": {
            "get": {"summary": "Export licenses as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "csv"}}}
        },
        "/licenses/template": {
            "get": {"summary": "Download the import template", "produces": ["text/csv"], "responses": {"200": {"description": "csv"}}}
        },
        "/licenses/import": {
            "post": {
                "summary": "Import licenses from CSV",
                "security": [{"Bearer": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [{"in": "formData", "name": "file", "type": "file", "required": true}],
                "responses": {"200": {"description": "import summary"}}
            }
        },
        "/licenses/{id}/files": {
            "get": {
                "summary": "List dossier files",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "files", "schema": {"type": "array", "items": {"$ref": "#/definitions/LicenseFile"}}}}
            },
            "post": {
                "summary": "Upload a dossier file",
                "security": [{"Bearer": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {"in": "formData", "name": "file", "type": "file", "required": true}
                ],
                "responses": {"200": {"description": "uploaded"}, "404": {"description": "license not found"}}
            }
        },
        "/licenses/{id}/brief": {
            "post": {
                "summary": "Generate a plain-language brief",
                "security": [{"Bearer": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "brief"}, "503": {"description": "generator not configured"}}
            }
        },
        "/files/{name}": {
            "get": {
                "summary": "Download a stored file",
                "parameters": [{"in": "path", "name": "name", "type": "string", "required": true}],
                "responses": {"200": {"description": "file"}, "404": {"description": "not found"}}
            },
            "delete": {
                "summary": "Delete a file record and object",
                "security": [{"Bearer": []}],
                "parameters": [{"in": "path", "name": "name", "type": "string", "required": true}],
                "responses": {"200": {"description": "deleted"}}
            }
        },
        "/auth/login": {
            "post": {
                "summary": "Exchange credentials for a token",
                "parameters": [{"in": "body", "name": "credentials", "required": true, "schema": {"$ref": "#/definitions/Credentials"}}],
                "responses": {"200": {"description": "session"}, "401": {"description": "Invalid credentials"}}
            }
        },
        "/auth/register": {
            "post": {"summary": "Create an account", "security": [{"Bearer": []}], "responses": {"200": {"description": "created"}, "400": {"description": "Username already taken"}}}
        },
        "/auth/users": {
            "get": {"summary": "List accounts", "security": [{"Bearer": []}], "responses": {"200": {"description": "users"}}}
        },
        "/auth/users/{id}": {
            "put": {"summary": "Update an account", "security": [{"Bearer": []}], "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}], "responses": {"200": {"description": "updated"}, "404": {"description": "User not found"}}},
            "delete": {"summary": "Delete an account", "security": [{"Bearer": []}], "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}], "responses": {"200": {"description": "deleted"}, "404": {"description": "User not found"}}}
        },
        "/activity/log": {
            "post": {"summary": "Record an audit entry", "responses": {"200": {"description": "logged or failed"}}}
        },
        "/activity/logs": {
            "get": {
                "summary": "Newest audit entries",
                "security": [{"Bearer": []}],
                "parameters": [{"in": "query", "name": "limit", "type": "integer"}],
                "responses": {"200": {"description": "entries"}}
            }
        }
    },
    "definitions": {
        "License": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "company": {"type": "string"},
                "licenseType": {"type": "string"},
                "commodity": {"type": "string"},
                "status": {"type": "string"},
                "date": {"type": "string", "format": "date-time"},
                "country": {"type": "string"},
                "region": {"type": "string"},
                "lat": {"type": "number"},
                "lng": {"type": "number"},
                "phoneNumber": {"type": "string"},
                "contactPerson": {"type": "string"}
            }
        },
        "LicenseInput": {
            "type": "object",
            "required": ["company", "country"],
            "properties": {
                "company": {"type": "string"},
                "country": {"type": "string"},
                "region": {"type": "string"},
                "commodity": {"type": "string"},
                "licenseType": {"type": "string"},
                "status": {"type": "string"},
                "lat": {"type": "number"},
                "lng": {"type": "number"},
                "phoneNumber": {"type": "string"},
                "contactPerson": {"type": "string"}
            }
        },
        "LicenseFile": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "filename": {"type": "string"},
                "url": {"type": "string"},
                "date": {"type": "string", "format": "date-time"}
            }
        },
        "BatchDelete": {
            "type": "object",
            "properties": {"ids": {"type": "array", "items": {"type": "string"}}}
        },
        "Credentials": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Mining Map API",
	Description:      "Mining license registry behind the map frontend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
