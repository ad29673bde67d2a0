// Package docs holds the OpenAPI document served under /swagger.
// Regenerate it from the handler annotations with:
//
//	swag init -g cmd/bookkeeping_backend/main.go -o cmd/docs
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
        "/transactions": {
            "get": {"tags": ["transactions"], "summary": "List transactions", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["transactions"], "summary": "Create a transaction", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/transaction/{transactionId}/payments": {
            "get": {"tags": ["payments"], "summary": "List the payments of a transaction", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["payments"], "summary": "Record a payment", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/clients": {
            "get": {"tags": ["parties"], "summary": "List clients", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["parties"], "summary": "Create a client", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "409": {"description": "Tax id already registered"}}}
        },
        "/vendors": {
            "get": {"tags": ["parties"], "summary": "List vendors", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["parties"], "summary": "Create a vendor", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "409": {"description": "Tax id already registered"}}}
        },
        "/companies": {
            "get": {"tags": ["companies"], "summary": "List the caller's companies", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["companies"], "summary": "Create a company", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Bookkeeping Backend API",
	Description:      "Multi-tenant bookkeeping: ledger, payments, clients, vendors and companies.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
