// Package docs registers OpenAPI description of customer accounts API for swag
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
        "/api/accounts/{id}/sections": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Returns blocks rendered for account view page. Customer section is added only if account id is integer and section isn't blank",
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Get account view sections",
                "parameters": [
                    {"type": "string", "description": "Account id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/view.ScrollData"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/jsonapi.ErrorDocument"}}
                }
            }
        },
        "/api/customers": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Returns collection of customers ordered by id",
                "produces": ["application/vnd.api+json"],
                "tags": ["customers"],
                "summary": "Get all customers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/jsonapi.Document"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/jsonapi.ErrorDocument"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/jsonapi.ErrorDocument"}}
                }
            }
        },
        "/api/customers/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Returns single customer with provided id",
                "produces": ["application/vnd.api+json"],
                "tags": ["customers"],
                "summary": "Get single customer by id",
                "parameters": [
                    {"type": "integer", "description": "Customer id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/jsonapi.Document"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/jsonapi.ErrorDocument"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/jsonapi.ErrorDocument"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/jsonapi.ErrorDocument"}}
                }
            }
        },
        "/api/customers/{id}/relationships/{association}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Returns resource identifiers of customer relationship",
                "produces": ["application/vnd.api+json"],
                "tags": ["customers"],
                "summary": "Get customer relationship",
                "parameters": [
                    {"type": "integer", "description": "Customer id", "name": "id", "in": "path", "required": true},
                    {"enum": ["parent", "children", "users", "owner", "organization", "salesRepresentatives", "internal_rating", "group"], "type": "string", "description": "Relationship name", "name": "association", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/jsonapi.Document"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/jsonapi.ErrorDocument"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/jsonapi.ErrorDocument"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/jsonapi.ErrorDocument"}}
                }
            }
        },
        "/api/customers/{id}/{association}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Returns resources of customer relationship as primary data. Parent and children are full customers, other resources contain identity only",
                "produces": ["application/vnd.api+json"],
                "tags": ["customers"],
                "summary": "Get customer subresource",
                "parameters": [
                    {"type": "integer", "description": "Customer id", "name": "id", "in": "path", "required": true},
                    {"enum": ["parent", "children", "users", "owner", "organization", "salesRepresentatives", "internal_rating", "group"], "type": "string", "description": "Relationship name", "name": "association", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/jsonapi.Document"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/jsonapi.ErrorDocument"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/jsonapi.ErrorDocument"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/jsonapi.ErrorDocument"}}
                }
            }
        }
    },
    "definitions": {
        "jsonapi.Document": {
            "type": "object",
            "properties": {
                "data": {}
            }
        },
        "jsonapi.Error": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "source": {"$ref": "#/definitions/jsonapi.ErrorSource"},
                "status": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "jsonapi.ErrorDocument": {
            "type": "object",
            "properties": {
                "errors": {"type": "array", "items": {"$ref": "#/definitions/jsonapi.Error"}}
            }
        },
        "jsonapi.ErrorSource": {
            "type": "object",
            "properties": {
                "parameter": {"type": "string"}
            }
        },
        "view.Block": {
            "type": "object",
            "properties": {
                "subblocks": {"type": "array", "items": {"$ref": "#/definitions/view.SubBlock"}},
                "title": {"type": "string"}
            }
        },
        "view.ScrollData": {
            "type": "object",
            "properties": {
                "dataBlocks": {"type": "array", "items": {"$ref": "#/definitions/view.Block"}}
            }
        },
        "view.SubBlock": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"type": "string"}}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Customer accounts API",
	Description:      "JSON:API read model of customers and account view sections",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
