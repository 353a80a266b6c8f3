// Package docs registra la especificación OpenAPI de la API con swag.
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
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Estado del servicio y del almacenamiento",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/{family}": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["documents"],
                "summary": "Listar documentos",
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/family"},
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "name": "limit", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "party_id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DocumentListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["documents"],
                "summary": "Crear documento",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/family"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateDocumentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.DocumentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/{family}/next-number": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["documents"],
                "summary": "Sugerir el siguiente número",
                "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/family"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.NextNumberResponse"}}
                }
            }
        },
        "/api/{family}/{id}": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["documents"],
                "summary": "Obtener documento por ID",
                "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/family"}, {"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DocumentResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"Bearer": []}],
                "tags": ["documents"],
                "summary": "Actualizar documento",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/family"},
                    {"$ref": "#/parameters/id"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateDocumentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DocumentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"Bearer": []}],
                "tags": ["documents"],
                "summary": "Eliminar documento (soft delete)",
                "parameters": [{"$ref": "#/parameters/family"}, {"$ref": "#/parameters/id"}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/{family}/{id}/pdf": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["documents"],
                "summary": "Descargar PDF del documento",
                "produces": ["application/pdf"],
                "parameters": [{"$ref": "#/parameters/family"}, {"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/{family}-templates": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["templates"],
                "summary": "Listar plantillas",
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/family"},
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "name": "limit", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TemplateListResponse"}}
                }
            },
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["templates"],
                "summary": "Crear plantilla de ítem",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/family"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateTemplateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.TemplateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/{family}-templates/{id}": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["templates"],
                "summary": "Obtener plantilla por ID",
                "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/family"}, {"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TemplateResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"Bearer": []}],
                "tags": ["templates"],
                "summary": "Actualizar plantilla",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/family"},
                    {"$ref": "#/parameters/id"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateTemplateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TemplateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"Bearer": []}],
                "tags": ["templates"],
                "summary": "Eliminar plantilla (soft delete)",
                "parameters": [{"$ref": "#/parameters/family"}, {"$ref": "#/parameters/id"}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/{family}-templates/{id}/item": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["templates"],
                "summary": "Línea de documento a partir de la plantilla",
                "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/family"}, {"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DocumentItemRequest"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "parameters": {
        "family": {
            "type": "string",
            "enum": ["quotations", "service-orders", "purchase-orders"],
            "name": "family",
            "in": "path",
            "required": true
        },
        "id": {"type": "string", "name": "id", "in": "path", "required": true}
    },
    "definitions": {
        "domain.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "field": {"type": "string"},
                "fields": {"type": "array", "items": {"$ref": "#/definitions/domain.FieldError"}}
            }
        },
        "dto.PageResponse": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "limit": {"type": "integer"},
                "total": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "dto.DocumentItemRequest": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "quantity": {"type": "integer"},
                "days": {"type": "integer"},
                "unit_price": {"type": "string", "example": "100.00"}
            }
        },
        "dto.DocumentItemResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "code": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "quantity": {"type": "integer"},
                "days": {"type": "integer"},
                "unit_price": {"type": "string"},
                "line_total": {"type": "string"},
                "position": {"type": "integer"}
            }
        },
        "dto.CreateDocumentRequest": {
            "type": "object",
            "properties": {
                "number": {"type": "string"},
                "party_id": {"type": "string"},
                "gestor_id": {"type": "string"},
                "date": {"type": "string", "example": "2024-03-01"},
                "currency": {"type": "string", "enum": ["PEN", "USD"]},
                "status": {"type": "string"},
                "description": {"type": "string"},
                "comments": {"type": "string"},
                "validity_days": {"type": "integer"},
                "return_date": {"type": "string"},
                "monitoring_location": {"type": "string"},
                "monitoring_type": {"type": "string"},
                "payment_terms": {"type": "string"},
                "delivery_date": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.DocumentItemRequest"}}
            }
        },
        "dto.UpdateDocumentRequest": {
            "type": "object",
            "properties": {
                "number": {"type": "string"},
                "party_id": {"type": "string"},
                "gestor_id": {"type": "string"},
                "date": {"type": "string"},
                "currency": {"type": "string"},
                "status": {"type": "string"},
                "description": {"type": "string"},
                "comments": {"type": "string"},
                "validity_days": {"type": "integer"},
                "return_date": {"type": "string"},
                "monitoring_location": {"type": "string"},
                "monitoring_type": {"type": "string"},
                "payment_terms": {"type": "string"},
                "delivery_date": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.DocumentItemRequest"}}
            }
        },
        "dto.DocumentResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "family": {"type": "string"},
                "number": {"type": "string"},
                "party_id": {"type": "string"},
                "gestor_id": {"type": "string"},
                "date": {"type": "string"},
                "currency": {"type": "string"},
                "status": {"type": "string"},
                "description": {"type": "string"},
                "comments": {"type": "string"},
                "subtotal": {"type": "string"},
                "tax": {"type": "string"},
                "total": {"type": "string"},
                "created_by": {"type": "string"},
                "updated_by": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.DocumentItemResponse"}}
            }
        },
        "dto.DocumentListResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.DocumentResponse"}},
                "page": {"$ref": "#/definitions/dto.PageResponse"}
            }
        },
        "dto.NextNumberResponse": {
            "type": "object",
            "properties": {"number": {"type": "string", "example": "OC-2024-003"}}
        },
        "dto.CreateTemplateRequest": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "quantity": {"type": "integer"},
                "unit_price": {"type": "string"},
                "days": {"type": "integer"}
            }
        },
        "dto.UpdateTemplateRequest": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "quantity": {"type": "integer"},
                "unit_price": {"type": "string"},
                "days": {"type": "integer"}
            }
        },
        "dto.TemplateResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "family": {"type": "string"},
                "code": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "quantity": {"type": "integer"},
                "unit_price": {"type": "string"},
                "days": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "dto.TemplateListResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.TemplateResponse"}},
                "page": {"$ref": "#/definitions/dto.PageResponse"}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Bearer <token>",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo metadatos exportados de la API.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Monitoreo API",
	Description:      "Cotizaciones, órdenes de servicio y órdenes de compra.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
