// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/agoralab/serve.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Agora Lab"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/diagnostics/load-cycles": {
            "get": {
                "description": "Returns the most recently settled repository load cycles, newest first",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Diagnostics"],
                "summary": "Recent load cycles",
                "parameters": [
                    {
                        "maximum": 100,
                        "minimum": 1,
                        "type": "integer",
                        "default": 20,
                        "description": "Maximum number of cycles",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.LoadCycleListResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Returns the health status of the service and the phase of the repository listing",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/handlers.HealthResponse"}
                    }
                }
            }
        },
        "/posts": {
            "get": {
                "description": "Returns every blog post, newest first",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Posts"],
                "summary": "List blog posts",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.PostListResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}
                    }
                }
            }
        },
        "/repositories": {
            "get": {
                "description": "Returns one page of the merged repository listing, most starred first.\nUpstream failures yield an empty listing with status \"failed\", not an error status.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Repositories"],
                "summary": "List organization repositories",
                "parameters": [
                    {
                        "minimum": 1,
                        "type": "integer",
                        "description": "Page number, clamped to the available pages",
                        "name": "page",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.RepositoryListResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.LoadCycleListResponse": {
            "type": "object",
            "properties": {
                "cycles": {"type": "array", "items": {"$ref": "#/definitions/dto.LoadCycleResponse"}}
            }
        },
        "dto.LoadCycleResponse": {
            "type": "object",
            "properties": {
                "discarded": {"type": "boolean"},
                "duration_ms": {"type": "integer"},
                "failure": {"type": "string"},
                "finished_at": {"type": "string"},
                "id": {"type": "string"},
                "org_count": {"type": "integer"},
                "record_count": {"type": "integer"},
                "started_at": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "dto.PaginationResponse": {
            "type": "object",
            "properties": {
                "first": {"type": "integer"},
                "label": {"type": "string"},
                "last": {"type": "integer"},
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "dto.PostListResponse": {
            "type": "object",
            "properties": {
                "posts": {"type": "array", "items": {"$ref": "#/definitions/dto.PostResponse"}},
                "total": {"type": "integer"}
            }
        },
        "dto.PostResponse": {
            "type": "object",
            "properties": {
                "image": {"type": "string"},
                "published_at": {"type": "string"},
                "slug": {"type": "string"},
                "summary": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "dto.RepositoryListResponse": {
            "type": "object",
            "properties": {
                "loading": {"type": "boolean"},
                "pagination": {"$ref": "#/definitions/dto.PaginationResponse"},
                "repositories": {"type": "array", "items": {"$ref": "#/definitions/dto.RepositoryResponse"}},
                "status": {"type": "string"}
            }
        },
        "dto.RepositoryResponse": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "language": {"type": "string"},
                "name": {"type": "string"},
                "org": {"type": "string"},
                "stars": {"type": "integer"},
                "url": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {"type": "string"},
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "listing": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Agora Lab API",
	Description:      "Public repository and blog listings for the Agora Lab site",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
