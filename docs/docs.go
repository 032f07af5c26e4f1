// Package docs registers the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/movies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Get all movies",
                "responses": {
                    "200": {"description": "List of movies", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Create a new movie",
                "parameters": [
                    {"description": "Movie request object", "name": "movie", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.MovieRequest"}}
                ],
                "responses": {
                    "201": {"description": "Movie created successfully", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "400": {"description": "Invalid request body", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "422": {"description": "Validation failed", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            }
        },
        "/movies/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Get movie by ID",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Movie ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Movie details", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "400": {"description": "Invalid movie ID", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "404": {"description": "Movie not found", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Replace a movie",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Movie ID", "name": "id", "in": "path", "required": true},
                    {"description": "Movie request object", "name": "movie", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.MovieRequest"}}
                ],
                "responses": {
                    "200": {"description": "Movie updated successfully", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "404": {"description": "Movie not found", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "422": {"description": "Validation failed", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Partially update a movie",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Movie ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to update", "name": "movie", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.MovieUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "Movie updated successfully", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "404": {"description": "Movie not found", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "422": {"description": "Validation failed", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            },
            "delete": {
                "tags": ["movies"],
                "summary": "Delete a movie",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Movie ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Movie deleted"},
                    "404": {"description": "Movie not found", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            }
        },
        "/movies/{id}/reviews": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "List reviews of a movie",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Movie ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "List of reviews", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "404": {"description": "Movie not found", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Create a review",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Movie ID", "name": "id", "in": "path", "required": true},
                    {"description": "Review request object", "name": "review", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ReviewRequest"}}
                ],
                "responses": {
                    "201": {"description": "Review created successfully", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "404": {"description": "Movie not found", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "422": {"description": "Validation failed", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            }
        },
        "/movies/{id}/reviews/{reviewId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Get a review",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Movie ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "format": "uuid", "description": "Review ID", "name": "reviewId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Review details", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "404": {"description": "Movie or review not found", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Replace a review",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Movie ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "format": "uuid", "description": "Review ID", "name": "reviewId", "in": "path", "required": true},
                    {"description": "Review request object", "name": "review", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ReviewRequest"}}
                ],
                "responses": {
                    "200": {"description": "Review updated successfully", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "404": {"description": "Movie or review not found", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "422": {"description": "Validation failed", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Partially update a review",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Movie ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "format": "uuid", "description": "Review ID", "name": "reviewId", "in": "path", "required": true},
                    {"description": "Fields to update", "name": "review", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ReviewUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "Review updated successfully", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "404": {"description": "Movie or review not found", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "422": {"description": "Validation failed", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            },
            "delete": {
                "tags": ["reviews"],
                "summary": "Delete a review",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Movie ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "format": "uuid", "description": "Review ID", "name": "reviewId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Review deleted"},
                    "404": {"description": "Movie or review not found", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.MovieRequest": {
            "type": "object",
            "required": ["description", "director", "genre", "release_year", "title"],
            "properties": {
                "title": {"type": "string", "example": "Dune"},
                "description": {"type": "string"},
                "director": {"type": "string", "example": "Denis Villeneuve"},
                "release_year": {"type": "integer", "example": 2021},
                "genre": {"type": "string", "example": "Science Fiction"}
            }
        },
        "handlers.MovieUpdateRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "director": {"type": "string"},
                "release_year": {"type": "integer"},
                "genre": {"type": "string"}
            }
        },
        "handlers.ReviewRequest": {
            "type": "object",
            "required": ["analysis", "rating"],
            "properties": {
                "analysis": {"type": "string", "example": "Visually stunning"},
                "rating": {"type": "integer", "example": 9}
            }
        },
        "handlers.ReviewUpdateRequest": {
            "type": "object",
            "properties": {
                "analysis": {"type": "string"},
                "rating": {"type": "integer"}
            }
        },
        "utils.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "utils.StandardResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/utils.FieldError"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8010",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Movies API",
	Description:      "CRUD API for movies and their reviews",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
