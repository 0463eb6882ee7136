// Package docs holds the OpenAPI document served at /swagger. It is kept in
// step with the godoc annotations on the handlers.
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
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.StatusResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/quizzes": {
            "get": {
                "description": "Newest first, with question counts instead of questions",
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "List quizzes",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "Items to skip", "name": "offset", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Page size", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.QuizPage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Create a quiz together with its questions",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Create a quiz",
                "parameters": [
                    {"description": "Quiz data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateQuizRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Quiz"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/quizzes/import": {
            "post": {
                "description": "Create a new quiz from an exported json, yaml or csv file",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Import a quiz",
                "parameters": [
                    {"type": "file", "description": "Export file", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Quiz"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/quizzes/{id}": {
            "get": {
                "description": "Get a quiz with its questions ordered by order",
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Get a quiz",
                "parameters": [
                    {"type": "string", "description": "Quiz ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Quiz"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Delete a quiz and all its questions",
                "tags": ["quizzes"],
                "summary": "Delete a quiz",
                "parameters": [
                    {"type": "string", "description": "Quiz ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/quizzes/{id}/export": {
            "get": {
                "description": "Download a quiz as json, yaml or csv",
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Export a quiz",
                "parameters": [
                    {"type": "string", "description": "Quiz ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "default": "json", "description": "json, yaml or csv", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.ExportData"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/ws/quizzes": {
            "get": {
                "description": "Receives quiz_created and quiz_deleted events",
                "tags": ["websocket"],
                "summary": "WebSocket feed of quiz list changes",
                "responses": {}
            }
        }
    },
    "definitions": {
        "handlers.CreateQuestionRequest": {
            "type": "object",
            "required": ["order", "text", "type"],
            "properties": {
                "correctAnswer": {"type": "string", "example": "opt-1"},
                "options": {"type": "array", "items": {"$ref": "#/definitions/handlers.OptionRequest"}},
                "order": {"type": "integer", "minimum": 0, "example": 0},
                "text": {"type": "string", "example": "What is the capital of Ukraine?"},
                "type": {"type": "string", "example": "SINGLEOPTION"}
            }
        },
        "handlers.CreateQuizRequest": {
            "type": "object",
            "required": ["questions", "title"],
            "properties": {
                "questions": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/handlers.CreateQuestionRequest"}},
                "title": {"type": "string", "maxLength": 255, "example": "Ukrainian History Basics"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "something went wrong"}
            }
        },
        "handlers.OptionRequest": {
            "type": "object",
            "required": ["id"],
            "properties": {
                "id": {"type": "string", "example": "opt-1"},
                "value": {"type": "string", "example": "Kyiv"}
            }
        },
        "handlers.StatusResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"}
            }
        },
        "models.Option": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "models.Question": {
            "type": "object",
            "properties": {
                "correctAnswer": {"type": "string"},
                "id": {"type": "string"},
                "options": {"type": "array", "items": {"$ref": "#/definitions/models.Option"}},
                "order": {"type": "integer"},
                "quizId": {"type": "string"},
                "text": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "models.Quiz": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "id": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/models.Question"}},
                "title": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "models.QuizSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "questionsCount": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "services.ExportData": {
            "type": "object",
            "properties": {
                "questions": {"type": "array", "items": {"$ref": "#/definitions/services.ExportQuestion"}},
                "title": {"type": "string"}
            }
        },
        "services.ExportQuestion": {
            "type": "object",
            "properties": {
                "correctAnswer": {"type": "string"},
                "options": {"type": "array", "items": {"$ref": "#/definitions/models.Option"}},
                "text": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "services.QuizPage": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/models.QuizSummary"}},
                "hasMore": {"type": "boolean"},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"},
                "total": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3001",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Quiz Builder API",
	Description:      "Create, list, preview and delete quizzes",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
