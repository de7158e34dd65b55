// Package docs holds the OpenAPI document served by Swagger UI. It is kept
// in sync with the handler annotations by hand.
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
        "/boards": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "List the caller's boards ordered by id",
                "produces": ["application/json"],
                "tags": ["Board"],
                "summary": "List boards",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/board.Board"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Create a board owned by the caller",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Board"],
                "summary": "Create a board",
                "parameters": [
                    {"description": "Board", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/board.CreateBoardRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/board.Board"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}}
                }
            }
        },
        "/boards/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Board"],
                "summary": "Get a board",
                "parameters": [{"type": "integer", "description": "Board ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/board.Board"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Delete an owned board together with its tasks",
                "produces": ["application/json"],
                "tags": ["Board"],
                "summary": "Delete a board",
                "parameters": [{"type": "integer", "description": "Board ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/board.DeleteBoardResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check the health status of the application",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.HealthStatus"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.HealthStatus"}}
                }
            }
        },
        "/register": {
            "post": {
                "description": "Create an account and return a bearer token for it",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Register an account",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/user.RegisterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/session.TokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}}
                }
            }
        },
        "/tasks": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "List the caller's tasks on a board ordered by position",
                "produces": ["application/json"],
                "tags": ["Task"],
                "summary": "List tasks",
                "parameters": [{"type": "integer", "description": "Board ID", "name": "board_id", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/task.Task"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Task"],
                "summary": "Create a task",
                "parameters": [
                    {"description": "Task", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/task.TaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/task.Task"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}}
                }
            }
        },
        "/tasks/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Replace an owned task's content, column, position and board",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Task"],
                "summary": "Update a task",
                "parameters": [
                    {"type": "integer", "description": "Task ID", "name": "id", "in": "path", "required": true},
                    {"description": "Task", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/task.TaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/task.Task"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Task"],
                "summary": "Delete a task",
                "parameters": [{"type": "integer", "description": "Task ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/task.DeleteTaskResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}}
                }
            }
        },
        "/token": {
            "post": {
                "description": "Exchange form-encoded credentials for a bearer token",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log in",
                "parameters": [
                    {"type": "string", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/session.TokenResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "apperr.ErrorResponse": {
            "type": "object",
            "properties": {"detail": {"type": "string"}}
        },
        "board.Board": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "title": {"type": "string"}}
        },
        "board.CreateBoardRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {"title": {"type": "string"}}
        },
        "board.DeleteBoardResponse": {
            "type": "object",
            "properties": {"detail": {"type": "string"}}
        },
        "session.TokenResponse": {
            "type": "object",
            "properties": {"access_token": {"type": "string"}, "token_type": {"type": "string"}}
        },
        "task.DeleteTaskResponse": {
            "type": "object",
            "properties": {"detail": {"type": "string"}}
        },
        "task.Task": {
            "type": "object",
            "properties": {
                "board_id": {"type": "integer"},
                "column": {"type": "string"},
                "content": {"type": "string"},
                "id": {"type": "integer"},
                "position": {"type": "integer"}
            }
        },
        "task.TaskRequest": {
            "type": "object",
            "required": ["board_id", "content"],
            "properties": {
                "board_id": {"type": "integer"},
                "column": {"type": "string", "maxLength": 64},
                "content": {"type": "string"},
                "position": {"type": "integer"}
            }
        },
        "user.RegisterRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string", "maxLength": 72},
                "username": {"type": "string", "maxLength": 150}
            }
        },
        "utils.HealthStatus": {
            "type": "object",
            "properties": {
                "services": {"type": "array", "items": {"$ref": "#/definitions/utils.Service"}},
                "status": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "utils.Service": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "name": {"type": "string"}, "status": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	Title:            "Taskboard API",
	Description:      "Multi-tenant boards and tasks behind bearer-token auth.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
