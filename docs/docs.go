// Package docs holds the swagger document served under /swagger.
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
                "description": "Report whether the task store answers a ping",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Application health",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/model.HealthResponse"}
                    }
                }
            }
        },
        "/tasks": {
            "get": {
                "description": "Return every stored task, unpaginated, in storage order",
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "List tasks",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/entity.Task"}}
                    }
                }
            },
            "post": {
                "description": "is_complete defaults to 0 and due_date to null when omitted",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Create a task",
                "parameters": [
                    {
                        "description": "Task",
                        "name": "task",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/model.TaskDTO"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/entity.Task"}
                    },
                    "422": {
                        "description": "Malformed request",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/tasks/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Get a task",
                "parameters": [
                    {"type": "integer", "description": "Task id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/entity.Task"}
                    },
                    "404": {
                        "description": "Task not found",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    },
                    "422": {
                        "description": "Invalid id",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            },
            "put": {
                "description": "Overwrites task, is_complete and due_date; omitted fields take their defaults",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Replace a task",
                "parameters": [
                    {"type": "integer", "description": "Task id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Task",
                        "name": "task",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/model.TaskDTO"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/entity.Task"}
                    },
                    "404": {
                        "description": "Task not found",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    },
                    "422": {
                        "description": "Malformed request",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Delete a task",
                "parameters": [
                    {"type": "integer", "description": "Task id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Task deleted successfully",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    },
                    "404": {
                        "description": "Task not found",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    },
                    "422": {
                        "description": "Invalid id",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        }
    },
    "definitions": {
        "entity.Task": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "task": {"type": "string"},
                "is_complete": {"type": "integer"},
                "due_date": {"type": "string"}
            }
        },
        "model.TaskDTO": {
            "type": "object",
            "required": ["task"],
            "properties": {
                "task": {"type": "string"},
                "is_complete": {"type": "integer"},
                "due_date": {"type": "string"}
            }
        },
        "model.ComponentHealthStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "database": {"$ref": "#/definitions/model.ComponentHealthStatus"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "todo-api",
	Description:      "Task management API over a single tasks table.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
