// Package docs holds the OpenAPI description served at /swagger.
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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in with username and password",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.UserResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/auth/guest": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Start a guest session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.UserResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Destroy the current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/auth/user": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Get the signed-in user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.PublicUser"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/team-members": {
            "get": {
                "produces": ["application/json"],
                "tags": ["team-members"],
                "summary": "List team members",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.TeamMember"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["team-members"],
                "summary": "Add a team member",
                "parameters": [
                    {
                        "description": "Team member",
                        "name": "member",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.TeamMemberRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.TeamMember"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Category"}}}
                }
            }
        },
        "/tasks": {
            "get": {
                "description": "At most one filter applies: status, then assigneeId, then categoryId.",
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "List tasks",
                "parameters": [
                    {"type": "string", "description": "Task status", "name": "status", "in": "query"},
                    {"type": "integer", "description": "Assignee id", "name": "assigneeId", "in": "query"},
                    {"type": "integer", "description": "Category id", "name": "categoryId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.TaskWithDetails"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "post": {
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
                        "schema": {"$ref": "#/definitions/handler.TaskRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.TaskWithDetails"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
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
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.TaskWithDetails"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Update a task",
                "parameters": [
                    {"type": "integer", "description": "Task id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Fields to change",
                        "name": "task",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.TaskUpdateRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.TaskWithDetails"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["tasks"],
                "summary": "Delete a task",
                "parameters": [
                    {"type": "integer", "description": "Task id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/time-entries": {
            "get": {
                "produces": ["application/json"],
                "tags": ["time-entries"],
                "summary": "List time entries",
                "parameters": [
                    {"type": "integer", "description": "Only entries for this task", "name": "taskId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.TimeEntry"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["time-entries"],
                "summary": "Log time against a task",
                "parameters": [
                    {
                        "description": "Time entry",
                        "name": "entry",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.TimeEntryRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.TimeEntry"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/activities": {
            "get": {
                "produces": ["application/json"],
                "tags": ["activities"],
                "summary": "Recent activity",
                "parameters": [
                    {"type": "integer", "description": "Maximum entries, default 50", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Activity"}}}
                }
            }
        },
        "/dashboard/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Task counters for the dashboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.DashboardStats"}}
                }
            }
        },
        "/analytics/tasks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Task counts per status",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/service.StatusStat"}}}
                }
            }
        },
        "/analytics/team-performance": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Completion figures per team member",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/service.MemberPerformance"}}}
                }
            }
        },
        "/analytics/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Task counts per category",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/service.CategoryStat"}}}
                }
            }
        },
        "/analytics/time-tracking": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Weekly hours per member over the last 30 days",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/service.TimeTrackingRow"}}}
                }
            }
        },
        "/analytics/productivity-trends": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Tasks created and completed per week",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/service.ProductivityWeek"}}}
                }
            }
        },
        "/analytics/workload-distribution": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Open work per team member",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/service.MemberWorkload"}}}
                }
            }
        },
        "/data/clear-all": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["data"],
                "summary": "Wipe all domain data and restore the default team",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ClearResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.ClearResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "errors": {"type": "array", "items": {"$ref": "#/definitions/service.FieldError"}},
                "message": {"type": "string"}
            }
        },
        "handler.LoginRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handler.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "handler.TaskRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "actualHours": {"type": "number"},
                "assigneeId": {"type": "integer"},
                "categoryId": {"type": "integer"},
                "description": {"type": "string"},
                "dueDate": {"type": "string"},
                "estimatedHours": {"type": "number"},
                "position": {"type": "integer"},
                "priority": {"type": "string"},
                "status": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "handler.TaskUpdateRequest": {
            "type": "object",
            "properties": {
                "actualHours": {"type": "number"},
                "assigneeId": {"type": "integer"},
                "categoryId": {"type": "integer"},
                "description": {"type": "string"},
                "dueDate": {"type": "string"},
                "estimatedHours": {"type": "number"},
                "position": {"type": "integer"},
                "priority": {"type": "string"},
                "status": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "handler.TeamMemberRequest": {
            "type": "object",
            "required": ["email", "name", "role"],
            "properties": {
                "avatarUrl": {"type": "string"},
                "email": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "handler.TimeEntryRequest": {
            "type": "object",
            "required": ["hours", "memberId", "taskId"],
            "properties": {
                "description": {"type": "string"},
                "hours": {"type": "number"},
                "memberId": {"type": "integer"},
                "taskId": {"type": "integer"}
            }
        },
        "handler.UserResponse": {
            "type": "object",
            "properties": {
                "user": {"$ref": "#/definitions/model.PublicUser"}
            }
        },
        "model.Activity": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "memberId": {"type": "integer"},
                "taskId": {"type": "integer"},
                "type": {"type": "string"}
            }
        },
        "model.Category": {
            "type": "object",
            "properties": {
                "color": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "parentId": {"type": "integer"}
            }
        },
        "model.PublicUser": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "firstName": {"type": "string"},
                "id": {"type": "string"},
                "lastName": {"type": "string"},
                "role": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "model.TaskWithDetails": {
            "type": "object",
            "properties": {
                "actualHours": {"type": "number"},
                "assignee": {"$ref": "#/definitions/model.TeamMember"},
                "assigneeId": {"type": "integer"},
                "category": {"$ref": "#/definitions/model.Category"},
                "categoryId": {"type": "integer"},
                "createdAt": {"type": "string"},
                "description": {"type": "string"},
                "dueDate": {"type": "string"},
                "estimatedHours": {"type": "number"},
                "id": {"type": "integer"},
                "position": {"type": "integer"},
                "priority": {"type": "string"},
                "status": {"type": "string"},
                "title": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "model.TeamMember": {
            "type": "object",
            "properties": {
                "avatarUrl": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "model.TimeEntry": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "description": {"type": "string"},
                "hours": {"type": "number"},
                "id": {"type": "integer"},
                "memberId": {"type": "integer"},
                "taskId": {"type": "integer"}
            }
        },
        "service.CategoryStat": {
            "type": "object",
            "properties": {
                "avg_completion_hours": {"type": "number"},
                "category_name": {"type": "string"},
                "color": {"type": "string"},
                "completed_count": {"type": "integer"},
                "id": {"type": "integer"},
                "task_count": {"type": "integer"}
            }
        },
        "service.DashboardStats": {
            "type": "object",
            "properties": {
                "completed": {"type": "integer"},
                "inProgress": {"type": "integer"},
                "overdue": {"type": "integer"},
                "todo": {"type": "integer"},
                "totalTasks": {"type": "integer"}
            }
        },
        "service.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "service.MemberPerformance": {
            "type": "object",
            "properties": {
                "completed_tasks": {"type": "integer"},
                "completion_rate": {"type": "number"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "overdue_tasks": {"type": "integer"},
                "role": {"type": "string"},
                "total_tasks": {"type": "integer"}
            }
        },
        "service.MemberWorkload": {
            "type": "object",
            "properties": {
                "active_tasks": {"type": "integer"},
                "high_priority_tasks": {"type": "integer"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "overdue_tasks": {"type": "integer"},
                "pending_tasks": {"type": "integer"},
                "role": {"type": "string"}
            }
        },
        "service.ProductivityWeek": {
            "type": "object",
            "properties": {
                "tasks_completed": {"type": "integer"},
                "tasks_created": {"type": "integer"},
                "week_start": {"type": "string"}
            }
        },
        "service.StatusStat": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "overdue_count": {"type": "integer"},
                "status": {"type": "string"}
            }
        },
        "service.TimeTrackingRow": {
            "type": "object",
            "properties": {
                "member_id": {"type": "integer"},
                "team_member": {"type": "string"},
                "total_hours": {"type": "number"},
                "week_start": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "TaskFlow API",
	Description:      "Team task management: tasks, time tracking, activity feed and reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
