// Package docs registra la definición OpenAPI que sirve /swagger. Mantener en sync con
// las anotaciones de los handlers.
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
        "/horses": {
            "get": {
                "description": "Devuelve el listado estático de pacientes que alimenta el selector del header.",
                "produces": ["application/json"],
                "tags": ["horses"],
                "summary": "Listar caballos",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/horses.Response"}}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/horses/{horseID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["horses"],
                "summary": "Obtener caballo",
                "parameters": [
                    {"type": "string", "description": "ID del caballo", "name": "horseID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/horses.Response"}},
                    "404": {"description": "horse not found", "schema": {"type": "string"}}
                }
            }
        },
        "/sessions": {
            "post": {
                "description": "Crea una sesión con el primer caballo, rango 30d y sin vistas abiertas. Lo agregado en la sesión no se persiste.",
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Abrir sesión de dashboard",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dashboard.State"}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Estado de la sesión",
                "parameters": [
                    {"type": "string", "description": "ID de sesión", "name": "X-Session-ID", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.State"}},
                    "401": {"description": "session required", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "description": "Descarta la sesión y todo lo agregado en ella. Después el ID responde 401.",
                "tags": ["sessions"],
                "summary": "Cerrar sesión de dashboard",
                "parameters": [
                    {"type": "string", "description": "ID de sesión", "name": "X-Session-ID", "in": "header", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "session required", "schema": {"type": "string"}}
                }
            }
        },
        "/dashboard/view": {
            "get": {
                "description": "Tarjetas de resumen, casos, timeline, vitals recortadas por rango, mapa de lesiones, alertas, próximos eventos y el detalle de la vista abierta.",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard compuesto",
                "parameters": [
                    {"type": "string", "description": "ID de sesión", "name": "X-Session-ID", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "401": {"description": "session required", "schema": {"type": "string"}}
                }
            }
        },
        "/dashboard/horse": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Seleccionar caballo",
                "parameters": [
                    {"type": "string", "description": "ID de sesión", "name": "X-Session-ID", "in": "header", "required": true},
                    {"description": "Caballo", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dashboard.selectHorseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.State"}},
                    "400": {"description": "invalid json", "schema": {"type": "string"}},
                    "404": {"description": "horse not found", "schema": {"type": "string"}}
                }
            }
        },
        "/dashboard/range": {
            "put": {
                "description": "range: 7d, 30d o 6m. window: tail (últimas N lecturas, default) o calendar (últimos N días).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Cambiar rango de vitals",
                "parameters": [
                    {"type": "string", "description": "ID de sesión", "name": "X-Session-ID", "in": "header", "required": true},
                    {"description": "Rango", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dashboard.setRangeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.State"}},
                    "400": {"description": "range must be one of 7d, 30d, 6m", "schema": {"type": "string"}}
                }
            }
        },
        "/dashboard/views": {
            "post": {
                "description": "Abre un drawer/modal. Hay como mucho una vista abierta; abrir otra la reemplaza.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Abrir vista secundaria",
                "parameters": [
                    {"type": "string", "description": "ID de sesión", "name": "X-Session-ID", "in": "header", "required": true},
                    {"description": "Vista", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dashboard.openViewRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.State"}},
                    "400": {"description": "invalid input", "schema": {"type": "string"}},
                    "404": {"description": "not found", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Cerrar vista secundaria",
                "parameters": [
                    {"type": "string", "description": "ID de sesión", "name": "X-Session-ID", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.State"}}
                }
            }
        },
        "/dashboard/upcoming/{eventID}/acknowledge": {
            "post": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Marcar/desmarcar evento próximo",
                "parameters": [
                    {"type": "string", "description": "ID de sesión", "name": "X-Session-ID", "in": "header", "required": true},
                    {"type": "string", "description": "ID del evento", "name": "eventID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.acknowledgeResponse"}}
                }
            }
        },
        "/dashboard/records/{kind}": {
            "post": {
                "description": "kind: medical-event, active-case, vitals o upcoming-event. El body depende del kind.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Agregar registro al caballo seleccionado",
                "parameters": [
                    {"type": "string", "description": "ID de sesión", "name": "X-Session-ID", "in": "header", "required": true},
                    {"type": "string", "description": "Tipo de registro", "name": "kind", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created: TimelineItem (medical-event), CaseItem (active-case), VitalsItem (vitals) o UpcomingItem (upcoming-event)", "schema": {"type": "object"}},
                    "400": {"description": "invalid input", "schema": {"type": "string"}}
                }
            }
        },
        "/dashboard/metrics/{metric}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Detalle de métrica",
                "parameters": [
                    {"type": "string", "description": "ID de sesión", "name": "X-Session-ID", "in": "header", "required": true},
                    {"type": "string", "description": "Métrica", "name": "metric", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "unknown metric", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "horses.Response": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "age": {"type": "integer"},
                "discipline": {"type": "string"},
                "stable_location": {"type": "string"}
            }
        },
        "dashboard.OpenView": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["case", "timelineEvent", "alert", "metric", "addData"]},
                "id": {"type": "string"}
            }
        },
        "dashboard.State": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "horse_id": {"type": "string"},
                "range": {"type": "string", "enum": ["7d", "30d", "6m"]},
                "window": {"type": "string", "enum": ["tail", "calendar"]},
                "view": {"$ref": "#/definitions/dashboard.OpenView"},
                "acknowledged": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dashboard.selectHorseRequest": {
            "type": "object",
            "properties": {
                "horse_id": {"type": "string"}
            }
        },
        "dashboard.setRangeRequest": {
            "type": "object",
            "properties": {
                "range": {"type": "string"},
                "window": {"type": "string"}
            }
        },
        "dashboard.openViewRequest": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "id": {"type": "string"}
            }
        },
        "dashboard.acknowledgeResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "acknowledged": {"type": "boolean"}
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
	Title:            "Equine Vet Dashboard API",
	Description:      "Backend del dashboard veterinario equino: sesiones, vistas compuestas y altas en memoria.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
