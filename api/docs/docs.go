// Package docs provides the Swagger specification served at /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/livez": {
            "get": {
                "description": "Liveness probe endpoint returning basic service health status, uptime, and version information.\nThis endpoint always returns 200 OK if the service is running",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check Endpoint",
                "responses": {
                    "200": {
                        "description": "status, uptime, version",
                        "schema": {"$ref": "#/definitions/http.HealthResponse"}
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "description": "Readiness probe endpoint returning service health status and checks for critical dependencies.\nIncludes uptime, version, and database connectivity",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check Endpoint",
                "responses": {
                    "200": {
                        "description": "status, uptime, version, checks",
                        "schema": {"$ref": "#/definitions/http.HealthResponse"}
                    },
                    "503": {
                        "description": "status, uptime, version, checks - service not ready",
                        "schema": {"$ref": "#/definitions/http.HealthResponse"}
                    }
                }
            }
        },
        "/r/{code}": {
            "get": {
                "description": "Resolve a short code and redirect to its affiliate URL, counting the click.\nDraft, archived and deleted codes respond 404 the same as unknown ones",
                "tags": ["Redirect"],
                "summary": "Short Link Redirect Endpoint",
                "parameters": [
                    {"type": "string", "description": "Short code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "302": {"description": "redirect to the affiliate URL"},
                    "404": {"schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "500": {"schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/v1/links": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "List the caller's active links, newest first",
                "produces": ["application/json"],
                "tags": ["Links"],
                "summary": "List Links Endpoint",
                "responses": {
                    "200": {
                        "description": "links",
                        "schema": {"$ref": "#/definitions/http.ListLinksResponse"}
                    },
                    "500": {"schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Create a new active short link for an affiliate URL, subject to the caller's tier quota",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Links"],
                "summary": "Create Link Endpoint",
                "parameters": [
                    {"type": "string", "description": "Destination affiliate URL", "name": "affiliate_url", "in": "formData", "required": true},
                    {"type": "string", "description": "Display title", "name": "title", "in": "formData"},
                    {"type": "string", "description": "Open Graph title", "name": "og_title", "in": "formData"},
                    {"type": "string", "description": "Open Graph description", "name": "og_description", "in": "formData"},
                    {"type": "string", "description": "Open Graph image URL", "name": "og_image", "in": "formData"},
                    {"type": "string", "description": "Landing template to attach", "name": "template_id", "in": "formData"}
                ],
                "responses": {
                    "200": {
                        "description": "created link",
                        "schema": {"$ref": "#/definitions/http.LinkResponse"}
                    },
                    "400": {"schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "403": {
                        "description": "quota exceeded",
                        "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}
                    },
                    "500": {"schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/v1/links/drafts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "List the caller's automation-sourced draft links awaiting approval, newest first",
                "produces": ["application/json"],
                "tags": ["Drafts"],
                "summary": "List Draft Links Endpoint",
                "responses": {
                    "200": {
                        "description": "links",
                        "schema": {"$ref": "#/definitions/http.ListLinksResponse"}
                    },
                    "500": {"schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/v1/links/{id}/approve": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Promote one of the caller's draft links to active. Drafts belonging to other\nusers, already-approved links, and unknown ids all return the same 404",
                "produces": ["application/json"],
                "tags": ["Drafts"],
                "summary": "Approve Draft Link Endpoint",
                "parameters": [
                    {"type": "string", "description": "Link ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "approved link",
                        "schema": {"$ref": "#/definitions/http.LinkResponse"}
                    },
                    "404": {"schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "500": {"schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/v1/usage": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Current usage against the caller's tier quotas: active links, templates in use,\nstrategies, and today's robot runs. Unlimited quotas report a limit of -1",
                "produces": ["application/json"],
                "tags": ["Usage"],
                "summary": "Usage Report Endpoint",
                "responses": {
                    "200": {
                        "description": "links, templates, strategies, robot_today",
                        "schema": {"$ref": "#/definitions/domain.UsageReport"}
                    }
                }
            }
        },
        "/v1/membership": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "The caller's resolved membership. Expired memberships resolve as FREE with the\nold expiry included so clients can show when access lapsed",
                "produces": ["application/json"],
                "tags": ["Membership"],
                "summary": "Membership Status Endpoint",
                "responses": {
                    "200": {
                        "description": "tier, is_member, expire_at",
                        "schema": {"$ref": "#/definitions/http.MembershipResponse"}
                    }
                }
            }
        },
        "/v1/license/activate": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Redeem a license key for a membership upgrade. Keys are single-use; unknown and\nalready-used keys are rejected identically so the endpoint cannot be used as an oracle",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["License"],
                "summary": "Activate License Endpoint",
                "parameters": [
                    {"type": "string", "description": "License key, e.g. PRO-XXXX-XXXX", "name": "license_key", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "tier, expire_at",
                        "schema": {"$ref": "#/definitions/http.ActivateLicenseResponse"}
                    },
                    "400": {
                        "description": "malformed key",
                        "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}
                    },
                    "422": {
                        "description": "unknown or already-used key",
                        "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}
                    },
                    "500": {"schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/v1/templates": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "List the caller's landing-page templates, newest first",
                "produces": ["application/json"],
                "tags": ["Templates"],
                "summary": "List Templates Endpoint",
                "responses": {
                    "200": {
                        "description": "templates",
                        "schema": {"$ref": "#/definitions/http.ListTemplatesResponse"}
                    },
                    "500": {"schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Register a landing-page template. Creating templates is unrestricted; the tier\nquota applies when a link adopts one",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Templates"],
                "summary": "Create Template Endpoint",
                "parameters": [
                    {"type": "string", "description": "Template name", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "description": "Template configuration as a JSON document", "name": "config", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "created template",
                        "schema": {"$ref": "#/definitions/http.TemplateResponse"}
                    },
                    "400": {"schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "500": {"schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/v1/strategies": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "List the caller's automation strategies, newest first. Robot keys are not included",
                "produces": ["application/json"],
                "tags": ["Strategies"],
                "summary": "List Strategies Endpoint",
                "responses": {
                    "200": {
                        "description": "strategies",
                        "schema": {"$ref": "#/definitions/http.ListStrategiesResponse"}
                    },
                    "500": {"schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Register an automation strategy and mint its robot key. The key is returned\nexactly once; only its last four characters are retrievable afterwards",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Strategies"],
                "summary": "Create Strategy Endpoint",
                "parameters": [
                    {"type": "string", "description": "Strategy name", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "description": "Automation source: ptt, ettoday or sheets", "name": "source", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "strategy with one-time robot_key",
                        "schema": {"$ref": "#/definitions/http.CreateStrategyResponse"}
                    },
                    "400": {"schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "403": {
                        "description": "quota exceeded",
                        "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}
                    },
                    "500": {"schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/v1/automation/links": {
            "post": {
                "description": "Submit a scraped affiliate link as a draft for the strategy owner's review.\nAuthenticated by the robot_key minted at strategy creation",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Strategies"],
                "summary": "Robot Link Ingest Endpoint",
                "parameters": [
                    {"type": "string", "description": "Strategy robot key", "name": "robot_key", "in": "formData", "required": true},
                    {"type": "string", "description": "Scraped affiliate URL", "name": "affiliate_url", "in": "formData", "required": true},
                    {"type": "string", "description": "Open Graph title from the scraped page", "name": "og_title", "in": "formData"},
                    {"type": "string", "description": "Open Graph description", "name": "og_description", "in": "formData"},
                    {"type": "string", "description": "Open Graph image URL", "name": "og_image", "in": "formData"}
                ],
                "responses": {
                    "200": {
                        "description": "queued draft",
                        "schema": {"$ref": "#/definitions/http.IngestLinkResponse"}
                    },
                    "400": {"schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "401": {
                        "description": "unknown or disabled robot key",
                        "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}
                    },
                    "403": {
                        "description": "daily robot quota exhausted",
                        "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}
                    },
                    "500": {"schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Gauge": {
            "type": "object",
            "properties": {
                "current": {"type": "integer"},
                "limit": {"type": "integer"},
                "unlimited": {"type": "boolean"},
                "percentage": {"type": "integer"}
            }
        },
        "domain.UsageReport": {
            "type": "object",
            "properties": {
                "links": {"$ref": "#/definitions/domain.Gauge"},
                "templates": {"$ref": "#/definitions/domain.Gauge"},
                "strategies": {"$ref": "#/definitions/domain.Gauge"},
                "robot_today": {"$ref": "#/definitions/domain.Gauge"}
            }
        },
        "http.ActivateLicenseResponse": {
            "type": "object",
            "properties": {
                "tier": {"type": "string"},
                "expire_at": {"type": "string"}
            }
        },
        "http.CreateStrategyResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "source": {"type": "string"},
                "key_tail": {"type": "string"},
                "enabled": {"type": "boolean"},
                "created_at": {"type": "string"},
                "robot_key": {"type": "string"}
            }
        },
        "http.HealthChecks": {
            "type": "object",
            "properties": {
                "database": {"type": "string"}
            }
        },
        "http.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "uptime": {"type": "string"},
                "version": {"type": "string"},
                "checks": {"$ref": "#/definitions/http.HealthChecks"}
            }
        },
        "http.IngestLinkResponse": {
            "type": "object",
            "properties": {
                "link_id": {"type": "string"},
                "short_code": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "http.LinkResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "short_code": {"type": "string"},
                "status": {"type": "string"},
                "title": {"type": "string"},
                "og_title": {"type": "string"},
                "og_description": {"type": "string"},
                "og_image": {"type": "string"},
                "affiliate_url": {"type": "string"},
                "template_id": {"type": "string"},
                "strategy_id": {"type": "string"},
                "click_count": {"type": "integer"},
                "last_click_at": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "http.ListLinksResponse": {
            "type": "object",
            "properties": {
                "links": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/http.LinkResponse"}
                }
            }
        },
        "http.ListStrategiesResponse": {
            "type": "object",
            "properties": {
                "strategies": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/http.StrategyResponse"}
                }
            }
        },
        "http.ListTemplatesResponse": {
            "type": "object",
            "properties": {
                "templates": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/http.TemplateResponse"}
                }
            }
        },
        "http.MembershipResponse": {
            "type": "object",
            "properties": {
                "tier": {"type": "string"},
                "is_member": {"type": "boolean"},
                "expire_at": {"type": "string"}
            }
        },
        "http.StrategyResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "source": {"type": "string"},
                "key_tail": {"type": "string"},
                "enabled": {"type": "boolean"},
                "created_at": {"type": "string"}
            }
        },
        "http.TemplateResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "config": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "httpx.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "error_description": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT access token issued by the auth service. Format: \"Bearer {token}\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "linkmint API",
	Description:      "Affiliate short-link management with membership gating, landing templates, automation strategies and a draft approval workflow.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
