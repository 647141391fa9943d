package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "title": "Lost & Found API",
    "description": "Campus lost and found reporting backend",
    "version": "1.0.0"
  },
  "basePath": "/",
  "schemes": [
    "http",
    "https"
  ],
  "securityDefinitions": {
    "BearerAuth": {
      "type": "apiKey",
      "name": "Authorization",
      "in": "header"
    }
  },
  "tags": [
    {"name": "Authentication", "description": "Registration, login and tokens"},
    {"name": "Reports", "description": "Lost and found reports and their workflow"},
    {"name": "Comments", "description": "Report discussion threads"},
    {"name": "Claims", "description": "Claims on found items"},
    {"name": "Notifications", "description": "Per-user notification feed"},
    {"name": "Users", "description": "User directory"}
  ],
  "paths": {
    "/health": {
      "get": {
        "summary": "Liveness probe",
        "responses": {
          "200": {"description": "OK"}
        }
      }
    },
    "/ready": {
      "get": {
        "summary": "Readiness probe",
        "responses": {
          "200": {"description": "Ready"},
          "503": {"description": "A dependency is unavailable"}
        }
      }
    },
    "/metrics": {
      "get": {
        "summary": "Prometheus metrics",
        "produces": [
          "text/plain"
        ],
        "responses": {
          "200": {"description": "OK"}
        }
      }
    },
    "/api/auth/registration": {
      "post": {
        "tags": [
          "Authentication"
        ],
        "summary": "Register user",
        "parameters": [
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {"$ref": "#/definitions/RegisterRequest"}
          }
        ],
        "responses": {
          "201": {
            "description": "Created",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "400": {
            "description": "Validation failed",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "409": {
            "description": "Username or email taken",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        }
      }
    },
    "/api/auth/login": {
      "post": {
        "tags": [
          "Authentication"
        ],
        "summary": "Authenticate user",
        "parameters": [
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {"$ref": "#/definitions/LoginRequest"}
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "401": {
            "description": "Invalid credentials",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "429": {
            "description": "Rate limited",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        }
      }
    },
    "/api/auth/token/refresh": {
      "post": {
        "tags": [
          "Authentication"
        ],
        "summary": "Refresh access token",
        "parameters": [
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {"$ref": "#/definitions/RefreshTokenRequest"}
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "401": {
            "description": "Invalid refresh token",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        }
      }
    },
    "/api/auth/logout": {
      "post": {
        "tags": [
          "Authentication"
        ],
        "summary": "Revoke refresh token",
        "parameters": [
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {"$ref": "#/definitions/RefreshTokenRequest"}
          }
        ],
        "responses": {
          "204": {"description": "No Content"},
          "401": {
            "description": "Unauthorized",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      }
    },
    "/api/auth/user": {
      "get": {
        "tags": [
          "Authentication"
        ],
        "summary": "Current user",
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "401": {
            "description": "Unauthorized",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      }
    },
    "/api/reports": {
      "get": {
        "tags": [
          "Reports"
        ],
        "summary": "List reports",
        "parameters": [
          {
            "name": "type",
            "in": "query",
            "type": "string",
            "enum": [
              "lost",
              "found"
            ]
          },
          {
            "name": "status",
            "in": "query",
            "type": "string",
            "enum": [
              "pending",
              "approved",
              "rejected",
              "resolved"
            ]
          },
          {
            "name": "category",
            "in": "query",
            "type": "string"
          },
          {
            "name": "search",
            "in": "query",
            "type": "string"
          },
          {
            "name": "ordering",
            "in": "query",
            "type": "string",
            "enum": [
              "date_time",
              "-date_time"
            ]
          },
          {
            "name": "page",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "page_size",
            "in": "query",
            "type": "integer"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "400": {
            "description": "Invalid filter",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        }
      },
      "post": {
        "tags": [
          "Reports"
        ],
        "summary": "Create report",
        "parameters": [
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {"$ref": "#/definitions/CreateReportRequest"}
          },
          {
            "name": "photo",
            "in": "formData",
            "type": "file"
          }
        ],
        "responses": {
          "201": {
            "description": "Created",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "400": {
            "description": "Validation failed",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "401": {
            "description": "Unauthorized",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "502": {
            "description": "Media upload failed",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "consumes": [
          "application/json",
          "multipart/form-data"
        ]
      }
    },
    "/api/reports/{id}": {
      "get": {
        "tags": [
          "Reports"
        ],
        "summary": "Get report",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "integer"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        }
      },
      "put": {
        "tags": [
          "Reports"
        ],
        "summary": "Update report",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "integer"
          },
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {"$ref": "#/definitions/UpdateReportRequest"}
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "400": {
            "description": "Validation failed",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "403": {
            "description": "Forbidden",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      },
      "patch": {
        "tags": [
          "Reports"
        ],
        "summary": "Partially update report",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "integer"
          },
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {"$ref": "#/definitions/UpdateReportRequest"}
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "400": {
            "description": "Validation failed",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "403": {
            "description": "Forbidden",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      },
      "delete": {
        "tags": [
          "Reports"
        ],
        "summary": "Delete report",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "integer"
          }
        ],
        "responses": {
          "204": {"description": "No Content"},
          "403": {
            "description": "Forbidden",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      }
    },
    "/api/reports/{id}/approve": {
      "patch": {
        "tags": [
          "Reports"
        ],
        "summary": "Approve report (admin)",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "integer"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "403": {
            "description": "Forbidden",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      }
    },
    "/api/reports/{id}/reject": {
      "patch": {
        "tags": [
          "Reports"
        ],
        "summary": "Reject report (admin)",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "integer"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "403": {
            "description": "Forbidden",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      }
    },
    "/api/reports/{id}/claim_item": {
      "post": {
        "tags": [
          "Reports"
        ],
        "summary": "Claim a found item",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "integer"
          },
          {
            "name": "payload",
            "in": "body",
            "schema": {"$ref": "#/definitions/ActionMessageRequest"}
          }
        ],
        "responses": {
          "201": {
            "description": "Created",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "400": {
            "description": "Not a found report",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      }
    },
    "/api/reports/{id}/item_found": {
      "post": {
        "tags": [
          "Reports"
        ],
        "summary": "Mark a lost item as found",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "integer"
          },
          {
            "name": "payload",
            "in": "body",
            "schema": {"$ref": "#/definitions/ActionMessageRequest"}
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "400": {
            "description": "Not a lost report",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      }
    },
    "/api/reports/activity-logs": {
      "get": {
        "tags": [
          "Reports"
        ],
        "summary": "List activity logs (admin)",
        "parameters": [
          {
            "name": "action",
            "in": "query",
            "type": "string"
          },
          {
            "name": "user",
            "in": "query",
            "type": "string"
          },
          {
            "name": "page",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "page_size",
            "in": "query",
            "type": "integer"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "403": {
            "description": "Forbidden",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      }
    },
    "/api/reports/resolution-logs": {
      "get": {
        "tags": [
          "Reports"
        ],
        "summary": "List resolution logs (admin)",
        "parameters": [
          {
            "name": "page",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "page_size",
            "in": "query",
            "type": "integer"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "403": {
            "description": "Forbidden",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      }
    },
    "/api/reports/resolution-logs/export": {
      "get": {
        "tags": [
          "Reports"
        ],
        "summary": "Export resolution logs (admin)",
        "parameters": [
          {
            "name": "format",
            "in": "query",
            "type": "string",
            "enum": [
              "csv",
              "pdf"
            ]
          }
        ],
        "responses": {
          "200": {
            "description": "File",
            "schema": {"type": "file"}
          },
          "400": {
            "description": "Unsupported format",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "403": {
            "description": "Forbidden",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "produces": [
          "text/csv",
          "application/pdf"
        ]
      }
    },
    "/api/comments": {
      "get": {
        "tags": [
          "Comments"
        ],
        "summary": "List comments",
        "parameters": [
          {
            "name": "report",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "page",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "page_size",
            "in": "query",
            "type": "integer"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        }
      },
      "post": {
        "tags": [
          "Comments"
        ],
        "summary": "Post comment",
        "parameters": [
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {"$ref": "#/definitions/CreateCommentRequest"}
          }
        ],
        "responses": {
          "201": {
            "description": "Created",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "400": {
            "description": "Validation failed",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      }
    },
    "/api/comments/{id}": {
      "get": {
        "tags": [
          "Comments"
        ],
        "summary": "Get comment",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "integer"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        }
      },
      "put": {
        "tags": [
          "Comments"
        ],
        "summary": "Edit comment",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "integer"
          },
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {"$ref": "#/definitions/UpdateCommentRequest"}
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "403": {
            "description": "Forbidden",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      },
      "patch": {
        "tags": [
          "Comments"
        ],
        "summary": "Edit comment",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "integer"
          },
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {"$ref": "#/definitions/UpdateCommentRequest"}
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "403": {
            "description": "Forbidden",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      },
      "delete": {
        "tags": [
          "Comments"
        ],
        "summary": "Delete comment",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "integer"
          }
        ],
        "responses": {
          "204": {"description": "No Content"},
          "403": {
            "description": "Forbidden",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      }
    },
    "/api/claims": {
      "get": {
        "tags": [
          "Claims"
        ],
        "summary": "List claims",
        "parameters": [
          {
            "name": "report",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "page",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "page_size",
            "in": "query",
            "type": "integer"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      },
      "post": {
        "tags": [
          "Claims"
        ],
        "summary": "Create claim",
        "parameters": [
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {"$ref": "#/definitions/CreateClaimRequest"}
          }
        ],
        "responses": {
          "201": {
            "description": "Created",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "400": {
            "description": "Validation failed",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      }
    },
    "/api/claims/my-claims": {
      "get": {
        "tags": [
          "Claims"
        ],
        "summary": "List my claims",
        "parameters": [
          {
            "name": "page",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "page_size",
            "in": "query",
            "type": "integer"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      }
    },
    "/api/claims/{id}": {
      "get": {
        "tags": [
          "Claims"
        ],
        "summary": "Get claim",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "integer"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      },
      "put": {
        "tags": [
          "Claims"
        ],
        "summary": "Update claim",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "integer"
          },
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {"$ref": "#/definitions/UpdateClaimRequest"}
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "403": {
            "description": "Forbidden",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      },
      "patch": {
        "tags": [
          "Claims"
        ],
        "summary": "Update claim",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "integer"
          },
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {"$ref": "#/definitions/UpdateClaimRequest"}
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "403": {
            "description": "Forbidden",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      },
      "delete": {
        "tags": [
          "Claims"
        ],
        "summary": "Withdraw claim",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "integer"
          }
        ],
        "responses": {
          "204": {"description": "No Content"},
          "403": {
            "description": "Forbidden",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      }
    },
    "/api/notifications": {
      "get": {
        "tags": [
          "Notifications"
        ],
        "summary": "List my notifications",
        "parameters": [
          {
            "name": "is_read",
            "in": "query",
            "type": "boolean"
          },
          {
            "name": "page",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "page_size",
            "in": "query",
            "type": "integer"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      }
    },
    "/api/notifications/ws": {
      "get": {
        "tags": [
          "Notifications"
        ],
        "summary": "Live notification stream (websocket)",
        "parameters": [
          {
            "name": "token",
            "in": "query",
            "type": "string"
          }
        ],
        "responses": {
          "101": {"description": "Switching Protocols"},
          "401": {
            "description": "Unauthorized",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "503": {
            "description": "Realtime disabled",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      }
    },
    "/api/notifications/{id}": {
      "get": {
        "tags": [
          "Notifications"
        ],
        "summary": "Get notification",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "integer"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      },
      "patch": {
        "tags": [
          "Notifications"
        ],
        "summary": "Mark read or unread",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "integer"
          },
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {"$ref": "#/definitions/UpdateNotificationRequest"}
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      },
      "delete": {
        "tags": [
          "Notifications"
        ],
        "summary": "Delete notification",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "integer"
          }
        ],
        "responses": {
          "204": {"description": "No Content"},
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      }
    },
    "/api/users": {
      "get": {
        "tags": [
          "Users"
        ],
        "summary": "List users (admin)",
        "parameters": [
          {
            "name": "user_type",
            "in": "query",
            "type": "string"
          },
          {
            "name": "search",
            "in": "query",
            "type": "string"
          },
          {
            "name": "page",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "page_size",
            "in": "query",
            "type": "integer"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "403": {
            "description": "Forbidden",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      },
      "post": {
        "tags": [
          "Users"
        ],
        "summary": "Register user",
        "parameters": [
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {"$ref": "#/definitions/RegisterRequest"}
          }
        ],
        "responses": {
          "201": {
            "description": "Created",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "400": {
            "description": "Validation failed",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "409": {
            "description": "Conflict",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        }
      }
    },
    "/api/users/{id}": {
      "get": {
        "tags": [
          "Users"
        ],
        "summary": "Get user",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "string"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      },
      "put": {
        "tags": [
          "Users"
        ],
        "summary": "Update user",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "string"
          },
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {"$ref": "#/definitions/UpdateUserRequest"}
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "403": {
            "description": "Forbidden",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      },
      "patch": {
        "tags": [
          "Users"
        ],
        "summary": "Update user",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "string"
          },
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {"$ref": "#/definitions/UpdateUserRequest"}
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "403": {
            "description": "Forbidden",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      },
      "delete": {
        "tags": [
          "Users"
        ],
        "summary": "Delete user (admin)",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "type": "string"
          }
        ],
        "responses": {
          "204": {"description": "No Content"},
          "403": {
            "description": "Forbidden",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          },
          "404": {
            "description": "Not found",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
          }
        },
        "security": [
          {
            "BearerAuth": []
          }
        ]
      }
    }
  },
  "definitions": {
    "RegisterRequest": {
      "type": "object",
      "properties": {
        "username": {"type": "string"},
        "email": {"type": "string"},
        "password": {"type": "string"},
        "first_name": {"type": "string"},
        "last_name": {"type": "string"},
        "id_number": {"type": "string"},
        "contact_number": {"type": "string"},
        "profile_avatar_url": {"type": "string"}
      },
      "required": [
        "username",
        "email",
        "password"
      ]
    },
    "LoginRequest": {
      "type": "object",
      "properties": {
        "username": {"type": "string"},
        "email": {"type": "string"},
        "password": {"type": "string"}
      },
      "required": [
        "password"
      ]
    },
    "RefreshTokenRequest": {
      "type": "object",
      "properties": {
        "refresh_token": {"type": "string"}
      },
      "required": [
        "refresh_token"
      ]
    },
    "CreateReportRequest": {
      "type": "object",
      "properties": {
        "type": {
          "type": "string",
          "enum": [
            "lost",
            "found"
          ]
        },
        "item_name": {"type": "string"},
        "description": {"type": "string"},
        "category": {"type": "string"},
        "location_last_seen": {"type": "string"},
        "location_found": {"type": "string"},
        "date_lost": {"type": "string", "format": "date"},
        "date_found": {"type": "string", "format": "date"},
        "supervised_by": {"type": "string"}
      },
      "required": [
        "type",
        "item_name",
        "description",
        "category"
      ]
    },
    "UpdateReportRequest": {
      "type": "object",
      "properties": {
        "status": {
          "type": "string",
          "enum": [
            "pending",
            "approved",
            "rejected",
            "resolved"
          ]
        },
        "item_name": {"type": "string"},
        "description": {"type": "string"},
        "category": {"type": "string"},
        "location_last_seen": {"type": "string"},
        "location_found": {"type": "string"},
        "date_lost": {"type": "string", "format": "date"},
        "date_found": {"type": "string", "format": "date"},
        "supervised_by": {"type": "string"}
      }
    },
    "ActionMessageRequest": {
      "type": "object",
      "properties": {
        "message": {"type": "string"}
      }
    },
    "CreateCommentRequest": {
      "type": "object",
      "properties": {
        "report": {"type": "integer"},
        "content": {"type": "string"}
      },
      "required": [
        "report",
        "content"
      ]
    },
    "UpdateCommentRequest": {
      "type": "object",
      "properties": {
        "content": {"type": "string"}
      },
      "required": [
        "content"
      ]
    },
    "CreateClaimRequest": {
      "type": "object",
      "properties": {
        "report": {"type": "integer"},
        "message": {"type": "string"}
      },
      "required": [
        "report"
      ]
    },
    "UpdateClaimRequest": {
      "type": "object",
      "properties": {
        "message": {"type": "string"},
        "received": {"type": "boolean"},
        "date_received": {"type": "string", "format": "date-time"}
      }
    },
    "UpdateNotificationRequest": {
      "type": "object",
      "properties": {
        "is_read": {"type": "boolean"}
      },
      "required": [
        "is_read"
      ]
    },
    "UpdateUserRequest": {
      "type": "object",
      "properties": {
        "email": {"type": "string"},
        "first_name": {"type": "string"},
        "last_name": {"type": "string"},
        "id_number": {"type": "string"},
        "contact_number": {"type": "string"},
        "profile_avatar_url": {"type": "string"},
        "user_type": {
          "type": "string",
          "enum": [
            "student",
            "admin"
          ]
        }
      }
    },
    "Pagination": {
      "type": "object",
      "properties": {
        "page": {"type": "integer"},
        "page_size": {"type": "integer"},
        "total_count": {"type": "integer"}
      }
    },
    "APIError": {
      "type": "object",
      "properties": {
        "code": {"type": "string"},
        "message": {"type": "string"},
        "status": {"type": "integer"}
      }
    },
    "ResponseEnvelope": {
      "type": "object",
      "properties": {
        "data": {"type": "object"},
        "error": {"$ref": "#/definitions/APIError"},
        "pagination": {"$ref": "#/definitions/Pagination"},
        "meta": {"type": "object"}
      }
    }
  }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
