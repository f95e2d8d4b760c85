// Package docs registers the OpenAPI document for the swag annotations on the
// api handlers. Keep it in sync with those annotations.
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
        "/": {
            "get": {
                "produces": [
                    "text/plain"
                ],
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "its working",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/api/transacoes": {
            "post": {
                "description": "Positive amounts are income, negative are expenses, zero is allowed.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "transacoes"
                ],
                "summary": "Create a transaction",
                "parameters": [
                    {
                        "description": "Transaction data",
                        "name": "transaction",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CreateTransaction"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Transaction"
                        }
                    },
                    "400": {
                        "description": "missing field, invalid amount or invalid date",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/transacoes/summary/{user_id}": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "transacoes"
                ],
                "summary": "Balance, income and expenses of a user",
                "parameters": [
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "user_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Summary"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/transacoes/{id}": {
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "transacoes"
                ],
                "summary": "Delete a transaction",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Transaction ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/transacoes/{user_id}": {
            "get": {
                "description": "Newest first by created_at. An unknown user yields an empty list.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "transacoes"
                ],
                "summary": "List a user's transactions",
                "parameters": [
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "user_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Transaction"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "models.CreateTransaction": {
            "type": "object",
            "required": [
                "amount",
                "category",
                "title",
                "user_id"
            ],
            "properties": {
                "amount": {
                    "type": "number",
                    "example": -120.5
                },
                "category": {
                    "type": "string",
                    "example": "alimentação"
                },
                "created_at": {
                    "type": "string",
                    "example": "2024-05-01"
                },
                "title": {
                    "type": "string",
                    "example": "Mercado"
                },
                "user_id": {
                    "type": "string",
                    "example": "user_2x9"
                }
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Erro do servidor interno"
                }
            }
        },
        "models.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Transação deletada com sucesso!"
                }
            }
        },
        "models.Summary": {
            "type": "object",
            "properties": {
                "despesas": {
                    "type": "string",
                    "example": "-40"
                },
                "renda": {
                    "type": "string",
                    "example": "110"
                },
                "saldo": {
                    "type": "string",
                    "example": "70"
                }
            }
        },
        "models.Transaction": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string",
                    "example": "1500.00"
                },
                "category": {
                    "type": "string",
                    "example": "renda"
                },
                "created_at": {
                    "type": "string",
                    "example": "2024-05-01"
                },
                "id": {
                    "type": "integer",
                    "example": 1
                },
                "title": {
                    "type": "string",
                    "example": "Salário"
                },
                "user_id": {
                    "type": "string",
                    "example": "user_2x9"
                }
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
	Title:            "Transações API",
	Description:      "Personal finance transaction tracker.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
