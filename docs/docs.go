// Package docs registers the OpenAPI description of the site API with swag.
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
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Verificação de saúde",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}
                }
            }
        },
        "/validate/document": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["validation"],
                "summary": "Valida CPF ou CNPJ",
                "parameters": [
                    {"description": "Documento a ser validado", "name": "data", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.DocumentValidationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.DocumentValidationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/validate/email": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["validation"],
                "summary": "Valida endereço de email",
                "parameters": [
                    {"description": "Email a ser validado", "name": "data", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.EmailValidationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.EmailValidationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/validate/phone": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["validation"],
                "summary": "Valida número de telefone",
                "parameters": [
                    {"description": "Telefone a ser validado", "name": "data", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.PhoneValidationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.PhoneValidationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/format/document": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["format"],
                "summary": "Aplica a máscara de CPF/CNPJ",
                "parameters": [
                    {"description": "Valor digitado", "name": "data", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.FormatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.FormatResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/format/phone": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["format"],
                "summary": "Aplica a máscara de telefone",
                "parameters": [
                    {"description": "Valor digitado", "name": "data", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.FormatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.FormatResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/format/cep": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["format"],
                "summary": "Aplica a máscara de CEP",
                "parameters": [
                    {"description": "Valor digitado", "name": "data", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.FormatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.FormatResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/cep/{cep}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cep"],
                "summary": "Consulta endereço por CEP",
                "parameters": [
                    {"type": "string", "example": "01001-000", "description": "CEP com ou sem traço", "name": "cep", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Address"}},
                    "400": {"description": "CEP inválido", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "CEP não encontrado", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "502": {"description": "Falha no serviço de CEP", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/catalog/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Lista os produtos",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductListResponse"}}
                }
            }
        },
        "/catalog/unit": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Unidade de medida do produto",
                "parameters": [
                    {"type": "string", "example": "sacolas", "description": "Identificador do produto", "name": "produto", "in": "query", "required": true},
                    {"type": "string", "description": "Unidade escolhida, usada por produtos de unidade variável", "name": "unidade", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/catalog.UnitInfo"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/quotes": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quotes"],
                "summary": "Solicita orçamento",
                "parameters": [
                    {"description": "Formulário de orçamento", "name": "data", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.QuoteRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.QuoteResponse"}},
                    "400": {"description": "Campos inválidos", "schema": {"$ref": "#/definitions/validation.ValidationResult"}},
                    "429": {"description": "Limite de envios atingido", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/newsletter": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["newsletter"],
                "summary": "Inscreve email na newsletter",
                "parameters": [
                    {"description": "Email", "name": "data", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.NewsletterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Email já inscrito", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/newsletter/count": {
            "get": {
                "produces": ["application/json"],
                "tags": ["newsletter"],
                "summary": "Total de inscritos na newsletter",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SubscriberCountResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "catalog.UnitInfo": {
            "type": "object",
            "properties": {
                "produto": {"type": "string"},
                "unidade": {"type": "string"},
                "mensagem": {"type": "string"},
                "fixa": {"type": "boolean"}
            }
        },
        "handlers.DocumentValidationRequest": {
            "type": "object",
            "required": ["document"],
            "properties": {"document": {"type": "string", "example": "529.982.247-25"}}
        },
        "handlers.DocumentValidationResponse": {
            "type": "object",
            "properties": {
                "valid": {"type": "boolean"},
                "kind": {"type": "string", "enum": ["CPF", "CNPJ", "Invalid"]},
                "digits": {"type": "string"},
                "formatted": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.EmailValidationRequest": {
            "type": "object",
            "required": ["email"],
            "properties": {"email": {"type": "string", "example": "usuario@exemplo.com"}}
        },
        "handlers.EmailValidationResponse": {
            "type": "object",
            "properties": {
                "valid": {"type": "boolean"},
                "message": {"type": "string"},
                "local_part": {"type": "string"},
                "domain": {"type": "string"},
                "normalized": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handlers.FormatRequest": {
            "type": "object",
            "properties": {"value": {"type": "string", "example": "52998224725"}}
        },
        "handlers.FormatResponse": {
            "type": "object",
            "properties": {"formatted": {"type": "string"}, "kind": {"type": "string"}}
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "timestamp": {"type": "string"},
                "services": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "handlers.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handlers.PhoneValidationRequest": {
            "type": "object",
            "required": ["phone"],
            "properties": {"phone": {"type": "string", "example": "(11) 99988-7766"}}
        },
        "handlers.PhoneValidationResponse": {
            "type": "object",
            "properties": {
                "valid": {"type": "boolean"},
                "message": {"type": "string"},
                "ddi": {"type": "string"},
                "ddd": {"type": "string"},
                "numero": {"type": "string"},
                "e164": {"type": "string"},
                "formatted": {"type": "string"}
            }
        },
        "handlers.ProductListResponse": {
            "type": "object",
            "properties": {
                "produtos": {"type": "array", "items": {"$ref": "#/definitions/handlers.ProductResponse"}},
                "unidades": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handlers.ProductResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "nome": {"type": "string"},
                "unidade": {"type": "string"},
                "unidade_variavel": {"type": "boolean"}
            }
        },
        "handlers.QuoteResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "orcamento": {"$ref": "#/definitions/models.Quote"}
            }
        },
        "handlers.SubscriberCountResponse": {
            "type": "object",
            "properties": {"total": {"type": "integer"}}
        },
        "models.Address": {
            "type": "object",
            "properties": {
                "cep": {"type": "string"},
                "logradouro": {"type": "string"},
                "complemento": {"type": "string"},
                "bairro": {"type": "string"},
                "localidade": {"type": "string"},
                "uf": {"type": "string"},
                "ibge": {"type": "string"},
                "ddd": {"type": "string"}
            }
        },
        "models.NewsletterRequest": {
            "type": "object",
            "properties": {"email": {"type": "string", "example": "maria@empresa.com.br"}}
        },
        "models.Quote": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "nome": {"type": "string"},
                "email": {"type": "string"},
                "telefone": {"$ref": "#/definitions/models.QuotePhone"},
                "documento": {"$ref": "#/definitions/models.QuoteDocument"},
                "empresa": {"type": "string"},
                "produto": {"type": "string"},
                "quantidade": {"type": "number"},
                "unidade": {"type": "string"},
                "mensagem": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "models.QuoteDocument": {
            "type": "object",
            "properties": {
                "tipo": {"type": "string"},
                "numero": {"type": "string"},
                "formatado": {"type": "string"}
            }
        },
        "models.QuotePhone": {
            "type": "object",
            "properties": {
                "ddi": {"type": "string"},
                "ddd": {"type": "string"},
                "valor": {"type": "string"},
                "e164": {"type": "string"}
            }
        },
        "models.QuoteRequest": {
            "type": "object",
            "properties": {
                "nome": {"type": "string", "example": "Maria Silva"},
                "email": {"type": "string", "example": "maria@empresa.com.br"},
                "telefone": {"type": "string", "example": "(11) 98765-4321"},
                "documento": {"type": "string", "example": "529.982.247-25"},
                "empresa": {"type": "string", "example": "Empresa Ltda"},
                "produto": {"type": "string", "example": "sacolas"},
                "quantidade": {"type": "number", "example": 50},
                "unidade": {"type": "string", "example": "kg"},
                "mensagem": {"type": "string"},
                "politica_aceita": {"type": "boolean", "example": true}
            }
        },
        "validation.ValidationError": {
            "type": "object",
            "properties": {"field": {"type": "string"}, "message": {"type": "string"}}
        },
        "validation.ValidationResult": {
            "type": "object",
            "properties": {
                "is_valid": {"type": "boolean"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/validation.ValidationError"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "EcoBytes Site API",
	Description:      "API do site EcoBytes: validação e máscaras de CPF, CNPJ, telefone e CEP, consulta de endereço, catálogo de produtos, orçamentos e newsletter.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
