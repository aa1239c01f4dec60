package models

import "time"

// QuoteRequest is the payload of the quote form.
type QuoteRequest struct {
	Nome           string  `json:"nome" example:"Maria Silva"`
	Email          string  `json:"email" example:"maria@empresa.com.br"`
	Telefone       string  `json:"telefone" example:"(11) 98765-4321"`
	Documento      string  `json:"documento" example:"529.982.247-25"`
	Empresa        string  `json:"empresa,omitempty" example:"Empresa Ltda"`
	Produto        string  `json:"produto" example:"sacolas"`
	Quantidade     float64 `json:"quantidade" example:"50"`
	Unidade        string  `json:"unidade,omitempty" example:"kg"`
	Mensagem       string  `json:"mensagem,omitempty"`
	PoliticaAceita bool    `json:"politica_aceita" example:"true"`
}

// QuoteDocument is the normalized taxpayer document stored with a quote.
type QuoteDocument struct {
	Tipo      string `bson:"tipo" json:"tipo"`
	Numero    string `bson:"numero" json:"numero"`
	Formatado string `bson:"formatado" json:"formatado"`
}

// QuotePhone is the normalized phone stored with a quote.
type QuotePhone struct {
	DDI   string `bson:"ddi" json:"ddi"`
	DDD   string `bson:"ddd" json:"ddd"`
	Valor string `bson:"valor" json:"valor"`
	E164  string `bson:"e164" json:"e164"`
}

// Quote is a stored quote request.
type Quote struct {
	ID         string        `bson:"_id" json:"id"`
	Nome       string        `bson:"nome" json:"nome"`
	Email      string        `bson:"email" json:"email"`
	Telefone   QuotePhone    `bson:"telefone" json:"telefone"`
	Documento  QuoteDocument `bson:"documento" json:"documento"`
	Empresa    string        `bson:"empresa,omitempty" json:"empresa,omitempty"`
	Produto    string        `bson:"produto" json:"produto"`
	Quantidade float64       `bson:"quantidade" json:"quantidade"`
	Unidade    string        `bson:"unidade" json:"unidade"`
	Mensagem   string        `bson:"mensagem,omitempty" json:"mensagem,omitempty"`
	ClientIP   string        `bson:"client_ip" json:"-"`
	CreatedAt  time.Time     `bson:"created_at" json:"created_at"`
}

// QuoteRequestedEvent is published when a quote is stored.
type QuoteRequestedEvent struct {
	QuoteID    string    `json:"quote_id"`
	Nome       string    `json:"nome"`
	Email      string    `json:"email"`
	Produto    string    `json:"produto"`
	Quantidade float64   `json:"quantidade"`
	Unidade    string    `json:"unidade"`
	CreatedAt  time.Time `json:"created_at"`
}
