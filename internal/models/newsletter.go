package models

import "time"

// NewsletterRequest is the payload of the newsletter signup form.
type NewsletterRequest struct {
	Email string `json:"email" example:"maria@empresa.com.br"`
}

// Subscriber is a newsletter subscription. EmailNormalized carries a unique
// index.
type Subscriber struct {
	ID              string    `bson:"_id" json:"id"`
	Email           string    `bson:"email" json:"email"`
	EmailNormalized string    `bson:"email_normalized" json:"-"`
	SubscribedAt    time.Time `bson:"subscribed_at" json:"subscribed_at"`
}
