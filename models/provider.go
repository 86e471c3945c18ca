package models

import "time"

// ServiceProvider is an operator of transports (an airline, a railway
// company or a bus operator).
type ServiceProvider struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Type         string    `bson:"type" json:"type"` // airline, train or bus
	ContactEmail string    `bson:"contactEmail,omitempty" json:"contactEmail,omitempty"`
	ContactPhone string    `bson:"contactPhone,omitempty" json:"contactPhone,omitempty"`
	Address      string    `bson:"address,omitempty" json:"address,omitempty"`
	Website      string    `bson:"website,omitempty" json:"website,omitempty"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
