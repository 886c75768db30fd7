package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user" json:"user"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UpdateProjectInput distinguishes "field not sent" (nil) from "sent as
// empty". Name only overwrites when sent non-empty; Description overwrites
// whenever present, including an explicit empty string.
type UpdateProjectInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
