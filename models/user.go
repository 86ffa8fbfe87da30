package models

import "time"

// User is the device-token record kept for push delivery. Account and
// credential management are owned by the external identity platform; this
// collection only maps an identity to its notification targets.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	FCMToken  string    `bson:"fcm_token,omitempty" json:"fcm_token,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
