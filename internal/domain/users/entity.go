package users

import "time"

// Provider enum
type Provider string

const (
	ProviderGoogle    Provider = "google"
	ProviderMicrosoft Provider = "microsoft"
)

// User as known from the OAuth provider profile.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	DisplayName    string    `json:"displayName"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	Provider       Provider  `json:"provider"`
	GoogleID       string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
}
