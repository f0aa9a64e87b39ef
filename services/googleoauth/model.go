package googleoauth

import "time"

// OAuthSessionSetup tracks one consent round-trip. The broker is stateless
// between the two requests: everything lives in this stored entity.
type OAuthSessionSetup struct {
	UID          string
	Scopes       []string
	CreatedAt    time.Time
	LastModified *time.Time
	Done         bool
}
