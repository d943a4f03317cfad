package preferences

import "time"

// Preferences stores per-user UI settings.
type Preferences struct {
	UserID               string
	Timezone             string
	Language             string
	NotificationsEnabled bool
	UpdatedAt            time.Time
}

// Default returns the settings a user gets before saving any.
func Default(userID string) Preferences {
	return Preferences{
		UserID:               userID,
		Timezone:             "America/Argentina/Buenos_Aires",
		Language:             "es",
		NotificationsEnabled: true,
	}
}
