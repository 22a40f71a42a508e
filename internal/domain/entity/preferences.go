package entity

// Preferences are the local notification settings.
type Preferences struct {
	NotificationsAllowed bool
	SoundAllowed         bool
}

// DefaultPreferences has everything enabled.
func DefaultPreferences() Preferences {
	return Preferences{NotificationsAllowed: true, SoundAllowed: true}
}
