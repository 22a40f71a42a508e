package entity

// DeviceRegistration links a push token to a user. The client only ever writes it.
type DeviceRegistration struct {
	UserID        int64  `json:"userId"`
	ExpoPushToken string `json:"expoPushToken"`
	Platform      string `json:"platform"` // "android" or "ios".
	Active        bool   `json:"active"`
}
