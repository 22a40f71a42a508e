package entity

// Alert is a forklift-safety alert raised by the backend. The only client-side
// transition is unacknowledged -> acknowledged.
type Alert struct {
	ID               int64     `json:"id"`
	CompanyID        int64     `json:"companyId,omitempty"`
	Severity         string    `json:"severity"`
	Acknowledged     bool      `json:"acknowledged"`
	EventTime        Timestamp `json:"eventTime"`
	ReceivedAt       Timestamp `json:"receivedAt"`
	VehicleCode      string    `json:"vehicleCode"`
	LicensePlate     string    `json:"licensePlate"`
	Plant            string    `json:"plant"`
	Area             string    `json:"area"`
	AlertType        string    `json:"alertType"`
	ShortDescription string    `json:"shortDescription"`
	Details          string    `json:"details"`
	RawPayload       string    `json:"rawPayload,omitempty"`
}

const noDescription = "Sin descripción."

// Bucket returns the severity bucket of the alert.
func (a *Alert) Bucket() SeverityBucket {
	return BucketFor(a.Severity)
}

// Description returns the stripped details, falling back to the short description.
func (a *Alert) Description() string {
	if d := StripMarkup(a.Details); d != "" {
		return d
	}
	if d := StripMarkup(a.ShortDescription); d != "" {
		return d
	}

	return noDescription
}

// VehicleLabel prefers the license plate over the internal vehicle code.
func (a *Alert) VehicleLabel() string {
	if plate := StripMarkup(a.LicensePlate); plate != "" {
		return plate
	}
	if code := StripMarkup(a.VehicleCode); code != "" {
		return code
	}

	return "—"
}

// HasRawPayload reports whether the backend attached the original HTML document.
func (a *Alert) HasRawPayload() bool {
	return a.RawPayload != ""
}
