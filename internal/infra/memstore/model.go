package memstore

import (
	"time"

	"alerty/internal/domain/entity"
	"alerty/internal/domain/repository"
)

// userRecord is the stored form of a user.
type userRecord struct {
	ID           int64
	CompanyID    int64
	Username     string
	FullName     string
	Dni          string
	Role         string
	Active       bool
	PasswordHash string
}

// alertRecord is the stored form of an alert.
type alertRecord struct {
	ID               int64
	CompanyID        int64
	Severity         string
	Acknowledged     bool
	EventTime        time.Time
	ReceivedAt       time.Time
	VehicleCode      string
	LicensePlate     string
	Plant            string
	Area             string
	AlertType        string
	ShortDescription string
	Details          string
	RawPayload       string
}

// deviceRecord is the stored form of a push device registration.
type deviceRecord struct {
	UserID        int64
	ExpoPushToken string
	Platform      string
	Active        bool
	UpdatedAt     time.Time
}

func toUserDomain(r *userRecord) *repository.StoredUser {
	return &repository.StoredUser{
		User: entity.User{
			ID:        r.ID,
			Username:  r.Username,
			FullName:  r.FullName,
			Dni:       r.Dni,
			Role:      r.Role,
			Active:    r.Active,
			CompanyID: r.CompanyID,
		},
		PasswordHash: r.PasswordHash,
	}
}

func toUserRecord(u *repository.StoredUser) *userRecord {
	return &userRecord{
		ID:           u.ID,
		CompanyID:    u.CompanyID,
		Username:     u.Username,
		FullName:     u.FullName,
		Dni:          u.Dni,
		Role:         u.Role,
		Active:       u.Active,
		PasswordHash: u.PasswordHash,
	}
}

func toAlertDomain(r *alertRecord) *entity.Alert {
	return &entity.Alert{
		ID:               r.ID,
		CompanyID:        r.CompanyID,
		Severity:         r.Severity,
		Acknowledged:     r.Acknowledged,
		EventTime:        entity.NewTimestamp(r.EventTime),
		ReceivedAt:       entity.NewTimestamp(r.ReceivedAt),
		VehicleCode:      r.VehicleCode,
		LicensePlate:     r.LicensePlate,
		Plant:            r.Plant,
		Area:             r.Area,
		AlertType:        r.AlertType,
		ShortDescription: r.ShortDescription,
		Details:          r.Details,
		RawPayload:       r.RawPayload,
	}
}

func toAlertRecord(a *entity.Alert) *alertRecord {
	return &alertRecord{
		ID:               a.ID,
		CompanyID:        a.CompanyID,
		Severity:         a.Severity,
		Acknowledged:     a.Acknowledged,
		EventTime:        a.EventTime.Time,
		ReceivedAt:       a.ReceivedAt.Time,
		VehicleCode:      a.VehicleCode,
		LicensePlate:     a.LicensePlate,
		Plant:            a.Plant,
		Area:             a.Area,
		AlertType:        a.AlertType,
		ShortDescription: a.ShortDescription,
		Details:          a.Details,
		RawPayload:       a.RawPayload,
	}
}

func toDeviceDomain(r *deviceRecord) *entity.DeviceRegistration {
	return &entity.DeviceRegistration{
		UserID:        r.UserID,
		ExpoPushToken: r.ExpoPushToken,
		Platform:      r.Platform,
		Active:        r.Active,
	}
}
