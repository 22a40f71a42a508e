package memstore

import (
	"time"

	"alerty/internal/domain/service"
	"alerty/internal/errors"
)

// SeedCompanyID is the company every seeded record belongs to.
const SeedCompanyID int64 = 1

// Seeded accounts of the development backend.
const (
	SeedAdminUsername    = "admin"
	SeedAdminPassword    = "admin123"
	SeedOperatorUsername = "operador"
	SeedOperatorPassword = "operador123"
	SeedOperatorDni      = "45678912"
)

type seedUser struct {
	username string
	fullName string
	dni      string
	role     string
	password string
}

type seedAlert struct {
	severity     string
	ago          time.Duration
	vehicleCode  string
	licensePlate string
	plant        string
	area         string
	alertType    string
	short        string
	details      string
	acknowledged bool
}

//nolint:gochecknoglobals
var seedUsers = []seedUser{
	{username: SeedAdminUsername, fullName: "Administrador Planta", dni: "12345678", role: "ADMIN", password: SeedAdminPassword},
	{username: SeedOperatorUsername, fullName: "Operador Turno A", dni: SeedOperatorDni, role: "OPERATOR", password: SeedOperatorPassword},
	{username: "supervisor", fullName: "Supervisora Turno B", dni: "78912345", role: "SUPERVISOR", password: "supervisor123"},
}

//nolint:gochecknoglobals
var seedAlerts = []seedAlert{
	{
		severity: "BLOQUEA_OPERACIÓN", ago: 5 * time.Minute,
		vehicleCode: "<b>GH-101</b>", licensePlate: "ABC-123", plant: "Planta Norte", area: "Patio de carga",
		alertType: "Exceso de velocidad", short: "Velocidad sobre el límite",
		details: "<p>El equipo superó los <strong>15 km/h</strong> en zona peatonal.</p>",
	},
	{
		severity: "CRITICAL", ago: 40 * time.Minute,
		vehicleCode: "GH-102", plant: "Planta Norte", area: "Bodega 2",
		alertType: "Impacto", short: "Impacto detectado",
		details: "<p>Sensor de impacto activado en mástil.</p>",
	},
	{
		severity: "ALTA", ago: 3 * time.Hour,
		vehicleCode: "GH-103", licensePlate: "XYZ-987", plant: "Planta Sur", area: "Andén 4",
		alertType: "Operador no autorizado", short: "Tarjeta no reconocida",
		acknowledged: true,
	},
	{
		severity: "WARNING", ago: 26 * time.Hour,
		vehicleCode: "GH-104", plant: "Planta Sur", area: "Taller",
		alertType: "Mantención", short: "Mantención preventiva vencida",
	},
	{
		severity: "MEDIA", ago: 50 * time.Hour,
		vehicleCode: "GH-101", licensePlate: "ABC-123", plant: "Planta Norte", area: "Patio de carga",
		alertType: "Batería", short: "Batería bajo 20%",
		acknowledged: true,
	},
	{
		severity: "INFO", ago: 72 * time.Hour,
		vehicleCode: "GH-105", plant: "Planta Norte", area: "Bodega 1",
		alertType: "Checklist", short: "Checklist de inicio completado",
		acknowledged: true,
	},
}

// seed loads the fixed company, its users and a recent alert history.
func (db *DB) seed(hasher service.PasswordHasher) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range seedUsers {
		hash, err := hasher.Hash(u.password)
		if err != nil {
			return errors.Wrapf(err, "failed to hash password of %s", u.username)
		}

		id := db.nextUserID
		db.nextUserID++
		db.users[id] = &userRecord{
			ID:           id,
			CompanyID:    SeedCompanyID,
			Username:     u.username,
			FullName:     u.fullName,
			Dni:          u.dni,
			Role:         u.role,
			Active:       true,
			PasswordHash: hash,
		}
	}

	now := db.now()
	for _, a := range seedAlerts {
		id := db.nextAlertID
		db.nextAlertID++

		received := now.Add(-a.ago)
		db.alerts[id] = &alertRecord{
			ID:               id,
			CompanyID:        SeedCompanyID,
			Severity:         a.severity,
			Acknowledged:     a.acknowledged,
			EventTime:        received.Add(-30 * time.Second),
			ReceivedAt:       received,
			VehicleCode:      a.vehicleCode,
			LicensePlate:     a.licensePlate,
			Plant:            a.plant,
			Area:             a.area,
			AlertType:        a.alertType,
			ShortDescription: a.short,
			Details:          a.details,
			RawPayload:       rawPayload(a),
		}
	}

	return nil
}

func rawPayload(a seedAlert) string {
	if a.details == "" {
		return ""
	}

	return "<!DOCTYPE html><html><head><title>Alerta</title></head><body>" +
		"<h1>" + a.alertType + "</h1>" + a.details +
		"</body></html>"
}
