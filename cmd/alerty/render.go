package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"alerty/internal/domain/entity"
	"alerty/internal/util"
)

const timeLayout = "02/01/2006 15:04"

func printLine(w io.Writer, s string) {
	fmt.Fprintln(w, s)
}

func printSession(w io.Writer, creds *entity.Credentials) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Usuario:\t%s\n", creds.DisplayName())
	if creds.Role != nil {
		fmt.Fprintf(tw, "Rol:\t%s\n", *creds.Role)
	}
	if creds.HasCompany() {
		fmt.Fprintf(tw, "Empresa:\t%d\n", *creds.CompanyID)
	}
	if creds.HasUser() {
		fmt.Fprintf(tw, "Id:\t%d\n", *creds.UserID)
	}
	_ = tw.Flush()
}

// printAlertPage prints the counters of the whole page followed by the
// alerts passing filter.
func printAlertPage(w io.Writer, page *entity.Page[entity.Alert], filter entity.AlertFilter) {
	if page.IsEmpty() {
		printLine(w, "No hay alertas")

		return
	}

	stats := entity.StatsFor(page)
	fmt.Fprintf(w, "Total: %d  En página: %d  Pendientes: %d  Críticas: %d\n",
		stats.TotalElements, stats.OnPage, stats.Pending, stats.Critical)

	alerts := entity.FilterAlerts(page.Content, filter)
	if len(alerts) == 0 {
		printLine(w, "Ninguna alerta coincide con el filtro")

		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tRECIBIDA\tHACE\tSEVERIDAD\tVEHÍCULO\tTIPO\tESTADO")
	now := time.Now()
	for i := range alerts {
		a := &alerts[i]
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			a.ID,
			formatTime(a.ReceivedAt),
			util.Since(now, a.ReceivedAt.Time),
			a.Bucket().Label(),
			a.VehicleLabel(),
			entity.StripMarkup(a.AlertType),
			ackLabel(a.Acknowledged),
		)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "Página %d de %d\n", page.Number+1, max(page.TotalPages, 1))
}

func printAlert(w io.Writer, a *entity.Alert, raw bool) {
	severity := a.Severity
	if entity.IsCritical(a.Severity) {
		severity += " (crítica)"
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Alerta:\t#%d\n", a.ID)
	fmt.Fprintf(tw, "Severidad:\t%s\n", severity)
	fmt.Fprintf(tw, "Estado:\t%s\n", ackLabel(a.Acknowledged))
	fmt.Fprintf(tw, "Vehículo:\t%s\n", a.VehicleLabel())
	fmt.Fprintf(tw, "Tipo:\t%s\n", entity.StripMarkup(a.AlertType))
	fmt.Fprintf(tw, "Planta:\t%s\n", entity.StripMarkup(a.Plant))
	fmt.Fprintf(tw, "Área:\t%s\n", entity.StripMarkup(a.Area))
	fmt.Fprintf(tw, "Evento:\t%s\n", formatTime(a.EventTime))
	fmt.Fprintf(tw, "Recibida:\t%s\n", formatTime(a.ReceivedAt))
	_ = tw.Flush()

	fmt.Fprintf(w, "\n%s\n", a.Description())
	if raw && a.HasRawPayload() {
		fmt.Fprintf(w, "\n%s\n", entity.RawDocument(a.RawPayload))
	}
}

func printUserPage(w io.Writer, page *entity.Page[entity.User]) {
	if page.IsEmpty() {
		printLine(w, "No hay usuarios")

		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSUARIO\tNOMBRE\tDNI\tROL\tACTIVO")
	for i := range page.Content {
		u := &page.Content[i]
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.FullName, u.Dni, u.Role, yesNo(u.Active))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "Total: %s\n", strconv.FormatInt(page.TotalElements, 10))
}

func printPrefs(w io.Writer, p entity.Preferences) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Notificaciones:\t%s\n", yesNo(p.NotificationsAllowed))
	fmt.Fprintf(tw, "Sonido:\t%s\n", yesNo(p.SoundAllowed))
	_ = tw.Flush()
}

func formatTime(ts entity.Timestamp) string {
	if ts.IsZero() {
		if ts.Raw != "" {
			return ts.Raw
		}

		return "—"
	}

	return ts.Local().Format(timeLayout)
}

func ackLabel(acknowledged bool) string {
	if acknowledged {
		return "Reconocida"
	}

	return "Pendiente"
}

func yesNo(v bool) string {
	if v {
		return "sí"
	}

	return "no"
}
