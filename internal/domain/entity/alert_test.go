package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripMarkup(t *testing.T) {
	assert.Equal(t, "Grúa 12", StripMarkup("<b>Grúa</b> <i>12</i>"))
	assert.Equal(t, "", StripMarkup(""))
	assert.Equal(t, "plain", StripMarkup("plain"))
}

func TestRawDocument(t *testing.T) {
	raw := `<!DOCTYPE html><html lang="es"><head><title>x</title><style>p{}</style></head>` +
		`<body class="mail"><table><tr><td>Frenado brusco</td></tr></table></body></html>`

	assert.Equal(t, "<table><tr><td>Frenado brusco</td></tr></table>", RawDocument(raw))
}

func TestAlert_DescriptionAndVehicle(t *testing.T) {
	a := &Alert{Details: "<p></p>", ShortDescription: "<p>Exceso de velocidad</p>", VehicleCode: "MC-01"}
	assert.Equal(t, "Exceso de velocidad", a.Description())
	assert.Equal(t, "MC-01", a.VehicleLabel())

	a = &Alert{LicensePlate: "<span>AB-1234</span>"}
	assert.Equal(t, noDescription, a.Description())
	assert.Equal(t, "AB-1234", a.VehicleLabel())

	assert.Equal(t, "—", (&Alert{}).VehicleLabel())
}

func TestAlert_DecodesBackendTimestamps(t *testing.T) {
	body := `{"id":7,"severity":"ALTA","acknowledged":false,` +
		`"eventTime":"2025-03-01T10:15:30","receivedAt":"2025-03-01T10:15:31.250Z","rawPayload":null}`

	var a Alert
	require.NoError(t, json.Unmarshal([]byte(body), &a))

	assert.Equal(t, int64(7), a.ID)
	assert.Equal(t, time.Date(2025, 3, 1, 10, 15, 30, 0, time.UTC), a.EventTime.Time)
	assert.Equal(t, 250*time.Millisecond, time.Duration(a.ReceivedAt.Nanosecond()))
	assert.False(t, a.HasRawPayload())
	assert.Equal(t, SeverityHigh, a.Bucket())
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantRaw string
	}{
		{name: "rfc3339", input: `"2025-03-01T10:00:00Z"`, want: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
		{name: "offset without colon", input: `"2025-03-01T10:00:00.123+0000"`, want: time.Date(2025, 3, 1, 10, 0, 0, 123000000, time.UTC)},
		{name: "negative offset without colon", input: `"2025-03-01T07:00:00-0300"`, want: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
		{name: "local date-time", input: `"2025-03-01 10:00:00"`, want: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
		{name: "epoch millis", input: `1740823200000`, want: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
		{name: "unknown shape keeps text", input: `"yesterday"`, wantRaw: "yesterday"},
		{name: "fractional number keeps text", input: `42.5`, wantRaw: "42.5"},
		{name: "null", input: `null`},
		{name: "empty", input: `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))

			assert.True(t, tt.want.Equal(ts.Time), "got %s", ts.Time)
			assert.Equal(t, tt.wantRaw, ts.Raw)
		})
	}
}

func TestAlertPage_DecodesWithOddTimestamp(t *testing.T) {
	body := `{"content":[` +
		`{"id":1,"eventTime":"2025-03-01T10:00:00.123+0000","receivedAt":1740823200000},` +
		`{"id":2,"eventTime":"ayer","receivedAt":"2025-03-01T10:00:00"}` +
		`],"totalElements":2}`

	var page Page[Alert]
	require.NoError(t, json.Unmarshal([]byte(body), &page))

	require.Len(t, page.Content, 2)
	assert.False(t, page.Content[0].EventTime.IsZero())
	assert.False(t, page.Content[0].ReceivedAt.IsZero())
	assert.True(t, page.Content[1].EventTime.IsZero())
	assert.Equal(t, "ayer", page.Content[1].EventTime.Raw)
}

func TestFilterAlertsAndStats(t *testing.T) {
	alerts := []Alert{
		{ID: 1, Severity: "CRITICAL", Plant: "<b>Planta Norte</b>", Acknowledged: false},
		{ID: 2, Severity: "WARNING", Area: "Bodega 3", Acknowledged: true},
		{ID: 3, Severity: "INFO", AlertType: "Impacto", Acknowledged: false},
	}

	high := FilterAlerts(alerts, AlertFilter{Bucket: SeverityHigh})
	require.Len(t, high, 1)
	assert.Equal(t, int64(1), high[0].ID)

	byText := FilterAlerts(alerts, AlertFilter{Search: "planta"})
	require.Len(t, byText, 1)
	assert.Equal(t, int64(1), byText[0].ID)

	bySeverity := FilterAlerts(alerts, AlertFilter{Search: "warn"})
	require.Len(t, bySeverity, 1)
	assert.Equal(t, int64(2), bySeverity[0].ID)

	assert.Len(t, FilterAlerts(alerts, AlertFilter{}), 3)
	assert.Empty(t, FilterAlerts(alerts, AlertFilter{Bucket: SeverityMedium, Search: "impacto"}))

	stats := StatsFor(&Page[Alert]{Content: alerts, TotalElements: 40})
	assert.Equal(t, AlertPageStats{TotalElements: 40, OnPage: 3, Pending: 2, Critical: 1}, stats)
	assert.Equal(t, AlertPageStats{}, StatsFor(nil))
}

func TestNewPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	p := NewPage(items, 1, 2)
	assert.Equal(t, []int{3, 4}, p.Content)
	assert.Equal(t, int64(5), p.TotalElements)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.Last)

	p = NewPage(items, 2, 2)
	assert.Equal(t, []int{5}, p.Content)
	assert.True(t, p.Last)

	p = NewPage(items, 9, 2)
	assert.True(t, p.IsEmpty())

	empty := NewPage([]int{}, 0, 20)
	assert.True(t, empty.Last)
	assert.Equal(t, 0, empty.TotalPages)
}
