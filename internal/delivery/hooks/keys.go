package hooks

import (
	"alerty/internal/domain/service"
	"alerty/internal/query"
)

// Cache key roots.
const (
	alertRoot        = "alert"
	alertsRoot       = "alerts"
	companyUsersRoot = "company-users"
	companyUserRoot  = "company-user"
	userRoot         = "user"
)

// AlertKey is the key of a single alert.
func AlertKey(id int64) query.Key {
	return query.NewKey(alertRoot, id)
}

// AlertsKey is the key of a page of the alert history.
func AlertsKey(params service.AlertListParams) query.Key {
	return query.NewKey(alertsRoot, "all", params)
}

// AlertsByRangeKey is the key of a page of alerts received in a date range.
func AlertsByRangeKey(params service.AlertRangeParams) query.Key {
	return query.NewKey(alertsRoot, "group", "range", params.CompanyID, params)
}

// UsersKey is the key of a page of a company's users.
func UsersKey(params service.UserSearchParams) query.Key {
	return query.NewKey(companyUsersRoot, params)
}

// UserKey is the key of a single user.
func UserKey(lookup service.UserLookup) query.Key {
	return query.NewKey(companyUserRoot, lookup)
}

// UserByUsernameKey is the key of a user looked up by username.
func UserByUsernameKey(username string) query.Key {
	return query.NewKey(userRoot, "username", username)
}

type companyScope struct {
	CompanyID int64 `json:"companyId"`
}

// Invalidation prefixes.
var (
	allAlertsPrefix     = query.NewKey(alertsRoot)
	groupedAlertsPrefix = query.NewKey(alertsRoot, "group")
	allUsersPrefix      = query.NewKey(companyUsersRoot)
)

func companyUsersPrefix(companyID int64) query.Key {
	return query.NewKey(companyUsersRoot, companyScope{CompanyID: companyID})
}
