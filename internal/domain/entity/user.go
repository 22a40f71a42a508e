package entity

// User is a backend account as seen by the client.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	Dni       string `json:"dni"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
	CompanyID int64  `json:"companyId"`
}
