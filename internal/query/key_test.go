package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type listParams struct {
	CompanyID int64  `json:"companyId,omitempty"`
	Query     string `json:"q,omitempty"`
	Page      int    `json:"page"`
	Size      int    `json:"size"`
}

func TestNewKey_NormalizesParameters(t *testing.T) {
	fromStruct := NewKey("company-users", listParams{CompanyID: 3, Page: 0, Size: 20})
	fromMap := NewKey("company-users", map[string]any{"size": 20, "page": 0, "companyId": 3})

	assert.Equal(t, fromStruct.String(), fromMap.String())
	assert.Equal(t, `["company-users",{"companyId":3,"page":0,"size":20}]`, fromStruct.String())
	assert.NotEqual(t, fromStruct.String(), NewKey("company-users", listParams{CompanyID: 3, Page: 1, Size: 20}).String())
}

func TestKey_HasPrefix(t *testing.T) {
	list := NewKey("alerts", "all", listParams{CompanyID: 3, Size: 20})
	rangeKey := NewKey("alerts", "group", "range", 3, listParams{CompanyID: 3})
	single := NewKey("alert", 7)
	users := NewKey("company-users", listParams{CompanyID: 3, Query: "ana", Size: 20})
	user := NewKey("company-user", map[string]any{"companyId": 3, "userId": 11})

	tests := []struct {
		name   string
		key    Key
		prefix Key
		want   bool
	}{
		{name: "resource prefix", key: list, prefix: NewKey("alerts"), want: true},
		{name: "sub-resource prefix", key: rangeKey, prefix: NewKey("alerts", "group"), want: true},
		{name: "sibling sub-resource", key: list, prefix: NewKey("alerts", "group"), want: false},
		{name: "sibling family", key: single, prefix: NewKey("alerts"), want: false},
		{name: "exact key", key: single, prefix: NewKey("alert", 7), want: true},
		{name: "other id", key: single, prefix: NewKey("alert", 8), want: false},
		{name: "partial object", key: users, prefix: NewKey("company-users", map[string]any{"companyId": 3}), want: true},
		{name: "partial object other company", key: users, prefix: NewKey("company-users", map[string]any{"companyId": 4}), want: false},
		{name: "full lookup", key: user, prefix: NewKey("company-user", map[string]any{"userId": 11, "companyId": 3}), want: true},
		{name: "prefix longer than key", key: single, prefix: NewKey("alert", 7, "extra"), want: false},
		{name: "empty prefix", key: single, prefix: NewKey(), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.HasPrefix(tt.prefix))
		})
	}
}

func TestKey_Family(t *testing.T) {
	key := NewKey("alerts", "all", listParams{Page: 2})

	assert.Equal(t, NewKey("alerts", "all").String(), key.Family().String())
	assert.Empty(t, Key{}.Family())
}
