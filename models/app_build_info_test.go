package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo_EmptyValuesBecomeNA(t *testing.T) {
	info := NewAppBuildInfo("", "2026-10-17", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-10-17", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "Build version: N/A\nBuild date: 2026-10-17\nBuild commit: N/A", info.String())
}

func TestAccount_DisplayName(t *testing.T) {
	a := Account{FirstName: "Ada", LastName: "Lovelace"}
	assert.Equal(t, "Ada Lovelace", a.DisplayName())
	assert.Equal(t, "users", a.TableName())
}

func TestAccountResponse_RoundTrip(t *testing.T) {
	a := Account{ID: 7, Username: "ada_l", Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace", PasswordDigest: "secret"}

	resp := NewAccountResponse(a)
	assert.Equal(t, "Ada Lovelace", resp.DisplayName)

	back := resp.Account()
	assert.Empty(t, back.PasswordDigest)
	assert.Equal(t, a.Username, back.Username)
	assert.Equal(t, a.ID, back.ID)
}
