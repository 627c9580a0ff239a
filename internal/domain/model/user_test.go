package model

import "testing"

func TestUserIsAdmin(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	if !admin.IsAdmin() {
		t.Fatal("admin role should report admin")
	}
	user := &User{Role: RoleUser}
	if user.IsAdmin() {
		t.Fatal("user role must not report admin")
	}
	blank := &User{}
	if blank.IsAdmin() {
		t.Fatal("zero role must not report admin")
	}
}

func TestUserHasFederatedLogin(t *testing.T) {
	federated := &User{GoogleID: "google-oauth2|123"}
	if !federated.HasFederatedLogin() {
		t.Fatal("account with provider id should report federated login")
	}
	local := &User{}
	if local.HasFederatedLogin() {
		t.Fatal("account without provider id must not report federated login")
	}
}
