package model

import "testing"

func TestPasswordHashing(t *testing.T) {
	var u User
	if err := u.SetPassword("secret123"); err != nil {
		t.Fatalf("set password failed: %v", err)
	}

	if u.Password == "secret123" {
		t.Fatal("password must not be stored in plaintext")
	}
	if !u.CheckPassword("secret123") {
		t.Error("correct password must verify")
	}
	if u.CheckPassword("wrong") {
		t.Error("wrong password must not verify")
	}
}

func TestIsAdminCaseInsensitive(t *testing.T) {
	cases := []struct {
		role string
		want bool
	}{
		{"admin", true},
		{"Admin", true},
		{"ADMIN", true},
		{"user", false},
		{"", false},
	}
	for _, tc := range cases {
		u := User{Role: tc.role}
		if got := u.IsAdmin(); got != tc.want {
			t.Errorf("IsAdmin(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}
