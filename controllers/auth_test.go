package controllers

import (
	"testing"

	"github.com/curelink/clinic-app/models"
)

func TestSanitizeSignup_IgnoresRequestedRole(t *testing.T) {
	user := &models.User{
		Name:       "Asha Rao",
		Email:      "asha@example.com",
		Password:   "secret",
		RoleID:     1,
		Role:       models.Role{ID: 1, Name: "superadmin"},
		IsVerified: true,
	}
	user.ID = 42

	sanitizeSignup(user)

	if user.RoleID != 0 || user.Role.Name != "" {
		t.Errorf("sign-up must not keep a requested role, got role_id=%d role=%q",
			user.RoleID, user.Role.Name)
	}
	if user.ID != 0 {
		t.Errorf("sign-up must not choose its own id, got %d", user.ID)
	}
	if user.IsVerified {
		t.Error("sign-up must start unverified")
	}
	if user.Name != "Asha Rao" || user.Email != "asha@example.com" {
		t.Error("contact fields must survive sanitization")
	}
}
