package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"campusevents/internal/domain"
)

func TestAuthService_SignUp(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		userRepo *mockUserRepository
		wantErr  error
	}{
		{
			name:     "success",
			email:    "Ada@Campus.EDU",
			password: "hunter2hunter2",
			userRepo: &mockUserRepository{},
		},
		{
			name:     "invalid email",
			email:    "not-an-email",
			password: "hunter2hunter2",
			userRepo: &mockUserRepository{},
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "short password",
			email:    "ada@campus.edu",
			password: "short",
			userRepo: &mockUserRepository{},
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "duplicate email",
			email:    "ada@campus.edu",
			password: "hunter2hunter2",
			userRepo: &mockUserRepository{createErr: domain.ErrDuplicateEmail},
			wantErr:  domain.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roleRepo := &mockRoleRepository{
				byCode: map[string]*domain.Role{
					domain.RoleStudent: {ID: "role-student", Code: domain.RoleStudent},
				},
			}
			svc := NewAuthService(tt.userRepo, roleRepo, &mockHasher{}, &mockIssuer{token: "tok"}, time.Hour)

			user, err := svc.SignUp(context.Background(), tt.email, tt.password, "Ada", "Lovelace")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.Email != "ada@campus.edu" {
				t.Fatalf("expected lowercased email, got %q", user.Email)
			}
			if user.PasswordHash == "" || user.Salt == "" {
				t.Fatal("expected credentials to be set")
			}
			if tt.userRepo.assigned[user.ID] != "role-student" {
				t.Fatalf("expected student role assignment, got %v", tt.userRepo.assigned)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hasher := &mockHasher{}
	hash, _ := hasher.Hash("salt", "hunter2hunter2")
	user := &domain.User{ID: "user-1", Email: "ada@campus.edu", PasswordHash: hash, Salt: "salt"}

	userRepo := &mockUserRepository{byEmail: map[string]*domain.User{"ada@campus.edu": user}}
	roleRepo := &mockRoleRepository{byUser: map[string][]*domain.Role{
		"user-1": {{ID: "role-student", Code: domain.RoleStudent}},
	}}
	svc := NewAuthService(userRepo, roleRepo, hasher, &mockIssuer{token: "tok"}, time.Hour)

	t.Run("success", func(t *testing.T) {
		token, err := svc.Login(context.Background(), "ADA@campus.edu", "hunter2hunter2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "tok" {
			t.Fatalf("expected token, got %q", token)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "ada@campus.edu", "wrong-password")
		if err == nil || err.Error() != "invalid credentials" {
			t.Fatalf("expected invalid credentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "ghost@campus.edu", "hunter2hunter2")
		if err == nil || err.Error() != "invalid credentials" {
			t.Fatalf("expected invalid credentials, got %v", err)
		}
	})
}

func TestAuthService_Profile(t *testing.T) {
	user := &domain.User{ID: "user-1", Email: "ada@campus.edu", FirstName: "Ada", LastName: "Lovelace"}
	userRepo := &mockUserRepository{users: map[string]*domain.User{"user-1": user}}
	roleRepo := &mockRoleRepository{byUser: map[string][]*domain.Role{
		"user-1": {{Code: domain.RoleStudent}, {Code: domain.RoleStaff}},
	}}
	svc := NewAuthService(userRepo, roleRepo, &mockHasher{}, &mockIssuer{}, time.Hour)

	t.Run("success", func(t *testing.T) {
		got, roles, err := svc.Profile(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.FullName() != "Ada Lovelace" {
			t.Fatalf("unexpected user: %+v", got)
		}
		if len(roles) != 2 {
			t.Fatalf("expected 2 role codes, got %v", roles)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := svc.Profile(context.Background(), "ghost")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}
