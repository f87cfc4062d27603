package auth

import "testing"

func TestBootstrapHashesPassword(t *testing.T) {
	repo := NewInMemoryAdminRepository()
	service := NewService(repo)

	password := "Password@123"
	if err := service.Bootstrap("admin@voltstore.test", password); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	admin := repo.admins["admin@voltstore.test"]
	if admin == nil {
		t.Fatalf("admin not found")
	}
	if admin.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestBootstrapIsIdempotent(t *testing.T) {
	repo := NewInMemoryAdminRepository()
	service := NewService(repo)

	if err := service.Bootstrap("admin@voltstore.test", "secret1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := repo.admins["admin@voltstore.test"].Password

	if err := service.Bootstrap("admin@voltstore.test", "secret2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.admins["admin@voltstore.test"].Password != first {
		t.Fatalf("bootstrap must not overwrite an existing admin")
	}
}

func TestLogin(t *testing.T) {
	repo := NewInMemoryAdminRepository()
	service := NewService(repo)
	_ = service.Bootstrap("admin@voltstore.test", "correct")

	if _, err := service.Login("admin@voltstore.test", "correct"); err != nil {
		t.Fatalf("valid credentials rejected: %v", err)
	}
	if _, err := service.Login("admin@voltstore.test", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := service.Login("nobody@voltstore.test", "correct"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
