package auth

// Admin is the domain entity. The storefront has a single role.
type Admin struct {
	ID       string
	Email    string
	Password string
}

const RoleAdmin = "ADMIN"
