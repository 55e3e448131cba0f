package user

import (
	"libraryapp/internal/platform/crypto"
)

// CheckCredentials looks the email up in registry and verifies the password
// against the stored hash. User is set whenever the email matched.
func CheckCredentials(email, password string, registry []User) CredentialResult {
	for i := range registry {
		if registry[i].Email != email {
			continue
		}
		u := registry[i]
		return CredentialResult{
			Success: crypto.VerifyPassword(u.PasswordHash, password),
			User:    &u,
		}
	}
	return CredentialResult{}
}

// CheckRegistration reports email and username collisions independently, so
// both are returned when both are taken.
func CheckRegistration(email, username string, registry []User) RegistrationResult {
	var c Collisions
	for _, u := range registry {
		if c.Email == "" && u.Email == email {
			c.Email = "Email already registered"
		}
		if c.Username == "" && u.Username == username {
			c.Username = "Username already taken"
		}
	}
	return RegistrationResult{Success: !c.Any(), Errors: c}
}
