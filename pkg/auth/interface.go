package auth

//go:generate mockgen -destination=mocks/mock_jwt.go -package=mocks coursehub/pkg/auth TokenManager

// TokenManager defines the interface for JWT token operations.
type TokenManager interface {
	// GenerateToken creates a new JWT token carrying the user's id and role.
	GenerateToken(userID string, role string) (string, error)
	// ValidateToken parses and validates a JWT token, returning the claims if valid.
	ValidateToken(tokenString string) (*Claims, error)
	// TTLSeconds is the lifetime of issued tokens.
	TTLSeconds() int64
}

// Ensure JWTManager implements TokenManager interface
var _ TokenManager = (*JWTManager)(nil)
