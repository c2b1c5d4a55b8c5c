package service

// AuthService answers whether a sender belongs to the configured admin set.
// The set is loaded once at startup and never changes at runtime.
type AuthService struct {
	admins map[int64]struct{}
}

// NewAuthService creates a new auth service from the configured admin ids
func NewAuthService(adminIDs []int64) *AuthService {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}
	return &AuthService{admins: admins}
}

// IsAdmin checks membership in the admin set
func (s *AuthService) IsAdmin(userID int64) bool {
	_, ok := s.admins[userID]
	return ok
}
