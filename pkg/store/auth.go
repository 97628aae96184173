package store

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"shopdata/pkg/domain"
)

// DemoPassword is the one secret accepted for every account. It exists for
// demos and tests only: there are no per-user credentials.
const DemoPassword = "password123"

var demoDigest = sync.OnceValues(func() ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
})

// Authenticate returns the first user with exactly this email when password
// is the demo secret. Unknown email and wrong secret are indistinguishable.
func (s *DataStore) Authenticate(email, password string) (domain.User, bool) {
	u, ok := s.UserByEmail(email)
	if !ok || !checkDemoPassword(password) {
		return domain.User{}, false
	}
	return u, true
}

func checkDemoPassword(candidate string) bool {
	digest, err := demoDigest()
	if err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword(digest, []byte(candidate)) == nil
}
