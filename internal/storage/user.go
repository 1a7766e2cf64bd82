package storage

import (
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"github.com/gamepulse/gamepulse-api/internal/performance"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// User is a registered account with its recorded PC
type User struct {
	ID           string            `json:"id"`
	Username     string            `json:"username"`
	Email        string            `json:"email"`
	PasswordHash string            `json:"-"`
	PCSpecs      performance.Specs `json:"pcSpecs"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// HashPassword hashes a plain-text password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

const (
	upperChars    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	symbolChars   = "!@#$%^&*"
	passwordChars = upperChars + "abcdefghijklmnopqrstuvwxyz0123456789" + symbolChars

	// TemporaryPasswordLength is the length of generated passwords
	TemporaryPasswordLength = 8
)

// GenerateTemporaryPassword returns a random password with at least one
// uppercase letter and one symbol
func GenerateTemporaryPassword() (string, error) {
	buf := make([]byte, 0, TemporaryPasswordLength)

	for _, set := range []string{upperChars, symbolChars} {
		c, err := randomChar(set)
		if err != nil {
			return "", err
		}
		buf = append(buf, c)
	}
	for len(buf) < TemporaryPasswordLength {
		c, err := randomChar(passwordChars)
		if err != nil {
			return "", err
		}
		buf = append(buf, c)
	}

	// Fisher-Yates
	for i := len(buf) - 1; i > 0; i-- {
		j, err := randomInt(i + 1)
		if err != nil {
			return "", err
		}
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf), nil
}

func randomChar(set string) (byte, error) {
	i, err := randomInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func randomInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
