package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"civicconnect-api/internal/model"
)

var (
	ErrBadToken           = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Admin is the single fixed administrator account. The portal has exactly one
// principal; the password is hashed at startup and never kept in clear.
type Admin struct {
	user model.User
	hash string
}

// NewAdmin hashes the configured password and pins the nominal identity the
// session will carry.
func NewAdmin(username, password string) (*Admin, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &Admin{
		user: model.User{ID: "1", Username: username, Role: "admin"},
		hash: hash,
	}, nil
}

// Verify checks a submitted credential pair against the fixed account. The
// error never distinguishes which of the two fields was wrong.
func (a *Admin) Verify(username, password string) (model.User, error) {
	if username != a.user.Username || !CheckPassword(a.hash, password) {
		return model.User{}, ErrInvalidCredentials
	}
	return a.user, nil
}

func (a *Admin) User() model.User { return a.user }

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

type Claims struct {
	Username string `json:"sub_name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// session token bounds an abandoned login, roughly one office shift
const tokenTTL = 8 * time.Hour

func MakeToken(u model.User, secret string) (string, error) {
	c := Claims{
		Username: u.Username,
		Role:     u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

func ParseToken(raw, secret string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		// block alg confusion
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrBadToken
	}
	return c, nil
}
