package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// QuizSessionClaims bind an issued question sample to one user and one
// session. Submissions are graded server-side against exactly this set, so a
// client cannot replay answers for questions it was never asked.
type QuizSessionClaims struct {
	UserID      uint   `json:"uid"`
	SessionID   string `json:"sid"`
	QuestionIDs []uint `json:"qids"`
	jwt.RegisteredClaims
}

// GenerateQuizSessionToken issues a short-lived signed session token for a
// question sample.
func GenerateQuizSessionToken(userID uint, sessionID string, questionIDs []uint, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &QuizSessionClaims{
		UserID:      userID,
		SessionID:   sessionID,
		QuestionIDs: questionIDs,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseQuizSessionToken validates a quiz session token.
func ParseQuizSessionToken(tokenStr string) (*QuizSessionClaims, error) {
	claims := &QuizSessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
