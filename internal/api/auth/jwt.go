package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/leirbagxis/FrameTrain/pkg/config"
)

const tokenTTL = 12 * time.Hour

type CustomClaims struct {
	FrameID string `json:"frameId"`
	OwnerID string `json:"ownerId"`
	jwt.RegisteredClaims
}

func secretKey() []byte {
	return []byte(config.SecretKey)
}

func GenerateTokenJWT(frameID, ownerID string) (string, error) {
	claims := CustomClaims{
		FrameID: frameID,
		OwnerID: ownerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

func ValidateTokenJWT(tokenStr string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("token invalido")
}
