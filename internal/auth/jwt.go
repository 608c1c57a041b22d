package auth

import (
	"errors"
	"time"

	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/config"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/constant"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/util"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type JWT struct {
	logger    *zap.SugaredLogger
	jwtSecret string
}

type JWTInterface interface {
	GenerateServiceToken(payload JWTPayload, ttl time.Duration) (*string, error)
	VerifyJwtToken(token string) (*JWTClaims, error)
}

func NewJwt(cfg config.AuthConfig, logger *zap.SugaredLogger) *JWT {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("development")
	}

	return &JWT{
		jwtSecret: cfg.JWT_SECRET,
		logger:    logger,
	}
}

// JWTPayload identifies the caller of the push endpoint. Tokens are minted
// for trusted services (the Pub/Sub push subscription, the nightly cron),
// not for people.
type JWTPayload struct {
	Service string `json:"service"`
	Type    string `json:"type"`
}

type JWTClaims struct {
	Service JWTPayload `json:"service"`
	IAT     int64      `json:"iat"`
	EXP     int64      `json:"exp"`
}

func (j JWT) GenerateServiceToken(payload JWTPayload, ttl time.Duration) (*string, error) {
	j.logger.Debugf("Generate service token with payload: %v", payload)

	if payload.Type == "" {
		payload.Type = constant.JWT_TYPE_ACCESS
	}

	claims := jwt.MapClaims{
		"service": payload,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &signed, nil
}

func (j JWT) VerifyJwtToken(token string) (*JWTClaims, error) {
	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(j.jwtSecret), nil
	})
	if err != nil {
		j.logger.Debugf("Failed to verify jwt token. Error: %v", err)
		return nil, err
	}

	if !parsedToken.Valid {
		j.logger.Debug("Jwt token is not valid")
		return nil, errors.New("jwt token is not valid")
	}

	service, ok := claims["service"].(map[string]interface{})
	if !ok {
		return nil, errors.New("invalid token: service field is missing or malformed")
	}

	name, _ := service["service"].(string)
	tokenType, _ := service["type"].(string)

	return &JWTClaims{
		Service: JWTPayload{
			Service: name,
			Type:    tokenType,
		},
		IAT: int64(claims["iat"].(float64)),
		EXP: int64(claims["exp"].(float64)),
	}, nil
}
