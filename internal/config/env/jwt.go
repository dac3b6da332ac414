package env

import (
	"os"
	"time"

	"pixel_casino/internal/config"

	"github.com/pkg/errors"
)

const (
	accessTokenKeyEnvName      = "ACCESS_TOKEN"
	accessTokenDurationEnvName = "ACCESS_TOKEN_DURATION"
)

type jwtConfig struct {
	accessTokenSecretKey string
	accessTokenDuration  time.Duration
}

func NewJWTConfig() (config.JWTConfig, error) {
	accessToken := os.Getenv(accessTokenKeyEnvName)
	if len(accessToken) == 0 {
		return nil, errors.New("access token secret key not found")
	}

	accessTokenDuration := os.Getenv(accessTokenDurationEnvName)
	if len(accessTokenDuration) == 0 {
		return nil, errors.New("access token duration not found")
	}

	accessTokenDurationParsed, err := time.ParseDuration(accessTokenDuration)
	if err != nil {
		return nil, errors.Wrap(err, "invalid access token duration")
	}

	return &jwtConfig{
		accessTokenSecretKey: accessToken,
		accessTokenDuration:  accessTokenDurationParsed,
	}, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.accessTokenSecretKey)
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.accessTokenDuration
}
