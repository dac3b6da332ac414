package player

import (
	"context"

	"pixel_casino/internal/config"
	"pixel_casino/internal/model"
	"pixel_casino/internal/service"
	"pixel_casino/pkg/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type serv struct {
	wallet service.WalletService
	jwt    config.JWTConfig
	logger *zap.Logger
}

// NewPlayerService Выдача и проверка токенов игроков
func NewPlayerService(wallet service.WalletService, jwt config.JWTConfig, logger *zap.Logger) service.PlayerService {
	return &serv{wallet: wallet, jwt: jwt, logger: logger}
}

// Register Новый игрок со стартовым балансом
func (s *serv) Register(ctx context.Context) (*model.Player, error) {
	id := uuid.NewString()

	accessToken, err := token.GenerateAccessToken(id, s.jwt.AccessTokenSecretKey(), s.jwt.AccessTokenDuration())
	if err != nil {
		s.logger.Error("failed to generate access token", zap.Error(err))
		return nil, err
	}

	// Сохраняем стартовый баланс, чтобы игрок появился в хранилище
	if _, err := s.wallet.Reset(ctx, id); err != nil {
		return nil, err
	}

	return &model.Player{ID: id, AccessToken: accessToken}, nil
}

func (s *serv) Verify(accessToken string) (string, error) {
	claims, err := token.VerifyToken(accessToken, s.jwt.AccessTokenSecretKey())
	if err != nil {
		return "", service.ErrInvalidToken
	}
	return claims.Subject, nil
}
