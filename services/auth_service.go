package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/league-backend/models"
	"github.com/Dosada05/league-backend/repositories"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.Player, error)
	Login(ctx context.Context, input LoginInput) (*models.Player, error)
	GetPlayerByID(ctx context.Context, id int) (*models.Player, error)
}

type RegisterInput struct {
	Username    string `json:"username"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authService struct {
	playerRepo repositories.PlayerRepository
}

func NewAuthService(playerRepo repositories.PlayerRepository) AuthService {
	return &authService{
		playerRepo: playerRepo,
	}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.Player, error) {
	if input.Username == "" || input.PhoneNumber == "" || input.Password == "" {
		return nil, ErrRegistrationFieldsRequired
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("ошибка хеширования пароля: %w", err)
	}

	player := &models.Player{
		Username:     input.Username,
		PhoneNumber:  &input.PhoneNumber,
		PasswordHash: string(hashedPassword),
		IsActive:     true,
	}

	// Гонку двух одновременных регистраций закрывает уникальный
	// constraint в БД, поэтому конфликт ловим на записи, а не пред-проверкой.
	if err := s.playerRepo.Create(ctx, player); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPlayerUsernameConflict):
			return nil, ErrUsernameTaken
		case errors.Is(err, repositories.ErrPlayerPhoneConflict):
			return nil, ErrPhoneNumberTaken
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return player, nil
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*models.Player, error) {
	if input.Username == "" || input.Password == "" {
		return nil, ErrLoginFieldsRequired
	}

	player, err := s.playerRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			// Не раскрываем, существует ли такой никнейм
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find player by username: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(player.PasswordHash), []byte(input.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password hash: %w", err)
	}

	player.PasswordHash = ""

	return player, nil
}

func (s *authService) GetPlayerByID(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	player.PasswordHash = ""
	return player, nil
}
