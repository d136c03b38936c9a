package services

import (
	"contentcraft_backend/internal/auth"
	"contentcraft_backend/internal/models"
	"contentcraft_backend/internal/repositories"
	"contentcraft_backend/internal/services/dto"
	"contentcraft_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(db *gorm.DB, token string) error
	Refresh(db *gorm.DB, userID string) (*dto.AuthResponse, error)
	Authenticate(db *gorm.DB, token string) (*models.User, error)
	GetProfile(db *gorm.DB, userID string) (*dto.UserDTO, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserDTO, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	sessionRepo   repositories.SessionRepository
	workspaceRepo repositories.WorkspaceRepository
	tokens        *auth.TokenManager
}

func NewAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	workspaceRepo repositories.WorkspaceRepository,
	tokens *auth.TokenManager,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		workspaceRepo: workspaceRepo,
		tokens:        tokens,
	}
}

// Register - регистрация нового пользователя.
// Пользователь, его стартовое пространство и сессия создаются
// в одной транзакции: либо все, либо ничего.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:              req.Email,
		PasswordHash:       hash,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		SubscriptionPlan:   models.PlanFree,
		SubscriptionStatus: models.SubscriptionStatusActive,
	}

	var resp *dto.AuthResponse
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			if err == repositories.ErrUserAlreadyExists {
				return apperrors.ErrEmailAlreadyExists
			}
			return apperrors.InternalError(err)
		}

		workspace := &models.Workspace{
			Name:     "Personal",
			OwnerID:  user.ID,
			PlanType: models.WorkspacePlanPersonal,
		}
		if err := s.workspaceRepo.Create(tx, workspace); err != nil {
			return apperrors.InternalError(err)
		}

		authResp, err := s.issueSession(tx, user)
		if err != nil {
			return err
		}
		resp = authResp
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Login - аутентификация по email и паролю.
// Несуществующий email и неверный пароль дают один и тот же ответ,
// чтобы не раскрывать, какие адреса зарегистрированы.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueSession(db, user)
}

// Logout удаляет сессию токена. Идемпотентен: повторный выход
// с тем же токеном не является ошибкой.
func (s *AuthServiceImpl) Logout(db *gorm.DB, token string) error {
	if err := s.sessionRepo.DeleteByTokenHash(db, auth.HashToken(token)); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Refresh отзывает все сессии пользователя и выпускает одну новую.
// После refresh действителен ровно один токен.
func (s *AuthServiceImpl) Refresh(db *gorm.DB, userID string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, apperrors.InternalError(err)
	}

	var resp *dto.AuthResponse
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.sessionRepo.DeleteByUserID(tx, user.ID); err != nil {
			return apperrors.InternalError(err)
		}
		authResp, err := s.issueSession(tx, user)
		if err != nil {
			return err
		}
		resp = authResp
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Authenticate проверяет токен полностью: подпись и срок JWT,
// наличие неистекшей сессии, существование пользователя.
func (s *AuthServiceImpl) Authenticate(db *gorm.DB, token string) (*models.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		if err == auth.ErrExpiredToken {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	session, err := s.sessionRepo.FindByTokenHash(db, auth.HashToken(token))
	if err != nil {
		if err == repositories.ErrSessionNotFound {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	// Сессия обязана принадлежать тому же пользователю, что и claims
	if session.UserID != claims.UserID {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, session.UserID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	return user, nil
}

func (s *AuthServiceImpl) GetProfile(db *gorm.DB, userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	profile := dto.NewUserDTO(user)
	return &profile, nil
}

func (s *AuthServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	profile := dto.NewUserDTO(user)
	return &profile, nil
}

// issueSession выпускает токен и записывает сессию с хешем токена
func (s *AuthServiceImpl) issueSession(db *gorm.DB, user *models.User) (*dto.AuthResponse, error) {
	token, expiresAt, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	session := &models.Session{
		UserID:    user.ID,
		TokenHash: auth.HashToken(token),
		ExpiresAt: expiresAt,
	}
	if err := s.sessionRepo.Create(db, session); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.NewUserDTO(user),
	}, nil
}
