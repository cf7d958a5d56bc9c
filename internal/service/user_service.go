package service

import (
	"errors"
	"fmt"

	"github.com/hamzahq/turath/internal/dto"
	"github.com/hamzahq/turath/internal/model"
	"github.com/hamzahq/turath/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// UserService keeps local user records in sync with the external identity
// provider and resolves verified identities to internal user ids.
type UserService interface {
	SyncUser(externalID, email, username string) (*dto.UserDTO, error)
	GetByExternalID(externalID string) (*dto.UserDTO, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// SyncUser upserts the user record keyed by the external subject id: created
// on first sight, email/username refreshed afterwards. The upsert is a single
// atomic statement, so concurrent first syncs of the same identity converge
// on one record. A duplicate email owned by a different identity surfaces as
// ErrConflict.
func (s *userService) SyncUser(externalID, email, username string) (*dto.UserDTO, error) {
	if externalID == "" {
		return nil, fmt.Errorf("%w: external id is required", ErrInvalidInput)
	}

	log.Info().Str("externalID", externalID).Str("username", username).Msg("Syncing user")

	user := model.User{
		ExternalID: externalID,
		Username:   username,
	}
	if email != "" {
		user.Email = &email
	}

	if err := s.userRepo.Upsert(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Warn().Err(err).Str("externalID", externalID).Msg("SyncUser: uniqueness conflict")
			return nil, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return nil, fmt.Errorf("upserting user: %w", err)
	}

	// Re-read to pick up the authoritative record: on a conflicting insert
	// the generated id belongs to the discarded row, not the stored one.
	stored, err := s.userRepo.FindByExternalID(externalID)
	if err != nil {
		return nil, fmt.Errorf("reloading synced user: %w", err)
	}
	return toUserDTO(stored), nil
}

// GetByExternalID resolves a verified identity to its synced user record.
// Identities that never called sync get ErrUserNotFound.
func (s *userService) GetByExternalID(externalID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByExternalID(externalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: sync your profile first", ErrUserNotFound)
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	return toUserDTO(user), nil
}

func toUserDTO(user *model.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:         user.ID,
		ExternalID: user.ExternalID,
		Email:      user.Email,
		Username:   user.Username,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}
