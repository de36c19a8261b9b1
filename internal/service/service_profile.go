package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartbreaksandvodka/project-plusminus/internal/app"
	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/store"
	"github.com/heartbreaksandvodka/project-plusminus/internal/validators"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// ProfilePictureField is the form field of an uploaded profile picture.
const ProfilePictureField = "profile_picture"

type profileService struct {
	userRepository store.UserRepository
	pictures       store.PictureStorage
	maxPictureSize int64
	logger         *logger.Logger
}

func NewProfileService(userRepository store.UserRepository, pictures store.PictureStorage, cfg config.S3, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		pictures:       pictures,
		maxPictureSize: cfg.MaxPictureSize,
		logger:         logger,
	}
}

func (p *profileService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}
	return user, nil
}

// UpdateProfile uploads the picture first so that a rejected picture leaves
// the profile untouched.
func (p *profileService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate, picture *models.ProfilePicture) (models.User, error) {
	log := logger.FromContext(ctx)

	var pictureURL *string
	if picture != nil {
		url, err := p.uploadPicture(ctx, userID, *picture)
		if err != nil {
			return models.User{}, err
		}
		pictureURL = &url
	}

	user, err := p.userRepository.UpdateProfile(ctx, userID, update, pictureURL)
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		return models.User{}, fmt.Errorf("%w: %w", err, validators.NewFieldError("username", app.MsgUsernameTaken))
	}
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return user, nil
}

func (p *profileService) uploadPicture(ctx context.Context, userID int64, picture models.ProfilePicture) (string, error) {
	if p.maxPictureSize > 0 && int64(len(picture.Data)) > p.maxPictureSize {
		return "", fmt.Errorf("%w: %w", ErrPictureTooLarge, validators.NewFieldError(ProfilePictureField, app.MsgPictureTooLarge))
	}
	if _, ok := store.PictureExtension(picture.ContentType); !ok {
		return "", fmt.Errorf("%w: %w", ErrUnsupportedPictureType, validators.NewFieldError(ProfilePictureField, app.MsgUnsupportedPictureType))
	}

	url, err := p.pictures.UploadProfilePicture(ctx, userID, picture)
	if errors.Is(err, store.ErrPictureStorageDisabled) {
		return "", fmt.Errorf("%w: %w", ErrPictureUploadDisabled, err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("picture upload failed")
		return "", fmt.Errorf("picture upload failed: %w", err)
	}
	return url, nil
}
