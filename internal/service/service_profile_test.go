package service

import (
	"context"
	"testing"

	"github.com/heartbreaksandvodka/project-plusminus/internal/app"
	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/mock"
	"github.com/heartbreaksandvodka/project-plusminus/internal/store"
	"github.com/heartbreaksandvodka/project-plusminus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProfileSvc(t *testing.T) (ProfileService, *mock.MockUserRepository, *mock.MockPictureStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	pictures := mock.NewMockPictureStorage(ctrl)
	return NewProfileService(users, pictures, config.S3{MaxPictureSize: 16}, logger.Nop()), users, pictures
}

func strPtr(s string) *string { return &s }

func TestProfileService_GetProfile(t *testing.T) {
	svc, users, _ := newTestProfileSvc(t)
	users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{ID: 1, Username: "ada"}, nil)

	user, err := svc.GetProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "ada", user.Username)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	svc, users, _ := newTestProfileSvc(t)
	users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetProfile(context.Background(), 1)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestProfileService_UpdateProfile_FieldsOnly(t *testing.T) {
	svc, users, _ := newTestProfileSvc(t)
	update := models.ProfileUpdate{Bio: strPtr("hello")}

	users.EXPECT().UpdateProfile(gomock.Any(), int64(1), update, (*string)(nil)).Return(models.User{ID: 1, Bio: "hello"}, nil)

	user, err := svc.UpdateProfile(context.Background(), 1, update, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", user.Bio)
}

func TestProfileService_UpdateProfile_WithPicture(t *testing.T) {
	svc, users, pictures := newTestProfileSvc(t)
	picture := &models.ProfilePicture{Filename: "me.png", ContentType: "image/png", Data: []byte("png")}
	const url = "http://cdn/profile_images/1/x.png"

	gomock.InOrder(
		pictures.EXPECT().UploadProfilePicture(gomock.Any(), int64(1), *picture).Return(url, nil),
		users.EXPECT().UpdateProfile(gomock.Any(), int64(1), models.ProfileUpdate{}, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, _ models.ProfileUpdate, got *string) (models.User, error) {
				require.NotNil(t, got)
				assert.Equal(t, url, *got)
				return models.User{ID: 1, ProfilePicture: *got}, nil
			}),
	)

	user, err := svc.UpdateProfile(context.Background(), 1, models.ProfileUpdate{}, picture)
	require.NoError(t, err)
	assert.Equal(t, url, user.ProfilePicture)
}

func TestProfileService_UpdateProfile_PictureRejected(t *testing.T) {
	tests := []struct {
		name    string
		picture models.ProfilePicture
		upload  error
		wantErr error
		wantMsg string
	}{
		{
			name:    "too large",
			picture: models.ProfilePicture{ContentType: "image/png", Data: make([]byte, 17)},
			wantErr: ErrPictureTooLarge,
			wantMsg: app.MsgPictureTooLarge,
		},
		{
			name:    "unsupported type",
			picture: models.ProfilePicture{ContentType: "image/gif", Data: []byte("gif")},
			wantErr: ErrUnsupportedPictureType,
			wantMsg: app.MsgUnsupportedPictureType,
		},
		{
			name:    "storage disabled",
			picture: models.ProfilePicture{ContentType: "image/jpeg", Data: []byte("jpg")},
			upload:  store.ErrPictureStorageDisabled,
			wantErr: ErrPictureUploadDisabled,
		},
		{
			name:    "upload failed",
			picture: models.ProfilePicture{ContentType: "image/jpeg", Data: []byte("jpg")},
			upload:  store.ErrUploadingObject,
			wantErr: store.ErrUploadingObject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, pictures := newTestProfileSvc(t)
			if tt.upload != nil {
				pictures.EXPECT().UploadProfilePicture(gomock.Any(), int64(1), gomock.Any()).Return("", tt.upload)
			}

			_, err := svc.UpdateProfile(context.Background(), 1, models.ProfileUpdate{}, &tt.picture)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				requireFieldError(t, err, ProfilePictureField, tt.wantMsg)
			}
		})
	}
}

func TestProfileService_UpdateProfile_UsernameTaken(t *testing.T) {
	svc, users, _ := newTestProfileSvc(t)
	users.EXPECT().UpdateProfile(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.UpdateProfile(context.Background(), 1, models.ProfileUpdate{Username: strPtr("taken")}, nil)
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
	requireFieldError(t, err, "username", app.MsgUsernameTaken)
}
