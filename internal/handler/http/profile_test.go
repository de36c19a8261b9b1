package http

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/heartbreaksandvodka/project-plusminus/internal/app"
	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
	"github.com/heartbreaksandvodka/project-plusminus/internal/store"
	"github.com/heartbreaksandvodka/project-plusminus/internal/validators"
	"github.com/heartbreaksandvodka/project-plusminus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testUser = models.User{
	ID:        testUserID,
	Email:     "ada@example.com",
	Username:  "ada",
	FirstName: "Ada",
	LastName:  "Lovelace",
}

// ─────────────────────────────────────────────
// getProfile
// ─────────────────────────────────────────────

func TestGetProfile_ReturnsUser(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.expectAuthorized()
	deps.profile.EXPECT().GetProfile(gomock.Any(), testUserID).Return(testUser, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/profile/", nil, testToken)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.User](t, rec)
	assert.Equal(t, testUser.Email, got.Email)
	assert.Equal(t, testUser.Username, got.Username)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestGetProfile_UserGone(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.expectAuthorized()
	deps.profile.EXPECT().GetProfile(gomock.Any(), testUserID).
		Return(models.User{}, fmt.Errorf("user lookup failed: %w", store.ErrNoUserWasFound))

	rec := doRequest(t, h, http.MethodGet, "/api/profile/", nil, testToken)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.ErrorTypeNotFound, decodeBody[models.ErrorBody](t, rec).ErrorType)
}

// ─────────────────────────────────────────────
// updateProfile: JSON
// ─────────────────────────────────────────────

func TestUpdateProfile_JSON(t *testing.T) {
	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			h, deps := newTestHandler(t)
			deps.expectAuthorized()

			bio := "Mathematician"
			updated := testUser
			updated.Bio = bio
			deps.profile.EXPECT().
				UpdateProfile(gomock.Any(), testUserID, models.ProfileUpdate{Bio: &bio}, (*models.ProfilePicture)(nil)).
				Return(updated, nil)

			rec := doRequest(t, h, method, "/api/update-profile/", map[string]string{"bio": bio}, testToken)

			require.Equal(t, http.StatusOK, rec.Code)
			got := decodeBody[models.ProfileResponse](t, rec)
			assert.Equal(t, app.MsgProfileUpdated, got.Message)
			assert.Equal(t, bio, got.User.Bio)
		})
	}
}

func TestUpdateProfile_ValidationError(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.expectAuthorized()
	deps.profile.EXPECT().UpdateProfile(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).
		Return(models.User{}, validators.NewFieldError("date_of_birth", "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."))

	rec := doRequest(t, h, http.MethodPut, "/api/update-profile/", map[string]string{"date_of_birth": "yesterday"}, testToken)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[models.ErrorBody](t, rec).Fields, "date_of_birth")
}

// ─────────────────────────────────────────────
// updateProfile: multipart
// ─────────────────────────────────────────────

// pngHeader is enough for http.DetectContentType to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type multipartFile struct {
	filename    string
	contentType string
	data        []byte
}

func newMultipartRequest(t *testing.T, fields map[string]string, file *multipartFile) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, service.ProfilePictureField, file.filename))
		if file.contentType != "" {
			hdr.Set("Content-Type", file.contentType)
		}
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPut, "/api/update-profile/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func TestUpdateProfile_MultipartWithPicture(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.expectAuthorized()

	first := "Augusta"
	deps.profile.EXPECT().
		UpdateProfile(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ int64, update models.ProfileUpdate, picture *models.ProfilePicture) (models.User, error) {
			require.NotNil(t, update.FirstName)
			assert.Equal(t, first, *update.FirstName)
			assert.Nil(t, update.Bio)

			require.NotNil(t, picture)
			assert.Equal(t, "me.png", picture.Filename)
			assert.Equal(t, "image/png", picture.ContentType)
			assert.Equal(t, pngHeader, picture.Data)

			u := testUser
			u.FirstName = first
			u.ProfilePicture = "http://localhost:9000/pictures/7/me.png"
			return u, nil
		})

	req := newMultipartRequest(t, map[string]string{"first_name": first}, &multipartFile{
		filename:    "me.png",
		contentType: "image/png",
		data:        pngHeader,
	})
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.ProfileResponse](t, rec)
	assert.Equal(t, first, got.User.FirstName)
	assert.NotEmpty(t, got.User.ProfilePicture)
}

func TestUpdateProfile_MultipartSniffsContentType(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.expectAuthorized()
	deps.profile.EXPECT().
		UpdateProfile(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ int64, _ models.ProfileUpdate, picture *models.ProfilePicture) (models.User, error) {
			require.NotNil(t, picture)
			assert.Equal(t, "image/png", picture.ContentType)
			return testUser, nil
		})

	req := newMultipartRequest(t, nil, &multipartFile{
		filename:    "me",
		contentType: "application/octet-stream",
		data:        pngHeader,
	})
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateProfile_MultipartFieldsOnly(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.expectAuthorized()

	phone := "+44 20 7946 0958"
	deps.profile.EXPECT().
		UpdateProfile(gomock.Any(), testUserID, models.ProfileUpdate{PhoneNumber: &phone}, (*models.ProfilePicture)(nil)).
		Return(testUser, nil)

	req := newMultipartRequest(t, map[string]string{"phone_number": phone}, nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateProfile_PictureErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantField string
		wantMsg   string
	}{
		{
			name:      "storage disabled",
			err:       service.ErrPictureUploadDisabled,
			wantField: service.ProfilePictureField,
			wantMsg:   app.MsgPictureUploadDisabled,
		},
		{
			name:      "unsupported type",
			err:       fmt.Errorf("%w: %w", service.ErrUnsupportedPictureType, validators.NewFieldError(service.ProfilePictureField, app.MsgUnsupportedPictureType)),
			wantField: service.ProfilePictureField,
			wantMsg:   app.MsgUnsupportedPictureType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t)
			deps.expectAuthorized()
			deps.profile.EXPECT().UpdateProfile(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).Return(models.User{}, tt.err)

			req := newMultipartRequest(t, nil, &multipartFile{filename: "a.gif", contentType: "image/gif", data: []byte("GIF89a")})
			rec := httptest.NewRecorder()
			h.Init().ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, []string{tt.wantMsg}, decodeBody[models.ErrorBody](t, rec).Fields[tt.wantField])
		})
	}
}

func TestUpdateProfile_UploadFailureIs500(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.expectAuthorized()
	deps.profile.EXPECT().UpdateProfile(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).
		Return(models.User{}, errors.New("minio: connection refused"))

	req := newMultipartRequest(t, nil, &multipartFile{filename: "me.png", contentType: "image/png", data: pngHeader})
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUpdateProfile_BrokenMultipart(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.expectAuthorized()

	req := httptest.NewRequest(http.MethodPut, "/api/update-profile/", bytes.NewReader([]byte("not a form")))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.ErrorTypeInvalidData, decodeBody[models.ErrorBody](t, rec).ErrorType)
}

func TestUpdateProfile_OversizedUpload(t *testing.T) {
	tests := []struct {
		name    string
		chunked bool
	}{
		{name: "declared length over limit"},
		{name: "streamed body over limit", chunked: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t)
			h.maxUploadSize = 1024
			deps.expectAuthorized()
			// UpdateProfile must not be reached.

			req := newMultipartRequest(t, map[string]string{"first_name": "Ada"}, &multipartFile{
				filename:    "big.png",
				contentType: "image/png",
				data:        append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 4096)...),
			})
			if tt.chunked {
				req.ContentLength = -1
			}
			rec := httptest.NewRecorder()
			h.Init().ServeHTTP(rec, req)

			require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
			body := decodeBody[models.ErrorBody](t, rec)
			assert.Equal(t, app.ErrorTypeTooLarge, body.ErrorType)
			assert.Equal(t, []string{app.MsgPictureTooLarge}, body.Fields[service.ProfilePictureField])
		})
	}
}

func TestUpdateProfile_UploadWithinLimit(t *testing.T) {
	h, deps := newTestHandler(t)
	h.maxUploadSize = 1024
	deps.expectAuthorized()
	deps.profile.EXPECT().UpdateProfile(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).Return(testUser, nil)

	req := newMultipartRequest(t, nil, &multipartFile{filename: "me.png", contentType: "image/png", data: pngHeader})
	req.ContentLength = -1
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
