package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/heartbreaksandvodka/project-plusminus/internal/app"
	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
	"github.com/heartbreaksandvodka/project-plusminus/internal/utils"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// maxMultipartMemory is the part of a multipart form kept in memory; the
// rest is spooled to temporary files.
const maxMultipartMemory = 8 << 20

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.ProfileService.GetProfile(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// updateProfile accepts a JSON partial update or a multipart form carrying
// the same fields plus an optional profile_picture file.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var (
		update  models.ProfileUpdate
		picture *models.ProfilePicture
	)
	if mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mediaType == "multipart/form-data" {
		if r.ContentLength > h.maxUploadSize {
			writeError(w, r, fmt.Errorf("%w: %d bytes declared", errRequestTooLarge, r.ContentLength))
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
		update, picture, err = parseProfileForm(r)
	} else {
		err = decodeJSON(r, &update)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.ProfileService.UpdateProfile(r.Context(), id, update, picture)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Message: app.MsgProfileUpdated, User: user}, http.StatusOK)
}

// parseProfileForm reads the multipart body. The caller limits r.Body, so
// every read here stops at the upload limit.
func parseProfileForm(r *http.Request) (models.ProfileUpdate, *models.ProfilePicture, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return models.ProfileUpdate{}, nil, formError(err)
	}

	value := func(key string) *string {
		if values, ok := r.MultipartForm.Value[key]; ok && len(values) > 0 {
			return &values[0]
		}
		return nil
	}
	update := models.ProfileUpdate{
		Username:    value("username"),
		FirstName:   value("first_name"),
		LastName:    value("last_name"),
		Bio:         value("bio"),
		PhoneNumber: value("phone_number"),
		DateOfBirth: value("date_of_birth"),
	}

	file, header, err := r.FormFile(service.ProfilePictureField)
	if err == http.ErrMissingFile {
		return update, nil, nil
	}
	if err != nil {
		return models.ProfileUpdate{}, nil, formError(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return models.ProfileUpdate{}, nil, formError(err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	return update, &models.ProfilePicture{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

func formError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: limit %d bytes", errRequestTooLarge, tooLarge.Limit)
	}
	return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
}
