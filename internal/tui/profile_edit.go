package tui

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/heartbreaksandvodka/project-plusminus/internal/app"
	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

const msgProfileUpdateFailed = "Could not update the profile. Please try again."

const (
	editUsername = iota
	editFirstName
	editLastName
	editBio
	editPhone
	editDateOfBirth
	editPicture
)

// EditProfileModel edits the profile. Only fields that differ from the
// loaded profile are sent. A picture path, when given, is uploaded after
// the field update.
type EditProfileModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	original   models.User
	form       form
	submitting bool
	errMsg     string
}

func NewEditProfileModel(ctx context.Context, auth service.ClientAuthService) *EditProfileModel {
	return &EditProfileModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(
			fieldSpec{label: "Username", placeholder: "username", charLimit: 150},
			fieldSpec{label: "First name", placeholder: "first name", charLimit: 150},
			fieldSpec{label: "Last name", placeholder: "last name", charLimit: 150},
			fieldSpec{label: "Bio", placeholder: "bio", charLimit: 500},
			fieldSpec{label: "Phone", placeholder: "phone number", charLimit: 20},
			fieldSpec{label: "Date of birth", placeholder: "YYYY-MM-DD", charLimit: 10},
			fieldSpec{label: "Picture file", placeholder: "path to JPEG, PNG or WebP"},
		),
	}
}

func (m *EditProfileModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *EditProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.load(msg.user)
		return m, nil

	case profileSavedMsg:
		m.submitting = false
		if isSessionTerminated(msg.err) {
			return m, sessionExpired
		}
		if msg.err != nil {
			m.errMsg = formError(msg.err, msgProfileUpdateFailed)
			return m, nil
		}
		m.errMsg = ""
		return m, func() tea.Msg {
			return NavigateTo{Page: pageProfile, Payload: Notice{Text: app.MsgProfileUpdated}}
		}

	case tea.KeyMsg:
		if m.form.handleKey(msg) {
			return m, nil
		}

		switch msg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, navigate(pageProfile)
		case "enter":
			if m.submitting {
				return m, nil
			}

			update := m.changes()
			picturePath := m.form.trimmed(editPicture)
			if update.IsEmpty() && picturePath == "" {
				m.errMsg = "Nothing to update."
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSave(update, picturePath)
		}
	}

	return m, m.form.update(msg)
}

func (m *EditProfileModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString(submitButton("Save", m.submitting))
	writeStatus(&b, "", m.errMsg)

	return renderPage("EDIT PROFILE", strings.TrimRight(b.String(), "\n"), formHotKeys)
}

func (m *EditProfileModel) load(user models.User) {
	m.original = user
	m.form.reset()
	m.form.set(editUsername, user.Username)
	m.form.set(editFirstName, user.FirstName)
	m.form.set(editLastName, user.LastName)
	m.form.set(editBio, user.Bio)
	m.form.set(editPhone, user.PhoneNumber)
	m.form.set(editDateOfBirth, user.DateOfBirth)
	m.errMsg = ""
}

// changes returns the fields whose value differs from the loaded profile.
func (m *EditProfileModel) changes() models.ProfileUpdate {
	changed := func(i int, old string) *string {
		v := m.form.trimmed(i)
		if v == old {
			return nil
		}
		return &v
	}

	return models.ProfileUpdate{
		Username:    changed(editUsername, m.original.Username),
		FirstName:   changed(editFirstName, m.original.FirstName),
		LastName:    changed(editLastName, m.original.LastName),
		Bio:         changed(editBio, m.original.Bio),
		PhoneNumber: changed(editPhone, m.original.PhoneNumber),
		DateOfBirth: changed(editDateOfBirth, m.original.DateOfBirth),
	}
}

func (m *EditProfileModel) cmdSave(update models.ProfileUpdate, picturePath string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		var (
			user models.User
			err  error
		)
		if !update.IsEmpty() {
			if user, err = auth.UpdateProfile(ctx, update); err != nil {
				return profileSavedMsg{err: err}
			}
		}

		if picturePath != "" {
			picture, err := readPicture(picturePath)
			if err != nil {
				return profileSavedMsg{err: err}
			}
			if user, err = auth.UploadProfilePicture(ctx, picture); err != nil {
				return profileSavedMsg{err: err}
			}
		}

		return profileSavedMsg{user: user}
	}
}

// readPicture loads an image file into memory so the upload can be
// replayed after a token refresh.
func readPicture(path string) (models.ProfilePicture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ProfilePicture{}, fmt.Errorf("cannot read picture: %w", err)
	}

	return models.ProfilePicture{
		Filename:    filepath.Base(path),
		ContentType: http.DetectContentType(data),
		Data:        data,
	}, nil
}
