package service

import (
	"context"
	"fmt"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/internal/app"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/store"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

type dashboardService struct {
	userRepository store.UserRepository
	now            func() time.Time
	logger         *logger.Logger
}

func NewDashboardService(userRepository store.UserRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{userRepository: userRepository, now: time.Now, logger: logger}
}

// GetDashboard summarizes the account. Recent activity and notifications
// are fixed placeholder entries until an activity log exists.
func (d *dashboardService) GetDashboard(ctx context.Context, userID int64) (models.Dashboard, error) {
	user, err := d.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("dashboard user lookup failed: %w", err)
	}

	now := d.now()
	return models.Dashboard{
		Message: fmt.Sprintf(app.MsgWelcomeBackFormat, user.FirstName),
		User:    user,
		Stats: models.DashboardStats{
			AccountAgeDays:      accountAgeDays(user.DateJoined, now),
			ProfileCompleteness: profileCompleteness(user),
			TotalLogins:         user.LoginCount,
			LastLogin:           user.LastLogin,
		},
		RecentActivity: []models.Activity{
			{Action: "Profile updated", Timestamp: now.Add(-2 * time.Hour), Description: "Updated profile information"},
			{Action: "Password changed", Timestamp: now.Add(-24 * time.Hour), Description: "Changed account password"},
			{Action: "Login", Timestamp: now.Add(-time.Hour), Description: "Logged into account"},
		},
		Notifications: []models.Notification{
			{Type: models.NotificationInfo, Message: app.MsgNotificationWelcome, Timestamp: now},
			{Type: models.NotificationWarning, Message: app.MsgNotificationCompleteProfile, Timestamp: now.Add(-30 * time.Minute)},
		},
	}, nil
}

func accountAgeDays(joined, now time.Time) int {
	if joined.IsZero() || now.Before(joined) {
		return 0
	}
	return int(now.Sub(joined) / (24 * time.Hour))
}

// profileCompleteness is the share of filled optional fields, in percent,
// rounded down.
func profileCompleteness(u models.User) int {
	fields := []string{u.FirstName, u.LastName, u.Bio, u.PhoneNumber, u.DateOfBirth}
	filled := 0
	for _, f := range fields {
		if f != "" {
			filled++
		}
	}
	return filled * 100 / len(fields)
}
