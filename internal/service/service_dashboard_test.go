package service

import (
	"context"
	"testing"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/mock"
	"github.com/heartbreaksandvodka/project-plusminus/internal/store"
	"github.com/heartbreaksandvodka/project-plusminus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProfileCompleteness(t *testing.T) {
	tests := []struct {
		name string
		user models.User
		want int
	}{
		{name: "empty", want: 0},
		{name: "names only", user: models.User{FirstName: "Ada", LastName: "Lovelace"}, want: 40},
		{name: "three of five", user: models.User{FirstName: "Ada", Bio: "x", PhoneNumber: "1"}, want: 60},
		{name: "complete", user: models.User{FirstName: "Ada", LastName: "L", Bio: "x", PhoneNumber: "1", DateOfBirth: "1815-12-10"}, want: 100},
		{name: "username and email do not count", user: models.User{Username: "ada", Email: "a@b.c"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, profileCompleteness(tt.user))
		})
	}
}

func TestAccountAgeDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 9, accountAgeDays(now.AddDate(0, 0, -9).Add(-time.Hour), now))
	assert.Equal(t, 0, accountAgeDays(now.Add(-23*time.Hour), now))
	assert.Equal(t, 0, accountAgeDays(time.Time{}, now))
	assert.Equal(t, 0, accountAgeDays(now.Add(time.Hour), now))
}

func TestDashboardService_GetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewDashboardService(users, logger.Nop()).(*dashboardService)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	lastLogin := now.Add(-time.Hour)
	users.EXPECT().FindUserByID(gomock.Any(), int64(2)).Return(models.User{
		ID:         2,
		FirstName:  "Ada",
		LastName:   "Lovelace",
		DateJoined: now.AddDate(0, 0, -30),
		LastLogin:  &lastLogin,
		LoginCount: 12,
	}, nil)

	d, err := svc.GetDashboard(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Welcome back, Ada!", d.Message)
	assert.Equal(t, models.DashboardStats{
		AccountAgeDays:      30,
		ProfileCompleteness: 40,
		TotalLogins:         12,
		LastLogin:           &lastLogin,
	}, d.Stats)
	assert.Len(t, d.RecentActivity, 3)
	require.Len(t, d.Notifications, 2)
	assert.Equal(t, models.NotificationInfo, d.Notifications[0].Type)
	assert.Equal(t, models.NotificationWarning, d.Notifications[1].Type)
}

func TestDashboardService_GetDashboard_UserMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	users.EXPECT().FindUserByID(gomock.Any(), int64(2)).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := NewDashboardService(users, logger.Nop()).GetDashboard(context.Background(), 2)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}
