package services

import (
	"sync"
	"testing"

	"contentcraft_backend/internal/models"
	"contentcraft_backend/internal/services/dto"
	"contentcraft_backend/pkg/apperrors"

	"github.com/stretchr/testify/require"
)

func TestUsageService_FreshUserCheckLimit(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	user := registerTestUser(t, db, sc, "usage-fresh@example.com")

	check, err := sc.UsageService.CheckLimit(db, user.User.ID, models.ResourceWords, 1)
	require.NoError(t, err)
	require.True(t, check.Allowed)
	require.Equal(t, 0, check.Used)
	require.Equal(t, 10000, check.Limit)
	require.Equal(t, 10000, check.Remaining)
}

func TestUsageService_LogAndCurrentUsage(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	user := registerTestUser(t, db, sc, "usage-log@example.com")

	require.NoError(t, sc.UsageService.LogUsage(db, user.User.ID, &dto.LogUsageRequest{
		ResourceType: "words", Amount: 1200,
	}))
	require.NoError(t, sc.UsageService.LogUsage(db, user.User.ID, &dto.LogUsageRequest{
		ResourceType: "images", Amount: 3,
	}))

	usage, err := sc.UsageService.CurrentUsage(db, user.User.ID)
	require.NoError(t, err)
	require.Equal(t, models.PlanFree, usage.Plan)
	require.Equal(t, 1200, usage.Resources[models.ResourceWords].Used)
	require.Equal(t, 8800, usage.Resources[models.ResourceWords].Remaining)
	require.Equal(t, 3, usage.Resources[models.ResourceImages].Used)
	require.Equal(t, 0, usage.Resources[models.ResourceVideoMinutes].Used)
}

func TestUsageService_InvalidResourceRejected(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	user := registerTestUser(t, db, sc, "usage-bad@example.com")

	err := sc.UsageService.LogUsage(db, user.User.ID, &dto.LogUsageRequest{
		ResourceType: "gpu_hours", Amount: 1,
	})
	require.ErrorIs(t, err, apperrors.ErrInvalidResourceType)

	err = sc.UsageService.LogUsage(db, user.User.ID, &dto.LogUsageRequest{
		ResourceType: "words", Amount: -5,
	})
	require.Error(t, err)
}

func TestUsageService_ConcurrentLogUsageSums(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	user := registerTestUser(t, db, sc, "usage-conc@example.com")

	// 10 конкурентных записей по 15 слов: итог ровно 150,
	// ни одно обновление не теряется
	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = sc.UsageService.LogUsage(db, user.User.ID, &dto.LogUsageRequest{
				ResourceType: "words", Amount: 15,
			})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	check, err := sc.UsageService.CheckLimit(db, user.User.ID, models.ResourceWords, 1)
	require.NoError(t, err)
	require.Equal(t, 150, check.Used)
}

func TestUsageService_CheckLimitAtBoundary(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	user := registerTestUser(t, db, sc, "usage-edge@example.com")

	require.NoError(t, sc.UsageService.LogUsage(db, user.User.ID, &dto.LogUsageRequest{
		ResourceType: "images", Amount: 49,
	}))

	// ровно до лимита - можно
	check, err := sc.UsageService.CheckLimit(db, user.User.ID, models.ResourceImages, 1)
	require.NoError(t, err)
	require.True(t, check.Allowed)
	require.Equal(t, 1, check.Remaining)

	// сверх лимита - нельзя
	check, err = sc.UsageService.CheckLimit(db, user.User.ID, models.ResourceImages, 2)
	require.NoError(t, err)
	require.False(t, check.Allowed)
}

func TestUsageService_RemainingClampedAtZero(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	user := registerTestUser(t, db, sc, "usage-over@example.com")

	// Журнал может уйти за лимит (запись не проверяет квоту),
	// но remaining никогда не отрицательный
	require.NoError(t, sc.UsageService.LogUsage(db, user.User.ID, &dto.LogUsageRequest{
		ResourceType: "video_minutes", Amount: 25,
	}))

	check, err := sc.UsageService.CheckLimit(db, user.User.ID, models.ResourceVideoMinutes, 1)
	require.NoError(t, err)
	require.False(t, check.Allowed)
	require.Equal(t, 25, check.Used)
	require.Equal(t, 10, check.Limit)
	require.Equal(t, 0, check.Remaining)
}

func TestUsageService_History(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	user := registerTestUser(t, db, sc, "usage-hist@example.com")

	require.NoError(t, sc.UsageService.LogUsage(db, user.User.ID, &dto.LogUsageRequest{
		ResourceType: "words", Amount: 100,
	}))
	require.NoError(t, sc.UsageService.LogUsage(db, user.User.ID, &dto.LogUsageRequest{
		ResourceType: "words", Amount: 50,
	}))

	history, err := sc.UsageService.History(db, user.User.ID, "7d")
	require.NoError(t, err)
	require.Equal(t, "7d", history.Period)
	require.Len(t, history.Points, 1)
	require.Equal(t, 150, history.Points[0].Usage[models.ResourceWords])

	_, err = sc.UsageService.History(db, user.User.ID, "90d")
	require.Error(t, err)
}

func TestUsageService_Analytics(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	user := registerTestUser(t, db, sc, "usage-an@example.com")
	wsID := personalWorkspaceID(t, db, sc, user.User.ID)

	_, err := sc.ProjectService.Create(db, user.User.ID, &dto.CreateProjectRequest{
		WorkspaceID: wsID, Title: "A", ContentType: "article", Content: "one two",
	})
	require.NoError(t, err)
	_, err = sc.ProjectService.Create(db, user.User.ID, &dto.CreateProjectRequest{
		WorkspaceID: wsID, Title: "B", ContentType: "article", Content: "three",
	})
	require.NoError(t, err)
	_, err = sc.ProjectService.Create(db, user.User.ID, &dto.CreateProjectRequest{
		WorkspaceID: wsID, Title: "C", ContentType: "email", Content: "four five six",
	})
	require.NoError(t, err)

	analytics, err := sc.UsageService.Analytics(db, user.User.ID)
	require.NoError(t, err)
	require.Equal(t, 3, analytics.TotalProjects)
	require.Equal(t, 6, analytics.TotalWords)
	require.Len(t, analytics.Breakdown, 2)

	// Разбивка отсортирована по типу контента
	require.Equal(t, models.ContentTypeArticle, analytics.Breakdown[0].ContentType)
	require.Equal(t, 2, analytics.Breakdown[0].Projects)
	require.Equal(t, 3, analytics.Breakdown[0].Words)
	require.Equal(t, models.ContentTypeEmail, analytics.Breakdown[1].ContentType)
	require.Equal(t, 1, analytics.Breakdown[1].Projects)
}
