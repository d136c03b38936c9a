package services

import (
	"fmt"
	"testing"

	"contentcraft_backend/internal/services/dto"
	"contentcraft_backend/pkg/apperrors"

	"github.com/stretchr/testify/require"
)

func TestWorkspaceService_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	user := registerTestUser(t, db, sc, "ws@example.com")

	created, err := sc.WorkspaceService.Create(db, user.User.ID, &dto.CreateWorkspaceRequest{
		Name: "Marketing",
	})
	require.NoError(t, err)
	require.Equal(t, "Marketing", created.Name)
	require.EqualValues(t, 0, created.ProjectCount)

	workspaces, err := sc.WorkspaceService.List(db, user.User.ID)
	require.NoError(t, err)
	require.Len(t, workspaces, 2) // Personal + Marketing
}

func TestWorkspaceService_DuplicateNameConflict(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	user := registerTestUser(t, db, sc, "ws-dup@example.com")

	// Имя сравнивается без учета регистра
	_, err := sc.WorkspaceService.Create(db, user.User.ID, &dto.CreateWorkspaceRequest{Name: "personal"})
	require.ErrorIs(t, err, apperrors.ErrWorkspaceNameTaken)
}

func TestWorkspaceService_PlanLimitEnforced(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	user := registerTestUser(t, db, sc, "ws-cap@example.com")

	// free план: 3 пространства, одно уже есть
	for i := 0; i < 2; i++ {
		_, err := sc.WorkspaceService.Create(db, user.User.ID, &dto.CreateWorkspaceRequest{
			Name: fmt.Sprintf("Extra %d", i),
		})
		require.NoError(t, err)
	}

	_, err := sc.WorkspaceService.Create(db, user.User.ID, &dto.CreateWorkspaceRequest{Name: "One Too Many"})
	require.ErrorIs(t, err, apperrors.ErrWorkspaceLimitExceeded)
}

func TestWorkspaceService_DeleteLastWorkspaceFails(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	user := registerTestUser(t, db, sc, "ws-last@example.com")
	wsID := personalWorkspaceID(t, db, sc, user.User.ID)

	err := sc.WorkspaceService.Delete(db, user.User.ID, wsID)
	require.ErrorIs(t, err, apperrors.ErrLastWorkspace)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeInvalidState, appErr.Code)
	require.Equal(t, 400, appErr.HTTPCode)

	// Пространство на месте
	workspaces, err := sc.WorkspaceService.List(db, user.User.ID)
	require.NoError(t, err)
	require.Len(t, workspaces, 1)
}

func TestWorkspaceService_DeleteNonEmptyFails(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	user := registerTestUser(t, db, sc, "ws-full@example.com")

	second, err := sc.WorkspaceService.Create(db, user.User.ID, &dto.CreateWorkspaceRequest{Name: "Drafts"})
	require.NoError(t, err)

	_, err = sc.ProjectService.Create(db, user.User.ID, &dto.CreateProjectRequest{
		WorkspaceID: second.ID,
		Title:       "Keeps workspace occupied",
		ContentType: "article",
	})
	require.NoError(t, err)

	err = sc.WorkspaceService.Delete(db, user.User.ID, second.ID)
	require.ErrorIs(t, err, apperrors.ErrWorkspaceNotEmpty)
}

func TestWorkspaceService_DeleteEmptySecondWorkspace(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	user := registerTestUser(t, db, sc, "ws-del@example.com")

	second, err := sc.WorkspaceService.Create(db, user.User.ID, &dto.CreateWorkspaceRequest{Name: "Temporary"})
	require.NoError(t, err)

	require.NoError(t, sc.WorkspaceService.Delete(db, user.User.ID, second.ID))

	_, err = sc.WorkspaceService.Get(db, user.User.ID, second.ID)
	require.ErrorIs(t, err, apperrors.ErrWorkspaceNotFound)
}

func TestWorkspaceService_CrossOwnerForbidden(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	owner := registerTestUser(t, db, sc, "owner@example.com")
	intruder := registerTestUser(t, db, sc, "intruder@example.com")

	wsID := personalWorkspaceID(t, db, sc, owner.User.ID)

	_, err := sc.WorkspaceService.Get(db, intruder.User.ID, wsID)
	require.ErrorIs(t, err, apperrors.ErrForbidden)

	err = sc.WorkspaceService.Delete(db, intruder.User.ID, wsID)
	require.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestWorkspaceService_Stats(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	user := registerTestUser(t, db, sc, "ws-stats@example.com")
	wsID := personalWorkspaceID(t, db, sc, user.User.ID)

	_, err := sc.ProjectService.Create(db, user.User.ID, &dto.CreateProjectRequest{
		WorkspaceID: wsID,
		Title:       "First",
		ContentType: "article",
		Content:     "one two three",
	})
	require.NoError(t, err)

	_, err = sc.ProjectService.Create(db, user.User.ID, &dto.CreateProjectRequest{
		WorkspaceID: wsID,
		Title:       "Second",
		ContentType: "email",
		Content:     "four five",
		Status:      "completed",
	})
	require.NoError(t, err)

	stats, err := sc.WorkspaceService.Stats(db, user.User.ID, wsID)
	require.NoError(t, err)
	require.EqualValues(t, 2, stats.TotalProjects)
	require.Equal(t, 5, stats.TotalWords)
	require.Equal(t, 1, stats.ByStatus["draft"])
	require.Equal(t, 1, stats.ByStatus["completed"])
	require.Equal(t, 1, stats.ByContentType["article"])
	require.Equal(t, 2, stats.RecentProjects)
}
