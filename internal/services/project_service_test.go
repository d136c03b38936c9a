package services

import (
	"testing"

	"contentcraft_backend/internal/models"
	"contentcraft_backend/internal/services/dto"
	"contentcraft_backend/pkg/apperrors"

	"github.com/stretchr/testify/require"
)

func TestProjectService_CreateComputesWordCount(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	user := registerTestUser(t, db, sc, "proj@example.com")
	wsID := personalWorkspaceID(t, db, sc, user.User.ID)

	project, err := sc.ProjectService.Create(db, user.User.ID, &dto.CreateProjectRequest{
		WorkspaceID: wsID,
		Title:       "Launch post",
		ContentType: "social_post",
		Content:     "  hello   brave\nnew world  ",
	})
	require.NoError(t, err)
	require.Equal(t, 4, project.WordCount)
	require.Equal(t, models.ProjectStatusDraft, project.Status)
	require.Equal(t, user.User.ID, project.CreatedBy)
}

func TestProjectService_UpdateRecomputesWordCount(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	user := registerTestUser(t, db, sc, "proj-wc@example.com")
	wsID := personalWorkspaceID(t, db, sc, user.User.ID)

	project, err := sc.ProjectService.Create(db, user.User.ID, &dto.CreateProjectRequest{
		WorkspaceID: wsID,
		Title:       "Doc",
		ContentType: "article",
		Content:     "initial words here",
	})
	require.NoError(t, err)
	require.Equal(t, 3, project.WordCount)

	// word_count не принимается от клиента: в ProjectPatch его просто нет,
	// значение всегда выводится из content
	content := "one two three four five"
	updated, err := sc.ProjectService.Update(db, user.User.ID, project.ID, &dto.ProjectPatch{
		Content: &content,
	})
	require.NoError(t, err)
	require.Equal(t, 5, updated.WordCount)
}

func TestProjectService_PartialPatchKeepsOtherFields(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	user := registerTestUser(t, db, sc, "proj-patch@example.com")
	wsID := personalWorkspaceID(t, db, sc, user.User.ID)

	project, err := sc.ProjectService.Create(db, user.User.ID, &dto.CreateProjectRequest{
		WorkspaceID: wsID,
		Title:       "Original title",
		ContentType: "article",
		Content:     "body text",
	})
	require.NoError(t, err)

	status := "in_progress"
	updated, err := sc.ProjectService.Update(db, user.User.ID, project.ID, &dto.ProjectPatch{
		Status: &status,
	})
	require.NoError(t, err)
	require.Equal(t, models.ProjectStatusInProgress, updated.Status)
	require.Equal(t, "Original title", updated.Title)
	require.Equal(t, "body text", updated.Content)
	require.Equal(t, project.CreatedBy, updated.CreatedBy)
	require.Equal(t, project.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestProjectService_CrossOwnerAccess(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	owner := registerTestUser(t, db, sc, "proj-owner@example.com")
	intruder := registerTestUser(t, db, sc, "proj-intruder@example.com")

	wsID := personalWorkspaceID(t, db, sc, owner.User.ID)
	project, err := sc.ProjectService.Create(db, owner.User.ID, &dto.CreateProjectRequest{
		WorkspaceID: wsID,
		Title:       "Private",
		ContentType: "article",
	})
	require.NoError(t, err)

	_, err = sc.ProjectService.Get(db, intruder.User.ID, project.ID)
	require.ErrorIs(t, err, apperrors.ErrForbidden)

	title := "Hijacked"
	_, err = sc.ProjectService.Update(db, intruder.User.ID, project.ID, &dto.ProjectPatch{Title: &title})
	require.ErrorIs(t, err, apperrors.ErrForbidden)

	err = sc.ProjectService.Delete(db, intruder.User.ID, project.ID)
	require.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestProjectService_Duplicate(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	user := registerTestUser(t, db, sc, "proj-dup@example.com")
	wsID := personalWorkspaceID(t, db, sc, user.User.ID)

	status := "completed"
	project, err := sc.ProjectService.Create(db, user.User.ID, &dto.CreateProjectRequest{
		WorkspaceID: wsID,
		Title:       "Campaign",
		ContentType: "email",
		Content:     "some copy",
		Status:      status,
	})
	require.NoError(t, err)

	clone, err := sc.ProjectService.Duplicate(db, user.User.ID, project.ID)
	require.NoError(t, err)
	require.Equal(t, "Campaign (Copy)", clone.Title)
	require.Equal(t, project.Content, clone.Content)
	require.Equal(t, models.ProjectStatusDraft, clone.Status)
	require.NotEqual(t, project.ID, clone.ID)
}

func TestProjectService_ListFilteredByWorkspace(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	user := registerTestUser(t, db, sc, "proj-list@example.com")
	wsID := personalWorkspaceID(t, db, sc, user.User.ID)

	second, err := sc.WorkspaceService.Create(db, user.User.ID, &dto.CreateWorkspaceRequest{Name: "Second"})
	require.NoError(t, err)

	_, err = sc.ProjectService.Create(db, user.User.ID, &dto.CreateProjectRequest{
		WorkspaceID: wsID, Title: "In personal", ContentType: "article",
	})
	require.NoError(t, err)
	_, err = sc.ProjectService.Create(db, user.User.ID, &dto.CreateProjectRequest{
		WorkspaceID: second.ID, Title: "In second", ContentType: "article",
	})
	require.NoError(t, err)

	all, err := sc.ProjectService.List(db, user.User.ID, &dto.ListProjectsQuery{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	filtered, err := sc.ProjectService.List(db, user.User.ID, &dto.ListProjectsQuery{WorkspaceID: second.ID})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.Equal(t, "In second", filtered[0].Title)
}
