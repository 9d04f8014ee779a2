package service

import (
	"context"
	"mime/multipart"
	"testing"

	"coursehub/internal/ai"
	aimocks "coursehub/internal/ai/mocks"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/media"
	"coursehub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func newTestUserService(m *serviceMocks) *UserService {
	return NewUserService(UserServiceConfig{
		Repos:       m.repos(),
		Cache:       m.cache,
		Invalidator: m.invalidator(),
		Media:       m.media,
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	m := newServiceMocks(t)
	svc := newTestUserService(m)
	id := primitive.NewObjectID()
	req := &models.UpdateProfileRequest{About: strPtr("Teaches Go")}

	m.users.EXPECT().UpdateProfile(gomock.Any(), id, req).Return(&models.User{ID: id, About: "Teaches Go"}, nil)
	m.cache.EXPECT().DeletePattern(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	user, err := svc.UpdateProfile(context.Background(), id, req)

	require.NoError(t, err)
	assert.Equal(t, "Teaches Go", user.About)
}

func TestUserService_UpdateDisplayPicture(t *testing.T) {
	image := &multipart.FileHeader{Filename: "me.jpg"}

	t.Run("uploads, stores and removes the previous avatar", func(t *testing.T) {
		m := newServiceMocks(t)
		m.allowInvalidation()
		svc := newTestUserService(m)
		user := &models.User{ID: primitive.NewObjectID(), ImageURL: "http://cdn/avatars/old.webp"}

		m.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		m.media.EXPECT().UploadImage(gomock.Any(), image, media.FolderAvatars).Return(&media.Asset{URL: "http://cdn/avatars/new.webp"}, nil)
		m.users.EXPECT().UpdateImage(gomock.Any(), user.ID, "http://cdn/avatars/new.webp").
			Return(&models.User{ID: user.ID, ImageURL: "http://cdn/avatars/new.webp"}, nil)
		m.media.EXPECT().Remove(gomock.Any(), "http://cdn/avatars/old.webp").Return(nil)

		updated, err := svc.UpdateDisplayPicture(context.Background(), user.ID, image)

		require.NoError(t, err)
		assert.Equal(t, "http://cdn/avatars/new.webp", updated.ImageURL)
	})

	t.Run("image is required", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := newTestUserService(m)

		_, err := svc.UpdateDisplayPicture(context.Background(), primitive.NewObjectID(), nil)

		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}

func TestUserService_GetEnrolledCourses(t *testing.T) {
	m := newServiceMocks(t)
	m.cacheMiss()
	svc := newTestUserService(m)
	tr := newCourseTree(primitive.NewObjectID())
	gone := primitive.NewObjectID()
	user := &models.User{ID: primitive.NewObjectID(), CoursesEnrolled: []primitive.ObjectID{tr.course.ID, gone}}
	tr.course.StudentsEnrolled = []primitive.ObjectID{user.ID}
	tr.expectLoad(m)

	m.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
	m.progress.EXPECT().FindByUser(gomock.Any(), user.ID).Return([]models.CourseProgress{
		{CourseID: tr.course.ID, CompletedVideos: []primitive.ObjectID{tr.lessons[0].ID}},
	}, nil)
	m.courses.EXPECT().FindByID(gomock.Any(), gone).Return(nil, apperrors.ErrCourseNotFound)

	courses, err := svc.GetEnrolledCourses(context.Background(), user.ID)

	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, tr.course.ID, courses[0].Course.ID)
	assert.Equal(t, "1:45", courses[0].TotalDuration)
	assert.Equal(t, 50.0, courses[0].ProgressPercentage)
	assert.Nil(t, courses[0].Course.StudentsEnrolled)
	assert.Equal(t, 1, courses[0].Course.StudentCount)
}

func TestAIService_GenerateDescription(t *testing.T) {
	t.Run("returns trimmed text", func(t *testing.T) {
		generator := aimocks.NewMockGenerator(gomock.NewController(t))
		svc := NewAIService(generator)

		generator.EXPECT().CourseDescription(gomock.Any(), "Go", []string{"web"}).Return("  A course.\n", nil)

		resp, err := svc.GenerateDescription(context.Background(), &models.GenerateDescriptionRequest{CourseName: "Go", Keywords: []string{"web"}})

		require.NoError(t, err)
		assert.Equal(t, "A course.", resp.Description)
	})

	t.Run("failures are upstream errors", func(t *testing.T) {
		svc := NewAIService(ai.DisabledGenerator{})

		_, err := svc.GenerateDescription(context.Background(), &models.GenerateDescriptionRequest{CourseName: "Go"})

		assert.Equal(t, apperrors.KindUpstream, apperrors.KindOf(err))
		assert.ErrorIs(t, err, ai.ErrDisabled)
	})
}
