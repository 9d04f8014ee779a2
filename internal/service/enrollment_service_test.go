package service

import (
	"context"
	"errors"
	"testing"

	apperrors "coursehub/internal/errors"
	"coursehub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func newTestEnrollmentService(m *serviceMocks, recorder EnrollmentRecorder) *EnrollmentService {
	return NewEnrollmentService(EnrollmentServiceConfig{
		Repos:       m.repos(),
		Invalidator: m.invalidator(),
		Notifier:    m.notifier,
		Recorder:    recorder,
	})
}

func TestEnrollmentService_EnrollPurchased(t *testing.T) {
	t.Run("links both sides, starts progress and notifies", func(t *testing.T) {
		m := newServiceMocks(t)
		m.allowInvalidation()
		recorder := &countingRecorder{}
		svc := newTestEnrollmentService(m, recorder)
		course := publishedCourse(primitive.NewObjectID())
		user := &models.User{ID: primitive.NewObjectID(), Email: "ada@example.com", FirstName: "Ada"}

		m.courses.EXPECT().FindByID(gomock.Any(), course.ID).Return(course, nil)
		m.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		gomock.InOrder(
			m.courses.EXPECT().AddStudent(gomock.Any(), course.ID, user.ID).Return(nil),
			m.users.EXPECT().AddEnrolledCourse(gomock.Any(), user.ID, course.ID).Return(nil),
			m.progress.EXPECT().Init(gomock.Any(), user.ID, course.ID).Return(nil),
		)

		err := svc.EnrollPurchased(context.Background(), user.ID, course.ID.Hex())

		require.NoError(t, err)
		assert.Equal(t, 1, recorder.count)
		sent := m.notifier.sent()
		require.Len(t, sent, 1)
		assert.Equal(t, "Enrolled in "+course.CourseName, sent[0].Subject)
	})

	t.Run("second enrollment is a conflict", func(t *testing.T) {
		m := newServiceMocks(t)
		recorder := &countingRecorder{}
		svc := newTestEnrollmentService(m, recorder)
		course := publishedCourse(primitive.NewObjectID())
		userID := primitive.NewObjectID()

		m.courses.EXPECT().FindByID(gomock.Any(), course.ID).Return(course, nil)
		m.users.EXPECT().FindByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
		m.courses.EXPECT().AddStudent(gomock.Any(), course.ID, userID).Return(apperrors.ErrAlreadyEnrolled)

		err := svc.EnrollPurchased(context.Background(), userID, course.ID.Hex())

		assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
		assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
		assert.Zero(t, recorder.count)
		assert.Empty(t, m.notifier.sent())
	})

	t.Run("user side failure rolls back the course side", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := newTestEnrollmentService(m, nil)
		course := publishedCourse(primitive.NewObjectID())
		userID := primitive.NewObjectID()
		boom := errors.New("boom")

		m.courses.EXPECT().FindByID(gomock.Any(), course.ID).Return(course, nil)
		m.users.EXPECT().FindByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
		gomock.InOrder(
			m.courses.EXPECT().AddStudent(gomock.Any(), course.ID, userID).Return(nil),
			m.users.EXPECT().AddEnrolledCourse(gomock.Any(), userID, course.ID).Return(boom),
			m.courses.EXPECT().RemoveStudent(gomock.Any(), course.ID, userID).Return(nil),
		)

		err := svc.EnrollPurchased(context.Background(), userID, course.ID.Hex())

		assert.ErrorIs(t, err, boom)
	})

	t.Run("drafts cannot be enrolled in", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := newTestEnrollmentService(m, nil)
		course := publishedCourse(primitive.NewObjectID())
		course.Status = models.CourseDraft

		m.courses.EXPECT().FindByID(gomock.Any(), course.ID).Return(course, nil)

		err := svc.EnrollPurchased(context.Background(), primitive.NewObjectID(), course.ID.Hex())

		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})

	t.Run("progress init failure does not fail the enrollment", func(t *testing.T) {
		m := newServiceMocks(t)
		m.allowInvalidation()
		svc := newTestEnrollmentService(m, nil)
		course := publishedCourse(primitive.NewObjectID())
		userID := primitive.NewObjectID()

		m.courses.EXPECT().FindByID(gomock.Any(), course.ID).Return(course, nil)
		m.users.EXPECT().FindByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
		m.courses.EXPECT().AddStudent(gomock.Any(), course.ID, userID).Return(nil)
		m.users.EXPECT().AddEnrolledCourse(gomock.Any(), userID, course.ID).Return(nil)
		m.progress.EXPECT().Init(gomock.Any(), userID, course.ID).Return(errors.New("boom"))

		assert.NoError(t, svc.EnrollPurchased(context.Background(), userID, course.ID.Hex()))
	})
}

func TestProgressService_MarkLectureComplete(t *testing.T) {
	student := studentActor()

	t.Run("records the lesson", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := NewProgressService(m.repos())
		tr := newCourseTree(primitive.NewObjectID())
		tr.course.StudentsEnrolled = []primitive.ObjectID{student.ID}
		lesson := tr.lessons[0]

		m.courses.EXPECT().FindByID(gomock.Any(), tr.course.ID).Return(tr.course, nil)
		m.subSections.EXPECT().FindByID(gomock.Any(), lesson.ID).Return(&lesson, nil)
		m.progress.EXPECT().MarkCompleted(gomock.Any(), student.ID, tr.course.ID, lesson.ID).Return(nil)
		m.progress.EXPECT().Find(gomock.Any(), student.ID, tr.course.ID).
			Return(&models.CourseProgress{CompletedVideos: []primitive.ObjectID{lesson.ID}}, nil)

		progress, err := svc.MarkLectureComplete(context.Background(), student, &models.MarkLectureRequest{
			CourseID:     tr.course.ID.Hex(),
			SubSectionID: lesson.ID.Hex(),
		})

		require.NoError(t, err)
		assert.Equal(t, []primitive.ObjectID{lesson.ID}, progress.CompletedVideos)
	})

	t.Run("requires enrollment", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := NewProgressService(m.repos())
		tr := newCourseTree(primitive.NewObjectID())

		m.courses.EXPECT().FindByID(gomock.Any(), tr.course.ID).Return(tr.course, nil)

		_, err := svc.MarkLectureComplete(context.Background(), student, &models.MarkLectureRequest{
			CourseID:     tr.course.ID.Hex(),
			SubSectionID: tr.lessons[0].ID.Hex(),
		})

		assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
	})

	t.Run("lesson must belong to the course", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := NewProgressService(m.repos())
		tr := newCourseTree(primitive.NewObjectID())
		tr.course.StudentsEnrolled = []primitive.ObjectID{student.ID}
		foreign := models.SubSection{ID: primitive.NewObjectID(), CourseID: primitive.NewObjectID()}

		m.courses.EXPECT().FindByID(gomock.Any(), tr.course.ID).Return(tr.course, nil)
		m.subSections.EXPECT().FindByID(gomock.Any(), foreign.ID).Return(&foreign, nil)

		_, err := svc.MarkLectureComplete(context.Background(), student, &models.MarkLectureRequest{
			CourseID:     tr.course.ID.Hex(),
			SubSectionID: foreign.ID.Hex(),
		})

		assert.ErrorIs(t, err, apperrors.ErrSubSectionNotFound)
	})

	t.Run("completing twice is a conflict", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := NewProgressService(m.repos())
		tr := newCourseTree(primitive.NewObjectID())
		tr.course.StudentsEnrolled = []primitive.ObjectID{student.ID}
		lesson := tr.lessons[1]

		m.courses.EXPECT().FindByID(gomock.Any(), tr.course.ID).Return(tr.course, nil)
		m.subSections.EXPECT().FindByID(gomock.Any(), lesson.ID).Return(&lesson, nil)
		m.progress.EXPECT().MarkCompleted(gomock.Any(), student.ID, tr.course.ID, lesson.ID).Return(apperrors.ErrLectureCompleted)

		_, err := svc.MarkLectureComplete(context.Background(), student, &models.MarkLectureRequest{
			CourseID:     tr.course.ID.Hex(),
			SubSectionID: lesson.ID.Hex(),
		})

		assert.ErrorIs(t, err, apperrors.ErrLectureCompleted)
	})
}

func TestEnrollmentService_Enroll(t *testing.T) {
	t.Run("free course enrolls directly", func(t *testing.T) {
		m := newServiceMocks(t)
		m.allowInvalidation()
		svc := newTestEnrollmentService(m, nil)
		course := publishedCourse(primitive.NewObjectID())
		course.Price = 0
		user := &models.User{ID: primitive.NewObjectID(), Email: "ada@example.com", FirstName: "Ada"}

		m.courses.EXPECT().FindByID(gomock.Any(), course.ID).Return(course, nil)
		m.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		m.courses.EXPECT().AddStudent(gomock.Any(), course.ID, user.ID).Return(nil)
		m.users.EXPECT().AddEnrolledCourse(gomock.Any(), user.ID, course.ID).Return(nil)
		m.progress.EXPECT().Init(gomock.Any(), user.ID, course.ID).Return(nil)

		require.NoError(t, svc.Enroll(context.Background(), user.ID, course.ID.Hex()))
	})

	t.Run("paid course requires checkout", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := newTestEnrollmentService(m, nil)
		course := publishedCourse(primitive.NewObjectID())

		m.courses.EXPECT().FindByID(gomock.Any(), course.ID).Return(course, nil)

		err := svc.Enroll(context.Background(), primitive.NewObjectID(), course.ID.Hex())

		assert.ErrorIs(t, err, apperrors.ErrPaymentRequired)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		assert.Empty(t, m.notifier.sent())
	})

	t.Run("drafts stay hidden", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := newTestEnrollmentService(m, nil)
		course := publishedCourse(primitive.NewObjectID())
		course.Price = 0
		course.Status = models.CourseDraft

		m.courses.EXPECT().FindByID(gomock.Any(), course.ID).Return(course, nil)

		err := svc.Enroll(context.Background(), primitive.NewObjectID(), course.ID.Hex())

		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})
}
