package service

import (
	"sync"
	"testing"

	"coursehub/internal/cache"
	cachemocks "coursehub/internal/cache/mocks"
	"coursehub/internal/database"
	"coursehub/internal/mailer"
	mediamocks "coursehub/internal/media/mocks"
	"coursehub/internal/models"
	repomocks "coursehub/internal/repository/mocks"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

// serviceMocks bundles the collaborators most services are built from.
type serviceMocks struct {
	users       *repomocks.MockUserRepository
	categories  *repomocks.MockCategoryRepository
	courses     *repomocks.MockCourseRepository
	sections    *repomocks.MockSectionRepository
	subSections *repomocks.MockSubSectionRepository
	reviews     *repomocks.MockReviewRepository
	progress    *repomocks.MockProgressRepository
	payments    *repomocks.MockPaymentRepository
	cache       *cachemocks.MockCache
	media       *mediamocks.MockResolver
	notifier    *recordingNotifier
	tx          database.Transactor
}

func newServiceMocks(t *testing.T) *serviceMocks {
	ctrl := gomock.NewController(t)
	return &serviceMocks{
		users:       repomocks.NewMockUserRepository(ctrl),
		categories:  repomocks.NewMockCategoryRepository(ctrl),
		courses:     repomocks.NewMockCourseRepository(ctrl),
		sections:    repomocks.NewMockSectionRepository(ctrl),
		subSections: repomocks.NewMockSubSectionRepository(ctrl),
		reviews:     repomocks.NewMockReviewRepository(ctrl),
		progress:    repomocks.NewMockProgressRepository(ctrl),
		payments:    repomocks.NewMockPaymentRepository(ctrl),
		cache:       cachemocks.NewMockCache(ctrl),
		media:       mediamocks.NewMockResolver(ctrl),
		notifier:    &recordingNotifier{},
		tx:          database.SequentialTransactor{},
	}
}

func (m *serviceMocks) repos() Repositories {
	return Repositories{
		Users:       m.users,
		Categories:  m.categories,
		Courses:     m.courses,
		Sections:    m.sections,
		SubSections: m.subSections,
		Reviews:     m.reviews,
		Progress:    m.progress,
		Payments:    m.payments,
	}
}

func (m *serviceMocks) invalidator() *cache.Invalidator {
	return cache.NewInvalidator(m.cache)
}

// allowInvalidation accepts any cache deletes.
func (m *serviceMocks) allowInvalidation() {
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().DeletePattern(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// cacheMiss makes every cache read miss and accepts every write.
func (m *serviceMocks) cacheMiss() {
	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	m.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []mailer.Message
}

func (n *recordingNotifier) Notify(msg mailer.Message) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, msg)
}

func (n *recordingNotifier) sent() []mailer.Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]mailer.Message(nil), n.messages...)
}

type countingRecorder struct {
	count int
}

func (r *countingRecorder) Enrolled() {
	r.count++
}

func instructorActor() models.Actor {
	return models.Actor{ID: primitive.NewObjectID(), Role: models.RoleInstructor}
}

func studentActor() models.Actor {
	return models.Actor{ID: primitive.NewObjectID(), Role: models.RoleStudent}
}

func adminActor() models.Actor {
	return models.Actor{ID: primitive.NewObjectID(), Role: models.RoleAdmin}
}

func publishedCourse(owner primitive.ObjectID) *models.Course {
	return &models.Course{
		ID:               primitive.NewObjectID(),
		CourseName:       "MongoDB for Go developers",
		InstructorID:     owner,
		Price:            1000,
		CategoryID:       primitive.NewObjectID(),
		Status:           models.CoursePublished,
		Sections:         []primitive.ObjectID{},
		Reviews:          []primitive.ObjectID{},
		StudentsEnrolled: []primitive.ObjectID{},
	}
}

func floatPtr(f float64) *float64 {
	return &f
}

func strPtr(s string) *string {
	return &s
}
