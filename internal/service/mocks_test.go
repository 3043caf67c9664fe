package service

import (
	"context"
	"time"

	"edu-perfil/internal/domain"
	"edu-perfil/internal/exercisegen"

	"github.com/stretchr/testify/mock"
)

// --- MockStudentRepository ---
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) GetByIDForUpdate(ctx context.Context, studentID string) (*domain.Student, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentRepository) Create(ctx context.Context, student *domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

// --- MockProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetActive(ctx context.Context, studentID string) (*domain.StoredProfile, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoredProfile), args.Error(1)
}

func (m *MockProfileRepository) DeactivateAll(ctx context.Context, studentID string) error {
	args := m.Called(ctx, studentID)
	return args.Error(0)
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *domain.StoredProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// --- MockExerciseRepository ---
type MockExerciseRepository struct {
	mock.Mock
}

func (m *MockExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) error {
	args := m.Called(ctx, exercise)
	return args.Error(0)
}

func (m *MockExerciseRepository) GetByID(ctx context.Context, exerciseID string) (*domain.Exercise, error) {
	args := m.Called(ctx, exerciseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) MarkUsed(ctx context.Context, exerciseID string, at time.Time) error {
	args := m.Called(ctx, exerciseID, at)
	return args.Error(0)
}

// --- MockResponseRepository ---
type MockResponseRepository struct {
	mock.Mock
}

func (m *MockResponseRepository) Create(ctx context.Context, response *domain.ExerciseResponse) error {
	args := m.Called(ctx, response)
	return args.Error(0)
}

// --- MockSessionRepository ---
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetByIDForUpdate(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) Update(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

// --- MockStatsRepository ---
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) CountStudents(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepository) CountActiveProfiles(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepository) CountExercises(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepository) CountResponses(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepository) ActiveProfilesByCategory(ctx context.Context) ([]domain.CountByKey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CountByKey), args.Error(1)
}

func (m *MockStatsRepository) ActiveProfilesByRisk(ctx context.Context) ([]domain.CountByKey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CountByKey), args.Error(1)
}

func (m *MockStatsRepository) StudentResponseTotals(ctx context.Context, studentID string) (int, int, float64, error) {
	args := m.Called(ctx, studentID)
	return args.Int(0), args.Int(1), args.Get(2).(float64), args.Error(3)
}

func (m *MockStatsRepository) CountStudentExercises(ctx context.Context, studentID string) (int, error) {
	args := m.Called(ctx, studentID)
	return args.Int(0), args.Error(1)
}

// --- MockExerciseGenerator ---
type MockExerciseGenerator struct {
	mock.Mock
}

func (m *MockExerciseGenerator) Generate(ctx context.Context, req exercisegen.Request) ([]exercisegen.ParsedExercise, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]exercisegen.ParsedExercise), args.Error(1)
}

// --- MockProfileService ---
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Classify(ctx context.Context, in ClassifyInput) (*domain.StoredProfile, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoredProfile), args.Error(1)
}

func (m *MockProfileService) GetActive(ctx context.Context, studentID string) (*domain.StoredProfile, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoredProfile), args.Error(1)
}

// fakeTx runs fn directly and records whether a transaction was used.
type fakeTx struct {
	calls int
}

func (f *fakeTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
