package enrollment

import (
	"errors"
	"testing"

	"github.com/dachraoui-ui/sport-club-mang/internal/activity"
	"github.com/dachraoui-ui/sport-club-mang/internal/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock stores
type MockEnrollmentRepo struct{ mock.Mock }
type MockMemberStore struct{ mock.Mock }
type MockActivityStore struct{ mock.Mock }

func (m *MockEnrollmentRepo) Create(memberID, activityID int) (*Enrollment, error) {
	args := m.Called(memberID, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepo) GetByID(id int) (*Enrollment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepo) GetByIDWithDetails(id int) (*EnrollmentWithDetails, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*EnrollmentWithDetails), args.Error(1)
}

func (m *MockEnrollmentRepo) ListWithDetails() ([]EnrollmentWithDetails, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]EnrollmentWithDetails), args.Error(1)
}

func (m *MockEnrollmentRepo) Update(e *Enrollment) error {
	return m.Called(e).Error(0)
}

func (m *MockEnrollmentRepo) Delete(id int) error {
	return m.Called(id).Error(0)
}

func (m *MockEnrollmentRepo) PairExists(memberID, activityID int) (bool, error) {
	args := m.Called(memberID, activityID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEnrollmentRepo) CountForActivity(activityID int) (int, error) {
	args := m.Called(activityID)
	return args.Int(0), args.Error(1)
}

func (m *MockEnrollmentRepo) CountForActivityExcluding(activityID, excludeID int) (int, error) {
	args := m.Called(activityID, excludeID)
	return args.Int(0), args.Error(1)
}

func (m *MockMemberStore) GetByID(id int) (*member.Member, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockActivityStore) GetByID(id int) (*activity.Activity, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*activity.Activity), args.Error(1)
}

func newTestService() (*MockEnrollmentRepo, *MockMemberStore, *MockActivityStore, Service) {
	repo := new(MockEnrollmentRepo)
	members := new(MockMemberStore)
	activities := new(MockActivityStore)
	return repo, members, activities, NewService(repo, members, activities)
}

func TestEnroll_Success(t *testing.T) {
	repo, members, activities, svc := newTestService()

	members.On("GetByID", 1).Return(&member.Member{ID: 1}, nil)
	activities.On("GetByID", 2).Return(&activity.Activity{ID: 2, Capacity: 20}, nil)
	repo.On("PairExists", 1, 2).Return(false, nil)
	repo.On("CountForActivity", 2).Return(5, nil)
	repo.On("Create", 1, 2).Return(&Enrollment{ID: 10, MemberID: 1, ActivityID: 2}, nil)

	e, err := svc.Enroll(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, 10, e.ID)
	repo.AssertExpectations(t)
}

func TestEnroll_MemberNotFound(t *testing.T) {
	_, members, _, svc := newTestService()

	members.On("GetByID", 99).Return(nil, errors.New("sql: no rows in result set"))

	_, err := svc.Enroll(99, 2)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestEnroll_ActivityNotFound(t *testing.T) {
	_, members, activities, svc := newTestService()

	members.On("GetByID", 1).Return(&member.Member{ID: 1}, nil)
	activities.On("GetByID", 99).Return(nil, errors.New("sql: no rows in result set"))

	_, err := svc.Enroll(1, 99)
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestEnroll_DuplicateRejected(t *testing.T) {
	repo, members, activities, svc := newTestService()

	members.On("GetByID", 1).Return(&member.Member{ID: 1}, nil)
	activities.On("GetByID", 2).Return(&activity.Activity{ID: 2, Capacity: 20}, nil)
	repo.On("PairExists", 1, 2).Return(true, nil)

	_, err := svc.Enroll(1, 2)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEnroll_ActivityFull(t *testing.T) {
	repo, members, activities, svc := newTestService()

	members.On("GetByID", 1).Return(&member.Member{ID: 1}, nil)
	activities.On("GetByID", 2).Return(&activity.Activity{ID: 2, Capacity: 10}, nil)
	repo.On("PairExists", 1, 2).Return(false, nil)
	repo.On("CountForActivity", 2).Return(10, nil)

	_, err := svc.Enroll(1, 2)
	assert.ErrorIs(t, err, ErrActivityFull)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEnroll_LastSeatAccepted(t *testing.T) {
	repo, members, activities, svc := newTestService()

	members.On("GetByID", 1).Return(&member.Member{ID: 1}, nil)
	activities.On("GetByID", 2).Return(&activity.Activity{ID: 2, Capacity: 10}, nil)
	repo.On("PairExists", 1, 2).Return(false, nil)
	repo.On("CountForActivity", 2).Return(9, nil)
	repo.On("Create", 1, 2).Return(&Enrollment{ID: 11, MemberID: 1, ActivityID: 2}, nil)

	e, err := svc.Enroll(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, 11, e.ID)
}

func TestUpdate_MoveToFullActivityRejected(t *testing.T) {
	repo, _, activities, svc := newTestService()

	repo.On("GetByID", 5).Return(&Enrollment{ID: 5, MemberID: 1, ActivityID: 2}, nil)
	activities.On("GetByID", 3).Return(&activity.Activity{ID: 3, Capacity: 15}, nil)
	repo.On("CountForActivityExcluding", 3, 5).Return(15, nil)

	newActivity := 3
	err := svc.Update(5, UpdateEnrollmentRequest{ActivityID: &newActivity})
	assert.ErrorIs(t, err, ErrActivityFull)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdate_MoveExcludesOwnRow(t *testing.T) {
	repo, _, activities, svc := newTestService()

	repo.On("GetByID", 5).Return(&Enrollment{ID: 5, MemberID: 1, ActivityID: 2}, nil)
	activities.On("GetByID", 3).Return(&activity.Activity{ID: 3, Capacity: 15}, nil)
	repo.On("CountForActivityExcluding", 3, 5).Return(14, nil)
	repo.On("Update", mock.MatchedBy(func(e *Enrollment) bool {
		return e.ID == 5 && e.ActivityID == 3
	})).Return(nil)

	newActivity := 3
	err := svc.Update(5, UpdateEnrollmentRequest{ActivityID: &newActivity})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdate_NotFound(t *testing.T) {
	repo, _, _, svc := newTestService()

	repo.On("GetByID", 99).Return(nil, errors.New("sql: no rows in result set"))

	err := svc.Update(99, UpdateEnrollmentRequest{})
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	repo, _, _, svc := newTestService()

	repo.On("GetByID", 99).Return(nil, errors.New("sql: no rows in result set"))

	err := svc.Delete(99)
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)
}
