package enrollment

import (
	"errors"

	"github.com/dachraoui-ui/sport-club-mang/internal/activity"
	"github.com/dachraoui-ui/sport-club-mang/internal/member"
	"github.com/dachraoui-ui/sport-club-mang/internal/metrics"
)

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrAlreadyEnrolled    = errors.New("Member already enrolled in this activity")
	ErrActivityFull       = errors.New("Activity is full")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
)

type MemberStore interface {
	GetByID(id int) (*member.Member, error)
}

type ActivityStore interface {
	GetByID(id int) (*activity.Activity, error)
}

type Service interface {
	Enroll(memberID, activityID int) (*Enrollment, error)
	Update(id int, req UpdateEnrollmentRequest) error
	Get(id int) (*EnrollmentWithDetails, error)
	List() ([]EnrollmentWithDetails, error)
	Delete(id int) error
}

type service struct {
	repo       Repository
	members    MemberStore
	activities ActivityStore
}

func NewService(repo Repository, members MemberStore, activities ActivityStore) Service {
	return &service{
		repo:       repo,
		members:    members,
		activities: activities,
	}
}

// Enroll links a member to an activity. The capacity check is a plain
// count-then-insert; two requests racing at the boundary can both pass,
// which is accepted at this scale.
func (s *service) Enroll(memberID, activityID int) (*Enrollment, error) {
	if _, err := s.members.GetByID(memberID); err != nil {
		return nil, ErrMemberNotFound
	}

	act, err := s.activities.GetByID(activityID)
	if err != nil {
		return nil, ErrActivityNotFound
	}

	exists, err := s.repo.PairExists(memberID, activityID)
	if err != nil {
		return nil, err
	}
	if exists {
		metrics.RecordEnrollment("rejected_duplicate")
		return nil, ErrAlreadyEnrolled
	}

	count, err := s.repo.CountForActivity(activityID)
	if err != nil {
		return nil, err
	}
	if count >= act.Capacity {
		metrics.RecordEnrollment("rejected_full")
		return nil, ErrActivityFull
	}

	e, err := s.repo.Create(memberID, activityID)
	if err != nil {
		return nil, err
	}

	metrics.RecordEnrollment("accepted")
	return e, nil
}

// Update moves an enrollment to another member and/or activity. Moving
// to a new activity re-runs the capacity check against that activity,
// excluding the enrollment's own row.
func (s *service) Update(id int, req UpdateEnrollmentRequest) error {
	e, err := s.repo.GetByID(id)
	if err != nil {
		return ErrEnrollmentNotFound
	}

	if req.MemberID != nil {
		if _, err := s.members.GetByID(*req.MemberID); err != nil {
			return ErrMemberNotFound
		}
		e.MemberID = *req.MemberID
	}

	if req.ActivityID != nil {
		act, err := s.activities.GetByID(*req.ActivityID)
		if err != nil {
			return ErrActivityNotFound
		}

		count, err := s.repo.CountForActivityExcluding(*req.ActivityID, id)
		if err != nil {
			return err
		}
		if count >= act.Capacity {
			return ErrActivityFull
		}
		e.ActivityID = *req.ActivityID
	}

	return s.repo.Update(e)
}

func (s *service) Get(id int) (*EnrollmentWithDetails, error) {
	e, err := s.repo.GetByIDWithDetails(id)
	if err != nil {
		return nil, ErrEnrollmentNotFound
	}
	return e, nil
}

func (s *service) List() ([]EnrollmentWithDetails, error) {
	return s.repo.ListWithDetails()
}

func (s *service) Delete(id int) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return ErrEnrollmentNotFound
	}
	return s.repo.Delete(id)
}
