package enrollment

type Repository interface {
	Create(memberID, activityID int) (*Enrollment, error)
	GetByID(id int) (*Enrollment, error)
	GetByIDWithDetails(id int) (*EnrollmentWithDetails, error)
	ListWithDetails() ([]EnrollmentWithDetails, error)
	Update(e *Enrollment) error
	Delete(id int) error
	PairExists(memberID, activityID int) (bool, error)
	CountForActivity(activityID int) (int, error)
	CountForActivityExcluding(activityID, excludeID int) (int, error)
}
