package session

import (
	"testing"
	"time"

	"github.com/dachraoui-ui/sport-club-mang/internal/api"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func sessionColumns() []string {
	return []string{"id", "activite_id", "date", "heure_debut", "heure_fin"}
}

func TestCreateSession(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	date := api.NewDate(2024, time.May, 10)

	mock.ExpectQuery(`INSERT INTO class_sessions.*`).
		WithArgs(1, date, "09:00", "10:00").
		WillReturnRows(sqlmock.NewRows(sessionColumns()).
			AddRow(1, 1, date.Time, "09:00", "10:00"))

	s, err := repo.Create(1, date, "09:00", "10:00")
	assert.NoError(t, err)
	assert.Equal(t, 1, s.ID)
	assert.Equal(t, "09:00", s.StartTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSessionDuplicateSlot(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	date := api.NewDate(2024, time.May, 10)

	mock.ExpectQuery(`INSERT INTO class_sessions.*`).
		WithArgs(1, date, "09:00", "10:00").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err = repo.Create(1, date, "09:00", "10:00")
	assert.ErrorIs(t, err, ErrDuplicateSlot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSessions(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	cols := append(sessionColumns(), "activite_nom", "activite_code")
	mock.ExpectQuery(`SELECT.*FROM class_sessions s.*JOIN activities a.*ORDER BY s.date ASC, s.heure_debut ASC`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, 1, time.Now(), "09:00:00", "10:00:00", "Yoga", "YOGA01").
			AddRow(2, 1, time.Now(), "10:00:00", "11:00:00", "Yoga", "YOGA01"))

	sessions, err := repo.List(0, "", "")
	assert.NoError(t, err)
	assert.Len(t, sessions, 2)
	assert.Equal(t, "Yoga", sessions[0].ActivityName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSessionsWithFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	cols := append(sessionColumns(), "activite_nom", "activite_code")
	mock.ExpectQuery(`SELECT.*FROM class_sessions s.*WHERE s.activite_id = \$1 AND s.date = \$2.*`).
		WithArgs(1, "2024-05-10").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, 1, time.Now(), "09:00:00", "10:00:00", "Yoga", "YOGA01"))

	sessions, err := repo.List(1, "2024-05-10", "")
	assert.NoError(t, err)
	assert.Len(t, sessions, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSessionsSortByStartTimeDesc(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	cols := append(sessionColumns(), "activite_nom", "activite_code")
	mock.ExpectQuery(`SELECT.*FROM class_sessions s.*ORDER BY s.heure_debut DESC`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(2, 1, time.Now(), "18:00:00", "19:00:00", "Yoga", "YOGA01").
			AddRow(1, 1, time.Now(), "09:00:00", "10:00:00", "Yoga", "YOGA01"))

	sessions, err := repo.List(0, "", "-heure_debut")
	assert.NoError(t, err)
	assert.Len(t, sessions, 2)
	assert.Equal(t, 2, sessions[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSession(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	date := api.NewDate(2024, time.May, 11)

	mock.ExpectExec(`UPDATE class_sessions.*SET activite_id = \$1.*WHERE id = \$5`).
		WithArgs(2, date, "14:00", "15:30", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := &ClassSession{ID: 1, ActivityID: 2, Date: date, StartTime: "14:00", EndTime: "15:30"}
	err = repo.Update(s)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSession(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectExec(`DELETE FROM class_sessions WHERE id = \$1`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidTime(t *testing.T) {
	assert.True(t, ValidTime("09:00"))
	assert.True(t, ValidTime("23:59"))
	assert.False(t, ValidTime("24:00"))
	assert.False(t, ValidTime("9:00"))
	assert.False(t, ValidTime("09:60"))
	assert.False(t, ValidTime("0900"))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "09:00", FormatTime("09:00:00"))
	assert.Equal(t, "09:00", FormatTime("09:00"))
	assert.Equal(t, "9:00", FormatTime("9:00"))
}
