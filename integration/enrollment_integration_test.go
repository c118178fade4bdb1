package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/dachraoui-ui/sport-club-mang/internal/auth"
	"github.com/dachraoui-ui/sport-club-mang/internal/enrollment"
	"github.com/dachraoui-ui/sport-club-mang/internal/member"
)

func TestEnrollmentCapacityIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	db := setupTestDB(t)
	defer db.Close()

	gin.SetMode(gin.TestMode)
	handler := enrollment.NewHandler(db)

	authMiddleware := auth.AuthMiddleware("test-secret", nil)
	router := gin.New()
	router.POST("/enrollments", authMiddleware, auth.RequireStaff(), handler.Create)

	t.Run("Reject enrollment beyond capacity", func(t *testing.T) {
		cleanDatabase(t, db)

		userID := createStaffUser(t, db, "admin")
		token := generateStaffToken(userID, "admin", "test-secret")

		activityID := createTestActivity(t, db, "GYM01", "Gym", 1)
		member1 := createTestMember(t, db, "Dupont", "Jean")
		member2 := createTestMember(t, db, "Martin", "Claire")

		body := fmt.Sprintf(`{"membre_id": %d, "activite_id": %d}`, member1, activityID)
		req := httptest.NewRequest("POST", "/enrollments", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)

		body = fmt.Sprintf(`{"membre_id": %d, "activite_id": %d}`, member2, activityID)
		req = httptest.NewRequest("POST", "/enrollments", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Activity is full")
	})

	t.Run("Reject duplicate enrollment", func(t *testing.T) {
		cleanDatabase(t, db)

		userID := createStaffUser(t, db, "admin")
		token := generateStaffToken(userID, "admin", "test-secret")

		activityID := createTestActivity(t, db, "TEN01", "Tennis", 10)
		memberID := createTestMember(t, db, "Dupont", "Jean")
		createTestEnrollment(t, db, memberID, activityID)

		body := fmt.Sprintf(`{"membre_id": %d, "activite_id": %d}`, memberID, activityID)
		req := httptest.NewRequest("POST", "/enrollments", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Member already enrolled in this activity")
	})

	t.Run("Reject non-staff user", func(t *testing.T) {
		cleanDatabase(t, db)

		token, _ := auth.GenerateAccessToken(1, "regular", false, "test-secret")

		req := httptest.NewRequest("POST", "/enrollments", strings.NewReader(`{"membre_id": 1, "activite_id": 1}`))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestMemberDeleteCascadeIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	db := setupTestDB(t)
	defer db.Close()

	gin.SetMode(gin.TestMode)
	memberHandler := member.NewHandler(db)
	enrollmentHandler := enrollment.NewHandler(db)

	authMiddleware := auth.AuthMiddleware("test-secret", nil)
	router := gin.New()
	router.DELETE("/members/:memberID", authMiddleware, auth.RequireStaff(), memberHandler.Delete)
	router.GET("/enrollments", authMiddleware, auth.RequireStaff(), enrollmentHandler.List)

	cleanDatabase(t, db)

	userID := createStaffUser(t, db, "admin")
	token := generateStaffToken(userID, "admin", "test-secret")

	activityID := createTestActivity(t, db, "YOG01", "Yoga", 10)
	memberID := createTestMember(t, db, "Dupont", "Jean")
	createTestEnrollment(t, db, memberID, activityID)

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/members/%d", memberID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest("GET", "/enrollments", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var enrollments []json.RawMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &enrollments))
	assert.Empty(t, enrollments)
}

func TestMemberSearchIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	db := setupTestDB(t)
	defer db.Close()

	gin.SetMode(gin.TestMode)
	handler := member.NewHandler(db)

	authMiddleware := auth.AuthMiddleware("test-secret", nil)
	router := gin.New()
	router.GET("/members", authMiddleware, auth.RequireStaff(), handler.List)

	cleanDatabase(t, db)

	userID := createStaffUser(t, db, "admin")
	token := generateStaffToken(userID, "admin", "test-secret")

	createTestMember(t, db, "Dupont", "Jean")
	createTestMember(t, db, "Jeanneret", "Paul")
	createTestMember(t, db, "Martin", "Claire")

	req := httptest.NewRequest("GET", "/members?search=jean", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var members []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &members))
	assert.Len(t, members, 2)
}
