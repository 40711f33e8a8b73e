//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"caregiver-app-go/internal/config"
	"caregiver-app-go/internal/db"
	appointmentdomain "caregiver-app-go/internal/domain/appointment"
	caregiverdomain "caregiver-app-go/internal/domain/caregiver"
	jobdomain "caregiver-app-go/internal/domain/job"
	memberdomain "caregiver-app-go/internal/domain/member"
	userdomain "caregiver-app-go/internal/domain/user"
	appointmentrepo "caregiver-app-go/internal/repository/appointment"
	caregiverrepo "caregiver-app-go/internal/repository/caregiver"
	jobrepo "caregiver-app-go/internal/repository/job"
	memberrepo "caregiver-app-go/internal/repository/member"
	userrepo "caregiver-app-go/internal/repository/user"
	"caregiver-app-go/internal/transport/httpserver"
	"caregiver-app-go/internal/transport/httpserver/handler"
	"caregiver-app-go/pkg/logger"
	"gorm.io/gorm"
)

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		t.Skip("E2E_DB_DSN not set; skipping e2e tests")
	}

	log := logger.New(io.Discard, slog.LevelError, "text")

	dbConn, err := db.NewPostgres(config.DBConfig{URL: dsn}, log)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}

	if err := db.Migrate(dbConn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := cleanDB(dbConn); err != nil {
		t.Fatalf("clean db: %v", err)
	}

	users := userdomain.NewService(userrepo.NewPostgres(dbConn))
	caregivers := caregiverdomain.NewService(caregiverrepo.NewPostgres(dbConn))
	members := memberdomain.NewService(memberrepo.NewPostgres(dbConn))
	jobs := jobdomain.NewService(jobrepo.NewPostgres(dbConn))
	appointments := appointmentdomain.NewService(appointmentrepo.NewPostgres(dbConn))
	handlers := handler.New(users, caregivers, members, jobs, appointments, log)

	router := httpserver.NewRouter(handlers)
	server := httptest.NewServer(router)

	return &testEnv{server: server, db: dbConn}
}

func (e *testEnv) Close() {
	e.server.Close()
	sqlDB, err := e.db.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}

func cleanDB(dbConn *gorm.DB) error {
	return dbConn.WithContext(context.Background()).Exec(
		`TRUNCATE TABLE appointment, job_application, job, address, member, caregiver, "user" RESTART IDENTITY CASCADE`,
	).Error
}

func requestJSON(t *testing.T, client *http.Client, method, url string, payload interface{}) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	return resp, respBody
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type userResponse struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	GivenName string `json:"given_name"`
	Surname   string `json:"surname"`
}

type caregiverResponse struct {
	CaregiverUserID uint     `json:"caregiver_user_id"`
	Gender          *string  `json:"gender"`
	CaregivingType  *string  `json:"caregiving_type"`
	HourlyRate      *float64 `json:"hourly_rate"`
}

type memberResponse struct {
	MemberUserID uint    `json:"member_user_id"`
	HouseRules   *string `json:"house_rules"`
}

type addressResponse struct {
	MemberUserID uint    `json:"member_user_id"`
	Town         *string `json:"town"`
}

type jobResponse struct {
	JobID                  uint    `json:"job_id"`
	MemberUserID           uint    `json:"member_user_id"`
	RequiredCaregivingType *string `json:"required_caregiving_type"`
	DatePosted             *string `json:"date_posted"`
}

type jobApplicationResponse struct {
	CaregiverUserID uint    `json:"caregiver_user_id"`
	JobID           uint    `json:"job_id"`
	DateApplied     *string `json:"date_applied"`
}

type appointmentResponse struct {
	AppointmentID   uint    `json:"appointment_id"`
	CaregiverUserID uint    `json:"caregiver_user_id"`
	MemberUserID    uint    `json:"member_user_id"`
	AppointmentDate *string `json:"appointment_date"`
	AppointmentTime *string `json:"appointment_time"`
	Status          *string `json:"status"`
}

func TestE2EHealth(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	resp, body := requestJSON(t, client, http.MethodGet, env.server.URL+"/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status = %d, body %s", resp.StatusCode, body)
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("welcome status = %d, body %s", resp.StatusCode, body)
	}
	if !strings.Contains(string(body), "Welcome") {
		t.Fatalf("welcome body = %s", body)
	}
}

func TestE2ECaregiverMatchingFlow(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}
	base := env.server.URL

	// Two users: one caregiver, one member.
	resp, body := requestJSON(t, client, http.MethodPost, base+"/users", map[string]interface{}{
		"email":      "alice@example.com",
		"given_name": "Alice",
		"surname":    "Nguyen",
		"password":   "secret",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create user status = %d, body %s", resp.StatusCode, body)
	}
	var alice userResponse
	if err := json.Unmarshal(body, &alice); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if alice.UserID == 0 {
		t.Fatal("expected assigned user_id")
	}

	// Duplicate email is rejected.
	resp, body = requestJSON(t, client, http.MethodPost, base+"/users", map[string]interface{}{
		"email":      "alice@example.com",
		"given_name": "Alice",
		"surname":    "Duplicate",
		"password":   "secret",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate email status = %d, body %s", resp.StatusCode, body)
	}
	var envlp errorEnvelope
	if err := json.Unmarshal(body, &envlp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if envlp.Error.Code != "email_taken" {
		t.Fatalf("duplicate email code = %q", envlp.Error.Code)
	}

	resp, body = requestJSON(t, client, http.MethodPost, base+"/users", map[string]interface{}{
		"email":      "bob@example.com",
		"given_name": "Bob",
		"surname":    "Okafor",
		"password":   "secret",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create second user status = %d, body %s", resp.StatusCode, body)
	}
	var bob userResponse
	if err := json.Unmarshal(body, &bob); err != nil {
		t.Fatalf("decode user: %v", err)
	}

	// Caregiver profile with a symbolic gender value.
	resp, body = requestJSON(t, client, http.MethodPost, base+"/caregivers", map[string]interface{}{
		"caregiver_user_id": alice.UserID,
		"gender":            "FEMALE",
		"caregiving_type":   "babysitter",
		"hourly_rate":       17.5,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create caregiver status = %d, body %s", resp.StatusCode, body)
	}
	var caregiver caregiverResponse
	if err := json.Unmarshal(body, &caregiver); err != nil {
		t.Fatalf("decode caregiver: %v", err)
	}
	if caregiver.Gender == nil || *caregiver.Gender != "Female" {
		t.Fatalf("gender = %v, want Female", caregiver.Gender)
	}
	if caregiver.CaregivingType == nil || *caregiver.CaregivingType != "Babysitter" {
		t.Fatalf("caregiving_type = %v, want Babysitter", caregiver.CaregivingType)
	}

	// Unknown enum value is rejected with 422.
	resp, body = requestJSON(t, client, http.MethodPut, base+"/caregivers/"+itoa(caregiver.CaregiverUserID), map[string]interface{}{
		"gender": "robot",
	})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("invalid enum status = %d, body %s", resp.StatusCode, body)
	}

	// Member profile and address.
	resp, body = requestJSON(t, client, http.MethodPost, base+"/members", map[string]interface{}{
		"member_user_id": bob.UserID,
		"house_rules":    "no smoking",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create member status = %d, body %s", resp.StatusCode, body)
	}
	var member memberResponse
	if err := json.Unmarshal(body, &member); err != nil {
		t.Fatalf("decode member: %v", err)
	}

	resp, body = requestJSON(t, client, http.MethodPost, base+"/addresses", map[string]interface{}{
		"member_user_id": member.MemberUserID,
		"house_number":   "12",
		"street":         "High Street",
		"town":           "Leeds",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create address status = %d, body %s", resp.StatusCode, body)
	}
	var address addressResponse
	if err := json.Unmarshal(body, &address); err != nil {
		t.Fatalf("decode address: %v", err)
	}
	if address.Town == nil || *address.Town != "Leeds" {
		t.Fatalf("town = %v", address.Town)
	}

	// Job posted by the member with a lowercase type.
	resp, body = requestJSON(t, client, http.MethodPost, base+"/jobs", map[string]interface{}{
		"member_user_id":           member.MemberUserID,
		"required_caregiving_type": "babysitter",
		"other_requirements":       "weekday evenings",
		"date_posted":              "2024-06-01",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create job status = %d, body %s", resp.StatusCode, body)
	}
	var job jobResponse
	if err := json.Unmarshal(body, &job); err != nil {
		t.Fatalf("decode job: %v", err)
	}
	if job.RequiredCaregivingType == nil || *job.RequiredCaregivingType != "Babysitter" {
		t.Fatalf("required_caregiving_type = %v", job.RequiredCaregivingType)
	}

	resp, body = requestJSON(t, client, http.MethodGet, base+"/jobs/member/"+itoa(member.MemberUserID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list jobs by member status = %d, body %s", resp.StatusCode, body)
	}
	var jobsByMember []jobResponse
	if err := json.Unmarshal(body, &jobsByMember); err != nil {
		t.Fatalf("decode jobs: %v", err)
	}
	if len(jobsByMember) != 1 {
		t.Fatalf("jobs by member = %d, want 1", len(jobsByMember))
	}

	// Application keyed by the caregiver/job pair.
	resp, body = requestJSON(t, client, http.MethodPost, base+"/job-applications", map[string]interface{}{
		"caregiver_user_id": caregiver.CaregiverUserID,
		"job_id":            job.JobID,
		"date_applied":      "2024-06-02",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create application status = %d, body %s", resp.StatusCode, body)
	}

	resp, body = requestJSON(t, client, http.MethodGet,
		base+"/job-applications/"+itoa(caregiver.CaregiverUserID)+"/"+itoa(job.JobID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get application status = %d, body %s", resp.StatusCode, body)
	}
	var application jobApplicationResponse
	if err := json.Unmarshal(body, &application); err != nil {
		t.Fatalf("decode application: %v", err)
	}
	if application.DateApplied == nil || *application.DateApplied != "2024-06-02" {
		t.Fatalf("date_applied = %v", application.DateApplied)
	}

	// Appointment with a mixed-case status value.
	resp, body = requestJSON(t, client, http.MethodPost, base+"/appointments", map[string]interface{}{
		"caregiver_user_id": caregiver.CaregiverUserID,
		"member_user_id":    member.MemberUserID,
		"appointment_date":  "2024-06-10",
		"appointment_time":  "14:30",
		"work_hours":        3.0,
		"status":            "Confirm",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create appointment status = %d, body %s", resp.StatusCode, body)
	}
	var appointment appointmentResponse
	if err := json.Unmarshal(body, &appointment); err != nil {
		t.Fatalf("decode appointment: %v", err)
	}
	if appointment.Status == nil || *appointment.Status != "confirm" {
		t.Fatalf("status = %v, want confirm", appointment.Status)
	}
	if appointment.AppointmentTime == nil || *appointment.AppointmentTime != "14:30:00" {
		t.Fatalf("appointment_time = %v, want 14:30:00", appointment.AppointmentTime)
	}

	resp, body = requestJSON(t, client, http.MethodPut, base+"/appointments/"+itoa(appointment.AppointmentID), map[string]interface{}{
		"status": "cancel",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update appointment status = %d, body %s", resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, &appointment); err != nil {
		t.Fatalf("decode appointment: %v", err)
	}
	if appointment.Status == nil || *appointment.Status != "cancel" {
		t.Fatalf("status after update = %v, want cancel", appointment.Status)
	}

	// Deletes cascade through the flow; each second delete is a 404.
	for _, target := range []string{
		"/appointments/" + itoa(appointment.AppointmentID),
		"/job-applications/" + itoa(caregiver.CaregiverUserID) + "/" + itoa(job.JobID),
		"/jobs/" + itoa(job.JobID),
		"/addresses/" + itoa(member.MemberUserID),
		"/members/" + itoa(member.MemberUserID),
		"/caregivers/" + itoa(caregiver.CaregiverUserID),
		"/users/" + itoa(alice.UserID),
		"/users/" + itoa(bob.UserID),
	} {
		resp, body = requestJSON(t, client, http.MethodDelete, base+target, nil)
		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("delete %s status = %d, body %s", target, resp.StatusCode, body)
		}
		resp, _ = requestJSON(t, client, http.MethodDelete, base+target, nil)
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("second delete %s status = %d", target, resp.StatusCode)
		}
	}
}

func itoa(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}
