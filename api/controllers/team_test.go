package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/feedbacklink-io/feedbacklink-backend/internal/team"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/enums"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/models"
)

type stubTeamService struct {
	addResp  *models.User
	addErr   error
	lastAdd  team.AddEmployeeRequest
	teamResp *team.TeamResponse
	dirResp  *team.DirectoryResponse
}

func (s *stubTeamService) AddEmployee(_ context.Context, _ string, req team.AddEmployeeRequest) (*models.User, error) {
	s.lastAdd = req
	return s.addResp, s.addErr
}

func (s *stubTeamService) TeamMembers(context.Context, string) (*team.TeamResponse, error) {
	return s.teamResp, nil
}

func (s *stubTeamService) Directory(context.Context, string) (*team.DirectoryResponse, error) {
	return s.dirResp, nil
}

func TestTeamAddEmployee(t *testing.T) {
	managerID := "1"
	svc := &stubTeamService{
		addResp: &models.User{ID: "9", Name: "New Hire", Role: enums.RoleEmployee, ManagerID: &managerID},
	}
	handler := TeamAddEmployee(svc, nil)

	body := `{"name":"New Hire","email":"hire@company.com"}`
	req := httptest.NewRequest(http.MethodPost, "/team/employees", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, withSession(req, "sess-1"))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastAdd.Email != "hire@company.com" {
		t.Fatalf("unexpected forwarded email %s", svc.lastAdd.Email)
	}
}

func TestTeamAddEmployeeRejectsBadEmail(t *testing.T) {
	handler := TeamAddEmployee(&stubTeamService{}, nil)

	body := `{"name":"New Hire","email":"not-an-email"}`
	req := httptest.NewRequest(http.MethodPost, "/team/employees", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, withSession(req, "sess-1"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestTeamMembers(t *testing.T) {
	svc := &stubTeamService{
		teamResp: &team.TeamResponse{Members: []models.User{{ID: "2"}, {ID: "3"}}},
	}
	handler := TeamMembers(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/team", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, withSession(req, "sess-1"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Data team.TeamResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Members) != 2 {
		t.Fatalf("expected 2 members got %d", len(envelope.Data.Members))
	}
}
