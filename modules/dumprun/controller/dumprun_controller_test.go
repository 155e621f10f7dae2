package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/YourPalZack/junk-t/core/validation"
	"github.com/YourPalZack/junk-t/modules/dumprun/dto"
	"github.com/YourPalZack/junk-t/modules/dumprun/repository"
	"github.com/YourPalZack/junk-t/modules/dumprun/service"

	"github.com/labstack/echo/v4"
)

func setup(t *testing.T) (*echo.Echo, *service.DumpRunService) {
	t.Helper()
	e := echo.New()
	e.Validator = validation.NewRequestValidator()

	svc := service.NewDumpRunService(repository.NewDumpRunRepository())
	ctrl := NewDumpRunController(svc)
	g := e.Group("/api")
	g.GET("/group-dump-runs", ctrl.ListRuns)
	g.POST("/group-dump-reservations", ctrl.ReserveSpot)
	return e, svc
}

func seedRun(t *testing.T, svc *service.DumpRunService, date string, capacity int) int64 {
	t.Helper()
	run, appErr := svc.CreateRun(context.Background(), &dto.CreateRunRequest{RunDate: date, Capacity: capacity})
	if appErr != nil {
		t.Fatalf("CreateRun: %v", appErr)
	}
	return run.ID
}

func reservationBody(runID int64) string {
	return `{"name":"Jane Doe","email":"jane@example.com","phone":"2065550123",` +
		`"date":"2023-06-06","loadSize":"small","notes":"couch and boxes","groupDumpRunId":` +
		jsonInt(runID) + `}`
}

func jsonInt(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func TestListRunsEmpty(t *testing.T) {
	e, _ := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/group-dump-runs", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Data []dto.GroupDumpRunResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Data) != 0 {
		t.Fatalf("expected empty run list, got %d", len(resp.Data))
	}
}

func TestListRunsSorted(t *testing.T) {
	e, svc := setup(t)
	seedRun(t, svc, "2023-06-28", 8)
	seedRun(t, svc, "2023-06-06", 8)

	req := httptest.NewRequest(http.MethodGet, "/api/group-dump-runs", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp struct {
		Data []dto.GroupDumpRunResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Data) != 2 || resp.Data[0].RunDate != "2023-06-06" {
		t.Fatalf("expected earliest run first, got %+v", resp.Data)
	}
}

func TestReserveSpotCreated(t *testing.T) {
	e, svc := setup(t)
	runID := seedRun(t, svc, "2023-06-06", 8)

	req := httptest.NewRequest(http.MethodPost, "/api/group-dump-reservations", strings.NewReader(reservationBody(runID)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	runs, _ := svc.ListRuns(context.Background())
	if runs[0].SpotsRemaining != 7 {
		t.Fatalf("expected 7 spots remaining after reservation, got %d", runs[0].SpotsRemaining)
	}
}

func TestReserveSpotUnknownRunIs404(t *testing.T) {
	e, _ := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/api/group-dump-reservations", strings.NewReader(reservationBody(42)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestReserveSpotFullRunIs400(t *testing.T) {
	e, svc := setup(t)
	runID := seedRun(t, svc, "2023-06-14", 1)

	req := httptest.NewRequest(http.MethodPost, "/api/group-dump-reservations", strings.NewReader(reservationBody(runID)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first reservation: expected 201, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/group-dump-reservations", strings.NewReader(reservationBody(runID)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "NO_CAPACITY") {
		t.Fatalf("expected NO_CAPACITY code in body, got %s", rec.Body.String())
	}
}

func TestReserveSpotValidation(t *testing.T) {
	e, svc := setup(t)
	runID := seedRun(t, svc, "2023-06-06", 8)
	_ = runID

	body := `{"name":"J","email":"not-an-email","phone":"123","date":"2023-06-06","loadSize":"huge","groupDumpRunId":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/group-dump-reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	for _, field := range []string{"name", "email", "phone", "loadSize"} {
		if !strings.Contains(rec.Body.String(), field) {
			t.Errorf("expected %s violation in body, got %s", field, rec.Body.String())
		}
	}

	runs, _ := svc.ListRuns(context.Background())
	if runs[0].SpotsRemaining != 8 {
		t.Fatalf("validation failure must not consume a spot, got %d remaining", runs[0].SpotsRemaining)
	}
}
