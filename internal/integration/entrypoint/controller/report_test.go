package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alumni-portal/backoffice/internal/application/usecase/report"
	"github.com/alumni-portal/backoffice/internal/application/usecase/settings"
	"github.com/alumni-portal/backoffice/internal/domain/entity"
	domainerror "github.com/alumni-portal/backoffice/internal/domain/error"
	"github.com/alumni-portal/backoffice/internal/integration/entrypoint/dto"
	"github.com/alumni-portal/backoffice/internal/integration/export"
)

type stubDonationRepository struct {
	donations []*entity.Donation
	err       error
}

func (s *stubDonationRepository) Create(ctx context.Context, d *entity.Donation) error { return nil }
func (s *stubDonationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	return nil, domainerror.ErrDonationNotFound
}
func (s *stubDonationRepository) FindAll(ctx context.Context) ([]*entity.Donation, error) {
	return s.donations, s.err
}
func (s *stubDonationRepository) Update(ctx context.Context, d *entity.Donation) error { return nil }
func (s *stubDonationRepository) Delete(ctx context.Context, id uuid.UUID) error       { return nil }

type stubSignatoryStore struct {
	signatory entity.Signatory
	found     bool
	err       error
}

func (s *stubSignatoryStore) Get(ctx context.Context) (entity.Signatory, bool, error) {
	return s.signatory, s.found, s.err
}

func (s *stubSignatoryStore) Save(ctx context.Context, signatory entity.Signatory) error {
	if s.err != nil {
		return s.err
	}
	s.signatory, s.found = signatory, true
	return nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newReportRouter(t *testing.T, repo *stubDonationRepository, store *stubSignatoryStore) *gin.Engine {
	t.Helper()

	exporter, err := export.NewReportExporter(export.DocumentConfig{
		Title:            "Donation Report",
		BannerURL:        "/assets/banner.png",
		ClosingStatement: "Thank you.",
	}, "en", "₱")
	if err != nil {
		t.Fatalf("failed to create exporter: %v", err)
	}

	getSignatory := settings.NewGetSignatoryUseCase(store, entity.Signatory{Name: "Default Treasurer"})
	c := NewReportController(
		report.NewGenerateReportUseCase(repo),
		report.NewExportDetailedCSVUseCase(repo, exporter, nil),
		report.NewExportSummaryCSVUseCase(repo, exporter, nil),
		report.NewExportDocumentUseCase(repo, exporter, nil),
		nil,
		getSignatory,
	)

	router := gin.New()
	router.GET("/reports/donations", c.Generate)
	router.GET("/reports/donations/export/detailed", c.ExportDetailed)
	router.GET("/reports/donations/export/summary", c.ExportSummary)
	router.GET("/reports/donations/export/document", c.ExportDocument)
	return router
}

func sampleDonations() []*entity.Donation {
	return []*entity.Donation{
		entity.NewDonation("Maria Santos", decimal.NewFromInt(1000), "PHP", "Books", entity.DonationCategoryLibrary, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		entity.NewDonation("Jose Rizal", decimal.NewFromInt(5000), "PHP", "Grants", entity.DonationCategoryScholarship, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)),
	}
}

func serve(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var response dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode error response %q: %v", w.Body.String(), err)
	}
	return response
}

func TestReportController_Generate(t *testing.T) {
	router := newReportRouter(t, &stubDonationRepository{donations: sampleDonations()}, &stubSignatoryStore{})

	w := serve(router, "/reports/donations?category=Library+Fund")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response dto.ReportResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Count != 1 || response.TotalAmount != "1000.00" {
		t.Errorf("expected 1 donation totalling 1000.00, got %d / %s", response.Count, response.TotalAmount)
	}
	if len(response.ByMonth) != 1 || response.ByMonth[0].Key != "2024-03" {
		t.Errorf("unexpected monthly breakdown %+v", response.ByMonth)
	}
}

func TestReportController_InvalidQuery(t *testing.T) {
	router := newReportRouter(t, &stubDonationRepository{donations: sampleDonations()}, &stubSignatoryStore{})

	tests := []struct {
		name   string
		target string
	}{
		{"bad date", "/reports/donations?start_date=March"},
		{"inverted range", "/reports/donations?start_date=2024-05-01&end_date=2024-01-01"},
		{"unknown section", "/reports/donations/export/summary?sections=category,weekly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, tt.target)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", w.Code)
			}
			if code := decodeError(t, w).Code; code != string(domainerror.ErrCodeInvalidReportFilter) {
				t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidReportFilter, code)
			}
		})
	}
}

func TestReportController_StoreUnavailable(t *testing.T) {
	router := newReportRouter(t, &stubDonationRepository{err: errors.New("connection refused")}, &stubSignatoryStore{})

	w := serve(router, "/reports/donations")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}
	response := decodeError(t, w)
	if response.Code != string(domainerror.ErrCodeReportDataUnavailable) {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeReportDataUnavailable, response.Code)
	}
	if !response.Retryable {
		t.Error("expected retryable response")
	}
}

func TestReportController_ExportDetailed(t *testing.T) {
	router := newReportRouter(t, &stubDonationRepository{donations: sampleDonations()}, &stubSignatoryStore{})

	w := serve(router, "/reports/donations/export/detailed")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv") {
		t.Errorf("expected text/csv, got %s", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "attachment; filename=\"donation-report-detailed-") {
		t.Errorf("unexpected Content-Disposition %s", w.Header().Get("Content-Disposition"))
	}
	if !strings.HasPrefix(w.Body.String(), "Date,Donor Name,Email,Amount") {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestReportController_EmptyExport(t *testing.T) {
	router := newReportRouter(t, &stubDonationRepository{donations: sampleDonations()}, &stubSignatoryStore{})

	for _, target := range []string{
		"/reports/donations/export/detailed?donor=nobody",
		"/reports/donations/export/summary?donor=nobody",
		"/reports/donations/export/document?donor=nobody",
	} {
		w := serve(router, target)
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("%s: expected status 422, got %d", target, w.Code)
			continue
		}
		if code := decodeError(t, w).Code; code != string(domainerror.ErrCodeEmptyExport) {
			t.Errorf("%s: expected code %s, got %s", target, domainerror.ErrCodeEmptyExport, code)
		}
	}
}

func TestReportController_ExportDocument(t *testing.T) {
	store := &stubSignatoryStore{signatory: entity.Signatory{Name: "Ana Reyes", Title: "Treasurer"}, found: true}
	router := newReportRouter(t, &stubDonationRepository{donations: sampleDonations()}, store)

	w := serve(router, "/reports/donations/export/document?sections=category")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/html") {
		t.Errorf("expected text/html, got %s", w.Header().Get("Content-Type"))
	}
	body := w.Body.String()
	if !strings.Contains(body, "Ana Reyes") {
		t.Error("expected saved signatory in document")
	}
	if strings.Contains(body, "Monthly Breakdown") {
		t.Error("expected monthly section to be omitted")
	}
}

func TestReportController_DocumentSignatoryUnavailable(t *testing.T) {
	store := &stubSignatoryStore{err: errors.New("redis down")}
	router := newReportRouter(t, &stubDonationRepository{donations: sampleDonations()}, store)

	w := serve(router, "/reports/donations/export/document")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}
	if code := decodeError(t, w).Code; code != string(domainerror.ErrCodeSettingsStoreFailure) {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeSettingsStoreFailure, code)
	}
}
