package employee_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/frahmantamala/personnel-management/internal"
	"github.com/frahmantamala/personnel-management/internal/auth"
	employeeDatamodel "github.com/frahmantamala/personnel-management/internal/core/datamodel/employee"
	"github.com/frahmantamala/personnel-management/internal/employee"
	employeePostgres "github.com/frahmantamala/personnel-management/internal/employee/postgres"
	"github.com/frahmantamala/personnel-management/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Employee Handler Integration", func() {
	var router chi.Router

	do := func(method, path string, body interface{}) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&employeeDatamodel.Employee{})).To(Succeed())

		matcher, err := auth.NewPasswordMatcher(internal.PasswordModePlain, 0)
		Expect(err).NotTo(HaveOccurred())
		service := employee.NewService(employeePostgres.NewEmployeeRepository(db), matcher, slogger)
		handler := employee.NewHandler(transport.NewBaseHandler(slogger), service)

		router = chi.NewRouter()
		router.Route("/api/employees", func(r chi.Router) {
			handler.PublicRoutes(r)
			handler.Routes(r)
		})

		w := do(http.MethodPost, "/api/employees/register", employee.RegisterDTO{
			Nom: "Doe", Prenom: "John", Username: "jdoe", Password: "secret1", Tele: "0600",
		})
		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("answers register with the identity only", func() {
		w := do(http.MethodPost, "/api/employees/register", employee.RegisterDTO{
			Nom: "Smith", Prenom: "Jane", Username: "jsmith", Password: "secret1",
		})
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"id":2,"username":"jsmith","role":"Employee","nom":"Smith","prenom":"Jane"}`))
	})

	It("rejects a duplicate username with 400", func() {
		w := do(http.MethodPost, "/api/employees/register", employee.RegisterDTO{
			Nom: "Other", Prenom: "Person", Username: "jdoe", Password: "secret1",
		})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("Username already exists"))
	})

	It("returns 404 for zero and negative ids", func() {
		for _, path := range []string{"/api/employees/0", "/api/employees/-3"} {
			w := do(http.MethodGet, path, nil)
			Expect(w.Code).To(Equal(http.StatusNotFound), path)
			Expect(w.Body.String()).To(ContainSubstring("Employee not found"))
			Expect(do(http.MethodDelete, path, nil).Code).To(Equal(http.StatusNotFound), path)
			Expect(do(http.MethodPut, path, employee.UpdateEmployeeDTO{Tele: "0700"}).Code).
				To(Equal(http.StatusNotFound), path)
		}
	})

	It("never exposes passwords", func() {
		for _, path := range []string{"/api/employees", "/api/employees/1", "/api/employees/search?searchTerm=doe"} {
			w := do(http.MethodGet, path, nil)
			Expect(w.Code).To(Equal(http.StatusOK), path)
			Expect(w.Body.String()).NotTo(ContainSubstring("password"), path)
			Expect(w.Body.String()).NotTo(ContainSubstring("secret1"), path)
		}
	})

	It("wraps search results with a count and full names", func() {
		w := do(http.MethodGet, "/api/employees/search?searchTerm=JOHN", nil)
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp employee.SearchResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.TotalCount).To(Equal(1))
		Expect(resp.Employees[0].FullName).To(Equal("Doe John"))
		Expect(resp.Employees[0].Tele).To(Equal("0600"))
	})

	It("applies a partial update with 204", func() {
		w := do(http.MethodPut, "/api/employees/1", map[string]string{"address": "1 Main St"})
		Expect(w.Code).To(Equal(http.StatusNoContent))

		var fetched employee.EmployeeResponse
		w = do(http.MethodGet, "/api/employees/1", nil)
		Expect(json.NewDecoder(w.Body).Decode(&fetched)).To(Succeed())
		Expect(fetched.Address).To(Equal("1 Main St"))
		Expect(fetched.Tele).To(Equal("0600"))
	})

	It("returns 404 for unknown employees", func() {
		Expect(do(http.MethodGet, "/api/employees/42", nil).Code).To(Equal(http.StatusNotFound))
		Expect(do(http.MethodPut, "/api/employees/42", map[string]string{"nom": "X"}).Code).To(Equal(http.StatusNotFound))
		Expect(do(http.MethodDelete, "/api/employees/42", nil).Code).To(Equal(http.StatusNotFound))
	})

	It("deletes with 204", func() {
		Expect(do(http.MethodDelete, "/api/employees/1", nil).Code).To(Equal(http.StatusNoContent))
		Expect(do(http.MethodGet, "/api/employees/1", nil).Code).To(Equal(http.StatusNotFound))
	})
})
