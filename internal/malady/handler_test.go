package malady_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	maladyDatamodel "github.com/frahmantamala/personnel-management/internal/core/datamodel/malady"
	"github.com/frahmantamala/personnel-management/internal/malady"
	maladyPostgres "github.com/frahmantamala/personnel-management/internal/malady/postgres"
	"github.com/frahmantamala/personnel-management/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Malady Handler Integration", func() {
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
		Expect(db.AutoMigrate(&maladyDatamodel.Malady{})).To(Succeed())

		service := malady.NewService(maladyPostgres.NewMaladyRepository(db), slogger)
		handler := malady.NewHandler(transport.NewBaseHandler(slogger), service)

		router = chi.NewRouter()
		router.Route("/api/maladies", handler.Routes)
	})

	It("creates a record with 201", func() {
		w := do(http.MethodPost, "/api/maladies", malady.MaladyDTO{Nom: "Doe", Prenom: "John", Role: "Employee", Description: "Flu"})
		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(w.Body.String()).To(MatchJSON(`{"id":1,"nom":"Doe","prenom":"John","role":"Employee","description":"Flu"}`))
	})

	It("rejects a whitespace description with 400", func() {
		w := do(http.MethodPost, "/api/maladies", malady.MaladyDTO{Nom: "Doe", Prenom: "John", Description: "  "})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("Description is required"))
	})

	It("returns 404 with the record message for unknown ids", func() {
		w := do(http.MethodGet, "/api/maladies/5", nil)
		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(ContainSubstring("Medical record not found"))
	})

	It("returns 404 for zero and negative ids", func() {
		for _, path := range []string{"/api/maladies/0", "/api/maladies/-3"} {
			w := do(http.MethodGet, path, nil)
			Expect(w.Code).To(Equal(http.StatusNotFound), path)
			Expect(w.Body.String()).To(ContainSubstring("Medical record not found"))
			Expect(do(http.MethodDelete, path, nil).Code).To(Equal(http.StatusNotFound), path)
			Expect(do(http.MethodPut, path, malady.MaladyDTO{Nom: "Doe", Prenom: "John", Description: "Flu"}).Code).
				To(Equal(http.StatusNotFound), path)
		}
	})

	It("updates and deletes with 204", func() {
		do(http.MethodPost, "/api/maladies", malady.MaladyDTO{Nom: "Doe", Prenom: "John", Description: "Flu"})

		w := do(http.MethodPut, "/api/maladies/1", malady.MaladyDTO{Nom: "Doe", Prenom: "John", Description: "Cold"})
		Expect(w.Code).To(Equal(http.StatusNoContent))

		w = do(http.MethodGet, "/api/maladies/1", nil)
		Expect(w.Body.String()).To(ContainSubstring("Cold"))

		Expect(do(http.MethodDelete, "/api/maladies/1", nil).Code).To(Equal(http.StatusNoContent))
		Expect(do(http.MethodDelete, "/api/maladies/1", nil).Code).To(Equal(http.StatusNotFound))
	})

	It("lists by role and by person", func() {
		do(http.MethodPost, "/api/maladies", malady.MaladyDTO{Nom: "Doe", Prenom: "John", Role: "Employee", Description: "Flu"})
		do(http.MethodPost, "/api/maladies", malady.MaladyDTO{Nom: "Smith", Prenom: "Jane", Role: "Manager", Description: "Migraine"})

		var byRole []malady.MaladyResponse
		w := do(http.MethodGet, "/api/maladies/role/Manager", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(json.NewDecoder(w.Body).Decode(&byRole)).To(Succeed())
		Expect(byRole).To(HaveLen(1))
		Expect(byRole[0].Nom).To(Equal("Smith"))

		var byPerson []malady.MaladyResponse
		w = do(http.MethodGet, "/api/maladies/employee/Doe/John", nil)
		Expect(json.NewDecoder(w.Body).Decode(&byPerson)).To(Succeed())
		Expect(byPerson).To(HaveLen(1))
		Expect(byPerson[0].Description).To(Equal("Flu"))
	})
})
