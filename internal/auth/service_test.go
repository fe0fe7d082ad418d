package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/frahmantamala/personnel-management/internal"
	"github.com/frahmantamala/personnel-management/internal/auth"
	employeeDatamodel "github.com/frahmantamala/personnel-management/internal/core/datamodel/employee"
	"github.com/frahmantamala/personnel-management/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type MockCredentialRepository struct {
	employees  map[string]*employeeDatamodel.Employee
	shouldFail bool
	failError  error
}

func NewMockCredentialRepository() *MockCredentialRepository {
	return &MockCredentialRepository{employees: make(map[string]*employeeDatamodel.Employee)}
}

func (m *MockCredentialRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

func (m *MockCredentialRepository) GetByUsername(_ context.Context, username string) (*employeeDatamodel.Employee, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	e, ok := m.employees[username]
	if !ok {
		return nil, nil
	}
	return e, nil
}

var _ = Describe("Auth Service", func() {
	var (
		repo    *MockCredentialRepository
		service *auth.Service
		issuer  *auth.TokenIssuer
		logger  *slog.Logger
	)

	BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		repo = NewMockCredentialRepository()
		repo.employees["jdoe"] = &employeeDatamodel.Employee{
			ID: 7, Nom: "Doe", Prenom: "John", Username: "jdoe", Password: "secret1", Role: "Employee",
		}
		issuer = auth.NewTokenIssuer(testSecret)
		matcher, err := auth.NewPasswordMatcher(internal.PasswordModePlain, 0)
		Expect(err).NotTo(HaveOccurred())
		service = auth.NewService(repo, issuer, matcher, logger)
	})

	Describe("Login", func() {
		It("returns a token and the employee identity", func() {
			resp, err := service.Login(context.Background(), auth.LoginDTO{Username: "jdoe", Password: "secret1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.UserID).To(Equal(int64(7)))
			Expect(resp.Role).To(Equal("Employee"))
			Expect(resp.Nom).To(Equal("Doe"))
			Expect(resp.Prenom).To(Equal("John"))

			claims, err := issuer.ValidateToken(resp.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal("7"))
		})

		DescribeTable("rejects bad credentials with the same message",
			func(username, password string) {
				_, err := service.Login(context.Background(), auth.LoginDTO{Username: username, Password: password})
				Expect(err).To(MatchError(internal.ErrInvalidCredentials))
				Expect(err.Error()).To(Equal("Invalid username or password"))
			},
			Entry("wrong password", "jdoe", "secret2"),
			Entry("unknown user", "nobody", "secret1"),
			Entry("case differs", "JDOE", "secret1"),
		)

		It("requires both fields", func() {
			_, err := service.Login(context.Background(), auth.LoginDTO{Username: "jdoe"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(err.Error()).To(ContainSubstring("password"))
		})

		It("does not mask storage failures as bad credentials", func() {
			repo.SetShouldFail(true, errors.New("connection refused"))
			_, err := service.Login(context.Background(), auth.LoginDTO{Username: "jdoe", Password: "secret1"})
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, internal.ErrInvalidCredentials)).To(BeFalse())
		})
	})

	Describe("Handler", func() {
		var handler *auth.Handler

		BeforeEach(func() {
			handler = auth.NewHandler(transport.NewBaseHandler(logger), service)
		})

		It("answers login with 200 and camelCase fields", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/employees/login", strings.NewReader(`{"username":"jdoe","password":"secret1"}`))
			w := httptest.NewRecorder()
			handler.Login(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var body map[string]interface{}
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body).To(HaveKey("token"))
			Expect(body).To(HaveKeyWithValue("userId", BeNumerically("==", 7)))
			Expect(body).To(HaveKeyWithValue("username", "jdoe"))
			Expect(body).NotTo(HaveKey("password"))
		})

		It("answers a wrong password with 400", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/employees/login", strings.NewReader(`{"username":"jdoe","password":"nope"}`))
			w := httptest.NewRecorder()
			handler.Login(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("Invalid username or password"))
		})

		Describe("AuthMiddleware", func() {
			var (
				seenUser string
				seenRole string
				guarded  http.Handler
			)

			BeforeEach(func() {
				seenUser, seenRole = "", ""
				guarded = handler.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					seenUser = internal.UserIDFromContext(r.Context())
					seenRole = internal.RoleFromContext(r.Context())
					w.WriteHeader(http.StatusOK)
				}))
			})

			It("rejects a request without a token", func() {
				w := httptest.NewRecorder()
				guarded.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/holidays", nil))
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})

			It("rejects an invalid token", func() {
				req := httptest.NewRequest(http.MethodGet, "/api/holidays", nil)
				req.Header.Set("Authorization", "Bearer garbage")
				w := httptest.NewRecorder()
				guarded.ServeHTTP(w, req)
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})

			It("passes the identity down", func() {
				token, err := issuer.IssueToken(auth.TokenSubject{UserID: 7, Username: "jdoe", Role: "Admin"})
				Expect(err).NotTo(HaveOccurred())

				req := httptest.NewRequest(http.MethodGet, "/api/holidays", nil)
				req.Header.Set("Authorization", "Bearer "+token)
				w := httptest.NewRecorder()
				guarded.ServeHTTP(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(seenUser).To(Equal("7"))
				Expect(seenRole).To(Equal("Admin"))
			})
		})
	})
})
