package auth_test

import (
	"strings"
	"time"

	"github.com/frahmantamala/personnel-management/internal"
	"github.com/frahmantamala/personnel-management/internal/auth"
	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const testSecret = "0123456789abcdef0123456789abcdef-test"

var _ = Describe("TokenIssuer", func() {
	var issuer *auth.TokenIssuer

	BeforeEach(func() {
		issuer = auth.NewTokenIssuer(testSecret)
	})

	It("encodes name, role and UserId with a one day lifetime", func() {
		before := time.Now()
		token, err := issuer.IssueToken(auth.TokenSubject{UserID: 7, Username: "jdoe", Role: "Employee"})
		Expect(err).NotTo(HaveOccurred())
		Expect(strings.Count(token, ".")).To(Equal(2))

		claims, err := issuer.ValidateToken(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims.Name).To(Equal("jdoe"))
		Expect(claims.Role).To(Equal("Employee"))
		Expect(claims.UserID).To(Equal("7"))
		Expect(claims.ExpiresAt.Time).To(BeTemporally("~", before.Add(24*time.Hour), 5*time.Second))
	})

	It("signs with HS512 and the raw claim names", func() {
		token, err := issuer.IssueToken(auth.TokenSubject{UserID: 7, Username: "jdoe", Role: "Employee"})
		Expect(err).NotTo(HaveOccurred())

		mapClaims := jwt.MapClaims{}
		parsed, err := jwt.ParseWithClaims(token, mapClaims, func(t *jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(parsed.Method.Alg()).To(Equal("HS512"))
		Expect(mapClaims).To(HaveKeyWithValue("UserId", "7"))
		Expect(mapClaims).To(HaveKeyWithValue("name", "jdoe"))
		Expect(mapClaims).To(HaveKeyWithValue("role", "Employee"))
	})

	It("rejects a token signed with another secret", func() {
		other := auth.NewTokenIssuer("another-secret-that-is-32-chars-long!!")
		token, err := other.IssueToken(auth.TokenSubject{UserID: 1, Username: "a", Role: "Employee"})
		Expect(err).NotTo(HaveOccurred())

		_, err = issuer.ValidateToken(token)
		Expect(err).To(MatchError(internal.ErrInvalidToken))
	})

	It("reports expiry", func() {
		past := time.Now().Add(-48 * time.Hour)
		stale := auth.NewTokenIssuer(testSecret).WithClock(func() time.Time { return past })
		token, err := stale.IssueToken(auth.TokenSubject{UserID: 1, Username: "a", Role: "Employee"})
		Expect(err).NotTo(HaveOccurred())

		_, err = issuer.ValidateToken(token)
		Expect(err).To(MatchError(internal.ErrTokenExpired))
	})

	It("rejects garbage", func() {
		_, err := issuer.ValidateToken("not-a-token")
		Expect(err).To(MatchError(internal.ErrInvalidToken))
	})
})

var _ = Describe("PasswordMatcher", func() {
	It("compares plain passwords exactly", func() {
		m, err := auth.NewPasswordMatcher(internal.PasswordModePlain, 0)
		Expect(err).NotTo(HaveOccurred())

		stored, err := m.Hash("secret1")
		Expect(err).NotTo(HaveOccurred())
		Expect(stored).To(Equal("secret1"))
		Expect(m.Matches(stored, "secret1")).To(BeTrue())
		Expect(m.Matches(stored, "Secret1")).To(BeFalse())
	})

	It("defaults to plain mode", func() {
		m, err := auth.NewPasswordMatcher("", 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Mode()).To(Equal(internal.PasswordModePlain))
	})

	It("hashes and verifies in bcrypt mode", func() {
		m, err := auth.NewPasswordMatcher(internal.PasswordModeBcrypt, 10)
		Expect(err).NotTo(HaveOccurred())

		stored, err := m.Hash("secret1")
		Expect(err).NotTo(HaveOccurred())
		Expect(stored).NotTo(Equal("secret1"))
		Expect(m.Matches(stored, "secret1")).To(BeTrue())
		Expect(m.Matches(stored, "secret2")).To(BeFalse())
	})

	It("rejects an unknown mode", func() {
		_, err := auth.NewPasswordMatcher("md5", 0)
		Expect(err).To(HaveOccurred())
	})
})
