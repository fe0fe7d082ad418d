package holiday_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sort"

	"github.com/frahmantamala/personnel-management/internal"
	holidayDatamodel "github.com/frahmantamala/personnel-management/internal/core/datamodel/holiday"
	"github.com/frahmantamala/personnel-management/internal/holiday"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// MockRepository keeps holidays in memory.
type MockRepository struct {
	holidays   map[int64]*holidayDatamodel.Holiday
	nextID     int64
	shouldFail bool
	failError  error
	vanish     bool
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		holidays: make(map[int64]*holidayDatamodel.Holiday),
		nextID:   1,
	}
}

func (m *MockRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

func (m *MockRepository) GetAll(_ context.Context) ([]*holidayDatamodel.Holiday, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	result := make([]*holidayDatamodel.Holiday, 0, len(m.holidays))
	for _, h := range m.holidays {
		copied := *h
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DateDebut.Before(result[j].DateDebut) })
	return result, nil
}

func (m *MockRepository) GetByID(_ context.Context, id int64) (*holidayDatamodel.Holiday, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	h, ok := m.holidays[id]
	if !ok {
		return nil, nil
	}
	copied := *h
	return &copied, nil
}

func (m *MockRepository) GetByPerson(_ context.Context, nom, prenom string) ([]*holidayDatamodel.Holiday, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var result []*holidayDatamodel.Holiday
	for _, h := range m.holidays {
		if h.Nom == nom && h.Prenom == prenom {
			copied := *h
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DateDebut.After(result[j].DateDebut) })
	return result, nil
}

func (m *MockRepository) Create(_ context.Context, h *holidayDatamodel.Holiday) error {
	if m.shouldFail {
		return m.failError
	}
	h.ID = m.nextID
	m.nextID++
	copied := *h
	m.holidays[h.ID] = &copied
	return nil
}

func (m *MockRepository) Update(_ context.Context, h *holidayDatamodel.Holiday) error {
	if m.shouldFail {
		return m.failError
	}
	if _, ok := m.holidays[h.ID]; !ok || m.vanish {
		return holiday.ErrNotFound
	}
	copied := *h
	m.holidays[h.ID] = &copied
	return nil
}

func (m *MockRepository) Delete(_ context.Context, id int64) error {
	if m.shouldFail {
		return m.failError
	}
	if _, ok := m.holidays[id]; !ok {
		return holiday.ErrNotFound
	}
	delete(m.holidays, id)
	return nil
}

func holidayDTO(nom, prenom, start, end string) holiday.HolidayDTO {
	return holiday.HolidayDTO{
		Nom:       nom,
		Prenom:    prenom,
		Role:      "Employee",
		DateDebut: holiday.Date{Time: day(start)},
		DateFin:   holiday.Date{Time: day(end)},
	}
}

var _ = Describe("Holiday Service", func() {
	var (
		mockRepo *MockRepository
		service  *holiday.Service
		ctx      context.Context
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = holiday.NewService(mockRepo, logger)
		ctx = context.Background()
	})

	Describe("Create", func() {
		It("stores a valid holiday and assigns an id", func() {
			created, err := service.Create(ctx, holidayDTO("Doe", "John", "2024-01-10", "2024-01-15"))
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).To(BeNumerically(">", 0))
			Expect(created.DateDebut).To(Equal(day("2024-01-10")))
		})

		It("rejects an overlapping range for the same person", func() {
			_, err := service.Create(ctx, holidayDTO("Doe", "John", "2024-01-10", "2024-01-15"))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(ctx, holidayDTO("Doe", "John", "2024-01-14", "2024-01-20"))
			Expect(err).To(MatchError(internal.ErrHolidayOverlap))

			_, err = service.Create(ctx, holidayDTO("Doe", "John", "2024-01-16", "2024-01-20"))
			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.holidays).To(HaveLen(2))
		})

		It("allows the same range for a different person", func() {
			_, err := service.Create(ctx, holidayDTO("Doe", "John", "2024-01-10", "2024-01-15"))
			Expect(err).NotTo(HaveOccurred())
			_, err = service.Create(ctx, holidayDTO("Doe", "Jane", "2024-01-10", "2024-01-15"))
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects an end date before the start date even without conflicts", func() {
			_, err := service.Create(ctx, holidayDTO("Doe", "John", "2024-01-15", "2024-01-10"))
			Expect(err).To(MatchError(internal.ErrInvalidRange))
			Expect(mockRepo.holidays).To(BeEmpty())
		})

		It("leaves stored holidays untouched on conflict", func() {
			first, err := service.Create(ctx, holidayDTO("Doe", "John", "2024-01-10", "2024-01-15"))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(ctx, holidayDTO("Doe", "John", "2024-01-01", "2024-01-31"))
			Expect(err).To(HaveOccurred())

			stored := mockRepo.holidays[first.ID]
			Expect(stored.DateDebut).To(Equal(day("2024-01-10")))
			Expect(stored.DateFin).To(Equal(day("2024-01-15")))
		})

		It("wraps repository failures", func() {
			mockRepo.SetShouldFail(true, errors.New("database error"))
			_, err := service.Create(ctx, holidayDTO("Doe", "John", "2024-01-10", "2024-01-15"))
			Expect(err).To(HaveOccurred())
			_, isAppErr := internal.IsAppError(err)
			Expect(isAppErr).To(BeFalse())
		})
	})

	Describe("Update", func() {
		var existing *holiday.Holiday

		BeforeEach(func() {
			var err error
			existing, err = service.Create(ctx, holidayDTO("Doe", "John", "2024-01-10", "2024-01-15"))
			Expect(err).NotTo(HaveOccurred())
		})

		It("does not conflict with its own unchanged range", func() {
			err := service.Update(ctx, existing.ID, holidayDTO("Doe", "John", "2024-01-10", "2024-01-15"))
			Expect(err).NotTo(HaveOccurred())
		})

		It("replaces every field", func() {
			dto := holidayDTO("Doe", "Johnny", "2024-02-01", "2024-02-03")
			dto.Role = ""
			Expect(service.Update(ctx, existing.ID, dto)).To(Succeed())

			stored := mockRepo.holidays[existing.ID]
			Expect(stored.Prenom).To(Equal("Johnny"))
			Expect(stored.Role).To(BeEmpty())
			Expect(stored.DateFin).To(Equal(day("2024-02-03")))
		})

		It("rejects a range colliding with another holiday of the person", func() {
			other, err := service.Create(ctx, holidayDTO("Doe", "John", "2024-03-01", "2024-03-05"))
			Expect(err).NotTo(HaveOccurred())

			err = service.Update(ctx, other.ID, holidayDTO("Doe", "John", "2024-01-15", "2024-03-05"))
			Expect(err).To(MatchError(internal.ErrHolidayOverlap))
		})

		It("returns not found for an unknown id", func() {
			err := service.Update(ctx, 999, holidayDTO("Doe", "John", "2024-05-01", "2024-05-02"))
			Expect(err).To(MatchError(internal.ErrHolidayNotFound))
		})

		It("reports not found when the row disappears before the write", func() {
			mockRepo.vanish = true
			err := service.Update(ctx, existing.ID, holidayDTO("Doe", "John", "2024-05-01", "2024-05-02"))
			Expect(err).To(MatchError(internal.ErrHolidayNotFound))
		})

		It("validates date ordering", func() {
			err := service.Update(ctx, existing.ID, holidayDTO("Doe", "John", "2024-05-02", "2024-05-01"))
			Expect(err).To(MatchError(internal.ErrInvalidRange))
		})
	})

	Describe("Delete", func() {
		It("returns not found for an unknown id", func() {
			Expect(service.Delete(ctx, 42)).To(MatchError(internal.ErrHolidayNotFound))
		})

		It("removes an existing holiday", func() {
			created, err := service.Create(ctx, holidayDTO("Doe", "John", "2024-01-10", "2024-01-15"))
			Expect(err).NotTo(HaveOccurred())
			Expect(service.Delete(ctx, created.ID)).To(Succeed())

			_, err = service.GetByID(ctx, created.ID)
			Expect(err).To(MatchError(internal.ErrHolidayNotFound))
		})
	})

	Describe("List", func() {
		It("returns an empty slice when nothing is stored", func() {
			holidays, err := service.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(holidays).To(BeEmpty())
		})

		It("orders by start date", func() {
			_, _ = service.Create(ctx, holidayDTO("Doe", "John", "2024-06-01", "2024-06-02"))
			_, _ = service.Create(ctx, holidayDTO("Smith", "Jane", "2024-01-01", "2024-01-02"))

			holidays, err := service.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(holidays).To(HaveLen(2))
			Expect(holidays[0].Nom).To(Equal("Smith"))
		})
	})
})
