package roster_test

import (
	"context"
	"errors"
	"sync"
	"time"

	apperrors "github.com/frahmantamala/hr-dashboard/internal"
	"github.com/frahmantamala/hr-dashboard/internal/employee"
	"github.com/frahmantamala/hr-dashboard/internal/roster"
	"github.com/frahmantamala/hr-dashboard/internal/store"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type stubFetcher struct {
	mu      sync.Mutex
	people  []roster.RawPerson
	err     error
	calls   int
	release chan struct{}
}

func (f *stubFetcher) FetchPeople(ctx context.Context) ([]roster.RawPerson, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.release != nil {
		<-f.release
	}
	return f.people, f.err
}

func (f *stubFetcher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type blockingFetcher struct{}

func (blockingFetcher) FetchPeople(ctx context.Context) ([]roster.RawPerson, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

var _ = Describe("Loader", func() {
	var (
		fetcher *stubFetcher
		s       *store.Store
		loader  *roster.Loader
	)

	BeforeEach(func() {
		fetcher = &stubFetcher{people: []roster.RawPerson{{ID: 1, FirstName: "A"}, {ID: 2, FirstName: "B"}}}
		s = store.New(store.WithLogger(quietLogger()))
		loader = roster.NewLoader(fetcher, roster.NewGenerator(11), s, quietLogger())
	})

	It("replaces the collection and clears the loading flag", func() {
		Expect(loader.Load(context.Background())).To(Succeed())

		st := s.State()
		Expect(st.Employees).To(HaveLen(2))
		Expect(st.Employees[0].ID).To(Equal(int64(1)))
		Expect(st.Loading).To(BeFalse())
		Expect(st.Error).To(BeNil())
	})

	It("sets a readable error and keeps the collection on failure", func() {
		existing := []employee.Employee{{ID: 9, FirstName: "Kept"}}
		s.SetEmployees(existing)
		fetcher.err = errors.New("connection refused")

		err := loader.Load(context.Background())
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, apperrors.ErrRosterUnavailable)).To(BeTrue())

		st := s.State()
		Expect(st.Employees).To(Equal(existing))
		Expect(st.Loading).To(BeFalse())
		Expect(st.Error).NotTo(BeNil())
		Expect(*st.Error).To(Equal("Failed to fetch employees"))
	})

	It("clears a previous error when a retry succeeds", func() {
		fetcher.err = errors.New("timeout")
		Expect(loader.Load(context.Background())).NotTo(Succeed())

		fetcher.err = nil
		Expect(loader.Load(context.Background())).To(Succeed())
		Expect(s.State().Error).To(BeNil())
	})

	It("reports loading while the fetch is in flight", func() {
		fetcher.release = make(chan struct{})
		loader.Start(context.Background())

		Eventually(func() bool { return s.State().Loading }).Should(BeTrue())
		close(fetcher.release)
		Eventually(func() bool { return s.State().Loading }).Should(BeFalse())
		Expect(s.EmployeeCount()).To(Equal(2))
	})

	It("skips the fetch when the store already has employees", func() {
		s.SetEmployees([]employee.Employee{{ID: 1}})
		Expect(loader.LoadIfEmpty(context.Background())).To(Succeed())
		Expect(fetcher.Calls()).To(BeZero())
	})

	It("shares one fetch between overlapping loads", func() {
		fetcher.release = make(chan struct{})

		results := make(chan error, 2)
		go func() { results <- loader.Load(context.Background()) }()
		Eventually(fetcher.Calls).Should(Equal(1))
		go func() { results <- loader.Load(context.Background()) }()

		Consistently(func() bool { return s.State().Loading }, 50*time.Millisecond).Should(BeTrue())
		close(fetcher.release)

		Eventually(results).Should(Receive(BeNil()))
		Eventually(results).Should(Receive(BeNil()))
		Expect(fetcher.Calls()).To(Equal(1))
		Expect(s.State().Loading).To(BeFalse())
	})

	It("bounds a load by the configured timeout", func() {
		bounded := roster.NewLoader(blockingFetcher{}, roster.NewGenerator(11), s, quietLogger(),
			roster.WithLoadTimeout(20*time.Millisecond))

		err := bounded.Load(context.Background())
		Expect(errors.Is(err, context.DeadlineExceeded)).To(BeTrue())
		Expect(*s.State().Error).To(Equal("Failed to fetch employees"))
		Expect(s.State().Loading).To(BeFalse())
	})
})
