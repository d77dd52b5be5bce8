package roster_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/frahmantamala/hr-dashboard/internal/roster"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const peoplePayload = `{
  "users": [
    {"id": 1, "firstName": "Emily", "lastName": "Johnson", "email": "emily.johnson@x.dummyjson.com", "age": 28,
     "phone": "+81 965-431-3024", "image": "https://dummyjson.com/icon/emilys/128",
     "address": {"address": "626 Main Street", "city": "Phoenix", "state": "Mississippi", "postalCode": "29112", "country": "United States"}},
    {"id": 2, "firstName": "Michael", "lastName": "Williams", "email": "michael.williams@x.dummyjson.com", "age": 35}
  ],
  "total": 208, "skip": 0, "limit": 2
}`

var _ = Describe("Client", func() {
	var (
		server   *httptest.Server
		status   int
		body     string
		lastPath string
		lastQS   string
	)

	BeforeEach(func() {
		status = http.StatusOK
		body = peoplePayload
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastPath = r.URL.Path
			lastQS = r.URL.Query().Get("limit")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	newClient := func(limit int) *roster.Client {
		return roster.NewClient(roster.Config{BaseURL: server.URL, Limit: limit, Timeout: 2 * time.Second}, quietLogger())
	}

	It("requests /users with the configured limit", func() {
		people, err := newClient(2).FetchPeople(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(lastPath).To(Equal("/users"))
		Expect(lastQS).To(Equal("2"))
		Expect(people).To(HaveLen(2))
	})

	It("defaults the limit to 20", func() {
		_, err := newClient(0).FetchPeople(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(lastQS).To(Equal("20"))
	})

	It("decodes the upstream camelCase fields", func() {
		people, err := newClient(2).FetchPeople(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(people[0]).To(Equal(roster.RawPerson{
			ID:        1,
			FirstName: "Emily",
			LastName:  "Johnson",
			Email:     "emily.johnson@x.dummyjson.com",
			Age:       28,
			Phone:     "+81 965-431-3024",
			Image:     "https://dummyjson.com/icon/emilys/128",
			Address: roster.RawAddress{
				Address:    "626 Main Street",
				City:       "Phoenix",
				State:      "Mississippi",
				PostalCode: "29112",
				Country:    "United States",
			},
		}))
		Expect(people[1].Address).To(BeZero())
	})

	It("accepts an empty users array", func() {
		body = `{"users": []}`
		people, err := newClient(2).FetchPeople(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(people).To(BeEmpty())
	})

	Context("when the response is unusable", func() {
		It("fails on a non-2xx status", func() {
			status = http.StatusServiceUnavailable
			_, err := newClient(2).FetchPeople(context.Background())
			Expect(err).To(MatchError(ContainSubstring("status 503")))
		})

		It("fails on a body that is not JSON", func() {
			body = "<html>oops</html>"
			_, err := newClient(2).FetchPeople(context.Background())
			Expect(err).To(MatchError(ContainSubstring("invalid JSON")))
		})

		It("fails when the users array is missing", func() {
			body = `{"people": []}`
			_, err := newClient(2).FetchPeople(context.Background())
			Expect(err).To(MatchError(ContainSubstring("no users array")))
		})

		It("fails when the server is unreachable", func() {
			server.Close()
			_, err := newClient(2).FetchPeople(context.Background())
			Expect(err).To(HaveOccurred())
		})
	})
})
