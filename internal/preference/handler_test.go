package preference_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/hr-dashboard/internal/preference"
	"github.com/frahmantamala/hr-dashboard/internal/store"
	"github.com/frahmantamala/hr-dashboard/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Preference Handler", func() {
	var (
		s       *store.Store
		handler *preference.Handler
	)

	BeforeEach(func() {
		s = store.New(store.WithPersisted(store.Persisted{BookmarkedUsers: []int64{3}}))
		handler = preference.NewHandler(&transport.BaseHandler{Logger: quietLogger()}, s)
	})

	It("should return the persisted preferences", func() {
		w := httptest.NewRecorder()
		handler.GetPreferences(w, httptest.NewRequest(http.MethodGet, "/preferences", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"bookmarked_users":[3],"dark_mode":false}`))
	})

	It("should toggle dark mode", func() {
		w := httptest.NewRecorder()
		handler.ToggleDarkMode(w, httptest.NewRequest(http.MethodPost, "/preferences/dark-mode/toggle", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp preference.DarkModeResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.DarkMode).To(BeTrue())
		Expect(s.State().DarkMode).To(BeTrue())
	})
})
