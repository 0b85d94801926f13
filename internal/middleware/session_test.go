package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"techmart/internal/domain"
	"techmart/internal/session"

	"go.uber.org/zap"
)

func newSessionHandler(store *session.Store) (http.Handler, *[]*domain.Session) {
	var seen []*domain.Session

	handler := SessionMiddleware(store, testCookie, zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := GetSession(r.Context())
			if !ok {
				http.Error(w, "no session", http.StatusInternalServerError)
				return
			}
			seen = append(seen, sess)
			w.WriteHeader(http.StatusOK)
		}))

	return handler, &seen
}

func TestSessionMiddlewareIssuesCookie(t *testing.T) {
	store := session.NewStore(time.Hour, zap.NewNop())
	handler, seen := newSessionHandler(store)

	req := httptest.NewRequest("GET", "/api/cart", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != testCookie {
		t.Fatalf("expected one session cookie, got %v", cookies)
	}
	if len(*seen) != 1 || (*seen)[0].ID != cookies[0].Value {
		t.Error("cookie value does not match the attached session")
	}
}

func TestSessionMiddlewareReusesSession(t *testing.T) {
	store := session.NewStore(time.Hour, zap.NewNop())
	handler, seen := newSessionHandler(store)

	sess := store.Create()

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/api/cart", nil)
		req.AddCookie(&http.Cookie{Name: testCookie, Value: sess.ID})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if cookies := w.Result().Cookies(); len(cookies) != 0 {
			t.Errorf("request %d: no new cookie expected for a known session", i)
		}
	}

	if len(*seen) != 2 || (*seen)[0] != sess || (*seen)[1] != sess {
		t.Error("known cookie should resolve to the same session")
	}
}

func TestSessionMiddlewareReplacesUnknownCookie(t *testing.T) {
	store := session.NewStore(time.Hour, zap.NewNop())
	handler, seen := newSessionHandler(store)

	req := httptest.NewRequest("GET", "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "stale-id-from-old-process"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected a replacement cookie, got %v", cookies)
	}
	if cookies[0].Value == "stale-id-from-old-process" {
		t.Error("stale id must not be reissued")
	}
	if len(*seen) != 1 || (*seen)[0].ID != cookies[0].Value {
		t.Error("fresh session not attached to the request")
	}
}
