package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"fitlife-blog/internal/domain"
)

func TestSubscribe(t *testing.T) {
	svc := &stubNewsletterService{subscriber: &domain.NewsletterSubscriber{ID: "s1", Email: "reader@example.com"}}
	rec := serve(testRouter(t, Deps{NewsletterSvc: svc}), http.MethodPost, "/api/newsletter/subscribe", `{"email":"reader@example.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if svc.lastEmail != "reader@example.com" {
		t.Fatalf("unexpected email %q", svc.lastEmail)
	}
	if !strings.Contains(rec.Body.String(), `"subscribedAt"`) || !strings.Contains(rec.Body.String(), `"id":"s1"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	svc := &stubNewsletterService{err: domain.NewValidationError("email", "value is not a valid email address")}
	rec := serve(testRouter(t, Deps{NewsletterSvc: svc}), http.MethodPost, "/api/newsletter/subscribe", `{"email":"not-an-email"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"field":"email"`) {
		t.Fatalf("expected field detail, got %s", rec.Body.String())
	}
}

func TestSubscribe_WrongType(t *testing.T) {
	rec := serve(testRouter(t, Deps{}), http.MethodPost, "/api/newsletter/subscribe", `{"email":42}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestSubscribers(t *testing.T) {
	svc := &stubNewsletterService{subscribers: []domain.NewsletterSubscriber{{ID: "a"}, {ID: "b"}}}
	rec := serve(testRouter(t, Deps{NewsletterSvc: svc}), http.MethodGet, "/api/newsletter/subscribers", "")
	if rec.Code != http.StatusOK || strings.Count(rec.Body.String(), `"id"`) != 2 {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}

	svc = &stubNewsletterService{err: errors.New("boom")}
	rec = serve(testRouter(t, Deps{NewsletterSvc: svc}), http.MethodGet, "/api/newsletter/subscribers", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestCategories(t *testing.T) {
	svc := &stubCategoryService{categories: []domain.Category{{ID: "all", Name: "All Articles", Count: 2}}}
	rec := serve(testRouter(t, Deps{CategorySvc: svc}), http.MethodGet, "/api/categories", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != `[{"id":"all","name":"All Articles","count":2}]` {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}

	svc = &stubCategoryService{err: errors.New("boom")}
	if rec := serve(testRouter(t, Deps{CategorySvc: svc}), http.MethodGet, "/api/categories", ""); rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
