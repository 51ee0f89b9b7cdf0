package astro

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestResolver(handler http.HandlerFunc) (*Resolver, func()) {
	srv := httptest.NewServer(handler)
	r := &Resolver{BaseURL: srv.URL, Client: srv.Client()}
	return r, srv.Close
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("parses a coordinate line", func(t *testing.T) {
		t.Parallel()
		r, done := newTestResolver(func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte("# M1\n#=Simbad: 1\n%J 083.6330800 +22.0145000 = 05:34:31.93 +22:00:52.2\n%I.0 NAME Crab Nebula\n"))
		})
		defer done()

		ra, dec, err := r.Resolve(context.Background(), "M1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(ra-83.63308) > 1e-6 {
			t.Errorf("RA = %v, want 83.63308", ra)
		}
		if math.Abs(dec-22.0145) > 1e-6 {
			t.Errorf("Dec = %v, want 22.0145", dec)
		}
	})

	t.Run("no coordinate line means not found", func(t *testing.T) {
		t.Parallel()
		r, done := newTestResolver(func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte("# NoSuchThing12345\n#!SIMBAD: Nothing found\n"))
		})
		defer done()

		_, _, err := r.Resolve(context.Background(), "NoSuchThing12345")
		var resolveErr *ResolveError
		if !errors.As(err, &resolveErr) {
			t.Fatalf("expected *ResolveError, got %v", err)
		}
		if resolveErr.Kind != ResolveNotFound {
			t.Errorf("Kind = %v, want ResolveNotFound", resolveErr.Kind)
		}
	})

	t.Run("unreachable service is a network failure", func(t *testing.T) {
		t.Parallel()
		r, done := newTestResolver(func(w http.ResponseWriter, req *http.Request) {})
		done() // close immediately so the request fails to connect

		_, _, err := r.Resolve(context.Background(), "M31")
		var resolveErr *ResolveError
		if !errors.As(err, &resolveErr) {
			t.Fatalf("expected *ResolveError, got %v", err)
		}
		if resolveErr.Kind != ResolveNetwork {
			t.Errorf("Kind = %v, want ResolveNetwork", resolveErr.Kind)
		}
	})

	t.Run("server error is a service failure", func(t *testing.T) {
		t.Parallel()
		r, done := newTestResolver(func(w http.ResponseWriter, req *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})
		defer done()

		_, _, err := r.Resolve(context.Background(), "M31")
		var resolveErr *ResolveError
		if !errors.As(err, &resolveErr) {
			t.Fatalf("expected *ResolveError, got %v", err)
		}
		if resolveErr.Kind != ResolveFailed {
			t.Errorf("Kind = %v, want ResolveFailed", resolveErr.Kind)
		}
	})

	t.Run("garbled coordinates are a service failure", func(t *testing.T) {
		t.Parallel()
		r, done := newTestResolver(func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte("%J notanumber alsonot = junk\n"))
		})
		defer done()

		_, _, err := r.Resolve(context.Background(), "M31")
		var resolveErr *ResolveError
		if !errors.As(err, &resolveErr) {
			t.Fatalf("expected *ResolveError, got %v", err)
		}
		if resolveErr.Kind != ResolveFailed {
			t.Errorf("Kind = %v, want ResolveFailed", resolveErr.Kind)
		}
	})

	t.Run("empty name is rejected without a request", func(t *testing.T) {
		t.Parallel()
		r := &Resolver{BaseURL: "http://127.0.0.1:0", Client: http.DefaultClient}
		_, _, err := r.Resolve(context.Background(), "   ")
		var resolveErr *ResolveError
		if !errors.As(err, &resolveErr) {
			t.Fatalf("expected *ResolveError, got %v", err)
		}
		if resolveErr.Kind != ResolveFailed {
			t.Errorf("Kind = %v, want ResolveFailed", resolveErr.Kind)
		}
	})
}
