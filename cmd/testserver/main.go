//nolint:forbidigo // test utility allows direct output
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
)

const maxDelay = 5 * time.Minute

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	flag.Parse()

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Test server listening on %s", addr)
	log.Printf("Healthy endpoint: http://localhost%s/status/200", addr)
	log.Printf("Failing endpoint: http://localhost%s/status/503", addr)
	log.Printf("Slow endpoint:    http://localhost%s/slow/40", addr)
	log.Printf("Flaky endpoint:   http://localhost%s/flaky", addr)
	log.Println("\nPoint ENDPOINTS at any of them to try the monitor locally.")

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(),
		ReadHeaderTimeout: 3 * time.Second, //nolint:mnd
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func newRouter() http.Handler {
	r := chi.NewRouter()

	r.Get("/status/{code}", func(w http.ResponseWriter, r *http.Request) {
		code, err := strconv.Atoi(chi.URLParam(r, "code"))
		if err != nil || code < 100 || code > 599 {
			http.Error(w, "status code must be between 100 and 599", http.StatusBadRequest)
			return
		}
		w.WriteHeader(code)
		log.Printf("Served %s with %d", r.URL.Path, code)
	})

	r.Get("/slow/{seconds}", func(w http.ResponseWriter, r *http.Request) {
		seconds, err := strconv.Atoi(chi.URLParam(r, "seconds"))
		if err != nil || seconds < 0 {
			http.Error(w, "seconds must be a non negative number", http.StatusBadRequest)
			return
		}
		delay := min(time.Duration(seconds)*time.Second, maxDelay)
		select {
		case <-r.Context().Done():
			log.Printf("Client gave up on %s", r.URL.Path)
			return
		case <-time.After(delay):
		}
		w.WriteHeader(http.StatusOK)
		log.Printf("Served %s after %s", r.URL.Path, delay)
	})

	// every other request fails
	var calls atomic.Int64
	r.Get("/flaky", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1)%2 == 0 {
			w.WriteHeader(http.StatusInternalServerError)
			log.Printf("Served %s with %d", r.URL.Path, http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		log.Printf("Served %s with %d", r.URL.Path, http.StatusOK)
	})

	return r
}
