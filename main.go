package main

import (
	allowable "Trapeze/internal/calc/allowable"
	batch "Trapeze/internal/calc/batch"
	check "Trapeze/internal/calc/check"
	deflection "Trapeze/internal/calc/deflection"
	loads "Trapeze/internal/calc/loads"
	rodsize "Trapeze/internal/calc/rodsize"
	statics "Trapeze/internal/calc/statics"
	ratelimit "Trapeze/internal/ratelimit"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

const toolVersion = "0.1.0"

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "*"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router) {
	limiter := ratelimit.NewIPRateLimiter(5, 10)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	supports := 1
	if v, err := strconv.Atoi(os.Getenv("SUPPORTS_PER_REACTION")); err == nil && v > 0 {
		supports = v
	}

	loadsH := &loads.Handler{}
	beamH := &statics.Handler{}
	deflectionH := &deflection.Handler{}
	allowableH := &allowable.Handler{}
	rodsizeH := &rodsize.Handler{}
	checkH := &check.Handler{DefaultSupports: supports}
	batchH := &batch.Handler{}

	api.HandleFunc("/tools/loads/calc", loadsH.Calc).Methods("POST")
	api.HandleFunc("/tools/beam/calc", beamH.Calc).Methods("POST")
	api.HandleFunc("/tools/deflection/calc", deflectionH.Calc).Methods("POST")
	api.HandleFunc("/tools/allowable/calc", allowableH.Calc).Methods("POST")
	api.HandleFunc("/tools/rodsize/calc", rodsizeH.Calc).Methods("POST")
	api.HandleFunc("/tools/check/calc", checkH.Calc).Methods("POST")
	api.HandleFunc("/tools/batch/check", batchH.Check).Methods("POST")

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"ok": true, "version": toolVersion})
	}).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment as-is")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + strings.TrimPrefix(port, ":")

	mux := mux.NewRouter()
	HandleList(mux)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	log.Println("Starting server on", addr)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
