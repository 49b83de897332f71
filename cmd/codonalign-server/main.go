// Command codonalign-server provides a REST API for codon-aware pairwise
// sequence alignment.
//
// Usage:
//
//	codonalign-server [options]
//
// Options:
//
//	-port      Port to listen on (default: 8080)
//	-host      Host to bind to (default: localhost)
//	-ref       Reference FASTA file (single record, required)
//	-cds       Reference CDS annotation TSV file (required)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aria-lang/codonalign/api/handlers"
	"github.com/aria-lang/codonalign/api/middleware"
	"github.com/aria-lang/codonalign/internal/diag"
	"github.com/aria-lang/codonalign/pkg/codonalign"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	host := flag.String("host", "localhost", "Host to bind to")
	refFasta := flag.String("ref", "", "Reference FASTA file (single record)")
	refCds := flag.String("cds", "", "Reference CDS annotation TSV file")
	ntWeight := flag.Int("nt-weight", 1, "Nucleotide score weight")
	aaWeight := flag.Int("aa-weight", 1, "Amino-acid score weight")
	flag.Parse()

	if *refFasta == "" || *refCds == "" {
		fmt.Fprintln(os.Stderr, "Error: -ref and -cds are both required")
		os.Exit(1)
	}

	collector := &diag.Collector{}
	ref, err := codonalign.ReadAnnotatedReference(*refFasta, *refCds, *ntWeight, *aaWeight, collector)
	if err != nil {
		log.Fatalf("Could not load reference: %v\n", err)
	}
	for _, d := range collector.Items() {
		log.Printf("warning: %v", d)
	}

	svc := &handlers.Service{Aligner: codonalign.NewAligner(ref)}

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/align", svc.AlignHandler)
	})

	// Home page
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>codonalign API</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; }
        h1 { color: #2563eb; }
        pre { background: #f3f4f6; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
        .endpoint { margin: 1rem 0; padding: 1rem; border: 1px solid #e5e7eb; border-radius: 0.5rem; }
        .method { display: inline-block; padding: 0.25rem 0.5rem; background: #10b981; color: white; border-radius: 0.25rem; font-size: 0.875rem; }
    </style>
</head>
<body>
    <h1>codonalign API</h1>
    <p>A REST API for codon-aware pairwise sequence alignment.</p>

    <h2>Endpoints</h2>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/align</code>
        <p>Align a query sequence against the server's bound reference genome.</p>
        <pre>{"id": "sample-1", "query": "ATGCATGC"}</pre>
    </div>

    <p>For more information, see: https://github.com/aria-lang/codonalign</p>
</body>
</html>`))
	})

	addr := fmt.Sprintf("%s:%d", *host, *port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shutdown: %v\n", err)
		}
		close(done)
	}()

	log.Printf("codonalign API server starting on http://%s\n", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}
