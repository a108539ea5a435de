package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"cv-studio/internal/adapter/repository"
	"cv-studio/internal/export"
	"cv-studio/internal/usecase"
	"cv-studio/pkg/ai"
	"cv-studio/pkg/infrastructure"
)

// End-to-end smoke run against a real headless Chrome: seeds a session,
// drafts a summary through a mock AI endpoint, then writes both export
// artifacts to disk for manual inspection.

func startMockAI(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if input, _ := req["input"].(string); input == "" {
			w.WriteHeader(400)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"agent":  "mock",
			"output": "Seasoned graphic designer crafting distinctive brand identities across print and digital media.",
		})
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("mock ai server failed: %v", err)
		}
	}()
	return srv
}

func main() {
	os.Setenv("AI_SERVICE_URL", "http://127.0.0.1:8000")

	srv := startMockAI(":8000")
	defer srv.Shutdown(context.Background())

	editor := usecase.NewEditor(repository.NewSessionsRepo(), ai.NewClient())
	pipeline := export.NewPipeline(infrastructure.NewChromedpCapturer(), infrastructure.NewChromedpPrinter())

	s := editor.CreateSession()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	s, err := editor.GenerateSummary(ctx, s.ID.String())
	if err != nil {
		fmt.Printf("summary failed: %v\n", err)
		return
	}
	fmt.Printf("summary: %s\n", s.Resume.Summary)

	art, err := pipeline.ExportPDF(ctx, s, export.A4)
	if err != nil {
		fmt.Printf("raster export failed: %v\n", err)
		return
	}
	if err := os.WriteFile("resume.pdf", art.Data, 0o644); err != nil {
		fmt.Printf("write resume.pdf: %v\n", err)
		return
	}
	fmt.Printf("wrote resume.pdf (%d bytes)\n", len(art.Data))

	art, err = pipeline.Print(ctx, s)
	if err != nil {
		fmt.Printf("print export failed: %v\n", err)
		return
	}
	if err := os.WriteFile("resume_print.pdf", art.Data, 0o644); err != nil {
		fmt.Printf("write resume_print.pdf: %v\n", err)
		return
	}
	fmt.Printf("wrote resume_print.pdf (%d bytes)\n", len(art.Data))
}
