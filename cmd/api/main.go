// cmd/api/main.go
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"bibliotek/internal/catalog"
	"bibliotek/internal/lending"
	"bibliotek/internal/membership"
	"bibliotek/internal/reports"
	"bibliotek/internal/store"
	"bibliotek/internal/telemetry"
)

func main() {
	ctx := context.Background()

	shutdown, err := telemetry.Init(ctx, "bibliotek-api")
	if err != nil {
		log.Fatalf("Failed to initialize telemetry: %v", err)
	}
	defer shutdown(ctx)

	books := store.NewTable[catalog.Book]()
	users := store.NewTable[membership.User]()
	loans := store.NewTable[lending.Loan]()

	catalog.SeedSample(books)
	membership.SeedSample(users)
	lending.SeedSample(loans)

	catalogSvc := catalog.NewService(books)
	membershipSvc := membership.NewService(users)
	lendingSvc := lending.NewService(loans, catalogSvc)

	reportsSvc, err := reports.NewService(books, users, loans, reports.Config{
		ReceiptsDir:   getEnv("RECEIPTS_DIR", "receipts"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		TokenSecret:   getEnv("TOKEN_SECRET", "dev_secret_change_in_prod"),
	})
	if err != nil {
		log.Fatalf("Failed to create reports service: %v", err)
	}

	reportsHandler := reports.NewHandler(reportsSvc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", handleInfo)
	r.Mount("/books", catalog.NewHandler(catalogSvc).Routes())
	r.Mount("/users", membership.NewHandler(membershipSvc).Routes())
	r.Mount("/users/admin", reportsHandler.AdminRoutes())
	r.Mount("/loans", lending.NewHandler(lendingSvc).Routes())
	r.Get("/dashboard", reportsHandler.HandleDashboard)

	port := getEnv("PORT", "8080")
	log.Printf("Library API listening on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}

func handleInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"message": "Welcome to Library Management System API",
		"version": "2.0.0",
		"endpoints": map[string]string{
			"books": "/books - Book Management (Add, Update, Delete, Show All, Search)",
			"users": "/users - User Management (Add, Update, Delete, Show All, Search)",
			"loans": "/loans - Borrow & Return System (Borrow, Return, Track, List, Check Availability)",
			"admin": "/users/admin - Reports & Admin (Overdue, Most Borrowed, History, Receipt, Login, Dashboard)",
		},
	})
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
