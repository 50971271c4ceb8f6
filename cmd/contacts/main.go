// cmd/contacts/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"bibliotek/internal/contacts"
	"bibliotek/internal/store"
)

func main() {
	table := store.NewTable[contacts.Contact]()
	contacts.SeedSample(table)

	svc := contacts.NewService(table)
	handler := contacts.NewHandler(svc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Mount("/", handler.Routes())

	port := getEnv("PORT", "8000")
	log.Printf("Contact API listening on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
