package main

import (
	"context"
	"log"
	"os"
	"time"

	"greenfood-api/internal/config"
	"greenfood-api/internal/model"
	"greenfood-api/internal/repository"
	"greenfood-api/pkg/database"
)

// Role escalation is deliberately not an API surface; this maintenance
// tool is the supported way to grant (or revoke) the admin role.
func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: promote-admin <email> [role]")
	}
	email := os.Args[1]

	role := model.RoleAdmin
	if len(os.Args) > 2 {
		role = os.Args[2]
	}
	if role != model.RoleAdmin && role != model.RoleUser {
		log.Fatalf("unknown role %q (want %q or %q)", role, model.RoleAdmin, model.RoleUser)
	}

	cfg := config.Load()

	client, db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	defer client.Disconnect(ctx)

	userRepo := repository.NewUserRepo(db)
	if err := userRepo.UpdateRole(ctx, email, role); err != nil {
		log.Fatalf("failed to update role for %s: %v", email, err)
	}

	log.Printf("Success! %s now has role %q", email, role)
}
