package handlers

import "github.com/uptrace/bun"

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	db      *bun.DB
	JWTKey  []byte
	isAdmin func(username string) bool
}

// New creates a Handler with the given database connection, JWT signing key
// and admin check used when issuing tokens.
func New(db *bun.DB, jwtKey []byte, isAdmin func(username string) bool) *Handler {
	return &Handler{db: db, JWTKey: jwtKey, isAdmin: isAdmin}
}
