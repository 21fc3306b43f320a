package store

import "gorm.io/gorm"

// Store wraps the database and is the single serialization point for all
// read-modify-write sequences (status transitions, cascade deletes).
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
