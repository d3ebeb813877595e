package cache

import (
	"database/sql"
	"sync"
)

// store handles all database operations for the snapshot cache.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
