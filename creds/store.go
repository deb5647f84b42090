// Package creds is the credential-storage collaborator of the state core.
// The access token is short-lived and request-attached, so it lives only in
// memory; the refresh token outlives the process and is persisted to a
// local sqlite database. Both are always set together and cleared together.
package creds

import (
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// refreshCredential is the single-row table holding the durable token.
type refreshCredential struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"type:varchar(255);not null"`
	UpdatedAt time.Time
}

// Store holds the token pair. Safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	access string
	db     *gorm.DB
}

// Open creates a Store backed by the sqlite database at path, creating the
// schema when missing and loading any previously persisted refresh token.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return New(db)
}

// New builds a Store on an existing gorm connection. Tests use this with an
// in-memory sqlite database.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&refreshCredential{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// SetTokens stores both tokens: access in memory, refresh durably.
func (s *Store) SetTokens(accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Where("1 = 1").Delete(&refreshCredential{}).Error; err != nil {
		return err
	}
	if err := s.db.Create(&refreshCredential{Token: refreshToken}).Error; err != nil {
		return err
	}
	s.access = accessToken
	return nil
}

// ClearTokens drops both tokens.
func (s *Store) ClearTokens() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.access = ""
	return s.db.Where("1 = 1").Delete(&refreshCredential{}).Error
}

// AccessToken returns the in-memory access token, or "".
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

// RefreshToken returns the persisted refresh token, or "".
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rec refreshCredential
	if err := s.db.Order("id desc").First(&rec).Error; err != nil {
		return ""
	}
	return rec.Token
}
