package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/renato0307/convobar/internal/config"
	"github.com/renato0307/convobar/internal/domain"
	"github.com/renato0307/convobar/internal/ports"
)

const (
	busyBackoff  = 50 * time.Millisecond
	busyRetries  = 3
	maxOpenConns = 10
)

// SQLiteRepository stores threads in sqlite through gorm
type SQLiteRepository struct {
	db *gorm.DB
}

var _ ports.ThreadRepository = (*SQLiteRepository)(nil)

// NewSQLiteRepository opens (and migrates) the thread database at dbPath.
// A leading ~ is expanded.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = config.ExpandPath(dbPath)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// WAL lets the SSH server and the local TUI share the file
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:  newGormLogger(os.Getenv("CONVOBAR_DEBUG") == "1"),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&ThreadModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate thread schema: %w", err)
	}

	pool, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	pool.SetMaxOpenConns(maxOpenConns)
	pool.SetMaxIdleConns(maxOpenConns / 2)

	return &SQLiteRepository{db: db}, nil
}

// Close releases the connection pool
func (r *SQLiteRepository) Close() error {
	pool, err := r.db.DB()
	if err != nil {
		return err
	}
	return pool.Close()
}

// Get implements ThreadReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*domain.Thread, error) {
	var model ThreadModel

	err := retryBusy(ctx, func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("thread %s: %w", id, domain.ErrThreadNotFound)
		}
		return nil, err
	}

	thread := threadModelToDomain(model)
	return &thread, nil
}

// List implements ThreadReader.List, most recently updated first
func (r *SQLiteRepository) List(ctx context.Context) ([]domain.Thread, error) {
	var models []ThreadModel

	err := retryBusy(ctx, func() error {
		return r.db.WithContext(ctx).Order("last_updated DESC").Order("id").Find(&models).Error
	})
	if err != nil {
		return nil, err
	}

	threads := make([]domain.Thread, 0, len(models))
	for _, m := range models {
		threads = append(threads, threadModelToDomain(m))
	}
	return threads, nil
}

// ReadRequestSubtype implements ThreadReader.ReadRequestSubtype.
// The read runs in a read-only transaction and never writes.
func (r *SQLiteRepository) ReadRequestSubtype(ctx context.Context, id string) (domain.RequestSubtype, error) {
	var subtype domain.RequestSubtype

	err := retryBusy(ctx, func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var model ThreadModel
			if err := tx.Select("id", "is_group", "is_blocked").Where("id = ?", id).First(&model).Error; err != nil {
				return err
			}
			subtype = threadModelToDomain(model).ResolveRequestSubtype()
			return nil
		}, &sql.TxOptions{ReadOnly: true})
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("thread %s: %w", id, domain.ErrThreadNotFound)
		}
		return "", fmt.Errorf("failed to read request subtype: %w", err)
	}

	return subtype, nil
}

// Add implements ThreadWriter.Add
func (r *SQLiteRepository) Add(ctx context.Context, thread domain.Thread) error {
	if thread.LastUpdated.IsZero() {
		thread.LastUpdated = time.Now().UTC()
	}
	model := domainToThreadModel(thread)

	return retryBusy(ctx, func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&ThreadModel{}).Where("id = ?", thread.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return fmt.Errorf("thread %s: %w", thread.ID, domain.ErrThreadExists)
			}
			return tx.Create(&model).Error
		})
	})
}

// Delete implements ThreadWriter.Delete
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	return retryBusy(ctx, func() error {
		result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ThreadModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("thread %s: %w", id, domain.ErrThreadNotFound)
		}
		return nil
	})
}

// UpdateFlags implements ThreadWriter.UpdateFlags
func (r *SQLiteRepository) UpdateFlags(ctx context.Context, id string, flags domain.ThreadFlags) error {
	updates := flagsToUpdates(flags)
	if len(updates) == 0 {
		return nil
	}
	updates["last_updated"] = time.Now().UTC()

	return r.update(ctx, id, updates)
}

// AcceptRequest implements ThreadWriter.AcceptRequest.
// Accepting clears the pending request and unblocks the requester.
func (r *SQLiteRepository) AcceptRequest(ctx context.Context, id string) error {
	return r.update(ctx, id, map[string]any{
		"has_pending_message_request": false,
		"is_blocked":                  false,
		"last_updated":                time.Now().UTC(),
	})
}

func (r *SQLiteRepository) update(ctx context.Context, id string, updates map[string]any) error {
	return retryBusy(ctx, func() error {
		result := r.db.WithContext(ctx).Model(&ThreadModel{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("thread %s: %w", id, domain.ErrThreadNotFound)
		}
		return nil
	})
}

// retryBusy runs fn until it succeeds, fails with something other than a
// busy or locked database, runs out of attempts, or ctx ends
func retryBusy(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= busyRetries; attempt++ {
		if err = fn(); err == nil || !isBusy(err) {
			return err
		}
		if attempt == busyRetries {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * busyBackoff):
		}
	}
	return fmt.Errorf("database still busy after %d attempts: %w", busyRetries, err)
}

func isBusy(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) &&
		(sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked)
}
