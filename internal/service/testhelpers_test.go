package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stylencms/internal/content"
	"github.com/stylencms/internal/db"
	"github.com/stylencms/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServiceTestStore(t *testing.T) *store.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return store.New(gdb)
}

// recordingNotifier captures Notify calls.
type recordingNotifier struct {
	mu    sync.Mutex
	err   error
	calls []notifyCall
}

type notifyCall struct {
	destination string
	fields      map[string]string
}

func (n *recordingNotifier) Notify(_ context.Context, destination string, fields map[string]string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, notifyCall{destination: destination, fields: fields})
	return n.err
}

func (n *recordingNotifier) Calls() []notifyCall {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notifyCall(nil), n.calls...)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testCatalog = content.NewCatalog()

var errInjectedRead = errors.New("injected read failure")

// failReads makes the next n queries against table fail before they reach
// sqlite. Writes are unaffected.
func failReads(t *testing.T, st *store.Store, table string, n int) {
	t.Helper()

	var mu sync.Mutex
	remaining := n
	name := fmt.Sprintf("test:fail_reads_%s_%d", table, time.Now().UnixNano())
	err := st.DB.Callback().Query().Before("gorm:query").Register(name, func(tx *gorm.DB) {
		if tx.Statement.Table != table {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if remaining > 0 {
			remaining--
			tx.AddError(errInjectedRead)
		}
	})
	if err != nil {
		t.Fatalf("failed to register query callback: %v", err)
	}
}
