package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultPath is used when no database path is configured.
const DefaultPath = "stylencms.db"

// Models lists every table managed by AutoMigrate.
func Models() []interface{} {
	return []interface{}{
		&User{},
		&Page{},
		&Product{},
		&Media{},
		&Menu{},
		&Settings{},
		&Lead{},
	}
}

// Open 打开 sqlite 数据库并执行自动迁移。
// databasePath 为空时回退到 DefaultPath；verbose 为 false 时关闭 SQL 日志。
func Open(databasePath string, verbose bool) (*gorm.DB, error) {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = DefaultPath
	}

	if err := ensureParentDir(path); err != nil {
		return nil, err
	}

	level := logger.Silent
	if verbose {
		level = logger.Info
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(level)})
	if err != nil {
		return nil, err
	}

	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

// Migrate creates or updates all tables.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(Models()...)
}

func ensureParentDir(path string) error {
	if strings.HasPrefix(path, "file:") {
		return nil
	}

	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
