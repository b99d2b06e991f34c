package store

import (
	"github.com/stylencms/internal/db"
	"gorm.io/gorm"
)

// Store groups the tables of every entity kind.
type Store struct {
	DB       *gorm.DB
	Pages    *Table[db.Page]
	Products *Table[db.Product]
	Media    *Table[db.Media]
	Menus    *Table[db.Menu]
	Settings *Table[db.Settings]
	Leads    *Table[db.Lead]
}

// New wires the tables onto gdb.
func New(gdb *gorm.DB) *Store {
	return &Store{
		DB:       gdb,
		Pages:    NewTable[db.Page](gdb, "id", OrderBy("created_at asc")),
		Products: NewTable[db.Product](gdb, "id", OrderBy("created_at asc")),
		Media:    NewTable[db.Media](gdb, "id", OrderBy("created_at desc")),
		Menus:    NewTable[db.Menu](gdb, "type"),
		Settings: NewTable[db.Settings](gdb, "id"),
		Leads:    NewTable[db.Lead](gdb, "id", OrderBy("created_at desc")),
	}
}
