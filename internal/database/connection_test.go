package database

import (
	"path/filepath"
	"testing"

	"github.com/localnerve/decideforme/internal/config"
)

func TestDialectorNames(t *testing.T) {
	cases := map[string]string{
		"mysql":       "mysql",
		"mariadb":     "mysql",
		"postgres":    "postgres",
		"sqlite":      "sqlite",
		"sqlite-pure": "sqlite",
		"sqlserver":   "sqlserver",
	}

	for dbType, want := range cases {
		d, err := Dialector(&config.Config{DBType: dbType, DBDatabase: "dfm"})
		if err != nil {
			t.Errorf("%s: unexpected error %v", dbType, err)
			continue
		}
		if d.Name() != want {
			t.Errorf("%s: expected dialect %s, got %s", dbType, want, d.Name())
		}
	}

	if _, err := Dialector(&config.Config{DBType: "oracle"}); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestConnectPureSQLite(t *testing.T) {
	cfg := &config.Config{
		DBType:            "sqlite-pure",
		DBDatabase:        filepath.Join(t.TempDir(), "dfm.db"),
		DBConnectionLimit: 5,
	}

	db, err := Connect(cfg)
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer Close(db)

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}
	if !db.Migrator().HasTable("kv_entries") {
		t.Error("Expected kv_entries table after migration")
	}
}
