package postgres

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB abre um banco SQLite descartável com a mesma tradução de erros
// da conexão de produção, para que os testes exerçam os mapeamentos de
// unique/FK dos repositórios
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "gymdir.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("falha ao abrir o banco de teste: %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("falha ao migrar o schema de teste: %v", err)
	}

	return db
}
