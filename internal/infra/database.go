package infra

import (
	"fmt"
	"os"

	sqlite "github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// produtorSeed is the fixed dataset written to a freshly created DB file so
// the map has markers to show before anyone registers.
type produtorSeed struct {
	nome, morada, telefone, produtos string
	lat, lng                         float64
}

var seedProdutores = []produtorSeed{
	{"Quinta do Vale Verde", "Rua da Igreja 12, Braga", "253111222", "Alface, Tomate, Couve", 41.5503, -8.4201},
	{"Horta da Maria", "Avenida Central 45, Guimarães", "253333444", "Morangos, Mel", 41.4425, -8.2918},
	{"Produtos da Serra", "Largo do Pelourinho 3, Ponte de Lima", "258555666", "Queijo, Fumeiro", 41.7672, -8.5836},
}

// NewDatabase opens (or creates) the embedded SQLite row store. When the DB
// file does not exist yet the schema is created and the seed dataset inserted,
// mirroring first-run behavior of the original deployment.
func NewDatabase(path string) (*gorm.DB, error) {
	_, statErr := os.Stat(path)
	novaBD := os.IsNotExist(statErr)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}

	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS produtores (
			id_produtor   INTEGER PRIMARY KEY AUTOINCREMENT,
			nome_produtor TEXT NOT NULL,
			latitude      REAL NOT NULL,
			longitude     REAL NOT NULL,
			produtos_venda TEXT,
			morada        TEXT NOT NULL,
			telefone      TEXT,
			email         TEXT,
			password      TEXT,
			disponivel    INTEGER NOT NULL DEFAULT 1,
			foto          TEXT
		)`).Error; err != nil {
		return nil, fmt.Errorf("criar tabela produtores: %w", err)
	}

	if novaBD {
		if err := seedDatabase(db); err != nil {
			return nil, fmt.Errorf("seed inicial: %w", err)
		}
		log.Info().Str("path", path).Int("produtores", len(seedProdutores)).Msg("base de dados criada com dados de teste")
	}

	return db, nil
}

// seedDatabase inserts the fixed dataset, but only into an empty table so a
// re-created handle never duplicates rows.
func seedDatabase(db *gorm.DB) error {
	var total int64
	if err := db.Table("produtores").Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return nil
	}
	for _, p := range seedProdutores {
		err := db.Exec(`
			INSERT INTO produtores (nome_produtor, morada, telefone, produtos_venda, latitude, longitude)
			VALUES (?, ?, ?, ?, ?, ?)`,
			p.nome, p.morada, p.telefone, p.produtos, p.lat, p.lng).Error
		if err != nil {
			return err
		}
	}
	return nil
}
