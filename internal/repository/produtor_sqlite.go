package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/Guimesquita15/projeto-para-a-pap/internal/model"

	"gorm.io/gorm"
)

// produtorRow is the flat relational shape of a producer. Products collapse
// to a single ", "-joined text column; this representation cannot carry
// per-product photos.
type produtorRow struct {
	ID            uint    `gorm:"column:id_produtor;primaryKey;autoIncrement"`
	Nome          string  `gorm:"column:nome_produtor;not null"`
	Latitude      float64 `gorm:"column:latitude;not null"`
	Longitude     float64 `gorm:"column:longitude;not null"`
	ProdutosVenda string  `gorm:"column:produtos_venda"`
	Morada        string  `gorm:"column:morada;not null"`
	Telefone      string  `gorm:"column:telefone"`
	Email         string  `gorm:"column:email"`
	Password      string  `gorm:"column:password"`
	Disponivel    bool    `gorm:"column:disponivel;default:true"`
	Foto          string  `gorm:"column:foto"`
}

func (produtorRow) TableName() string { return "produtores" }

type sqliteProdutorRepo struct{ db *gorm.DB }

// NewSQLiteProdutorRepository returns the row-oriented store backed by the
// embedded SQLite file.
func NewSQLiteProdutorRepository(db *gorm.DB) ProdutorRepository {
	return &sqliteProdutorRepo{db: db}
}

func (r *sqliteProdutorRepo) Kind() string { return "sqlite" }

func (r *sqliteProdutorRepo) Create(ctx context.Context, p *model.Produtor) error {
	row := modelToRow(p)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	p.ID = strconv.FormatUint(uint64(row.ID), 10)
	return nil
}

func (r *sqliteProdutorRepo) List(ctx context.Context) ([]model.Produtor, error) {
	var rows []produtorRow
	if err := r.db.WithContext(ctx).Order("id_produtor").Find(&rows).Error; err != nil {
		return nil, err
	}
	produtores := make([]model.Produtor, len(rows))
	for i, row := range rows {
		produtores[i] = *rowToModel(&row)
	}
	return produtores, nil
}

func (r *sqliteProdutorRepo) FindByID(ctx context.Context, id string) (*model.Produtor, error) {
	num, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return nil, ErrProdutorNaoEncontrado
	}
	var row produtorRow
	if err := r.db.WithContext(ctx).First(&row, "id_produtor = ?", num).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProdutorNaoEncontrado
		}
		return nil, err
	}
	return rowToModel(&row), nil
}

func (r *sqliteProdutorRepo) FindByEmail(ctx context.Context, email string) (*model.Produtor, error) {
	var row produtorRow
	if err := r.db.WithContext(ctx).First(&row, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProdutorNaoEncontrado
		}
		return nil, err
	}
	return rowToModel(&row), nil
}

func (r *sqliteProdutorRepo) Update(ctx context.Context, p *model.Produtor) error {
	num, err := strconv.ParseUint(p.ID, 10, 64)
	if err != nil {
		return ErrProdutorNaoEncontrado
	}
	// Updates, not Save: Save inserts when no row matches, which would mint
	// records outside Create. Select("*") keeps the whole-field overwrite
	// semantics (zero values included).
	res := r.db.WithContext(ctx).Model(&produtorRow{}).
		Where("id_produtor = ?", num).
		Select("*").Omit("id_produtor").
		Updates(modelToRow(p))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProdutorNaoEncontrado
	}
	return nil
}

// ── Row ↔ model conversion ───────────────────────────────────────────────────

// joinProdutos flattens structured products to the text column. Photo
// associations are lost, the documented limitation of this backend.
func joinProdutos(produtos []model.ProdutoVenda) string {
	nomes := make([]string, len(produtos))
	for i, p := range produtos {
		nomes[i] = p.Nome
	}
	return strings.Join(nomes, ", ")
}

// splitProdutos re-expands the text column into structured entries with empty
// photo URLs, keeping the output shape uniform with the document backend.
func splitProdutos(texto string) []model.ProdutoVenda {
	if strings.TrimSpace(texto) == "" {
		return []model.ProdutoVenda{}
	}
	partes := strings.Split(texto, ",")
	produtos := make([]model.ProdutoVenda, 0, len(partes))
	for _, parte := range partes {
		nome := strings.TrimSpace(parte)
		if nome == "" {
			continue
		}
		produtos = append(produtos, model.ProdutoVenda{Nome: nome})
	}
	return produtos
}

func modelToRow(p *model.Produtor) *produtorRow {
	return &produtorRow{
		Nome:          p.Nome,
		Latitude:      p.Latitude,
		Longitude:     p.Longitude,
		ProdutosVenda: joinProdutos(p.Produtos),
		Morada:        p.Morada,
		Telefone:      p.Telefone,
		Email:         p.Email,
		Password:      p.Password,
		Disponivel:    p.Disponivel,
		Foto:          p.Foto,
	}
}

func rowToModel(row *produtorRow) *model.Produtor {
	return &model.Produtor{
		ID:         strconv.FormatUint(uint64(row.ID), 10),
		Nome:       row.Nome,
		Morada:     row.Morada,
		Telefone:   row.Telefone,
		Latitude:   row.Latitude,
		Longitude:  row.Longitude,
		Produtos:   splitProdutos(row.ProdutosVenda),
		Email:      row.Email,
		Password:   row.Password,
		Disponivel: row.Disponivel,
		Foto:       row.Foto,
	}
}
