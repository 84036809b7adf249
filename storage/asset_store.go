package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"assets-backend/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Erros sentinela devolvidos pelo armazenamento. A camada de serviço os
// traduz para os erros tipados expostos à API.
var (
	// ErrDuplicateSerialNo indica violação do índice único de serial_no.
	ErrDuplicateSerialNo = errors.New("serial_no duplicado")
	// ErrNotFound indica que nenhuma linha corresponde ao id informado.
	ErrNotFound = errors.New("ativo não encontrado no armazenamento")
)

// pgUniqueViolation é o código do PostgreSQL para violação de índice único.
const pgUniqueViolation = "23505"

const assetColumns = "id, name, serial_no, assign_date, category"

// AssetStore persiste ativos na tabela assets.
type AssetStore struct {
	db *DB
}

// NewAssetStore cria um armazenamento de ativos sobre a conexão informada.
func NewAssetStore(db *DB) *AssetStore {
	return &AssetStore{db: db}
}

// FindAll devolve todos os ativos.
func (s *AssetStore) FindAll(ctx context.Context) ([]models.Asset, error) {
	var assets []models.Asset
	query := `SELECT ` + assetColumns + ` FROM assets ORDER BY id`
	if err := s.db.SelectContext(ctx, &assets, query); err != nil {
		return nil, fmt.Errorf("falha ao listar ativos: %w", err)
	}
	return assets, nil
}

// FindAllPaginated devolve uma fatia de ativos e o total de registros.
func (s *AssetStore) FindAllPaginated(ctx context.Context, limit, offset int) ([]models.Asset, int64, error) {
	var assets []models.Asset
	query := `SELECT ` + assetColumns + ` FROM assets ORDER BY id LIMIT $1 OFFSET $2`
	if err := s.db.SelectContext(ctx, &assets, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("falha ao listar ativos paginados: %w", err)
	}

	var total int64
	if err := s.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM assets`); err != nil {
		return nil, 0, fmt.Errorf("falha ao contar ativos: %w", err)
	}
	return assets, total, nil
}

// FindByID busca um ativo pelo id; devolve nil quando não existe.
func (s *AssetStore) FindByID(ctx context.Context, id string) (*models.Asset, error) {
	var asset models.Asset
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`
	err := s.db.GetContext(ctx, &asset, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar ativo por id: %w", err)
	}
	return &asset, nil
}

// FindBySerialNo busca um ativo pelo número de série; devolve nil quando não
// existe. Usado pela checagem de unicidade.
func (s *AssetStore) FindBySerialNo(ctx context.Context, serialNo string) (*models.Asset, error) {
	var asset models.Asset
	query := `SELECT ` + assetColumns + ` FROM assets WHERE serial_no = $1`
	err := s.db.GetContext(ctx, &asset, query, serialNo)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar ativo por serial: %w", err)
	}
	return &asset, nil
}

// Save insere quando o id está vazio (atribuindo um novo uuid) e substitui a
// linha inteira quando preenchido.
func (s *AssetStore) Save(ctx context.Context, asset models.Asset) (models.Asset, error) {
	if asset.ID == "" {
		asset.ID = uuid.New().String()
		query := `INSERT INTO assets (id, name, serial_no, assign_date, category) VALUES ($1, $2, $3, $4, $5)`
		_, err := s.db.ExecContext(ctx, query, asset.ID, asset.Name, asset.SerialNo, asset.AssignDate, asset.Category)
		if err != nil {
			return models.Asset{}, translatePQ(err, "falha ao inserir ativo")
		}
		return asset, nil
	}

	query := `UPDATE assets SET name = $1, serial_no = $2, assign_date = $3, category = $4 WHERE id = $5`
	res, err := s.db.ExecContext(ctx, query, asset.Name, asset.SerialNo, asset.AssignDate, asset.Category, asset.ID)
	if err != nil {
		return models.Asset{}, translatePQ(err, "falha ao atualizar ativo")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return models.Asset{}, fmt.Errorf("falha ao atualizar ativo: %w", err)
	}
	if rows == 0 {
		return models.Asset{}, ErrNotFound
	}
	return asset, nil
}

// ExistsByID verifica se há um ativo com o id informado.
func (s *AssetStore) ExistsByID(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM assets WHERE id = $1)`
	if err := s.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("falha ao verificar existência do ativo: %w", err)
	}
	return exists, nil
}

// DeleteByID remove o ativo com o id informado.
func (s *AssetStore) DeleteByID(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("falha ao remover ativo: %w", err)
	}
	return nil
}

// translatePQ converte violações do índice único em ErrDuplicateSerialNo.
func translatePQ(err error, msg string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
		return ErrDuplicateSerialNo
	}
	return fmt.Errorf("%s: %w", msg, err)
}
