package services

import (
	"context"
	"errors"
	"strings"

	"assets-backend/models"
	"assets-backend/storage"
)

// DefaultPageSize é o tamanho de página usado quando nenhum é informado.
const DefaultPageSize = 10

const (
	nameMinLen = 2
	nameMaxLen = 100
)

// AssetStore define o contrato de persistência consumido pelo serviço.
// FindByID e FindBySerialNo devolvem nil (sem erro) quando não há registro.
type AssetStore interface {
	FindAll(ctx context.Context) ([]models.Asset, error)
	FindAllPaginated(ctx context.Context, limit, offset int) ([]models.Asset, int64, error)
	FindByID(ctx context.Context, id string) (*models.Asset, error)
	FindBySerialNo(ctx context.Context, serialNo string) (*models.Asset, error)
	Save(ctx context.Context, asset models.Asset) (models.Asset, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	DeleteByID(ctx context.Context, id string) error
}

// AssetLifecycle expõe as operações de ciclo de vida de ativos.
type AssetLifecycle interface {
	List(ctx context.Context) ([]models.Asset, error)
	ListPaginated(ctx context.Context, page, size int) (models.Page, error)
	GetByID(ctx context.Context, id string) (models.Asset, error)
	Create(ctx context.Context, asset models.Asset) (models.Asset, error)
	Update(ctx context.Context, id string, changes models.Asset) (models.Asset, error)
	Delete(ctx context.Context, id string) error
}

// AssetService aplica as regras de negócio de ativos sobre o armazenamento.
// Não guarda estado entre chamadas; todo o estado vive no armazenamento.
type AssetService struct {
	store AssetStore
}

// NewAssetService cria um serviço ligado ao armazenamento informado.
func NewAssetService(store AssetStore) *AssetService {
	return &AssetService{store: store}
}

// List devolve todos os ativos na ordem natural do armazenamento.
func (s *AssetService) List(ctx context.Context) ([]models.Asset, error) {
	assets, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, InfrastructureError{Err: err}
	}
	return assets, nil
}

// ListPaginated devolve a página solicitada com o total de elementos e de
// páginas. Páginas fora do intervalo devolvem conteúdo vazio, não erro.
func (s *AssetService) ListPaginated(ctx context.Context, page, size int) (models.Page, error) {
	// O transporte já aplica os padrões; aqui só garantimos a pré-condição.
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = DefaultPageSize
	}

	assets, total, err := s.store.FindAllPaginated(ctx, size, page*size)
	if err != nil {
		return models.Page{}, InfrastructureError{Err: err}
	}
	if assets == nil {
		assets = []models.Asset{}
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	return models.Page{
		Content:       assets,
		TotalElements: total,
		TotalPages:    totalPages,
		Page:          page,
		Size:          size,
	}, nil
}

// GetByID busca um ativo pelo identificador.
func (s *AssetService) GetByID(ctx context.Context, id string) (models.Asset, error) {
	asset, err := s.store.FindByID(ctx, id)
	if err != nil {
		return models.Asset{}, InfrastructureError{Err: err}
	}
	if asset == nil {
		return models.Asset{}, NotFoundError{ID: id}
	}
	return *asset, nil
}

// Create valida e persiste um novo ativo, garantindo serialNo único.
// Em caso de duplicidade nenhuma escrita é feita.
func (s *AssetService) Create(ctx context.Context, asset models.Asset) (models.Asset, error) {
	if err := validateAsset(asset); err != nil {
		return models.Asset{}, err
	}

	existing, err := s.store.FindBySerialNo(ctx, asset.SerialNo)
	if err != nil {
		return models.Asset{}, InfrastructureError{Err: err}
	}
	if existing != nil {
		return models.Asset{}, DuplicateSerialNoError{SerialNo: asset.SerialNo}
	}

	// O armazenamento atribui o id; qualquer id vindo do cliente é descartado.
	asset.ID = ""
	saved, err := s.store.Save(ctx, asset)
	if err != nil {
		return models.Asset{}, translateSaveError(err, asset.SerialNo, "")
	}
	return saved, nil
}

// Update aplica as alterações sobre um ativo existente. Nome, serialNo e
// assignDate substituem os valores atuais; category só quando não vazia.
func (s *AssetService) Update(ctx context.Context, id string, changes models.Asset) (models.Asset, error) {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return models.Asset{}, InfrastructureError{Err: err}
	}
	if existing == nil {
		return models.Asset{}, NotFoundError{ID: id}
	}

	if err := validateAsset(changes); err != nil {
		return models.Asset{}, err
	}

	// Revalida a unicidade sempre que o serialNo muda. Um ativo nunca
	// conflita com o próprio número de série.
	if changes.SerialNo != existing.SerialNo {
		conflict, err := s.store.FindBySerialNo(ctx, changes.SerialNo)
		if err != nil {
			return models.Asset{}, InfrastructureError{Err: err}
		}
		if conflict != nil && conflict.ID != existing.ID {
			return models.Asset{}, DuplicateSerialNoError{SerialNo: changes.SerialNo}
		}
	}

	existing.Name = changes.Name
	existing.SerialNo = changes.SerialNo
	existing.AssignDate = changes.AssignDate
	if changes.Category != "" {
		existing.Category = changes.Category
	}

	saved, err := s.store.Save(ctx, *existing)
	if err != nil {
		return models.Asset{}, translateSaveError(err, changes.SerialNo, id)
	}
	return saved, nil
}

// Delete remove um ativo definitivamente.
func (s *AssetService) Delete(ctx context.Context, id string) error {
	exists, err := s.store.ExistsByID(ctx, id)
	if err != nil {
		return InfrastructureError{Err: err}
	}
	if !exists {
		return NotFoundError{ID: id}
	}
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return InfrastructureError{Err: err}
	}
	return nil
}

// translateSaveError converte os erros sentinela do armazenamento nos erros
// tipados do serviço. A violação do índice único em serial_no é tratada como
// duplicidade: a pré-checagem e a escrita não são atômicas entre escritores
// concorrentes, e o índice é a segunda camada dessa garantia.
func translateSaveError(err error, serialNo, id string) error {
	switch {
	case errors.Is(err, storage.ErrDuplicateSerialNo):
		return DuplicateSerialNoError{SerialNo: serialNo}
	case errors.Is(err, storage.ErrNotFound):
		return NotFoundError{ID: id}
	default:
		return InfrastructureError{Err: err}
	}
}

// validateAsset verifica as restrições de campo antes de persistir.
func validateAsset(asset models.Asset) error {
	var fields []FieldError

	name := strings.TrimSpace(asset.Name)
	switch {
	case name == "":
		fields = append(fields, FieldError{Field: "name", Message: "o nome não pode ser vazio"})
	case len([]rune(name)) < nameMinLen || len([]rune(name)) > nameMaxLen:
		fields = append(fields, FieldError{Field: "name", Message: "o nome deve ter entre 2 e 100 caracteres"})
	}

	if strings.TrimSpace(asset.SerialNo) == "" {
		fields = append(fields, FieldError{Field: "serialNo", Message: "o número de série não pode ser vazio"})
	}

	if asset.AssignDate.IsZero() {
		fields = append(fields, FieldError{Field: "assignDate", Message: "a data de atribuição é obrigatória"})
	}

	if len(fields) > 0 {
		return ValidationError{Fields: fields}
	}
	return nil
}
