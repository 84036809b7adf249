package services

import (
	"context"
	"log"

	"assets-backend/models"
)

// LoggingService registra a entrada e o desfecho de cada operação do ciclo de
// vida e delega para o serviço real. O serviço em si nunca loga; quem quiser
// rastreamento envolve com este wrapper na montagem.
type LoggingService struct {
	next AssetLifecycle
}

// NewLoggingService envolve um serviço com logging de chamadas.
func NewLoggingService(next AssetLifecycle) *LoggingService {
	return &LoggingService{next: next}
}

func (l *LoggingService) List(ctx context.Context) ([]models.Asset, error) {
	log.Println("AssetService.List: buscando todos os ativos")
	assets, err := l.next.List(ctx)
	l.logOutcome("List", err)
	return assets, err
}

func (l *LoggingService) ListPaginated(ctx context.Context, page, size int) (models.Page, error) {
	log.Printf("AssetService.ListPaginated: page=%d size=%d", page, size)
	result, err := l.next.ListPaginated(ctx, page, size)
	l.logOutcome("ListPaginated", err)
	return result, err
}

func (l *LoggingService) GetByID(ctx context.Context, id string) (models.Asset, error) {
	log.Printf("AssetService.GetByID: id=%s", id)
	asset, err := l.next.GetByID(ctx, id)
	l.logOutcome("GetByID", err)
	return asset, err
}

func (l *LoggingService) Create(ctx context.Context, asset models.Asset) (models.Asset, error) {
	log.Printf("AssetService.Create: serialNo=%s", asset.SerialNo)
	saved, err := l.next.Create(ctx, asset)
	l.logOutcome("Create", err)
	return saved, err
}

func (l *LoggingService) Update(ctx context.Context, id string, changes models.Asset) (models.Asset, error) {
	log.Printf("AssetService.Update: id=%s", id)
	saved, err := l.next.Update(ctx, id, changes)
	l.logOutcome("Update", err)
	return saved, err
}

func (l *LoggingService) Delete(ctx context.Context, id string) error {
	log.Printf("AssetService.Delete: id=%s", id)
	err := l.next.Delete(ctx, id)
	l.logOutcome("Delete", err)
	return err
}

func (l *LoggingService) logOutcome(op string, err error) {
	if err != nil {
		log.Printf("AssetService.%s: falhou: %v", op, err)
		return
	}
	log.Printf("AssetService.%s: concluído", op)
}
