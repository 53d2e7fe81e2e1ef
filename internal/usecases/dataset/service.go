package dataset

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/infrastructure/datasource"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

// Service é o Record Store: mantém o snapshot em memória do dataset de
// vendas. O snapshot é substituído por completo a cada Refresh; leitores
// recebem sempre a fatia corrente e não devem mutá-la. O pipeline de
// relatórios nunca alcança a origem diretamente.
type Service struct {
	source datasource.RecordSource

	mu      sync.RWMutex
	records []domain.SaleRecord
	meta    domain.DatasetMeta
}

// NewService cria um Record Store vazio sobre a origem configurada
func NewService(source datasource.RecordSource) *Service {
	return &Service{
		source: source,
	}
}

// Refresh recarrega o dataset inteiro da origem e troca o snapshot de forma
// atômica. Em caso de erro o snapshot anterior permanece intacto.
func (s *Service) Refresh(ctx context.Context) error {
	records, err := s.source.FetchRecords(ctx)
	if err != nil {
		return errors.Wrap(err, "error fetching sale records from source")
	}

	snapshotID, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "error generating snapshot ID")
	}

	meta := buildMeta(records)
	meta.SnapshotID = snapshotID
	meta.LoadedAt = time.Now()

	s.mu.Lock()
	s.records = records
	s.meta = meta
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshotID,
		"records":     len(records),
		"products":    len(meta.Products),
		"segments":    len(meta.Segments),
	}).Info("Snapshot do dataset de vendas atualizado")

	return nil
}

// Records retorna o snapshot corrente
func (s *Service) Records() []domain.SaleRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.records
}

// Meta retorna os metadados do snapshot corrente
func (s *Service) Meta() domain.DatasetMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.meta
}

// buildMeta deriva os metadados de seleção do dataset: limites de data e
// domínios ordenados de produto e segmento
func buildMeta(records []domain.SaleRecord) domain.DatasetMeta {
	meta := domain.DatasetMeta{
		RecordCount: len(records),
		Products:    []string{},
		Segments:    []string{},
	}

	products := make(map[string]bool)
	segments := make(map[string]bool)

	for _, r := range records {
		if meta.StartDate == nil || r.Date.Before(*meta.StartDate) {
			date := r.Date
			meta.StartDate = &date
		}
		if meta.EndDate == nil || r.Date.After(*meta.EndDate) {
			date := r.Date
			meta.EndDate = &date
		}

		products[r.Product] = true
		if r.Segment != "" {
			segments[r.Segment] = true
		}
	}

	for product := range products {
		meta.Products = append(meta.Products, product)
	}
	for segment := range segments {
		meta.Segments = append(meta.Segments, segment)
	}

	sort.Strings(meta.Products)
	sort.Strings(meta.Segments)

	return meta
}
