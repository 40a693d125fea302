package docstore

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-mvp/internal/models"
)

// Store é o dono do documento persistido. Toda operação segue o ciclo
// load → mutação → save como uma unidade, serializada por um mutex:
// um escritor por vez, nunca gravação parcial.
//
// Falhas de persistência degradam suave: leitura quebrada volta um
// documento semeado, escrita quebrada é logada e a sessão continua com o
// estado em memória. Nada disso sobe como erro para o chamador.
type Store struct {
	mu   sync.Mutex
	blob Blob
	log  *zap.Logger
}

func New(blob Blob, log *zap.Logger) *Store {
	return &Store{blob: blob, log: log}
}

// Load lê o documento persistido. Se não existir (ou estiver corrompido),
// semeia um novo e persiste. Se existir em versão antiga, migra e
// persiste a forma migrada antes de devolver — um load sobre documento
// atual não dispara gravação nenhuma.
func (s *Store) Load(ctx context.Context) *models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *Store) load(ctx context.Context) *models.Document {
	data, err := s.blob.Load(ctx)
	if err == nil {
		var doc models.Document
		if err := json.Unmarshal(data, &doc); err == nil {
			if Migrate(&doc) {
				s.save(ctx, &doc)
			}
			return &doc
		}
		s.log.Error("documento persistido ilegível, semeando um novo",
			zap.Error(err))
	} else if err != ErrNotFound {
		s.log.Error("falha ao ler documento, semeando um novo",
			zap.Error(err))
	}

	doc := Seed()
	s.save(ctx, doc)
	return doc
}

// Save carimba updatedAt e persiste o documento inteiro.
func (s *Store) Save(ctx context.Context, doc *models.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(ctx, doc)
}

func (s *Store) save(ctx context.Context, doc *models.Document) {
	doc.UpdatedAt = timeNow()

	data, err := json.Marshal(doc)
	if err != nil {
		s.log.Error("falha ao serializar documento", zap.Error(err))
		return
	}
	if err := s.blob.Save(ctx, data); err != nil {
		// a escrita é descartada; o estado em memória segue valendo
		s.log.Error("falha ao persistir documento", zap.Error(err))
	}
}

// View executa fn sobre o documento carregado, sem persistir nada.
func (s *Store) View(ctx context.Context, fn func(doc *models.Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.load(ctx))
}

// Update executa fn sobre o documento carregado e persiste o resultado se
// fn retornar nil. Um erro de fn aborta a gravação e volta intacto para o
// chamador (regras de negócio nunca deixam o documento meio escrito).
func (s *Store) Update(ctx context.Context, fn func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	if err := fn(doc); err != nil {
		return err
	}
	s.save(ctx, doc)
	return nil
}

// Reset descarta o documento persistido e semeia um novo (debug/testes).
func (s *Store) Reset(ctx context.Context) *models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.blob.Delete(ctx); err != nil {
		s.log.Error("falha ao apagar documento", zap.Error(err))
	}
	return s.load(ctx)
}
