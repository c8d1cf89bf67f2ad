package persistence

import (
	"context"
	"sync"
	"time"

	"tg_ledger/internal/domain"
	"tg_ledger/internal/domain/entity"
	"tg_ledger/pkg/errcodes"
)

// TemplateStore keeps the last approved listing description per game key.
// At most one row per key; a save overwrites.
type TemplateStore struct {
	path string
	mu   sync.Mutex
}

func NewTemplateStore(path string) *TemplateStore {
	return &TemplateStore{path: path}
}

func (s *TemplateStore) Get(_ context.Context, gameKey string) (entity.DescriptionTemplate, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	templates, err := s.loadLocked()
	if err != nil {
		return entity.DescriptionTemplate{}, false, err
	}

	for _, template := range templates {
		if template.GameKey == gameKey {
			return template, true, nil
		}
	}

	return entity.DescriptionTemplate{}, false, nil
}

// Save upserts the template for gameKey, stamping UpdatedAt. Last write
// wins, same as the ledger: the whole table is rewritten under the lock.
func (s *TemplateStore) Save(_ context.Context, gameKey, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	templates, err := s.loadLocked()
	if err != nil {
		return err
	}

	updated := entity.DescriptionTemplate{
		GameKey:     gameKey,
		Description: description,
		UpdatedAt:   time.Now().UTC(),
	}

	replaced := false
	for i := range templates {
		if templates[i].GameKey == gameKey {
			templates[i] = updated
			replaced = true
			break
		}
	}
	if !replaced {
		templates = append(templates, updated)
	}

	return writeTable(s.path, templateColumns, len(templates), func(i int) []string {
		return templateToRecord(templates[i])
	})
}

// Clear drops every template; used by the reset-all flow.
func (s *TemplateStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeTable(s.path, templateColumns, 0, nil)
}

func (s *TemplateStore) loadLocked() ([]entity.DescriptionTemplate, error) {
	records, err := readTable(s.path, templateColumns)
	if err != nil {
		return nil, err
	}

	templates := make([]entity.DescriptionTemplate, 0, len(records))
	for _, record := range records {
		template, err := recordToTemplate(record)
		if err != nil {
			return nil, domain.WrapError(err, errcodes.StorageUnavailable, "Хранилище повреждено")
		}
		templates = append(templates, template)
	}

	return templates, nil
}
