package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const journalNumberPrefix = "JE-"

type journalEntryModel struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Number      string    `gorm:"size:32;index"`
	Date        time.Time `gorm:"not null;index"`
	Description string    `gorm:"type:text"`
	Reference   string    `gorm:"size:128"`
	SourceType  string    `gorm:"size:32;index:idx_journal_source"`
	SourceID    string    `gorm:"size:36;index:idx_journal_source"`
	CreatedBy   string    `gorm:"size:36"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Lines       []journalLineModel `gorm:"foreignKey:EntryID"`
}

func (journalEntryModel) TableName() string { return "journal_entries" }

type journalLineModel struct {
	ID          string          `gorm:"primaryKey;size:36"`
	EntryID     string          `gorm:"size:36;not null;index"`
	Position    int             `gorm:"not null"`
	AccountID   string          `gorm:"size:36;not null;index"`
	Description string          `gorm:"type:text"`
	Debit       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Credit      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

func (journalLineModel) TableName() string { return "journal_lines" }

type JournalRepository struct {
	db *gorm.DB
}

var _ interfaces.IJournalRepository = (*JournalRepository)(nil)

func NewJournalRepository(db *gorm.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

func (r *JournalRepository) Create(ctx context.Context, e entities.JournalEntry) (entities.JournalEntry, error) {
	m := toJournalEntryModel(e)
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return err
		}
		if len(m.Lines) == 0 {
			return nil
		}
		return tx.Create(&m.Lines).Error
	})
	if err != nil {
		return entities.JournalEntry{}, err
	}
	return fromJournalEntryModel(m), nil
}

func (r *JournalRepository) GetByID(ctx context.Context, id string) (entities.JournalEntry, error) {
	var m journalEntryModel
	err := conn(ctx, r.db).Preload("Lines", byPosition).Where("id = ?", id).First(&m).Error
	if notFound(err) {
		return entities.JournalEntry{}, nil
	}
	if err != nil {
		return entities.JournalEntry{}, err
	}
	return fromJournalEntryModel(m), nil
}

func (r *JournalRepository) List(ctx context.Context, filter entities.JournalFilter) ([]entities.JournalEntry, error) {
	q := conn(ctx, r.db).Preload("Lines", byPosition)
	if filter.From != nil {
		q = q.Where("date >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		q = q.Where("date <= ?", filter.To.UTC())
	}

	var rows []journalEntryModel
	if err := q.Order("date DESC").Order("number DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.JournalEntry, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromJournalEntryModel(m))
	}
	return out, nil
}

func (r *JournalRepository) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("entry_id = ?", id).Delete(&journalLineModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&journalEntryModel{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

// NextNumber continues the JE-000001 sequence from the highest stored number.
func (r *JournalRepository) NextNumber(ctx context.Context) (string, error) {
	var numbers []string
	err := conn(ctx, r.db).Model(&journalEntryModel{}).
		Where("number LIKE ?", journalNumberPrefix+"%").
		Order("number DESC").
		Limit(1).
		Pluck("number", &numbers).Error
	if err != nil {
		return "", err
	}

	next := 1
	if len(numbers) > 0 {
		if n, err := strconv.Atoi(strings.TrimPrefix(numbers[0], journalNumberPrefix)); err == nil {
			next = n + 1
		}
	}
	return fmt.Sprintf("%s%06d", journalNumberPrefix, next), nil
}

func toJournalEntryModel(e entities.JournalEntry) journalEntryModel {
	lines := make([]journalLineModel, 0, len(e.Lines))
	for _, l := range e.Lines {
		lines = append(lines, journalLineModel{
			ID:          l.ID,
			EntryID:     e.ID,
			Position:    l.Position,
			AccountID:   l.AccountID,
			Description: l.Description,
			Debit:       l.Debit,
			Credit:      l.Credit,
		})
	}
	return journalEntryModel{
		ID:          e.ID,
		Number:      e.Number,
		Date:        e.Date.UTC(),
		Description: e.Description,
		Reference:   e.Reference,
		SourceType:  e.SourceType,
		SourceID:    e.SourceID,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		Lines:       lines,
	}
}

func fromJournalEntryModel(m journalEntryModel) entities.JournalEntry {
	lines := make([]entities.JournalLine, 0, len(m.Lines))
	for _, l := range m.Lines {
		lines = append(lines, entities.JournalLine{
			ID:          l.ID,
			EntryID:     l.EntryID,
			Position:    l.Position,
			AccountID:   l.AccountID,
			Description: l.Description,
			Debit:       l.Debit,
			Credit:      l.Credit,
		})
	}
	return entities.JournalEntry{
		ID:          m.ID,
		Number:      m.Number,
		Date:        m.Date.UTC(),
		Description: m.Description,
		Reference:   m.Reference,
		SourceType:  m.SourceType,
		SourceID:    m.SourceID,
		Lines:       lines,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}
