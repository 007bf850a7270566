package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types used by the views.
const (
	TransactionTypeXP    = "xp"
	TransactionTypeAudit = "up"
	SkillTypePrefix      = "skill_"
)

// Transaction is one entry of the backend transaction log (xp, audit or skill).
type Transaction struct {
	CreatedAt time.Time       `json:"createdAt"`
	Type      string          `json:"type"`
	Path      string          `json:"path"`
	Amount    decimal.Decimal `json:"amount"`
	ID        int64           `json:"id"`
	ObjectID  int64           `json:"objectId"`
}

// ProjectPath implements Record.
func (t Transaction) ProjectPath() string { return t.Path }

// Timestamp implements Record.
func (t Transaction) Timestamp() time.Time { return t.CreatedAt }

// ProjectName returns the last path segment, used as a short project label.
func (t Transaction) ProjectName() string {
	return lastSegment(t.Path)
}

// Record is implemented by history rows that belong to a project path.
type Record interface {
	ProjectPath() string
	Timestamp() time.Time
}
