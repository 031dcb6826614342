package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultModel is embedded in all HiveBudget resources. It carries the
// UUID primary key and the timestamps gorm maintains.
type DefaultModel struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey" example:"65392deb-5e92-4268-b114-297faad6cdce"`             // UUID for the resource
	CreatedAt time.Time       `json:"createdAt" example:"2026-04-02T19:28:44.491514Z"`                                             // Time the resource was created
	UpdatedAt time.Time       `json:"updatedAt" example:"2026-04-17T20:14:01.048145Z"`                                             // Last time the resource was updated
	DeletedAt *gorm.DeletedAt `json:"deletedAt" gorm:"index" example:"2026-04-22T21:01:05.058161Z" swaggertype:"primitive,string"` // Time the resource was marked as deleted
}

// AfterFind converts the timestamps to time.UTC. The database returns
// them with a fixed +0000 zone, which does not compare equal.
func (m *DefaultModel) AfterFind(_ *gorm.DB) error {
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()

	if m.DeletedAt != nil {
		m.DeletedAt.Time = m.DeletedAt.Time.UTC()
	}

	return nil
}

// BeforeCreate generates the ID unless one was set explicitly.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Identifier returns the ID of the resource.
func (m DefaultModel) Identifier() uuid.UUID {
	return m.ID
}

// Resource is the pointer type of a model embedding DefaultModel.
type Resource[T any] interface {
	*T
	Identifier() uuid.UUID
}

// Reload replaces the resource with its stored row. The row is loaded into
// a zero value so that NULL columns clear the optional fields.
func Reload[T any, P Resource[T]](tx *gorm.DB, resource P) error {
	var stored T
	err := tx.First(&stored, "id = ?", resource.Identifier()).Error
	if err != nil {
		return err
	}

	*resource = stored
	return nil
}

// nilIfEmpty stores a pointer to the nil UUID as NULL.
func nilIfEmpty(id *uuid.UUID) *uuid.UUID {
	if id == nil || *id == uuid.Nil {
		return nil
	}
	return id
}
