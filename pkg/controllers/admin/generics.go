package admin

import (
	"github.com/google/uuid"
	"github.com/hivebudget/backend/pkg/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

func getResource[T any](id uuid.UUID) (resource T, err error) {
	if id == uuid.Nil {
		return resource, errNoID
	}

	err = models.DB.First(&resource, "id = ?", id).Error
	return resource, err
}

// updateResource updates the fields of the resource with the values
// from data and reloads it.
func updateResource[T any, P models.Resource[T]](resource P, fields []any, data T) error {
	if len(fields) == 0 {
		return nil
	}

	return models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(resource).Select("", fields...).Updates(data).Error
		if err != nil {
			return err
		}

		err = models.Reload[T](tx, resource)
		if err != nil {
			return err
		}

		// Run the hooks on the complete resource
		return tx.Save(resource).Error
	})
}

// defaultLimit is the page size when the limit is not set in the query.
const defaultLimit = 50

// page loads the resources of the query between offset and offset+limit
// and counts all resources matching the query. A negative limit returns
// all resources.
func page[M any](query *gorm.DB, setFields []string, offset uint, limit int) ([]M, *Pagination, error) {
	if !slices.Contains(setFields, "Limit") {
		limit = defaultLimit
	}

	var resources []M
	err := query.Offset(int(offset)).Limit(limit).Find(&resources).Error
	if err != nil {
		return nil, nil, err
	}

	var total int64
	err = query.Limit(-1).Offset(-1).Count(&total).Error
	if err != nil {
		return nil, nil, err
	}

	return resources, &Pagination{
		Count:  len(resources),
		Total:  total,
		Offset: offset,
		Limit:  limit,
	}, nil
}
