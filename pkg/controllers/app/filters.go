package app

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

func stringFilters(db, query *gorm.DB, setFields []string, name, note, search string) *gorm.DB {
	if name != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where("name = ''")
	}

	if note != "" {
		query = query.Where("note LIKE ?", fmt.Sprintf("%%%s%%", note))
	} else if slices.Contains(setFields, "Note") {
		query = query.Where("note = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where("note LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("name LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
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

// nameFilters filters resources that have a name, but no note.
func nameFilters(query *gorm.DB, setFields []string, name, search string) *gorm.DB {
	if name != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where("name = ''")
	}

	if search != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", search))
	}

	return query
}

// optionalID returns nil for uuid.Nil so that filtering for it
// matches resources without a reference.
func optionalID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
