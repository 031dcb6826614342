package app

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hivebudget/backend/pkg/auth"
	"github.com/hivebudget/backend/pkg/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// authorize checks that the current user has the permission on the budget.
func authorize(c *gin.Context, budgetID uuid.UUID, p models.Permission) (models.Member, error) {
	return models.Authorize(models.DB, auth.CurrentUser(c).ID, budgetID, p)
}

// memberBudgets scopes a query to the budgets the current user is a member of.
func memberBudgets(c *gin.Context, column string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" IN (?)", models.MemberBudgetIDs(models.DB, auth.CurrentUser(c).ID))
	}
}

// getResource gets a resource that belongs to a budget by its ID.
//
// The current user must have the permission on the budget of the resource.
// For resources in budgets the user is not a member of, ErrResourceNotFound
// is returned.
func getResource[T any](c *gin.Context, id uuid.UUID, p models.Permission) (resource T, err error) {
	if id == uuid.Nil {
		return resource, errNoID
	}

	var owner struct {
		BudgetID uuid.UUID
	}

	err = models.DB.Model(&resource).Select("budget_id").Where("id = ?", id).Take(&owner).Error
	if err != nil {
		return resource, err
	}

	_, err = authorize(c, owner.BudgetID, p)
	if err != nil {
		return resource, err
	}

	err = models.DB.First(&resource, "id = ?", id).Error
	return resource, err
}

// updateResource updates the fields of the resource with the values from
// data and validates the resource as a whole afterwards. The resource is
// reloaded with the updated values.
//
// check is called with the updated resource before it is saved.
func updateResource[T any, P models.Resource[T]](resource P, fields []any, data T, check func(tx *gorm.DB, updated T) error) error {
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

		if check != nil {
			err = check(tx, *resource)
			if err != nil {
				return err
			}
		}

		return tx.Save(resource).Error
	})
}

// checkBudgetUnchanged returns errBudgetImmutable if the update moves the
// resource to a different budget.
func checkBudgetUnchanged(fields []any, current, updated uuid.UUID) error {
	if slices.Contains(fields, any("BudgetID")) && current != updated {
		return errBudgetImmutable
	}

	return nil
}
