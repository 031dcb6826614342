package models

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/hivebudget/backend/internal/config"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

type ContextKey string

const (
	DBContextURL ContextKey = "hivebudget-url"
)

// Open connects to the database configured in c. Postgres is used
// when a host is configured, sqlite otherwise.
func Open(c config.Database) error {
	if c.Host != "" {
		log.Debug().Msg("DB_HOST is set, using postgresql")
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s", c.Host, c.Port, c.User, c.Password, c.Name)
		return ConnectPostgres(dsn)
	}

	log.Debug().Str("path", c.SQLitePath).Msg("DB_HOST is not set, using sqlite database")
	err := os.MkdirAll(filepath.Dir(c.SQLitePath), os.ModePerm)
	if err != nil {
		return fmt.Errorf("could not create data directory: %w", err)
	}

	return Connect(c.SQLitePath)
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: newQueryLogger(log.Logger),
	}
}

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) error {
	config := gormConfig()

	// Migration with foreign keys disabled since sqlite copies tables
	// to alter columns
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = registerCallbacks(db)
	if err != nil {
		return err
	}

	DB = db
	return nil
}

// ConnectPostgres opens a postgresql database and migrates it.
func ConnectPostgres(dsn string) error {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	err = registerCallbacks(db)
	if err != nil {
		return err
	}

	DB = db
	return nil
}

func registerCallbacks(db *gorm.DB) error {
	// Query callbacks
	err := db.Callback().Query().After("*").Register("hivebudget:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("hivebudget:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("hivebudget:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("hivebudget:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("hivebudget:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("hivebudget:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	// Delete and raw callbacks
	err = db.Callback().Delete().After("*").Register("hivebudget:after_delete_general", generalCallback)
	if err != nil {
		return err
	}

	return db.Callback().Row().After("*").Register("hivebudget:after_row_general", generalCallback)
}

var plural = regexp.MustCompile("ies$")

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = plural.ReplaceAllString(name, "y")
		name = strings.TrimSuffix(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// uniqueConstraint maps a unique index to the error returned when it is
// violated. sqlite reports the columns, postgres the index name.
type uniqueConstraint struct {
	index   string
	columns []string
	err     error
}

var uniqueConstraints = []uniqueConstraint{
	{"user_subject", []string{"users.subject"}, ErrSubjectNotUnique},
	{"member_budget_user", []string{"members.budget_id", "members.user_id"}, ErrAlreadyMember},
	{"category_budget_name", []string{"categories.budget_id", "categories.name"}, ErrCategoryNameNotUnique},
	{"account_budget_name", []string{"accounts.budget_id", "accounts.name"}, ErrAccountNameNotUnique},
	{"goal_budget_name", []string{"goals.budget_id", "goals.name"}, ErrGoalNameNotUnique},
	{"income_source_budget_name", []string{"income_sources.budget_id", "income_sources.name"}, ErrIncomeSourceNotUnique},
	{"recurring_bill_budget_name", []string{"recurring_bills.budget_id", "recurring_bills.name"}, ErrRecurringBillNotUnique},
	{"category_rule_budget_pattern", []string{"category_rules.budget_id", "category_rules.pattern"}, ErrCategoryRuleNotUnique},
	{"transaction_bill_month", []string{"transactions.recurring_bill_id", "transactions.month"}, ErrOccurrenceNotUnique},
	{"transaction_income_month", []string{"transactions.income_source_id", "transactions.month"}, ErrOccurrenceNotUnique},
	{"invite_token", []string{"invites.token"}, ErrInviteTokenNotUnique},
	{"plan_code", []string{"plans.code"}, ErrPlanCodeNotUnique},
	{"subscription_user", []string{"subscriptions.user_id"}, ErrSubscriptionNotUnique},
	{"coupon_code", []string{"coupons.code"}, ErrCouponCodeNotUnique},
	{"access_link_token", []string{"access_links.token"}, ErrAccessTokenNotUnique},
	{"redemption_user_coupon", []string{"redemptions.user_id", "redemptions.coupon_id"}, ErrAlreadyRedeemed},
	{"redemption_user_access_link", []string{"redemptions.user_id", "redemptions.access_link_id"}, ErrAlreadyRedeemed},
	{"bot_link_code", []string{"bot_links.code"}, ErrBotLinkCodeNotUnique},
	{"bot_link_chat", []string{"bot_links.platform", "bot_links.chat_id"}, ErrBotLinkChatNotUnique},
}

func (u uniqueConstraint) matches(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == u.index
	}

	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return false
	}

	// Match the exact column list, it is comma separated
	// after the colon.
	_, columns, found := strings.Cut(msg, "UNIQUE constraint failed: ")
	if !found {
		return false
	}
	columns, _, _ = strings.Cut(columns, " (")

	failed := strings.Split(columns, ", ")
	if len(failed) != len(u.columns) {
		return false
	}

	for _, c := range u.columns {
		if !strings.Contains(columns, c) {
			return false
		}
	}
	return true
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	for _, u := range uniqueConstraints {
		if u.matches(db.Error) {
			db.Error = u.err
			return
		}
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	var pgErr *pgconn.PgError

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) || errors.As(db.Error, &pgErr) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(
		User{},
		Budget{},
		Member{},
		Category{},
		Account{},
		IncomeSource{},
		RecurringBill{},
		Transaction{},
		Goal{},
		GoalContribution{},
		CategoryRule{},
		Invite{},
		Plan{},
		Subscription{},
		Coupon{},
		AccessLink{},
		Redemption{},
		BotLink{},
	)
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
