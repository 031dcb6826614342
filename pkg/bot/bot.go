// Package bot handles messages sent to the HiveBudget chat bot.
package bot

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hivebudget/backend/internal/types"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	helpText = "Send an amount and a description to record an expense, e.g. \"12.50 coffee\".\n\n" +
		"/link CODE - link this chat with the code from the app\n" +
		"/summary - income and expenses of the current month"
	notLinkedText   = "This chat is not linked yet. Create a code in the app and send /link CODE."
	invalidCodeText = "This code is invalid or has expired. Create a new one in the app."
	noAccessText    = "You do not have access to the linked budget anymore. Link the chat again to continue."
)

// Bot answers messages of a chat platform.
type Bot struct {
	db       *gorm.DB
	platform string
	now      func() time.Time
}

// New returns a Bot for Telegram chats.
func New(db *gorm.DB) *Bot {
	return &Bot{
		db:       db,
		platform: models.PlatformTelegram,
		now:      time.Now,
	}
}

// Handle processes the update and returns the reply to send. Updates
// without a text message are ignored and nil is returned.
//
// Errors are only returned for problems on the server. Invalid input
// is answered with a reply explaining the problem.
func (b *Bot) Handle(update Update) (*Reply, error) {
	if update.Message == nil || strings.TrimSpace(update.Message.Text) == "" {
		return nil, nil
	}

	chatID := update.Message.Chat.ID
	fields := strings.Fields(update.Message.Text)

	// Commands in groups are addressed as /command@botname
	command, _, _ := strings.Cut(strings.ToLower(fields[0]), "@")

	var (
		text string
		err  error
	)

	switch command {
	case "/start", "/link":
		if len(fields) < 2 {
			text = helpText
			break
		}
		text, err = b.link(chatID, fields[1])
	case "/summary":
		text, err = b.summary(chatID)
	case "/help":
		text = helpText
	default:
		amount, ok := parseAmount(fields[0])
		if !ok || len(fields) < 2 {
			text = helpText
			break
		}
		text, err = b.expense(chatID, amount, strings.Join(fields[1:], " "))
	}

	if err != nil {
		return nil, err
	}

	return NewReply(chatID, text), nil
}

func (b *Bot) link(chatID int64, code string) (string, error) {
	link, err := models.LinkChat(b.db, b.platform, code, chatID, b.now())
	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, models.ErrCodeExpired) {
		return invalidCodeText, nil
	} else if err != nil {
		return "", err
	}

	log.Debug().Int64("chat", chatID).Str("user", link.UserID.String()).Msg("chat linked")

	budget, err := b.budget(link)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("This chat is now linked with %s. Send \"12.50 coffee\" to record an expense.", budget.Name), nil
}

func (b *Bot) summary(chatID int64) (string, error) {
	link, member, err := b.member(chatID, models.PermissionRead)
	if err != nil || link == nil {
		return notLinkedOr(err)
	}

	budget, err := b.budget(*link)
	if err != nil {
		return "", err
	}

	month := types.MonthOf(b.now())
	summary, err := models.BuildMonthSummary(b.db, member.BudgetID, month)
	if err != nil {
		return "", err
	}

	lines := []string{
		fmt.Sprintf("%s, %s", budget.Name, month.Time().Format("January 2006")),
		fmt.Sprintf("Income: %s", money(summary.Income, budget.Currency)),
		fmt.Sprintf("Expenses: %s", money(summary.Expenses, budget.Currency)),
		fmt.Sprintf("Net: %s", money(summary.Net, budget.Currency)),
	}

	if !summary.PendingExpenses.IsZero() {
		lines = append(lines, fmt.Sprintf("Pending expenses: %s", money(summary.PendingExpenses, budget.Currency)))
	}

	return strings.Join(lines, "\n"), nil
}

func (b *Bot) expense(chatID int64, amount decimal.Decimal, description string) (string, error) {
	link, member, err := b.member(chatID, models.PermissionContribute)
	if err != nil || link == nil {
		return notLinkedOr(err)
	}

	categoryID, err := models.MatchCategory(b.db, member.BudgetID, description)
	if err != nil {
		return "", err
	}

	accountID, err := b.account(member.BudgetID)
	if err != nil {
		return "", err
	}

	now := b.now().In(time.UTC)
	transaction := models.Transaction{
		BudgetID:    member.BudgetID,
		AccountID:   accountID,
		CategoryID:  categoryID,
		MemberID:    &member.ID,
		Kind:        models.KindExpense,
		Status:      models.StatusPaid,
		Amount:      amount,
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Description: description,
	}

	err = b.db.Create(&transaction).Error
	if err != nil {
		return "", err
	}

	budget, err := b.budget(*link)
	if err != nil {
		return "", err
	}

	text := fmt.Sprintf("Recorded %s for \"%s\"", money(amount, budget.Currency), description)
	if categoryID != nil {
		var category models.Category
		err = b.db.First(&category, "id = ?", *categoryID).Error
		if err != nil {
			return "", err
		}
		text += fmt.Sprintf(" in %s", category.Name)
	}

	return text + ".", nil
}

// member returns the link of the chat and the member of its user in the
// linked budget. If the chat is not linked, nil is returned for the link.
func (b *Bot) member(chatID int64, p models.Permission) (*models.BotLink, models.Member, error) {
	link, err := models.LinkedChat(b.db, b.platform, chatID)
	if errors.Is(err, models.ErrResourceNotFound) {
		return nil, models.Member{}, nil
	} else if err != nil {
		return nil, models.Member{}, err
	}

	if link.BudgetID == nil {
		return nil, models.Member{}, nil
	}

	member, err := models.Authorize(b.db, link.UserID, *link.BudgetID, p)
	if err != nil {
		return &link, models.Member{}, err
	}

	return &link, member, nil
}

func (b *Bot) budget(link models.BotLink) (models.Budget, error) {
	var budget models.Budget
	if link.BudgetID == nil {
		return budget, nil
	}

	err := b.db.First(&budget, "id = ?", *link.BudgetID).Error
	return budget, err
}

// account returns the account quick expenses are booked on: the oldest
// account of the budget that is neither archived nor a credit card.
func (b *Bot) account(budgetID uuid.UUID) (*uuid.UUID, error) {
	var account models.Account
	err := b.db.
		Where(&models.Account{BudgetID: budgetID}).
		Where("archived = ? AND kind <> ?", false, models.AccountCreditCard).
		Order("created_at ASC").
		First(&account).Error

	if errors.Is(err, models.ErrResourceNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return &account.ID, nil
}

// notLinkedOr returns the reply for chats that cannot act on their budget.
func notLinkedOr(err error) (string, error) {
	switch {
	case err == nil:
		return notLinkedText, nil
	case errors.Is(err, models.ErrResourceNotFound), errors.Is(err, models.ErrForbidden):
		return noAccessText, nil
	}

	return "", err
}

// parseAmount parses a positive amount. Both "." and "," are accepted
// as decimal separator.
func parseAmount(s string) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, false
	}

	return amount, true
}

func money(amount decimal.Decimal, currency string) string {
	return fmt.Sprintf("%s %s", amount.StringFixed(2), currency)
}
