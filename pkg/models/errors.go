package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrUnauthorized     = errors.New("a valid bearer token is required")
	ErrForbidden        = errors.New("you do not have permission to perform this action")
	ErrPlanLimit        = errors.New("your plan does not allow this, upgrade to continue")

	ErrNameEmpty          = errors.New("the name must not be empty")
	ErrAmountNotPositive  = errors.New("the amount must be larger than zero")
	ErrDayOfMonth         = errors.New("the day of month must be between 1 and 31")
	ErrMonthRange         = errors.New("the end month must not be before the start month")
	ErrCrossBudget        = errors.New("all referenced resources must belong to the same budget")
	ErrInvalidCurrency    = errors.New("the currency must be a valid ISO 4217 code")
	ErrInvalidRole        = errors.New("the role must be one of owner, partner, child, pet")
	ErrOwnerRole          = errors.New("the owner role cannot be assigned")
	ErrOwnerImmutable     = errors.New("the owner of a budget cannot be changed or removed")
	ErrPetWithUser        = errors.New("pet members cannot be linked to a user")
	ErrAlreadyMember      = errors.New("the user is already a member of this budget")
	ErrCategoryKind       = errors.New("the kind must be one of expense, income")
	ErrNegativeLimit      = errors.New("the monthly limit must not be negative")
	ErrAccountKind        = errors.New("the kind must be one of checking, savings, cash, credit_card")
	ErrCreditCardDays     = errors.New("credit card accounts need a closing day and a due day between 1 and 31")
	ErrTransactionKind    = errors.New("the kind must be one of expense, income")
	ErrTransactionStatus  = errors.New("the status must be one of paid, pending")
	ErrContributionZero   = errors.New("the contribution amount must not be zero")
	ErrPatternEmpty       = errors.New("the pattern must not be empty")
	ErrInviteRole         = errors.New("invites can only be created for the roles partner and child")
	ErrInviteInvalid      = errors.New("the invite has already been accepted or has expired")
	ErrInviteEmail        = errors.New("the invite was issued for a different email address")
	ErrCodeExpired        = errors.New("the code has expired")
	ErrCodeArchived       = errors.New("the code is no longer valid")
	ErrCodeExhausted      = errors.New("the code has been redeemed the maximum number of times")
	ErrAlreadyRedeemed    = errors.New("you have already redeemed this code")
	ErrAlreadySubscribed  = errors.New("your plan is billed through Stripe, cancel it before redeeming a code")
	ErrInstallmentCount   = errors.New("the number of installments must be between 1 and 72")
	ErrInstallmentAmount  = errors.New("the amount must be at least 0.01 per installment")
	ErrSubscriptionStatus = errors.New("the status must be one of active, past_due, canceled, expired")
	ErrPlanRequired       = errors.New("a plan must be specified")

	ErrCategoryNameNotUnique  = errors.New("the category name must be unique for the budget")
	ErrAccountNameNotUnique   = errors.New("the account name must be unique for the budget")
	ErrGoalNameNotUnique      = errors.New("the goal name must be unique for the budget")
	ErrPlanCodeNotUnique      = errors.New("the plan code must be unique")
	ErrCouponCodeNotUnique    = errors.New("the coupon code must be unique")
	ErrSubjectNotUnique       = errors.New("a user with this subject already exists")
	ErrOccurrenceNotUnique    = errors.New("a transaction for this occurrence already exists")
	ErrSubscriptionNotUnique  = errors.New("the user already has a subscription")
	ErrAccessTokenNotUnique   = errors.New("the access link token must be unique")
	ErrInviteTokenNotUnique   = errors.New("the invite token must be unique")
	ErrBotLinkCodeNotUnique   = errors.New("the link code must be unique")
	ErrBotLinkChatNotUnique   = errors.New("the chat is already linked")
	ErrCategoryRuleNotUnique  = errors.New("a rule with this pattern already exists for the budget")
	ErrIncomeSourceNotUnique  = errors.New("the income source name must be unique for the budget")
	ErrRecurringBillNotUnique = errors.New("the recurring bill name must be unique for the budget")
)
