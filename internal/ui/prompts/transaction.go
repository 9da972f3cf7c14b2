package prompts

import (
	"time"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/validation"
)

// PromptTransactionType prompts for one of the given type labels
func PromptTransactionType(labels []string) (string, error) {
	return PromptSelect("Transaction type:", labels, "")
}

// PromptTransactionStatus prompts for transaction status
func PromptTransactionStatus(statuses []string) (string, error) {
	return PromptSelect("Transaction status:", statuses, constants.StatusCompleted)
}

func PromptCurrency(currencies []string) (string, error) {
	return PromptSelect("Currency:", currencies, constants.CurrencyCash)
}

// PromptTransactionDate prompts for transaction date
func PromptTransactionDate() (string, error) {
	defaultDate := time.Now().UTC().Format(constants.DateFormat)
	return PromptDate(
		"Transaction Date (YYYY-MM-DD):",
		defaultDate,
		"Press Enter for today",
	)
}

func PromptTransactionAmount() (string, error) {
	return PromptAmount("Amount:", "Enter a positive amount, the type decides the direction", validation.ValidateAmount)
}
