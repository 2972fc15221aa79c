package app

import (
	"context"
	"fmt"

	"github.com/handykit/handykit/pkg/validate"
)

// ExecuteValidateCardCommand validates a payment card number and prints
// the verdict along with the detected card network.
func ExecuteValidateCardCommand(_ context.Context, number string) {
	result := validate.ValidateCard(number)

	network := string(result.Type)
	if network == "" {
		network = "unknown"
	}

	if result.Valid {
		fmt.Printf("valid (%s)\n", network)
		return
	}

	fmt.Printf("invalid (%s)\n", network)
}

// ExecuteValidateISBNCommand validates an ISBN and prints the verdict
// along with the detected form.
func ExecuteValidateISBNCommand(_ context.Context, code string) {
	result := validate.ValidateISBN(code)

	if result.Valid {
		fmt.Printf("valid (%s)\n", result.Kind)
		return
	}

	fmt.Println("invalid")
}
