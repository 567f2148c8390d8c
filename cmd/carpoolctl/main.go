// Command carpoolctl builds carpool groups and schedules volunteer reminders from the terminal.
package main

import (
	"errors"
	"fmt"
	"os"

	"carpoolreminders/internal/domain"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, domain.ErrInvalidInput) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
