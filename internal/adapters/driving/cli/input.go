package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/clinic-billing/internal/core/domain"
)

// parseID converts user input into a record ID.
func parseID(input, what string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q, please enter a number: %w", what, input, domain.ErrInvalidInput)
	}
	return id, nil
}

// parseIDList converts a comma-separated list such as "1, 2,2" into IDs,
// keeping order and duplicates.
func parseIDList(input string) ([]int, error) {
	parts := strings.Split(input, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid service ID list %q, please enter numbers separated by commas: %w",
				input, domain.ErrInvalidInput)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// readLine reads one trimmed line. ok is false once input is exhausted and
// nothing was read.
func readLine(reader *bufio.Reader) (line string, ok bool) {
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return "", false
	}
	return strings.TrimSpace(input), true
}
