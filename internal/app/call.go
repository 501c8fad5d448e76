package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/meridianhq/meridian-cli/internal/config"
	"github.com/meridianhq/meridian-cli/internal/logger"
)

// ExecuteCallCommand invokes a server-side function and prints its result.
// Each argument is parsed as JSON; arguments that are not valid JSON
// are passed through as plain strings.
func ExecuteCallCommand(ctx context.Context, cfg *config.Config, name string, rawArguments []string) {
	client, err := newAPIClient(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize API client: %v", err)
	}

	arguments := make([]any, 0, len(rawArguments))

	for _, rawArgument := range rawArguments {
		var argument any
		if err = json.Unmarshal([]byte(rawArgument), &argument); err != nil {
			argument = rawArgument
		}

		arguments = append(arguments, argument)
	}

	result, err := client.CallFunction(ctx, name, arguments)
	if err != nil {
		logger.Fatalf(ctx, "Failed to call function %q: %v", name, err)
	}

	formatted, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatalf(ctx, "Failed to format function result: %v", err)
	}

	fmt.Println(string(formatted))
}
