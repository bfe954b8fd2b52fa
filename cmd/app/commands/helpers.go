// Package commands contains CLI command implementations for the application.
package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bitesapp/security/internal/app"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// validateFormat rejects output formats other than "text" and "json".
func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
}

// writeResult prints fields as indented JSON or as "label: value" lines, in order.
func writeResult(writer io.Writer, format string, fields [][2]string) error {
	if format == "json" {
		result := make(map[string]string, len(fields))
		for _, f := range fields {
			result[f[0]] = f[1]
		}
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, _ = fmt.Fprintln(writer, string(jsonBytes))
		return nil
	}

	for _, f := range fields {
		_, _ = fmt.Fprintf(writer, "%s: %s\n", f[0], f[1])
	}
	return nil
}

// readValue returns value when set, otherwise reads one line from the reader so secrets
// can be piped in instead of appearing in the process list.
func readValue(tuple IOTuple, value, name string) (string, error) {
	if value != "" {
		return value, nil
	}
	if tuple.Reader == nil {
		return "", fmt.Errorf("%s is required", name)
	}

	line, err := bufio.NewReader(tuple.Reader).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	return line, nil
}
