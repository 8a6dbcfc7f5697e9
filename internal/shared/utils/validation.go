package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Size limits (in bytes)
const (
	MaxScriptSize = 1 * 1024 * 1024 // batch script file
	MaxParamsSize = 64 * 1024       // inline --params object
)

// Structural limits
const (
	MaxIDLength    = 128
	MaxParamsDepth = 8
)

var (
	// SafeIDPattern allows alphanumeric, hyphens, underscores
	SafeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	// ToolIDPattern requires the service.tool format
	ToolIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+$`)
)

// ValidateSize checks that a payload does not exceed maxSize bytes
func ValidateSize(data []byte, what string, maxSize int) error {
	if len(data) > maxSize {
		return fmt.Errorf("%s size %d bytes exceeds maximum %d bytes", what, len(data), maxSize)
	}
	return nil
}

// ValidateDepth checks that decoded parameters nest no deeper than maxDepth
func ValidateDepth(data interface{}, maxDepth int) error {
	return checkDepth(data, 0, maxDepth)
}

func checkDepth(data interface{}, currentDepth int, maxDepth int) error {
	if currentDepth > maxDepth {
		return fmt.Errorf("nesting depth %d exceeds maximum %d", currentDepth, maxDepth)
	}

	switch v := data.(type) {
	case map[string]interface{}:
		for _, value := range v {
			if err := checkDepth(value, currentDepth+1, maxDepth); err != nil {
				return err
			}
		}
	case []interface{}:
		for _, value := range v {
			if err := checkDepth(value, currentDepth+1, maxDepth); err != nil {
				return err
			}
		}
	}

	return nil
}

// ValidateString validates a string field with length and content checks
func ValidateString(value, fieldName string, maxLen int, required bool) error {
	if value == "" {
		if required {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}

	if utf8.RuneCountInString(value) > maxLen {
		return fmt.Errorf("%s must not exceed %d characters", fieldName, maxLen)
	}
	if strings.Contains(value, "\x00") {
		return fmt.Errorf("%s contains invalid characters", fieldName)
	}
	return nil
}

// ValidateID validates a service or step ID
func ValidateID(id, fieldName string, required bool) error {
	if err := ValidateString(id, fieldName, MaxIDLength, required); err != nil {
		return err
	}

	if id != "" && !SafeIDPattern.MatchString(id) {
		return fmt.Errorf("%s %q contains invalid characters (only alphanumeric, hyphens, and underscores allowed)", fieldName, id)
	}
	return nil
}

// ValidateToolID validates a service.tool identifier
func ValidateToolID(id, fieldName string) error {
	if err := ValidateString(id, fieldName, MaxIDLength, true); err != nil {
		return err
	}

	if !ToolIDPattern.MatchString(id) {
		return fmt.Errorf("%s %q must have the form service.tool", fieldName, id)
	}
	return nil
}
