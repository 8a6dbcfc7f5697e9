package types

// Category groups services
type Category string

const (
	CategoryMath       Category = "math"
	CategoryStatistics Category = "statistics"
	CategoryFinance    Category = "finance"
	CategoryConversion Category = "conversion"
)

// Service represents a service definition
type Service struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	Category     Category `json:"category" yaml:"category"`
	Capabilities []string `json:"capabilities" yaml:"capabilities"`
	Tools        []Tool   `json:"tools" yaml:"tools"`
}

// Tool represents a service tool
type Tool struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Parameters  []Parameter `json:"parameters" yaml:"parameters"`
	Returns     string      `json:"returns" yaml:"returns"`
}

// Parameter represents a tool parameter
type Parameter struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"` // "number", "integer", "array"
	Description string `json:"description" yaml:"description"`
	Required    bool   `json:"required" yaml:"required"`
}

// Context carries caller identity through an execution
type Context struct {
	RequestID *string `json:"request_id,omitempty" yaml:"request_id,omitempty"`
	Source    *string `json:"source,omitempty" yaml:"source,omitempty"` // "cli", "batch"
}

// Result represents a service execution result
type Result struct {
	Success bool                   `json:"success" yaml:"success"`
	Data    map[string]interface{} `json:"data,omitempty" yaml:"data,omitempty"`
	Error   *string                `json:"error,omitempty" yaml:"error,omitempty"`
	Code    string                 `json:"code,omitempty" yaml:"code,omitempty"`
}

// Error codes carried by failed results
const (
	CodeInvalidArgument = "invalid_argument"
	CodeDivisionByZero  = "division_by_zero"
	CodeInvalidParams   = "invalid_params"
	CodeUnknownTool     = "unknown_tool"
)
