package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/GriffinCanCode/calculator/internal/shared/utils"
	"github.com/GriffinCanCode/calculator/internal/types"
)

// Registry manages service discovery and execution
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// NewRegistry creates a new service registry
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds a service provider
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if err := utils.ValidateID(def.ID, "service ID", true); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[def.ID]; exists {
		return fmt.Errorf("service already registered: %s", def.ID)
	}
	r.providers[def.ID] = provider
	return nil
}

// Unregister removes a service provider
func (r *Registry) Unregister(serviceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.providers, serviceID)
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[serviceID]
	return p, ok
}

// List returns registered services sorted by ID, optionally filtered
func (r *Registry) List(category *types.Category) []types.Service {
	r.mu.RLock()
	defer r.mu.RUnlock()

	services := make([]types.Service, 0, len(r.providers))
	for _, provider := range r.providers {
		def := provider.Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
	}

	sort.Slice(services, func(i, j int) bool {
		return services[i].ID < services[j].ID
	})
	return services
}

// Tools returns every tool of every service, sorted by ID
func (r *Registry) Tools() []types.Tool {
	var tools []types.Tool
	for _, svc := range r.List(nil) {
		tools = append(tools, svc.Tools...)
	}
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].ID < tools[j].ID
	})
	return tools
}

// Discover finds relevant services for a given intent
func (r *Registry) Discover(intent string, limit int) []types.Service {
	type scoredService struct {
		service types.Service
		score   float64
	}

	intentLower := strings.ToLower(intent)
	var results []scoredService

	for _, def := range r.List(nil) {
		if score := serviceRelevance(intentLower, def); score > 0 {
			results = append(results, scoredService{service: def, score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	output := make([]types.Service, 0, limit)
	for i := 0; i < len(results) && i < limit; i++ {
		output = append(output, results[i].service)
	}
	return output
}

// DiscoverTools ranks individual tools against an intent such as
// "square root" or "compound interest".
func (r *Registry) DiscoverTools(intent string, limit int) []types.Tool {
	type scoredTool struct {
		tool  types.Tool
		score float64
	}

	words := intentWords(intent)
	var results []scoredTool

	for _, tool := range r.Tools() {
		if score := toolRelevance(strings.ToLower(intent), words, tool); score > 0 {
			results = append(results, scoredTool{tool: tool, score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	output := make([]types.Tool, 0, limit)
	for i := 0; i < len(results) && i < limit; i++ {
		output = append(output, results[i].tool)
	}
	return output
}

// Execute routes "service.tool" to the owning provider
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if err := utils.ValidateToolID(toolID, "tool ID"); err != nil {
		return &types.Result{
			Success: false,
			Error:   stringPtr(err.Error()),
			Code:    types.CodeUnknownTool,
		}, err
	}

	serviceID, _, _ := strings.Cut(toolID, ".")
	provider, ok := r.Get(serviceID)
	if !ok {
		return &types.Result{
			Success: false,
			Error:   stringPtr(fmt.Sprintf("service not found: %s", serviceID)),
			Code:    types.CodeUnknownTool,
		}, fmt.Errorf("service not found: %s", serviceID)
	}

	return provider.Execute(ctx, toolID, params, appCtx)
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	var total, totalTools int
	categories := make(map[string]int)

	for _, def := range r.List(nil) {
		total++
		totalTools += len(def.Tools)
		categories[string(def.Category)]++
	}

	return map[string]interface{}{
		"total_services": total,
		"total_tools":    totalTools,
		"categories":     categories,
	}
}

func serviceRelevance(intent string, service types.Service) float64 {
	score := 0.0

	if strings.Contains(intent, service.ID) || strings.Contains(intent, strings.ToLower(service.Name)) {
		score += 10.0
	}

	for _, word := range strings.Fields(strings.ToLower(service.Description)) {
		word = strings.Trim(word, ",.:;")
		if len(word) > 2 && strings.Contains(intent, word) {
			score += 5.0
		}
	}

	for _, capability := range service.Capabilities {
		capClean := strings.ReplaceAll(strings.ToLower(capability), "_", " ")
		if strings.Contains(intent, capClean) {
			score += 3.0
		}
	}

	if strings.Contains(intent, string(service.Category)) {
		score += 2.0
	}

	return score
}

func toolRelevance(intent string, words []string, tool types.Tool) float64 {
	name := strings.ToLower(tool.Name)
	desc := strings.ToLower(tool.Description)
	score := 0.0

	if intent != "" && strings.Contains(name, intent) {
		score += 10.0
	}
	for _, word := range words {
		if strings.Contains(name, word) {
			score += 5.0
		}
		if strings.Contains(desc, word) {
			score += 3.0
		}
		if strings.Contains(strings.ToLower(tool.ID), word) {
			score += 2.0
		}
	}
	return score
}

// intentWords splits an intent into lowercase words of three or more letters
func intentWords(intent string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(intent)) {
		if len(w) >= 3 {
			words = append(words, w)
		}
	}
	return words
}

func stringPtr(s string) *string {
	return &s
}
