// Package service provides the service registry.
//
// The registry holds service providers, lists their tools, ranks services
// and tools against free-text intents, and routes "service.tool" IDs to the
// owning provider.
//
// Discovery scoring:
//   - Intent contained in tool or service name
//   - Keyword matches in name, description and ID
//   - Capability and category bonuses for services
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(math.NewProvider())
//	tools := registry.DiscoverTools("square root", 3)
//	result, err := registry.Execute(ctx, "math.sqrt", params, appCtx)
package service
