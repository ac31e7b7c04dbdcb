// Package modules contains self-contained application features.
//
// Each subdirectory implements module.Module and is mounted under /<name>.
// Modules are listed in internal/app/modules.go and resolve shared services
// from the injector when they boot.
package modules
