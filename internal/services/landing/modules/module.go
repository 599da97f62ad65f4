// Package modules defines landing module registry helpers.
package modules

import module "github.com/louisbranch/multimodal-ai/internal/services/landing/module"

// Dependencies aliases the shared module dependencies type.
type Dependencies = module.Dependencies

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module
