package modules

import "github.com/louisbranch/multimodal-ai/internal/services/landing/modules/public"

// DefaultModules returns the modules mounted by the landing service.
func DefaultModules() []Module {
	return []Module{
		public.New(),
	}
}
