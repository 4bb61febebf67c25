package renderer

import (
	"github.com/lixenwraith/stardrift/render"
	"github.com/lixenwraith/stardrift/status"
)

// RegisterAll installs the run renderers in draw order
func RegisterAll(o *render.Orchestrator, reg *status.Registry) {
	type rendererDef struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}

	defs := []rendererDef{
		{NewStarfieldRenderer(), render.PriorityBackground},
		{NewFieldRenderer(), render.PriorityField},
		{NewEntityRenderer(), render.PriorityEntities},
		{NewPlayerRenderer(), render.PriorityPlayer},
		{NewEffectRenderer(), render.PriorityEffects},
		{NewHUDRenderer(reg), render.PriorityUI},
		{NewOverlayRenderer(), render.PriorityOverlay},
	}
	for _, def := range defs {
		o.Register(def.renderer, def.priority)
	}
}
