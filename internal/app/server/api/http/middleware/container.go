package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Container копит мидлвари для очередного обработчика. Базовые мидлвари
// идут первыми в каждом наборе.
type Container struct {
	base    huma.Middlewares
	pending huma.Middlewares
}

func NewContainer(base ...func(ctx huma.Context, next func(huma.Context))) *Container {
	return &Container{
		base: base,
	}
}

// Add добавляет одну мидлварь в текущий набор
func (mc *Container) Add(middleware func(ctx huma.Context, next func(huma.Context))) {
	mc.pending = append(mc.pending, middleware)
}

// GetAllAndClear возвращает базовые и накопленные мидлвари и начинает новый набор
func (mc *Container) GetAllAndClear() huma.Middlewares {
	result := make(huma.Middlewares, 0, len(mc.base)+len(mc.pending))
	result = append(result, mc.base...)
	result = append(result, mc.pending...)
	mc.pending = nil
	return result
}
