package routes

import (
	"testing"

	"restaurant-cart/libs"
	"restaurant-cart/repositories"
	"restaurant-cart/services"

	"github.com/stretchr/testify/assert"
)

func TestCartSlotFallsBackToMemory(t *testing.T) {
	log := libs.NopLogger()

	for _, backend := range []string{"redis", "postgres", "memory", "etcd"} {
		t.Run(backend, func(t *testing.T) {
			slot := cartSlot(backend, nil, nil, log)
			assert.IsType(t, &repositories.MemoryCartSlot{}, slot)
		})
	}
}

func TestCatalogSource(t *testing.T) {
	local := services.NewCatalogService(nil, nil, 0, libs.NopLogger())

	assert.Same(t, local, catalogSource("", local))
	assert.IsType(t, &libs.CatalogClient{}, catalogSource("http://catalog.local", local))
}
