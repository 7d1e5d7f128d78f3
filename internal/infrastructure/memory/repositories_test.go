package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmfernandez/fabrica-api/internal/domain"
	"github.com/jmfernandez/fabrica-api/internal/domain/escandallo"
	"github.com/jmfernandez/fabrica-api/internal/domain/produccion"
	"github.com/jmfernandez/fabrica-api/internal/domain/ventas"
	"github.com/jmfernandez/fabrica-api/internal/infrastructure/memory"
)

func TestEscandalloRepository_SaveYGet(t *testing.T) {
	repo := memory.NewEscandalloRepository()

	e := escandallo.Nuevo("MOD-3P", nil, nil)
	require.NoError(t, repo.Save(e))

	got, err := repo.GetByModuloID("MOD-3P")
	require.NoError(t, err)
	assert.Same(t, e, got)

	_, err = repo.GetByModuloID("MOD-X")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrdenProduccionRepository_ListaEnOrdenDeCreacion(t *testing.T) {
	repo := memory.NewOrdenProduccionRepository()
	pedido := &produccion.Pedido{ID: "PED-001", Cliente: "Muebles del Norte"}

	for _, id := range []string{"OP-1", "OP-2", "OP-3"} {
		orden, err := produccion.CrearOrdenProduccion(id, pedido, nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(orden))
	}

	ordenes, err := repo.List()
	require.NoError(t, err)
	require.Len(t, ordenes, 3)
	assert.Equal(t, "OP-1", ordenes[0].ID)
	assert.Equal(t, "OP-3", ordenes[2].ID)

	_, err = repo.GetByID("OP-9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPedidoRepository_SaveYGet(t *testing.T) {
	repo := memory.NewPedidoRepository()
	require.NoError(t, repo.Save(&produccion.Pedido{ID: "PED-001", Cliente: "Muebles del Norte"}))

	p, err := repo.GetByID("PED-001")
	require.NoError(t, err)
	assert.Equal(t, "Muebles del Norte", p.Cliente)

	_, err = repo.GetByID("PED-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrdenVentaRepository_SaveYGet(t *testing.T) {
	repo := memory.NewOrdenVentaRepository()
	eur := ventas.Moneda{Codigo: "EUR", Simbolo: "€"}
	orden := ventas.NuevaOrdenVenta("OV-2026-001", &ventas.Cliente{ID: "C-1", Nombre: "Muebles del Norte"}, eur)
	require.NoError(t, repo.Save(orden))

	got, err := repo.GetByNumero("OV-2026-001")
	require.NoError(t, err)
	assert.Same(t, orden, got)

	_, err = repo.GetByNumero("OV-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
