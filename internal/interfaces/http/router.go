package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmfernandez/fabrica-api/internal/application/costing"
	"github.com/jmfernandez/fabrica-api/internal/application/inventory"
	"github.com/jmfernandez/fabrica-api/internal/application/planning"
	"github.com/jmfernandez/fabrica-api/internal/application/produccion"
	"github.com/jmfernandez/fabrica-api/internal/application/ventas"
	"github.com/jmfernandez/fabrica-api/internal/domain/security"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC  *inventory.UseCase
	PlanningUC   *planning.UseCase
	CostingUC    *costing.UseCase
	ProduccionUC *produccion.UseCase
	VentasUC     *ventas.UseCase
	Auditoria    *security.RegistroAuditoria
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Inventario
	inv := api.Group("/inventario")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Post("/movimientos", inventoryHandler.RegistrarMovimiento)
	inv.Get("/movimientos", inventoryHandler.Movimientos)
	inv.Get("/saldos", inventoryHandler.Saldos)

	// Planificación de materiales
	mrpHandler := NewMRPHandler(deps.PlanningUC)
	api.Post("/mrp/planificar", mrpHandler.Planificar)

	// Escandallos
	esc := api.Group("/escandallos")
	escandalloHandler := NewEscandalloHandler(deps.CostingUC)
	esc.Post("/", escandalloHandler.Crear)
	esc.Get("/:moduloID", escandalloHandler.Obtener)
	esc.Get("/:moduloID/historial", escandalloHandler.Historial)
	esc.Post("/:moduloID/medidas", escandalloHandler.ActualizarMedidas)
	esc.Put("/:moduloID/materiales/:nombre", escandalloHandler.ActualizarMaterial)

	// Producción
	produccionHandler := NewProduccionHandler(deps.ProduccionUC)
	api.Post("/pedidos", produccionHandler.CrearPedido)
	ordenes := api.Group("/ordenes")
	ordenes.Post("/", produccionHandler.CrearOrden)
	ordenes.Get("/:id", produccionHandler.Obtener)
	ordenes.Get("/:id/tiempos", produccionHandler.Tiempos)
	ordenes.Post("/:id/estaciones/:estacion/inicio", produccionHandler.RegistrarInicio)
	ordenes.Post("/:id/estaciones/:estacion/fin", produccionHandler.RegistrarFin)

	// Ventas
	ventasHandler := NewVentasHandler(deps.VentasUC)
	ov := api.Group("/ordenes-venta")
	ov.Post("/", ventasHandler.Crear)
	ov.Get("/:numero", ventasHandler.Obtener)
	ov.Put("/:numero/estado", ventasHandler.ActualizarEstado)

	// Auditoría
	auditHandler := NewAuditHandler(deps.Auditoria)
	api.Get("/auditoria", auditHandler.Eventos)
}
