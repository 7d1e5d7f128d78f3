package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appcosting "github.com/jmfernandez/fabrica-api/internal/application/costing"
	appinventory "github.com/jmfernandez/fabrica-api/internal/application/inventory"
	appplanning "github.com/jmfernandez/fabrica-api/internal/application/planning"
	appproduccion "github.com/jmfernandez/fabrica-api/internal/application/produccion"
	appventas "github.com/jmfernandez/fabrica-api/internal/application/ventas"
	"github.com/jmfernandez/fabrica-api/internal/domain/inventory"
	"github.com/jmfernandez/fabrica-api/internal/domain/security"
	"github.com/jmfernandez/fabrica-api/internal/infrastructure/memory"
	httpRouter "github.com/jmfernandez/fabrica-api/internal/interfaces/http"
	"github.com/jmfernandez/fabrica-api/pkg/config"
	"github.com/jmfernandez/fabrica-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Puerta de autorización y auditoría. Los permisos se configuran una vez
	// al arrancar y después solo se consultan.
	permisos := security.NuevosPermisosRol()
	auditoria := security.NuevoRegistroAuditoria()
	configurarPermisos(permisos, log)
	gate := security.NuevoGate(permisos, auditoria)

	// Agregados y repositorios en memoria de proceso.
	libro := inventory.NuevoLibro()
	escandalloRepo := memory.NewEscandalloRepository()
	ordenRepo := memory.NewOrdenProduccionRepository()
	pedidoRepo := memory.NewPedidoRepository()
	ordenVentaRepo := memory.NewOrdenVentaRepository()

	inventoryUC := appinventory.NewUseCase(libro, gate, log)
	planningUC := appplanning.NewUseCase(log)
	costingUC := appcosting.NewUseCase(escandalloRepo, log)
	produccionUC := appproduccion.NewUseCase(ordenRepo, pedidoRepo, gate, log)
	ventasUC := appventas.NewUseCase(ordenVentaRepo, log)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC:  inventoryUC,
		PlanningUC:   planningUC,
		CostingUC:    costingUC,
		ProduccionUC: produccionUC,
		VentasUC:     ventasUC,
		Auditoria:    auditoria,
	})

	// Apagado ordenado ante SIGINT/SIGTERM.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("apagando servidor")
		_ = app.Shutdown()
	}()

	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
	if err := app.Listen(cfg.HTTP.Addr()); err != nil {
		log.Fatal().Err(err).Msg("servidor HTTP")
	}
}

// configurarPermisos fija la tabla de permisos por rol. En despliegues reales
// esto vendría de la administración de usuarios externa; aquí se fija el
// reparto de planta habitual.
func configurarPermisos(permisos *security.PermisosRol, log *logger.Logger) {
	asignaciones := []struct {
		rol      string
		modulo   string
		acciones []string
	}{
		{"administracion", "ordenes", []string{"crear_orden", "cancelar_produccion", "consultar"}},
		{"administracion", "inventario", []string{"ajustar_inventario", "consultar"}},
		{"administracion", "compras", []string{"aprobar_compra", "consultar"}},
		{"produccion", "ordenes", []string{"crear_orden", "consultar"}},
		{"almacen", "inventario", []string{"ajustar_inventario", "consultar"}},
		{"compras", "compras", []string{"aprobar_compra", "consultar"}},
		{"ventas", "ordenes", []string{"consultar"}},
	}
	for _, a := range asignaciones {
		if err := permisos.ConfigurarModulo(a.rol, a.modulo, a.acciones...); err != nil {
			log.Fatal().Err(err).Str("rol", a.rol).Msg("configurar permisos")
		}
	}
}
