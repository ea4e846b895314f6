package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ErickGoytia/CuidaTec/internal/models"
)

// tituloPorDefecto se usa cuando el reporte llega sin título y sin
// descripción de la cual derivar uno.
const tituloPorDefecto = "Reporte de fuga"

// observacionResuelto es la nota fija que queda en el historial al
// marcar un reporte como resuelto.
const observacionResuelto = "Marcado resuelto desde panel admin"

// fechaFormato es el formato con el que el panel espera las fechas.
const fechaFormato = "2006-01-02 15:04"

// ReporteService define las operaciones de negocio sobre reportes:
// alta ciudadana y ciclo de vida administrado (listar, detalle,
// resolver, borrado lógico, asignación de brigadas).
type ReporteService interface {
	// CrearReporte inserta ubicación y reporte en una transacción y
	// devuelve el id del reporte nuevo.
	CrearReporte(ctx context.Context, req *models.ReporteRequest) (int64, error)

	// ListarReportes devuelve los reportes no eliminados, el más
	// reciente primero.
	ListarReportes(ctx context.Context) ([]models.ReporteResumen, error)

	// DetalleReporte devuelve ficha, historial y asignaciones de un
	// reporte. No filtra eliminados: el borrado lógico solo saca al
	// reporte del listado.
	DetalleReporte(ctx context.Context, id int64) (*models.ReporteDetalle, error)

	// ResolverReporte pasa el reporte al estado resuelto y deja la
	// transición en el historial, todo en una transacción.
	ResolverReporte(ctx context.Context, id int64) error

	// EliminarReporte marca eliminado=1 sin borrar el renglón.
	EliminarReporte(ctx context.Context, id int64) error

	// AsignarReporte registra una asignación a brigada o responsable.
	AsignarReporte(ctx context.Context, id int64, req *models.AsignacionRequest) error
}

// reporteService es la implementación concreta de ReporteService.
type reporteService struct {
	db      *gorm.DB
	estados EstadoCatalog
}

// NewReporteService inyecta el *gorm.DB y el catálogo de estados y
// devuelve una instancia de ReporteService lista para usar.
func NewReporteService(db *gorm.DB, estados EstadoCatalog) ReporteService {
	return &reporteService{db: db, estados: estados}
}

func (s *reporteService) CrearReporte(ctx context.Context, req *models.ReporteRequest) (int64, error) {
	// Validación antes de tocar el banco: si falta algo obligatorio
	// no debe quedar ninguna ubicación huérfana.
	if strings.TrimSpace(req.Descripcion) == "" || strings.TrimSpace(req.Calle) == "" {
		return 0, ErrDatosObligatorios
	}

	// El estado inicial se resuelve por nombre contra el catálogo;
	// si no hay ninguno configurado el reporte nace sin estado.
	estadoInicial, err := s.estados.EstadoInicial(ctx)
	if err != nil {
		return 0, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// 1. Insertar la ubicación (pertenece solo a este reporte)
	ubicacion := models.Ubicacion{
		Calle:        req.Calle,
		Colonia:      req.Colonia,
		CodigoPostal: req.CodigoPostal,
		Referencias:  req.Referencias,
	}
	if err := tx.Create(&ubicacion).Error; err != nil {
		tx.Rollback()
		return 0, err
	}

	// 2. Insertar el reporte apuntando a la ubicación y al estado
	// inicial. El folio siempre nace nulo.
	reporte := models.Reporte{
		Titulo:             tituloEfectivo(req.Titulo, req.Descripcion),
		Descripcion:        req.Descripcion,
		FechaReporte:       time.Now(),
		UbicacionID:        ubicacion.UbicacionID,
		CategoriaID:        req.CategoriaID,
		SeveridadID:        req.SeveridadID,
		EstadoActualID:     estadoInicial,
		ReportanteNombre:   opcional(req.ReportanteNombre),
		ReportanteContacto: opcional(req.ReportanteContacto),
		Eliminado:          0,
	}
	if err := tx.Create(&reporte).Error; err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := tx.Commit().Error; err != nil {
		return 0, err
	}

	return reporte.ReporteID, nil
}

func (s *reporteService) ListarReportes(ctx context.Context) ([]models.ReporteResumen, error) {
	var reportes []models.Reporte
	err := s.db.WithContext(ctx).
		Preload("Estado").
		Where("eliminado = 0").
		Order("reporte_id DESC").
		Find(&reportes).Error
	if err != nil {
		return nil, err
	}

	resumen := make([]models.ReporteResumen, 0, len(reportes))
	for _, r := range reportes {
		item := models.ReporteResumen{
			ReporteID:    r.ReporteID,
			Folio:        r.Folio,
			Titulo:       r.Titulo,
			FechaReporte: r.FechaReporte.Format(fechaFormato),
		}
		if r.Estado != nil {
			item.Estado = r.Estado.Nombre
		}
		resumen = append(resumen, item)
	}
	return resumen, nil
}

func (s *reporteService) DetalleReporte(ctx context.Context, id int64) (*models.ReporteDetalle, error) {
	var reporte models.Reporte
	err := s.db.WithContext(ctx).
		Preload("Ubicacion").
		Preload("Estado").
		Preload("Categoria").
		Preload("Severidad").
		First(&reporte, "reporte_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReporteNoEncontrado
	}
	if err != nil {
		return nil, err
	}

	var historial []models.HistorialEstado
	err = s.db.WithContext(ctx).
		Preload("EstadoAnterior").
		Preload("EstadoNuevo").
		Where("reporte_id = ?", id).
		Order("fecha_cambio ASC, historial_id ASC").
		Find(&historial).Error
	if err != nil {
		return nil, err
	}

	var asignaciones []models.Asignacion
	err = s.db.WithContext(ctx).
		Preload("Estudiante").
		Where("reporte_id = ?", id).
		Order("fecha_asignacion DESC, asignacion_id DESC").
		Find(&asignaciones).Error
	if err != nil {
		return nil, err
	}

	detalle := models.ReporteDetalle{
		Info:         armarInfo(&reporte),
		Historial:    make([]models.HistorialEntrada, 0, len(historial)),
		Asignaciones: make([]models.AsignacionEntrada, 0, len(asignaciones)),
	}

	for _, h := range historial {
		detalle.Historial = append(detalle.Historial, models.HistorialEntrada{
			HistorialID:    h.HistorialID,
			EstadoAnterior: nombreEstado(h.EstadoAnterior),
			EstadoNuevo:    nombreEstado(h.EstadoNuevo),
			Observaciones:  h.Observaciones,
			FechaCambio:    h.FechaCambio.Format(fechaFormato),
		})
	}

	for _, a := range asignaciones {
		entrada := models.AsignacionEntrada{
			AsignacionID:    a.AsignacionID,
			FechaAsignacion: a.FechaAsignacion.Format(fechaFormato),
			Responsable:     a.Responsable,
		}
		if a.Estudiante != nil {
			entrada.Matricula = &a.Estudiante.Matricula
			entrada.EstudianteNombre = &a.Estudiante.Nombre
			entrada.Correo = &a.Estudiante.Correo
		}
		detalle.Asignaciones = append(detalle.Asignaciones, entrada)
	}

	return &detalle, nil
}

func (s *reporteService) ResolverReporte(ctx context.Context, id int64) error {
	// Estado destino por nombre; si el catálogo no tiene RESUELTO ni
	// CERRADO el reporte conserva su estado actual.
	estadoResuelto, err := s.estados.EstadoResuelto(ctx)
	if err != nil {
		return err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// 1. Leer el estado actual
	var reporte models.Reporte
	err = tx.Select("reporte_id", "estado_actual_id").
		First(&reporte, "reporte_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return ErrReporteNoEncontrado
	}
	if err != nil {
		tx.Rollback()
		return err
	}

	estadoAnterior := reporte.EstadoActualID
	estadoNuevo := estadoAnterior
	if estadoResuelto != nil {
		estadoNuevo = estadoResuelto
	}

	ahora := time.Now()

	// 2. Actualizar el reporte con estado nuevo y fecha de cierre
	err = tx.Model(&models.Reporte{}).
		Where("reporte_id = ?", id).
		Updates(map[string]interface{}{
			"estado_actual_id": estadoNuevo,
			"fecha_cierre":     ahora,
		}).Error
	if err != nil {
		tx.Rollback()
		return err
	}

	// 3. Dejar la transición en el historial, en la misma transacción:
	// o quedan ambas escrituras o ninguna.
	entrada := models.HistorialEstado{
		ReporteID:        id,
		EstadoAnteriorID: estadoAnterior,
		EstadoNuevoID:    estadoNuevo,
		Observaciones:    observacionResuelto,
		FechaCambio:      ahora,
	}
	if err := tx.Create(&entrada).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (s *reporteService) EliminarReporte(ctx context.Context, id int64) error {
	// Borrado lógico: un solo UPDATE, sin transacción.
	res := s.db.WithContext(ctx).
		Model(&models.Reporte{}).
		Where("reporte_id = ?", id).
		Update("eliminado", 1)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrReporteNoEncontrado
	}
	return nil
}

func (s *reporteService) AsignarReporte(ctx context.Context, id int64, req *models.AsignacionRequest) error {
	responsable := strings.TrimSpace(req.Responsable)
	if req.EstudianteID == nil && responsable == "" {
		return ErrAsignacionIncompleta
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// Las asignaciones no tocan el estado del reporte ni su
	// historial: solo registran custodia.
	asignacion := models.Asignacion{
		ReporteID:       id,
		EstudianteID:    req.EstudianteID,
		Responsable:     opcional(responsable),
		FechaAsignacion: time.Now(),
	}
	if err := tx.Create(&asignacion).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// tituloEfectivo aplica la cadena de respaldo del título: título
// explícito, primeros 60 caracteres de la descripción, o el fijo.
func tituloEfectivo(titulo, descripcion string) string {
	if t := strings.TrimSpace(titulo); t != "" {
		return t
	}
	if d := strings.TrimSpace(descripcion); d != "" {
		runes := []rune(d)
		if len(runes) > 60 {
			runes = runes[:60]
		}
		return string(runes)
	}
	return tituloPorDefecto
}

// armarInfo proyecta el reporte con sus catálogos a la ficha del
// detalle, con fechas nulas cuando faltan o vienen en cero.
func armarInfo(r *models.Reporte) models.ReporteInfo {
	info := models.ReporteInfo{
		ReporteID:          r.ReporteID,
		Folio:              r.Folio,
		Titulo:             r.Titulo,
		Descripcion:        r.Descripcion,
		FechaReporte:       formatearFecha(&r.FechaReporte),
		FechaCierre:        formatearFecha(r.FechaCierre),
		ReportanteNombre:   r.ReportanteNombre,
		ReportanteContacto: r.ReportanteContacto,
	}
	if r.Estado != nil {
		info.Estado = &r.Estado.Nombre
	}
	if r.Categoria != nil {
		info.Categoria = &r.Categoria.Nombre
	}
	if r.Severidad != nil {
		info.Severidad = &r.Severidad.Nombre
	}
	if r.Ubicacion != nil {
		info.Calle = &r.Ubicacion.Calle
		info.Colonia = &r.Ubicacion.Colonia
		info.CodigoPostal = &r.Ubicacion.CodigoPostal
		info.Referencias = &r.Ubicacion.Referencias
	}
	return info
}

// formatearFecha trata la fecha cero como nula (centinela que dejan
// algunos registros viejos) y formatea el resto.
func formatearFecha(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	f := t.Format(fechaFormato)
	return &f
}

func nombreEstado(e *models.Estado) *string {
	if e == nil {
		return nil
	}
	return &e.Nombre
}

// opcional convierte cadena vacía en NULL.
func opcional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
