package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// References
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFoundOr(err, "user_not_found")
	}
	return &u, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, notFoundOr(err, "service_not_found")
	}
	return &s, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

// activeSlot filtra agendamentos não cancelados do barbeiro no instante exato.
func activeSlot(tx *gorm.DB, slot domain.Slot) *gorm.DB {
	return tx.
		Model(&models.Appointment{}).
		Where(
			"barber_id = ? AND appointment_date = ? AND status <> ?",
			slot.BarberID,
			slot.At,
			string(domain.StatusCancelled),
		)
}

func (r *AppointmentGormRepository) IsSlotTaken(
	ctx context.Context,
	slot domain.Slot,
) (bool, error) {

	var count int64
	if err := activeSlot(r.db.WithContext(ctx), slot).Count(&count).Error; err != nil {
		return false, httperr.ErrStorage(err)
	}
	return count > 0, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) BookSlot(
	ctx context.Context,
	ap *models.Appointment,
) error {

	ap.AppointmentDate = domain.NormalizeTime(ap.AppointmentDate)
	slot := domain.NewSlot(ap.BarberID, ap.AppointmentDate)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var existing []models.Appointment
		if err := activeSlot(tx, slot).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Find(&existing).Error; err != nil {
			return err
		}

		if len(existing) > 0 {
			return httperr.ErrConflict(domain.CodeSlotUnavailable)
		}

		// o índice parcial fecha a corrida entre duas transações que não viram linha alguma
		return tx.Create(ap).Error
	})

	switch {
	case err == nil:
		return nil
	case httperr.IsBusiness(err, domain.CodeSlotUnavailable), httperr.IsUniqueViolation(err):
		return httperr.ErrConflict(domain.CodeSlotUnavailable)
	default:
		return httperr.ErrStorage(err)
	}
}

// --------------------------------------------------
// Appointment (Cancel / Complete)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, notFoundOr(err, "appointment_not_found")
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ApplyTransition(
	ctx context.Context,
	ap *models.Appointment,
	from domain.Status,
) error {

	changes := map[string]any{"status": ap.Status}
	if ap.CancelledAt != nil {
		changes["cancelled_at"] = *ap.CancelledAt
	}
	if ap.CompletedAt != nil {
		changes["completed_at"] = *ap.CompletedAt
	}

	// a condição no status fecha a corrida entre duas mudanças simultâneas
	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", ap.ID, string(from)).
		Updates(changes)

	switch {
	case httperr.IsUniqueViolation(res.Error):
		return httperr.ErrConflict(domain.CodeSlotUnavailable)
	case res.Error != nil:
		return httperr.ErrStorage(res.Error)
	case res.RowsAffected == 0:
		return httperr.ErrConflict(domain.CodeInvalidState)
	}
	return nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.Filter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if filter.ClientID != 0 {
		q = q.Where("client_id = ?", filter.ClientID)
	}
	if filter.BarberID != 0 {
		q = q.Where("barber_id = ?", filter.BarberID)
	}

	var apps []models.Appointment
	if err := q.
		Order("appointment_date ASC").
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, httperr.ErrStorage(err)
	}

	return apps, nil
}

func notFoundOr(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(code)
	}
	return httperr.ErrStorage(err)
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
