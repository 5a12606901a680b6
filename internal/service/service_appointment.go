package service

import (
	"context"
	"fmt"
	"time"

	"github.com/denteo/clinic-backend/internal/logger"
	"github.com/denteo/clinic-backend/internal/store"
	"github.com/denteo/clinic-backend/models"
)

// appointmentService is the concrete implementation of AppointmentService.
type appointmentService struct {
	appointmentRepository store.AppointmentRepository
	logger                *logger.Logger
}

func NewAppointmentService(appointmentRepository store.AppointmentRepository, logger *logger.Logger) AppointmentService {
	return &appointmentService{
		appointmentRepository: appointmentRepository,
		logger:                logger,
	}
}

// CreateAppointment books a visit for a patient. ScheduledAt must be an
// RFC 3339 timestamp in the future; new appointments always start out
// Scheduled.
func (s *appointmentService) CreateAppointment(ctx context.Context, req models.CreateAppointmentRequest) (models.Appointment, error) {
	log := logger.FromContext(ctx)

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		log.Warn().Str("scheduled_at", req.ScheduledAt).Msg("unparseable appointment time")
		return models.Appointment{}, ErrInvalidDataProvided
	}
	if !scheduledAt.After(time.Now()) {
		return models.Appointment{}, ErrInvalidDataProvided
	}

	appointment := models.Appointment{
		PatientID:   req.PatientID,
		DentistName: req.DentistName,
		ScheduledAt: scheduledAt,
		Status:      models.AppointmentScheduled,
		Notes:       req.Notes,
	}

	created, err := s.appointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		log.Err(err).Int64("patient_id", req.PatientID).Msg("appointment creation ended with error")
		return models.Appointment{}, fmt.Errorf("appointment creation ended with error: %w", err)
	}

	return created, nil
}

// GetAppointment returns one appointment.
// Passes store.ErrAppointmentNotFound through for the handler to map to 404.
func (s *appointmentService) GetAppointment(ctx context.Context, appointmentID int64) (models.Appointment, error) {
	return s.appointmentRepository.FindAppointmentByID(ctx, appointmentID)
}

// ListPatientAppointments returns the patient's appointments ordered by
// scheduled time.
func (s *appointmentService) ListPatientAppointments(ctx context.Context, patientID int64) ([]models.Appointment, error) {
	return s.appointmentRepository.ListAppointmentsByPatient(ctx, patientID)
}

// UpdateAppointmentStatus moves an appointment through its lifecycle.
// Scheduled may become Completed or Cancelled; both of those are terminal.
func (s *appointmentService) UpdateAppointmentStatus(ctx context.Context, appointmentID int64, status string) error {
	if status != models.AppointmentCompleted && status != models.AppointmentCancelled {
		return ErrInvalidStatusTransition
	}

	current, err := s.appointmentRepository.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if current.Status != models.AppointmentScheduled {
		return ErrInvalidStatusTransition
	}

	return s.appointmentRepository.UpdateAppointmentStatus(ctx, appointmentID, status)
}
