package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/denteo/clinic-backend/internal/logger"
	"github.com/denteo/clinic-backend/models"
)

// appointmentRepository is the SQL-backed implementation of
// [AppointmentRepository] against the "appointments" table.
type appointmentRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewAppointmentRepository(db *DB, logger *logger.Logger) AppointmentRepository {
	logger.Debug().Msg("creating appointment repository")
	return &appointmentRepository{
		db:     db,
		logger: logger,
	}
}

func scanAppointment(row interface{ Scan(...any) error }) (models.Appointment, error) {
	var appointment models.Appointment
	err := row.Scan(
		&appointment.ID, &appointment.PatientID, &appointment.DentistName,
		&appointment.ScheduledAt, &appointment.Status, &appointment.Notes,
		&appointment.CreatedAt,
	)
	return appointment, err
}

// CreateAppointment persists a new appointment and returns it with the
// server-assigned ID and CreatedAt.
func (r *appointmentRepository) CreateAppointment(ctx context.Context, appointment models.Appointment) (models.Appointment, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.insertAppointmentQuery(appointment)
	if err != nil {
		log.Err(err).Str("func", "*appointmentRepository.CreateAppointment").Msg("error building query")
		return models.Appointment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanAppointment(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*appointmentRepository.CreateAppointment").Msg("error creating appointment")
		return models.Appointment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindAppointmentByID returns the appointment with the given identifier,
// or [ErrAppointmentNotFound].
func (r *appointmentRepository) FindAppointmentByID(ctx context.Context, appointmentID int64) (models.Appointment, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectAppointmentByIDQuery(appointmentID)
	if err != nil {
		log.Err(err).Str("func", "*appointmentRepository.FindAppointmentByID").Msg("error building query")
		return models.Appointment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanAppointment(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Appointment{}, ErrAppointmentNotFound
		}
		log.Err(err).Str("func", "*appointmentRepository.FindAppointmentByID").Msg("error finding appointment")
		return models.Appointment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListAppointmentsByPatient returns the patient's appointments ordered by
// scheduled time.
func (r *appointmentRepository) ListAppointmentsByPatient(ctx context.Context, patientID int64) ([]models.Appointment, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.listAppointmentsByPatientQuery(patientID)
	if err != nil {
		log.Err(err).Str("func", "*appointmentRepository.ListAppointmentsByPatient").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*appointmentRepository.ListAppointmentsByPatient").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var appointments []models.Appointment
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			log.Err(err).Str("func", "*appointmentRepository.ListAppointmentsByPatient").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*appointmentRepository.ListAppointmentsByPatient").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return appointments, nil
}

// UpdateAppointmentStatus moves the appointment to the given status.
// Returns [ErrAppointmentNotFound] when no row was updated.
func (r *appointmentRepository) UpdateAppointmentStatus(ctx context.Context, appointmentID int64, status string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.updateAppointmentStatusQuery(appointmentID, status)
	if err != nil {
		log.Err(err).Str("func", "*appointmentRepository.UpdateAppointmentStatus").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*appointmentRepository.UpdateAppointmentStatus").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}
