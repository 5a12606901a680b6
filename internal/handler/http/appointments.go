package http

import (
	"encoding/json"
	"net/http"

	"github.com/denteo/clinic-backend/internal/identity"
	"github.com/denteo/clinic-backend/internal/logger"
	"github.com/denteo/clinic-backend/internal/utils"
	"github.com/denteo/clinic-backend/models"
)

// canAccessAppointments reports whether the caller may read or manage the
// appointments of patientID: the patient themselves, any practitioner, or
// an administrator.
func canAccessAppointments(caller identity.Identity, patientID int64) bool {
	return caller.CanAccessUser(patientID) || caller.HasRole(models.RoleDentist)
}

func (h *Handler) createAppointment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createAppointment").Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	if !canAccessAppointments(identity.FromContext(ctx), req.PatientID) {
		writeError(w, r, ErrForbidden)
		return
	}

	appointment, err := h.services.AppointmentService.CreateAppointment(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", appointment.ID).Int64("patient_id", appointment.PatientID).Msg("appointment created")

	_, _ = utils.WriteJSON(w, appointment, http.StatusCreated)
}

func (h *Handler) getAppointment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	appointmentID, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	appointment, err := h.services.AppointmentService.GetAppointment(ctx, appointmentID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !canAccessAppointments(identity.FromContext(ctx), appointment.PatientID) {
		writeError(w, r, ErrForbidden)
		return
	}

	_, _ = utils.WriteJSON(w, appointment, http.StatusOK)
}

func (h *Handler) listPatientAppointments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	patientID, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !canAccessAppointments(identity.FromContext(ctx), patientID) {
		writeError(w, r, ErrForbidden)
		return
	}

	appointments, err := h.services.AppointmentService.ListPatientAppointments(ctx, patientID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, appointments, http.StatusOK)
}

// updateAppointmentStatus moves an appointment to one of its terminal
// statuses. Practitioners and administrators may set either status on any
// appointment; a patient may only cancel their own.
func (h *Handler) updateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	appointmentID, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateAppointmentStatusRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateAppointmentStatus").Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	if err = h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	caller := identity.FromContext(ctx)
	if !caller.HasRole(models.RoleDentist, models.RoleAdmin) {
		appointment, findErr := h.services.AppointmentService.GetAppointment(ctx, appointmentID)
		if findErr != nil {
			writeError(w, r, findErr)
			return
		}
		if appointment.PatientID != caller.UserID || req.Status != models.AppointmentCancelled {
			writeError(w, r, ErrForbidden)
			return
		}
	}

	if err = h.services.AppointmentService.UpdateAppointmentStatus(ctx, appointmentID, req.Status); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", appointmentID).Str("status", req.Status).Msg("appointment status updated")

	w.WriteHeader(http.StatusNoContent)
}
