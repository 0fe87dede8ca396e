package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/clearsolutions/user-manager/internal/api/shared"
	"github.com/clearsolutions/user-manager/internal/domain"
	"github.com/clearsolutions/user-manager/internal/domain/policy"
	"github.com/clearsolutions/user-manager/internal/platform/logger"
	"github.com/clearsolutions/user-manager/internal/service"
)

// UserHandler handles user-related HTTP requests. It performs input-shape
// validation (including the age-eligibility check on incoming birth dates)
// before handing typed values to the service layer.
type UserHandler struct {
	userService service.UserService
	agePolicy   policy.AgePolicy
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, agePolicy policy.AgePolicy, log *slog.Logger) *UserHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &UserHandler{
		userService: userService,
		agePolicy:   agePolicy,
		logger:      log.With(slog.String("component", "user_handler")),
	}
}

// ListByBirthDateRange handles GET /api/users requests.
// Optional from/to query parameters bound the birth-date range; page and
// size control pagination.
func (h *UserHandler) ListByBirthDateRange(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var from, to *time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := ParseDate(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		from = &parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := ParseDate(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		to = &parsed
	}

	if from != nil && to != nil && to.Before(*from) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "from must not be after to")
		return
	}

	dateRange := domain.NewDateRange(from, to)
	page := getPageRequest(r)

	result, err := h.userService.FindByBirthDateRange(r.Context(), dateRange, page)
	if err != nil {
		log.Error("failed to list users by birth date range", slog.String("error", err.Error()))
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, pageToResponse(result))
}

// GetByID handles GET /api/users/{id} requests.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// Create handles POST /api/users requests.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	birthDate, ok := h.parseEligibleBirthDate(w, r, req.BirthDate)
	if !ok {
		return
	}

	created, err := h.userService.Create(r.Context(), req.ToDomain(birthDate))
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(created))
}

// Update handles PUT /api/users/{id} requests, replacing every mutable
// field of the stored user.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req UserRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	birthDate, ok := h.parseEligibleBirthDate(w, r, req.BirthDate)
	if !ok {
		return
	}

	updated, err := h.userService.Update(r.Context(), id, req.ToDomain(birthDate))
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(updated))
}

// Delete handles DELETE /api/users/{id} requests.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.userService.DeleteByID(r.Context(), id); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// UpdateFirstName handles PATCH /api/users/{id}/first-name requests.
func (h *UserHandler) UpdateFirstName(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req UpdateFirstNameRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.userService.UpdateFirstName(r.Context(), id, req.FirstName)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(updated))
}

// UpdateLastName handles PATCH /api/users/{id}/last-name requests.
func (h *UserHandler) UpdateLastName(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req UpdateLastNameRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.userService.UpdateLastName(r.Context(), id, req.LastName)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(updated))
}

// UpdateEmail handles PATCH /api/users/{id}/email requests.
func (h *UserHandler) UpdateEmail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req UpdateEmailRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.userService.UpdateEmail(r.Context(), id, req.Email)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(updated))
}

// UpdateBirthDate handles PATCH /api/users/{id}/birth-date requests.
// The service re-checks age eligibility; the handler only validates shape
// (a parseable past date) here, so the policy decision stays in one place
// for this path.
func (h *UserHandler) UpdateBirthDate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req UpdateBirthDateRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	birthDate, err := ParseDate(req.BirthDate)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if !birthDate.Before(domain.NormalizeDate(time.Now().UTC())) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "birth date must be in the past")
		return
	}

	updated, err := h.userService.UpdateBirthdate(r.Context(), id, birthDate)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(updated))
}

// UpdateAddress handles PATCH /api/users/{id}/address requests.
func (h *UserHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req UpdateAddressRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.userService.UpdateAddress(r.Context(), id, req.Address)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(updated))
}

// UpdatePhone handles PATCH /api/users/{id}/phone requests.
func (h *UserHandler) UpdatePhone(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req UpdatePhoneRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.userService.UpdatePhone(r.Context(), id, req.Phone)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(updated))
}

// pathID extracts the {id} path parameter, writing a 400 response on
// malformed input.
func (h *UserHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := getPathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return id, true
}

// decodeAndValidate decodes the JSON body into req and validates it,
// writing a 400 response on failure.
func (h *UserHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return false
	}

	return true
}

// parseEligibleBirthDate parses a wire-format birth date and runs the
// input-shape checks required before a full entity reaches the service:
// the date must be in the past and satisfy the age-eligibility policy.
func (h *UserHandler) parseEligibleBirthDate(
	w http.ResponseWriter,
	r *http.Request,
	value string,
) (time.Time, bool) {
	birthDate, err := ParseDate(value)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return time.Time{}, false
	}

	now := time.Now().UTC()
	if !birthDate.Before(domain.NormalizeDate(now)) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "birth date must be in the past")
		return time.Time{}, false
	}

	if !h.agePolicy.IsAdult(birthDate, now) {
		err := &service.InvalidBirthDateError{
			BirthDate:  birthDate,
			MinimumAge: h.agePolicy.MinimumAge,
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return time.Time{}, false
	}

	return birthDate, true
}
