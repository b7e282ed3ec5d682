package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cleanmatch/marketplace-api/internal/core/ports"
)

type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type cleanerProfileRequest struct {
	City            string   `json:"city"            validate:"required,min=1"`
	District        string   `json:"district"        validate:"required,min=1"`
	Regions         []string `json:"regions"         validate:"required,min=1,dive,required"`
	Gender          string   `json:"gender"          validate:"required,oneof=female male other"`
	BasePrice       *int     `json:"basePrice"       validate:"omitempty,gt=0"`
	ProfileImageURL string   `json:"profileImageUrl" validate:"omitempty,url"`
	Phone           string   `json:"phone"           validate:"omitempty,phone"`
}

type customerProfileRequest struct {
	City            string `json:"city"            validate:"required,min=1"`
	District        string `json:"district"        validate:"required,min=1"`
	Street          string `json:"street"          validate:"required,min=1"`
	Phone           string `json:"phone"           validate:"omitempty,phone"`
	ProfileImageURL string `json:"profileImageUrl" validate:"omitempty,url"`
}

type profileResponse struct {
	User userResponse `json:"user"`
}

// Me returns the authenticated user's own record.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /profile/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.profileService.Get(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{User: toUserResponse(user)})
}

// UpdateCleaner updates the authenticated cleaner's profile.
//
// @Summary      Update cleaner profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      cleanerProfileRequest  true  "Cleaner profile fields"
// @Success      200   {object}  profileResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /profile/cleaner [post]
func (h *ProfileHandler) UpdateCleaner(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req cleanerProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.profileService.UpdateCleaner(c.Request().Context(), identity.UserID, ports.CleanerProfileInput{
		City:            req.City,
		District:        req.District,
		Regions:         req.Regions,
		Gender:          req.Gender,
		BasePrice:       req.BasePrice,
		ProfileImageURL: req.ProfileImageURL,
		Phone:           req.Phone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{User: toUserResponse(user)})
}

// UpdateCustomer updates the authenticated customer's profile.
//
// @Summary      Update customer profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      customerProfileRequest  true  "Customer profile fields"
// @Success      200   {object}  profileResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /profile/customer [post]
func (h *ProfileHandler) UpdateCustomer(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req customerProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.profileService.UpdateCustomer(c.Request().Context(), identity.UserID, ports.CustomerProfileInput{
		City:            req.City,
		District:        req.District,
		Street:          req.Street,
		Phone:           req.Phone,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{User: toUserResponse(user)})
}
