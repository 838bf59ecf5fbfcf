package packages

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dnochieng/mvest/internal/domain"
	"github.com/dnochieng/mvest/internal/dto"
	packageservice "github.com/dnochieng/mvest/internal/service/packageservice"
	"github.com/dnochieng/mvest/pkg/utils"
)

type Service interface {
	ListActive(ctx context.Context) ([]domain.Package, error)
	ListAll(ctx context.Context) ([]domain.Package, error)
	Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
	Update(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
	Delete(ctx context.Context, id int) error
}

type PackageHandler struct {
	packageService Service
}

func New(packageService Service) *PackageHandler {
	return &PackageHandler{
		packageService: packageService,
	}
}

// ListActive godoc
//
//	@Summary		List active packages
//	@Description	List the investment packages currently offered, cheapest first.
//	@Tags			Packages
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PackageResponseDTO	"Active packages"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/packages [get]
func (h *PackageHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	pkgs, err := h.packageService.ListActive(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponses(pkgs))
}

// AdminList godoc
//
//	@Summary		List all packages
//	@Description	List every package including inactive ones.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PackageResponseDTO	"All packages"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		403	{object}	utils.Response			"Admin access required"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/packages [get]
func (h *PackageHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	pkgs, err := h.packageService.ListAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponses(pkgs))
}

// Create godoc
//
//	@Summary		Create a package
//	@Description	Add a new investment package offering.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PackageRequestDTO	true	"Package payload"
//	@Success		201		{object}	dto.PackageResponseDTO	"Created package"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/packages [post]
func (h *PackageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.PackageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || !req.Price.IsPositive() || !req.DailyReturn.IsPositive() || req.DurationDays <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "name, price, dailyReturn and durationDays are required")
		return
	}

	pkg, err := h.packageService.Create(r.Context(), &domain.Package{
		Name:         req.Name,
		Price:        req.Price,
		DailyReturn:  req.DailyReturn,
		DurationDays: req.DurationDays,
		IsActive:     req.IsActive,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponseDTO(pkg))
}

// Update godoc
//
//	@Summary		Update a package
//	@Description	Replace a package's name, pricing, duration and active flag. Existing investments keep the terms they were bought with.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Package ID"
//	@Param			request	body		dto.PackageRequestDTO	true	"Package payload"
//	@Success		200		{object}	dto.PackageResponseDTO	"Updated package"
//	@Failure		400		{object}	utils.Response			"Invalid request body or id"
//	@Failure		404		{object}	utils.Response			"Package not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/packages/{id} [put]
func (h *PackageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid package id")
		return
	}

	var req dto.PackageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pkg, err := h.packageService.Update(r.Context(), &domain.Package{
		ID:           id,
		Name:         req.Name,
		Price:        req.Price,
		DailyReturn:  req.DailyReturn,
		DurationDays: req.DurationDays,
		IsActive:     req.IsActive,
	})
	if err != nil {
		if errors.Is(err, packageservice.ErrPackageNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(pkg))
}

// Delete godoc
//
//	@Summary		Delete a package
//	@Description	Remove a package from the catalog.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Package ID"
//	@Success		204	{object}	nil
//	@Failure		400	{object}	utils.Response	"Invalid package id"
//	@Failure		404	{object}	utils.Response	"Package not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/packages/{id} [delete]
func (h *PackageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid package id")
		return
	}

	if err := h.packageService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, packageservice.ErrPackageNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func toResponseDTO(p *domain.Package) dto.PackageResponseDTO {
	return dto.PackageResponseDTO{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		DailyReturn:  p.DailyReturn,
		DurationDays: p.DurationDays,
		IsActive:     p.IsActive,
	}
}

func toResponses(pkgs []domain.Package) []dto.PackageResponseDTO {
	response := make([]dto.PackageResponseDTO, len(pkgs))
	for i := range pkgs {
		response[i] = toResponseDTO(&pkgs[i])
	}
	return response
}
