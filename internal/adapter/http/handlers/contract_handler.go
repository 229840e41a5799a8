package handlers

import (
	"net/http"
	"strings"

	request "maintenance_contracts/internal/adapter/http/dto/request"
	response "maintenance_contracts/internal/adapter/http/dto/response"
	"maintenance_contracts/internal/domain/entities"
	"maintenance_contracts/internal/usecase"

	"github.com/gin-gonic/gin"
)

// HeaderUser names the author recorded on new contracts when the payload
// does not.
const HeaderUser = "X-User"

// ContractHandler serves the contract form: header, workflow and rows.
type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

// CreateContract godoc
// @Summary Create a draft maintenance contract
// @Tags contracts
// @Accept json
// @Produce json
// @Param X-User header string false "Author of the contract"
// @Param contract body request.ContractRequest true "Contract"
// @Success 201 {object} response.ContractResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var payload request.ContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput(strings.TrimSpace(c.GetHeader(HeaderUser)))
	if err != nil {
		writeError(c, err)
		return
	}

	contract, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromContract(contract))
}

// GetContract godoc
// @Summary Get a contract
// @Tags contracts
// @Produce json
// @Param id path string true "Contract id"
// @Success 200 {object} response.ContractResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	contract, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// UpdateContract godoc
// @Summary Edit the header of a draft contract
// @Tags contracts
// @Accept json
// @Produce json
// @Param id path string true "Contract id"
// @Param contract body request.ContractRequest true "Contract header"
// @Success 200 {object} response.ContractResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /contracts/{id} [put]
func (h *ContractHandler) UpdateContract(c *gin.Context) {
	var payload request.ContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput("")
	if err != nil {
		writeError(c, err)
		return
	}

	contract, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// CancelContract godoc
// @Summary Cancel a submitted contract
// @Tags contracts
// @Produce json
// @Param id path string true "Contract id"
// @Success 200 {object} response.ContractResponse
// @Router /contracts/{id}/cancel [post]
func (h *ContractHandler) CancelContract(c *gin.Context) {
	contract, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// SubmissionPreview godoc
// @Summary Confirmation summary shown before submitting
// @Tags contracts
// @Produce json
// @Param id path string true "Contract id"
// @Success 200 {object} response.SubmissionPreviewResponse
// @Router /contracts/{id}/submission-preview [get]
func (h *ContractHandler) SubmissionPreview(c *gin.Context) {
	preview, err := h.usecase.SubmissionPreview(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSubmissionPreview(preview))
}

// SubmitContract godoc
// @Summary Submit a draft contract
// @Description The contract becomes Active. confirmed must be true.
// @Tags contracts
// @Accept json
// @Produce json
// @Param id path string true "Contract id"
// @Param body body request.SubmitRequest true "Confirmation"
// @Success 200 {object} response.ContractResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /contracts/{id}/submit [post]
func (h *ContractHandler) SubmitContract(c *gin.Context) {
	var payload request.SubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	contract, err := h.usecase.Submit(c.Request.Context(), c.Param("id"), payload.Confirmed)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// GetActions godoc
// @Summary Workflow actions available on a contract
// @Tags contracts
// @Produce json
// @Param id path string true "Contract id"
// @Success 200 {object} response.ActionsResponse
// @Router /contracts/{id}/actions [get]
func (h *ContractHandler) GetActions(c *gin.Context) {
	actions, err := h.usecase.AvailableActions(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromActions(actions))
}

// UpdateStatus godoc
// @Summary Close a contract as Completed or Terminated
// @Tags contracts
// @Accept json
// @Produce json
// @Param id path string true "Contract id"
// @Param body body request.StatusRequest true "New status"
// @Success 200 {object} response.MessageResponse
// @Failure 422 {object} pkg.HTTPError
// @Router /contracts/{id}/status [patch]
func (h *ContractHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	status := entities.ContractStatus(strings.TrimSpace(payload.NewStatus))
	msg, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: msg})
}
