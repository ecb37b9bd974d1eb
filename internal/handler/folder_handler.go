package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"consigna/internal/model"
	"consigna/internal/service"
)

type FolderHandler struct {
	service service.FolderService
}

type folderRequest struct {
	Name string `json:"name"`
	UID  string `json:"uid"`
}

type folderCreatedResponse struct {
	Success bool         `json:"success"`
	Data    model.Folder `json:"data"`
}

type folderListResponse struct {
	Success bool           `json:"success"`
	Folders []model.Folder `json:"folders"`
}

func NewFolderHandler(service service.FolderService) *FolderHandler {
	return &FolderHandler{service: service}
}

func (h *FolderHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/folder", h.Create)
	g.GET("/folders", h.List)
}

// Create registers a new folder under the caller's namespace.
func (h *FolderHandler) Create(c echo.Context) error {
	var req folderRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request body")
	}
	folder, err := h.service.Create(c.Request().Context(), req.Name, req.UID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, folderCreatedResponse{Success: true, Data: folder})
}

// List returns the caller's folders in creation order.
func (h *FolderHandler) List(c echo.Context) error {
	folders, err := h.service.List(c.Request().Context(), c.QueryParam("uid"))
	if err != nil {
		return writeServiceError(c, err)
	}
	if folders == nil {
		folders = []model.Folder{}
	}
	return c.JSON(http.StatusOK, folderListResponse{Success: true, Folders: folders})
}
