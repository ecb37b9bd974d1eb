package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"consigna/internal/model"
	"consigna/internal/service"
)

// Multipart form field carrying the file content on upload.
const uploadFieldName = "archivo"

type FileHandler struct {
	service service.FileService
}

type fileDataResponse struct {
	Success bool             `json:"success"`
	Data    model.StoredFile `json:"data"`
}

type fileListResponse struct {
	Success bool               `json:"success"`
	Files   []model.StoredFile `json:"files"`
}

type downloadResponse struct {
	Success   bool   `json:"success"`
	SignedURL string `json:"signedUrl"`
}

func NewFileHandler(service service.FileService) *FileHandler {
	return &FileHandler{service: service}
}

func (h *FileHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/upload", h.Upload)
	g.GET("/files", h.List)
	g.DELETE("/file", h.Delete)
	g.GET("/download", h.Download)
}

// Upload stores one multipart file under archivos/{uid}/[{carpeta}/]{name}.
func (h *FileHandler) Upload(c echo.Context) error {
	part, err := c.FormFile(uploadFieldName)
	if err != nil {
		return Error(c, http.StatusBadRequest, "missing file field \"archivo\"")
	}
	uid := c.FormValue("uid")
	if uid == "" {
		return Error(c, http.StatusBadRequest, "missing required fields")
	}
	carpeta := c.FormValue("carpeta")

	src, err := part.Open()
	if err != nil {
		return writeServiceError(c, err)
	}
	defer src.Close()

	file, err := h.service.Upload(
		c.Request().Context(),
		uid,
		carpeta,
		part.Filename,
		src,
		part.Header.Get(echo.HeaderContentType),
	)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, fileDataResponse{Success: true, Data: file})
}

// List returns up to 100 stored files; without a uid it spans all users.
func (h *FileHandler) List(c echo.Context) error {
	files, err := h.service.List(c.Request().Context(), c.QueryParam("uid"))
	if err != nil {
		return writeServiceError(c, err)
	}
	if files == nil {
		files = []model.StoredFile{}
	}
	return c.JSON(http.StatusOK, fileListResponse{Success: true, Files: files})
}

// Delete removes a stored file after the namespace check.
func (h *FileHandler) Delete(c echo.Context) error {
	result, err := h.service.Delete(
		c.Request().Context(),
		c.QueryParam("uid"),
		c.QueryParam("fileId"),
		c.QueryParam("fileName"),
	)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, fileDataResponse{Success: true, Data: result})
}

// Download returns a signed URL for the file; the bytes are never proxied.
func (h *FileHandler) Download(c echo.Context) error {
	url, err := h.service.DownloadURL(
		c.Request().Context(),
		c.QueryParam("uid"),
		c.QueryParam("fileName"),
	)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, downloadResponse{Success: true, SignedURL: url})
}
