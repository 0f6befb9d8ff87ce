package handlers

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	response "efectivio/internal/adapter/http/dto/response"
	"efectivio/internal/adapter/http/middleware"
	"efectivio/internal/domain/entities"
	"efectivio/internal/infrastructure/storage"
	"efectivio/internal/usecase"
	"efectivio/internal/usecase/interfaces"
	"efectivio/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Downloader serves objects behind signed links of the local storage driver.
type Downloader interface {
	Open(token, expires, signature string) (*os.File, string, error)
}

type FileHandler struct {
	usecase    usecase.IFileUseCase
	downloader Downloader
	signedTTL  time.Duration
}

// NewFileHandler takes a nil downloader when objects live in S3.
func NewFileHandler(uc usecase.IFileUseCase, downloader Downloader, signedTTL time.Duration) *FileHandler {
	return &FileHandler{usecase: uc, downloader: downloader, signedTTL: signedTTL}
}

// UploadFile godoc
// @Summary Upload a file
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "file"
// @Param category formData string false "category"
// @Param entity_type formData string false "linked entity type"
// @Param entity_id formData string false "linked entity id"
// @Success 201 {object} response.FileResponse
// @Failure 413 {object} pkg.HTTPError
// @Router /files/upload [post]
// @Security Bearer
func (h *FileHandler) UploadFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		validationFailed(c, map[string]string{"file": "is required"})
		return
	}
	body, err := header.Open()
	if err != nil {
		respondError(c, err, mapFileError)
		return
	}
	defer body.Close()

	in := usecase.UploadInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Category:    c.PostForm("category"),
		EntityType:  strings.TrimSpace(c.PostForm("entity_type")),
		EntityID:    strings.TrimSpace(c.PostForm("entity_id")),
		Body:        body,
	}
	file, url, err := h.usecase.Upload(c.Request.Context(), middleware.ActorFrom(c), in)
	if err != nil {
		log.Printf("[file][handler] upload failed name=%s err=%v", header.Filename, err)
		respondError(c, err, mapFileError)
		return
	}
	c.JSON(http.StatusCreated, response.FileResponse{File: file, URL: url})
}

// ListFiles returns the caller's files. Admins may pass ?user_id=.
func (h *FileHandler) ListFiles(c *gin.Context) {
	h.list(c, c.Query("category"))
}

func (h *FileHandler) ListFilesByCategory(c *gin.Context) {
	h.list(c, c.Param("category"))
}

func (h *FileHandler) list(c *gin.Context, category string) {
	filter := entities.FileFilter{
		UserID:     strings.TrimSpace(c.Query("user_id")),
		Category:   strings.TrimSpace(category),
		EntityType: strings.TrimSpace(c.Query("entity_type")),
		EntityID:   strings.TrimSpace(c.Query("entity_id")),
	}
	files, err := h.usecase.List(c.Request.Context(), middleware.ActorFrom(c), filter)
	if err != nil {
		respondError(c, err, mapFileError)
		return
	}
	c.JSON(http.StatusOK, files)
}

func (h *FileHandler) SignedURL(c *gin.Context) {
	url, err := h.usecase.SignedURL(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err, mapFileError)
		return
	}
	c.JSON(http.StatusOK, response.SignedURLResponse{URL: url, ExpiresAt: time.Now().Add(h.signedTTL).UTC()})
}

func (h *FileHandler) DeleteFile(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		respondError(c, err, mapFileError)
		return
	}
	c.Status(http.StatusNoContent)
}

// Download streams an object of the local driver. The link itself is the credential.
func (h *FileHandler) Download(c *gin.Context) {
	if h.downloader == nil {
		appErr := pkg.NewDomainErrorSimple("FILE_NOT_FOUND", "File not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	f, name, err := h.downloader.Open(c.Param("token"), c.Query("expires"), c.Query("signature"))
	if err != nil {
		respondError(c, err, mapFileError)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		respondError(c, err, mapFileError)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	http.ServeContent(c.Writer, c.Request, name, info.ModTime(), f)
}

func mapFileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFileID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyFile):
		return pkg.NewDomainErrorSimple("EMPTY_FILE", "File is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFileTooLarge):
		return pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "File exceeds the upload limit", http.StatusRequestEntityTooLarge)
	case errors.Is(err, storage.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid download link", http.StatusForbidden)
	case errors.Is(err, storage.ErrLinkExpired):
		return pkg.NewDomainErrorSimple("LINK_EXPIRED", "Download link expired", http.StatusGone)
	case errors.Is(err, usecase.ErrFileNotFound), errors.Is(err, interfaces.ErrObjectNotFound):
		return pkg.NewDomainErrorSimple("FILE_NOT_FOUND", "File not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
